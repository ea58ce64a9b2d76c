package saltcloud_test

import (
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/herd/internal/adapters/saltcloud"
	"go.trai.ch/herd/internal/core/domain"
)

const ubuntu = "Ubuntu 12.04 LTS (Precise Pangolin)"

func TestStore_Encode(t *testing.T) {
	store := saltcloud.NewStoreFs(afero.NewMemMapFs())

	data, err := store.Encode(domain.Profiles{
		"web01": {Provider: "rackspace-conf-alice", Size: "1GB Standard Instance", Image: ubuntu},
		"db01": {
			Provider: "rackspace-conf-alice",
			Size:     "4GB Standard Instance",
			Image:    ubuntu,
			Extra:    map[string]any{"script": "bootstrap-salt"},
		},
	})
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "profiles", data)
}

func TestStore_EncodeProvider(t *testing.T) {
	store := saltcloud.NewStoreFs(afero.NewMemMapFs())

	p := domain.NewCloudProvider(domain.Credentials{
		User:        "alice",
		APIKey:      "secret",
		TenantID:    "123456",
		IdentityURL: "https://identity.api.rackspacecloud.com/v2.0/",
		Region:      "LON",
	}, "cloudServersOpenStack", "10.0.0.1")

	data, err := store.EncodeProvider(domain.ProviderName("alice"), p)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "providers", data)
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := saltcloud.NewStoreFs(afero.NewMemMapFs())
	in := domain.Profiles{
		"web01": {Provider: "p", Size: "512MB Standard Instance", Image: ubuntu},
		"db01":  {Provider: "p", Size: "1GB Standard Instance", Image: ubuntu, Extra: map[string]any{"script": "x"}},
	}

	require.NoError(t, store.Save("cloud.profiles", in))
	out, err := store.Load("cloud.profiles")
	require.NoError(t, err)

	assert.Equal(t, []string{"db01", "web01"}, out.Names())
	assert.Equal(t, "512MB Standard Instance", out["web01"].Size)
	assert.Equal(t, "x", out["db01"].Extra["script"])
}

func TestStore_LoadMissingIsEmpty(t *testing.T) {
	store := saltcloud.NewStoreFs(afero.NewMemMapFs())

	profiles, err := store.Load("cloud.profiles")
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestStore_Decode(t *testing.T) {
	store := saltcloud.NewStoreFs(afero.NewMemMapFs())

	empty, err := store.Decode(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = store.Decode([]byte("web01: [nope"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrProfilesReadFailed))
}
