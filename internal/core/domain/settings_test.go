package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/herd/internal/core/domain"
)

func TestSettings_IsolatedFromInput(t *testing.T) {
	in := map[string]string{"domain": "example.com"}
	s := domain.NewSettings(in)

	in["domain"] = "changed.com"
	in["extra"] = "x"

	v, ok := s.Get("domain")
	require.True(t, ok)
	assert.Equal(t, "example.com", v)
	_, ok = s.Get("extra")
	assert.False(t, ok)
}

func TestSettings_ValuesReturnsCopy(t *testing.T) {
	s := domain.NewSettings(map[string]string{"domain": "example.com"})

	out := s.Values()
	out["domain"] = "mutated"

	assert.Equal(t, "example.com", s.GetOr("domain", ""))
}

func TestSettings_RepeatedReadsAreStable(t *testing.T) {
	s := domain.NewSettings(map[string]string{"a": "1", "b": "2"})

	first := s.Values()
	for range 5 {
		assert.Equal(t, first, s.Values())
		assert.Equal(t, []string{"a", "b"}, s.Keys())
	}
}

func TestSettings_Require(t *testing.T) {
	s := domain.NewSettings(map[string]string{"domain": "example.com", "empty": ""})

	v, err := s.Require("domain")
	require.NoError(t, err)
	assert.Equal(t, "example.com", v)

	for _, key := range []string{"empty", "absent"} {
		_, err = s.Require(key)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrSettingMissing))
		assert.Contains(t, err.Error(), key)
	}
}

func TestSettings_SaltmasterName(t *testing.T) {
	assert.Equal(t, "saltmaster", domain.NewSettings(nil).SaltmasterName())
	s := domain.NewSettings(map[string]string{domain.KeySaltmasterName: "salt-01"})
	assert.Equal(t, "salt-01", s.SaltmasterName())
}

func TestSettings_NilSafe(t *testing.T) {
	var s *domain.Settings

	_, ok := s.Get("domain")
	assert.False(t, ok)
	assert.Empty(t, s.Keys())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Values())
}
