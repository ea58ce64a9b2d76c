package tasks_test

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/herd/internal/adapters/saltcloud"
	"go.trai.ch/herd/internal/core/domain"
	"go.trai.ch/herd/internal/core/ports/mocks"
	"go.trai.ch/herd/internal/engine/tasks"
	"go.uber.org/mock/gomock"
)

const generatedPassword = "0f8e2a9c-41b"

var (
	master = domain.Server{ID: "m1", Name: "saltmaster", Status: "ACTIVE", IPv4: "203.0.113.1"}
	web    = domain.Server{ID: "w1", Name: "web", Status: "ACTIVE", IPv4: "203.0.113.2", IPv6: "2001:db8::2"}

	ubuntu = domain.Image{ID: "img-1", Name: "Ubuntu 12.04 LTS (Precise Pangolin)"}
	small  = domain.Flavor{ID: "2", Name: "512MB Standard Instance", RAM: 512, Disk: 20}
	medium = domain.Flavor{ID: "3", Name: "1GB Standard Instance", RAM: 1024, Disk: 40}

	zone = domain.Zone{ID: "z1", Name: "example.com"}
)

type fixture struct {
	log       *mocks.MockLogger
	connector *mocks.MockCloudConnector
	cloud     *mocks.MockCloud
	remote    *mocks.MockRemoteExecutor
	local     *mocks.MockLocalRunner
	prompter  *mocks.MockPrompter

	fs      afero.Fs
	store   *saltcloud.Store
	out     bytes.Buffer
	slept   []time.Duration
	session *tasks.Session
}

func newFixture(t *testing.T, settings map[string]string) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		log:       mocks.NewMockLogger(ctrl),
		connector: mocks.NewMockCloudConnector(ctrl),
		cloud:     mocks.NewMockCloud(ctrl),
		remote:    mocks.NewMockRemoteExecutor(ctrl),
		local:     mocks.NewMockLocalRunner(ctrl),
		prompter:  mocks.NewMockPrompter(ctrl),
		fs:        afero.NewMemMapFs(),
	}
	f.store = saltcloud.NewStoreFs(f.fs)
	f.log.EXPECT().Info(gomock.Any()).AnyTimes()
	f.log.EXPECT().Warn(gomock.Any()).AnyTimes()

	if settings == nil {
		settings = map[string]string{domain.KeyDomain: "example.com"}
	}
	f.session = tasks.NewSession(domain.NewSettings(settings), tasks.Deps{
		Logger:      f.log,
		Connector:   f.connector,
		Remote:      f.remote,
		Local:       f.local,
		Prompter:    f.prompter,
		Profiles:    f.store,
		Out:         &f.out,
		Fs:          f.fs,
		NewPassword: func() string { return generatedPassword },
		Sleep: func(_ context.Context, d time.Duration) error {
			f.slept = append(f.slept, d)
			return nil
		},
	})
	return f
}

// connected puts the session in the state connect leaves it in.
func (f *fixture) connected(servers ...domain.Server) *fixture {
	f.session.Creds = &domain.Credentials{
		User:        "alice",
		APIKey:      "secret",
		TenantID:    "123456",
		IdentityURL: domain.DefaultSettings[domain.KeyIdentityURL],
		Region:      "LON",
	}
	f.session.Cloud = f.cloud
	f.session.Servers = servers
	return f
}

// selected puts the session in the state herd leaves it in.
func (f *fixture) selected(srv domain.Server, password string) domain.Host {
	h := hostOf(srv, password)
	f.session.Box = &srv
	f.session.Host = &h
	f.session.Passwords[h.String()] = password
	return h
}

func hostOf(srv domain.Server, password string) domain.Host {
	return domain.Host{User: "root", Address: srv.IPv4, Port: domain.DefaultSSHPort, Password: password}
}

func serveFile(content string) func(context.Context, domain.Host, string, io.Writer) error {
	return func(_ context.Context, _ domain.Host, _ string, w io.Writer) error {
		_, err := io.WriteString(w, content)
		return err
	}
}

func captureUpload(dst *string) func(context.Context, domain.Host, io.Reader, string) error {
	return func(_ context.Context, _ domain.Host, r io.Reader, _ string) error {
		data, err := io.ReadAll(r)
		*dst = string(data)
		return err
	}
}

func invoke(t *testing.T, s *tasks.Session, token string) error {
	t.Helper()
	inv, err := domain.ParseInvocation(token)
	if err != nil {
		return err
	}
	return tasks.NewRegistry().Invoke(context.Background(), s, inv)
}
