// Package tasks implements the operator tasks herd exposes.
//
// Tasks run strictly in order against one Session, which carries what earlier
// tasks established: the cloud connection, the server list, the selected
// server and the passwords set on hosts during the run.
package tasks

import (
	"context"
	"io"
	"os"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.trai.ch/herd/internal/core/domain"
	"go.trai.ch/herd/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pauses the provisioning API needs before a change is visible over SSH.
const (
	PasswordSettle = 10 * time.Second
	SSHSettle      = 10 * time.Second
	BootSettle     = 5 * time.Second
)

// Deps are the collaborators tasks act through.
type Deps struct {
	Logger    ports.Logger
	Connector ports.CloudConnector
	Remote    ports.RemoteExecutor
	Local     ports.LocalRunner
	Prompter  ports.Prompter
	Profiles  ports.ProfileStore

	// Out receives tables and other output meant for the operator.
	Out io.Writer
	// Fs is the local filesystem. Defaults to the OS filesystem.
	Fs afero.Fs
	// NewPassword generates a root password. Defaults to a truncated UUID.
	NewPassword func() string
	// Sleep pauses for d or until ctx ends. Defaults to a timer.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Session is the state one run threads through its task chain.
type Session struct {
	Deps
	Settings *domain.Settings

	Creds   *domain.Credentials
	Cloud   ports.Cloud
	Servers []domain.Server
	Box     *domain.Server
	Host    *domain.Host

	// Passwords maps Host.String() to the root password set during this run.
	Passwords map[string]string
}

// NewSession creates a session over settings, filling unset optional deps.
func NewSession(settings *domain.Settings, deps Deps) *Session {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.Fs == nil {
		deps.Fs = afero.NewOsFs()
	}
	if deps.NewPassword == nil {
		deps.NewPassword = func() string { return uuid.NewString()[:12] }
	}
	if deps.Sleep == nil {
		deps.Sleep = sleep
	}
	return &Session{
		Deps:      deps,
		Settings:  settings,
		Passwords: make(map[string]string),
	}
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Close releases the remote connections opened during the session.
func (s *Session) Close() error {
	if s.Remote == nil {
		return nil
	}
	return s.Remote.Close()
}

// setting returns a settings value, falling back to the built-in default.
func (s *Session) setting(key string) string {
	return s.Settings.GetOr(key, domain.DefaultSettings[key])
}

func (s *Session) requireCloud() error {
	if s.Cloud == nil || s.Creds == nil {
		return domain.ErrNotConnected
	}
	return nil
}

func (s *Session) requireBox() error {
	if s.Box == nil {
		return domain.ErrNoServerSelected
	}
	return nil
}

func (s *Session) requireHost() (domain.Host, error) {
	if s.Host == nil {
		return domain.Host{}, domain.ErrNoServerSelected
	}
	return *s.Host, nil
}

// refreshBoxen reloads the server list.
func (s *Session) refreshBoxen(ctx context.Context) error {
	servers, err := s.Cloud.ListServers(ctx)
	if err != nil {
		return err
	}
	s.Servers = servers
	return nil
}

// server returns the listed server called name.
func (s *Session) server(name string) (domain.Server, bool) {
	i := slices.IndexFunc(s.Servers, func(srv domain.Server) bool { return srv.Name == name })
	if i < 0 {
		return domain.Server{}, false
	}
	return s.Servers[i], true
}

func (s *Session) forgetServer(id string) {
	s.Servers = slices.DeleteFunc(s.Servers, func(srv domain.Server) bool { return srv.ID == id })
}

func serverNotFound(name string) error {
	return zerr.With(zerr.Wrap(domain.ErrServerNotFound, "no server named "+name), "server", name)
}
