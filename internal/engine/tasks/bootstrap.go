package tasks

import (
	"bytes"
	"context"
	"path/filepath"

	"go.trai.ch/herd/internal/core/domain"
	"go.trai.ch/zerr"
)

// BootstrapParams are the arguments of bootstrap.
type BootstrapParams struct {
	Master bool `arg:"master"`
	Shell  bool `arg:"shell"`
}

// Defaults opens a shell after bootstrapping unless told otherwise.
func (p *BootstrapParams) Defaults() {
	p.Shell = true
}

// Bootstrap installs salt on the selected host. A master also gets salt-cloud,
// a provider definition for the connected account and the local profiles.
func Bootstrap(ctx context.Context, s *Session, p BootstrapParams) error {
	host, err := s.requireHost()
	if err != nil {
		return err
	}

	commands := []string{domain.CmdAptUpdate, domain.CmdAptInstall}
	if p.Master {
		commands = append(commands, domain.CmdMasterBootstrap, domain.CmdMasterPipDeps, domain.CmdSaltCloud)
	} else {
		commands = append(commands, domain.CmdMinionBootstrap)
	}
	for _, cmd := range commands {
		if err := s.Remote.Run(ctx, host, cmd); err != nil {
			return err
		}
	}

	if p.Master {
		if err := s.configureSaltCloud(ctx, host); err != nil {
			return err
		}
	}

	if p.Shell {
		return Shell(ctx, s, struct{}{})
	}
	return nil
}

func (s *Session) configureSaltCloud(ctx context.Context, host domain.Host) error {
	if err := s.requireCloud(); err != nil {
		return err
	}

	provider := domain.NewCloudProvider(*s.Creds, s.setting(domain.KeyComputeName), s.Box.IPv4)
	doc, err := s.Profiles.EncodeProvider(domain.ProviderName(s.Creds.User), provider)
	if err != nil {
		return err
	}
	if err := s.Remote.Put(ctx, host, bytes.NewReader(doc), domain.RemoteProvidersPath); err != nil {
		return err
	}

	profiles, err := s.Profiles.Load(s.setting(domain.KeyProfilesPath))
	if err != nil {
		return err
	}
	return s.pushProfiles(ctx, profiles)
}

// Season sends the local salt states and pillars to the selected host and
// unpacks them under /srv.
func Season(ctx context.Context, s *Session, _ struct{}) error {
	host, err := s.requireHost()
	if err != nil {
		return err
	}

	trees := []struct{ name, key string }{
		{domain.TreeSalt, domain.KeySaltDir},
		{domain.TreePillar, domain.KeyPillarDir},
	}
	for _, t := range trees {
		tree := s.setting(t.key)
		tarball := domain.TarballPath(t.name)
		err := s.Local.Run(ctx, domain.Command{
			Name: "tar",
			Args: []string{"-czf", tarball, filepath.Base(tree)},
			Dir:  filepath.Dir(tree),
		})
		if err != nil {
			return err
		}

		if err := s.upload(ctx, host, tarball); err != nil {
			return err
		}
		if err := s.Remote.Run(ctx, host, domain.UnpackCommand(tarball)); err != nil {
			return err
		}
	}
	return nil
}

// upload copies the local file at path to the same path on host.
func (s *Session) upload(ctx context.Context, host domain.Host, path string) error {
	f, err := s.Fs.Open(path)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrTransferFailed, err.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()
	return s.Remote.Put(ctx, host, f, path)
}

// MakeSaltmaster brings up the salt master: it is born when missing, or
// replaced when it exists and the operator agrees, then bootstrapped as a
// master and seasoned.
func MakeSaltmaster(ctx context.Context, s *Session, _ struct{}) error {
	if err := s.requireCloud(); err != nil {
		return err
	}
	name := s.Settings.SaltmasterName()
	birth := BirthParams{Name: name, Size: 512, Wait: true}

	if _, exists := s.server(name); !exists {
		if err := Birth(ctx, s, birth); err != nil {
			return err
		}
	} else {
		if err := Herd(ctx, s, HerdParams{Name: name}); err != nil {
			return err
		}
		s.Logger.Warn("Saltmaster ('" + name + "') already exists!")
		deleted, err := euthanise(ctx, s, true)
		if err != nil {
			return err
		}
		if deleted {
			if err := Birth(ctx, s, birth); err != nil {
				return err
			}
			if err := s.Sleep(ctx, SSHSettle); err != nil {
				return err
			}
		}
	}

	if err := s.Sleep(ctx, BootSettle); err != nil {
		return err
	}
	if err := Bootstrap(ctx, s, BootstrapParams{Master: true, Shell: true}); err != nil {
		return err
	}
	return Season(ctx, s, struct{}{})
}
