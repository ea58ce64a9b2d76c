package tasks

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/afero"
	"go.trai.ch/herd/internal/core/domain"
	"go.trai.ch/zerr"
)

// BirthParams are the arguments of birth.
type BirthParams struct {
	Name      string `arg:"name,required"`
	Size      int    `arg:"size"`
	Wait      bool   `arg:"wait"`
	NoProfile bool   `arg:"no_profile"`
}

// Birth creates the server called Name.
//
// When the salt master is up and knows a profile for Name, salt-cloud on the
// master builds it. Otherwise a profile is recorded for a flavor whose RAM (MB)
// or disk (GB) equals Size, and the server is built through salt-cloud when the
// master exists, or directly through the cloud API when it does not or when
// NoProfile is set. The server is branded at the end.
func Birth(ctx context.Context, s *Session, p BirthParams) error {
	if err := s.requireCloud(); err != nil {
		return err
	}

	profilesPath := s.setting(domain.KeyProfilesPath)
	profiles, err := s.Profiles.Load(profilesPath)
	if err != nil {
		return err
	}

	_, masterUp := s.server(s.Settings.SaltmasterName())
	if masterUp {
		if profiles, err = s.pullProfiles(ctx); err != nil {
			return err
		}
		if _, known := profiles[p.Name]; known && !p.NoProfile {
			return s.saltCloudBirth(ctx, p.Name)
		}
		s.Logger.Warn("Unknown profile, creating new one.")
	}

	if p.Size <= 0 {
		return zerr.With(zerr.Wrap(domain.ErrInvalidArguments,
			"size is required to create a server without a profile"), "server", p.Name)
	}

	profile, req, err := s.resolveProfile(ctx, p.Name, p.Size)
	if err != nil {
		return err
	}
	profiles = profiles.Merge(domain.Profiles{p.Name: profile})
	if err := s.Profiles.Save(profilesPath, profiles); err != nil {
		return err
	}

	if masterUp {
		if err := s.pushProfiles(ctx, profiles); err != nil {
			return err
		}
	}

	if masterUp && !p.NoProfile {
		return s.saltCloudBirth(ctx, p.Name)
	}

	if err := s.directBirth(ctx, req, p.Wait); err != nil {
		return err
	}
	if s.Box.IPv4 == "" {
		s.Logger.Warn(fmt.Sprintf("%s has no address yet, run herd:%[1]s brand once it is up", p.Name))
		return nil
	}
	return Brand(ctx, s, BrandParams{})
}

// resolveProfile finds the configured image and a flavor matching size.
func (s *Session) resolveProfile(ctx context.Context, name string, size int) (domain.Profile, domain.ServerRequest, error) {
	images, err := s.Cloud.ListImages(ctx)
	if err != nil {
		return domain.Profile{}, domain.ServerRequest{}, err
	}
	imageName := s.setting(domain.KeyImage)
	image, ok := domain.FindImage(images, imageName)
	if !ok {
		return domain.Profile{}, domain.ServerRequest{}, zerr.With(
			zerr.Wrap(domain.ErrImageNotFound, "no image matching "+imageName), "image", imageName)
	}

	flavors, err := s.Cloud.ListFlavors(ctx)
	if err != nil {
		return domain.Profile{}, domain.ServerRequest{}, err
	}
	flavor, ok := domain.FindFlavor(flavors, size)
	if !ok {
		return domain.Profile{}, domain.ServerRequest{}, zerr.With(
			zerr.Wrap(domain.ErrFlavorNotFound, fmt.Sprintf("no flavor with %d MB ram or %[1]d GB disk", size)),
			"size", size)
	}

	profile := domain.Profile{
		Provider: domain.ProviderName(s.Creds.User),
		Size:     flavor.Name,
		Image:    image.Name,
	}
	req := domain.ServerRequest{Name: name, ImageID: image.ID, FlavorID: flavor.ID}
	return profile, req, nil
}

// directBirth creates the server through the cloud API and selects it.
func (s *Session) directBirth(ctx context.Context, req domain.ServerRequest, wait bool) error {
	srv, err := s.Cloud.CreateServer(ctx, req)
	if err != nil {
		return err
	}
	s.Box = &srv
	s.Host = nil
	s.Servers = append(s.Servers, srv)

	s.Logger.Info(fmt.Sprintf("Ok, made server %s:%s", srv.Name, srv.ID))
	s.Logger.Warn("Admin password (last chance!): " + srv.AdminPass)

	if !wait {
		return nil
	}

	s.Logger.Info("Waiting until server is ready...")
	ready, err := s.Cloud.WaitForServer(ctx, srv.ID)
	if err != nil {
		return err
	}
	ready.AdminPass = srv.AdminPass
	s.Box = &ready

	if err := Herd(ctx, s, HerdParams{Name: srv.Name, Newborn: true}); err != nil {
		return err
	}
	s.Logger.Info("Ok, server is ready!")
	return nil
}

// saltCloudBirth has salt-cloud on the master build name from its profile,
// then selects and brands it.
func (s *Session) saltCloudBirth(ctx context.Context, name string) error {
	if err := s.Remote.Run(ctx, *s.Host, domain.SaltCloudCreate(name)); err != nil {
		return err
	}
	if err := Herd(ctx, s, HerdParams{Name: name}); err != nil {
		return err
	}
	return Brand(ctx, s, BrandParams{})
}

// pullProfiles selects the master and mirrors its profiles into the local file.
func (s *Session) pullProfiles(ctx context.Context) (domain.Profiles, error) {
	if err := Herd(ctx, s, HerdParams{Name: s.Settings.SaltmasterName()}); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := s.Remote.Get(ctx, *s.Host, domain.RemoteProfilesPath, &buf); err != nil {
		return nil, err
	}
	profiles, err := s.Profiles.Decode(buf.Bytes())
	if err != nil {
		return nil, err
	}
	if err := s.Profiles.Save(s.setting(domain.KeyProfilesPath), profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// pushProfiles writes profiles to the master. The master must be the selected host.
func (s *Session) pushProfiles(ctx context.Context, profiles domain.Profiles) error {
	data, err := s.Profiles.Encode(profiles)
	if err != nil {
		return err
	}
	return s.Remote.Put(ctx, *s.Host, bytes.NewReader(data), domain.RemoteProfilesPath)
}

// CattleParams are the arguments of cattle.
type CattleParams struct {
	ConfPath string `arg:"conf_path,required"`
}

// Cattle brings up every server of a salt-cloud profiles file. The profiles are
// merged into the master's, then salt-cloud builds each one not already running.
func Cattle(ctx context.Context, s *Session, p CattleParams) error {
	if err := s.requireCloud(); err != nil {
		return err
	}
	master := s.Settings.SaltmasterName()
	if _, ok := s.server(master); !ok {
		return zerr.With(zerr.Wrap(domain.ErrSaltmasterMissing, "no server named "+master), "server", master)
	}

	data, err := afero.ReadFile(s.Fs, p.ConfPath)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrProfilesReadFailed, err.Error()), "path", p.ConfPath)
	}
	wanted, err := s.Profiles.Decode(data)
	if err != nil {
		return zerr.With(err, "path", p.ConfPath)
	}

	existing, err := s.pullProfiles(ctx)
	if err != nil {
		return err
	}
	merged := existing.Merge(wanted)
	if err := s.pushProfiles(ctx, merged); err != nil {
		return err
	}
	if err := s.Profiles.Save(s.setting(domain.KeyProfilesPath), merged); err != nil {
		return err
	}

	for _, name := range wanted.Names() {
		if _, running := s.server(name); running {
			s.Logger.Info(name + " is already running, skipping")
			continue
		}
		if err := s.Remote.Run(ctx, *s.Host, domain.SaltCloudCreate(name)); err != nil {
			return err
		}
	}
	if err := s.refreshBoxen(ctx); err != nil {
		return err
	}
	s.Logger.Info(fmt.Sprintf("Ok, %d profiles in the herd", len(wanted)))
	return nil
}
