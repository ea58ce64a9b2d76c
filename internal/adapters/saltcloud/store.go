// Package saltcloud reads and writes salt-cloud provider and profile documents.
package saltcloud

import (
	"bytes"
	"os"

	"github.com/spf13/afero"
	"go.trai.ch/herd/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// profileDTO is one entry of a cloud.profiles document.
type profileDTO struct {
	Provider string         `yaml:"provider"`
	Size     string         `yaml:"size"`
	Image    string         `yaml:"image"`
	Extra    map[string]any `yaml:",inline"`
}

// providerDTO is one entry of a cloud.providers document.
type providerDTO struct {
	APIKey        string    `yaml:"apikey"`
	ComputeName   string    `yaml:"compute_name"`
	ComputeRegion string    `yaml:"compute_region"`
	IdentityURL   string    `yaml:"identity_url"`
	Minion        minionDTO `yaml:"minion"`
	Protocol      string    `yaml:"protocol"`
	Provider      string    `yaml:"provider"`
	Tenant        string    `yaml:"tenant"`
	User          string    `yaml:"user"`
}

type minionDTO struct {
	Master string `yaml:"master"`
}

// Store implements ports.ProfileStore on YAML files.
type Store struct {
	fs afero.Fs
}

// NewStore creates a Store on the OS filesystem.
func NewStore() *Store {
	return NewStoreFs(afero.NewOsFs())
}

// NewStoreFs creates a Store on fs.
func NewStoreFs(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// Load reads the profiles file at path. A missing file is an empty set.
func (s *Store) Load(path string) (domain.Profiles, error) {
	data, err := afero.ReadFile(s.fs, path)
	if os.IsNotExist(err) {
		return domain.Profiles{}, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrProfilesReadFailed, err.Error()), "path", path)
	}

	profiles, err := s.Decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return profiles, nil
}

// Save writes profiles to path.
func (s *Store) Save(path string, profiles domain.Profiles) error {
	data, err := s.Encode(profiles)
	if err != nil {
		return err
	}
	if err := afero.WriteFile(s.fs, path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrProfilesWriteFailed, err.Error()), "path", path)
	}
	return nil
}

// Decode parses a profiles document. An empty document is an empty set.
func (s *Store) Decode(data []byte) (domain.Profiles, error) {
	var dtos map[string]profileDTO
	if err := yaml.Unmarshal(data, &dtos); err != nil {
		return nil, zerr.Wrap(domain.ErrProfilesReadFailed, err.Error())
	}

	profiles := make(domain.Profiles, len(dtos))
	for name, dto := range dtos {
		profiles[name] = domain.Profile{
			Provider: dto.Provider,
			Size:     dto.Size,
			Image:    dto.Image,
			Extra:    dto.Extra,
		}
	}
	return profiles, nil
}

// Encode renders a profiles document with sorted keys.
func (s *Store) Encode(profiles domain.Profiles) ([]byte, error) {
	dtos := make(map[string]profileDTO, len(profiles))
	for name, p := range profiles {
		dtos[name] = profileDTO{Provider: p.Provider, Size: p.Size, Image: p.Image, Extra: p.Extra}
	}
	return encode(dtos)
}

// EncodeProvider renders a providers document holding p under name.
func (s *Store) EncodeProvider(name string, p domain.CloudProvider) ([]byte, error) {
	return encode(map[string]providerDTO{
		name: {
			APIKey:        p.APIKey,
			ComputeName:   p.ComputeName,
			ComputeRegion: p.ComputeRegion,
			IdentityURL:   p.IdentityURL,
			Minion:        minionDTO{Master: p.Master},
			Protocol:      p.Protocol,
			Provider:      p.Provider,
			Tenant:        p.Tenant,
			User:          p.User,
		},
	})
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, zerr.Wrap(domain.ErrProfilesWriteFailed, err.Error())
	}
	if err := enc.Close(); err != nil {
		return nil, zerr.Wrap(domain.ErrProfilesWriteFailed, err.Error())
	}
	return buf.Bytes(), nil
}
