package ports

import "go.trai.ch/herd/internal/core/domain"

//go:generate mockgen -source=profiles.go -destination=mocks/mock_profiles.go -package=mocks

// ProfileStore reads and writes salt-cloud documents.
type ProfileStore interface {
	// Load reads a local profiles file. A missing file yields an empty set.
	Load(path string) (domain.Profiles, error)
	// Save writes profiles to a local file.
	Save(path string, profiles domain.Profiles) error
	// Decode parses a profiles document.
	Decode(data []byte) (domain.Profiles, error)
	// Encode renders a profiles document.
	Encode(profiles domain.Profiles) ([]byte, error)
	// EncodeProvider renders a providers document holding p under name.
	EncodeProvider(name string, p domain.CloudProvider) ([]byte, error)
}
