package ports

import "go.trai.ch/herd/internal/core/domain"

//go:generate mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks

// SettingsLoader resolves the deployment settings for a run.
type SettingsLoader interface {
	// Load reads the settings file at path together with the bound environment.
	Load(path string) (*domain.Settings, error)
	// WriteExample writes the documented settings template to path.
	WriteExample(path string) error
}
