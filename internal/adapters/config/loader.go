// Package config resolves herd's settings from a YAML file and the environment.
package config

import (
	_ "embed"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"go.trai.ch/herd/internal/core/domain"
	"go.trai.ch/herd/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed settings.example.yaml
var exampleSettings []byte

// EnvPrefix prefixes environment variables that override any setting,
// e.g. HERD_DOMAIN or HERD_NAMING_SCHEME_SALTMASTER.
const EnvPrefix = "HERD"

// envBindings maps settings to the environment variables operators already export.
var envBindings = map[string]string{
	domain.KeyAPIKey:   "RACKSPACE_API_KEY",
	domain.KeyTenantID: "RACKSPACE_TENANT_ID",
}

// Loader implements ports.SettingsLoader using viper.
type Loader struct {
	fs     afero.Fs
	logger ports.Logger
}

// NewLoader creates a Loader reading from the OS filesystem.
func NewLoader(log ports.Logger) *Loader {
	return NewLoaderFs(afero.NewOsFs(), log)
}

// NewLoaderFs creates a Loader reading from fs.
func NewLoaderFs(fs afero.Fs, log ports.Logger) *Loader {
	return &Loader{fs: fs, logger: log}
}

// Load reads the settings file at path. Nested keys are flattened with dots
// and list values are joined with commas.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	exists, err := afero.Exists(l.fs, path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to stat settings file"), "path", path)
	}
	if !exists {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigurationMissing, "cannot load settings"), "path", path)
	}

	v := viper.New()
	v.SetFs(l.fs)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, value := range domain.DefaultSettings {
		v.SetDefault(key, value)
	}
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to bind environment"), "env", env)
		}
	}

	// The file is known to exist, so any failure here is about its content.
	if err := v.ReadInConfig(); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	values := make(map[string]string)
	for _, key := range v.AllKeys() {
		raw := v.Get(key)
		if raw == nil {
			continue
		}
		s, err := stringify(raw)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "key", key)
		}
		values[key] = s
	}

	return domain.NewSettings(values), nil
}

func stringify(raw any) (string, error) {
	switch raw.(type) {
	case []any, []string:
		items, err := cast.ToStringSliceE(raw)
		if err != nil {
			return "", err
		}
		return strings.Join(items, ","), nil
	default:
		return cast.ToStringE(raw)
	}
}

// WriteExample writes the settings template to path. It never overwrites.
func (l *Loader) WriteExample(path string) error {
	exists, err := afero.Exists(l.fs, path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat settings file"), "path", path)
	}
	if exists {
		return zerr.With(zerr.Wrap(domain.ErrConfigExists, "refusing to overwrite settings"), "path", path)
	}

	if err := afero.WriteFile(l.fs, path, exampleSettings, domain.PrivateFilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfigWriteFailed, err.Error()), "path", path)
	}

	l.logger.Info("Wrote settings template to " + path)
	return nil
}

// Example returns the embedded settings template.
func Example() []byte {
	return append([]byte(nil), exampleSettings...)
}
