package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// Setting keys understood by the built-in tasks. Nested keys use dots.
const (
	KeyDomain         = "domain"
	KeySaltmasterName = "naming_scheme.saltmaster"
	KeyIdentityURL    = "identity_url"
	KeyRegion         = "region"
	KeyComputeName    = "compute_name"
	KeyImage          = "image"
	KeyProfilesPath   = "profiles_path"
	KeyKnownHosts     = "known_hosts"
	KeySaltDir        = "salt_dir"
	KeyPillarDir      = "pillar_dir"
	KeyAPIKey         = "rackspace_api_key"
	KeyTenantID       = "rackspace_tenant_id"
)

// DefaultSettings are applied underneath the settings file.
var DefaultSettings = map[string]string{
	KeySaltmasterName: "saltmaster",
	KeyIdentityURL:    "https://identity.api.rackspacecloud.com/v2.0/",
	KeyRegion:         "LON",
	KeyComputeName:    "cloudServersOpenStack",
	KeyImage:          "Ubuntu 12.04",
	KeyProfilesPath:   ProfilesFileName,
	KeySaltDir:        "salt",
	KeyPillarDir:      "pillar",
}

// Settings is the deployment configuration of one process. It is built once
// and never changes afterwards.
type Settings struct {
	values map[string]string
}

// NewSettings returns Settings holding a copy of values.
func NewSettings(values map[string]string) *Settings {
	return &Settings{values: maps.Clone(values)}
}

// Get returns the value stored under key.
func (s *Settings) Get(key string) (string, bool) {
	if s == nil {
		return "", false
	}
	v, ok := s.values[key]
	return v, ok
}

// GetOr returns the value stored under key, or fallback when it is unset or empty.
func (s *Settings) GetOr(key, fallback string) string {
	if v, ok := s.Get(key); ok && v != "" {
		return v
	}
	return fallback
}

// Require returns the value stored under key and fails when it is unset or empty.
func (s *Settings) Require(key string) (string, error) {
	v, ok := s.Get(key)
	if !ok || v == "" {
		return "", zerr.With(zerr.Wrap(ErrSettingMissing, "missing setting "+key), "key", key)
	}
	return v, nil
}

// Keys returns the configured keys in sorted order.
func (s *Settings) Keys() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.values))
}

// Values returns a copy of every configured key and value.
func (s *Settings) Values() map[string]string {
	if s == nil {
		return map[string]string{}
	}
	return maps.Clone(s.values)
}

// Len reports how many keys are configured.
func (s *Settings) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

// SaltmasterName returns the server name reserved for the salt master.
func (s *Settings) SaltmasterName() string {
	return s.GetOr(KeySaltmasterName, DefaultSettings[KeySaltmasterName])
}
