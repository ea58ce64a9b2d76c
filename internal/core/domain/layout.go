package domain

import "path"

const (
	// SettingsFileName is the default name of the settings file.
	SettingsFileName = "settings.yaml"

	// ExampleSettingsFileName is the name of the documented settings template.
	ExampleSettingsFileName = "settings.example.yaml"

	// ProfilesFileName is the default name of the local salt-cloud profiles mirror.
	ProfilesFileName = "cloud.profiles"

	// RemoteProvidersPath is where salt-cloud reads provider definitions on the master.
	RemoteProvidersPath = "/etc/salt/cloud.providers"

	// RemoteProfilesPath is where salt-cloud reads profile definitions on the master.
	RemoteProfilesPath = "/etc/salt/cloud.profiles"

	// RemoteStateRoot is the directory salt states and pillars are unpacked into.
	RemoteStateRoot = "/srv/"

	// TarballDir is the staging directory for state archives, locally and remotely.
	TarballDir = "/tmp"

	// DefaultVolumeDevice is the block device volumes are attached as.
	DefaultVolumeDevice = "/dev/xvdb"

	// MountRoot is the directory volumes are mounted under.
	MountRoot = "/mnt"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// State trees pushed to the master, named after what they hold.
const (
	TreeSalt   = "salt"
	TreePillar = "pillar"
)

// TarballPath returns the staging path of the archive for the named state tree.
func TarballPath(tree string) string {
	return path.Join(TarballDir, tree+".tar.gz")
}

// MountPoint returns where the volume with the given name is mounted.
func MountPoint(volume string) string {
	return path.Join(MountRoot, volume)
}
