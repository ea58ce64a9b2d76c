package domain

import (
	"fmt"
	"maps"
	"slices"

	"al.essio.dev/pkg/shellescape"
)

// Profile is a salt-cloud profile: which provider, size and image a server uses.
// Extra holds any other profile options so they survive a rewrite.
type Profile struct {
	Provider string
	Size     string
	Image    string
	Extra    map[string]any
}

// Profiles maps a server name to the profile it is built from.
type Profiles map[string]Profile

// Names returns the profile names in sorted order.
func (p Profiles) Names() []string {
	return sortedKeys(p)
}

// Merge returns a new set holding p overlaid with other.
func (p Profiles) Merge(other Profiles) Profiles {
	out := make(Profiles, len(p)+len(other))
	maps.Copy(out, p)
	maps.Copy(out, other)
	return out
}

// ProviderName returns the salt-cloud provider name used for a cloud user.
func ProviderName(user string) string {
	return "rackspace-conf-" + user
}

// CloudProvider is the salt-cloud provider definition written to the master.
type CloudProvider struct {
	APIKey        string
	ComputeName   string
	ComputeRegion string
	IdentityURL   string
	Master        string
	Protocol      string
	Provider      string
	Tenant        string
	User          string
}

// NewCloudProvider builds the provider definition salt-cloud needs to act with creds.
// salt-cloud expects the token endpoint, not the identity root.
func NewCloudProvider(creds Credentials, computeName, master string) CloudProvider {
	return CloudProvider{
		APIKey:        creds.APIKey,
		ComputeName:   computeName,
		ComputeRegion: creds.Region,
		IdentityURL:   tokensURL(creds.IdentityURL),
		Master:        master,
		Protocol:      "ipv4",
		Provider:      "openstack",
		Tenant:        creds.TenantID,
		User:          creds.User,
	}
}

func tokensURL(identity string) string {
	if identity == "" {
		return ""
	}
	if identity[len(identity)-1] != '/' {
		identity += "/"
	}
	return identity + "tokens"
}

// Remote commands used to bootstrap salt on a fresh box.
const (
	CmdAptUpdate  = "apt-get -q update"
	CmdAptInstall = "apt-get -q --yes install git python-dev build-essential python-pip sshpass"

	CmdMasterBootstrap = "curl -L http://bootstrap.saltstack.org | sh -s -- -M -N git develop"
	CmdMasterPipDeps   = "pip install psutil apache-libcloud"
	CmdSaltCloud       = "pip install git+https://github.com/saltstack/salt-cloud.git#egg=salt_cloud"

	CmdMinionBootstrap = `python -c 'import urllib; print urllib.urlopen("http://bootstrap.saltstack.org").read()' | ` +
		"sh -s -- git develop"
)

// SaltCloudCreate returns the command that builds the server named after its profile.
func SaltCloudCreate(name string) string {
	return "salt-cloud -p " + shellescape.QuoteCommand([]string{name, name})
}

// UnpackCommand returns the command that extracts a staged archive into the state root.
func UnpackCommand(tarball string) string {
	return fmt.Sprintf("cd %s && tar -xzf %s -C %s", TarballDir, shellescape.Quote(tarball), RemoteStateRoot)
}

// MountCommands returns the commands that make the mount point of volume and
// mount dev there. mkfs prepends an ext4 format of dev.
func MountCommands(volume, dev string, mkfs bool) (prepare, format, mount string) {
	mnt := shellescape.Quote(MountPoint(volume))
	dev = shellescape.Quote(dev)
	prepare = "mkdir -p " + mnt
	if mkfs {
		format = "mkfs.ext4 " + dev
	}
	return prepare, format, "mount -t ext4 " + dev + " " + mnt
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}
