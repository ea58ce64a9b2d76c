package domain

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Credentials authenticate against the provisioning API.
type Credentials struct {
	User        string
	APIKey      string
	TenantID    string
	IdentityURL string
	Region      string
}

// Server is a compute instance as reported by the provisioning API.
type Server struct {
	ID        string
	Name      string
	Status    string
	AdminPass string
	IPv4      string
	IPv6      string
}

// Image is a bootable base image.
type Image struct {
	ID   string
	Name string
}

// Flavor is a hardware size a server can be created with. RAM is in MB, Disk in GB.
type Flavor struct {
	ID   string
	Name string
	RAM  int
	Disk int
}

// ServerRequest describes a server to create.
type ServerRequest struct {
	Name     string
	ImageID  string
	FlavorID string
}

// Volume is a block storage volume.
type Volume struct {
	ID     string
	Name   string
	Size   int
	Type   string
	Status string
}

// VolumeRequest describes a volume to create. Size is in GB.
type VolumeRequest struct {
	Name string
	Size int
	Type string
}

// Volume statuses reported by the block storage service.
const (
	VolumeAvailable = "available"
	VolumeInUse     = "in-use"
)

// Zone is a DNS zone hosted by the provisioning API.
type Zone struct {
	ID   string
	Name string
}

// Record is a single DNS record inside a zone.
type Record struct {
	ID   string
	Name string
	Type string
	Data string
	TTL  int
}

// RecordTTL is the TTL given to every record herd publishes.
const RecordTTL = 300

// FindFlavor returns the first flavor whose RAM or disk equals size.
func FindFlavor(flavors []Flavor, size int) (Flavor, bool) {
	for _, f := range flavors {
		if f.RAM == size || f.Disk == size {
			return f, true
		}
	}
	return Flavor{}, false
}

// FindImage returns the first image whose name contains name.
func FindImage(images []Image, name string) (Image, bool) {
	for _, img := range images {
		if strings.Contains(img.Name, name) {
			return img, true
		}
	}
	return Image{}, false
}

// FindVolume returns the volume with the given name.
func FindVolume(volumes []Volume, name string) (Volume, bool) {
	for _, v := range volumes {
		if v.Name == name {
			return v, true
		}
	}
	return Volume{}, false
}

// Host is an SSH target derived from a server.
type Host struct {
	User     string
	Address  string
	Port     int
	Password string
	// KnownHosts is an OpenSSH known_hosts file used to verify the host key.
	// Empty disables verification.
	KnownHosts string
}

// DefaultSSHPort is the port herd connects to.
const DefaultSSHPort = 22

// NewHost returns the root login for a server's public IPv4 address.
func NewHost(s Server) (Host, error) {
	if s.IPv4 == "" {
		return Host{}, zerr.With(zerr.With(
			zerr.Wrap(ErrNoPublicAddress, fmt.Sprintf("server %s has no address yet", s.Name)),
			"server", s.Name), "id", s.ID)
	}
	return Host{User: "root", Address: s.IPv4, Port: DefaultSSHPort}, nil
}

// Addr returns the host:port to dial.
func (h Host) Addr() string {
	return net.JoinHostPort(h.Address, strconv.Itoa(h.Port))
}

// Login returns user@address, the form ssh expects on its command line.
func (h Host) Login() string {
	return h.User + "@" + h.Address
}

// String returns user@address:port. It identifies the host in the password cache.
func (h Host) String() string {
	return h.User + "@" + h.Addr()
}
