package tasks

import "go.trai.ch/herd/internal/engine/registry"

// Register adds every herd task to r.
func Register(r *registry.Registry[*Session]) {
	registry.Register(r, "connect", "Authenticate with the cloud and load the server list", Connect)
	registry.Register(r, "boxen", "Print the current server list", Boxen)
	registry.Register(r, "herd", "Select a server and prepare root access to it", Herd)
	registry.Register(r, "birth", "Create a server, via salt-cloud when the master knows its profile", Birth)
	registry.Register(r, "brand", "Publish DNS records for the selected server", Brand)
	registry.Register(r, "euthanise", "Delete the selected server", Euthanise)
	registry.Register(r, "bootstrap", "Install salt on the selected server", Bootstrap)
	registry.Register(r, "season", "Send local salt states and pillars to the selected server", Season)
	registry.Register(r, "pasture", "Create a block storage volume, grazing it if a server is selected", Pasture)
	registry.Register(r, "graze", "Attach and mount a volume on the selected server", Graze)
	registry.Register(r, "make_saltmaster", "Bring up, bootstrap and season the salt master", MakeSaltmaster)
	registry.Register(r, "shell", "Open an ssh session to the selected server", Shell)
	registry.Register(r, "cattle", "Bring up every server of a salt-cloud profiles file", Cattle)
}

// NewRegistry returns a registry holding every herd task.
func NewRegistry() *registry.Registry[*Session] {
	r := registry.New[*Session]()
	Register(r)
	return r
}
