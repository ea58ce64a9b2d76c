package openstack

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/servers"
	"go.trai.ch/herd/internal/core/domain"
	"go.trai.ch/herd/internal/core/ports"
	"go.trai.ch/zerr"
)

// Server statuses reported by the compute service.
const (
	statusActive  = "ACTIVE"
	statusError   = "ERROR"
	statusDeleted = "DELETED"
)

// Cloud implements ports.Cloud over gophercloud service clients.
// A nil client means the service is not in the catalog.
type Cloud struct {
	logger ports.Logger
	poll   time.Duration

	compute *gophercloud.ServiceClient
	volume  *gophercloud.ServiceClient
	image   *gophercloud.ServiceClient
	dns     *gophercloud.ServiceClient
}

// ListServers returns every server visible to the tenant.
func (c *Cloud) ListServers(ctx context.Context) ([]domain.Server, error) {
	pages, err := servers.List(c.compute, servers.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, requestFailed(err, "list servers")
	}
	all, err := servers.ExtractServers(pages)
	if err != nil {
		return nil, requestFailed(err, "list servers")
	}

	out := make([]domain.Server, 0, len(all))
	for i := range all {
		out = append(out, toServer(&all[i]))
	}
	return out, nil
}

// GetServer returns the current state of one server.
func (c *Cloud) GetServer(ctx context.Context, id string) (domain.Server, error) {
	s, err := servers.Get(ctx, c.compute, id).Extract()
	if err != nil {
		if gophercloud.ResponseCodeIs(err, http.StatusNotFound) {
			return domain.Server{}, zerr.With(zerr.Wrap(domain.ErrServerNotFound, err.Error()), "id", id)
		}
		return domain.Server{}, zerr.With(requestFailed(err, "get server"), "id", id)
	}
	return toServer(s), nil
}

// CreateServer boots a new server. The returned server carries the generated admin password.
func (c *Cloud) CreateServer(ctx context.Context, req domain.ServerRequest) (domain.Server, error) {
	s, err := servers.Create(ctx, c.compute, servers.CreateOpts{
		Name:      req.Name,
		ImageRef:  req.ImageID,
		FlavorRef: req.FlavorID,
	}, nil).Extract()
	if err != nil {
		return domain.Server{}, zerr.With(requestFailed(err, "create server"), "name", req.Name)
	}
	created := toServer(s)
	if created.Name == "" {
		created.Name = req.Name
	}
	return created, nil
}

// DeleteServer schedules a server for deletion.
func (c *Cloud) DeleteServer(ctx context.Context, id string) error {
	if err := servers.Delete(ctx, c.compute, id).ExtractErr(); err != nil {
		return zerr.With(requestFailed(err, "delete server"), "id", id)
	}
	return nil
}

// ChangePassword sets the root password of a server.
func (c *Cloud) ChangePassword(ctx context.Context, id, password string) error {
	if err := servers.ChangeAdminPassword(ctx, c.compute, id, password).ExtractErr(); err != nil {
		return zerr.With(requestFailed(err, "change admin password"), "id", id)
	}
	return nil
}

// WaitForServer polls until the server is ACTIVE.
func (c *Cloud) WaitForServer(ctx context.Context, id string) (domain.Server, error) {
	var last string
	for {
		s, err := c.GetServer(ctx, id)
		if err != nil {
			return domain.Server{}, err
		}
		switch s.Status {
		case statusActive:
			return s, nil
		case statusError:
			return domain.Server{}, zerr.With(zerr.With(
				zerr.Wrap(domain.ErrCloudRequestFailed, "server failed to build"),
				"server", s.Name), "id", id)
		}
		if s.Status != last {
			c.logger.Info("waiting for " + s.Name + " to become active (" + strings.ToLower(s.Status) + ")")
			last = s.Status
		}
		if err := c.sleep(ctx); err != nil {
			return domain.Server{}, err
		}
	}
}

// WaitForServerDeleted polls until the server is gone.
func (c *Cloud) WaitForServerDeleted(ctx context.Context, id string) error {
	for {
		s, err := c.GetServer(ctx, id)
		switch {
		case errors.Is(err, domain.ErrServerNotFound):
			return nil
		case err != nil:
			return err
		case s.Status == statusDeleted:
			return nil
		}
		if err := c.sleep(ctx); err != nil {
			return err
		}
	}
}

func (c *Cloud) sleep(ctx context.Context) error {
	t := time.NewTimer(c.poll)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func toServer(s *servers.Server) domain.Server {
	v4, v6 := publicAddresses(s.Addresses)
	if v4 == "" {
		v4 = s.AccessIPv4
	}
	if v6 == "" {
		v6 = s.AccessIPv6
	}
	return domain.Server{
		ID:        s.ID,
		Name:      s.Name,
		Status:    s.Status,
		AdminPass: s.AdminPass,
		IPv4:      v4,
		IPv6:      v6,
	}
}

// publicAddresses picks the first IPv4 and IPv6 address on the "public" network.
func publicAddresses(addresses map[string]any) (v4, v6 string) {
	entries, ok := addresses["public"].([]any)
	if !ok {
		return "", ""
	}
	for _, entry := range entries {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		addr, _ := m["addr"].(string)
		version, _ := m["version"].(float64)
		switch {
		case version == 4 && v4 == "":
			v4 = addr
		case version == 6 && v6 == "":
			v6 = addr
		}
	}
	return v4, v6
}

func requestFailed(err error, op string) error {
	return zerr.With(zerr.Wrap(domain.ErrCloudRequestFailed, err.Error()), "operation", op)
}

func unavailable(service string) error {
	return zerr.With(zerr.Wrap(domain.ErrCloudRequestFailed, service+" service is not in the catalog"),
		"service", service)
}
