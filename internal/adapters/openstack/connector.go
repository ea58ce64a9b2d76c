// Package openstack talks to an OpenStack provisioning API through gophercloud.
package openstack

import (
	"context"
	"time"

	"github.com/gophercloud/gophercloud/v2"
	"github.com/gophercloud/gophercloud/v2/openstack"
	"go.trai.ch/herd/internal/core/domain"
	"go.trai.ch/herd/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPollInterval is how often waits re-read a resource.
const DefaultPollInterval = 5 * time.Second

// Connector implements ports.CloudConnector.
type Connector struct {
	logger ports.Logger
	poll   time.Duration
}

// NewConnector creates a new Connector.
func NewConnector(logger ports.Logger) *Connector {
	return &Connector{logger: logger, poll: DefaultPollInterval}
}

// Connect authenticates with creds and resolves the service endpoints for creds.Region.
// Only compute is mandatory; block storage, image and DNS are bound when the catalog
// offers them.
func (c *Connector) Connect(ctx context.Context, creds domain.Credentials) (ports.Cloud, error) {
	provider, err := openstack.AuthenticatedClient(ctx, gophercloud.AuthOptions{
		IdentityEndpoint: creds.IdentityURL,
		Username:         creds.User,
		Password:         creds.APIKey,
		TenantID:         creds.TenantID,
		AllowReauth:      true,
	})
	if err != nil {
		return nil, zerr.With(zerr.With(
			zerr.Wrap(domain.ErrAuthenticationFailed, err.Error()),
			"user", creds.User), "identity_url", creds.IdentityURL)
	}

	endpoint := gophercloud.EndpointOpts{Region: creds.Region}

	compute, err := openstack.NewComputeV2(provider, endpoint)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrCloudRequestFailed, err.Error()), "region", creds.Region)
	}

	cloud := &Cloud{logger: c.logger, poll: c.poll, compute: compute}
	if sc, err := openstack.NewBlockStorageV3(provider, endpoint); err == nil {
		cloud.volume = sc
	}
	if sc, err := openstack.NewImageV2(provider, endpoint); err == nil {
		cloud.image = sc
	}
	if sc, err := openstack.NewDNSV2(provider, endpoint); err == nil {
		cloud.dns = sc
	}
	return cloud, nil
}
