package openstack

import (
	"time"

	"github.com/gophercloud/gophercloud/v2"
	"go.trai.ch/herd/internal/core/ports"
)

// NewTestCloud binds every service to endpoint and polls without delay.
func NewTestCloud(logger ports.Logger, endpoint string) *Cloud {
	provider := &gophercloud.ProviderClient{}
	provider.SetToken("test-token")

	client := func() *gophercloud.ServiceClient {
		return &gophercloud.ServiceClient{ProviderClient: provider, Endpoint: endpoint}
	}
	return &Cloud{
		logger:  logger,
		poll:    time.Millisecond,
		compute: client(),
		volume:  client(),
		image:   client(),
		dns:     client(),
	}
}

// WithoutDNS drops the DNS service as if the catalog did not offer it.
func WithoutDNS(c *Cloud) *Cloud {
	c.dns = nil
	return c
}
