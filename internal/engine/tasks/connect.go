package tasks

import (
	"context"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"go.trai.ch/herd/internal/core/domain"
)

// ConnectParams are the arguments of connect.
type ConnectParams struct {
	User string `arg:"user,required"`
}

// Connect authenticates as User and loads the server list. The API key and
// tenant come from the settings, or are asked for when unset.
func Connect(ctx context.Context, s *Session, p ConnectParams) error {
	apiKey, ok := s.Settings.Get(domain.KeyAPIKey)
	if !ok || apiKey == "" {
		var err error
		if apiKey, err = s.Prompter.Password("Rackspace API key for " + p.User); err != nil {
			return err
		}
	}

	tenant, ok := s.Settings.Get(domain.KeyTenantID)
	if !ok || tenant == "" {
		var err error
		if tenant, err = s.Prompter.Prompt("Rackspace Tenant ID (account #) for " + p.User); err != nil {
			return err
		}
	}

	creds := domain.Credentials{
		User:        p.User,
		APIKey:      apiKey,
		TenantID:    tenant,
		IdentityURL: s.setting(domain.KeyIdentityURL),
		Region:      s.setting(domain.KeyRegion),
	}
	cloud, err := s.Connector.Connect(ctx, creds)
	if err != nil {
		return err
	}
	s.Creds = &creds
	s.Cloud = cloud

	if err := s.refreshBoxen(ctx); err != nil {
		return err
	}
	s.Logger.Info(fmt.Sprintf("Connected as %s in %s, %d servers", creds.User, creds.Region, len(s.Servers)))
	return nil
}

// Boxen prints the current server list.
func Boxen(ctx context.Context, s *Session, _ struct{}) error {
	if err := s.requireCloud(); err != nil {
		return err
	}
	if err := s.refreshBoxen(ctx); err != nil {
		return err
	}

	table := tablewriter.NewWriter(s.Out)
	table.Header("Name", "ID", "Status", "IPv4", "IPv6")
	for _, srv := range s.Servers {
		if err := table.Append(srv.Name, srv.ID, srv.Status, srv.IPv4, srv.IPv6); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(s.Out, strconv.Itoa(len(s.Servers))+" servers")
	return err
}
