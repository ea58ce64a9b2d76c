package openstack

import (
	"context"
	"strings"

	"github.com/gophercloud/gophercloud/v2/openstack/dns/v2/recordsets"
	"github.com/gophercloud/gophercloud/v2/openstack/dns/v2/zones"
	"go.trai.ch/herd/internal/core/domain"
	"go.trai.ch/zerr"
)

// Designate stores names fully qualified; herd deals in names without the trailing dot.

// FindZone returns the zone hosting name.
func (c *Cloud) FindZone(ctx context.Context, name string) (domain.Zone, error) {
	if c.dns == nil {
		return domain.Zone{}, unavailable("dns")
	}
	pages, err := zones.List(c.dns, zones.ListOpts{Name: fqdn(name)}).AllPages(ctx)
	if err != nil {
		return domain.Zone{}, requestFailed(err, "list zones")
	}
	all, err := zones.ExtractZones(pages)
	if err != nil {
		return domain.Zone{}, requestFailed(err, "list zones")
	}
	for _, z := range all {
		if strings.EqualFold(z.Name, fqdn(name)) {
			return domain.Zone{ID: z.ID, Name: bare(z.Name)}, nil
		}
	}
	return domain.Zone{}, zerr.With(zerr.Wrap(domain.ErrZoneNotFound, "no zone for "+name), "domain", name)
}

// ListRecords returns every record set of a zone, one Record per record set.
func (c *Cloud) ListRecords(ctx context.Context, zoneID string) ([]domain.Record, error) {
	if c.dns == nil {
		return nil, unavailable("dns")
	}
	pages, err := recordsets.ListByZone(c.dns, zoneID, recordsets.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, zerr.With(requestFailed(err, "list records"), "zone", zoneID)
	}
	all, err := recordsets.ExtractRecordSets(pages)
	if err != nil {
		return nil, zerr.With(requestFailed(err, "list records"), "zone", zoneID)
	}

	out := make([]domain.Record, 0, len(all))
	for _, rs := range all {
		rec := domain.Record{ID: rs.ID, Name: bare(rs.Name), Type: rs.Type, TTL: rs.TTL}
		if len(rs.Records) > 0 {
			rec.Data = bare(rs.Records[0])
		}
		out = append(out, rec)
	}
	return out, nil
}

// CreateRecord adds a record set to a zone.
func (c *Cloud) CreateRecord(ctx context.Context, zoneID string, rec domain.Record) error {
	if c.dns == nil {
		return unavailable("dns")
	}
	_, err := recordsets.Create(ctx, c.dns, zoneID, recordsets.CreateOpts{
		Name:    fqdn(rec.Name),
		Type:    rec.Type,
		TTL:     rec.TTL,
		Records: []string{recordData(rec)},
	}).Extract()
	if err != nil {
		return zerr.With(zerr.With(requestFailed(err, "create record"), "name", rec.Name), "type", rec.Type)
	}
	return nil
}

// UpdateRecord replaces the data and TTL of an existing record set.
func (c *Cloud) UpdateRecord(ctx context.Context, zoneID string, rec domain.Record) error {
	if c.dns == nil {
		return unavailable("dns")
	}
	ttl := rec.TTL
	_, err := recordsets.Update(ctx, c.dns, zoneID, rec.ID, recordsets.UpdateOpts{
		TTL:     &ttl,
		Records: []string{recordData(rec)},
	}).Extract()
	if err != nil {
		return zerr.With(zerr.With(requestFailed(err, "update record"), "name", rec.Name), "type", rec.Type)
	}
	return nil
}

// DeleteRecord removes a record set.
func (c *Cloud) DeleteRecord(ctx context.Context, zoneID, recordID string) error {
	if c.dns == nil {
		return unavailable("dns")
	}
	if err := recordsets.Delete(ctx, c.dns, zoneID, recordID).ExtractErr(); err != nil {
		return zerr.With(requestFailed(err, "delete record"), "id", recordID)
	}
	return nil
}

// recordData returns the record payload, qualifying CNAME targets.
func recordData(rec domain.Record) string {
	if rec.Type == "CNAME" {
		return fqdn(rec.Data)
	}
	return rec.Data
}

func fqdn(name string) string {
	if strings.HasSuffix(name, ".") {
		return name
	}
	return name + "."
}

func bare(name string) string {
	return strings.TrimSuffix(name, ".")
}
