package tasks

import (
	"context"

	"go.trai.ch/herd/internal/core/domain"
	"go.trai.ch/zerr"
)

// BrandParams are the arguments of brand.
type BrandParams struct {
	Aliases []string `arg:"aliases"`
}

// Brand publishes an A record for the selected server under the configured
// domain, and a CNAME to it for each alias. Existing records are updated, or
// replaced when their type differs.
func Brand(ctx context.Context, s *Session, p BrandParams) error {
	if err := s.requireBox(); err != nil {
		return err
	}
	if err := s.requireCloud(); err != nil {
		return err
	}
	dom, err := s.Settings.Require(domain.KeyDomain)
	if err != nil {
		return err
	}
	if s.Box.IPv4 == "" {
		return zerr.With(zerr.Wrap(domain.ErrNoPublicAddress, "cannot brand "+s.Box.Name), "server", s.Box.Name)
	}

	zone, err := s.Cloud.FindZone(ctx, dom)
	if err != nil {
		return err
	}
	records, err := s.Cloud.ListRecords(ctx, zone.ID)
	if err != nil {
		return err
	}
	byName := make(map[string]domain.Record, len(records))
	for _, r := range records {
		byName[r.Name] = r
	}

	b := &brander{s: s, zoneID: zone.ID, records: byName}
	recordName := s.Box.Name + "." + dom
	if err := b.manage(ctx, "A", recordName, s.Box.IPv4); err != nil {
		return err
	}
	for _, alias := range p.Aliases {
		if err := b.manage(ctx, "CNAME", alias+"."+dom, recordName); err != nil {
			return err
		}
	}
	return nil
}

type brander struct {
	s       *Session
	zoneID  string
	records map[string]domain.Record
}

func (b *brander) manage(ctx context.Context, typ, name, data string) error {
	existing, ok := b.records[name]
	if ok && existing.Type != typ {
		b.s.Logger.Info("Replacing record " + name + "...")
		if err := b.s.Cloud.DeleteRecord(ctx, b.zoneID, existing.ID); err != nil {
			return err
		}
		delete(b.records, name)
		ok = false
	}

	if ok {
		existing.Data = data
		existing.TTL = domain.RecordTTL
		if err := b.s.Cloud.UpdateRecord(ctx, b.zoneID, existing); err != nil {
			return err
		}
		b.s.Logger.Info("Updated record for " + name)
		return nil
	}

	rec := domain.Record{Name: name, Type: typ, Data: data, TTL: domain.RecordTTL}
	if err := b.s.Cloud.CreateRecord(ctx, b.zoneID, rec); err != nil {
		return err
	}
	b.records[name] = rec
	b.s.Logger.Info("Created record for " + name)
	return nil
}
