package tasks

import (
	"context"
	"fmt"

	"go.trai.ch/herd/internal/core/domain"
	"go.trai.ch/zerr"
)

// PastureParams are the arguments of pasture.
type PastureParams struct {
	Name   string `arg:"name,required"`
	Size   int    `arg:"size,required"`
	Medium string `arg:"medium,required"`
}

// Pasture creates a block storage volume of Size GB on Medium (SSD or SATA).
// When a server is selected the volume is grazed onto it and formatted.
func Pasture(ctx context.Context, s *Session, p PastureParams) error {
	if err := s.requireCloud(); err != nil {
		return err
	}

	vol, err := s.Cloud.CreateVolume(ctx, domain.VolumeRequest{Name: p.Name, Size: p.Size, Type: p.Medium})
	if err != nil {
		return err
	}
	s.Logger.Info(fmt.Sprintf("Created volume %s (%d GB %s)", vol.Name, p.Size, p.Medium))

	if s.Box == nil {
		return nil
	}
	return Graze(ctx, s, GrazeParams{Name: p.Name, MkFS: true})
}

// GrazeParams are the arguments of graze.
type GrazeParams struct {
	Name string `arg:"name,required"`
	Dev  string `arg:"dev"`
	MkFS bool   `arg:"mkfs"`
}

// Graze attaches the volume called Name to the selected server as Dev and
// mounts it under /mnt/<name>, creating an ext4 filesystem first with MkFS.
func Graze(ctx context.Context, s *Session, p GrazeParams) error {
	if err := s.requireBox(); err != nil {
		return err
	}
	if err := s.requireCloud(); err != nil {
		return err
	}
	host, err := s.requireHost()
	if err != nil {
		return err
	}
	dev := p.Dev
	if dev == "" {
		dev = domain.DefaultVolumeDevice
	}

	volumes, err := s.Cloud.ListVolumes(ctx)
	if err != nil {
		return err
	}
	vol, ok := domain.FindVolume(volumes, p.Name)
	if !ok {
		return zerr.With(zerr.Wrap(domain.ErrVolumeNotFound, "no volume named "+p.Name), "volume", p.Name)
	}

	prepare, format, mount := domain.MountCommands(p.Name, dev, p.MkFS)
	if err := s.Remote.Run(ctx, host, prepare); err != nil {
		return err
	}

	if vol.Status != domain.VolumeAvailable {
		if err := s.Cloud.WaitForVolume(ctx, vol.ID, domain.VolumeAvailable); err != nil {
			return err
		}
	}
	if err := s.Cloud.AttachVolume(ctx, s.Box.ID, vol.ID, dev); err != nil {
		return err
	}
	s.Logger.Info(fmt.Sprintf("Attached storage %s to %s on %s", p.Name, s.Box.Name, dev))
	s.Logger.Info("Waiting for volume to attach...")
	if err := s.Cloud.WaitForVolume(ctx, vol.ID, domain.VolumeInUse); err != nil {
		return err
	}
	s.Logger.Info("Attached!")

	if format != "" {
		if err := s.Remote.Run(ctx, host, format); err != nil {
			return err
		}
		s.Logger.Info("Made fs (ext4) on " + dev)
	}
	if err := s.Remote.Run(ctx, host, mount); err != nil {
		return err
	}
	s.Logger.Info(fmt.Sprintf("Mounted %s at %s", dev, domain.MountPoint(p.Name)))
	return nil
}
