package openstack

import (
	"context"

	"github.com/gophercloud/gophercloud/v2/openstack/blockstorage/v3/volumes"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/flavors"
	"github.com/gophercloud/gophercloud/v2/openstack/compute/v2/volumeattach"
	"github.com/gophercloud/gophercloud/v2/openstack/image/v2/images"
	"go.trai.ch/herd/internal/core/domain"
	"go.trai.ch/zerr"
)

// ListImages returns the bootable images.
func (c *Cloud) ListImages(ctx context.Context) ([]domain.Image, error) {
	if c.image == nil {
		return nil, unavailable("image")
	}
	pages, err := images.List(c.image, images.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, requestFailed(err, "list images")
	}
	all, err := images.ExtractImages(pages)
	if err != nil {
		return nil, requestFailed(err, "list images")
	}

	out := make([]domain.Image, 0, len(all))
	for _, img := range all {
		out = append(out, domain.Image{ID: img.ID, Name: img.Name})
	}
	return out, nil
}

// ListFlavors returns the hardware sizes servers can be built with.
func (c *Cloud) ListFlavors(ctx context.Context) ([]domain.Flavor, error) {
	pages, err := flavors.ListDetail(c.compute, flavors.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, requestFailed(err, "list flavors")
	}
	all, err := flavors.ExtractFlavors(pages)
	if err != nil {
		return nil, requestFailed(err, "list flavors")
	}

	out := make([]domain.Flavor, 0, len(all))
	for _, f := range all {
		out = append(out, domain.Flavor{ID: f.ID, Name: f.Name, RAM: f.RAM, Disk: f.Disk})
	}
	return out, nil
}

// CreateVolume creates a block storage volume.
func (c *Cloud) CreateVolume(ctx context.Context, req domain.VolumeRequest) (domain.Volume, error) {
	if c.volume == nil {
		return domain.Volume{}, unavailable("block-storage")
	}
	v, err := volumes.Create(ctx, c.volume, volumes.CreateOpts{
		Name:       req.Name,
		Size:       req.Size,
		VolumeType: req.Type,
	}, nil).Extract()
	if err != nil {
		return domain.Volume{}, zerr.With(requestFailed(err, "create volume"), "name", req.Name)
	}
	return toVolume(v), nil
}

// ListVolumes returns every volume visible to the tenant.
func (c *Cloud) ListVolumes(ctx context.Context) ([]domain.Volume, error) {
	if c.volume == nil {
		return nil, unavailable("block-storage")
	}
	pages, err := volumes.List(c.volume, volumes.ListOpts{}).AllPages(ctx)
	if err != nil {
		return nil, requestFailed(err, "list volumes")
	}
	all, err := volumes.ExtractVolumes(pages)
	if err != nil {
		return nil, requestFailed(err, "list volumes")
	}

	out := make([]domain.Volume, 0, len(all))
	for i := range all {
		out = append(out, toVolume(&all[i]))
	}
	return out, nil
}

// AttachVolume attaches a volume to a server as device.
func (c *Cloud) AttachVolume(ctx context.Context, serverID, volumeID, device string) error {
	_, err := volumeattach.Create(ctx, c.compute, serverID, volumeattach.CreateOpts{
		Device:   device,
		VolumeID: volumeID,
	}).Extract()
	if err != nil {
		return zerr.With(zerr.With(requestFailed(err, "attach volume"), "server", serverID), "volume", volumeID)
	}
	return nil
}

// WaitForVolume polls until the volume reports status.
func (c *Cloud) WaitForVolume(ctx context.Context, id, status string) error {
	if c.volume == nil {
		return unavailable("block-storage")
	}
	var last string
	for {
		v, err := volumes.Get(ctx, c.volume, id).Extract()
		if err != nil {
			return zerr.With(requestFailed(err, "get volume"), "id", id)
		}
		switch v.Status {
		case status:
			return nil
		case "error", "error_attaching":
			return zerr.With(zerr.With(
				zerr.Wrap(domain.ErrCloudRequestFailed, "volume entered "+v.Status), "volume", v.Name), "id", id)
		}
		if v.Status != last {
			c.logger.Info("waiting for volume " + v.Name + " to become " + status + " (" + v.Status + ")")
			last = v.Status
		}
		if err := c.sleep(ctx); err != nil {
			return err
		}
	}
}

func toVolume(v *volumes.Volume) domain.Volume {
	return domain.Volume{
		ID:     v.ID,
		Name:   v.Name,
		Size:   v.Size,
		Type:   v.VolumeType,
		Status: v.Status,
	}
}
