package ports

import (
	"context"

	"go.trai.ch/herd/internal/core/domain"
)

//go:generate mockgen -source=cloud.go -destination=mocks/mock_cloud.go -package=mocks

// CloudConnector authenticates against the provisioning API.
type CloudConnector interface {
	Connect(ctx context.Context, creds domain.Credentials) (Cloud, error)
}

// Cloud is an authenticated provisioning API session.
type Cloud interface {
	ListServers(ctx context.Context) ([]domain.Server, error)
	GetServer(ctx context.Context, id string) (domain.Server, error)
	CreateServer(ctx context.Context, req domain.ServerRequest) (domain.Server, error)
	DeleteServer(ctx context.Context, id string) error
	ChangePassword(ctx context.Context, id, password string) error
	// WaitForServer blocks until the server is active and returns its final state.
	WaitForServer(ctx context.Context, id string) (domain.Server, error)
	// WaitForServerDeleted blocks until the server no longer exists.
	WaitForServerDeleted(ctx context.Context, id string) error

	ListImages(ctx context.Context) ([]domain.Image, error)
	ListFlavors(ctx context.Context) ([]domain.Flavor, error)

	CreateVolume(ctx context.Context, req domain.VolumeRequest) (domain.Volume, error)
	ListVolumes(ctx context.Context) ([]domain.Volume, error)
	AttachVolume(ctx context.Context, serverID, volumeID, device string) error
	// WaitForVolume blocks until the volume reaches status.
	WaitForVolume(ctx context.Context, id, status string) error

	FindZone(ctx context.Context, name string) (domain.Zone, error)
	ListRecords(ctx context.Context, zoneID string) ([]domain.Record, error)
	CreateRecord(ctx context.Context, zoneID string, rec domain.Record) error
	UpdateRecord(ctx context.Context, zoneID string, rec domain.Record) error
	DeleteRecord(ctx context.Context, zoneID, recordID string) error
}
