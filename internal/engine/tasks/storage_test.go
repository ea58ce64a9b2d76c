package tasks_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/herd/internal/core/domain"
	"go.uber.org/mock/gomock"
)

func TestPasture_GrazesOntoSelectedServer(t *testing.T) {
	f := newFixture(t, nil).connected(web)
	h := f.selected(web, "pw")
	vol := domain.Volume{ID: "v1", Name: "data", Size: 100, Type: "SSD", Status: "creating"}

	gomock.InOrder(
		f.cloud.EXPECT().CreateVolume(gomock.Any(), domain.VolumeRequest{Name: "data", Size: 100, Type: "SSD"}).
			Return(vol, nil),
		f.cloud.EXPECT().ListVolumes(gomock.Any()).Return([]domain.Volume{vol}, nil),
		f.remote.EXPECT().Run(gomock.Any(), h, "mkdir -p /mnt/data").Return(nil),
		f.cloud.EXPECT().WaitForVolume(gomock.Any(), "v1", domain.VolumeAvailable).Return(nil),
		f.cloud.EXPECT().AttachVolume(gomock.Any(), "w1", "v1", "/dev/xvdb").Return(nil),
		f.cloud.EXPECT().WaitForVolume(gomock.Any(), "v1", domain.VolumeInUse).Return(nil),
		f.remote.EXPECT().Run(gomock.Any(), h, "mkfs.ext4 /dev/xvdb").Return(nil),
		f.remote.EXPECT().Run(gomock.Any(), h, "mount -t ext4 /dev/xvdb /mnt/data").Return(nil),
	)

	require.NoError(t, invoke(t, f.session, "pasture:data,100,SSD"))
}

func TestPasture_WithoutServer(t *testing.T) {
	f := newFixture(t, nil).connected()

	f.cloud.EXPECT().CreateVolume(gomock.Any(), domain.VolumeRequest{Name: "logs", Size: 200, Type: "SATA"}).
		Return(domain.Volume{ID: "v2", Name: "logs", Size: 200, Type: "SATA", Status: "creating"}, nil)

	require.NoError(t, invoke(t, f.session, "pasture:name=logs,medium=SATA,size=200"))
}

func TestGraze_AvailableVolumeOnOtherDevice(t *testing.T) {
	f := newFixture(t, nil).connected(web)
	h := f.selected(web, "pw")

	gomock.InOrder(
		f.cloud.EXPECT().ListVolumes(gomock.Any()).Return([]domain.Volume{
			{ID: "v0", Name: "other", Status: domain.VolumeAvailable},
			{ID: "v1", Name: "data", Status: domain.VolumeAvailable},
		}, nil),
		f.remote.EXPECT().Run(gomock.Any(), h, "mkdir -p /mnt/data").Return(nil),
		f.cloud.EXPECT().AttachVolume(gomock.Any(), "w1", "v1", "/dev/xvdc").Return(nil),
		f.cloud.EXPECT().WaitForVolume(gomock.Any(), "v1", domain.VolumeInUse).Return(nil),
		f.remote.EXPECT().Run(gomock.Any(), h, "mount -t ext4 /dev/xvdc /mnt/data").Return(nil),
	)

	require.NoError(t, invoke(t, f.session, "graze:data,/dev/xvdc"))
}

func TestGraze_QuotesVolumeName(t *testing.T) {
	f := newFixture(t, nil).connected(web)
	h := f.selected(web, "pw")

	gomock.InOrder(
		f.cloud.EXPECT().ListVolumes(gomock.Any()).Return([]domain.Volume{
			{ID: "v1", Name: "my data;touch /pwned", Status: domain.VolumeAvailable},
		}, nil),
		f.remote.EXPECT().Run(gomock.Any(), h, "mkdir -p '/mnt/my data;touch /pwned'").Return(nil),
		f.cloud.EXPECT().AttachVolume(gomock.Any(), "w1", "v1", "/dev/xvdb").Return(nil),
		f.cloud.EXPECT().WaitForVolume(gomock.Any(), "v1", domain.VolumeInUse).Return(nil),
		f.remote.EXPECT().Run(gomock.Any(), h, "mkfs.ext4 /dev/xvdb").Return(nil),
		f.remote.EXPECT().Run(gomock.Any(), h, "mount -t ext4 /dev/xvdb '/mnt/my data;touch /pwned'").Return(nil),
	)

	require.NoError(t, invoke(t, f.session, "graze:name=my data;touch /pwned,mkfs=true"))
}

func TestGraze_Errors(t *testing.T) {
	t.Run("volume missing", func(t *testing.T) {
		f := newFixture(t, nil).connected(web)
		f.selected(web, "pw")
		f.cloud.EXPECT().ListVolumes(gomock.Any()).Return(nil, nil)

		err := invoke(t, f.session, "graze:data")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrVolumeNotFound))
	})

	t.Run("no server selected", func(t *testing.T) {
		f := newFixture(t, nil).connected()

		err := invoke(t, f.session, "graze:data")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNoServerSelected))
	})

	t.Run("not connected", func(t *testing.T) {
		f := newFixture(t, nil)

		err := invoke(t, f.session, "pasture:data,100,SSD")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotConnected))
	})
}
