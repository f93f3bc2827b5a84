package impl

import (
	"context"
	"log/slog"

	"pluvio/internal/domain/entity"
	"pluvio/internal/domain/repository"
	"pluvio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// DeviceServiceParams holds dependencies for deviceService, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	Logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: params.DeviceRepo,
		logger:     params.Logger,
	}
}

// List retrieves an owner's devices, ordered ascending by id.
func (srv *deviceService) List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error) {
	devices, err := srv.deviceRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by owner")
	}

	return devices, nil
}

// Create persists a new device for an owner.
func (srv *deviceService) Create(ctx context.Context, ownerID uuid.UUID, name string) (*entity.Device, error) {
	device := &entity.Device{
		OwnerID: ownerID,
		Name:    name,
	}

	if err := srv.deviceRepo.Create(ctx, device); err != nil {
		return nil, errors.Wrap(err, "failed to create device")
	}

	srv.logger.Info("Device created", slog.Any("deviceID", device.ID), slog.Any("ownerID", ownerID))

	return device, nil
}

// Delete removes a device by id. Deletion is unconditional: the id is not
// checked against any owner, and a missing id is not an error.
func (srv *deviceService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.deviceRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete device")
	}

	srv.logger.Debug("Device deleted", slog.Any("deviceID", id))

	return nil
}
