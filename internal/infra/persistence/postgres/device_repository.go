package postgres

import (
	"context"

	"pluvio/internal/domain/entity"
	domainerrors "pluvio/internal/domain/errors"
	"pluvio/internal/domain/repository"
	"pluvio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	client *Client
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(client *Client) repository.DeviceRepository {
	return &deviceRepository{
		client: client,
	}
}

// Create persists a new device for an owner.
func (repo *deviceRepository) Create(ctx context.Context, device *entity.Device) error {
	db, err := repo.client.DB(ctx)
	if err != nil {
		return err
	}

	deviceM := fromDeviceDomain(device)

	if err := db.Create(deviceM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMissingFields.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	// Update the entity with generated values
	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindByOwner retrieves all devices for a specific owner, ordered ascending by id.
func (repo *deviceRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error) {
	db, err := repo.client.DB(ctx)
	if err != nil {
		return nil, err
	}

	var deviceModels []*model.DeviceModel

	if err := db.
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find devices by owner")
	}

	devices := make([]*entity.Device, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// Delete removes a device by its ID. Deleting an id that does not exist is
// not an error.
func (repo *deviceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db, err := repo.client.DB(ctx)
	if err != nil {
		return err
	}

	result := db.
		Where("id = ?", id).
		Delete(&model.DeviceModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a GORM DeviceModel to a domain Device entity.
func toDeviceDomain(data *model.DeviceModel) *entity.Device {
	if data == nil {
		return nil
	}

	return &entity.Device{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromDeviceDomain converts a domain Device entity to a GORM DeviceModel.
func fromDeviceDomain(data *entity.Device) *model.DeviceModel {
	if data == nil {
		return nil
	}

	return &model.DeviceModel{
		ID:        data.ID,
		OwnerID:   data.OwnerID,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
