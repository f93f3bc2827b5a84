package repository

import (
	"context"

	"pluvio/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// Create persists a new device for an owner, filling in the generated id.
	Create(ctx context.Context, device *entity.Device) error

	// FindByOwner retrieves all devices for an owner, ordered ascending by id.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error)

	// Delete removes a device by id. Deleting an id that does not exist is
	// not an error.
	Delete(ctx context.Context, id uuid.UUID) error
}
