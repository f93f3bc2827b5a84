package usecase

import (
	"context"

	"pluvio/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateDeviceInput carries the device creation request fields.
type CreateDeviceInput struct {
	OwnerID string `json:"ownerId" validate:"required"`
	Name    string `json:"name" validate:"required"`
}

// DeviceUsecase defines the device management use cases.
type DeviceUsecase interface {
	// List retrieves an owner's devices, ordered ascending by id. An owner
	// with no devices yields an empty slice, not an error.
	List(ctx context.Context, ownerID uuid.UUID) ([]*entity.Device, error)

	// Create persists a new device for an owner.
	Create(ctx context.Context, ownerID uuid.UUID, name string) (*entity.Device, error)

	// Delete removes a device by id. It succeeds even when the id does not
	// exist and performs no ownership check.
	Delete(ctx context.Context, id uuid.UUID) error
}
