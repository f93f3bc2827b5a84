package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device represents a named device owned by a user. Ownership is asserted
// by the caller on every request; the server does not verify it beyond the
// foreign key at creation time.
type Device struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
