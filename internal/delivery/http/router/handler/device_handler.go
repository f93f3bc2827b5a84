package handler

import (
	"log/slog"
	"net/http"

	"pluvio/internal/delivery/http/response"
	"pluvio/internal/domain/entity"
	"pluvio/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DeviceHandler holds dependencies for device-related handlers.
type DeviceHandler struct {
	uc     usecase.DeviceUsecase
	logger *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler, injected by Fx.
func NewDeviceHandler(uc usecase.DeviceUsecase, logger *slog.Logger) *DeviceHandler {
	return &DeviceHandler{
		uc:     uc,
		logger: logger,
	}
}

// deviceItem is the wire projection of a listed device.
type deviceItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// createdDevice is the wire projection of a freshly created device.
type createdDevice struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"ownerId"`
}

// List returns the devices of one owner, ascending by id.
func (h *DeviceHandler) List(c echo.Context) error {
	rawOwner := c.QueryParam("ownerId")
	if rawOwner == "" {
		return response.BadRequest(c, "missing ownerId")
	}

	ownerID, err := uuid.Parse(rawOwner)
	if err != nil {
		return response.BadRequest(c, "invalid ownerId")
	}

	devices, err := h.uc.List(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toDeviceItems(devices))
}

// Create registers a new device for an owner.
func (h *DeviceHandler) Create(c echo.Context) error {
	var input *usecase.CreateDeviceInput
	if err := c.Bind(&input); err != nil {
		return response.BadRequest(c, "invalid device input")
	}

	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	ownerID, err := uuid.Parse(input.OwnerID)
	if err != nil {
		return response.BadRequest(c, "invalid ownerId")
	}

	device, err := h.uc.Create(c.Request().Context(), ownerID, input.Name)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, createdDevice{
		ID:      device.ID,
		Name:    device.Name,
		OwnerID: device.OwnerID,
	})
}

// Delete removes a device by id. It answers 200 even when the id does not
// exist; the original client treats delete as fire-and-forget.
func (h *DeviceHandler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "invalid device id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusOK)
}

func toDeviceItems(devices []*entity.Device) []deviceItem {
	items := make([]deviceItem, 0, len(devices))
	for _, device := range devices {
		items = append(items, deviceItem{ID: device.ID, Name: device.Name})
	}

	return items
}
