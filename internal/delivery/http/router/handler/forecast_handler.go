package handler

import (
	"log/slog"
	"net/http"

	"pluvio/internal/delivery/http/response"
	"pluvio/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ForecastHandler holds dependencies for the rain check handler.
type ForecastHandler struct {
	uc     usecase.ForecastUsecase
	logger *slog.Logger
}

// NewForecastHandler is the constructor for ForecastHandler, injected by Fx.
func NewForecastHandler(uc usecase.ForecastUsecase, logger *slog.Logger) *ForecastHandler {
	return &ForecastHandler{
		uc:     uc,
		logger: logger,
	}
}

// RainCheck evaluates the precipitation threshold rule for one location and
// day. The day segment is free-form; anything unusable falls back to day 1
// inside the use case.
func (h *ForecastHandler) RainCheck(c echo.Context) error {
	location := c.Param("location")
	day := c.Param("day")

	result, err := h.uc.RainCheck(c.Request().Context(), location, day)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, result)
}
