// Package router contains routing setup for the HTTP delivery.
package router

import (
	"pluvio/internal/delivery/http/middleware"
	"pluvio/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	DeviceHandler   *handler.DeviceHandler
	ForecastHandler *handler.ForecastHandler
	RealtimeHandler *handler.RealtimeHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	deviceHandler   *handler.DeviceHandler
	forecastHandler *handler.ForecastHandler
	realtimeHandler *handler.RealtimeHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		deviceHandler:   params.DeviceHandler,
		forecastHandler: params.ForecastHandler,
		realtimeHandler: params.RealtimeHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application. The route
// shapes mirror the frontend's expectations; none of them are gated on a
// session token (see AuthMiddleware).
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.authMiddleware.ResolveIdentity)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account routes
	e.POST("/users", r.userHandler.Register)
	e.POST("/login", r.userHandler.Login)
	e.POST("/getUserDetails", r.userHandler.GetDetails)

	// Device routes
	deviceGroup := e.Group("/devices")
	{
		deviceGroup.GET("", r.deviceHandler.List)
		deviceGroup.POST("", r.deviceHandler.Create)
		deviceGroup.DELETE("/:id", r.deviceHandler.Delete)
	}

	// Forecast route
	e.GET("/raincheck/:location/:day", r.forecastHandler.RainCheck)

	// Realtime channel
	e.GET("/ws", r.realtimeHandler.Connect)
}
