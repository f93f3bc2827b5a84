// Package notification implements the rain action notifier hooks.
package notification

import (
	"context"
	"log/slog"

	"pluvio/config"
	"pluvio/internal/domain/service"

	"go.uber.org/fx"
)

// logNotifier records the triggered action in the process log. It is the
// default hook when Firebase is not configured.
type logNotifier struct {
	logger *slog.Logger
}

func (n *logNotifier) Notify(_ context.Context, event *service.RainEvent) error {
	n.logger.Info("[Notify] Rain action",
		slog.String("location", event.Location),
		slog.String("date", event.Date),
		slog.Int("probability", event.Probability),
		slog.String("message", event.Message),
	)

	return nil
}

// NotifierParams holds dependencies for the Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewNotifier creates a Notifier based on configuration
func NewNotifier(params NotifierParams) (service.Notifier, error) {
	cfg := params.Config.Firebase
	logger := params.Logger

	// Without Firebase credentials the action degrades to a log line.
	if cfg == nil || cfg.CredentialsPath == "" {
		logger.Info("Firebase not configured, using log notifier")

		return &logNotifier{logger: logger}, nil
	}

	logger.Info("Using Firebase notifier",
		slog.String("project_id", cfg.ProjectID),
		slog.String("topic", cfg.Topic),
	)

	return NewFirebaseNotifier(params.Ctx, cfg.CredentialsPath, cfg.Topic)
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotifier),
)
