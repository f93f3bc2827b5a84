package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"pluvio/config"
	domainerrors "pluvio/internal/domain/errors"
	"pluvio/internal/domain/lifecycle"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Client wraps the PostgreSQL connection. When the connection cannot be
// established at startup the client stays unavailable and every storage
// call reports ErrDatabaseUnavailable, while the rest of the process keeps
// serving forecast and static routes.
type Client struct {
	db     *gorm.DB
	logger *slog.Logger
}

// New creates the PostgreSQL client. Connection failure is not fatal: it is
// logged and the returned client is permanently unavailable.
func New(params Params) *Client {
	client := &Client{logger: params.Logger}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		params.Logger.Error("PostgreSQL connection failed, storage endpoints will be unavailable",
			slog.Any("error", err),
		)

		return client
	}

	db = db.Session(&gorm.Session{
		// Disable GORM's per-statement implicit transaction. Every storage
		// operation here is a single statement.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})
	client.db = db

	sqlDB, err := db.DB()
	if err != nil {
		params.Logger.Error("Failed to get PostgreSQL sql.DB", slog.Any("error", err))
		client.db = nil

		return client
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// An unreachable database is degraded service, not a startup
			// failure. The pool retries on its own once the server is back.
			if err := sqlDB.PingContext(ctx); err != nil {
				params.Logger.Warn("PostgreSQL unreachable at startup", slog.Any("error", err))
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return client
}

// Ready reports whether the connection was established at startup.
func (c *Client) Ready() bool {
	return c.db != nil
}

// DB returns a request-scoped handle, or ErrDatabaseUnavailable when the
// connection was never established.
func (c *Client) DB(ctx context.Context) (*gorm.DB, error) {
	if c.db == nil {
		return nil, domainerrors.ErrDatabaseUnavailable.WrapMessage("no database connection")
	}

	return c.db.WithContext(ctx), nil
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
					slog.Int64("waitCountTotal", cur.WaitCount),
					slog.Duration("waitDurationTotal", cur.WaitDuration),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
