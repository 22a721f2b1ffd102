package app

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

// Postgres may still be starting when the service boots.
const (
	connectAttempts = 5
	attemptTimeout  = 5 * time.Second
	firstBackoff    = 500 * time.Millisecond
)

// App owns the process-wide resources shared by every command.
type App struct {
	DB *pgxpool.Pool
}

// NewApp dials the database, backing off between failed attempts. It gives
// up early if ctx is cancelled.
func NewApp(ctx context.Context, databaseURL string) (*App, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	poolCfg.MaxConnIdleTime = 2 * time.Minute
	poolCfg.HealthCheckPeriod = 30 * time.Second

	wait := firstBackoff
	for attempt := 1; ; attempt++ {
		pool, err := dial(ctx, poolCfg)
		if err == nil {
			utils.Logger.WithField("attempt", attempt).Info("database connected")
			return &App{DB: pool}, nil
		}
		if attempt == connectAttempts {
			return nil, fmt.Errorf("database unreachable after %d attempts: %w", attempt, err)
		}

		utils.Logger.WithError(err).WithFields(logrus.Fields{
			"attempt": attempt,
			"retry":   wait.String(),
		}).Warn("database connect failed")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
		wait *= 2
	}
}

func dial(ctx context.Context, cfg *pgxpool.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(ctx, attemptTimeout)
	defer cancel()
	return pgxpool.ConnectConfig(ctx, cfg.Copy())
}

func (a *App) Close() {
	if a.DB == nil {
		return
	}
	a.DB.Close()
	utils.Logger.Info("database pool closed")
}
