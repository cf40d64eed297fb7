package impl

import (
	"context"
	"log/slog"
	"time"

	"beanwatch/internal/domain/repository"

	"go.uber.org/fx"
)

const sessionSweepInterval = time.Hour

// SessionCleanupParams holds dependencies for the session sweeper, injected by Fx.
type SessionCleanupParams struct {
	fx.In
	fx.Lifecycle

	TokenRepo repository.TokenRepository
	Logger    *slog.Logger
}

// StartSessionCleanup runs a background sweep removing expired session rows.
// Expired tokens already fail authentication on their own; the sweep only
// keeps the access_tokens table from growing without bound.
func StartSessionCleanup(params SessionCleanupParams) {
	sweepCtx, cancel := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweepExpiredSessions(sweepCtx, params.TokenRepo, params.Logger, sessionSweepInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()

			return nil
		},
	})
}

func sweepExpiredSessions(ctx context.Context, tokenRepo repository.TokenRepository, logger *slog.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := tokenRepo.DeleteExpiredTokens(ctx); err != nil {
				logger.Warn("Failed to sweep expired sessions", slog.Any("error", err))

				continue
			}

			logger.Debug("Expired sessions swept")
		}
	}
}
