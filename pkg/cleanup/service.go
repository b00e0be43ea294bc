// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/agentforge/arc/pkg/config"
	"github.com/agentforge/arc/pkg/services"
)

// Service periodically enforces retention policies:
//   - Deletes expired token registry rows
//   - Prunes terminal runs past the retention window
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config   *config.RetentionConfig
	identity *services.IdentityService
	runs     *services.RunService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(
	cfg *config.RetentionConfig,
	identity *services.IdentityService,
	runs *services.RunService,
) *Service {
	return &Service{
		config:   cfg,
		identity: identity,
		runs:     runs,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"run_retention_days", s.config.RunRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.sweepExpiredTokens(ctx)
	s.pruneTerminalRuns(ctx)
}

func (s *Service) sweepExpiredTokens(ctx context.Context) {
	count, err := s.identity.SweepExpiredTokens(ctx, time.Now())
	if err != nil {
		slog.Error("Retention: token sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: swept expired tokens", "count", count)
	}
}

func (s *Service) pruneTerminalRuns(ctx context.Context) {
	if s.config.RunRetentionDays <= 0 {
		return
	}
	cutoff := time.Now().AddDate(0, 0, -s.config.RunRetentionDays)
	count, err := s.runs.PruneTerminalRuns(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: run pruning failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: pruned terminal runs", "count", count)
	}
}
