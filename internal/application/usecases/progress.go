package usecases

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ingles-autodidata/internal/domain/learning"
	"ingles-autodidata/internal/domain/user"
)

// ProgressUseCase applies finished sessions to profiles and persists them
type ProgressUseCase struct {
	profiles *user.Directory
	clock    func() time.Time
	logger   *zap.Logger
}

// NewProgressUseCase creates a new progress use case
func NewProgressUseCase(profiles *user.Directory, clock func() time.Time, logger *zap.Logger) *ProgressUseCase {
	return &ProgressUseCase{
		profiles: profiles,
		clock:    clock,
		logger:   logger,
	}
}

// RecordSession applies a session result to the learner and saves immediately.
// When saving fails the in-memory profile keeps the update and the error is returned.
func (uc *ProgressUseCase) RecordSession(ctx context.Context, email user.Email, result learning.SessionResult) error {
	profile, err := uc.profiles.Get(email)
	if err != nil {
		return err
	}

	profile.ApplySessionResult(result, learning.DateOf(uc.clock()))

	if err := uc.profiles.Flush(ctx); err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}

	stats := profile.Stats()
	uc.logger.Debug("session recorded",
		zap.String("email", email.String()),
		zap.Int("total_sessions", stats.TotalSessions),
		zap.Int("streak_days", stats.StreakDays),
	)
	return nil
}

// ResetProgress clears the learner's statistics. Category points are kept.
func (uc *ProgressUseCase) ResetProgress(ctx context.Context, email user.Email) error {
	profile, err := uc.profiles.Get(email)
	if err != nil {
		return err
	}

	profile.ResetStats()

	if err := uc.profiles.Flush(ctx); err != nil {
		return fmt.Errorf("failed to reset progress: %w", err)
	}

	uc.logger.Info("progress reset", zap.String("email", email.String()))
	return nil
}

// Stats returns the display stats and category points of a learner
func (uc *ProgressUseCase) Stats(ctx context.Context, email user.Email) (user.DisplayStats, user.Progress, error) {
	profile, err := uc.profiles.Get(email)
	if err != nil {
		return user.DisplayStats{}, nil, err
	}
	return profile.DisplayStats(), profile.Progress(), nil
}
