package usecases

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"ingles-autodidata/internal/domain/learning"
	"ingles-autodidata/internal/domain/user"
	"ingles-autodidata/internal/infrastructure/filesystem"
)

// UserUseCase handles profile-related business operations
type UserUseCase struct {
	profiles *user.Directory
	clock    func() time.Time
	logger   *zap.Logger
}

// NewUserUseCase creates a new user use case
func NewUserUseCase(profiles *user.Directory, clock func() time.Time, logger *zap.Logger) *UserUseCase {
	return &UserUseCase{
		profiles: profiles,
		clock:    clock,
		logger:   logger,
	}
}

// HasProfiles reports whether any profile exists
func (uc *UserUseCase) HasProfiles() bool {
	return uc.profiles.Len() > 0
}

// Profiles lists every profile ordered by email
func (uc *UserUseCase) Profiles() []*user.Profile {
	return uc.profiles.List()
}

// CheckEmail validates an email and makes sure it is not in use yet
func (uc *UserUseCase) CheckEmail(input string) (user.Email, error) {
	email, err := user.ParseEmail(input)
	if err != nil {
		return "", err
	}
	if uc.profiles.Has(email) {
		return "", fmt.Errorf("%w: %s", user.ErrEmailTaken, email)
	}
	return email, nil
}

// CreateProfile registers a new learner and saves the profile set
func (uc *UserUseCase) CreateProfile(
	ctx context.Context,
	name, emailInput string,
	level learning.Level,
	goals []user.Goal,
) (*user.Profile, error) {
	email, err := uc.CheckEmail(emailInput)
	if err != nil {
		return nil, err
	}

	profile, err := user.NewProfile(email, name, level, goals, uc.clock())
	if err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	if err := uc.profiles.Create(profile); err != nil {
		return nil, err
	}
	if err := uc.profiles.Flush(ctx); err != nil {
		return nil, err
	}

	uc.logger.Info("profile created", zap.String("email", email.String()), zap.String("level", level.String()))
	return profile, nil
}

// Login stamps the last login time of a profile and saves it
func (uc *UserUseCase) Login(ctx context.Context, email user.Email) (*user.Profile, error) {
	profile, err := uc.profiles.Get(email)
	if err != nil {
		return nil, err
	}

	profile.Touch(uc.clock())
	if err := uc.profiles.Flush(ctx); err != nil {
		return nil, err
	}

	uc.logger.Info("profile logged in", zap.String("email", email.String()))
	return profile, nil
}

// Rename changes the display name of a profile
func (uc *UserUseCase) Rename(ctx context.Context, email user.Email, name string) error {
	return uc.update(ctx, email, func(p *user.Profile) error {
		p.Rename(name)
		return nil
	})
}

// ChangeLevel changes the level future points are credited to
func (uc *UserUseCase) ChangeLevel(ctx context.Context, email user.Email, level learning.Level) error {
	return uc.update(ctx, email, func(p *user.Profile) error {
		return p.ChangeLevel(level)
	})
}

// SetGoals replaces the goals of a profile
func (uc *UserUseCase) SetGoals(ctx context.Context, email user.Email, goals []user.Goal) error {
	return uc.update(ctx, email, func(p *user.Profile) error {
		return p.SetGoals(goals)
	})
}

// DeleteProfile removes a profile permanently
func (uc *UserUseCase) DeleteProfile(ctx context.Context, email user.Email) error {
	if err := uc.profiles.Delete(email); err != nil {
		return err
	}
	if err := uc.profiles.Flush(ctx); err != nil {
		return err
	}

	uc.logger.Info("profile deleted", zap.String("email", email.String()))
	return nil
}

// ProfileExport is the document written by ExportProfile
type ProfileExport struct {
	Name       string                    `json:"name"`
	Email      string                    `json:"email"`
	Level      string                    `json:"level"`
	Goals      []string                  `json:"goals"`
	CreatedAt  time.Time                 `json:"created_at"`
	LastLogin  time.Time                 `json:"last_login"`
	ExportedAt time.Time                 `json:"exported_at"`
	Stats      ExportedStats             `json:"stats"`
	Progress   map[string]map[string]int `json:"progress"`
}

// ExportedStats holds raw counters next to their display form
type ExportedStats struct {
	TotalSessions    int    `json:"total_sessions"`
	WordsLearned     int    `json:"words_learned"`
	CorrectAnswers   int    `json:"correct_answers"`
	TotalAnswers     int    `json:"total_answers"`
	Accuracy         string `json:"accuracy"`
	StudyTimeMinutes int    `json:"study_time_minutes"`
	StreakDays       int    `json:"streak_days"`
	LastStudyDate    string `json:"last_study_date,omitempty"`
}

// ExportProfile writes the profile and its statistics to dir and returns the file path.
// The file is named after the learner and the export date.
func (uc *UserUseCase) ExportProfile(ctx context.Context, email user.Email, dir string) (string, error) {
	profile, err := uc.profiles.Get(email)
	if err != nil {
		return "", err
	}

	now := uc.clock()
	snap := profile.Snapshot()
	display := profile.DisplayStats()

	goals := make([]string, len(snap.Goals))
	for i, g := range snap.Goals {
		goals[i] = string(g)
	}
	progress := make(map[string]map[string]int, len(snap.Progress))
	for c, levels := range snap.Progress {
		progress[string(c)] = make(map[string]int, len(levels))
		for l, v := range levels {
			progress[string(c)][string(l)] = v
		}
	}

	doc := ProfileExport{
		Name:       snap.Name,
		Email:      snap.Email.String(),
		Level:      snap.Level.String(),
		Goals:      goals,
		CreatedAt:  snap.CreatedAt,
		LastLogin:  snap.LastLoginAt,
		ExportedAt: now,
		Stats: ExportedStats{
			TotalSessions:    snap.Stats.TotalSessions,
			WordsLearned:     snap.Stats.WordsLearned,
			CorrectAnswers:   snap.Stats.CorrectAnswers,
			TotalAnswers:     snap.Stats.TotalAnswers,
			Accuracy:         display.AccuracyText,
			StudyTimeMinutes: snap.Stats.StudyTimeMinutes,
			StreakDays:       snap.Stats.StreakDays,
			LastStudyDate:    snap.Stats.LastStudyDate.String(),
		},
		Progress: progress,
	}

	name := slug.Make(snap.Name)
	if name == "" {
		name = "profile"
	}
	path := filepath.Join(dir, fmt.Sprintf("%s-%s.json", name, now.Format("20060102")))

	if err := filesystem.WriteJSON(path, doc); err != nil {
		return "", fmt.Errorf("failed to export profile: %w", err)
	}

	uc.logger.Info("profile exported", zap.String("email", email.String()), zap.String("path", path))
	return path, nil
}

func (uc *UserUseCase) update(ctx context.Context, email user.Email, change func(*user.Profile) error) error {
	profile, err := uc.profiles.Get(email)
	if err != nil {
		return err
	}
	if err := change(profile); err != nil {
		return err
	}
	return uc.profiles.Flush(ctx)
}
