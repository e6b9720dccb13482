package usecases_test

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"ingles-autodidata/internal/application/usecases"
	"ingles-autodidata/internal/domain/learning"
	"ingles-autodidata/internal/domain/user"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type memoryRepository struct {
	saved map[user.Email]*user.Profile
	saves int
	err   error
}

func (m *memoryRepository) LoadAll(context.Context) (map[user.Email]*user.Profile, error) {
	return m.saved, nil
}

func (m *memoryRepository) SaveAll(_ context.Context, profiles map[user.Email]*user.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.saves++
	m.saved = profiles
	return nil
}

type fixture struct {
	repo     *memoryRepository
	dir      *user.Directory
	clock    *fakeClock
	users    *usecases.UserUseCase
	progress *usecases.ProgressUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	repo := &memoryRepository{}
	dir, err := user.OpenDirectory(context.Background(), repo)
	if err != nil {
		t.Fatalf("OpenDirectory: %v", err)
	}

	clock := &fakeClock{now: time.Date(2024, time.March, 4, 18, 30, 0, 0, time.UTC)}
	logger := zaptest.NewLogger(t)

	return &fixture{
		repo:     repo,
		dir:      dir,
		clock:    clock,
		users:    usecases.NewUserUseCase(dir, clock.Now, logger),
		progress: usecases.NewProgressUseCase(dir, clock.Now, logger),
	}
}

func (f *fixture) createAna(t *testing.T) *user.Profile {
	t.Helper()
	p, err := f.users.CreateProfile(context.Background(), "Ana", "ana@example.com", learning.LevelBeginner,
		[]user.Goal{user.GoalVocabulary})
	if err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}
	return p
}
