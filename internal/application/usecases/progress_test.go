package usecases_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"

	"ingles-autodidata/internal/application/usecases"
	"ingles-autodidata/internal/domain/learning"
	"ingles-autodidata/internal/domain/user"
	"ingles-autodidata/internal/infrastructure/persistence"
)

func TestRecordSessionAcrossDays(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createAna(t)
	email := user.Email("ana@example.com")

	sessions := []struct {
		advance  time.Duration
		category learning.Category
		correct  int
		total    int
		streak   int
		accuracy string
	}{
		{0, learning.CategoryVocabulary, 4, 5, 1, "80.0%"},
		{24 * time.Hour, learning.CategoryGrammar, 1, 2, 2, "71.4%"},
		{24 * time.Hour, learning.CategoryConversation, 3, 3, 3, "80.0%"},
		{72 * time.Hour, learning.CategoryVocabulary, 0, 5, 1, "53.3%"},
	}

	for i, s := range sessions {
		f.clock.Advance(s.advance)
		res, err := learning.NewSessionResult(s.category, s.correct, s.total, 2, 0)
		if err != nil {
			t.Fatalf("session %d: %v", i, err)
		}
		if err := f.progress.RecordSession(ctx, email, res); err != nil {
			t.Fatalf("session %d: RecordSession: %v", i, err)
		}

		stats, _, err := f.progress.Stats(ctx, email)
		if err != nil {
			t.Fatalf("session %d: Stats: %v", i, err)
		}
		if stats.StreakDays != s.streak {
			t.Errorf("session %d: streak = %d, want %d", i, stats.StreakDays, s.streak)
		}
		if stats.AccuracyText != s.accuracy {
			t.Errorf("session %d: accuracy = %s, want %s", i, stats.AccuracyText, s.accuracy)
		}
	}

	stats, progress, _ := f.progress.Stats(ctx, email)
	if stats.TotalSessions != 4 || stats.StudyTime != "8 minutes" {
		t.Errorf("unexpected totals %+v", stats)
	}
	if progress.Points(learning.CategoryVocabulary, learning.LevelBeginner) != 4 {
		t.Errorf("vocabulary points = %d", progress.Points(learning.CategoryVocabulary, learning.LevelBeginner))
	}
	if progress.Points(learning.CategoryGrammar, learning.LevelBeginner) != 1 {
		t.Errorf("grammar points = %d", progress.Points(learning.CategoryGrammar, learning.LevelBeginner))
	}
	if progress.Points(learning.CategoryConversation, learning.LevelBeginner) != 0 {
		t.Error("conversation sessions must not earn points")
	}
}

func TestRecordSessionSaveFailureKeepsUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createAna(t)

	f.repo.err = errors.New("disk full")
	res, _ := learning.NewSessionResult(learning.CategoryVocabulary, 2, 5, 1, 2)
	err := f.progress.RecordSession(ctx, "ana@example.com", res)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !errors.Is(err, f.repo.err) {
		t.Errorf("expected wrapped repository error, got %v", err)
	}

	p, _ := f.dir.Get("ana@example.com")
	if p.Stats().TotalSessions != 1 || p.Stats().WordsLearned != 2 {
		t.Errorf("in-memory profile lost the update: %+v", p.Stats())
	}
}

func TestRecordSessionUnknownProfile(t *testing.T) {
	f := newFixture(t)
	res, _ := learning.NewSessionResult(learning.CategoryGrammar, 1, 1, 0, 0)
	if err := f.progress.RecordSession(context.Background(), "ghost@example.com", res); !errors.Is(err, user.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestResetProgressKeepsPoints(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createAna(t)
	email := user.Email("ana@example.com")

	res, _ := learning.NewSessionResult(learning.CategoryGrammar, 3, 4, 5, 0)
	if err := f.progress.RecordSession(ctx, email, res); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}
	if err := f.progress.ResetProgress(ctx, email); err != nil {
		t.Fatalf("ResetProgress: %v", err)
	}

	stats, progress, _ := f.progress.Stats(ctx, email)
	if stats.TotalSessions != 0 || stats.StreakDays != 0 || stats.AccuracyText != "0.0%" {
		t.Errorf("stats not reset: %+v", stats)
	}
	if progress.Points(learning.CategoryGrammar, learning.LevelBeginner) != 3 {
		t.Error("reset must keep category points")
	}
}

func TestRecordSessionSavesAfterInterrupt(t *testing.T) {
	logger := zaptest.NewLogger(t)
	db, err := persistence.NewSQLiteDB(filepath.Join(t.TempDir(), "users.db"))
	if err != nil {
		t.Fatalf("NewSQLiteDB: %v", err)
	}
	store := persistence.NewSQLiteUserRepository(db, logger)
	defer store.Close()

	dir, err := user.OpenDirectory(context.Background(), store)
	if err != nil {
		t.Fatalf("OpenDirectory: %v", err)
	}
	clock := &fakeClock{now: time.Date(2024, time.March, 4, 18, 30, 0, 0, time.UTC)}
	users := usecases.NewUserUseCase(dir, clock.Now, logger)
	progress := usecases.NewProgressUseCase(dir, clock.Now, logger)

	if _, err := users.CreateProfile(context.Background(), "Ana", "ana@example.com", learning.LevelBeginner, nil); err != nil {
		t.Fatalf("CreateProfile: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, _ := learning.NewSessionResult(learning.CategoryVocabulary, 3, 5, 2, 3)
	if err := progress.RecordSession(ctx, "ana@example.com", res); err != nil {
		t.Fatalf("RecordSession after cancel: %v", err)
	}
	if err := progress.ResetProgress(ctx, "ana@example.com"); err != nil {
		t.Fatalf("ResetProgress after cancel: %v", err)
	}
	if err := progress.RecordSession(ctx, "ana@example.com", res); err != nil {
		t.Fatalf("RecordSession after cancel: %v", err)
	}

	saved, err := store.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	ana, ok := saved["ana@example.com"]
	if !ok {
		t.Fatal("profile missing from the store")
	}
	if ana.Stats().TotalSessions != 1 || ana.Stats().CorrectAnswers != 3 {
		t.Errorf("stored stats %+v, want the session recorded after the reset", ana.Stats())
	}
	if ana.Progress().Points(learning.CategoryVocabulary, learning.LevelBeginner) != 6 {
		t.Errorf("stored points = %d, want 6", ana.Progress().Points(learning.CategoryVocabulary, learning.LevelBeginner))
	}
}
