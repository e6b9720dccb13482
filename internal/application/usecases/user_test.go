package usecases_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ingles-autodidata/internal/application/usecases"
	"ingles-autodidata/internal/domain/learning"
	"ingles-autodidata/internal/domain/user"
)

func TestCreateProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if f.users.HasProfiles() {
		t.Fatal("expected no profiles")
	}

	p := f.createAna(t)
	if p.Email() != "ana@example.com" || p.Level() != learning.LevelBeginner {
		t.Errorf("unexpected profile %s %s", p.Email(), p.Level())
	}
	if f.repo.saves != 1 {
		t.Errorf("expected one save, got %d", f.repo.saves)
	}
	if !f.users.HasProfiles() {
		t.Error("expected profiles after create")
	}

	_, err := f.users.CreateProfile(ctx, "Other Ana", " ana@example.com ", learning.LevelAdvanced, nil)
	if !errors.Is(err, user.ErrEmailTaken) {
		t.Errorf("expected ErrEmailTaken, got %v", err)
	}

	_, err = f.users.CreateProfile(ctx, "Bob", "bob-at-example", learning.LevelAdvanced, nil)
	if !errors.Is(err, user.ErrInvalidEmail) {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}
}

func TestLoginTouchesProfile(t *testing.T) {
	f := newFixture(t)
	f.createAna(t)

	f.clock.Advance(48 * time.Hour)
	p, err := f.users.Login(context.Background(), "ana@example.com")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !p.LastLoginAt().Equal(f.clock.now) {
		t.Errorf("last login = %v, want %v", p.LastLoginAt(), f.clock.now)
	}

	if _, err := f.users.Login(context.Background(), "nobody@example.com"); !errors.Is(err, user.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestEditProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createAna(t)
	email := user.Email("ana@example.com")

	if err := f.users.Rename(ctx, email, "Ana Maria"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if err := f.users.ChangeLevel(ctx, email, learning.LevelIntermediate); err != nil {
		t.Fatalf("ChangeLevel: %v", err)
	}
	if err := f.users.ChangeLevel(ctx, email, learning.Level("expert")); !errors.Is(err, learning.ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got %v", err)
	}
	if err := f.users.SetGoals(ctx, email, user.ParseGoals("3,5")); err != nil {
		t.Fatalf("SetGoals: %v", err)
	}

	p, _ := f.dir.Get(email)
	if p.Name() != "Ana Maria" || p.Level() != learning.LevelIntermediate {
		t.Errorf("unexpected profile %q %s", p.Name(), p.Level())
	}
	goals := p.Goals()
	if len(goals) != 2 || goals[0] != user.GoalConversation || goals[1] != user.GoalTravel {
		t.Errorf("unexpected goals %v", goals)
	}
}

func TestDeleteProfile(t *testing.T) {
	f := newFixture(t)
	f.createAna(t)

	if err := f.users.DeleteProfile(context.Background(), "ana@example.com"); err != nil {
		t.Fatalf("DeleteProfile: %v", err)
	}
	if f.users.HasProfiles() {
		t.Error("expected no profiles after delete")
	}
	if len(f.repo.saved) != 0 {
		t.Errorf("expected empty saved set, got %d", len(f.repo.saved))
	}
}

func TestExportProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.createAna(t)

	res, _ := learning.NewSessionResult(learning.CategoryVocabulary, 4, 5, 3, 4)
	if err := f.progress.RecordSession(ctx, "ana@example.com", res); err != nil {
		t.Fatalf("RecordSession: %v", err)
	}

	dir := t.TempDir()
	path, err := f.users.ExportProfile(ctx, "ana@example.com", dir)
	if err != nil {
		t.Fatalf("ExportProfile: %v", err)
	}
	if filepath.Base(path) != "ana-20240304.json" {
		t.Errorf("unexpected file name %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var doc usecases.ProfileExport
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode export: %v", err)
	}

	if doc.Stats.Accuracy != "80.0%" || doc.Stats.WordsLearned != 4 || doc.Stats.LastStudyDate != "2024-03-04" {
		t.Errorf("unexpected stats %+v", doc.Stats)
	}
	if doc.Progress["vocabulary"]["beginner"] != 4 {
		t.Errorf("unexpected progress %v", doc.Progress)
	}
}
