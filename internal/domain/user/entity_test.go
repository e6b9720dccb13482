package user_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"ingles-autodidata/internal/domain/learning"
	"ingles-autodidata/internal/domain/user"
)

func TestParseEmail(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{input: "ana@example.com", valid: true},
		{input: "  bob@mail.co.uk ", valid: true},
		{input: "ana.example.com", valid: false},
		{input: "ana@localhost", valid: false},
		{input: "@example.com", valid: false},
		{input: "", valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := user.ParseEmail(tt.input)
			if tt.valid && err != nil {
				t.Fatalf("ParseEmail(%q) error = %v", tt.input, err)
			}
			if !tt.valid && !errors.Is(err, user.ErrInvalidEmail) {
				t.Fatalf("ParseEmail(%q) error = %v want ErrInvalidEmail", tt.input, err)
			}
		})
	}
}

func TestParseGoals(t *testing.T) {
	got := user.ParseGoals("1, 3,5,9,x,3")
	want := []user.Goal{user.GoalVocabulary, user.GoalConversation, user.GoalTravel}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseGoals() = %v want %v", got, want)
	}
	if got := user.ParseGoals(""); len(got) != 0 {
		t.Fatalf("ParseGoals(\"\") = %v want empty", got)
	}
}

func TestSnapshotRestore(t *testing.T) {
	p := newProfile(t, learning.LevelAdvanced)
	p.ApplySessionResult(result(t, learning.CategoryGrammar, 3, 4, 2, 0), day(2))

	restored, err := user.RestoreProfile(p.Snapshot())
	if err != nil {
		t.Fatalf("RestoreProfile: %v", err)
	}
	if !reflect.DeepEqual(restored.Snapshot(), p.Snapshot()) {
		t.Fatalf("restored %+v want %+v", restored.Snapshot(), p.Snapshot())
	}

	snap := p.Snapshot()
	snap.Level = "expert"
	if _, err := user.RestoreProfile(snap); !errors.Is(err, learning.ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestRestoreRejectsImpossibleStats(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*user.ProfileSnapshot)
	}{
		{"more correct than answered", func(s *user.ProfileSnapshot) { s.Stats.CorrectAnswers, s.Stats.TotalAnswers = 9, 4 }},
		{"negative sessions", func(s *user.ProfileSnapshot) { s.Stats.TotalSessions = -1 }},
		{"negative streak", func(s *user.ProfileSnapshot) { s.Stats.StreakDays = -2 }},
		{"negative study time", func(s *user.ProfileSnapshot) { s.Stats.StudyTimeMinutes = -5 }},
		{"negative points", func(s *user.ProfileSnapshot) {
			s.Progress[learning.CategoryVocabulary][learning.LevelBeginner] = -3
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := newProfile(t, learning.LevelBeginner).Snapshot()
			tt.modify(&snap)
			if _, err := user.RestoreProfile(snap); !errors.Is(err, user.ErrInvalidProfile) {
				t.Fatalf("expected ErrInvalidProfile, got %v", err)
			}
		})
	}
}

type memoryRepository struct {
	saved map[user.Email]*user.Profile
	err   error
}

func (m *memoryRepository) LoadAll(context.Context) (map[user.Email]*user.Profile, error) {
	return m.saved, nil
}

func (m *memoryRepository) SaveAll(_ context.Context, profiles map[user.Email]*user.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.saved = profiles
	return nil
}

func TestDirectory(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepository{}
	dir, err := user.OpenDirectory(ctx, repo)
	if err != nil {
		t.Fatalf("OpenDirectory: %v", err)
	}

	ana := newProfile(t, learning.LevelBeginner)
	bob, _ := user.NewProfile("bob@example.com", "Bob", learning.LevelAdvanced, nil, created)
	if err := dir.Create(bob); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := dir.Create(ana); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := dir.Create(ana); !errors.Is(err, user.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	list := dir.List()
	if len(list) != 2 || list[0].Email() != "ana@example.com" {
		t.Fatalf("List() not sorted by email")
	}

	if err := dir.Flush(ctx); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(repo.saved) != 2 {
		t.Fatalf("saved %d profiles want 2", len(repo.saved))
	}

	if err := dir.Delete("ana@example.com"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := dir.Get("ana@example.com"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := dir.Delete("ana@example.com"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	repo.err = errors.New("disk full")
	if err := dir.Flush(ctx); err == nil {
		t.Fatalf("expected flush error")
	}
}
