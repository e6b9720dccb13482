package learning

import (
	"errors"
	"testing"
)

func TestNewSessionResultRejectsBrokenCounts(t *testing.T) {
	tests := []struct {
		name     string
		category Category
		correct  int
		total    int
		elapsed  int
		newItems int
	}{
		{name: "unknown category", category: Category("music"), correct: 1, total: 1},
		{name: "negative correct", category: CategoryGrammar, correct: -1, total: 1},
		{name: "negative elapsed", category: CategoryGrammar, correct: 0, total: 1, elapsed: -3},
		{name: "correct above total", category: CategoryVocabulary, correct: 5, total: 4},
		{name: "more new words than correct", category: CategoryVocabulary, correct: 2, total: 4, newItems: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSessionResult(tt.category, tt.correct, tt.total, tt.elapsed, tt.newItems)
			if !errors.Is(err, ErrInvalidSessionResult) {
				t.Fatalf("NewSessionResult() error = %v, want ErrInvalidSessionResult", err)
			}
		})
	}
}

func TestNewSessionResultDropsNewItemsOutsideVocabulary(t *testing.T) {
	r, err := NewSessionResult(CategoryGrammar, 3, 4, 2, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.NewItemsLearned() != 0 {
		t.Fatalf("NewItemsLearned() = %d want 0", r.NewItemsLearned())
	}

	r, err = NewSessionResult(CategoryVocabulary, 8, 10, 5, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.NewItemsLearned() != 8 || r.CorrectCount() != 8 || r.TotalCount() != 10 || r.ElapsedMinutes() != 5 {
		t.Fatalf("unexpected result %+v", r)
	}
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("  Intermediate ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if level != LevelIntermediate {
		t.Fatalf("ParseLevel() = %q want %q", level, LevelIntermediate)
	}

	if _, err := ParseLevel("expert"); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestCategoryTracking(t *testing.T) {
	if !CategoryVocabulary.IsTracked() || !CategoryGrammar.IsTracked() {
		t.Fatalf("vocabulary and grammar must be tracked")
	}
	if CategoryConversation.IsTracked() {
		t.Fatalf("conversation must not be tracked")
	}
}
