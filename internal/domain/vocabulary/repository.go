package vocabulary

import (
	"context"
	"math/rand"

	"ingles-autodidata/internal/domain/learning"
)

// Repository defines the contract for vocabulary storage.
// A nil level means "every level".
type Repository interface {
	// ByDifficulty retrieves the words of one level in stored order
	ByDifficulty(ctx context.Context, level learning.Level) ([]*Word, error)

	// ByCategory retrieves words of a category
	ByCategory(ctx context.Context, category Category, level *learning.Level) ([]*Word, error)

	// Random picks up to n distinct words in random order
	Random(ctx context.Context, n int, level *learning.Level, rng *rand.Rand) ([]*Word, error)

	// Search finds words whose text or definition contains query
	Search(ctx context.Context, query string) ([]*Word, error)

	// Categories returns the sorted set of categories in use
	Categories(ctx context.Context, level *learning.Level) ([]Category, error)

	// Count returns the number of words
	Count(ctx context.Context, level *learning.Level) (int, error)

	// Add appends a word to a level and persists the catalog
	Add(ctx context.Context, level learning.Level, word *Word) error

	// AddBatch appends several words and persists the catalog once
	AddBatch(ctx context.Context, level learning.Level, words []*Word) error

	// Exists checks if a level already holds the same word
	Exists(ctx context.Context, level learning.Level, text string) (bool, error)
}
