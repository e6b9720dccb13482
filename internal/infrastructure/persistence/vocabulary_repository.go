package persistence

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"sync"

	"ingles-autodidata/internal/domain/learning"
	"ingles-autodidata/internal/domain/vocabulary"
)

// VocabularyWriter persists a full vocabulary catalog
type VocabularyWriter interface {
	SaveToFile(filename string, catalog vocabulary.Catalog) error
}

type vocabularyRepository struct {
	mu      sync.RWMutex
	words   vocabulary.Catalog
	path    string
	storage VocabularyWriter
}

// NewVocabularyRepository creates a vocabulary repository over a loaded catalog.
// Additions are written to path through storage; a nil storage keeps them in memory.
func NewVocabularyRepository(words vocabulary.Catalog, path string, storage VocabularyWriter) vocabulary.Repository {
	if words == nil {
		words = make(vocabulary.Catalog)
	}
	return &vocabularyRepository{words: words, path: path, storage: storage}
}

// ByDifficulty retrieves the words of one level
func (r *vocabularyRepository) ByDifficulty(ctx context.Context, level learning.Level) ([]*vocabulary.Word, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]*vocabulary.Word(nil), r.words[level]...), nil
}

// ByCategory retrieves words by category, optionally within one level
func (r *vocabularyRepository) ByCategory(ctx context.Context, category vocabulary.Category, level *learning.Level) ([]*vocabulary.Word, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var words []*vocabulary.Word
	for _, w := range r.scope(level) {
		if w.Category() == category {
			words = append(words, w)
		}
	}
	return words, nil
}

// Random picks up to n words without repetition, in shuffled order
func (r *vocabularyRepository) Random(ctx context.Context, n int, level *learning.Level, rng *rand.Rand) ([]*vocabulary.Word, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	words := r.scope(level)
	perm := rng.Perm(len(words))
	if n < 0 {
		n = 0
	}
	if n < len(perm) {
		perm = perm[:n]
	}

	picked := make([]*vocabulary.Word, 0, len(perm))
	for _, i := range perm {
		picked = append(picked, words[i])
	}
	return picked, nil
}

// Search finds words whose text or definition contains query
func (r *vocabularyRepository) Search(ctx context.Context, query string) ([]*vocabulary.Word, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var results []*vocabulary.Word
	for _, w := range r.scope(nil) {
		if w.Matches(query) {
			results = append(results, w)
		}
	}
	return results, nil
}

// Categories returns the sorted categories in use
func (r *vocabularyRepository) Categories(ctx context.Context, level *learning.Level) ([]vocabulary.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[vocabulary.Category]bool)
	var categories []vocabulary.Category
	for _, w := range r.scope(level) {
		if !seen[w.Category()] {
			seen[w.Category()] = true
			categories = append(categories, w.Category())
		}
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	return categories, nil
}

// Count returns the number of words, optionally within one level
func (r *vocabularyRepository) Count(ctx context.Context, level *learning.Level) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if level != nil {
		return len(r.words[*level]), nil
	}
	total := 0
	for _, words := range r.words {
		total += len(words)
	}
	return total, nil
}

// Add appends a word and saves the catalog
func (r *vocabularyRepository) Add(ctx context.Context, level learning.Level, word *vocabulary.Word) error {
	return r.AddBatch(ctx, level, []*vocabulary.Word{word})
}

// AddBatch appends several words and saves the catalog once
func (r *vocabularyRepository) AddBatch(ctx context.Context, level learning.Level, words []*vocabulary.Word) error {
	if !level.IsValid() {
		return fmt.Errorf("failed to add words: %w", learning.ErrInvalidLevel)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.words[level] = append(r.words[level], words...)
	if r.storage == nil {
		return nil
	}
	if err := r.storage.SaveToFile(r.path, r.words); err != nil {
		return fmt.Errorf("failed to save vocabulary: %w", err)
	}
	return nil
}

// Exists checks if a level already holds the word
func (r *vocabularyRepository) Exists(ctx context.Context, level learning.Level, text string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	text = strings.TrimSpace(text)
	for _, w := range r.words[level] {
		if strings.EqualFold(w.Text(), text) {
			return true, nil
		}
	}
	return false, nil
}

// scope returns the words of one level, or of every level in level order
func (r *vocabularyRepository) scope(level *learning.Level) []*vocabulary.Word {
	if level != nil {
		return append([]*vocabulary.Word(nil), r.words[*level]...)
	}
	var words []*vocabulary.Word
	for _, l := range learning.Levels() {
		words = append(words, r.words[l]...)
	}
	return words
}
