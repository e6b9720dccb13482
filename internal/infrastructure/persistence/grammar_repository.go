package persistence

import (
	"context"
	"fmt"
	"sync"

	"ingles-autodidata/internal/domain/grammar"
)

// GrammarWriter persists a full grammar catalog
type GrammarWriter interface {
	SaveToFile(filename string, catalog *grammar.Catalog) error
}

type grammarRepository struct {
	mu      sync.RWMutex
	catalog *grammar.Catalog
	path    string
	storage GrammarWriter
}

// NewGrammarRepository creates a grammar repository over a loaded catalog
func NewGrammarRepository(catalog *grammar.Catalog, path string, storage GrammarWriter) grammar.Repository {
	if catalog == nil {
		catalog = grammar.NewCatalog()
	}
	return &grammarRepository{catalog: catalog, path: path, storage: storage}
}

// ByTopic retrieves the practice set for a topic
func (r *grammarRepository) ByTopic(ctx context.Context, topic grammar.Topic) ([]*grammar.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.catalog.ForPractice(topic), nil
}

// Topics returns every topic in stored order
func (r *grammarRepository) Topics(ctx context.Context) ([]grammar.Topic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.catalog.Topics(), nil
}

// Count returns the exercise count for a topic, or the total when topic is empty
func (r *grammarRepository) Count(ctx context.Context, topic grammar.Topic) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if topic == "" {
		return r.catalog.Len(), nil
	}
	return len(r.catalog.Exercises(topic)), nil
}

// All retrieves every exercise in topic order
func (r *grammarRepository) All(ctx context.Context) ([]*grammar.Exercise, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var all []*grammar.Exercise
	for _, t := range r.catalog.Topics() {
		all = append(all, r.catalog.Exercises(t)...)
	}
	return all, nil
}

// Add appends an exercise and saves the catalog
func (r *grammarRepository) Add(ctx context.Context, topic grammar.Topic, exercise *grammar.Exercise) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.catalog.Append(topic, exercise)
	if r.storage == nil {
		return nil
	}
	if err := r.storage.SaveToFile(r.path, r.catalog); err != nil {
		return fmt.Errorf("failed to save grammar exercise: %w", err)
	}
	return nil
}
