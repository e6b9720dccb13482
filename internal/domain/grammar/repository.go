package grammar

import "context"

// Repository defines the contract for grammar exercise storage
type Repository interface {
	// ByTopic retrieves the practice set for a topic (see Catalog.ForPractice)
	ByTopic(ctx context.Context, topic Topic) ([]*Exercise, error)

	// Topics returns every topic in stored order
	Topics(ctx context.Context) ([]Topic, error)

	// Count returns the number of exercises stored under topic, or all when topic is empty
	Count(ctx context.Context, topic Topic) (int, error)

	// All retrieves every exercise
	All(ctx context.Context) ([]*Exercise, error)

	// Add appends an exercise to a topic and persists the catalog
	Add(ctx context.Context, topic Topic, exercise *Exercise) error
}
