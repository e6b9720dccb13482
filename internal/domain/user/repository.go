package user

import "context"

// Repository defines the contract for profile persistence.
// The whole collection is loaded and written at once.
type Repository interface {
	// LoadAll reads every stored profile keyed by email.
	// A missing store yields an empty map, not an error.
	LoadAll(ctx context.Context) (map[Email]*Profile, error)

	// SaveAll replaces the stored collection with profiles
	SaveAll(ctx context.Context, profiles map[Email]*Profile) error
}
