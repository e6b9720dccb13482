package user

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrNotFound is returned when no profile exists for an email
	ErrNotFound = errors.New("profile not found")
	// ErrEmailTaken is returned when creating a profile for an email already in use
	ErrEmailTaken = errors.New("email already exists")
)

// Directory is the in-memory set of profiles backed by a Repository.
// It is owned by a single goroutine.
type Directory struct {
	repo     Repository
	profiles map[Email]*Profile
}

// OpenDirectory loads every profile from repo
func OpenDirectory(ctx context.Context, repo Repository) (*Directory, error) {
	profiles, err := repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	if profiles == nil {
		profiles = make(map[Email]*Profile)
	}
	return &Directory{repo: repo, profiles: profiles}, nil
}

// Len returns the number of profiles
func (d *Directory) Len() int { return len(d.profiles) }

// Has reports whether a profile exists for email
func (d *Directory) Has(email Email) bool {
	_, ok := d.profiles[email]
	return ok
}

// Get returns the profile for email
func (d *Directory) Get(email Email) (*Profile, error) {
	p, ok := d.profiles[email]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, email)
	}
	return p, nil
}

// List returns every profile ordered by email
func (d *Directory) List() []*Profile {
	out := make([]*Profile, 0, len(d.profiles))
	for _, p := range d.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].email < out[j].email })
	return out
}

// Create adds a new profile. It does not flush.
func (d *Directory) Create(p *Profile) error {
	if d.Has(p.email) {
		return fmt.Errorf("%w: %s", ErrEmailTaken, p.email)
	}
	d.profiles[p.email] = p
	return nil
}

// Delete removes the profile for email. It does not flush.
func (d *Directory) Delete(email Email) error {
	if !d.Has(email) {
		return fmt.Errorf("%w: %s", ErrNotFound, email)
	}
	delete(d.profiles, email)
	return nil
}

// Flush writes the whole collection through the repository.
// The write is not cut short by cancellation of ctx: every change already applied
// in memory reaches the store, including the one made just before Ctrl+C.
func (d *Directory) Flush(ctx context.Context) error {
	if err := d.repo.SaveAll(context.WithoutCancel(ctx), d.profiles); err != nil {
		return fmt.Errorf("failed to save profiles: %w", err)
	}
	return nil
}
