package learning

import (
	"errors"
	"fmt"
)

// ErrInvalidSessionResult is returned when session counts break the result contract
var ErrInvalidSessionResult = errors.New("invalid session result")

// SessionResult is the summary of one completed quiz session.
// It is consumed once by the progress tracker and then discarded.
type SessionResult struct {
	category        Category
	correctCount    int
	totalCount      int
	elapsedMinutes  int
	newItemsLearned int
}

// NewSessionResult validates the counts of a finished session.
// newItems only counts for vocabulary sessions and is dropped for other categories.
func NewSessionResult(category Category, correct, total, elapsedMinutes, newItems int) (SessionResult, error) {
	switch {
	case !category.IsValid():
		return SessionResult{}, fmt.Errorf("%w: unknown category %q", ErrInvalidSessionResult, category)
	case correct < 0 || total < 0 || elapsedMinutes < 0 || newItems < 0:
		return SessionResult{}, fmt.Errorf("%w: negative count", ErrInvalidSessionResult)
	case correct > total:
		return SessionResult{}, fmt.Errorf("%w: %d correct out of %d", ErrInvalidSessionResult, correct, total)
	case newItems > correct:
		return SessionResult{}, fmt.Errorf("%w: %d new items but only %d correct", ErrInvalidSessionResult, newItems, correct)
	}

	if category != CategoryVocabulary {
		newItems = 0
	}

	return SessionResult{
		category:        category,
		correctCount:    correct,
		totalCount:      total,
		elapsedMinutes:  elapsedMinutes,
		newItemsLearned: newItems,
	}, nil
}

// Getters
func (r SessionResult) Category() Category   { return r.category }
func (r SessionResult) CorrectCount() int    { return r.correctCount }
func (r SessionResult) TotalCount() int      { return r.totalCount }
func (r SessionResult) ElapsedMinutes() int  { return r.elapsedMinutes }
func (r SessionResult) NewItemsLearned() int { return r.newItemsLearned }
