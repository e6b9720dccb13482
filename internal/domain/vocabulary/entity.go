package vocabulary

import (
	"errors"
	"strings"

	"ingles-autodidata/internal/domain/learning"
)

// DefaultCategory is used for words stored without a category
const DefaultCategory Category = "general"

// ErrInvalidWord is returned when a word lacks its text or definition
var ErrInvalidWord = errors.New("invalid word")

// Word represents a vocabulary entry with its definition and usage examples
type Word struct {
	text          string
	definition    string
	pronunciation string
	examples      []string
	category      Category
}

// Category represents the topical group of a word (greetings, nature, ...)
type Category string

// NewWord creates a new vocabulary word
func NewWord(text, definition, pronunciation string, examples []string, category Category) (*Word, error) {
	text = strings.TrimSpace(text)
	definition = strings.TrimSpace(definition)
	if text == "" || definition == "" {
		return nil, ErrInvalidWord
	}
	if strings.TrimSpace(string(category)) == "" {
		category = DefaultCategory
	}

	ex := make([]string, 0, len(examples))
	for _, e := range examples {
		if e = strings.TrimSpace(e); e != "" {
			ex = append(ex, e)
		}
	}

	return &Word{
		text:          text,
		definition:    definition,
		pronunciation: strings.TrimSpace(pronunciation),
		examples:      ex,
		category:      category,
	}, nil
}

// Getters
func (w *Word) Text() string          { return w.text }
func (w *Word) Definition() string    { return w.definition }
func (w *Word) Pronunciation() string { return w.pronunciation }
func (w *Word) Examples() []string    { return append([]string(nil), w.examples...) }
func (w *Word) Category() Category    { return w.category }

// Matches reports whether query occurs in the word or its definition, ignoring case
func (w *Word) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(w.text), q) ||
		strings.Contains(strings.ToLower(w.definition), q)
}

// SameAs reports whether two entries spell the same word, ignoring case
func (w *Word) SameAs(other *Word) bool {
	return strings.EqualFold(w.text, other.text)
}

// Catalog is the full word list grouped by level
type Catalog map[learning.Level][]*Word
