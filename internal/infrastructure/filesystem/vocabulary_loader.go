package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"go.uber.org/zap"

	"ingles-autodidata/internal/domain/learning"
	"ingles-autodidata/internal/domain/vocabulary"
)

// VocabularyLoader handles loading and saving the vocabulary bundle
type VocabularyLoader struct {
	logger *zap.Logger
}

// NewVocabularyLoader creates a new vocabulary loader
func NewVocabularyLoader(logger *zap.Logger) *VocabularyLoader {
	return &VocabularyLoader{logger: logger}
}

// VocabularyEntry represents a single vocabulary entry in JSON
type VocabularyEntry struct {
	Word          string   `json:"word"`
	Definition    string   `json:"definition"`
	Pronunciation string   `json:"pronunciation"`
	Examples      []string `json:"examples"`
	Category      string   `json:"category"`
}

// LoadFromFile loads vocabulary from a JSON file keyed by level
func (vl *VocabularyLoader) LoadFromFile(filename string) (vocabulary.Catalog, error) {
	file, err := openBundle(filename, "vocabulary.json")
	if err != nil {
		return nil, fmt.Errorf("failed to open vocabulary file: %w", err)
	}
	defer file.Close()

	return vl.decode(file)
}

// Load reads filename and falls back to the built-in vocabulary when it is missing or malformed
func (vl *VocabularyLoader) Load(filename string) (vocabulary.Catalog, error) {
	catalog, err := vl.LoadFromFile(filename)
	if err == nil {
		return catalog, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		vl.logger.Info("vocabulary file not found, using built-in words", zap.String("path", filename))
	} else {
		vl.logger.Warn("vocabulary file unreadable, using built-in words", zap.String("path", filename), zap.Error(err))
	}

	catalog, err = vl.LoadFromFile("")
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in vocabulary: %w", err)
	}
	return catalog, nil
}

// SaveToFile writes the catalog back in level order
func (vl *VocabularyLoader) SaveToFile(filename string, catalog vocabulary.Catalog) error {
	var keys []string
	for _, level := range learning.Levels() {
		if _, ok := catalog[level]; ok {
			keys = append(keys, string(level))
		}
	}

	data, err := encodeOrdered(keys, func(key string) any {
		words := catalog[learning.Level(key)]
		entries := make([]VocabularyEntry, 0, len(words))
		for _, w := range words {
			entries = append(entries, VocabularyEntry{
				Word:          w.Text(),
				Definition:    w.Definition(),
				Pronunciation: w.Pronunciation(),
				Examples:      w.Examples(),
				Category:      string(w.Category()),
			})
		}
		return entries
	})
	if err != nil {
		return fmt.Errorf("failed to encode vocabulary: %w", err)
	}

	if err := WriteFileAtomic(filename, data); err != nil {
		return fmt.Errorf("failed to save vocabulary: %w", err)
	}
	return nil
}

func (vl *VocabularyLoader) decode(r io.Reader) (vocabulary.Catalog, error) {
	catalog := make(vocabulary.Catalog)
	err := decodeOrdered(r, func(key string, raw json.RawMessage) error {
		level, err := learning.ParseLevel(key)
		if err != nil {
			return err
		}

		var entries []VocabularyEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			return fmt.Errorf("failed to decode %s words: %w", level, err)
		}

		for _, e := range entries {
			word, err := vocabulary.NewWord(e.Word, e.Definition, e.Pronunciation, e.Examples, vocabulary.Category(e.Category))
			if err != nil {
				return fmt.Errorf("%s word %q: %w", level, e.Word, err)
			}
			catalog[level] = append(catalog[level], word)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decode vocabulary JSON: %w", err)
	}
	return catalog, nil
}
