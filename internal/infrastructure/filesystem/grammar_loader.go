package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"go.uber.org/zap"

	"ingles-autodidata/internal/domain/grammar"
)

// GrammarLoader handles loading and saving grammar exercises
type GrammarLoader struct {
	logger *zap.Logger
}

// NewGrammarLoader creates a new grammar loader
func NewGrammarLoader(logger *zap.Logger) *GrammarLoader {
	return &GrammarLoader{logger: logger}
}

// GrammarEntry represents a single grammar exercise in JSON
type GrammarEntry struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     string   `json:"correct"`
	Explanation string   `json:"explanation"`
}

// LoadFromFile loads exercises from a JSON file keyed by topic, keeping topic order
func (gl *GrammarLoader) LoadFromFile(filename string) (*grammar.Catalog, error) {
	file, err := openBundle(filename, "grammar.json")
	if err != nil {
		return nil, fmt.Errorf("failed to open grammar file: %w", err)
	}
	defer file.Close()

	return gl.decode(file)
}

// Load reads filename and falls back to the built-in exercises when it is missing or malformed
func (gl *GrammarLoader) Load(filename string) (*grammar.Catalog, error) {
	catalog, err := gl.LoadFromFile(filename)
	if err == nil {
		return catalog, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		gl.logger.Info("grammar file not found, using built-in exercises", zap.String("path", filename))
	} else {
		gl.logger.Warn("grammar file unreadable, using built-in exercises", zap.String("path", filename), zap.Error(err))
	}

	catalog, err = gl.LoadFromFile("")
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in grammar: %w", err)
	}
	return catalog, nil
}

// SaveToFile writes the catalog back in topic order
func (gl *GrammarLoader) SaveToFile(filename string, catalog *grammar.Catalog) error {
	topics := catalog.Topics()
	keys := make([]string, len(topics))
	for i, t := range topics {
		keys[i] = string(t)
	}

	data, err := encodeOrdered(keys, func(key string) any {
		exercises := catalog.Exercises(grammar.Topic(key))
		entries := make([]GrammarEntry, 0, len(exercises))
		for _, e := range exercises {
			entries = append(entries, GrammarEntry{
				Question:    e.Question(),
				Options:     e.Options(),
				Correct:     e.Correct(),
				Explanation: e.Explanation(),
			})
		}
		return entries
	})
	if err != nil {
		return fmt.Errorf("failed to encode grammar: %w", err)
	}

	if err := WriteFileAtomic(filename, data); err != nil {
		return fmt.Errorf("failed to save grammar: %w", err)
	}
	return nil
}

func (gl *GrammarLoader) decode(r io.Reader) (*grammar.Catalog, error) {
	catalog := grammar.NewCatalog()
	err := decodeOrdered(r, func(key string, raw json.RawMessage) error {
		var entries []GrammarEntry
		if err := json.Unmarshal(raw, &entries); err != nil {
			return fmt.Errorf("failed to decode topic %s: %w", key, err)
		}

		exercises := make([]*grammar.Exercise, 0, len(entries))
		for _, e := range entries {
			ex, err := grammar.NewExercise(e.Question, e.Options, e.Correct, e.Explanation)
			if err != nil {
				return fmt.Errorf("topic %s: %w", key, err)
			}
			exercises = append(exercises, ex)
		}
		catalog.Append(grammar.Topic(key), exercises...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to decode grammar JSON: %w", err)
	}
	return catalog, nil
}
