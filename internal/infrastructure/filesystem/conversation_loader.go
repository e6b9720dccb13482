package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"go.uber.org/zap"

	"ingles-autodidata/internal/domain/conversation"
)

// ConversationLoader handles loading conversation scripts
type ConversationLoader struct {
	logger *zap.Logger
}

// NewConversationLoader creates a new conversation loader
func NewConversationLoader(logger *zap.Logger) *ConversationLoader {
	return &ConversationLoader{logger: logger}
}

// ScriptEntry represents one scripted dialogue in JSON
type ScriptEntry struct {
	Title        string             `json:"title"`
	Setting      string             `json:"setting"`
	Interactions []InteractionEntry `json:"interactions"`
}

// InteractionEntry represents one turn of a dialogue in JSON
type InteractionEntry struct {
	Situation   string   `json:"situation"`
	Speaker     string   `json:"speaker"`
	Prompt      string   `json:"prompt"`
	Responses   []string `json:"responses"`
	Correct     string   `json:"correct"`
	Explanation string   `json:"explanation"`
}

// LoadFromFile loads scripts from a JSON file keyed by scenario
func (cl *ConversationLoader) LoadFromFile(filename string) (conversation.Catalog, error) {
	file, err := openBundle(filename, "conversation.json")
	if err != nil {
		return nil, fmt.Errorf("failed to open conversation file: %w", err)
	}
	defer file.Close()

	return cl.decode(file)
}

// Load reads filename and falls back to the built-in scripts when it is missing or malformed
func (cl *ConversationLoader) Load(filename string) (conversation.Catalog, error) {
	catalog, err := cl.LoadFromFile(filename)
	if err == nil {
		return catalog, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		cl.logger.Info("conversation file not found, using built-in scripts", zap.String("path", filename))
	} else {
		cl.logger.Warn("conversation file unreadable, using built-in scripts", zap.String("path", filename), zap.Error(err))
	}

	catalog, err = cl.LoadFromFile("")
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in conversations: %w", err)
	}
	return catalog, nil
}

func (cl *ConversationLoader) decode(r io.Reader) (conversation.Catalog, error) {
	var data map[string][]ScriptEntry
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode conversation JSON: %w", err)
	}

	catalog := make(conversation.Catalog)
	for key, entries := range data {
		scenario := conversation.Scenario(key)
		if !scenario.IsValid() {
			return nil, fmt.Errorf("invalid scenario: %s", key)
		}

		for _, e := range entries {
			interactions := make([]*conversation.Interaction, 0, len(e.Interactions))
			for _, ie := range e.Interactions {
				in, err := conversation.NewInteraction(ie.Situation, ie.Speaker, ie.Prompt, ie.Responses, ie.Correct, ie.Explanation)
				if err != nil {
					return nil, fmt.Errorf("script %q: %w", e.Title, err)
				}
				interactions = append(interactions, in)
			}

			script, err := conversation.NewScript(e.Title, e.Setting, interactions)
			if err != nil {
				return nil, err
			}
			catalog[scenario] = append(catalog[scenario], script)
		}
	}
	return catalog, nil
}
