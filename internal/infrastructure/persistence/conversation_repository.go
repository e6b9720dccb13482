package persistence

import (
	"context"

	"ingles-autodidata/internal/domain/conversation"
)

type conversationRepository struct {
	scripts conversation.Catalog
}

// NewConversationRepository creates a read-only conversation repository
func NewConversationRepository(scripts conversation.Catalog) conversation.Repository {
	return &conversationRepository{scripts: scripts}
}

// ByScenario retrieves the scripts of a scenario
func (r *conversationRepository) ByScenario(ctx context.Context, scenario conversation.Scenario) ([]*conversation.Script, error) {
	return append([]*conversation.Script(nil), r.scripts[scenario]...), nil
}

// Scenarios returns the scenarios with scripts, in menu order
func (r *conversationRepository) Scenarios(ctx context.Context) ([]conversation.Scenario, error) {
	var out []conversation.Scenario
	for _, s := range conversation.Scenarios() {
		if len(r.scripts[s]) > 0 {
			out = append(out, s)
		}
	}
	return out, nil
}
