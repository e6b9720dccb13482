package conversation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidScript is returned when a script or one of its interactions is malformed
var ErrInvalidScript = errors.New("invalid conversation script")

// Scenario represents a real-world setting for conversation practice
type Scenario string

const (
	ScenarioShopping   Scenario = "shopping"
	ScenarioRestaurant Scenario = "restaurant"
	ScenarioTravel     Scenario = "travel"
	ScenarioBusiness   Scenario = "business"
	ScenarioSmallTalk  Scenario = "smalltalk"
)

// Scenarios returns every scenario in menu order
func Scenarios() []Scenario {
	return []Scenario{ScenarioShopping, ScenarioRestaurant, ScenarioTravel, ScenarioBusiness, ScenarioSmallTalk}
}

// IsValid checks if a scenario is known
func (s Scenario) IsValid() bool {
	switch s {
	case ScenarioShopping, ScenarioRestaurant, ScenarioTravel, ScenarioBusiness, ScenarioSmallTalk:
		return true
	default:
		return false
	}
}

// Interaction is one turn of a script: someone speaks and the learner picks a reply
type Interaction struct {
	situation   string
	speaker     string
	prompt      string
	responses   []string
	correct     string
	explanation string
}

// NewInteraction creates an interaction. The correct reply must be one of the responses.
func NewInteraction(situation, speaker, prompt string, responses []string, correct, explanation string) (*Interaction, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("%w: empty prompt", ErrInvalidScript)
	}
	if len(responses) < 2 {
		return nil, fmt.Errorf("%w: %q needs at least two responses", ErrInvalidScript, prompt)
	}
	found := false
	for _, r := range responses {
		if r == correct {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: reply %q is not offered for %q", ErrInvalidScript, correct, prompt)
	}

	return &Interaction{
		situation:   situation,
		speaker:     speaker,
		prompt:      prompt,
		responses:   append([]string(nil), responses...),
		correct:     correct,
		explanation: explanation,
	}, nil
}

// Getters
func (i *Interaction) Situation() string   { return i.situation }
func (i *Interaction) Speaker() string     { return i.speaker }
func (i *Interaction) Prompt() string      { return i.prompt }
func (i *Interaction) Responses() []string { return append([]string(nil), i.responses...) }
func (i *Interaction) Correct() string     { return i.correct }
func (i *Interaction) Explanation() string { return i.explanation }

// Script is a scripted dialogue made of several interactions
type Script struct {
	title        string
	setting      string
	interactions []*Interaction
}

// NewScript creates a script with at least one interaction
func NewScript(title, setting string, interactions []*Interaction) (*Script, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: empty title", ErrInvalidScript)
	}
	if len(interactions) == 0 {
		return nil, fmt.Errorf("%w: %q has no interactions", ErrInvalidScript, title)
	}
	return &Script{
		title:        title,
		setting:      setting,
		interactions: append([]*Interaction(nil), interactions...),
	}, nil
}

// Getters
func (s *Script) Title() string                { return s.title }
func (s *Script) Setting() string              { return s.setting }
func (s *Script) Interactions() []*Interaction { return append([]*Interaction(nil), s.interactions...) }

// Catalog holds scripts grouped by scenario
type Catalog map[Scenario][]*Script
