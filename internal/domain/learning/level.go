package learning

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLevel is returned when a string does not name a known level
var ErrInvalidLevel = errors.New("invalid level")

// Level represents a difficulty tier, used both for content and for the learner
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Levels returns every level from easiest to hardest
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
}

// IsValid checks if the level is one of the known tiers
func (l Level) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

// ParseLevel converts user or file input into a Level
func ParseLevel(s string) (Level, error) {
	level := Level(strings.ToLower(strings.TrimSpace(s)))
	if !level.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
	return level, nil
}

func (l Level) String() string { return string(l) }
