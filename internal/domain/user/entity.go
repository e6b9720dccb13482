package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ingles-autodidata/internal/domain/learning"
)

var (
	// ErrInvalidEmail is returned when an email fails the basic shape check
	ErrInvalidEmail = errors.New("invalid email")
	// ErrInvalidGoal is returned for an unknown learning goal
	ErrInvalidGoal = errors.New("invalid goal")
	// ErrInvalidProfile is returned when stored stats or points break their invariants
	ErrInvalidProfile = errors.New("invalid profile")
)

// Email is the unique key of a profile
type Email string

// ParseEmail trims the input and checks it has a local part and a dotted domain
func ParseEmail(s string) (Email, error) {
	s = strings.TrimSpace(s)
	at := strings.Index(s, "@")
	if at <= 0 || !strings.Contains(s[at+1:], ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidEmail, s)
	}
	return Email(s), nil
}

func (e Email) String() string { return string(e) }

// Goal represents something the learner wants to focus on
type Goal string

const (
	GoalVocabulary   Goal = "vocabulary"
	GoalGrammar      Goal = "grammar"
	GoalConversation Goal = "conversation"
	GoalBusiness     Goal = "business"
	GoalTravel       Goal = "travel"
)

// Goals returns every goal in menu order
func Goals() []Goal {
	return []Goal{GoalVocabulary, GoalGrammar, GoalConversation, GoalBusiness, GoalTravel}
}

// IsValid checks if the goal is known
func (g Goal) IsValid() bool {
	switch g {
	case GoalVocabulary, GoalGrammar, GoalConversation, GoalBusiness, GoalTravel:
		return true
	default:
		return false
	}
}

// ParseGoals maps menu numbers like "1,3,5" to goals.
// Unknown numbers are ignored and duplicates collapse, keeping first-seen order.
func ParseGoals(input string) []Goal {
	all := Goals()
	goals := make([]Goal, 0, len(all))
	seen := make(map[Goal]bool)
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if len(part) != 1 || part[0] < '1' || int(part[0]-'1') >= len(all) {
			continue
		}
		g := all[part[0]-'1']
		if !seen[g] {
			seen[g] = true
			goals = append(goals, g)
		}
	}
	return goals
}

// Stats holds the learner's lifetime counters
type Stats struct {
	TotalSessions    int
	WordsLearned     int
	CorrectAnswers   int
	TotalAnswers     int
	StudyTimeMinutes int
	StreakDays       int
	LastStudyDate    learning.Date
}

// Progress holds points per tracked category and level
type Progress map[learning.Category]map[learning.Level]int

// NewProgress returns progress with every tracked category and level set to zero
func NewProgress() Progress {
	p := make(Progress)
	for _, c := range learning.TrackedCategories() {
		p[c] = make(map[learning.Level]int)
		for _, l := range learning.Levels() {
			p[c][l] = 0
		}
	}
	return p
}

// Points returns the points for a category and level, zero when missing
func (p Progress) Points(c learning.Category, l learning.Level) int {
	return p[c][l]
}

func (p Progress) clone() Progress {
	out := make(Progress, len(p))
	for c, levels := range p {
		out[c] = make(map[learning.Level]int, len(levels))
		for l, v := range levels {
			out[c][l] = v
		}
	}
	return out
}

// Profile represents one learner and everything tracked about them
type Profile struct {
	email       Email
	name        string
	level       learning.Level
	goals       []Goal
	createdAt   time.Time
	lastLoginAt time.Time
	stats       Stats
	progress    Progress
}

// NewProfile creates a profile with empty stats and zeroed progress
func NewProfile(email Email, name string, level learning.Level, goals []Goal, now time.Time) (*Profile, error) {
	if _, err := ParseEmail(string(email)); err != nil {
		return nil, err
	}
	if !level.IsValid() {
		return nil, fmt.Errorf("%w: %q", learning.ErrInvalidLevel, level)
	}
	p := &Profile{
		email:       email,
		name:        strings.TrimSpace(name),
		level:       level,
		createdAt:   now,
		lastLoginAt: now,
		progress:    NewProgress(),
	}
	if err := p.SetGoals(goals); err != nil {
		return nil, err
	}
	return p, nil
}

// Getters
func (p *Profile) Email() Email           { return p.email }
func (p *Profile) Name() string           { return p.name }
func (p *Profile) Level() learning.Level  { return p.level }
func (p *Profile) CreatedAt() time.Time   { return p.createdAt }
func (p *Profile) LastLoginAt() time.Time { return p.lastLoginAt }
func (p *Profile) Stats() Stats           { return p.stats }

// Goals returns a copy of the learner's goals
func (p *Profile) Goals() []Goal {
	return append([]Goal(nil), p.goals...)
}

// Progress returns a copy of the learner's points
func (p *Profile) Progress() Progress {
	return p.progress.clone()
}

// Rename changes the display name
func (p *Profile) Rename(name string) {
	p.name = strings.TrimSpace(name)
}

// ChangeLevel sets the learner's level. Points already earned stay under their old level.
func (p *Profile) ChangeLevel(level learning.Level) error {
	if !level.IsValid() {
		return fmt.Errorf("%w: %q", learning.ErrInvalidLevel, level)
	}
	p.level = level
	return nil
}

// SetGoals replaces the goal list
func (p *Profile) SetGoals(goals []Goal) error {
	out := make([]Goal, 0, len(goals))
	for _, g := range goals {
		if !g.IsValid() {
			return fmt.Errorf("%w: %q", ErrInvalidGoal, g)
		}
		out = append(out, g)
	}
	p.goals = out
	return nil
}

// Touch records a login
func (p *Profile) Touch(now time.Time) {
	p.lastLoginAt = now
}

// ProfileSnapshot is the plain-data form of a profile used by repositories
type ProfileSnapshot struct {
	Email       Email
	Name        string
	Level       learning.Level
	Goals       []Goal
	CreatedAt   time.Time
	LastLoginAt time.Time
	Stats       Stats
	Progress    Progress
}

// Snapshot copies the profile into plain data
func (p *Profile) Snapshot() ProfileSnapshot {
	return ProfileSnapshot{
		Email:       p.email,
		Name:        p.name,
		Level:       p.level,
		Goals:       p.Goals(),
		CreatedAt:   p.createdAt,
		LastLoginAt: p.lastLoginAt,
		Stats:       p.stats,
		Progress:    p.progress.clone(),
	}
}

// RestoreProfile rebuilds a profile from stored data.
// Unknown goals are dropped and missing progress cells are seeded with zero.
// Negative counters or points and more correct answers than answers are rejected
// with ErrInvalidProfile.
func RestoreProfile(s ProfileSnapshot) (*Profile, error) {
	if _, err := ParseEmail(string(s.Email)); err != nil {
		return nil, err
	}
	if !s.Level.IsValid() {
		return nil, fmt.Errorf("%w: %q", learning.ErrInvalidLevel, s.Level)
	}
	if err := s.Stats.validate(); err != nil {
		return nil, err
	}

	goals := make([]Goal, 0, len(s.Goals))
	for _, g := range s.Goals {
		if g.IsValid() {
			goals = append(goals, g)
		}
	}

	progress := NewProgress()
	for c, levels := range s.Progress {
		if _, ok := progress[c]; !ok {
			progress[c] = make(map[learning.Level]int)
		}
		for l, v := range levels {
			if v < 0 {
				return nil, fmt.Errorf("%w: %d %s/%s points", ErrInvalidProfile, v, c, l)
			}
			progress[c][l] = v
		}
	}

	return &Profile{
		email:       s.Email,
		name:        s.Name,
		level:       s.Level,
		goals:       goals,
		createdAt:   s.CreatedAt,
		lastLoginAt: s.LastLoginAt,
		stats:       s.Stats,
		progress:    progress,
	}, nil
}

func (s Stats) validate() error {
	switch {
	case s.TotalSessions < 0 || s.WordsLearned < 0 || s.CorrectAnswers < 0 ||
		s.TotalAnswers < 0 || s.StudyTimeMinutes < 0 || s.StreakDays < 0:
		return fmt.Errorf("%w: negative counter", ErrInvalidProfile)
	case s.CorrectAnswers > s.TotalAnswers:
		return fmt.Errorf("%w: %d correct out of %d answers", ErrInvalidProfile, s.CorrectAnswers, s.TotalAnswers)
	}
	return nil
}
