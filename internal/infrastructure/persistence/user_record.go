package persistence

import (
	"fmt"
	"time"

	"ingles-autodidata/internal/domain/learning"
	"ingles-autodidata/internal/domain/user"
)

// isoLayouts are the timestamp formats accepted when reading records.
// The last one matches naive timestamps written without a zone.
var isoLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"}

// userRecord is the stored shape of one profile
type userRecord struct {
	Name      string                    `json:"name"`
	Email     string                    `json:"email"`
	Level     string                    `json:"level"`
	Goals     []string                  `json:"goals"`
	CreatedAt string                    `json:"created_at"`
	LastLogin string                    `json:"last_login"`
	Stats     statsRecord               `json:"stats"`
	Progress  map[string]map[string]int `json:"progress"`
}

type statsRecord struct {
	TotalSessions    int     `json:"total_sessions"`
	WordsLearned     int     `json:"words_learned"`
	CorrectAnswers   int     `json:"correct_answers"`
	TotalAnswers     int     `json:"total_answers"`
	StudyTimeMinutes int     `json:"study_time_minutes"`
	StreakDays       int     `json:"streak_days"`
	LastStudyDate    *string `json:"last_study_date"`
}

func toRecord(p *user.Profile) userRecord {
	s := p.Snapshot()

	goals := make([]string, len(s.Goals))
	for i, g := range s.Goals {
		goals[i] = string(g)
	}

	progress := make(map[string]map[string]int, len(s.Progress))
	for c, levels := range s.Progress {
		progress[string(c)] = make(map[string]int, len(levels))
		for l, v := range levels {
			progress[string(c)][string(l)] = v
		}
	}

	var lastStudy *string
	if !s.Stats.LastStudyDate.IsZero() {
		d := s.Stats.LastStudyDate.String()
		lastStudy = &d
	}

	return userRecord{
		Name:      s.Name,
		Email:     string(s.Email),
		Level:     string(s.Level),
		Goals:     goals,
		CreatedAt: s.CreatedAt.Format(time.RFC3339Nano),
		LastLogin: s.LastLoginAt.Format(time.RFC3339Nano),
		Stats: statsRecord{
			TotalSessions:    s.Stats.TotalSessions,
			WordsLearned:     s.Stats.WordsLearned,
			CorrectAnswers:   s.Stats.CorrectAnswers,
			TotalAnswers:     s.Stats.TotalAnswers,
			StudyTimeMinutes: s.Stats.StudyTimeMinutes,
			StreakDays:       s.Stats.StreakDays,
			LastStudyDate:    lastStudy,
		},
		Progress: progress,
	}
}

// fromRecord rebuilds a profile. key is the map key the record was stored under.
func fromRecord(key string, r userRecord) (*user.Profile, error) {
	email := r.Email
	if email == "" {
		email = key
	}

	var lastStudy learning.Date
	if r.Stats.LastStudyDate != nil && *r.Stats.LastStudyDate != "" {
		d, err := learning.ParseDate(*r.Stats.LastStudyDate)
		if err != nil {
			return nil, err
		}
		lastStudy = d
	}

	goals := make([]user.Goal, len(r.Goals))
	for i, g := range r.Goals {
		goals[i] = user.Goal(g)
	}

	progress := make(user.Progress, len(r.Progress))
	for c, levels := range r.Progress {
		progress[learning.Category(c)] = make(map[learning.Level]int, len(levels))
		for l, v := range levels {
			progress[learning.Category(c)][learning.Level(l)] = v
		}
	}

	p, err := user.RestoreProfile(user.ProfileSnapshot{
		Email:       user.Email(email),
		Name:        r.Name,
		Level:       learning.Level(r.Level),
		Goals:       goals,
		CreatedAt:   parseTimestamp(r.CreatedAt),
		LastLoginAt: parseTimestamp(r.LastLogin),
		Stats: user.Stats{
			TotalSessions:    r.Stats.TotalSessions,
			WordsLearned:     r.Stats.WordsLearned,
			CorrectAnswers:   r.Stats.CorrectAnswers,
			TotalAnswers:     r.Stats.TotalAnswers,
			StudyTimeMinutes: r.Stats.StudyTimeMinutes,
			StreakDays:       r.Stats.StreakDays,
			LastStudyDate:    lastStudy,
		},
		Progress: progress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to restore profile %s: %w", email, err)
	}
	return p, nil
}

// parseTimestamp returns the zero time for unparseable input
func parseTimestamp(s string) time.Time {
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}
