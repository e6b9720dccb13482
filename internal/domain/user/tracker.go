package user

import (
	"fmt"
	"strings"

	"ingles-autodidata/internal/domain/learning"
)

// DisplayStats is the read-only view of a profile's stats shown to the learner
type DisplayStats struct {
	TotalSessions int
	WordsLearned  int
	Accuracy      float64
	AccuracyText  string
	StudyTime     string
	StreakDays    int
	Level         learning.Level
	Goals         string
}

// ApplySessionResult folds a finished session into the profile's stats, streak and points.
// today is the learner's local calendar day.
func (p *Profile) ApplySessionResult(result learning.SessionResult, today learning.Date) {
	s := &p.stats
	s.TotalSessions++
	s.CorrectAnswers += result.CorrectCount()
	s.TotalAnswers += result.TotalCount()
	s.StudyTimeMinutes += result.ElapsedMinutes()
	s.WordsLearned += result.NewItemsLearned()

	switch {
	case s.LastStudyDate.IsZero():
		s.StreakDays = 1
	case s.LastStudyDate.Equal(today):
	case today.DaysSince(s.LastStudyDate) == 1:
		s.StreakDays++
	default:
		s.StreakDays = 1
	}
	s.LastStudyDate = today

	if result.Category().IsTracked() {
		if p.progress[result.Category()] == nil {
			p.progress[result.Category()] = make(map[learning.Level]int)
		}
		p.progress[result.Category()][p.level] += result.CorrectCount()
	}
}

// DisplayStats computes the summary shown on the progress screen
func (p *Profile) DisplayStats() DisplayStats {
	var accuracy float64
	if p.stats.TotalAnswers > 0 {
		accuracy = float64(p.stats.CorrectAnswers) / float64(p.stats.TotalAnswers) * 100
	}

	goals := make([]string, len(p.goals))
	for i, g := range p.goals {
		goals[i] = string(g)
	}

	return DisplayStats{
		TotalSessions: p.stats.TotalSessions,
		WordsLearned:  p.stats.WordsLearned,
		Accuracy:      accuracy,
		AccuracyText:  fmt.Sprintf("%.1f%%", accuracy),
		StudyTime:     fmt.Sprintf("%d minutes", p.stats.StudyTimeMinutes),
		StreakDays:    p.stats.StreakDays,
		Level:         p.level,
		Goals:         strings.Join(goals, ", "),
	}
}

// ResetStats zeroes every counter and clears the last study date.
// Category points are kept.
func (p *Profile) ResetStats() {
	p.stats = Stats{}
}
