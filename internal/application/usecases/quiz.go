package usecases

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ingles-autodidata/internal/domain/learning"
)

// Question is one item of a quiz. Questions with Options are multiple choice;
// the others expect the answer to be typed.
type Question struct {
	Prompt        string
	Hint          string
	Situation     string
	Speaker       string
	Pronunciation string
	Options       []string
	Answer        string
	Explanation   string
}

// IsMultipleChoice reports whether the question offers options
func (q Question) IsMultipleChoice() bool {
	return len(q.Options) > 0
}

// Quiz is a running practice session. It is owned by one goroutine.
type Quiz struct {
	ID        uuid.UUID
	Category  learning.Category
	Topic     string
	Title     string
	Setting   string
	Questions []Question

	answered  []bool
	correct   int
	newItems  int
	startedAt time.Time
}

func newQuiz(category learning.Category, topic string, questions []Question, now time.Time) *Quiz {
	return &Quiz{
		ID:        uuid.New(),
		Category:  category,
		Topic:     topic,
		Questions: questions,
		answered:  make([]bool, len(questions)),
		startedAt: now,
	}
}

// Answer scores the answer to question i. Only the first answer to a question counts.
// Typed answers ignore case and surrounding or repeated whitespace.
func (q *Quiz) Answer(i int, input string) (bool, error) {
	if i < 0 || i >= len(q.Questions) {
		return false, fmt.Errorf("question %d out of range", i)
	}

	question := q.Questions[i]
	var ok bool
	if question.IsMultipleChoice() {
		ok = input == question.Answer
	} else {
		ok = normalizeAnswer(input) == normalizeAnswer(question.Answer)
	}

	if q.answered[i] {
		return ok, nil
	}
	q.answered[i] = true
	if ok {
		q.correct++
		if q.Category == learning.CategoryVocabulary {
			q.newItems++
		}
	}
	return ok, nil
}

// Correct returns the number of correct answers so far
func (q *Quiz) Correct() int { return q.correct }

// Result builds the session result at now. Every presented question counts towards the total.
func (q *Quiz) Result(now time.Time) (learning.SessionResult, time.Duration, error) {
	elapsed := now.Sub(q.startedAt)
	if elapsed < 0 {
		elapsed = 0
	}
	seconds := int(elapsed / time.Second)

	result, err := learning.NewSessionResult(q.Category, q.correct, len(q.Questions), seconds/60, q.newItems)
	if err != nil {
		return learning.SessionResult{}, 0, err
	}
	return result, elapsed, nil
}

func normalizeAnswer(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
