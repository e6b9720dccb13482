package grammar

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidExercise is returned when an exercise cannot be answered
var ErrInvalidExercise = errors.New("invalid exercise")

// Exercise represents one multiple-choice grammar question
type Exercise struct {
	question    string
	options     []string
	correct     string
	explanation string
}

// Topic represents a grammar topic
type Topic string

const (
	TopicVerbs        Topic = "verbs"
	TopicArticles     Topic = "articles"
	TopicPrepositions Topic = "prepositions"
	TopicQuestions    Topic = "questions"
	TopicMixed        Topic = "mixed"
)

// DefaultTopics returns the built-in topics in menu order
func DefaultTopics() []Topic {
	return []Topic{TopicVerbs, TopicArticles, TopicPrepositions, TopicQuestions, TopicMixed}
}

// NewExercise creates a new exercise.
// It needs at least two options and the correct answer must be one of them.
func NewExercise(question string, options []string, correct, explanation string) (*Exercise, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: empty question", ErrInvalidExercise)
	}
	if len(options) < 2 {
		return nil, fmt.Errorf("%w: %q needs at least two options", ErrInvalidExercise, question)
	}
	found := false
	for _, o := range options {
		if o == correct {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: answer %q is not an option of %q", ErrInvalidExercise, correct, question)
	}

	return &Exercise{
		question:    question,
		options:     append([]string(nil), options...),
		correct:     correct,
		explanation: explanation,
	}, nil
}

// Getters
func (e *Exercise) Question() string    { return e.question }
func (e *Exercise) Options() []string   { return append([]string(nil), e.options...) }
func (e *Exercise) Correct() string     { return e.correct }
func (e *Exercise) Explanation() string { return e.explanation }

// IsCorrect checks a chosen option against the answer
func (e *Exercise) IsCorrect(option string) bool {
	return option == e.correct
}

// Catalog holds exercises grouped by topic, keeping topic order
type Catalog struct {
	topics    []Topic
	exercises map[Topic][]*Exercise
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{exercises: make(map[Topic][]*Exercise)}
}

// Append adds exercises to a topic, registering the topic on first use
func (c *Catalog) Append(topic Topic, exercises ...*Exercise) {
	if _, ok := c.exercises[topic]; !ok {
		c.topics = append(c.topics, topic)
	}
	c.exercises[topic] = append(c.exercises[topic], exercises...)
}

// Topics returns topics in insertion order
func (c *Catalog) Topics() []Topic {
	return append([]Topic(nil), c.topics...)
}

// Exercises returns the exercises stored under exactly this topic
func (c *Catalog) Exercises(topic Topic) []*Exercise {
	return append([]*Exercise(nil), c.exercises[topic]...)
}

// ForPractice returns the exercises for a practice session on topic.
// Mixed practice draws from every other topic and then the mixed ones.
func (c *Catalog) ForPractice(topic Topic) []*Exercise {
	if topic != TopicMixed {
		return c.Exercises(topic)
	}
	var out []*Exercise
	for _, t := range c.topics {
		if t != TopicMixed {
			out = append(out, c.exercises[t]...)
		}
	}
	return append(out, c.exercises[TopicMixed]...)
}

// Len returns the number of exercises across all topics
func (c *Catalog) Len() int {
	n := 0
	for _, ex := range c.exercises {
		n += len(ex)
	}
	return n
}
