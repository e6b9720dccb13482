package usecases

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"ingles-autodidata/internal/domain/conversation"
	"ingles-autodidata/internal/domain/grammar"
	"ingles-autodidata/internal/domain/learning"
	"ingles-autodidata/internal/domain/user"
	"ingles-autodidata/internal/domain/vocabulary"
)

// ErrNoContent is returned when there is nothing to practise for a selection
var ErrNoContent = errors.New("no content available")

// Feedback is the performance tier shown after a session
type Feedback string

const (
	FeedbackOutstanding Feedback = "outstanding"
	FeedbackGreat       Feedback = "great"
	FeedbackGood        Feedback = "good"
	FeedbackKeepGoing   Feedback = "keep_going"
)

// Message returns the sentence shown for the tier
func (f Feedback) Message() string {
	switch f {
	case FeedbackOutstanding:
		return "🌟 Outstanding! You're mastering this!"
	case FeedbackGreat:
		return "👍 Great job! Keep up the good work!"
	case FeedbackGood:
		return "📚 Good effort! Practice makes perfect!"
	default:
		return "💪 Don't give up! Review and try again!"
	}
}

func feedbackFor(percent float64) Feedback {
	switch {
	case percent >= 90:
		return FeedbackOutstanding
	case percent >= 75:
		return FeedbackGreat
	case percent >= 60:
		return FeedbackGood
	default:
		return FeedbackKeepGoing
	}
}

var studyTips = []string{
	"Review your mistakes to improve faster!",
	"Practice a little every day for best results!",
	"Try different difficulty levels to challenge yourself!",
	"Focus on topics that match your learning goals!",
	"Don't rush - understanding is more important than speed!",
}

// Summary describes a finished session
type Summary struct {
	Category     learning.Category
	Topic        string
	Correct      int
	Total        int
	ScorePercent float64
	ScoreText    string
	Duration     string
	NewWords     int
	Feedback     Feedback
	Tip          string
}

// SessionSizes caps the number of questions per session
type SessionSizes struct {
	Vocabulary int
	Grammar    int
}

// SessionUseCase builds quizzes from stored content and records their results
type SessionUseCase struct {
	vocabularyRepo   vocabulary.Repository
	grammarRepo      grammar.Repository
	conversationRepo conversation.Repository
	progress         *ProgressUseCase
	sizes            SessionSizes
	rng              *rand.Rand
	clock            func() time.Time
	logger           *zap.Logger
}

// NewSessionUseCase creates a new session use case
func NewSessionUseCase(
	vocabularyRepo vocabulary.Repository,
	grammarRepo grammar.Repository,
	conversationRepo conversation.Repository,
	progress *ProgressUseCase,
	sizes SessionSizes,
	rng *rand.Rand,
	clock func() time.Time,
	logger *zap.Logger,
) *SessionUseCase {
	return &SessionUseCase{
		vocabularyRepo:   vocabularyRepo,
		grammarRepo:      grammarRepo,
		conversationRepo: conversationRepo,
		progress:         progress,
		sizes:            sizes,
		rng:              rng,
		clock:            clock,
		logger:           logger,
	}
}

// StartVocabulary builds a typed-answer quiz: the learner sees a definition and an example
// and types the word.
func (uc *SessionUseCase) StartVocabulary(ctx context.Context, level learning.Level) (*Quiz, error) {
	words, err := uc.vocabularyRepo.Random(ctx, uc.sizes.Vocabulary, &level, uc.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to get words: %w", err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: no vocabulary for %s", ErrNoContent, level)
	}

	questions := make([]Question, 0, len(words))
	for _, w := range words {
		q := Question{
			Prompt:        w.Definition(),
			Answer:        w.Text(),
			Pronunciation: w.Pronunciation(),
		}
		if examples := w.Examples(); len(examples) > 0 {
			q.Hint = examples[uc.rng.Intn(len(examples))]
		}
		questions = append(questions, q)
	}

	return newQuiz(learning.CategoryVocabulary, level.String(), questions, uc.clock()), nil
}

// GrammarTopics lists the grammar topics in stored order, including any added to the bundle file
func (uc *SessionUseCase) GrammarTopics(ctx context.Context) ([]grammar.Topic, error) {
	topics, err := uc.grammarRepo.Topics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get grammar topics: %w", err)
	}
	return topics, nil
}

// StartGrammar builds a multiple-choice quiz for a topic
func (uc *SessionUseCase) StartGrammar(ctx context.Context, topic grammar.Topic) (*Quiz, error) {
	exercises, err := uc.grammarRepo.ByTopic(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to get exercises: %w", err)
	}
	if len(exercises) == 0 {
		return nil, fmt.Errorf("%w: no grammar exercises for %s", ErrNoContent, topic)
	}

	uc.rng.Shuffle(len(exercises), func(i, j int) { exercises[i], exercises[j] = exercises[j], exercises[i] })
	if len(exercises) > uc.sizes.Grammar {
		exercises = exercises[:uc.sizes.Grammar]
	}

	questions := make([]Question, 0, len(exercises))
	for _, e := range exercises {
		questions = append(questions, Question{
			Prompt:      e.Question(),
			Options:     e.Options(),
			Answer:      e.Correct(),
			Explanation: e.Explanation(),
		})
	}

	return newQuiz(learning.CategoryGrammar, string(topic), questions, uc.clock()), nil
}

// StartConversation picks one script of a scenario and turns each interaction into a question
func (uc *SessionUseCase) StartConversation(ctx context.Context, scenario conversation.Scenario) (*Quiz, error) {
	scripts, err := uc.conversationRepo.ByScenario(ctx, scenario)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversations: %w", err)
	}
	if len(scripts) == 0 {
		return nil, fmt.Errorf("%w: no conversations for %s", ErrNoContent, scenario)
	}

	script := scripts[uc.rng.Intn(len(scripts))]
	interactions := script.Interactions()
	questions := make([]Question, 0, len(interactions))
	for _, in := range interactions {
		questions = append(questions, Question{
			Prompt:      in.Prompt(),
			Situation:   in.Situation(),
			Speaker:     in.Speaker(),
			Options:     in.Responses(),
			Answer:      in.Correct(),
			Explanation: in.Explanation(),
		})
	}

	quiz := newQuiz(learning.CategoryConversation, string(scenario), questions, uc.clock())
	quiz.Title = script.Title()
	quiz.Setting = script.Setting()
	return quiz, nil
}

// Finish closes a quiz, records its result for the learner and returns the summary.
// The summary is returned even when recording fails.
func (uc *SessionUseCase) Finish(ctx context.Context, email user.Email, quiz *Quiz) (*Summary, error) {
	result, elapsed, err := quiz.Result(uc.clock())
	if err != nil {
		return nil, fmt.Errorf("failed to finish session: %w", err)
	}

	summary := uc.summarize(quiz, result, elapsed)

	log := uc.logger.With(
		zap.String("session_id", quiz.ID.String()),
		zap.String("email", email.String()),
		zap.String("category", result.Category().String()),
		zap.String("topic", quiz.Topic),
	)

	if err := uc.progress.RecordSession(ctx, email, result); err != nil {
		log.Error("failed to record session", zap.Error(err))
		return summary, err
	}

	log.Info("session finished",
		zap.Int("correct", result.CorrectCount()),
		zap.Int("total", result.TotalCount()),
		zap.Duration("elapsed", elapsed),
	)
	return summary, nil
}

func (uc *SessionUseCase) summarize(quiz *Quiz, result learning.SessionResult, elapsed time.Duration) *Summary {
	var percent float64
	scoreText := "0%"
	if result.TotalCount() > 0 {
		percent = float64(result.CorrectCount()) / float64(result.TotalCount()) * 100
		scoreText = fmt.Sprintf("%.1f%%", percent)
	}

	seconds := int(elapsed / time.Second)
	return &Summary{
		Category:     result.Category(),
		Topic:        quiz.Topic,
		Correct:      result.CorrectCount(),
		Total:        result.TotalCount(),
		ScorePercent: percent,
		ScoreText:    scoreText,
		Duration:     fmt.Sprintf("%dm %ds", seconds/60, seconds%60),
		NewWords:     result.NewItemsLearned(),
		Feedback:     feedbackFor(percent),
		Tip:          studyTips[uc.rng.Intn(len(studyTips))],
	}
}
