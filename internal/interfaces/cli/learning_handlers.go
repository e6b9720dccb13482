package cli

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"ingles-autodidata/internal/application/usecases"
	"ingles-autodidata/internal/domain/conversation"
	"ingles-autodidata/internal/domain/learning"
	"ingles-autodidata/internal/infrastructure/terminal"
)

const questionBarWidth = 30

// handleVocabulary asks for a difficulty and runs a vocabulary session
func (a *App) handleVocabulary(ctx context.Context) error {
	c := a.console
	c.Clear()
	c.Println("📖 VOCABULARY PRACTICE")
	c.Separator("-")

	c.Println("Choose difficulty level:")
	c.Println("1. 🟢 Beginner (Basic words)")
	c.Println("2. 🟡 Intermediate (Common words)")
	c.Println("3. 🔴 Advanced (Complex words)")
	c.Println("4. 🎯 Adaptive (Based on your level)")

	n, err := c.ChooseNumber(ctx, "Select difficulty", 4)
	if err != nil {
		return err
	}
	level := a.current.Level()
	if n <= len(learning.Levels()) {
		level = learning.Levels()[n-1]
	}

	c.Clear()
	c.Printf("📖 VOCABULARY PRACTICE - %s\n", strings.ToUpper(level.String()))
	c.Separator("-")

	quiz, err := a.sessions.StartVocabulary(ctx, level)
	if errors.Is(err, usecases.ErrNoContent) {
		c.Say(terminal.Red, "❌ No vocabulary available for this difficulty level.")
		return c.Pause(ctx, "")
	}
	if err != nil {
		return err
	}

	c.Printf("📚 Starting vocabulary session with %d words...\n", len(quiz.Questions))
	c.Println("You'll be shown definitions and need to guess the word!")
	if err := c.Pause(ctx, "Press Enter to start..."); err != nil {
		return err
	}

	for i, q := range quiz.Questions {
		a.questionHeader("📖 VOCABULARY PRACTICE - Question", i, len(quiz.Questions))

		c.Println("🎯 DEFINITION:")
		c.Printf("   %s\n", q.Prompt)
		if q.Hint != "" {
			c.Println()
			c.Println("📝 EXAMPLE:")
			c.Printf("   %s\n", q.Hint)
		}
		c.Println()
		c.Println("💭 What word matches this definition?")

		answer, err := c.Prompt(ctx, "Your answer")
		if err != nil {
			return err
		}
		ok, err := quiz.Answer(i, answer)
		if err != nil {
			return err
		}
		if ok {
			c.Say(terminal.Green, "✅ Correct! Well done!")
		} else {
			c.Say(terminal.Red, "❌ Incorrect. The answer was: "+q.Answer)
			c.Printf("💡 Remember: %s - %s\n", q.Answer, q.Prompt)
		}
		if q.Pronunciation != "" {
			c.Printf("🔊 Pronunciation: %s\n", q.Pronunciation)
		}

		if err := a.nextQuestion(ctx, i, len(quiz.Questions), "Press Enter for next question..."); err != nil {
			return err
		}
	}

	return a.finish(ctx, "Vocabulary", quiz)
}

// handleGrammar asks for a topic and runs a grammar session
func (a *App) handleGrammar(ctx context.Context) error {
	c := a.console
	c.Clear()
	c.Println("📝 GRAMMAR EXERCISES")
	c.Separator("-")

	topics, err := a.sessions.GrammarTopics(ctx)
	if err != nil {
		return err
	}
	if len(topics) == 0 {
		c.Say(terminal.Red, "❌ No grammar exercises available.")
		return c.Pause(ctx, "")
	}

	c.Println("Choose grammar topic:")
	for i, t := range topics {
		c.Printf("%d. %s\n", i+1, topicLabel(t))
	}
	n, err := c.ChooseNumber(ctx, "Select topic", len(topics))
	if err != nil {
		return err
	}
	topic := topics[n-1]

	c.Clear()
	c.Printf("📝 GRAMMAR PRACTICE - %s\n", strings.ToUpper(string(topic)))
	c.Separator("-")

	quiz, err := a.sessions.StartGrammar(ctx, topic)
	if errors.Is(err, usecases.ErrNoContent) {
		c.Say(terminal.Red, "❌ No grammar exercises available for this topic.")
		return c.Pause(ctx, "")
	}
	if err != nil {
		return err
	}

	c.Printf("📝 Starting grammar session: %s\n", topic)
	c.Println("You'll complete sentences or choose the correct grammar!")
	if err := c.Pause(ctx, "Press Enter to start..."); err != nil {
		return err
	}

	for i, q := range quiz.Questions {
		a.questionHeader("📝 GRAMMAR PRACTICE - Question", i, len(quiz.Questions))

		c.Println("🎯 QUESTION:")
		c.Printf("   %s\n", q.Prompt)
		c.Println()
		c.Println("📋 OPTIONS:")
		for j, option := range q.Options {
			c.Printf("   %d. %s\n", j+1, option)
		}

		ok, err := a.answerChoice(ctx, quiz, i, "Choose option")
		if err != nil {
			return err
		}
		if ok {
			c.Say(terminal.Green, "✅ Correct! Great job!")
		} else {
			c.Say(terminal.Red, "❌ Incorrect. The correct answer was: "+q.Answer)
		}
		if q.Explanation != "" {
			c.Printf("💡 Explanation: %s\n", q.Explanation)
		}

		if err := a.nextQuestion(ctx, i, len(quiz.Questions), "Press Enter for next question..."); err != nil {
			return err
		}
	}

	return a.finish(ctx, "Grammar", quiz)
}

// handleConversation asks for a scenario and plays one of its scripts
func (a *App) handleConversation(ctx context.Context) error {
	c := a.console
	c.Clear()
	c.Println("💬 CONVERSATION PRACTICE")
	c.Separator("-")

	labels := map[conversation.Scenario]string{
		conversation.ScenarioShopping:   "🏪 Shopping",
		conversation.ScenarioRestaurant: "🍽️  Restaurant",
		conversation.ScenarioTravel:     "✈️  Travel",
		conversation.ScenarioBusiness:   "💼 Business",
		conversation.ScenarioSmallTalk:  "👥 Small Talk",
	}
	scenarios := conversation.Scenarios()

	c.Println("Choose conversation scenario:")
	for i, s := range scenarios {
		c.Printf("%d. %s\n", i+1, labels[s])
	}
	n, err := c.ChooseNumber(ctx, "Select scenario", len(scenarios))
	if err != nil {
		return err
	}
	scenario := scenarios[n-1]

	c.Clear()
	c.Printf("💬 CONVERSATION PRACTICE - %s\n", strings.ToUpper(string(scenario)))
	c.Separator("-")

	quiz, err := a.sessions.StartConversation(ctx, scenario)
	if errors.Is(err, usecases.ErrNoContent) {
		c.Say(terminal.Red, "❌ No conversations available for this scenario.")
		return c.Pause(ctx, "")
	}
	if err != nil {
		return err
	}

	c.Printf("💬 Scenario: %s\n", quiz.Title)
	c.Printf("📍 Setting: %s\n", quiz.Setting)
	c.Println()
	c.Println("You'll practice responding in different conversation situations!")
	if err := c.Pause(ctx, "Press Enter to start..."); err != nil {
		return err
	}

	for i, q := range quiz.Questions {
		a.questionHeader("💬 CONVERSATION PRACTICE - Part", i, len(quiz.Questions))

		c.Println("🎭 SITUATION:")
		c.Printf("   %s\n", q.Situation)
		c.Println()
		c.Printf("🗣️  %s:\n", q.Speaker)
		c.Printf("   \"%s\"\n", q.Prompt)
		c.Println()
		c.Println("💭 HOW DO YOU RESPOND?")
		for j, option := range q.Options {
			c.Printf("   %d. \"%s\"\n", j+1, option)
		}

		ok, err := a.answerChoice(ctx, quiz, i, "Choose response")
		if err != nil {
			return err
		}
		if ok {
			c.Say(terminal.Green, "✅ Excellent response! Very natural!")
		} else {
			c.Say(terminal.Yellow, "❌ Good try! A better response would be:")
			c.Printf("   \"%s\"\n", q.Answer)
		}
		if q.Explanation != "" {
			c.Println()
			c.Printf("💡 %s\n", q.Explanation)
		}

		if err := a.nextQuestion(ctx, i, len(quiz.Questions), "Press Enter to continue..."); err != nil {
			return err
		}
	}

	return a.finish(ctx, "Conversation", quiz)
}

func (a *App) questionHeader(title string, i, total int) {
	a.console.Clear()
	a.console.Printf("%s %d/%d\n", title, i+1, total)
	a.console.Println(terminal.ProgressBar(i, total, questionBarWidth))
	a.console.Separator("-")
}

func (a *App) answerChoice(ctx context.Context, quiz *usecases.Quiz, i int, label string) (bool, error) {
	n, err := a.console.ChooseNumber(ctx, label, len(quiz.Questions[i].Options))
	if err != nil {
		return false, err
	}
	return quiz.Answer(i, quiz.Questions[i].Options[n-1])
}

func (a *App) nextQuestion(ctx context.Context, i, total int, message string) error {
	if i+1 < total {
		return a.console.Pause(ctx, message)
	}
	return nil
}

// finish records the session and prints its summary. A failed save is reported
// but the session stays applied to the profile in memory.
func (a *App) finish(ctx context.Context, kind string, quiz *usecases.Quiz) error {
	summary, err := a.sessions.Finish(ctx, a.current.Email(), quiz)
	if summary == nil {
		return err
	}

	a.showSummary(kind, summary)
	if err != nil {
		a.reportSaveError(err)
	} else {
		a.logger.Debug("summary shown", zap.String("session_id", quiz.ID.String()))
	}
	return a.console.Pause(ctx, "")
}

func (a *App) showSummary(kind string, s *usecases.Summary) {
	c := a.console
	c.Clear()
	c.Printf("🎯 %s SESSION COMPLETE!\n", strings.ToUpper(kind))
	c.Separator("=")

	c.Println("📊 SESSION RESULTS:")
	c.Printf("   🎯 Topic: %s\n", title(s.Topic))
	c.Printf("   ✅ Correct Answers: %d/%d\n", s.Correct, s.Total)
	c.Printf("   📈 Score: %s\n", s.ScoreText)
	c.Printf("   ⏱️  Time: %s\n", s.Duration)
	if s.NewWords > 0 {
		c.Printf("   📚 New Words Learned: %d\n", s.NewWords)
	}
	c.Println()

	color := terminal.Yellow
	if s.Feedback == usecases.FeedbackOutstanding || s.Feedback == usecases.FeedbackGreat {
		color = terminal.Green
	}
	c.Say(color, s.Feedback.Message())

	c.Println()
	c.Println("💡 STUDY TIP:")
	c.Printf("   %s\n", s.Tip)

	c.Separator("-")
	c.Println("🎉 Keep learning and improving your English!")
}
