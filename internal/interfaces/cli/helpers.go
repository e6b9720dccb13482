package cli

import (
	"context"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"ingles-autodidata/internal/domain/grammar"
	"ingles-autodidata/internal/domain/learning"
	"ingles-autodidata/internal/domain/user"
)

var titleCaser = cases.Title(language.English)

// title capitalises each word, as menu headers and level names are shown
func title(s string) string {
	return titleCaser.String(s)
}

func levelEmoji(level learning.Level) string {
	switch level {
	case learning.LevelBeginner:
		return "🟢"
	case learning.LevelIntermediate:
		return "🟡"
	case learning.LevelAdvanced:
		return "🔴"
	default:
		return "⚪"
	}
}

func levelLabel(level learning.Level) string {
	return levelEmoji(level) + " " + title(level.String())
}

var topicLabels = map[grammar.Topic]string{
	grammar.TopicVerbs:        "Verb Tenses",
	grammar.TopicArticles:     "Articles (a, an, the)",
	grammar.TopicPrepositions: "Prepositions",
	grammar.TopicQuestions:    "Question Formation",
	grammar.TopicMixed:        "Mixed Practice",
}

// topicLabel names a grammar topic in menus; topics from custom bundles are title-cased
func topicLabel(topic grammar.Topic) string {
	if label, ok := topicLabels[topic]; ok {
		return label
	}
	return title(strings.ReplaceAll(string(topic), "_", " "))
}

func (a *App) chooseLevel(ctx context.Context, label string) (learning.Level, error) {
	a.console.Println("1. 🟢 Beginner")
	a.console.Println("2. 🟡 Intermediate")
	a.console.Println("3. 🔴 Advanced")

	n, err := a.console.ChooseNumber(ctx, label, len(learning.Levels()))
	if err != nil {
		return "", err
	}
	return learning.Levels()[n-1], nil
}

func (a *App) chooseGoals(ctx context.Context) ([]user.Goal, error) {
	a.console.Println("1. Vocabulary building")
	a.console.Println("2. Grammar improvement")
	a.console.Println("3. Conversation practice")
	a.console.Println("4. Business English")
	a.console.Println("5. Travel English")

	input, err := a.console.Prompt(ctx, "Enter goal numbers (e.g., 1,3,5)")
	if err != nil {
		return nil, err
	}
	return user.ParseGoals(input), nil
}
