package cli_test

import (
	"bytes"
	"context"
	"math/rand"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"ingles-autodidata/internal/application/usecases"
	"ingles-autodidata/internal/domain/grammar"
	"ingles-autodidata/internal/domain/user"
	"ingles-autodidata/internal/infrastructure/filesystem"
	"ingles-autodidata/internal/infrastructure/persistence"
	"ingles-autodidata/internal/infrastructure/terminal"
	"ingles-autodidata/internal/interfaces/cli"
)

type harness struct {
	app   *cli.App
	out   *bytes.Buffer
	store *persistence.JSONUserRepository
}

func newHarness(t *testing.T, input ...string) *harness {
	t.Helper()
	ctx := context.Background()
	logger := zaptest.NewLogger(t)
	dir := t.TempDir()

	store := persistence.NewJSONUserRepository(filepath.Join(dir, "users.json"), logger)
	profiles, err := user.OpenDirectory(ctx, store)
	if err != nil {
		t.Fatalf("OpenDirectory: %v", err)
	}

	words, err := filesystem.NewVocabularyLoader(logger).LoadFromFile("")
	if err != nil {
		t.Fatalf("vocabulary: %v", err)
	}
	exercises, err := filesystem.NewGrammarLoader(logger).LoadFromFile("")
	if err != nil {
		t.Fatalf("grammar: %v", err)
	}
	conditional, err := grammar.NewExercise("If it rains, we ___ at home.", []string{"stay", "stayed"}, "stay", "First conditional")
	if err != nil {
		t.Fatalf("NewExercise: %v", err)
	}
	exercises.Append("conditionals", conditional)

	scripts, err := filesystem.NewConversationLoader(logger).LoadFromFile("")
	if err != nil {
		t.Fatalf("conversation: %v", err)
	}

	clock := func() time.Time { return time.Date(2024, time.May, 10, 8, 0, 0, 0, time.UTC) }
	users := usecases.NewUserUseCase(profiles, clock, logger)
	progress := usecases.NewProgressUseCase(profiles, clock, logger)
	sessions := usecases.NewSessionUseCase(
		persistence.NewVocabularyRepository(words, "", nil),
		persistence.NewGrammarRepository(exercises, "", nil),
		persistence.NewConversationRepository(scripts),
		progress,
		usecases.SessionSizes{Vocabulary: 2, Grammar: 1},
		rand.New(rand.NewSource(1)),
		clock,
		logger,
	)

	out := &bytes.Buffer{}
	in := strings.NewReader(strings.Join(input, "\n") + "\n")
	console := terminal.NewConsole(in, out, false)

	return &harness{
		app:   cli.NewApp(console, users, progress, sessions, filepath.Join(dir, "exports"), zap.NewNop()),
		out:   out,
		store: store,
	}
}

func (h *harness) saved(t *testing.T) map[user.Email]*user.Profile {
	t.Helper()
	profiles, err := h.store.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	return profiles
}

func TestFirstRunGrammarSession(t *testing.T) {
	h := newHarness(t,
		"Ana", "not-an-email", "ana@example.com", "1", "1,5",
		"4", "",
		"2", "1", "", "1", "",
		"8",
	)

	if err := h.app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := h.out.String()
	for _, want := range []string{
		"❌ Please enter a valid email address.",
		"✅ Welcome, Ana! Your profile has been created.",
		"👋 Welcome back, Ana!",
		"👤 Ana | 🟢 Beginner | 🔥 0 day streak",
		"🟢 Beginner: 0 points",
		"🎯 GRAMMAR SESSION COMPLETE!",
		"✅ Correct Answers:",
		"👤 Ana | 🟢 Beginner | 🔥 1 day streak",
		"👋 Thanks for using Inglês Autodidata!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q", want)
		}
	}

	saved := h.saved(t)
	ana, ok := saved["ana@example.com"]
	if !ok {
		t.Fatal("profile was not saved")
	}
	if ana.Stats().TotalSessions != 1 || ana.Stats().TotalAnswers != 1 {
		t.Errorf("unexpected stats %+v", ana.Stats())
	}
	goals := ana.Goals()
	if len(goals) != 2 || goals[0] != user.GoalVocabulary || goals[1] != user.GoalTravel {
		t.Errorf("unexpected goals %v", goals)
	}
}

func TestEndOfInputSavesNothingPartial(t *testing.T) {
	h := newHarness(t,
		"Ana", "ana@example.com", "2", "2",
		"1", "3", "",
	)

	if err := h.app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(h.out.String(), "Keep practicing and see you soon!") {
		t.Error("expected goodbye message")
	}
	ana := h.saved(t)["ana@example.com"]
	if ana == nil {
		t.Fatal("profile was not saved")
	}
	if ana.Stats().TotalSessions != 0 {
		t.Errorf("an unfinished session must not be recorded: %+v", ana.Stats())
	}
}

func TestInvalidMenuChoiceIsRetried(t *testing.T) {
	h := newHarness(t,
		"Ana", "ana@example.com", "3", "4",
		"9", "7", "", "8",
	)

	if err := h.app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := h.out.String()
	if !strings.Contains(out, "❌ Please enter one of: 1, 2, 3, 4, 5, 6, 7, 8") {
		t.Error("expected the option list after an invalid choice")
	}
	if !strings.Contains(out, "📚 HOW TO USE INGLÊS AUTODIDATA:") {
		t.Error("expected the help screen")
	}
}

func TestDeleteAccountEndsProgram(t *testing.T) {
	h := newHarness(t,
		"Ana", "ana@example.com", "1", "1",
		"6", "3", "y", "yes",
	)

	if err := h.app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(h.out.String(), "✅ Account deleted. Goodbye!") {
		t.Error("expected deletion message")
	}
	if len(h.saved(t)) != 0 {
		t.Error("profile should be gone from the store")
	}
}

func TestExportFromSettings(t *testing.T) {
	h := newHarness(t,
		"Ana Souza", "ana@example.com", "1", "1",
		"6", "2", "", "8",
	)

	if err := h.app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(h.out.String(), "ana-souza-20240510.json") {
		t.Errorf("expected export path in output:\n%s", h.out.String())
	}
}

func TestGrammarMenuListsBundleTopics(t *testing.T) {
	h := newHarness(t,
		"Ana", "ana@example.com", "1", "1",
		"2", "6", "", "1", "",
		"8",
	)

	if err := h.app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	out := h.out.String()
	for _, want := range []string{
		"5. Mixed Practice",
		"6. Conditionals",
		"📝 GRAMMAR PRACTICE - CONDITIONALS",
		"✅ Correct! Great job!",
		"   🎯 Topic: Conditionals",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output is missing %q", want)
		}
	}
}
