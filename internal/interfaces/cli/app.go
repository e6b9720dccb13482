package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"ingles-autodidata/internal/application/usecases"
	"ingles-autodidata/internal/domain/user"
	"ingles-autodidata/internal/infrastructure/terminal"
)

// errAccountDeleted ends the program after the learner deletes their profile
var errAccountDeleted = errors.New("account deleted")

// App is the interactive terminal front-end
type App struct {
	console   *terminal.Console
	users     *usecases.UserUseCase
	progress  *usecases.ProgressUseCase
	sessions  *usecases.SessionUseCase
	exportDir string
	logger    *zap.Logger

	current *user.Profile
	menu    Dispatcher
}

// NewApp creates the terminal application
func NewApp(
	console *terminal.Console,
	users *usecases.UserUseCase,
	progress *usecases.ProgressUseCase,
	sessions *usecases.SessionUseCase,
	exportDir string,
	logger *zap.Logger,
) *App {
	a := &App{
		console:   console,
		users:     users,
		progress:  progress,
		sessions:  sessions,
		exportDir: exportDir,
		logger:    logger,
		menu:      NewDispatcher(),
	}

	a.menu.RegisterHandler("1", a.handleVocabulary)
	a.menu.RegisterHandler("2", a.handleGrammar)
	a.menu.RegisterHandler("3", a.handleConversation)
	a.menu.RegisterHandler("4", a.handleProgress)
	a.menu.RegisterHandler("5", a.handleProfile)
	a.menu.RegisterHandler("6", a.handleSettings)
	a.menu.RegisterHandler("7", a.handleHelp)
	a.menu.RegisterHandler("8", func(context.Context) error { return errExit })

	return a
}

// Run signs the learner in and serves the main menu until they leave.
// Interruption and end of input end the program normally.
func (a *App) Run(ctx context.Context) error {
	err := a.run(ctx)
	switch {
	case err == nil, errors.Is(err, errExit):
		a.goodbye()
		return nil
	case errors.Is(err, errAccountDeleted):
		return nil
	case errors.Is(err, terminal.ErrInterrupted), errors.Is(err, io.EOF):
		a.console.Println()
		a.goodbye()
		return nil
	default:
		return err
	}
}

func (a *App) run(ctx context.Context) error {
	profile, err := a.signIn(ctx)
	if err != nil {
		return err
	}
	a.current = profile
	a.logger.Info("session started", zap.String("email", profile.Email().String()))

	for {
		a.showMainMenu()

		choice, err := a.console.Choose(ctx, "Choose an option (1-8)", a.menu.Options())
		if err != nil {
			return err
		}
		if err := a.menu.Dispatch(ctx, choice); err != nil {
			return err
		}
	}
}

func (a *App) showMainMenu() {
	c := a.console
	c.Clear()

	stats := a.current.DisplayStats()
	c.Printf("👤 %s | %s | 🔥 %d day streak\n", a.current.Name(), levelLabel(a.current.Level()), stats.StreakDays)
	c.Separator("=")

	c.Println("📚 INGLÊS AUTODIDATA - MAIN MENU")
	c.Separator("-")

	c.Println("🎯 LEARNING MODULES:")
	c.Println("1. 📖 Vocabulary Practice")
	c.Println("2. 📝 Grammar Exercises")
	c.Println("3. 💬 Conversation Practice")
	c.Println()

	c.Println("📊 PROGRESS & PROFILE:")
	c.Println("4. 📈 View Progress")
	c.Println("5. 👤 My Profile")
	c.Println("6. ⚙️  Settings")
	c.Println()

	c.Println("ℹ️  HELP & EXIT:")
	c.Println("7. ❓ Help")
	c.Println("8. 🚪 Exit")

	c.Separator("-")
}

func (a *App) goodbye() {
	a.console.Println()
	a.console.Println("👋 Thanks for using Inglês Autodidata!")
	a.console.Println("Keep practicing and see you soon! 🌟")
}

// reportSaveError tells the learner a change was kept in memory but not written to disk
func (a *App) reportSaveError(err error) {
	a.logger.Error("failed to save profiles", zap.Error(err))
	a.console.Say(terminal.Red, fmt.Sprintf("❌ Could not save your data: %v", err))
}
