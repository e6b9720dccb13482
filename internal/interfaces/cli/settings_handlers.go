package cli

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"ingles-autodidata/internal/infrastructure/terminal"
)

// handleSettings offers reset, export and account deletion
func (a *App) handleSettings(ctx context.Context) error {
	c := a.console
	c.Clear()
	c.Println("⚙️  SETTINGS")
	c.Separator("-")

	c.Println("1. Reset Progress")
	c.Println("2. Export Data")
	c.Println("3. Delete Account")
	c.Println("4. Back to Main Menu")

	n, err := c.ChooseNumber(ctx, "Choose option", 4)
	if err != nil {
		return err
	}

	switch n {
	case 1:
		err = a.resetProgress(ctx)
	case 2:
		err = a.exportData(ctx)
	case 3:
		err = a.deleteAccount(ctx)
	case 4:
		return nil
	}
	if err != nil {
		return err
	}

	return c.Pause(ctx, "")
}

func (a *App) resetProgress(ctx context.Context) error {
	ok, err := a.console.Confirm(ctx, "⚠️  Are you sure you want to reset all progress?")
	if err != nil || !ok {
		return err
	}

	if err := a.progress.ResetProgress(ctx, a.current.Email()); err != nil {
		a.reportSaveError(err)
		return nil
	}
	a.console.Say(terminal.Green, "✅ Progress reset successfully!")
	return nil
}

func (a *App) exportData(ctx context.Context) error {
	path, err := a.users.ExportProfile(ctx, a.current.Email(), a.exportDir)
	if err != nil {
		a.logger.Error("failed to export profile", zap.Error(err))
		a.console.Say(terminal.Red, fmt.Sprintf("❌ Export failed: %v", err))
		return nil
	}
	a.console.Say(terminal.Green, "✅ Data exported to "+path)
	return nil
}

func (a *App) deleteAccount(ctx context.Context) error {
	ok, err := a.console.Confirm(ctx, "⚠️  Are you sure you want to delete your account?")
	if err != nil || !ok {
		return err
	}
	ok, err = a.console.Confirm(ctx, "⚠️  This action cannot be undone. Continue?")
	if err != nil || !ok {
		return err
	}

	if err := a.users.DeleteProfile(ctx, a.current.Email()); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	a.console.Say(terminal.Green, "✅ Account deleted. Goodbye!")
	return errAccountDeleted
}

// handleHelp explains the modules and levels
func (a *App) handleHelp(ctx context.Context) error {
	c := a.console
	c.Clear()
	c.Println("❓ HELP")
	c.Separator("-")

	c.Println("📚 HOW TO USE INGLÊS AUTODIDATA:")
	c.Println()
	c.Println("🎯 LEARNING MODULES:")
	c.Println("   • Vocabulary Practice: Learn new words with definitions and examples")
	c.Println("   • Grammar Exercises: Practice English grammar rules")
	c.Println("   • Conversation Practice: Simulate real-world conversations")
	c.Println()
	c.Println("📊 PROGRESS TRACKING:")
	c.Println("   • View your statistics and learning progress")
	c.Println("   • Track your daily study streak")
	c.Println("   • Monitor accuracy and improvement over time")
	c.Println()
	c.Println("🎯 DIFFICULTY LEVELS:")
	c.Println("   • 🟢 Beginner: Basic vocabulary and simple grammar")
	c.Println("   • 🟡 Intermediate: Common words and standard grammar")
	c.Println("   • 🔴 Advanced: Complex vocabulary and advanced grammar")
	c.Println()
	c.Println("💡 TIPS FOR EFFECTIVE LEARNING:")
	c.Println("   • Study consistently every day to maintain your streak")
	c.Println("   • Focus on areas that match your learning goals")
	c.Println("   • Review mistakes to improve your accuracy")
	c.Println("   • Practice all modules for balanced learning")

	return c.Pause(ctx, "")
}
