package cli

import (
	"context"
	"strings"

	"ingles-autodidata/internal/domain/learning"
	"ingles-autodidata/internal/infrastructure/terminal"
)

const dayLayout = "2006-01-02"

// handleProgress shows lifetime statistics and points per category
func (a *App) handleProgress(ctx context.Context) error {
	c := a.console
	c.Clear()
	c.Println("📈 YOUR PROGRESS")
	c.Separator("-")

	stats, progress, err := a.progress.Stats(ctx, a.current.Email())
	if err != nil {
		return err
	}

	c.Println("📊 OVERALL STATISTICS:")
	c.Printf("   📚 Total Study Sessions: %d\n", stats.TotalSessions)
	c.Printf("   📖 Words Learned: %d\n", stats.WordsLearned)
	c.Printf("   🎯 Accuracy: %s\n", stats.AccuracyText)
	c.Printf("   ⏱️  Total Study Time: %s\n", stats.StudyTime)
	c.Printf("   🔥 Current Streak: %d days\n", stats.StreakDays)
	c.Println()

	c.Println("🎯 LEARNING GOALS:")
	c.Printf("   📋 Current Level: %s\n", levelLabel(stats.Level))
	c.Printf("   🎯 Goals: %s\n", stats.Goals)
	c.Println()

	c.Println("📈 PROGRESS BY CATEGORY:")
	for _, category := range learning.TrackedCategories() {
		c.Printf("   %s:\n", title(category.String()))
		for _, level := range learning.Levels() {
			c.Printf("     %s: %d points\n", levelLabel(level), progress.Points(category, level))
		}
	}
	c.Println()

	return c.Pause(ctx, "")
}

// handleProfile shows the learner's profile and offers to edit it
func (a *App) handleProfile(ctx context.Context) error {
	c := a.console
	c.Clear()
	c.Println("👤 MY PROFILE")
	c.Separator("-")

	p := a.current
	goals := make([]string, 0, len(p.Goals()))
	for _, g := range p.Goals() {
		goals = append(goals, string(g))
	}

	c.Printf("📧 Email: %s\n", p.Email())
	c.Printf("👤 Name: %s\n", p.Name())
	c.Printf("📊 Level: %s\n", levelLabel(p.Level()))
	c.Printf("🎯 Goals: %s\n", strings.Join(goals, ", "))
	c.Printf("📅 Member Since: %s\n", p.CreatedAt().Format(dayLayout))
	c.Printf("🕐 Last Login: %s\n", p.LastLoginAt().Format(dayLayout))

	c.Println()
	c.Println("Options:")
	c.Println("1. Edit Profile")
	c.Println("2. Back to Main Menu")

	n, err := c.ChooseNumber(ctx, "Choose option", 2)
	if err != nil || n == 2 {
		return err
	}
	return a.editProfile(ctx)
}

func (a *App) editProfile(ctx context.Context) error {
	c := a.console
	c.Clear()
	c.Println("✏️  EDIT PROFILE")
	c.Separator("-")

	c.Println("What would you like to edit?")
	c.Println("1. Name")
	c.Println("2. English Level")
	c.Println("3. Learning Goals")
	c.Println("4. Cancel")

	n, err := c.ChooseNumber(ctx, "Choose option", 4)
	if err != nil {
		return err
	}

	email := a.current.Email()
	switch n {
	case 1:
		name, err := c.Prompt(ctx, "Enter new name")
		if err != nil {
			return err
		}
		a.applyEdit(a.users.Rename(ctx, email, name), "✅ Name updated successfully!")
	case 2:
		c.Println("Select new English level:")
		level, err := a.chooseLevel(ctx, "Choose level")
		if err != nil {
			return err
		}
		a.applyEdit(a.users.ChangeLevel(ctx, email, level), "✅ Level updated successfully!")
	case 3:
		c.Println("Select new learning goals (multiple allowed):")
		goals, err := a.chooseGoals(ctx)
		if err != nil {
			return err
		}
		a.applyEdit(a.users.SetGoals(ctx, email, goals), "✅ Goals updated successfully!")
	}

	return c.Pause(ctx, "")
}

func (a *App) applyEdit(err error, success string) {
	if err != nil {
		a.reportSaveError(err)
		return
	}
	a.console.Say(terminal.Green, success)
}
