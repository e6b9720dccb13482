package cli

import (
	"context"
	"errors"
	"fmt"

	"ingles-autodidata/internal/domain/user"
	"ingles-autodidata/internal/infrastructure/terminal"
)

func (a *App) showBanner() {
	a.console.Clear()
	a.console.Banner(
		"INGLÊS AUTODIDATA",
		"Self-Taught English Learning",
		"",
		"🇺🇸 Learn English at Your Own Pace 🇬🇧",
	)
}

// signIn creates the first profile when none exists, then logs a profile in.
// A single profile is logged in without asking.
func (a *App) signIn(ctx context.Context) (*user.Profile, error) {
	a.showBanner()

	if !a.users.HasProfiles() {
		a.console.Println("🎉 Welcome to Inglês Autodidata!")
		a.console.Println("Let's start your English learning journey!")
		a.console.Println()
		if err := a.createProfile(ctx); err != nil {
			return nil, err
		}
	}

	email, err := a.pickProfile(ctx)
	if err != nil {
		return nil, err
	}

	profile, err := a.users.Login(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	a.console.Printf("👋 Welcome back, %s!\n", profile.Name())
	return profile, nil
}

func (a *App) createProfile(ctx context.Context) error {
	c := a.console
	c.Println("📝 Creating your profile...")
	c.Println("------------------------------")

	name, err := c.Prompt(ctx, "Enter your name")
	if err != nil {
		return err
	}

	var email user.Email
	for {
		input, err := c.Prompt(ctx, "Enter your email")
		if err != nil {
			return err
		}
		email, err = a.users.CheckEmail(input)
		if err == nil {
			break
		}
		if errors.Is(err, user.ErrEmailTaken) {
			c.Println("❌ Email already exists. Please use a different email.")
		} else {
			c.Println("❌ Please enter a valid email address.")
		}
	}

	c.Println()
	c.Println("Select your English level:")
	level, err := a.chooseLevel(ctx, "Choose your level")
	if err != nil {
		return err
	}

	c.Println()
	c.Println("What are your learning goals? (select multiple with commas)")
	goals, err := a.chooseGoals(ctx)
	if err != nil {
		return err
	}

	if _, err := a.users.CreateProfile(ctx, name, email.String(), level, goals); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}

	c.Println()
	c.Say(terminal.Green, fmt.Sprintf("✅ Welcome, %s! Your profile has been created.", name))
	return nil
}

func (a *App) pickProfile(ctx context.Context) (user.Email, error) {
	profiles := a.users.Profiles()
	if len(profiles) == 1 {
		return profiles[0].Email(), nil
	}

	width := 0
	for _, p := range profiles {
		if w := terminal.Width(p.Name()); w > width {
			width = w
		}
	}

	a.console.Println("Select your profile:")
	for i, p := range profiles {
		a.console.Printf("%d. %s (%s)\n", i+1, terminal.PadRight(p.Name(), width), p.Email())
	}

	n, err := a.console.ChooseNumber(ctx, "Choose profile", len(profiles))
	if err != nil {
		return "", err
	}
	return profiles[n-1].Email(), nil
}
