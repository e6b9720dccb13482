package terminal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
)

func TestChooseRetriesUntilValid(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader("7\nabc\n3\n"), &out, false)

	got, err := c.ChooseNumber(context.Background(), "Choose an option", 4)
	if err != nil {
		t.Fatalf("ChooseNumber() error = %v", err)
	}
	if got != 3 {
		t.Fatalf("ChooseNumber() = %d want 3", got)
	}
	if n := strings.Count(out.String(), "Please enter one of: 1, 2, 3, 4"); n != 2 {
		t.Fatalf("expected 2 retry messages, got %d in %q", n, out.String())
	}
}

func TestPromptAndConfirm(t *testing.T) {
	c := NewConsole(strings.NewReader("\n   \n Ana \nYES\nmaybe\nn\n"), io.Discard, false)
	ctx := context.Background()

	name, err := c.Prompt(ctx, "Enter your name")
	if err != nil || name != "Ana" {
		t.Fatalf("Prompt() = %q, %v", name, err)
	}

	ok, err := c.Confirm(ctx, "Sure?")
	if err != nil || !ok {
		t.Fatalf("Confirm() = %v, %v want true", ok, err)
	}
	ok, err = c.Confirm(ctx, "Sure?")
	if err != nil || ok {
		t.Fatalf("Confirm() = %v, %v want false", ok, err)
	}

	if _, err := c.Prompt(ctx, "More"); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF at end of input, got %v", err)
	}
}

func TestReadLineInterrupted(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	c := NewConsole(r, io.Discard, false)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if _, err := c.ReadLine(ctx); !errors.Is(err, ErrInterrupted) {
		t.Fatalf("ReadLine() error = %v want ErrInterrupted", err)
	}
}

func TestColoredRespectsMode(t *testing.T) {
	plain := NewConsole(strings.NewReader(""), io.Discard, false)
	if got := plain.Colored(Green, "ok"); got != "ok" {
		t.Fatalf("Colored() = %q want plain text", got)
	}
	colored := NewConsole(strings.NewReader(""), io.Discard, true)
	if got := colored.Colored(Green, "ok"); got != "\033[92mok\033[0m" {
		t.Fatalf("Colored() = %q", got)
	}
}

func TestBannerLinesHaveEqualWidth(t *testing.T) {
	var out bytes.Buffer
	c := NewConsole(strings.NewReader(""), &out, false)
	c.Banner("INGLÊS AUTODIDATA", "🇺🇸 Learn English at Your Own Pace 🇬🇧")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("banner has %d lines want 4", len(lines))
	}
	for _, l := range lines[1:3] {
		inner := strings.TrimSuffix(strings.TrimPrefix(l, "║"), "║")
		if got := runewidth.StringWidth(inner); got != SeparatorWidth+2 {
			t.Fatalf("line %q is %d cells want %d", l, got, SeparatorWidth+2)
		}
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		current, total, width int
		want                  string
	}{
		{current: 0, total: 0, width: 4, want: "[....]"},
		{current: 1, total: 2, width: 4, want: "[██░░] 50.0%"},
		{current: 3, total: 3, width: 2, want: "[██] 100.0%"},
	}
	for _, tt := range tests {
		if got := ProgressBar(tt.current, tt.total, tt.width); got != tt.want {
			t.Fatalf("ProgressBar(%d, %d, %d) = %q want %q", tt.current, tt.total, tt.width, got, tt.want)
		}
	}
}
