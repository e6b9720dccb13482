package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// ErrInterrupted is returned by reads cancelled through their context (Ctrl+C)
var ErrInterrupted = errors.New("interrupted")

// Color is an ANSI foreground colour
type Color string

const (
	Red    Color = "\033[91m"
	Green  Color = "\033[92m"
	Yellow Color = "\033[93m"
	Blue   Color = "\033[94m"
	Purple Color = "\033[95m"
	Cyan   Color = "\033[96m"
	White  Color = "\033[97m"

	reset = "\033[0m"
)

// SeparatorWidth is the width of separators and the banner box
const SeparatorWidth = 60

// Console is the line-oriented terminal the learner talks to.
// A single goroutine reads input so a pending read can be abandoned on cancellation.
type Console struct {
	out     io.Writer
	color   bool
	lines   chan string
	readErr error
}

// NewConsole creates a console over arbitrary streams. color enables ANSI codes.
func NewConsole(in io.Reader, out io.Writer, color bool) *Console {
	c := &Console{out: out, color: color, lines: make(chan string)}
	go c.readLoop(in)
	return c
}

// NewStdConsole creates a console on stdin/stdout. mode is auto, always or never;
// auto enables colour only when stdout is a terminal.
func NewStdConsole(mode string) *Console {
	color := false
	switch mode {
	case "always":
		color = true
	case "auto":
		fd := os.Stdout.Fd()
		color = isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
	return NewConsole(os.Stdin, colorable.NewColorableStdout(), color)
}

func (c *Console) readLoop(in io.Reader) {
	defer close(c.lines)

	sc := bufio.NewScanner(in)
	for sc.Scan() {
		c.lines <- sc.Text()
	}
	c.readErr = sc.Err()
	if c.readErr == nil {
		c.readErr = io.EOF
	}
}

// ReadLine waits for the next input line
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ErrInterrupted
	case line, ok := <-c.lines:
		if !ok {
			return "", c.readErr
		}
		return line, nil
	}
}

// Println writes a line
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted text
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

// Colored wraps text in a colour when colour output is enabled
func (c *Console) Colored(color Color, text string) string {
	if !c.color {
		return text
	}
	return string(color) + text + reset
}

// Say writes a coloured line
func (c *Console) Say(color Color, text string) {
	c.Println(c.Colored(color, text))
}

// Clear clears the screen. It does nothing when output is not a terminal.
func (c *Console) Clear() {
	if c.color {
		fmt.Fprint(c.out, "\033[H\033[2J")
	}
}

// Separator writes a line of char
func (c *Console) Separator(char string) {
	c.Println(strings.Repeat(char, SeparatorWidth))
}

// Prompt asks until a non-empty answer is given
func (c *Console) Prompt(ctx context.Context, label string) (string, error) {
	for {
		c.Printf("%s: ", label)
		line, err := c.ReadLine(ctx)
		if err != nil {
			return "", err
		}
		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
		c.Println("❌ Please enter a valid input.")
	}
}

// Choose asks until one of options is entered, ignoring case. The answer is returned lowercased.
func (c *Console) Choose(ctx context.Context, label string, options []string) (string, error) {
	for {
		c.Printf("%s: ", label)
		line, err := c.ReadLine(ctx)
		if err != nil {
			return "", err
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		for _, o := range options {
			if answer == strings.ToLower(o) {
				return answer, nil
			}
		}
		c.Printf("❌ Please enter one of: %s\n", strings.Join(options, ", "))
	}
}

// ChooseNumber asks for a number between 1 and n
func (c *Console) ChooseNumber(ctx context.Context, label string, n int) (int, error) {
	options := make([]string, n)
	for i := range options {
		options[i] = fmt.Sprint(i + 1)
	}
	answer, err := c.Choose(ctx, fmt.Sprintf("%s (1-%d)", label, n), options)
	if err != nil {
		return 0, err
	}
	var choice int
	fmt.Sscan(answer, &choice)
	return choice, nil
}

// Confirm asks a yes/no question
func (c *Console) Confirm(ctx context.Context, question string) (bool, error) {
	answer, err := c.Choose(ctx, question+" (y/n)", []string{"y", "yes", "n", "no"})
	if err != nil {
		return false, err
	}
	return answer == "y" || answer == "yes", nil
}

// Pause waits for Enter
func (c *Console) Pause(ctx context.Context, message string) error {
	if message == "" {
		message = "Press Enter to continue..."
	}
	c.Printf("\n%s", message)
	_, err := c.ReadLine(ctx)
	return err
}
