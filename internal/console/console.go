package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Console reads answers from an input stream and writes styled output.
// It is used from a single goroutine.
type Console struct {
	in     *bufio.Reader
	out    io.Writer
	styles styles

	// passwordFd is the terminal descriptor used for masked reads, or -1.
	passwordFd int
}

// New creates a Console reading from in and writing to out. Masked password
// input is enabled when in is a terminal.
func New(in io.Reader, out io.Writer) *Console {
	fd := -1
	if f, ok := in.(*os.File); ok {
		if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
			fd = int(f.Fd())
		}
	}
	return &Console{
		in:         bufio.NewReader(in),
		out:        out,
		styles:     newStyles(lipgloss.NewRenderer(out)),
		passwordFd: fd,
	}
}

// Masked reports whether password prompts hide the typed characters.
func (c *Console) Masked() bool {
	return c.passwordFd >= 0
}

type readResult struct {
	line string
	err  error
}

// await runs read in its own goroutine so a cancelled ctx can interrupt a
// blocked read. The abandoned read finishes on its own; callers stop using
// the Console once ctx is done.
func (c *Console) await(ctx context.Context, read func() (string, error)) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ch := make(chan readResult, 1)
	go func() {
		line, err := read()
		ch <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// readLine returns the next line without its line terminator. A final line
// without a newline is returned normally; io.EOF is reported only when no
// input remains.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt prints label and reads one line of input.
func (c *Console) Prompt(ctx context.Context, label string) (string, error) {
	fmt.Fprint(c.out, c.styles.Prompt.Render(label+": "))
	return c.await(ctx, c.readLine)
}

// PromptPassword prints label and reads a password. On a terminal the input
// is not echoed.
func (c *Console) PromptPassword(ctx context.Context, label string) (string, error) {
	fmt.Fprint(c.out, c.styles.Prompt.Render(label+": "))
	if !c.Masked() {
		return c.await(ctx, c.readLine)
	}

	state, err := term.GetState(c.passwordFd)
	if err != nil {
		return "", fmt.Errorf("failed to read terminal state: %w", err)
	}

	pw, err := c.await(ctx, func() (string, error) {
		b, err := term.ReadPassword(c.passwordFd)
		return string(b), err
	})
	fmt.Fprintln(c.out)
	if ctx.Err() != nil {
		_ = term.Restore(c.passwordFd, state)
	}
	return pw, err
}

// Title prints a section heading preceded by a blank line.
func (c *Console) Title(text string) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, c.styles.Title.Render(text))
}

// Menu prints a heading and numbered options starting at 1.
func (c *Console) Menu(title string, options []string) {
	c.Title(title)
	for i, opt := range options {
		fmt.Fprintln(c.out, c.styles.Option.Render(fmt.Sprintf("%d. %s", i+1, opt)))
	}
}

// Info prints a plain message.
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.out, msg)
}

// Success prints a message marking a completed operation.
func (c *Console) Success(msg string) {
	fmt.Fprintln(c.out, c.styles.Success.Render(iconSuccess+" "+msg))
}

// Warn prints a message about rejected input.
func (c *Console) Warn(msg string) {
	fmt.Fprintln(c.out, c.styles.Warning.Render(iconWarning+" "+msg))
}

// Error prints a message about a failed operation.
func (c *Console) Error(msg string) {
	fmt.Fprintln(c.out, c.styles.Error.Render(iconError+" "+msg))
}
