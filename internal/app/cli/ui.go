package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// UI owns terminal input and output. Reader and writer are injected so the
// whole menu tree can run against buffers in tests; password echo is only
// suppressed when the reader really is a terminal.
type UI struct {
	in  *bufio.Reader
	out io.Writer

	fd          int
	interactive bool

	success *color.Color
	warn    *color.Color
	failure *color.Color
}

func NewUI(in io.Reader, out io.Writer) *UI {
	u := &UI{
		in:      bufio.NewReader(in),
		out:     out,
		fd:      -1,
		success: color.New(color.FgGreen),
		warn:    color.New(color.FgYellow),
		failure: color.New(color.FgRed),
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		u.fd = int(f.Fd())
		u.interactive = true
	}
	return u
}

func (u *UI) Printf(format string, args ...any) {
	fmt.Fprintf(u.out, format, args...)
}

func (u *UI) Println(args ...any) {
	fmt.Fprintln(u.out, args...)
}

// Successf prints a green confirmation line.
func (u *UI) Successf(format string, args ...any) {
	u.success.Fprintf(u.out, format+"\n", args...)
}

// Warnf prints a yellow warning line.
func (u *UI) Warnf(format string, args ...any) {
	u.warn.Fprintf(u.out, format+"\n", args...)
}

// Errorf prints a red error line.
func (u *UI) Errorf(format string, args ...any) {
	u.failure.Fprintf(u.out, format+"\n", args...)
}

// Clear wipes the screen on a real terminal and separates output otherwise.
func (u *UI) Clear() {
	if u.interactive {
		fmt.Fprint(u.out, "\033[H\033[2J")
		return
	}
	fmt.Fprintln(u.out)
}

// Banner prints the framed application title.
func (u *UI) Banner(title string) {
	line := strings.Repeat("-", 44)
	fmt.Fprintln(u.out, line)
	fmt.Fprintf(u.out, "   %s\n", title)
	fmt.Fprintln(u.out, line)
}

// Pause waits for Enter, ignoring whatever was typed.
func (u *UI) Pause() {
	fmt.Fprint(u.out, "\nPressione Enter para continuar...")
	_, _ = u.readRaw()
	fmt.Fprintln(u.out)
}

// ReadLine prompts and returns one trimmed input line. io.EOF surfaces when
// the input is exhausted so callers can wind the session down.
func (u *UI) ReadLine(prompt string) (string, error) {
	fmt.Fprint(u.out, prompt)
	return u.readRaw()
}

// ReadPassword prompts without echo on a terminal; off-terminal it degrades
// to a plain line read.
func (u *UI) ReadPassword(prompt string) (string, error) {
	if !u.interactive {
		return u.ReadLine(prompt)
	}
	fmt.Fprint(u.out, prompt)
	pw, err := term.ReadPassword(u.fd)
	fmt.Fprintln(u.out)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimSpace(string(pw)), nil
}

func (u *UI) readRaw() (string, error) {
	line, err := u.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
