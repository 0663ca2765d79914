// Package termio implements the I/O boundary: a terminal-backed IO for the
// binary and a scripted IO for tests.
package termio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/drcDRt/tmc-cli/internal/ports"
	"golang.org/x/term"
)

type Terminal struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
	errOut io.Writer
	styles styles
	mu     sync.Mutex
}

var _ ports.IO = (*Terminal)(nil)

func NewTerminal(in io.Reader, out io.Writer, errOut io.Writer) *Terminal {
	return &Terminal{
		in:     in,
		reader: bufio.NewReader(in),
		out:    out,
		errOut: errOut,
		styles: newStyles(),
	}
}

func (t *Terminal) Print(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_, _ = io.WriteString(t.out, text)
}

func (t *Terminal) Println(text string) {
	t.Print(text + "\n")
}

func (t *Terminal) Printf(format string, args ...any) {
	t.Print(fmt.Sprintf(format, args...))
}

func (t *Terminal) PromptLine(label string) (string, error) {
	t.Print(t.styles.prompt.Render(label))

	line, err := t.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read %q: %w", strings.TrimSpace(label), err)
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (t *Terminal) PromptPassword(label string) (string, error) {
	fd, ok := terminalFD(t.in)
	if !ok {
		return t.PromptLine(label)
	}

	t.Print(t.styles.prompt.Render(label))
	secret, err := term.ReadPassword(fd)
	t.Println("")
	if err != nil {
		return "", fmt.Errorf("read %q: %w", strings.TrimSpace(label), err)
	}

	return string(secret), nil
}

// Progress shows a spinner on stderr when it is attached to a terminal.
func (t *Terminal) Progress(label string) ports.ProgressTracker {
	if _, ok := terminalFD(t.errOut); !ok {
		return silentTracker{}
	}

	return startSpinner(t.errOut, label, t.styles)
}

func terminalFD(stream any) (int, bool) {
	file, ok := stream.(*os.File)
	if !ok {
		return 0, false
	}

	fd := int(file.Fd())
	return fd, term.IsTerminal(fd)
}
