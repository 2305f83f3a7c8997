package app

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Console writes human-oriented status lines. Each line, or group of lines for
// WarnError, reaches out in a single Write so it cannot be split by other
// writers sharing out.
type Console struct {
	mu    sync.Mutex
	out   io.Writer
	quiet bool

	status  *color.Color
	warning *color.Color
	failure *color.Color
	cause   *color.Color
}

// NewConsole creates a console writing to out. Status and warning lines are
// suppressed when quiet; error lines never are.
func NewConsole(out io.Writer, noColor, quiet bool) *Console {
	c := &Console{
		out:     out,
		quiet:   quiet,
		status:  color.New(color.FgGreen, color.Bold),
		warning: color.New(color.FgYellow, color.Bold),
		failure: color.New(color.FgRed, color.Bold),
		cause:   color.New(color.FgYellow),
	}
	if noColor {
		for _, col := range []*color.Color{c.status, c.warning, c.failure, c.cause} {
			col.DisableColor()
		}
	}
	return c
}

// Status prints a right-aligned status word followed by a message, e.g.
// "    Unpacked 'kernel' section into 'boot/kernel.img'."
func (c *Console) Status(status, format string, args ...interface{}) {
	if c.quiet {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.write(c.status.Sprintf("%12s", status) + " " + fmt.Sprintf(format, args...) + "\n")
}

// Warn prints a warning line
func (c *Console) Warn(format string, args ...interface{}) {
	if c.quiet {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.write(c.warning.Sprint("warning: ") + fmt.Sprintf(format, args...) + "\n")
}

// WarnError prints a warning line followed by one "caused by:" line per error
// in err's chain
func (c *Console) WarnError(message string, err error) {
	if c.quiet {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	var b strings.Builder
	b.WriteString(c.warning.Sprint("warning: ") + message + "\n")
	for _, cause := range causes(err) {
		b.WriteString(c.cause.Sprint("caused by: ") + cause + "\n")
	}
	c.write(b.String())
}

// Error prints an error line
func (c *Console) Error(format string, args ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.write(c.failure.Sprint("error: ") + fmt.Sprintf(format, args...) + "\n")
}

// write emits text with one call to the underlying writer. Callers hold mu.
func (c *Console) write(text string) {
	_, _ = io.WriteString(c.out, text)
}

// causes flattens an error chain into distinct messages, dropping the text a
// wrapper repeats from the error it wraps
func causes(err error) []string {
	var out []string
	for err != nil {
		msg := err.Error()
		next := errors.Unwrap(err)
		if next != nil {
			if inner := next.Error(); inner != "" && strings.HasSuffix(msg, inner) {
				msg = strings.TrimRight(strings.TrimSuffix(msg, inner), " :")
			}
		}
		if msg != "" {
			out = append(out, msg)
		}
		err = next
	}
	return out
}
