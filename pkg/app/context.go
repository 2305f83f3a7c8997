package app

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Context holds application-wide configuration and state
type Context struct {
	context.Context

	// Output preferences
	OutputFormat string
	Verbose      bool
	Quiet        bool
	NoColor      bool

	// Stdout receives command results, Stderr receives logs and status lines
	Stdout io.Writer
	Stderr io.Writer

	Logger  zerolog.Logger
	Console *Console
}

// NewContext creates a new application context writing to the process
// standard streams
func NewContext() *Context {
	c := &Context{
		Context:      context.Background(),
		OutputFormat: "table",
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
	}
	c.Configure()
	return c
}

// Configure rebuilds the logger and console from the current output
// preferences. Call it after changing Verbose, Quiet, NoColor or Stderr.
func (c *Context) Configure() {
	level := zerolog.InfoLevel
	switch {
	case c.Quiet:
		level = zerolog.ErrorLevel
	case c.Verbose:
		level = zerolog.DebugLevel
	}

	// Logger and console share one locked writer so their lines never mix
	stderr := zerolog.SyncWriter(c.Stderr)

	c.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        stderr,
		NoColor:    c.NoColor,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
	}).Level(level)

	c.Console = NewConsole(stderr, c.NoColor, c.Quiet)
}

// Log outputs a debug message, shown only with verbose output
func (c *Context) Log(message string) {
	c.Logger.Debug().Msg(message)
}
