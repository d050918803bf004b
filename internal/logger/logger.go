// Package logger is the zerolog-backed logger shared by the server, the
// content watcher and the CLI.
package logger

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	nexuserrors "github.com/alexisbeaulieu97/nexus/pkg/errors"
)

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
}

// Logger writes leveled, structured entries. A nil *Logger discards
// everything.
type Logger struct {
	base zerolog.Logger
}

// New creates a logger. Output goes to stderr unless Writer is set; stdout
// is left for command output such as rendered pages.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	output := writer
	if opts.HumanReadable {
		output = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.Kitchen}
	}

	return &Logger{base: zerolog.New(output).Level(level).With().Timestamp().Logger()}, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// WithFields returns a derived logger that always writes fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.base.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}
	return &Logger{base: ctx.Logger()}
}

func (l *Logger) Info(msg string) {
	if l != nil {
		l.base.Info().Msg(msg)
	}
}

func (l *Logger) Debug(msg string) {
	if l != nil {
		l.base.Debug().Msg(msg)
	}
}

func (l *Logger) Warn(msg string) {
	if l != nil {
		l.base.Warn().Msg(msg)
	}
}

// Error writes err at error level. Typed errors from pkg/errors also add
// their detail as fields: path and line, field, status or route.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}

	var (
		parseErr      *nexuserrors.ParseError
		validationErr *nexuserrors.ValidationError
		submissionErr *nexuserrors.SubmissionError
		renderErr     *nexuserrors.RenderError
	)
	switch {
	case errors.As(err, &parseErr):
		event = event.Str("kind", "parse").Str("path", parseErr.Path)
		if parseErr.Line > 0 {
			event = event.Int("line", parseErr.Line)
		}
	case errors.As(err, &validationErr):
		event = event.Str("kind", "validation").Str("field", validationErr.Field)
	case errors.As(err, &submissionErr):
		event = event.Str("kind", "submission").Int("status", submissionErr.StatusCode)
	case errors.As(err, &renderErr):
		event = event.Str("kind", "render").Str("route", renderErr.Route)
	}
	event.Msg(msg)
}
