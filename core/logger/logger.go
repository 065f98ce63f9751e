package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Diagnostics holds whether debug output is enabled. One value is shared by
// all components, the shell only ever touches it from one goroutine.
type Diagnostics struct {
	enabled bool
}

// NewDiagnostics creates the flag with its initial state.
func NewDiagnostics(enabled bool) *Diagnostics {
	return &Diagnostics{enabled: enabled}
}

// Enabled reports whether debug output should be written.
func (d *Diagnostics) Enabled() bool {
	return d != nil && d.enabled
}

// SetEnabled sets the flag.
func (d *Diagnostics) SetEnabled(enabled bool) {
	d.enabled = enabled
}

// Toggle flips the flag and returns the new state.
func (d *Diagnostics) Toggle() bool {
	d.enabled = !d.enabled
	return d.enabled
}

// Logger writes diagnostics for a shell session.
type Logger struct {
	zl        zerolog.Logger
	diag      *Diagnostics
	sessionID string
}

// New creates a Logger that writes human readable lines to w.
func New(w io.Writer, diag *Diagnostics) *Logger {
	return NewWithWriter(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    color.NoColor,
		TimeFormat: time.Kitchen,
	}, diag)
}

// NewWithWriter creates a Logger that writes zerolog's JSON lines (or any
// zerolog compatible writer) to w.
func NewWithWriter(w io.Writer, diag *Diagnostics) *Logger {
	sessionID := uuid.NewString()
	zl := zerolog.New(w).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Str("session", sessionID).
		Logger()

	return &Logger{
		zl:        zl,
		diag:      diag,
		sessionID: sessionID,
	}
}

// Nop creates a Logger that discards everything.
func Nop() *Logger {
	return &Logger{
		zl:   zerolog.Nop(),
		diag: NewDiagnostics(false),
	}
}

// Stderr creates a Logger writing to the process' stderr.
func Stderr(diag *Diagnostics) *Logger {
	return New(os.Stderr, diag)
}

// SessionID identifies the shell session in every line the logger writes.
func (l *Logger) SessionID() string {
	return l.sessionID
}

// Diagnostics returns the shared flag gating debug output.
func (l *Logger) Diagnostics() *Diagnostics {
	return l.diag
}

// Debug writes msg for component if diagnostics are enabled.
func (l *Logger) Debug(component, msg string) {
	if !l.diag.Enabled() {
		return
	}
	l.zl.Debug().Str("component", component).Msg(msg)
}

// Debugf is Debug with formatting. Arguments aren't formatted when diagnostics
// are off.
func (l *Logger) Debugf(component, format string, a ...interface{}) {
	if !l.diag.Enabled() {
		return
	}
	l.Debug(component, fmt.Sprintf(format, a...))
}

// Infof writes an informational message regardless of the diagnostics flag.
func (l *Logger) Infof(format string, a ...interface{}) {
	l.zl.Info().Msgf(format, a...)
}

// Errorf writes an error regardless of the diagnostics flag.
func (l *Logger) Errorf(format string, a ...interface{}) {
	l.zl.Error().Msgf(format, a...)
}
