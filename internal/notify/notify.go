// Package notify renders short user-facing messages. Services depend on the
// domain.Notifier port; this package supplies the terminal implementation.
package notify

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"securechat/internal/domain"
)

// Terminal writes one-line notifications to a writer (stderr by default) and
// echoes them to the structured log.
type Terminal struct {
	out io.Writer
	log *zap.Logger
}

// NewTerminal returns a terminal notifier. A nil logger disables echoing.
func NewTerminal(log *zap.Logger) *Terminal {
	if log == nil {
		log = zap.NewNop()
	}
	return &Terminal{out: os.Stderr, log: log}
}

// NewTerminalTo is NewTerminal with an explicit writer, for tests.
func NewTerminalTo(out io.Writer, log *zap.Logger) *Terminal {
	t := NewTerminal(log)
	t.out = out
	return t
}

// Success reports a completed operation.
func (t *Terminal) Success(msg string) {
	fmt.Fprintf(t.out, "ok: %s\n", msg)
	t.log.Info(msg, zap.String("level", "success"))
}

// Info reports neutral information.
func (t *Terminal) Info(msg string) {
	fmt.Fprintf(t.out, "info: %s\n", msg)
	t.log.Info(msg)
}

// Warning reports a recoverable problem.
func (t *Terminal) Warning(msg string) {
	fmt.Fprintf(t.out, "warning: %s\n", msg)
	t.log.Warn(msg)
}

// Error reports a failed operation.
func (t *Terminal) Error(msg string) {
	fmt.Fprintf(t.out, "error: %s\n", msg)
	t.log.Error(msg)
}

var _ domain.Notifier = (*Terminal)(nil)
