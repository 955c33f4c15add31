package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sumanthreddy2024/artgen/internal/logging"
	"github.com/sumanthreddy2024/artgen/pkg/domain"
)

// SignalContext wraps a context and captures the signal that cancelled it.
type SignalContext struct {
	context.Context
	Cancel func()
	stop   sync.Once
	sigCh  chan os.Signal
	sigVal os.Signal
	mu     sync.Mutex
}

// NewSignalContext creates a context that is cancelled on SIGINT or SIGTERM.
// It acts as a drop-in replacement for signal.NotifyContext but allows retrieving the signal.
func NewSignalContext(parent context.Context) *SignalContext {
	ctx, cancel := context.WithCancel(parent)
	sc := &SignalContext{
		Context: ctx,
		Cancel:  cancel,
		sigCh:   make(chan os.Signal, 1),
	}

	signal.Notify(sc.sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sc.sigCh:
			sc.mu.Lock()
			sc.sigVal = sig
			sc.mu.Unlock()
			sc.Cancel()
		case <-sc.Context.Done():
		}
		sc.stop.Do(func() {
			signal.Stop(sc.sigCh)
		})
	}()

	return sc
}

// Signal returns the signal that caused the context to be cancelled, or nil.
func (sc *SignalContext) Signal() os.Signal {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.sigVal
}

// createLogger configures the application logger.
// Informational lines are always on; debug adds per-iteration records.
func createLogger(w io.Writer, debug bool) *slog.Logger {
	if debug {
		return logging.NewTo(w, slog.LevelDebug)
	}
	return logging.NewTo(w, slog.LevelInfo)
}

// printSystemMessage prints a standardized system message.
func printSystemMessage(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, ">>> %s\n", fmt.Sprintf(format, args...))
}

func createDebugHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnShapeDrawn: func(ctx context.Context, e *domain.ShapeEvent) {
			logger.Debug("Shape Drawn", "iteration", e.Iteration, "category", e.Category, "color", e.Shape.Color)
		},
		OnShapeSkipped: func(ctx context.Context, e *domain.ShapeEvent) {
			logger.Debug("Shape Skipped", "iteration", e.Iteration, "category", e.Category)
		},
		OnNoteComposed: func(ctx context.Context, e *domain.NoteEvent) {
			logger.Debug("Note Composed", "iteration", e.Iteration, "pitch", e.Note.Pitch)
		},
	}
}

// IsInterrupted reports whether err stems from a cancelled context.
func IsInterrupted(err error) bool {
	return errors.Is(err, context.Canceled)
}

func handleExecutionError(err error) error {
	if err == nil || IsInterrupted(err) {
		return nil
	}
	return err
}
