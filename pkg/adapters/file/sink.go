package file

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sumanthreddy2024/artgen/pkg/adapters/process"
	"github.com/sumanthreddy2024/artgen/pkg/art"
	"github.com/sumanthreddy2024/artgen/pkg/music"
)

// DefaultBasePath is the output directory used when none is configured.
const DefaultBasePath = "artgen-out"

// Launcher starts an external program on a written artifact.
type Launcher interface {
	Has(name string) bool
	Launch(ctx context.Context, name, file string) (process.Result, error)
}

// Sink implements ports.Playback and ports.Display using the local
// filesystem. Artifacts are named after the run ID, so one Sink produces
// <run-id>.mid and <run-id>.<format>.
type Sink struct {
	BasePath string
	RunID    string
	Format   string
	DPMM     float64
	Launcher Launcher
	Logger   *slog.Logger
}

// Option configures a Sink.
type Option func(*Sink)

// WithRunID overrides the generated run ID.
func WithRunID(id string) Option {
	return func(s *Sink) {
		s.RunID = id
	}
}

// WithFormat sets the image format (png, svg, pdf).
func WithFormat(format string) Option {
	return func(s *Sink) {
		s.Format = strings.TrimPrefix(strings.ToLower(format), ".")
	}
}

// WithDPMM sets the raster resolution in dots per millimetre.
func WithDPMM(dpmm float64) Option {
	return func(s *Sink) {
		s.DPMM = dpmm
	}
}

// WithLauncher opens written artifacts with the registered player and viewer.
func WithLauncher(l Launcher) Option {
	return func(s *Sink) {
		s.Launcher = l
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Sink) {
		s.Logger = logger
	}
}

// New creates a Sink writing under basePath.
// If basePath is empty, it defaults to DefaultBasePath.
func New(basePath string, opts ...Option) *Sink {
	if basePath == "" {
		basePath = DefaultBasePath
	}
	s := &Sink{
		BasePath: basePath,
		RunID:    uuid.NewString(),
		Format:   "png",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Logger == nil {
		s.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Play writes the score as a MIDI file and hands it to the player, if any.
func (s *Sink) Play(ctx context.Context, score *music.Score) (string, error) {
	path, err := s.writeAtomic(s.RunID+".mid", score.WriteMIDIFile)
	if err != nil {
		return "", err
	}
	s.Logger.Info("Score written", "path", path, "notes", len(score.Notes))
	return path, s.launch(ctx, process.Player, path)
}

// Show writes the artwork as an image and hands it to the viewer, if any.
func (s *Sink) Show(ctx context.Context, artwork *art.Artwork) (string, error) {
	path, err := s.writeAtomic(s.RunID+"."+s.Format, func(tmp string) error {
		return art.WriteFile(tmp, artwork, s.DPMM)
	})
	if err != nil {
		return "", err
	}
	s.Logger.Info("Artwork written", "path", path, "shapes", len(artwork.Shapes))
	return path, s.launch(ctx, process.Viewer, path)
}

func (s *Sink) launch(ctx context.Context, name, path string) error {
	if s.Launcher == nil || !s.Launcher.Has(name) {
		return nil
	}
	s.Logger.Debug("Launching", "process", name, "path", path)
	if _, err := s.Launcher.Launch(ctx, name, path); err != nil {
		return fmt.Errorf("failed to launch %s: %w", name, err)
	}
	return nil
}

// writeAtomic writes name under BasePath through a temporary file in the
// same directory, then renames it into place. The temporary file keeps the
// extension because renderers pick the format from it.
func (s *Sink) writeAtomic(name string, write func(path string) error) (string, error) {
	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return "", fmt.Errorf("failed to ensure output directory: %w", err)
	}

	destPath := filepath.Join(s.BasePath, name)
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-*-"+name)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	_ = tmpFile.Close()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if err := write(tmpPath); err != nil {
		return "", err
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return "", fmt.Errorf("failed to rename temp file: %w", err)
	}
	return destPath, nil
}
