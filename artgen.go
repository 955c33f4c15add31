package artgen

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sumanthreddy2024/artgen/internal/logging"
	"github.com/sumanthreddy2024/artgen/internal/random"
	"github.com/sumanthreddy2024/artgen/pkg/adapters/memory"
	"github.com/sumanthreddy2024/artgen/pkg/art"
	"github.com/sumanthreddy2024/artgen/pkg/domain"
	"github.com/sumanthreddy2024/artgen/pkg/music"
	"github.com/sumanthreddy2024/artgen/pkg/ports"
)

// Generator is the high-level entry point of the library.
// It runs the music pass and then the art pass, handing each result to its sink.
type Generator struct {
	src      random.Source
	seed     uint64
	tempo    float64
	logger   *slog.Logger
	hooks    domain.Hooks
	playback ports.Playback
	display  ports.Display
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithSeed makes both passes reproducible. Zero keeps them unseeded.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// WithRand injects the random source directly, overriding WithSeed.
func WithRand(src random.Source) Option {
	return func(g *Generator) {
		g.src = src
	}
}

// WithTempo sets the tempo of the composed score.
func WithTempo(bpm float64) Option {
	return func(g *Generator) {
		g.tempo = bpm
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithHooks registers observability hooks for both passes.
func WithHooks(hooks domain.Hooks) Option {
	return func(g *Generator) {
		g.hooks = hooks
	}
}

// WithPlayback sets the sink receiving the score.
func WithPlayback(p ports.Playback) Option {
	return func(g *Generator) {
		g.playback = p
	}
}

// WithDisplay sets the sink receiving the artwork.
func WithDisplay(d ports.Display) Option {
	return func(g *Generator) {
		g.display = d
	}
}

// New initializes a Generator. Without sinks, results are kept in memory.
func New(opts ...Option) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.src == nil {
		g.src = random.New(g.seed)
	}
	if g.logger == nil {
		g.logger = logging.NewNop()
	}
	if g.playback == nil || g.display == nil {
		sink := memory.NewSink()
		if g.playback == nil {
			g.playback = sink
		}
		if g.display == nil {
			g.display = sink
		}
	}
	return g
}

// Result gathers the outputs of one run.
type Result struct {
	Request     domain.Request
	Score       *music.Score
	Artwork     *art.Artwork
	ScorePath   string
	ArtworkPath string
}

// Run validates req, composes and plays the score, then creates and shows
// the artwork. The two passes draw categories independently.
//
// An unrecognised category fails the music pass with domain.ErrUnknownCategory
// as soon as it is drawn, so the art pass never runs. The art pass on its own
// skips such categories.
func (g *Generator) Run(ctx context.Context, req domain.Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	res := &Result{Request: req}

	score, path, err := g.Compose(ctx, req)
	if err != nil {
		return res, err
	}
	res.Score, res.ScorePath = score, path

	artwork, path, err := g.Paint(ctx, req)
	if err != nil {
		return res, err
	}
	res.Artwork, res.ArtworkPath = artwork, path

	return res, nil
}

// Compose runs the music pass and hands the score to the playback sink.
func (g *Generator) Compose(ctx context.Context, req domain.Request) (*music.Score, string, error) {
	g.logger.Info("Composing harmonious music", "count", req.Count)

	composer := music.NewComposer(
		music.WithRand(g.src),
		music.WithLogger(g.logger),
		music.WithHooks(g.hooks),
		music.WithTempo(g.tempo),
	)
	score, err := composer.Compose(ctx, req.Count, req.Categories)
	if err != nil {
		return nil, "", fmt.Errorf("music pass failed: %w", err)
	}

	path, err := g.playback.Play(ctx, score)
	if err != nil {
		return score, "", fmt.Errorf("playback failed: %w", err)
	}
	return score, path, nil
}

// Paint runs the art pass and hands the artwork to the display sink.
func (g *Generator) Paint(ctx context.Context, req domain.Request) (*art.Artwork, string, error) {
	g.logger.Info("Creating visual masterpiece", "count", req.Count, "size", req.Size.String())

	artist := art.NewArtist(
		art.WithRand(g.src),
		art.WithLogger(g.logger),
		art.WithHooks(g.hooks),
	)
	artwork, err := artist.Create(ctx, req)
	if err != nil {
		return nil, "", fmt.Errorf("art pass failed: %w", err)
	}
	if artwork.Skipped > 0 {
		g.logger.Warn("Skipped unknown categories", "skipped", artwork.Skipped, "drawn", len(artwork.Shapes))
	}

	path, err := g.display.Show(ctx, artwork)
	if err != nil {
		return artwork, "", fmt.Errorf("display failed: %w", err)
	}
	return artwork, path, nil
}
