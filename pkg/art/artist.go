package art

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sumanthreddy2024/artgen/internal/random"
	"github.com/sumanthreddy2024/artgen/pkg/domain"
)

// Artwork is the result of one render pass.
// len(Shapes)+Skipped always equals Iterations.
type Artwork struct {
	Size       domain.Size    `json:"size"`
	Shapes     []domain.Shape `json:"shapes"`
	Iterations int            `json:"iterations"`
	Skipped    int            `json:"skipped"`
}

// Counts returns the number of drawn primitives per category.
func (a *Artwork) Counts() map[domain.Category]int {
	counts := make(map[domain.Category]int, len(domain.Categories()))
	for _, s := range a.Shapes {
		counts[s.Category]++
	}
	return counts
}

// Artist samples artworks from a random source.
type Artist struct {
	src    random.Source
	logger *slog.Logger
	hooks  domain.Hooks
}

// Option configures an Artist.
type Option func(*Artist)

// WithRand sets the random source. Tests pass a seeded source.
func WithRand(src random.Source) Option {
	return func(a *Artist) {
		a.src = src
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Artist) {
		a.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(a *Artist) {
		a.hooks = hooks
	}
}

// NewArtist creates an Artist. Without WithRand it uses an unseeded source.
func NewArtist(opts ...Option) *Artist {
	a := &Artist{}
	for _, opt := range opts {
		opt(a)
	}
	if a.src == nil {
		a.src = random.New(0)
	}
	if a.logger == nil {
		a.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return a
}

// Create runs req.Count iterations. Each picks a category uniformly from
// req.Categories and draws the matching primitive. Unrecognised categories
// are skipped without error.
func (a *Artist) Create(ctx context.Context, req domain.Request) (*Artwork, error) {
	if len(req.Categories) == 0 && req.Count > 0 {
		return nil, domain.ErrNoCategories
	}

	artwork := &Artwork{
		Size:   req.Size,
		Shapes: make([]domain.Shape, 0, max(req.Count, 0)),
	}

	for i := 0; i < req.Count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("render interrupted at iteration %d: %w", i, err)
		}

		category := random.Choice(a.src, req.Categories)
		artwork.Iterations++

		shape, ok := Sample(a.src, category)
		if !ok {
			artwork.Skipped++
			a.logger.Debug("Skipping unknown category", "category", category, "iteration", i)
			if a.hooks.OnShapeSkipped != nil {
				a.hooks.OnShapeSkipped(ctx, &domain.ShapeEvent{Iteration: i, Category: category})
			}
			continue
		}

		artwork.Shapes = append(artwork.Shapes, shape)
		a.logger.Debug("Drew shape", "category", category, "iteration", i)
		if a.hooks.OnShapeDrawn != nil {
			a.hooks.OnShapeDrawn(ctx, &domain.ShapeEvent{Iteration: i, Category: category, Shape: &shape})
		}
	}

	return artwork, nil
}
