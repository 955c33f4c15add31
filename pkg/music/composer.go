package music

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/sumanthreddy2024/artgen/internal/random"
	"github.com/sumanthreddy2024/artgen/pkg/domain"
)

// DefaultTempo is the playback tempo in quarter notes per minute.
const DefaultTempo = 120.0

// Score is an ordered note sequence with its playback tempo.
type Score struct {
	Notes []domain.Note `json:"notes"`
	Tempo float64       `json:"tempo"`
}

// Pitches returns the pitch names of the score in order.
func (s *Score) Pitches() []string {
	out := make([]string, len(s.Notes))
	for i, n := range s.Notes {
		out[i] = n.Pitch
	}
	return out
}

// Composer builds scores from randomly sampled categories.
type Composer struct {
	src    random.Source
	logger *slog.Logger
	hooks  domain.Hooks
	tempo  float64
}

// Option configures a Composer.
type Option func(*Composer)

// WithRand sets the random source.
func WithRand(src random.Source) Option {
	return func(c *Composer) {
		c.src = src
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Composer) {
		c.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(c *Composer) {
		c.hooks = hooks
	}
}

// WithTempo sets the tempo written to the score. Non-positive values are ignored.
func WithTempo(bpm float64) Option {
	return func(c *Composer) {
		if bpm > 0 {
			c.tempo = bpm
		}
	}
}

// NewComposer creates a Composer. Without WithRand it uses an unseeded source.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{tempo: DefaultTempo}
	for _, opt := range opts {
		opt(c)
	}
	if c.src == nil {
		c.src = random.New(0)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c
}

// NoteFor returns the note mapped to a category, or ErrUnknownCategory.
func NoteFor(c domain.Category) (domain.Note, error) {
	note, ok := domain.NoteFor(c)
	if !ok {
		return domain.Note{}, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, c)
	}
	return note, nil
}

// Compose runs count iterations, each picking a category uniformly from
// categories and appending its note. Drawing an unrecognised category aborts
// the score with ErrUnknownCategory.
func (c *Composer) Compose(ctx context.Context, count int, categories []domain.Category) (*Score, error) {
	if len(categories) == 0 && count > 0 {
		return nil, domain.ErrNoCategories
	}

	score := &Score{
		Notes: make([]domain.Note, 0, max(count, 0)),
		Tempo: c.tempo,
	}

	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("composition interrupted at iteration %d: %w", i, err)
		}

		category := random.Choice(c.src, categories)
		note, err := NoteFor(category)
		if err != nil {
			return nil, fmt.Errorf("compose note %d: %w", i, err)
		}

		score.Notes = append(score.Notes, note)
		c.logger.Debug("Composed note", "pitch", note.Pitch, "category", category, "iteration", i)
		if c.hooks.OnNoteComposed != nil {
			c.hooks.OnNoteComposed(ctx, &domain.NoteEvent{Iteration: i, Category: category, Note: note})
		}
	}

	return score, nil
}
