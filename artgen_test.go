package artgen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumanthreddy2024/artgen/pkg/adapters/memory"
	"github.com/sumanthreddy2024/artgen/pkg/art"
	"github.com/sumanthreddy2024/artgen/pkg/domain"
	"github.com/sumanthreddy2024/artgen/pkg/music"
)

func scenario(count int, categories ...domain.Category) domain.Request {
	return domain.Request{Count: count, Categories: categories, Size: domain.Size{Width: 4, Height: 4}}
}

func TestGenerator_Run_Scenario(t *testing.T) {
	sink := memory.NewSink()
	gen := New(WithSeed(2024), WithPlayback(sink), WithDisplay(sink))

	res, err := gen.Run(context.Background(), scenario(3, domain.Line, domain.Circle, domain.Rectangle))
	require.NoError(t, err)

	require.Len(t, res.Score.Notes, 3)
	for _, p := range res.Score.Pitches() {
		assert.Contains(t, []string{"C4", "E4", "G4"}, p)
	}
	assert.Equal(t, 3, res.Artwork.Iterations)
	assert.LessOrEqual(t, len(res.Artwork.Shapes), 3)
	assert.Equal(t, domain.Size{Width: 4, Height: 4}, res.Artwork.Size)

	require.Len(t, sink.Scores(), 1)
	require.Len(t, sink.Artworks(), 1)
}

func TestGenerator_Run_Reproducible(t *testing.T) {
	req := scenario(20, domain.Categories()...)

	a, err := New(WithSeed(99)).Run(context.Background(), req)
	require.NoError(t, err)
	b, err := New(WithSeed(99)).Run(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, a.Score.Pitches(), b.Score.Pitches())
	assert.Equal(t, a.Artwork.Shapes, b.Artwork.Shapes)
}

func TestGenerator_Run_ZeroCount(t *testing.T) {
	sink := memory.NewSink()
	res, err := New(WithPlayback(sink), WithDisplay(sink)).Run(context.Background(), scenario(0, domain.Line))
	require.NoError(t, err)

	assert.Empty(t, res.Score.Notes)
	assert.Empty(t, res.Artwork.Shapes)
	require.Len(t, sink.Artworks(), 1, "the empty canvas is still displayed")
}

func TestGenerator_Run_UnknownCategory(t *testing.T) {
	sink := memory.NewSink()
	res, err := New(WithPlayback(sink), WithDisplay(sink)).Run(context.Background(), scenario(3, "triangle"))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownCategory)
	assert.Nil(t, res.Artwork, "the art pass does not run after the music pass fails")
	assert.Empty(t, sink.Scores())
	assert.Empty(t, sink.Artworks())
}

func TestGenerator_Run_InvalidRequest(t *testing.T) {
	_, err := New().Run(context.Background(), scenario(-1, domain.Line))
	assert.ErrorIs(t, err, domain.ErrInvalidCount)
}

func TestGenerator_Hooks(t *testing.T) {
	var notes, shapes int
	hooks := domain.Hooks{
		OnNoteComposed: func(context.Context, *domain.NoteEvent) { notes++ },
		OnShapeDrawn:   func(context.Context, *domain.ShapeEvent) { shapes++ },
	}

	_, err := New(WithHooks(hooks)).Run(context.Background(), scenario(5, domain.Rectangle))
	require.NoError(t, err)
	assert.Equal(t, 5, notes)
	assert.Equal(t, 5, shapes)
}

type failingDisplay struct{}

func (failingDisplay) Show(context.Context, *art.Artwork) (string, error) {
	return "", errors.New("no display")
}

func TestGenerator_Run_DisplayFailure(t *testing.T) {
	res, err := New(WithDisplay(failingDisplay{})).Run(context.Background(), scenario(2, domain.Circle))
	require.Error(t, err)
	assert.ErrorContains(t, err, "no display")
	assert.Len(t, res.Score.Notes, 2)
}

func TestResult_Markdown(t *testing.T) {
	c4, _ := domain.NoteFor(domain.Line)
	res := &Result{
		Request:     scenario(2, domain.Line, "triangle"),
		Score:       &music.Score{Notes: []domain.Note{c4, c4}, Tempo: 120},
		Artwork:     &art.Artwork{Shapes: []domain.Shape{{Category: domain.Line}}, Iterations: 2, Skipped: 1},
		ScorePath:   "out/run.mid",
		ArtworkPath: "out/run.png",
	}

	md := res.Markdown()
	assert.Contains(t, md, "`line,triangle`")
	assert.Contains(t, md, "2 notes at 120 bpm: C4 C4")
	assert.Contains(t, md, "| line | 1 |")
	assert.Contains(t, md, "| circle | 0 |")
	assert.Contains(t, md, "1 of 2 iterations skipped")
	assert.Contains(t, md, "`out/run.png`")
}
