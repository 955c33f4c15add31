package observability

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sumanthreddy2024/artgen/pkg/domain"
)

func TestMetrics_Hooks(t *testing.T) {
	ctx := context.Background()
	m := NewMetrics()
	hooks := m.Hooks()

	hooks.OnShapeDrawn(ctx, &domain.ShapeEvent{Category: domain.Circle})
	hooks.OnShapeDrawn(ctx, &domain.ShapeEvent{Category: domain.Circle})
	hooks.OnShapeSkipped(ctx, &domain.ShapeEvent{Category: "triangle"})
	hooks.OnNoteComposed(ctx, &domain.NoteEvent{Note: domain.Note{Pitch: "E4"}})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ShapesDrawn.WithLabelValues("circle")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ShapesSkipped.WithLabelValues("triangle")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotesComposed.WithLabelValues("E4")))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics()
	m.Hooks().OnNoteComposed(context.Background(), &domain.NoteEvent{Note: domain.Note{Pitch: "G4"}})

	path := filepath.Join(t.TempDir(), "artgen.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `artgen_notes_composed_total{pitch="G4"} 1`)
}
