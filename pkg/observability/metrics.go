package observability

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sumanthreddy2024/artgen/pkg/domain"
)

// Metrics holds the counters of a single run on a private registry.
type Metrics struct {
	registry      *prometheus.Registry
	ShapesDrawn   *prometheus.CounterVec
	ShapesSkipped *prometheus.CounterVec
	NotesComposed *prometheus.CounterVec
}

// NewMetrics creates and registers the run counters.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ShapesDrawn: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "artgen_shapes_drawn_total",
				Help: "Total number of primitives drawn",
			},
			[]string{"category"},
		),
		ShapesSkipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "artgen_shapes_skipped_total",
				Help: "Render iterations skipped because the category was not recognised",
			},
			[]string{"category"},
		),
		NotesComposed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "artgen_notes_composed_total",
				Help: "Total number of notes composed",
			},
			[]string{"pitch"},
		),
	}
	m.registry.MustRegister(m.ShapesDrawn, m.ShapesSkipped, m.NotesComposed)
	return m
}

// Gatherer returns the registry backing the counters.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Hooks returns callbacks that record every drawn, skipped and composed item.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnShapeDrawn: func(ctx context.Context, e *domain.ShapeEvent) {
			m.ShapesDrawn.WithLabelValues(string(e.Category)).Inc()
		},
		OnShapeSkipped: func(ctx context.Context, e *domain.ShapeEvent) {
			m.ShapesSkipped.WithLabelValues(string(e.Category)).Inc()
		},
		OnNoteComposed: func(ctx context.Context, e *domain.NoteEvent) {
			m.NotesComposed.WithLabelValues(e.Note.Pitch).Inc()
		},
	}
}

// WriteTextfile exports the counters in the Prometheus text format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
