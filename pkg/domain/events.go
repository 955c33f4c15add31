package domain

import "context"

// ShapeEvent is emitted for every render iteration.
type ShapeEvent struct {
	Iteration int
	Category  Category
	Shape     *Shape // nil when the category was skipped
}

// NoteEvent is emitted for every composed note.
type NoteEvent struct {
	Iteration int
	Category  Category
	Note      Note
}

// Hooks defines callbacks for observing both passes.
type Hooks struct {
	OnShapeDrawn   func(context.Context, *ShapeEvent)
	OnShapeSkipped func(context.Context, *ShapeEvent)
	OnNoteComposed func(context.Context, *NoteEvent)
}

// Merge returns hooks that call h first and then other.
func (h Hooks) Merge(other Hooks) Hooks {
	return Hooks{
		OnShapeDrawn:   chain(h.OnShapeDrawn, other.OnShapeDrawn),
		OnShapeSkipped: chain(h.OnShapeSkipped, other.OnShapeSkipped),
		OnNoteComposed: chain(h.OnNoteComposed, other.OnNoteComposed),
	}
}

func chain[E any](a, b func(context.Context, *E)) func(context.Context, *E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e *E) {
		a(ctx, e)
		b(ctx, e)
	}
}
