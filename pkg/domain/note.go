package domain

// Note is a pitch with a fixed duration, expressed in quarter-note beats.
type Note struct {
	Pitch string  `json:"pitch"`
	Key   uint8   `json:"key"`
	Beats float64 `json:"beats"`
}

// MIDI key numbers for the pitches used by the note mapping.
const (
	KeyC4 uint8 = 60
	KeyE4 uint8 = 64
	KeyG4 uint8 = 67
)

// NoteFor returns the note assigned to a category.
// line -> C4, circle -> E4, rectangle -> G4; every note lasts one beat.
func NoteFor(c Category) (Note, bool) {
	switch c {
	case Line:
		return Note{Pitch: "C4", Key: KeyC4, Beats: 1}, true
	case Circle:
		return Note{Pitch: "E4", Key: KeyE4, Beats: 1}, true
	case Rectangle:
		return Note{Pitch: "G4", Key: KeyG4, Beats: 1}, true
	}
	return Note{}, false
}
