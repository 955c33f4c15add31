package domain

import "strings"

// Category is the shape-type label driving both rendering and note selection.
type Category string

const (
	Line      Category = "line"
	Circle    Category = "circle"
	Rectangle Category = "rectangle"
)

// Categories returns the recognised categories in prompt order.
func Categories() []Category {
	return []Category{Line, Circle, Rectangle}
}

// Valid reports whether the category maps to a primitive and a pitch.
func (c Category) Valid() bool {
	switch c {
	case Line, Circle, Rectangle:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory trims the label. It does not validate it: unknown labels are
// carried through so each pass can decide how to treat them.
func ParseCategory(s string) Category {
	return Category(strings.TrimSpace(s))
}
