package domain

import "fmt"

// Size is the canvas size in inches, mirroring a plot figure size.
type Size struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Request holds the answers collected from the user for a single run.
type Request struct {
	Count      int        `json:"count"`
	Categories []Category `json:"categories"`
	Size       Size       `json:"size"`
}

// Validate checks the structural constraints of a request.
// Unknown category labels are accepted here.
func (r Request) Validate() error {
	if r.Count < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, r.Count)
	}
	if len(r.Categories) == 0 {
		return ErrNoCategories
	}
	if r.Size.Width <= 0 || r.Size.Height <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSize, r.Size)
	}
	return nil
}
