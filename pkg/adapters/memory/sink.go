package memory

import (
	"context"
	"sync"

	"github.com/sumanthreddy2024/artgen/pkg/art"
	"github.com/sumanthreddy2024/artgen/pkg/music"
)

// Sink implements ports.Playback and ports.Display in memory.
// Safe for concurrent use.
type Sink struct {
	scores   []*music.Score
	artworks []*art.Artwork
	mu       sync.RWMutex
}

// NewSink creates a new in-memory sink.
func NewSink() *Sink {
	return &Sink{}
}

// Play records a copy of the score.
func (s *Sink) Play(ctx context.Context, score *music.Score) (string, error) {
	copied := *score
	copied.Notes = append(copied.Notes[:0:0], score.Notes...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores = append(s.scores, &copied)
	return "", nil
}

// Show records a copy of the artwork.
func (s *Sink) Show(ctx context.Context, artwork *art.Artwork) (string, error) {
	copied := *artwork
	copied.Shapes = append(copied.Shapes[:0:0], artwork.Shapes...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.artworks = append(s.artworks, &copied)
	return "", nil
}

// Scores returns the recorded scores in arrival order.
func (s *Sink) Scores() []*music.Score {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*music.Score(nil), s.scores...)
}

// Artworks returns the recorded artworks in arrival order.
func (s *Sink) Artworks() []*art.Artwork {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*art.Artwork(nil), s.artworks...)
}
