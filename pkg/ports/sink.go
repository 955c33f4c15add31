package ports

import (
	"context"

	"github.com/sumanthreddy2024/artgen/pkg/art"
	"github.com/sumanthreddy2024/artgen/pkg/music"
)

// Playback hands a score to something that can make it audible.
type Playback interface {
	// Play returns a location describing where the score went
	// (a file path, or an empty string for in-memory sinks).
	Play(ctx context.Context, score *music.Score) (string, error)
}

// Display presents a finished artwork.
type Display interface {
	// Show returns a location describing where the artwork went.
	Show(ctx context.Context, artwork *art.Artwork) (string, error)
}
