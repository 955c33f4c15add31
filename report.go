package artgen

import (
	"fmt"
	"strings"

	"github.com/sumanthreddy2024/artgen/pkg/domain"
)

// Markdown summarizes the run for terminal rendering.
func (r *Result) Markdown() string {
	var sb strings.Builder
	sb.WriteString("# Masterpiece\n\n")
	fmt.Fprintf(&sb, "Requested **%d** shapes from `%s` on a %s canvas.\n\n",
		r.Request.Count, joinCategories(r.Request.Categories), r.Request.Size)

	if r.Score != nil {
		sb.WriteString("## Music\n\n")
		if len(r.Score.Notes) == 0 {
			sb.WriteString("No notes composed.\n\n")
		} else {
			fmt.Fprintf(&sb, "%d notes at %.0f bpm: %s\n\n", len(r.Score.Notes), r.Score.Tempo, strings.Join(r.Score.Pitches(), " "))
		}
		if r.ScorePath != "" {
			fmt.Fprintf(&sb, "Saved to `%s`.\n\n", r.ScorePath)
		}
	}

	if r.Artwork != nil {
		sb.WriteString("## Art\n\n")
		counts := r.Artwork.Counts()
		sb.WriteString("| Category | Drawn |\n|---|---|\n")
		for _, c := range domain.Categories() {
			fmt.Fprintf(&sb, "| %s | %d |\n", c, counts[c])
		}
		sb.WriteString("\n")
		if r.Artwork.Skipped > 0 {
			fmt.Fprintf(&sb, "%d of %d iterations skipped an unknown category.\n\n", r.Artwork.Skipped, r.Artwork.Iterations)
		}
		if r.ArtworkPath != "" {
			fmt.Fprintf(&sb, "Saved to `%s`.\n", r.ArtworkPath)
		}
	}
	return sb.String()
}

func joinCategories(cs []domain.Category) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}
