package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner with a warm gradient.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{"    _         _                   ", "#f59e0b"},
		{"   / \\   _ __| |_ __ _  ___ _ __  ", "#f97316"},
		{"  / _ \\ | '__| __/ _` |/ _ \\ '_ \\ ", "#ef4444"},
		{" / ___ \\| |  | || (_| |  __/ | | |", "#ec4899"},
		{"/_/   \\_\\_|   \\__\\__, |\\___|_| |_|", "#d946ef"},
		{"                 |___/            ", "#a855f7"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, termenv.String(l.text).Foreground(p.Color(l.color)))
	}
	if v := strings.TrimSpace(version); v != "" {
		fmt.Fprintln(w, termenv.String("  shapes & notes "+v).Faint())
	}
	fmt.Fprintln(w)
}
