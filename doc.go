/*
Package artgen draws random geometric shapes and composes a parallel
sequence of notes keyed to the shape categories.

A run takes three answers: how many shapes, which categories
("line", "circle", "rectangle") and the canvas size in inches. The music pass
and the art pass each sample categories independently from that list. Every
sampled category yields one note (line→C4, circle→E4, rectangle→G4) and one
primitive with random geometry and color.

# Architecture

  - pkg/domain: categories, shapes, notes and the observability hooks.
  - pkg/music: the Composer and the MIDI encoder.
  - pkg/art: the Artist and the canvas painter.
  - pkg/ports: the Playback and Display sinks; pkg/adapters implements them.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/sumanthreddy2024/artgen"
		"github.com/sumanthreddy2024/artgen/pkg/adapters/file"
		"github.com/sumanthreddy2024/artgen/pkg/domain"
	)

	func main() {
		sink := file.New("out", file.WithFormat("svg"))
		gen := artgen.New(
			artgen.WithSeed(42),
			artgen.WithPlayback(sink),
			artgen.WithDisplay(sink),
		)

		res, err := gen.Run(context.Background(), domain.Request{
			Count:      12,
			Categories: domain.Categories(),
			Size:       domain.Size{Width: 8, Height: 8},
		})
		if err != nil {
			log.Fatal(err)
		}
		log.Println(res.ScorePath, res.ArtworkPath)
	}
*/
package artgen
