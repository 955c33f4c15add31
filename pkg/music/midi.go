package music

import (
	"fmt"
	"io"
	"math"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	// TicksPerQuarter is the SMF time resolution.
	TicksPerQuarter = 96

	channel  uint8 = 0
	velocity uint8 = 100
)

// Track builds a single SMF track: a tempo meta event followed by one
// note-on/note-off pair per note.
func (s *Score) Track() smf.Track {
	clock := smf.MetricTicks(TicksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTrackSequenceName("artgen"))
	tr.Add(0, smf.MetaTempo(s.tempo()))

	for _, n := range s.Notes {
		ticks := uint32(math.Round(n.Beats * float64(clock.Ticks4th())))
		tr.Add(0, midi.NoteOn(channel, n.Key, velocity))
		tr.Add(ticks, midi.NoteOff(channel, n.Key))
	}
	tr.Close(0)
	return tr
}

func (s *Score) tempo() float64 {
	if s.Tempo > 0 {
		return s.Tempo
	}
	return DefaultTempo
}

// WriteMIDI encodes the score as a single-track Standard MIDI File.
func (s *Score) WriteMIDI(w io.Writer) error {
	file := smf.New()
	file.TimeFormat = smf.MetricTicks(TicksPerQuarter)
	if err := file.Add(s.Track()); err != nil {
		return fmt.Errorf("failed to add track: %w", err)
	}
	if _, err := file.WriteTo(w); err != nil {
		return fmt.Errorf("failed to encode midi: %w", err)
	}
	return nil
}

// WriteMIDIFile writes the score to path.
func (s *Score) WriteMIDIFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := s.WriteMIDI(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
