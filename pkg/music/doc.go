// Package music turns shape categories into a note sequence and encodes it
// as a Standard MIDI File.
package music
