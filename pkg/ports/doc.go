/*
Package ports defines the driven ports (interfaces) for the generator.

These interfaces decouple the art and music passes from where their results
end up, so the same pipeline can write files, launch external programs or
keep everything in memory for tests.

# Key Interfaces

  - Playback: receives a composed score (the playback sink).
  - Display: receives a finished artwork (the on-screen plot replacement).
*/
package ports
