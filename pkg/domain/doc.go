/*
Package domain contains the core models shared by the art and music passes.

It defines the shape categories that drive both passes, the primitives drawn
on the canvas and the notes handed to a playback sink. This package is kept
free of I/O, rendering and encoding concerns.

# Key Entities

  - Category: the label ("line", "circle", "rectangle") selecting a primitive and a pitch.
  - Request: the three answers collected from the user (count, categories, canvas size).
  - Shape: one drawn primitive with its random geometry and color.
  - Note: a fixed-duration pitch produced for one sampled category.
*/
package domain
