// Package art draws random primitives on a unit-square canvas.
//
// An Artist turns a domain.Request into an Artwork by sampling a category and
// a primitive for every iteration. Paint and WriteFile render the Artwork with
// github.com/tdewolff/canvas.
package art
