package domain

import "errors"

// ErrUnknownCategory is returned when a category label has no primitive or pitch.
var ErrUnknownCategory = errors.New("unknown shape category")

// ErrInvalidCount is returned when the requested shape count is not a non-negative integer.
var ErrInvalidCount = errors.New("invalid shape count")

// ErrNoCategories is returned when the category list is empty after trimming.
var ErrNoCategories = errors.New("no shape categories given")

// ErrInvalidSize is returned when the canvas size is not a pair of positive integers.
var ErrInvalidSize = errors.New("invalid art size")
