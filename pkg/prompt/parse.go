package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sumanthreddy2024/artgen/pkg/domain"
)

// ParseCount parses a non-negative shape count.
func ParseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrInvalidCount, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d is negative", domain.ErrInvalidCount, n)
	}
	return n, nil
}

// ParseCategories splits a comma-separated list and trims each label.
// Empty entries are dropped; unknown labels are kept.
func ParseCategories(s string) ([]domain.Category, error) {
	var out []domain.Category
	for _, part := range strings.Split(s, ",") {
		if c := domain.ParseCategory(part); c != "" {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, domain.ErrNoCategories
	}
	return out, nil
}

// ParseSize parses "W,H" into a canvas size of two positive integers.
func ParseSize(s string) (domain.Size, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return domain.Size{}, fmt.Errorf("%w: want WIDTH,HEIGHT, got %q", domain.ErrInvalidSize, s)
	}

	var dims [2]int
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return domain.Size{}, fmt.Errorf("%w: %w", domain.ErrInvalidSize, err)
		}
		if v <= 0 {
			return domain.Size{}, fmt.Errorf("%w: %d must be positive", domain.ErrInvalidSize, v)
		}
		dims[i] = v
	}
	return domain.Size{Width: dims[0], Height: dims[1]}, nil
}
