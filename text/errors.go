package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidFontData is returned when font data cannot be parsed.
	ErrInvalidFontData = errors.New("text: invalid font data")
)
