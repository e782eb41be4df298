package letters

import "errors"

var (
	// ErrOffsetOutOfRange is reported when a decoded offset does not fit the
	// alphabet of its category. The only way to hit it through Convert is
	// re-encoding a styled Greek variant symbol past the 26-slot alphabet
	// (see tables.go), everything else guards against fabricated offsets.
	ErrOffsetOutOfRange = errors.New("offset exceeds alphabet length")

	// ErrUnsupportedCombination is reported when the requested style family
	// and emphasis have no Unicode allocation for the character's category,
	// e.g. digits have no script form.
	ErrUnsupportedCombination = errors.New("no mapping for requested style family and emphasis")

	// ErrInvalidCodePoint indicates that table arithmetic produced something
	// that is not a valid Unicode scalar value. It cannot happen with the
	// tables as populated and always means a table data defect.
	ErrInvalidCodePoint = errors.New("computed code point is not a valid rune")
)
