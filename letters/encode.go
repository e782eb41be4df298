package letters

import (
	"fmt"
	"unicode/utf8"

	"stc/common"
)

// Encode renders a decoded character identity in the requested style family
// and emphasis. Corner-case overrides always win over base+offset
// arithmetic.
func Encode(dc DecodedChar, family common.StyleFamily, emp common.Emphasis) (rune, error) {
	t := tableFor(family, dc.Category)
	if t == nil {
		return 0, fmt.Errorf("%s has no %s table: %w", family, dc.Category, ErrUnsupportedCombination)
	}
	if dc.Offset < 0 || dc.Offset >= t.length {
		return 0, fmt.Errorf("offset %d not in %s alphabet of %d: %w", dc.Offset, dc.Category, t.length, ErrOffsetOutOfRange)
	}
	if ch, ok := overrideLookup(family, dc.Category, emp, dc.Uppercase, dc.Offset); ok {
		return ch, nil
	}
	base, ok := slotFor(family, dc.Category, emp)
	if !ok {
		return 0, fmt.Errorf("%s %s has no %s form: %w", emp, family, dc.Category, ErrUnsupportedCombination)
	}
	start := base.lower
	if dc.Uppercase {
		start = base.upper
	}
	ch := start + rune(dc.Offset)
	if !utf8.ValidRune(ch) {
		// table data defect, not reachable with the tables as populated
		return 0, fmt.Errorf("%s %s %s offset %d yields %#x: %w", emp, family, dc.Category, dc.Offset, ch, ErrInvalidCodePoint)
	}
	return ch, nil
}
