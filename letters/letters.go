package letters

import (
	"stc/common"
)

// Convert re-styles a single character. Classifiable input is re-encoded in
// the requested family and emphasis; anything the classifier does not know
// is returned unchanged with no error, so arbitrary text can be fed through
// character by character.
func Convert(ch rune, family common.StyleFamily, emp common.Emphasis) (rune, error) {
	dc, ok := Classify(ch)
	if !ok {
		return ch, nil
	}
	return Encode(dc, family, emp)
}
