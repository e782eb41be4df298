package letters

import (
	"stc/common"
)

// basePair holds the first code points of a contiguous uppercase/lowercase
// run in the Mathematical Alphanumeric Symbols block. Caseless categories
// (digits) carry the same value twice.
type basePair struct {
	upper, lower rune
}

// slotTable describes every emphasis slot of one (family, category) pair. A
// nil slot means Unicode never allocated that combination - monospace
// letters exist only in normal weight, double-struck letters only in bold.
type slotTable struct {
	length int
	bases  [4]*basePair // indexed by common.Emphasis
}

func pair(upper, lower rune) *basePair { return &basePair{upper: upper, lower: lower} }

// registry indexes slot tables by style family and category. A nil table
// means the family has no allocation for the category at all: digits have no
// script or fraktur forms and Greek exists only in serif and sans-serif.
//
// NOTE: Greek occupies 26 slots even though the classical alphabet has 24
// letters. Styled uppercase Greek runs are true 26-slot blocks - the theta
// variant fills the reserved U+03A2 hole at offset 17 and nabla sits at
// offset 25 - while the plain U+0391 block needs corner-case overrides for
// exactly those two slots. Styled lowercase runs actually continue past
// omega with seven variant symbols (offsets 25..31); only the partial
// differential at 25 is reachable through the 26-slot length check, matching
// the block's published layout for the plain Greek range.
var registry = [...][3]*slotTable{
	common.StyleFamilySerif: {
		common.CategoryLetter: {length: 26, bases: [4]*basePair{
			common.EmphasisNormal:     pair(0x0041, 0x0061),
			common.EmphasisBold:       pair(0x1D400, 0x1D41A),
			common.EmphasisItalic:     pair(0x1D434, 0x1D44E),
			common.EmphasisBoldItalic: pair(0x1D468, 0x1D482),
		}},
		common.CategoryDigit: {length: 10, bases: [4]*basePair{
			common.EmphasisNormal: pair(0x0030, 0x0030),
			common.EmphasisBold:   pair(0x1D7CE, 0x1D7CE),
		}},
		common.CategoryGreek: {length: 26, bases: [4]*basePair{
			common.EmphasisNormal:     pair(0x0391, 0x03B1),
			common.EmphasisBold:       pair(0x1D6A8, 0x1D6C2),
			common.EmphasisItalic:     pair(0x1D6E2, 0x1D6FC),
			common.EmphasisBoldItalic: pair(0x1D71C, 0x1D736),
		}},
	},
	common.StyleFamilySansSerif: {
		common.CategoryLetter: {length: 26, bases: [4]*basePair{
			common.EmphasisNormal:     pair(0x1D5A0, 0x1D5BA),
			common.EmphasisBold:       pair(0x1D5D4, 0x1D5EE),
			common.EmphasisItalic:     pair(0x1D608, 0x1D622),
			common.EmphasisBoldItalic: pair(0x1D63C, 0x1D656),
		}},
		common.CategoryDigit: {length: 10, bases: [4]*basePair{
			common.EmphasisNormal: pair(0x1D7E2, 0x1D7E2),
			common.EmphasisBold:   pair(0x1D7EC, 0x1D7EC),
		}},
		common.CategoryGreek: {length: 26, bases: [4]*basePair{
			common.EmphasisBold:       pair(0x1D756, 0x1D770),
			common.EmphasisBoldItalic: pair(0x1D790, 0x1D7AA),
		}},
	},
	common.StyleFamilyScript: {
		common.CategoryLetter: {length: 26, bases: [4]*basePair{
			common.EmphasisNormal: pair(0x1D49C, 0x1D4B6),
			common.EmphasisBold:   pair(0x1D4D0, 0x1D4EA),
		}},
	},
	common.StyleFamilyFraktur: {
		common.CategoryLetter: {length: 26, bases: [4]*basePair{
			common.EmphasisNormal: pair(0x1D504, 0x1D51E),
			common.EmphasisBold:   pair(0x1D56C, 0x1D586),
		}},
	},
	common.StyleFamilyMonospace: {
		common.CategoryLetter: {length: 26, bases: [4]*basePair{
			common.EmphasisNormal: pair(0x1D670, 0x1D68A),
		}},
		common.CategoryDigit: {length: 10, bases: [4]*basePair{
			common.EmphasisNormal: pair(0x1D7F6, 0x1D7F6),
		}},
	},
	common.StyleFamilyDoubleStruck: {
		common.CategoryLetter: {length: 26, bases: [4]*basePair{
			common.EmphasisBold: pair(0x1D538, 0x1D552),
		}},
		common.CategoryDigit: {length: 10, bases: [4]*basePair{
			common.EmphasisNormal: pair(0x1D7D8, 0x1D7D8),
		}},
	},
}

// tableFor returns the slot table for the given family and category, nil
// when the combination is unsupported.
func tableFor(family common.StyleFamily, cat common.Category) *slotTable {
	if !family.IsValid() {
		return nil
	}
	switch cat {
	case common.CategoryLetter, common.CategoryDigit, common.CategoryGreek:
		return registry[family][cat]
	default:
		return nil
	}
}

// slotFor returns the base code-point pair for the given family, category
// and emphasis, reporting false when the combination is not allocated.
func slotFor(family common.StyleFamily, cat common.Category, emp common.Emphasis) (basePair, bool) {
	t := tableFor(family, cat)
	if t == nil || !emp.IsValid() || t.bases[emp] == nil {
		return basePair{}, false
	}
	return *t.bases[emp], true
}

// Supports reports whether characters of the given category have an
// allocated form in the given family and emphasis.
func Supports(cat common.Category, family common.StyleFamily, emp common.Emphasis) bool {
	_, ok := slotFor(family, cat, emp)
	return ok
}
