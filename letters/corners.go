package letters

import (
	"slices"

	"stc/common"
)

// cornerCase pins one offset to an explicitly allocated code point that
// base+offset arithmetic would miss.
type cornerCase struct {
	offset int
	ch     rune
}

type cornerKey struct {
	family    common.StyleFamily
	cat       common.Category
	emp       common.Emphasis
	uppercase bool
}

// cornerCases enumerates every slot where Unicode reused a pre-existing code
// point instead of allocating a contiguous one. Each list is sorted by
// offset. The same data drives both encoding (offset -> rune) and the
// reverse classification table built in init below.
var cornerCases = map[cornerKey][]cornerCase{
	// Script normal salvages eight uppercase and three lowercase letters
	// from the Letterlike Symbols block.
	{common.StyleFamilyScript, common.CategoryLetter, common.EmphasisNormal, true}: {
		{1, 'ℬ'},  // ℬ B
		{4, 'ℰ'},  // ℰ E
		{5, 'ℱ'},  // ℱ F
		{7, 'ℋ'},  // ℋ H
		{8, 'ℐ'},  // ℐ I
		{11, 'ℒ'}, // ℒ L
		{12, 'ℳ'}, // ℳ M
		{17, 'ℛ'}, // ℛ R
	},
	{common.StyleFamilyScript, common.CategoryLetter, common.EmphasisNormal, false}: {
		{4, 'ℯ'},  // ℯ e
		{6, 'ℊ'},  // ℊ g
		{14, 'ℴ'}, // ℴ o
	},
	{common.StyleFamilyFraktur, common.CategoryLetter, common.EmphasisNormal, true}: {
		{2, 'ℭ'},  // ℭ C
		{7, 'ℌ'},  // ℌ H
		{8, 'ℑ'},  // ℑ I
		{17, 'ℜ'}, // ℜ R
		{25, 'ℨ'}, // ℨ Z
	},
	// Bold is the only double-struck letter slot that exists, and the seven
	// set-theory staples predate it in Letterlike Symbols.
	{common.StyleFamilyDoubleStruck, common.CategoryLetter, common.EmphasisBold, true}: {
		{2, 'ℂ'},  // ℂ C
		{7, 'ℍ'},  // ℍ H
		{13, 'ℕ'}, // ℕ N
		{15, 'ℙ'}, // ℙ P
		{16, 'ℚ'}, // ℚ Q
		{17, 'ℝ'}, // ℝ R
		{25, 'ℤ'}, // ℤ Z
	},
	// Plain Greek: offset 17 is the reserved U+03A2 hole (the styled blocks
	// put the theta variant there) and offset 25 onward are the variant
	// symbols the styled blocks append after omega.
	{common.StyleFamilySerif, common.CategoryGreek, common.EmphasisNormal, true}: {
		{17, 'ϴ'}, // ϴ
		{25, '∇'}, // ∇
	},
	{common.StyleFamilySerif, common.CategoryGreek, common.EmphasisNormal, false}: {
		{25, '∂'}, // ∂
		{26, 'ϵ'}, // ϵ
		{27, 'ϑ'}, // ϑ
		{28, 'ϰ'}, // ϰ
		{29, 'ϕ'}, // ϕ
		{30, 'ϱ'}, // ϱ
		{31, 'ϖ'}, // ϖ
	},
	// Planck constant got there first.
	{common.StyleFamilySerif, common.CategoryLetter, common.EmphasisItalic, false}: {
		{7, 'ℎ'}, // ℎ h
	},
}

// overrideFor returns the sorted corner-case list for the slot, empty when
// arithmetic alone covers it.
func overrideFor(family common.StyleFamily, cat common.Category, emp common.Emphasis, uppercase bool) []cornerCase {
	return cornerCases[cornerKey{family, cat, emp, uppercase}]
}

// overrideLookup resolves a single offset against the slot's corner-case
// list. Lists hold at most eight entries, binary search is already overkill.
func overrideLookup(family common.StyleFamily, cat common.Category, emp common.Emphasis, uppercase bool, offset int) (rune, bool) {
	cc := overrideFor(family, cat, emp, uppercase)
	i, ok := slices.BinarySearchFunc(cc, offset, func(c cornerCase, off int) int { return c.offset - off })
	if !ok {
		return 0, false
	}
	return cc[i].ch, true
}

// cornerIdentity is the reverse view: one isolated code point and the
// decoded identity it stands for.
type cornerIdentity struct {
	ch rune
	dc DecodedChar
}

// cornerDecodeTable is the exact-match fallback the classifier consults
// after range lookup fails. Built from cornerCases so the two views can
// never drift apart; sorted by code point.
var cornerDecodeTable []cornerIdentity

func init() {
	for key, list := range cornerCases {
		for _, cc := range list {
			cornerDecodeTable = append(cornerDecodeTable, cornerIdentity{
				ch: cc.ch,
				dc: DecodedChar{
					Category:  key.cat,
					Uppercase: key.uppercase,
					Offset:    cc.offset,
					Family:    key.family,
					Emphasis:  key.emp,
					Original:  cc.ch,
				},
			})
		}
	}
	slices.SortFunc(cornerDecodeTable, func(a, b cornerIdentity) int { return int(a.ch - b.ch) })
}

// cornerDecode finds the decoded identity of an isolated corner-case code
// point by exact match.
func cornerDecode(ch rune) (DecodedChar, bool) {
	i, ok := slices.BinarySearchFunc(cornerDecodeTable, ch, func(ci cornerIdentity, r rune) int { return int(ci.ch - r) })
	if !ok {
		return DecodedChar{}, false
	}
	return cornerDecodeTable[i].dc, true
}
