package letters

import (
	"sort"

	"stc/common"
)

// DecodedChar is the style-independent identity of a classified character:
// what it is (category, case, offset into its alphabet) and how it was
// written (the family and emphasis implied by the range it was found in).
// It is produced by Classify and consumed immediately by Encode, never
// stored.
type DecodedChar struct {
	Category  common.Category
	Uppercase bool
	Offset    int
	Family    common.StyleFamily
	Emphasis  common.Emphasis
	Original  rune
}

// charRange is one contiguous code-point run with a fixed classification.
type charRange struct {
	lo, hi    rune
	cat       common.Category
	uppercase bool
	family    common.StyleFamily
	emphasis  common.Emphasis
}

// charRanges lists every contiguous run the classifier knows, sorted by
// range start; runs never overlap. Everything here mirrors the registry in
// tables.go - each entry is a base pair from there spelled out as [base,
// base+length-1]. Styled lowercase Greek runs are 32 code points long (seven
// variant symbols follow omega), everything else matches its alphabet
// length.
var charRanges = []charRange{
	{0x0030, 0x0039, common.CategoryDigit, false, common.StyleFamilySerif, common.EmphasisNormal},
	{0x0041, 0x005A, common.CategoryLetter, true, common.StyleFamilySerif, common.EmphasisNormal},
	{0x0061, 0x007A, common.CategoryLetter, false, common.StyleFamilySerif, common.EmphasisNormal},
	{0x0391, 0x03AA, common.CategoryGreek, true, common.StyleFamilySerif, common.EmphasisNormal},
	{0x03B1, 0x03D0, common.CategoryGreek, false, common.StyleFamilySerif, common.EmphasisNormal},
	{0x1D400, 0x1D419, common.CategoryLetter, true, common.StyleFamilySerif, common.EmphasisBold},
	{0x1D41A, 0x1D433, common.CategoryLetter, false, common.StyleFamilySerif, common.EmphasisBold},
	{0x1D434, 0x1D44D, common.CategoryLetter, true, common.StyleFamilySerif, common.EmphasisItalic},
	{0x1D44E, 0x1D467, common.CategoryLetter, false, common.StyleFamilySerif, common.EmphasisItalic},
	{0x1D468, 0x1D481, common.CategoryLetter, true, common.StyleFamilySerif, common.EmphasisBoldItalic},
	{0x1D482, 0x1D49B, common.CategoryLetter, false, common.StyleFamilySerif, common.EmphasisBoldItalic},
	{0x1D49C, 0x1D4B5, common.CategoryLetter, true, common.StyleFamilyScript, common.EmphasisNormal},
	{0x1D4B6, 0x1D4CF, common.CategoryLetter, false, common.StyleFamilyScript, common.EmphasisNormal},
	{0x1D4D0, 0x1D4E9, common.CategoryLetter, true, common.StyleFamilyScript, common.EmphasisBold},
	{0x1D4EA, 0x1D503, common.CategoryLetter, false, common.StyleFamilyScript, common.EmphasisBold},
	{0x1D504, 0x1D51D, common.CategoryLetter, true, common.StyleFamilyFraktur, common.EmphasisNormal},
	{0x1D51E, 0x1D537, common.CategoryLetter, false, common.StyleFamilyFraktur, common.EmphasisNormal},
	{0x1D538, 0x1D551, common.CategoryLetter, true, common.StyleFamilyDoubleStruck, common.EmphasisBold},
	{0x1D552, 0x1D56B, common.CategoryLetter, false, common.StyleFamilyDoubleStruck, common.EmphasisBold},
	{0x1D56C, 0x1D585, common.CategoryLetter, true, common.StyleFamilyFraktur, common.EmphasisBold},
	{0x1D586, 0x1D59F, common.CategoryLetter, false, common.StyleFamilyFraktur, common.EmphasisBold},
	{0x1D5A0, 0x1D5B9, common.CategoryLetter, true, common.StyleFamilySansSerif, common.EmphasisNormal},
	{0x1D5BA, 0x1D5D3, common.CategoryLetter, false, common.StyleFamilySansSerif, common.EmphasisNormal},
	{0x1D5D4, 0x1D5ED, common.CategoryLetter, true, common.StyleFamilySansSerif, common.EmphasisBold},
	{0x1D5EE, 0x1D607, common.CategoryLetter, false, common.StyleFamilySansSerif, common.EmphasisBold},
	{0x1D608, 0x1D621, common.CategoryLetter, true, common.StyleFamilySansSerif, common.EmphasisItalic},
	{0x1D622, 0x1D63B, common.CategoryLetter, false, common.StyleFamilySansSerif, common.EmphasisItalic},
	{0x1D63C, 0x1D655, common.CategoryLetter, true, common.StyleFamilySansSerif, common.EmphasisBoldItalic},
	{0x1D656, 0x1D66F, common.CategoryLetter, false, common.StyleFamilySansSerif, common.EmphasisBoldItalic},
	{0x1D670, 0x1D689, common.CategoryLetter, true, common.StyleFamilyMonospace, common.EmphasisNormal},
	{0x1D68A, 0x1D6A3, common.CategoryLetter, false, common.StyleFamilyMonospace, common.EmphasisNormal},
	{0x1D6A8, 0x1D6C1, common.CategoryGreek, true, common.StyleFamilySerif, common.EmphasisBold},
	{0x1D6C2, 0x1D6E1, common.CategoryGreek, false, common.StyleFamilySerif, common.EmphasisBold},
	{0x1D6E2, 0x1D6FB, common.CategoryGreek, true, common.StyleFamilySerif, common.EmphasisItalic},
	{0x1D6FC, 0x1D71B, common.CategoryGreek, false, common.StyleFamilySerif, common.EmphasisItalic},
	{0x1D71C, 0x1D735, common.CategoryGreek, true, common.StyleFamilySerif, common.EmphasisBoldItalic},
	{0x1D736, 0x1D755, common.CategoryGreek, false, common.StyleFamilySerif, common.EmphasisBoldItalic},
	{0x1D756, 0x1D76F, common.CategoryGreek, true, common.StyleFamilySansSerif, common.EmphasisBold},
	{0x1D770, 0x1D78F, common.CategoryGreek, false, common.StyleFamilySansSerif, common.EmphasisBold},
	{0x1D790, 0x1D7A9, common.CategoryGreek, true, common.StyleFamilySansSerif, common.EmphasisBoldItalic},
	{0x1D7AA, 0x1D7C9, common.CategoryGreek, false, common.StyleFamilySansSerif, common.EmphasisBoldItalic},
	{0x1D7CE, 0x1D7D7, common.CategoryDigit, false, common.StyleFamilySerif, common.EmphasisBold},
	{0x1D7D8, 0x1D7E1, common.CategoryDigit, false, common.StyleFamilyDoubleStruck, common.EmphasisNormal},
	{0x1D7E2, 0x1D7EB, common.CategoryDigit, false, common.StyleFamilySansSerif, common.EmphasisNormal},
	{0x1D7EC, 0x1D7F5, common.CategoryDigit, false, common.StyleFamilySansSerif, common.EmphasisBold},
	{0x1D7F6, 0x1D7FF, common.CategoryDigit, false, common.StyleFamilyMonospace, common.EmphasisNormal},
}

// Classify determines the style-independent identity of ch. It reports false
// for anything outside the known ranges and corner-case code points -
// punctuation, whitespace, unrelated scripts - which callers must pass
// through unchanged.
func Classify(ch rune) (DecodedChar, bool) {
	// ranges are sorted and disjoint; find the first range whose end is not
	// below ch and check containment
	i := sort.Search(len(charRanges), func(i int) bool { return charRanges[i].hi >= ch })
	if i < len(charRanges) && charRanges[i].lo <= ch {
		r := charRanges[i]
		return DecodedChar{
			Category:  r.cat,
			Uppercase: r.uppercase,
			Offset:    int(ch - r.lo),
			Family:    r.family,
			Emphasis:  r.emphasis,
			Original:  ch,
		}, true
	}
	// isolated Letterlike Symbols and Greek variants sit outside every
	// contiguous run and are matched by exact identity
	return cornerDecode(ch)
}
