package letters

import (
	"errors"
	"testing"

	"stc/common"
)

func mustConvert(t *testing.T, ch rune, family common.StyleFamily, emp common.Emphasis) rune {
	t.Helper()
	out, err := Convert(ch, family, emp)
	if err != nil {
		t.Fatalf("Convert(%q, %s, %s) error = %v", ch, family, emp, err)
	}
	return out
}

func TestEncodeCornerCaseExactness(t *testing.T) {
	cases := []struct {
		in     rune
		family common.StyleFamily
		emp    common.Emphasis
		want   rune
	}{
		{'H', common.StyleFamilyScript, common.EmphasisNormal, 'ℋ'},       // ℋ
		{'C', common.StyleFamilyFraktur, common.EmphasisNormal, 'ℭ'},      // ℭ
		{'C', common.StyleFamilyDoubleStruck, common.EmphasisBold, 'ℂ'},   // ℂ
		{'h', common.StyleFamilySerif, common.EmphasisItalic, 'ℎ'},        // ℎ
		{'e', common.StyleFamilyScript, common.EmphasisNormal, 'ℯ'},       // ℯ
		{'g', common.StyleFamilyScript, common.EmphasisNormal, 'ℊ'},       // ℊ
		{'o', common.StyleFamilyScript, common.EmphasisNormal, 'ℴ'},       // ℴ
		{'I', common.StyleFamilyScript, common.EmphasisNormal, 'ℐ'},       // ℐ
		{'J', common.StyleFamilyScript, common.EmphasisNormal, '\U0001D4A5'},   // 𝒥 - contiguous, not letterlike
		{'Z', common.StyleFamilyFraktur, common.EmphasisNormal, 'ℨ'},      // ℨ
		{'N', common.StyleFamilyDoubleStruck, common.EmphasisBold, 'ℕ'},   // ℕ
		{'R', common.StyleFamilyDoubleStruck, common.EmphasisBold, 'ℝ'},   // ℝ
	}
	for _, tc := range cases {
		if got := mustConvert(t, tc.in, tc.family, tc.emp); got != tc.want {
			t.Errorf("Convert(%q, %s, %s) = %q, want %q", tc.in, tc.family, tc.emp, got, tc.want)
		}
	}
}

func TestEncodeArithmeticExactness(t *testing.T) {
	cases := []struct {
		in     rune
		family common.StyleFamily
		emp    common.Emphasis
		want   rune
	}{
		{'A', common.StyleFamilySerif, common.EmphasisBold, '\U0001D400'},
		{'a', common.StyleFamilySansSerif, common.EmphasisNormal, '\U0001D5BA'},
		{'0', common.StyleFamilySansSerif, common.EmphasisBold, '\U0001D7EC'},
		{'z', common.StyleFamilyMonospace, common.EmphasisNormal, '\U0001D6A3'},
		{'9', common.StyleFamilyDoubleStruck, common.EmphasisNormal, '\U0001D7E1'},
		{'Ω', common.StyleFamilySerif, common.EmphasisBoldItalic, '\U0001D734'},
	}
	for _, tc := range cases {
		if got := mustConvert(t, tc.in, tc.family, tc.emp); got != tc.want {
			t.Errorf("Convert(%q, %s, %s) = %#x, want %#x", tc.in, tc.family, tc.emp, got, tc.want)
		}
	}
}

func TestEncodeGreekVariantOverrides(t *testing.T) {
	// uppercase slot 17 (the reserved hole) and 25 resolve to the plain
	// variant symbols when folded back to serif normal
	boldTheta := mustConvert(t, 'ϴ', common.StyleFamilySerif, common.EmphasisBold)
	if boldTheta != '\U0001D6B9' {
		t.Fatalf("bold ϴ = %#x, want 0x1D6B9", boldTheta)
	}
	if got := mustConvert(t, boldTheta, common.StyleFamilySerif, common.EmphasisNormal); got != 'ϴ' {
		t.Fatalf("folding 𝚹 back = %q, want ϴ", got)
	}
	if got := mustConvert(t, '\U0001D6C1', common.StyleFamilySerif, common.EmphasisNormal); got != '∇' {
		t.Fatalf("folding 𝛁 back = %q, want ∇", got)
	}
	if got := mustConvert(t, '\U0001D6DB', common.StyleFamilySerif, common.EmphasisNormal); got != '∂' {
		t.Fatalf("folding 𝛛 back = %q, want ∂", got)
	}
}

func TestEncodeUnsupportedCombination(t *testing.T) {
	cases := []struct {
		in     rune
		family common.StyleFamily
		emp    common.Emphasis
	}{
		{'5', common.StyleFamilyScript, common.EmphasisNormal},     // digits have no script table
		{'5', common.StyleFamilyFraktur, common.EmphasisNormal},    // nor fraktur
		{'α', common.StyleFamilyFraktur, common.EmphasisNormal},    // Greek has no fraktur table
		{'α', common.StyleFamilyScript, common.EmphasisNormal},     // nor script
		{'α', common.StyleFamilyMonospace, common.EmphasisNormal},  // nor monospace
		{'α', common.StyleFamilyDoubleStruck, common.EmphasisBold}, // nor double-struck
		{'a', common.StyleFamilyMonospace, common.EmphasisBold},    // monospace letters are normal only
		{'a', common.StyleFamilyDoubleStruck, common.EmphasisNormal},
		{'a', common.StyleFamilyScript, common.EmphasisItalic},
		{'α', common.StyleFamilySansSerif, common.EmphasisNormal}, // sans-serif Greek is bold/boldItalic only
		{'7', common.StyleFamilySerif, common.EmphasisItalic},
	}
	for _, tc := range cases {
		_, err := Convert(tc.in, tc.family, tc.emp)
		if !errors.Is(err, ErrUnsupportedCombination) {
			t.Errorf("Convert(%q, %s, %s) error = %v, want ErrUnsupportedCombination", tc.in, tc.family, tc.emp, err)
		}
	}
}

func TestEncodeOffsetBounds(t *testing.T) {
	// boundary offsets of every supported slot must resolve
	for family := common.StyleFamilySerif; family <= common.StyleFamilyDoubleStruck; family++ {
		for _, cat := range []common.Category{common.CategoryLetter, common.CategoryDigit, common.CategoryGreek} {
			for emp := common.EmphasisNormal; emp <= common.EmphasisBoldItalic; emp++ {
				if !Supports(cat, family, emp) {
					continue
				}
				cased := []bool{false}
				if cat != common.CategoryDigit {
					cased = []bool{false, true}
				}
				for _, upper := range cased {
					for _, offset := range []int{0, cat.AlphabetLen() - 1} {
						dc := DecodedChar{Category: cat, Uppercase: upper, Offset: offset}
						if _, err := Encode(dc, family, emp); err != nil {
							t.Errorf("Encode(%s/%v/%d, %s, %s) error = %v", cat, upper, offset, family, emp, err)
						}
					}
					// one past the alphabet is always rejected
					dc := DecodedChar{Category: cat, Uppercase: upper, Offset: cat.AlphabetLen()}
					if _, err := Encode(dc, family, emp); !errors.Is(err, ErrOffsetOutOfRange) {
						t.Errorf("Encode(%s/%v/%d, %s, %s) error = %v, want ErrOffsetOutOfRange", cat, upper, cat.AlphabetLen(), family, emp, err)
					}
				}
			}
		}
	}
}

// Styled lowercase Greek carries variant symbols past the 26-slot alphabet;
// re-encoding those is the one offset overflow reachable through Convert.
func TestEncodeGreekVariantTail(t *testing.T) {
	_, err := Convert('\U0001D6DC', common.StyleFamilySerif, common.EmphasisNormal) // 𝛜 bold ϵ, offset 26
	if !errors.Is(err, ErrOffsetOutOfRange) {
		t.Fatalf("Convert(𝛜) error = %v, want ErrOffsetOutOfRange", err)
	}
}

// An override must always shadow arithmetic that would land on a different
// code point, and the two must never agree - otherwise the override is dead
// data.
func TestOverridesDisagreeWithArithmetic(t *testing.T) {
	for key, list := range cornerCases {
		base, ok := slotFor(key.family, key.cat, key.emp)
		if !ok {
			t.Fatalf("corner-case slot %+v has no base pair", key)
		}
		start := base.lower
		if key.uppercase {
			start = base.upper
		}
		for _, cc := range list {
			if start+rune(cc.offset) == cc.ch {
				t.Errorf("override %+v offset %d equals arithmetic result %q", key, cc.offset, cc.ch)
			}
		}
	}
}
