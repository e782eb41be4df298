package convert

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"stc/common"
	"stc/letters"
)

func TestConvertText_Fixed(t *testing.T) {
	log := zaptest.NewLogger(t)

	res := convertText("Hello, World 42!", fixedStyler{stylePair{common.StyleFamilySerif, common.EmphasisBold}}, log)
	if res.Err != nil {
		t.Fatalf("convertText() error = %v", res.Err)
	}
	if res.Text != "𝐇𝐞𝐥𝐥𝐨, 𝐖𝐨𝐫𝐥𝐝 𝟒𝟐!" {
		t.Errorf("convertText() = %q", res.Text)
	}
	if res.Converted != 12 {
		t.Errorf("Converted = %d, want 12", res.Converted)
	}
	if res.Skipped != 4 {
		t.Errorf("Skipped = %d, want 4", res.Skipped)
	}
	if res.Failed != 0 {
		t.Errorf("Failed = %d, want 0", res.Failed)
	}
}

func TestConvertText_ASCIIFold(t *testing.T) {
	log := zaptest.NewLogger(t)

	res := convertText("𝐇𝐞𝐥𝐥𝐨, 𝕎𝗈𝗋𝟣𝚍!", fixedStyler{stylePair{common.StyleFamilySerif, common.EmphasisNormal}}, log)
	if res.Err != nil {
		t.Fatalf("convertText() error = %v", res.Err)
	}
	if res.Text != "Hello, Wor1d!" {
		t.Errorf("convertText() = %q", res.Text)
	}
}

func TestConvertText_PartialFailure(t *testing.T) {
	log := zaptest.NewLogger(t)

	// digits have no script table, letters do
	res := convertText("a5b", fixedStyler{stylePair{common.StyleFamilyScript, common.EmphasisNormal}}, log)
	if res.Err == nil {
		t.Fatal("expected accumulated error for unsupported digit")
	}
	if !errors.Is(res.Err, letters.ErrUnsupportedCombination) {
		t.Errorf("error = %v, want ErrUnsupportedCombination in chain", res.Err)
	}
	if res.Text != "𝒶5𝒷" {
		t.Errorf("convertText() = %q", res.Text)
	}
	if res.Converted != 2 || res.Failed != 1 {
		t.Errorf("Converted/Failed = %d/%d, want 2/1", res.Converted, res.Failed)
	}
}

func TestConvertText_AllFailuresAccumulate(t *testing.T) {
	log := zaptest.NewLogger(t)

	res := convertText("123", fixedStyler{stylePair{common.StyleFamilyFraktur, common.EmphasisNormal}}, log)
	if res.Err == nil {
		t.Fatal("expected error")
	}
	if res.Text != "123" {
		t.Errorf("failed characters must stay in place, got %q", res.Text)
	}
	// one error per failed character
	if got := strings.Count(res.Err.Error(), "character"); got != 3 {
		t.Errorf("accumulated %d errors, want 3: %v", got, res.Err)
	}
}

func TestConvertText_EmptyInput(t *testing.T) {
	log := zaptest.NewLogger(t)

	res := convertText("", fixedStyler{stylePair{common.StyleFamilySerif, common.EmphasisBold}}, log)
	if res.Err != nil || res.Text != "" || res.Converted != 0 {
		t.Errorf("empty input should be a clean no-op, got %+v", res)
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		ch   rune
		want string
	}{
		{'A', "'A'\tU+0041\tletter\tupper\toffset 0\tserif/normal"},
		{'𝐚', "'𝐚'\tU+1D41A\tletter\tlower\toffset 0\tserif/bold"},
		{'7', "'7'\tU+0037\tdigit\toffset 7\tserif/normal"},
		{'ℕ', "'ℕ'\tU+2115\tletter\tupper\toffset 13\tdoubleStruck/bold"},
		{'!', "'!'\tU+0021\tother"},
	}
	for _, tc := range cases {
		if got := describe(tc.ch); got != tc.want {
			t.Errorf("describe(%q) = %q, want %q", tc.ch, got, tc.want)
		}
	}
}
