package convert

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"stc/common"
	"stc/letters"
)

// result carries the outcome of a whole-string conversion. Failed characters
// are kept in place, so Text is always usable even when Err is not nil.
type result struct {
	Text      string
	Converted int
	Skipped   int
	Failed    int
	Err       error
}

// convertText restyles every classifiable character of in, asking the styler
// for a target per character. Characters the styler cannot serve or the
// encoder rejects stay unchanged and are accounted for in the result.
func convertText(in string, pick styler, log *zap.Logger) result {
	var (
		out  strings.Builder
		res  result
		errs error
	)
	out.Grow(len(in))

	for _, ch := range in {
		dc, ok := letters.Classify(ch)
		if !ok {
			res.Skipped++
			out.WriteRune(ch)
			continue
		}
		pair, ok := pick.next(dc.Category)
		if !ok {
			log.Debug("No style pool left for character", zap.String("char", string(ch)), zap.Stringer("category", dc.Category))
			res.Skipped++
			out.WriteRune(ch)
			continue
		}
		styled, err := letters.Encode(dc, pair.family, pair.emphasis)
		if err != nil {
			log.Warn("Unable to style character",
				zap.String("char", string(ch)),
				zap.Stringer("family", pair.family),
				zap.Stringer("emphasis", pair.emphasis),
				zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("character %q: %w", ch, err))
			res.Failed++
			out.WriteRune(ch)
			continue
		}
		res.Converted++
		out.WriteRune(styled)
	}

	res.Text = out.String()
	res.Err = errs
	return res
}

// describe formats the decoded identity of a single character for the
// classify subcommand.
func describe(ch rune) string {
	dc, ok := letters.Classify(ch)
	if !ok {
		return fmt.Sprintf("%q\t%U\tother", ch, ch)
	}
	kase := "lower"
	if dc.Uppercase {
		kase = "upper"
	}
	if dc.Category == common.CategoryDigit {
		return fmt.Sprintf("%q\t%U\t%s\toffset %d\t%s/%s", ch, ch, dc.Category, dc.Offset, dc.Family, dc.Emphasis)
	}
	return fmt.Sprintf("%q\t%U\t%s\t%s\toffset %d\t%s/%s", ch, ch, dc.Category, kase, dc.Offset, dc.Family, dc.Emphasis)
}
