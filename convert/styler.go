package convert

import (
	"math/rand/v2"
	"slices"

	"stc/common"
	"stc/letters"
)

// stylePair is a single target style selection.
type stylePair struct {
	family   common.StyleFamily
	emphasis common.Emphasis
}

// styler picks the target style for the next classified character.
type styler interface {
	next(cat common.Category) (stylePair, bool)
}

// fixedStyler applies one configured style to everything.
type fixedStyler struct {
	pair stylePair
}

func (s fixedStyler) next(common.Category) (stylePair, bool) {
	return s.pair, true
}

// randomStyler draws a style per character, uniformly over the combinations
// the character's category actually supports. Candidate pools are
// precomputed per category so a draw never has to re-roll.
type randomStyler struct {
	rng   *rand.Rand
	pools map[common.Category][]stylePair
}

func newRandomStyler(seed uint64, excludeFamilies []common.StyleFamily, excludeEmphases []common.Emphasis) *randomStyler {
	s := &randomStyler{
		rng:   rand.New(rand.NewPCG(seed, seed)),
		pools: make(map[common.Category][]stylePair),
	}
	for _, cat := range []common.Category{common.CategoryLetter, common.CategoryDigit, common.CategoryGreek} {
		var pool []stylePair
		for _, family := range common.StyleFamilyValues() {
			if slices.Contains(excludeFamilies, family) {
				continue
			}
			for _, emp := range common.EmphasisValues() {
				if slices.Contains(excludeEmphases, emp) {
					continue
				}
				if letters.Supports(cat, family, emp) {
					pool = append(pool, stylePair{family, emp})
				}
			}
		}
		s.pools[cat] = pool
	}
	return s
}

func (s *randomStyler) next(cat common.Category) (stylePair, bool) {
	pool := s.pools[cat]
	if len(pool) == 0 {
		// exclusions can empty a pool, caller passes the character through
		return stylePair{}, false
	}
	return pool[s.rng.IntN(len(pool))], true
}
