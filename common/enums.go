// The conversion engine, the configuration layer and the command line surface
// all need the same closed set of style selectors and I do not want the engine
// to depend on configuration (or the other way around). So enumerations live
// in their own package.
package common

// Visual typeface variant within the Unicode Mathematical Alphanumeric
// Symbols block.
// ENUM(serif, sansSerif, script, fraktur, monospace, doubleStruck)
type StyleFamily int

// Weight/slant variant of a style family.
// ENUM(normal, bold, italic, boldItalic)
type Emphasis int

// Category of a classifiable character.
// ENUM(letter, digit, greek, other)
type Category int

// AlphabetLen returns the number of offset slots a category occupies.
func (c Category) AlphabetLen() int {
	switch c {
	case CategoryLetter, CategoryGreek:
		return 26
	case CategoryDigit:
		return 10
	default:
		return 0
	}
}
