// Package letters converts individual characters between plain ASCII/Greek
// letters and digits and their styled Unicode Mathematical Alphanumeric
// Symbols equivalents (serif, sans-serif, script, Fraktur, monospace,
// double-struck in normal/bold/italic/bold-italic weights), and back.
//
// All mapping data is immutable package-level state fixed at init time, so
// every entry point is safe for unsynchronized concurrent use. Characters the
// package does not know about are never errors - Convert passes them through
// unchanged.
//
// The Mathematical Alphanumeric Symbols block is riddled with allocation
// gaps: Unicode reused pre-existing Letterlike Symbols (ℋ, ℭ, ℂ, ℎ and
// friends) instead of allocating contiguous code points, and the Greek block
// carries archaic variant symbols past the 24-letter alphabet. Those
// exceptions live in the corner-case tables and always win over base+offset
// arithmetic.
package letters
