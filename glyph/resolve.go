package glyph

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// Identifier prefixes.
const (
	prefix      = "ui"
	lowerPrefix = "uiL"
	punctPrefix = "ui_"
)

// Unknown is the base identifier for runes outside the glyph set.
// Distinct unmapped runes share it.
const Unknown = punctPrefix + "un"

// Class is the character class of a glyph.
type Class int

const (
	// ClassUnknown is any rune outside the glyph set.
	ClassUnknown Class = iota
	// ClassUpper is A-Z.
	ClassUpper
	// ClassLower is a-z.
	ClassLower
	// ClassDigit is 0-9.
	ClassDigit
	// ClassPunct is a rune from the punctuation table.
	ClassPunct
)

// String returns the string representation of the class.
func (c Class) String() string {
	switch c {
	case ClassUpper:
		return "Upper"
	case ClassLower:
		return "Lower"
	case ClassDigit:
		return "Digit"
	case ClassPunct:
		return "Punct"
	default:
		return "Unknown"
	}
}

// mnemonic pairs a punctuation rune with its two-letter name.
type mnemonic struct {
	r    rune
	name string
}

// punctuation is the punctuation table in enumeration order.
// The order decides atlas cell assignment and must not change.
var punctuation = [...]mnemonic{
	{' ', "sp"}, {'!', "ex"}, {'"', "qu"}, {'#', "ha"}, {'$', "dl"},
	{'%', "pc"}, {'&', "am"}, {'\'', "ap"}, {'(', "lp"}, {')', "rp"},
	{'*', "as"}, {'+', "pl"}, {',', "cm"}, {'-', "da"}, {'.', "dt"},
	{'/', "sl"}, {':', "cl"}, {';', "sc"}, {'<', "lt"}, {'=', "eq"},
	{'>', "gt"}, {'?', "qm"}, {'@', "at"}, {'[', "lb"}, {'\\', "bs"},
	{']', "rb"}, {'^', "cr"}, {'_', "un"}, {'`', "gr"}, {'{', "lc"},
	{'|', "pi"}, {'}', "rc"}, {'~', "ti"},
}

// punctIndex maps a punctuation rune to its mnemonic.
var punctIndex = func() map[rune]string {
	m := make(map[rune]string, len(punctuation))
	for _, p := range punctuation {
		m[p.r] = p.name
	}
	return m
}()

// Classify returns the class of r.
func Classify(r rune) Class {
	switch {
	case r >= 'A' && r <= 'Z':
		return ClassUpper
	case r >= 'a' && r <= 'z':
		return ClassLower
	case r >= '0' && r <= '9':
		return ClassDigit
	}
	if _, ok := punctIndex[r]; ok {
		return ClassPunct
	}
	return ClassUnknown
}

// Resolve returns the base identifier for r.
// Runes outside the glyph set resolve to [Unknown].
func Resolve(r rune) string {
	switch Classify(r) {
	case ClassUpper, ClassDigit:
		return prefix + string(r)
	case ClassLower:
		return lowerPrefix + string(r-'a'+'A')
	case ClassPunct:
		return punctPrefix + punctIndex[r]
	default:
		return Unknown
	}
}

// Glyph is one enumerated character of the glyph set.
type Glyph struct {
	Rune  rune
	Base  string
	Class Class
}

// String returns the glyph as "Base(r)".
func (g Glyph) String() string {
	return fmt.Sprintf("%s(%q)", g.Base, g.Rune)
}

// Variant returns the name of the i-th variant of g (1-based).
func (g Glyph) Variant(i int) string {
	return VariantName(g.Base, i)
}

// Count is the number of glyphs returned by [Enumerate].
const Count = 26 + 26 + 10 + len(punctuation)

// Enumerate returns the full glyph set in generation order:
// A-Z, a-z, 0-9, then the punctuation table in table order.
// Each call returns a fresh slice.
func Enumerate() []Glyph {
	out := make([]Glyph, 0, Count)
	for r := 'A'; r <= 'Z'; r++ {
		out = append(out, Glyph{Rune: r, Base: Resolve(r), Class: ClassUpper})
	}
	for r := 'a'; r <= 'z'; r++ {
		out = append(out, Glyph{Rune: r, Base: Resolve(r), Class: ClassLower})
	}
	for r := '0'; r <= '9'; r++ {
		out = append(out, Glyph{Rune: r, Base: Resolve(r), Class: ClassDigit})
	}
	for _, p := range punctuation {
		out = append(out, Glyph{Rune: p.r, Base: punctPrefix + p.name, Class: ClassPunct})
	}
	return out
}

// Runes returns the runes of glyphs in order.
func Runes(glyphs []Glyph) []rune {
	out := make([]rune, len(glyphs))
	for i, g := range glyphs {
		out[i] = g.Rune
	}
	return out
}

// VariantName joins a base identifier and a 1-based variant index.
func VariantName(base string, index int) string {
	return base + strconv.Itoa(index)
}

// VariantNames returns every variant name of glyphs for n variants,
// glyph-major and variant-minor.
func VariantNames(glyphs []Glyph, n int) []string {
	if n < 1 {
		return nil
	}
	out := make([]string, 0, len(glyphs)*n)
	for _, g := range glyphs {
		for i := 1; i <= n; i++ {
			out = append(out, g.Variant(i))
		}
	}
	return out
}

// FoldCollisions returns names that are equal to an earlier name under
// case folding but differ from it byte-wise. Such pairs alias on
// case-insensitive filesystems. Exact duplicates are not reported.
func FoldCollisions(names []string) []string {
	seen := make(map[string]string, len(names))
	var out []string
	for _, n := range names {
		key := strings.ToLower(n)
		if prev, ok := seen[key]; ok {
			if prev != n {
				out = append(out, n)
			}
			continue
		}
		seen[key] = n
	}
	return out
}

// Describe returns "U+XXXX NAME" for r, e.g. "U+0021 EXCLAMATION MARK".
func Describe(r rune) string {
	name := runenames.Name(r)
	if name == "" {
		return fmt.Sprintf("%U", r)
	}
	return fmt.Sprintf("%U %s", r, name)
}
