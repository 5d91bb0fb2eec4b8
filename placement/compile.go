package placement

import (
	"errors"
	"fmt"

	"github.com/gogpu/glyphkit/glyph"
)

// DefaultUp is the default offset along the anchor's up axis.
const DefaultUp = 2.5

// Offset is a displacement in the anchor's basis.
type Offset struct {
	Forward float64
	Right   float64
	Up      float64
}

// Command spawns one variant at an offset from the anchor.
type Command struct {
	// Variant is the asset name, Base followed by Index.
	Variant string
	Base    string
	Index   int
	// Rune is the source character and Slot its rune index in the text.
	Rune   rune
	Slot   int
	Offset Offset
}

// Overflow selects what happens when a character repeats more often than
// the variant limit.
type Overflow int

const (
	// OverflowError fails compilation.
	OverflowError Overflow = iota
	// OverflowWrap cycles back to variant 1.
	OverflowWrap
	// OverflowClamp keeps using the last variant.
	OverflowClamp
)

// String returns the string representation of the policy.
func (o Overflow) String() string {
	switch o {
	case OverflowError:
		return "error"
	case OverflowWrap:
		return "wrap"
	case OverflowClamp:
		return "clamp"
	default:
		return "unknown"
	}
}

// ParseOverflow parses a policy name as returned by Overflow.String.
func ParseOverflow(s string) (Overflow, error) {
	switch s {
	case "error":
		return OverflowError, nil
	case "wrap":
		return OverflowWrap, nil
	case "clamp":
		return OverflowClamp, nil
	}
	return 0, fmt.Errorf("placement: unknown overflow policy %q", s)
}

// ErrVariantOverflow is matched by *VariantOverflowError.
var ErrVariantOverflow = errors.New("placement: variant limit exceeded")

// VariantOverflowError reports a character used more often than the
// number of generated variants.
type VariantOverflowError struct {
	Rune  rune
	Base  string
	Count int
	Limit int
}

func (e *VariantOverflowError) Error() string {
	return fmt.Sprintf("placement: %q (%s) used %d times, only %d variants", e.Rune, e.Base, e.Count, e.Limit)
}

// Is reports whether target is ErrVariantOverflow.
func (e *VariantOverflowError) Is(target error) bool {
	return target == ErrVariantOverflow
}

// Option configures Compile.
type Option func(*options)

type options struct {
	limit    int
	overflow Overflow
	up       float64
}

func defaultOptions() options {
	return options{up: DefaultUp}
}

// WithVariantLimit bounds variant indices to the n variants that were
// generated. Zero means unbounded: indices grow past any generated set.
func WithVariantLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// WithOverflow sets the policy applied when the variant limit is exceeded.
func WithOverflow(p Overflow) Option {
	return func(o *options) {
		o.overflow = p
	}
}

// WithUp sets the offset along the anchor's up axis.
func WithUp(up float64) Option {
	return func(o *options) {
		o.up = up
	}
}

// Compile maps text to placement commands in input order.
//
// Slot i is placed at start + i*spacing along the right axis, where
// start = -((n-1)*spacing)/2 and n counts every rune including spaces.
// Spaces emit nothing. Each other rune takes the next unused variant of
// its base identifier, starting at 1.
func Compile(text string, spacing float64, opts ...Option) ([]Command, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	runes := []rune(text)
	start := -(float64(len(runes)-1) * spacing) / 2
	usage := make(map[string]int)

	cmds := make([]Command, 0, len(runes))
	for i, r := range runes {
		if r == ' ' {
			continue
		}
		base := glyph.Resolve(r)
		usage[base]++

		index, err := o.variantIndex(r, base, usage[base])
		if err != nil {
			return nil, err
		}

		cmds = append(cmds, Command{
			Variant: glyph.VariantName(base, index),
			Base:    base,
			Index:   index,
			Rune:    r,
			Slot:    i,
			Offset: Offset{
				Right: start + float64(i)*spacing,
				Up:    o.up,
			},
		})
	}
	return cmds, nil
}

// variantIndex applies the overflow policy to the n-th use of base.
func (o options) variantIndex(r rune, base string, n int) (int, error) {
	if o.limit <= 0 || n <= o.limit {
		return n, nil
	}
	switch o.overflow {
	case OverflowWrap:
		return (n-1)%o.limit + 1, nil
	case OverflowClamp:
		return o.limit, nil
	default:
		return 0, &VariantOverflowError{Rune: r, Base: base, Count: n, Limit: o.limit}
	}
}
