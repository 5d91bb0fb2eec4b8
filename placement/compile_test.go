package placement

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func variants(cmds []Command) []string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.Variant
	}
	return out
}

func rights(cmds []Command) []float64 {
	out := make([]float64, len(cmds))
	for i, c := range cmds {
		out[i] = c.Offset.Right
	}
	return out
}

func approxEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}

func TestCompileCentering(t *testing.T) {
	cmds, err := Compile("AB", 2.0)
	if err != nil {
		t.Fatal(err)
	}
	if got := rights(cmds); !approxEqual(got, []float64{-1, 1}) {
		t.Errorf("offsets = %v, want [-1 1]", got)
	}
	if got := variants(cmds); !slices.Equal(got, []string{"uiA1", "uiB1"}) {
		t.Errorf("variants = %v", got)
	}
	for _, c := range cmds {
		if c.Offset.Up != DefaultUp || c.Offset.Forward != 0 {
			t.Errorf("%s offset = %+v, want up %v and zero forward", c.Variant, c.Offset, DefaultUp)
		}
	}
}

func TestCompileSpaceHoldsSlot(t *testing.T) {
	cmds, err := Compile("A B", 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 2 {
		t.Fatalf("len(cmds) = %d, want 2", len(cmds))
	}
	if got := rights(cmds); !approxEqual(got, []float64{-1, 1}) {
		t.Errorf("offsets = %v, want [-1 1]", got)
	}
	if cmds[0].Slot != 0 || cmds[1].Slot != 2 {
		t.Errorf("slots = %d, %d; want 0, 2", cmds[0].Slot, cmds[1].Slot)
	}
}

func TestCompileRoundRobin(t *testing.T) {
	cmds, err := Compile("AAA", 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if got := variants(cmds); !slices.Equal(got, []string{"uiA1", "uiA2", "uiA3"}) {
		t.Errorf("variants = %v", got)
	}
}

func TestCompileCountersPerBase(t *testing.T) {
	cmds, err := Compile("aAa!A", 1.0)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"uiLA1", "uiA1", "uiLA2", "ui_ex1", "uiA2"}
	if got := variants(cmds); !slices.Equal(got, want) {
		t.Errorf("variants = %v, want %v", got, want)
	}
}

func TestCompileUnknownShareCounter(t *testing.T) {
	cmds, err := Compile("éü", 1.0)
	if err != nil {
		t.Fatal(err)
	}
	if got := variants(cmds); !slices.Equal(got, []string{"ui_un1", "ui_un2"}) {
		t.Errorf("variants = %v", got)
	}
	if got := rights(cmds); !approxEqual(got, []float64{-0.5, 0.5}) {
		t.Errorf("multi-byte runes should take one slot each, offsets = %v", got)
	}
}

func TestCompileEmpty(t *testing.T) {
	for _, s := range []string{"", "   "} {
		cmds, err := Compile(s, 1.5)
		if err != nil {
			t.Fatal(err)
		}
		if len(cmds) != 0 {
			t.Errorf("Compile(%q) = %v, want none", s, cmds)
		}
	}
}

func TestCompileSingle(t *testing.T) {
	cmds, err := Compile("Z", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 1 || cmds[0].Offset.Right != 0 {
		t.Errorf("single character should sit on the anchor, got %+v", cmds)
	}
}

func TestCompileUnbounded(t *testing.T) {
	cmds, err := Compile("AAAAAAAAAAAA", 1)
	if err != nil {
		t.Fatal(err)
	}
	if last := cmds[len(cmds)-1]; last.Variant != "uiA12" {
		t.Errorf("last variant = %q, want uiA12", last.Variant)
	}
}

func TestCompileOverflow(t *testing.T) {
	tests := []struct {
		name   string
		policy Overflow
		want   []string
	}{
		{"wrap", OverflowWrap, []string{"uiA1", "uiA2", "uiA1", "uiA2", "uiA1"}},
		{"clamp", OverflowClamp, []string{"uiA1", "uiA2", "uiA2", "uiA2", "uiA2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds, err := Compile("AAAAA", 1, WithVariantLimit(2), WithOverflow(tt.policy))
			if err != nil {
				t.Fatal(err)
			}
			if got := variants(cmds); !slices.Equal(got, tt.want) {
				t.Errorf("variants = %v, want %v", got, tt.want)
			}
		})
	}

	_, err := Compile("ABAB A", 1, WithVariantLimit(2))
	var oe *VariantOverflowError
	if !errors.As(err, &oe) {
		t.Fatalf("error = %v, want *VariantOverflowError", err)
	}
	if oe.Rune != 'A' || oe.Base != "uiA" || oe.Count != 3 || oe.Limit != 2 {
		t.Errorf("VariantOverflowError = %+v", oe)
	}
	if !errors.Is(err, ErrVariantOverflow) {
		t.Error("errors.Is(err, ErrVariantOverflow) = false")
	}
}

func TestCompileWithUp(t *testing.T) {
	cmds, err := Compile("A", 1, WithUp(-4))
	if err != nil {
		t.Fatal(err)
	}
	if cmds[0].Offset.Up != -4 {
		t.Errorf("Up = %v, want -4", cmds[0].Offset.Up)
	}
}

func TestCompileReentrant(t *testing.T) {
	a, err := Compile("AA", 1)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Compile("AA", 1)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a, b) {
		t.Error("usage counters leaked between calls")
	}
}

func TestParseOverflow(t *testing.T) {
	for _, p := range []Overflow{OverflowError, OverflowWrap, OverflowClamp} {
		got, err := ParseOverflow(p.String())
		if err != nil || got != p {
			t.Errorf("ParseOverflow(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParseOverflow("explode"); err == nil {
		t.Error("expected error for unknown policy")
	}
}
