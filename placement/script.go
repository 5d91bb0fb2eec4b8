package placement

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Script is a compiled placement ready to be emitted as Lua.
type Script struct {
	// Text is the source string, echoed in a header comment.
	Text string
	// Anchor is the Lua expression holding the anchor handle.
	Anchor   string
	Commands []Command
}

// WriteLua writes s as a Lua block that reads the anchor's position and
// basis once, then spawns one explosion per command.
func WriteLua(w io.Writer, s Script) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "-- Generated for: %s\n", s.Text)
	fmt.Fprintf(bw, "local p = GetPosition(%s)\n", s.Anchor)
	fmt.Fprintf(bw, "local r = GetRight(%s)\n", s.Anchor)
	fmt.Fprintf(bw, "local u = GetUp(%s)", s.Anchor)
	if needsFront(s.Commands) {
		fmt.Fprintf(bw, "\nlocal f = GetFront(%s)", s.Anchor)
	}

	for _, c := range s.Commands {
		fmt.Fprintf(bw, "\nMakeExplosion(%q, p", c.Variant)
		if c.Offset.Forward != 0 {
			fmt.Fprintf(bw, " + (f * %.2f)", c.Offset.Forward)
		}
		fmt.Fprintf(bw, " + (r * %.2f) + (u * %s))", c.Offset.Right, strconv.FormatFloat(c.Offset.Up, 'f', -1, 64))
	}

	return bw.Flush()
}

func needsFront(cmds []Command) bool {
	for _, c := range cmds {
		if c.Offset.Forward != 0 {
			return true
		}
	}
	return false
}
