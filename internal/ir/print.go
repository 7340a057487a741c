package ir

import (
	"fmt"
	"strings"
)

// String renders m in a flat, debugging-oriented textual form: one
// section per function, each command driven generically off GetSrcs/
// GetDsts rather than a per-variant formatter, so a new Cmd variant
// shows up here (if unhandled-looking) without anyone touching this file.
func (m *Module) String() string {
	var b strings.Builder
	for _, rt := range m.RecordTypes {
		fmt.Fprintf(&b, "type %s\n", rt.String())
	}
	for i, g := range m.Globals {
		fmt.Fprintf(&b, "global %d: %s %s\n", i, g.Name, g.Typ.String())
	}
	for fid, fn := range m.Functions {
		fmt.Fprintf(&b, "function %d %s\n", fid, fn.String())
	}
	return b.String()
}

// String renders fn's body, preferring the lowered block graph when
// present (GenerateBasicBlocks has run) and falling back to the tree
// form otherwise.
func (fn *Function) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", fn.Name, fn.Typ.String())
	for i, v := range fn.Vars {
		fmt.Fprintf(&b, "  v%d %s %s\n", i+1, v.Name, v.Typ.String())
	}
	for i, v := range fn.CapturedVars {
		fmt.Fprintf(&b, "  u%d %s %s\n", i+1, v.Name, v.Typ.String())
	}

	if len(fn.Blocks) > 0 {
		for i, bb := range fn.Blocks {
			fmt.Fprintf(&b, "  block %d:\n", i)
			for _, c := range bb.Cmds {
				fmt.Fprintf(&b, "    %s\n", cmdString(c))
			}
			if bb.JmpFalse != nil {
				fmt.Fprintf(&b, "    jmp_false %s -> %d\n", bb.JmpFalse.Cond, bb.JmpFalse.Target)
			}
			if bb.Next != -1 {
				fmt.Fprintf(&b, "    next -> %d\n", bb.Next)
			}
		}
		return b.String()
	}

	for _, c := range Flatten(fn.Body) {
		fmt.Fprintf(&b, "  %s\n", cmdString(c))
	}
	return b.String()
}

// cmdString renders a single Cmd as "tag dsts <- op srcs", using GetDsts/
// GetSrcs so every variant gets consistent formatting without a bespoke
// String() method each.
func cmdString(c Cmd) string {
	dsts := GetDsts(c)
	srcs := GetSrcs(c)

	dstStrs := make([]string, len(dsts))
	for i, d := range dsts {
		if d == NoDst {
			dstStrs[i] = "_"
		} else {
			dstStrs[i] = fmt.Sprintf("v%d", d)
		}
	}
	srcStrs := make([]string, len(srcs))
	for i, s := range srcs {
		srcStrs[i] = s.String()
	}

	tag := strings.TrimPrefix(c.Tag(), "ir.Cmd.")
	switch len(dstStrs) {
	case 0:
		return fmt.Sprintf("%s(%s)", tag, strings.Join(srcStrs, ", "))
	default:
		return fmt.Sprintf("%s = %s(%s)", strings.Join(dstStrs, ", "), tag, strings.Join(srcStrs, ", "))
	}
}
