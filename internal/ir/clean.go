package ir

// Clean applies a small set of algebraic simplifications to c and
// returns the simplified tree. It is idempotent: Clean(Clean(c)) never
// differs from Clean(c), because each rule below leaves its own output
// already in normal form.
//
// Rules, applied bottom-up via Map so a simplification surfaced by a
// child is visible to its parent in the same pass:
//   - a Seq nested inside a Seq is spliced into its parent's Cmds
//   - Nop is elided from a Seq's Cmds
//   - a Seq with zero remaining Cmds becomes Nop
//   - a Seq with exactly one remaining Cmd becomes that Cmd
//   - an If whose Cond is a constant Bool folds to its Then or Else arm
//   - an If whose Then and Else are both Nop becomes Nop
func Clean(c Cmd) Cmd {
	return Map(c, cleanOne)
}

func cleanOne(c Cmd) Cmd {
	switch n := c.(type) {
	case *Seq:
		return cleanSeq(n)
	case *If:
		return cleanIf(n)
	default:
		return nil
	}
}

func cleanSeq(n *Seq) Cmd {
	flat := make([]Cmd, 0, len(n.Cmds))
	for _, child := range n.Cmds {
		switch cc := child.(type) {
		case *Nop:
			continue
		case *Seq:
			flat = append(flat, cc.Cmds...)
		default:
			flat = append(flat, child)
		}
	}

	switch len(flat) {
	case 0:
		return &Nop{}
	case 1:
		return flat[0]
	default:
		return &Seq{Cmds: flat}
	}
}

func cleanIf(n *If) Cmd {
	if b, ok := n.Cond.(Bool); ok {
		if b.Value {
			return n.Then
		}
		return n.Else
	}
	if isNop(n.Then) && isNop(n.Else) {
		return &Nop{}
	}
	return nil
}

func isNop(c Cmd) bool {
	_, ok := c.(*Nop)
	return ok
}
