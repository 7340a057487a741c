package ir

// Map rewrites root bottom-up: f runs on every child first, then on the
// node itself with its (possibly replaced) children already installed.
// If f returns nil for a node, that node's original form is kept as-is.
func Map(root Cmd, f func(Cmd) Cmd) Cmd {
	if root == nil {
		return nil
	}

	switch n := root.(type) {
	case *Seq:
		cmds := make([]Cmd, len(n.Cmds))
		for i, c := range n.Cmds {
			cmds[i] = Map(c, f)
		}
		root = &Seq{Cmds: cmds}
	case *If:
		root = &If{
			Loc:  n.Loc,
			Cond: n.Cond,
			Then: Map(n.Then, f),
			Else: Map(n.Else, f),
		}
	case *Loop:
		root = &Loop{Body: Map(n.Body, f)}
	case *For:
		root = &For{
			Loc:   n.Loc,
			Dst:   n.Dst,
			Start: n.Start,
			Limit: n.Limit,
			Step:  n.Step,
			Body:  Map(n.Body, f),
		}
	}

	if rewritten := f(root); rewritten != nil {
		return rewritten
	}
	return root
}
