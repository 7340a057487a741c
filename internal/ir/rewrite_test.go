package ir

import "testing"

func TestMapIdentityLeavesTreeEquivalent(t *testing.T) {
	tree := &Seq{Cmds: []Cmd{
		&Move{Dst: 1, Src: Integer{Value: 1}},
		&If{Cond: Bool{Value: true}, Then: &Nop{}, Else: &Nop{}},
	}}

	out := Map(tree, func(Cmd) Cmd { return nil })

	if len(Flatten(out)) != len(Flatten(tree)) {
		t.Fatalf("identity Map changed the node count")
	}
}

func TestMapRewritesBottomUp(t *testing.T) {
	leaf := &Move{Dst: 1, Src: Integer{Value: 1}}
	tree := &Seq{Cmds: []Cmd{leaf}}

	replacement := &Move{Dst: 2, Src: Integer{Value: 99}}
	out := Map(tree, func(c Cmd) Cmd {
		if m, ok := c.(*Move); ok && m.Dst == 1 {
			return replacement
		}
		return nil
	})

	seq, ok := out.(*Seq)
	if !ok || len(seq.Cmds) != 1 {
		t.Fatalf("expected a single-element Seq, got %#v", out)
	}
	got, ok := seq.Cmds[0].(*Move)
	if !ok || got.Dst != 2 {
		t.Fatalf("child was not replaced, got %#v", seq.Cmds[0])
	}
}

func TestMapOnNilReturnsNil(t *testing.T) {
	if Map(nil, func(Cmd) Cmd { return nil }) != nil {
		t.Fatalf("Map(nil, ...) should return nil")
	}
}
