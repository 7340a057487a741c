package ir

import "testing"

func TestCleanFlattensNestedSeq(t *testing.T) {
	a := &Move{Dst: 1, Src: Integer{Value: 1}}
	b := &Move{Dst: 2, Src: Integer{Value: 2}}
	nested := &Seq{Cmds: []Cmd{a, &Seq{Cmds: []Cmd{b}}}}

	got := Clean(nested).(*Seq)
	if len(got.Cmds) != 2 || got.Cmds[0] != a || got.Cmds[1] != b {
		t.Fatalf("want flat [a, b], got %#v", got.Cmds)
	}
}

func TestCleanElidesNop(t *testing.T) {
	a := &Move{Dst: 1, Src: Integer{Value: 1}}
	seq := &Seq{Cmds: []Cmd{&Nop{}, a, &Nop{}}}

	got := Clean(seq)
	if got != a {
		t.Fatalf("a lone surviving Cmd should unwrap out of the Seq, got %#v", got)
	}
}

func TestCleanEmptySeqBecomesNop(t *testing.T) {
	got := Clean(&Seq{Cmds: []Cmd{&Nop{}, &Nop{}}})
	if _, ok := got.(*Nop); !ok {
		t.Fatalf("want Nop, got %#v", got)
	}
}

func TestCleanFoldsConstantIf(t *testing.T) {
	then := &Move{Dst: 1, Src: Integer{Value: 1}}
	els := &Move{Dst: 2, Src: Integer{Value: 2}}

	if got := Clean(&If{Cond: Bool{Value: true}, Then: then, Else: els}); got != then {
		t.Fatalf("If(true) should fold to Then, got %#v", got)
	}
	if got := Clean(&If{Cond: Bool{Value: false}, Then: then, Else: els}); got != els {
		t.Fatalf("If(false) should fold to Else, got %#v", got)
	}
}

func TestCleanLeavesNonConstantIfAlone(t *testing.T) {
	n := &If{Cond: LocalVar{ID: 1}, Then: &Move{Dst: 1, Src: Integer{Value: 1}}, Else: &Nop{}}
	got := Clean(n)
	if _, ok := got.(*If); !ok {
		t.Fatalf("an If on a non-constant condition with a non-Nop arm must stay an If, got %#v", got)
	}
}

func TestCleanFoldsIfWithBothArmsNop(t *testing.T) {
	n := &If{Cond: LocalVar{ID: 1}, Then: &Nop{}, Else: &Nop{}}
	got := Clean(n)
	if _, ok := got.(*Nop); !ok {
		t.Fatalf("If(v, Nop, Nop) should clean to Nop, got %#v", got)
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	a := &Move{Dst: 1, Src: Integer{Value: 1}}
	tree := &Seq{Cmds: []Cmd{
		&Seq{Cmds: []Cmd{&Nop{}, a}},
		&If{Cond: Bool{Value: true}, Then: &Nop{}, Else: &Move{Dst: 2, Src: Integer{Value: 2}}},
	}}

	once := Clean(tree)
	twice := Clean(once)

	if !sameShape(once, twice) {
		t.Fatalf("Clean is not idempotent:\nonce:  %s\ntwice: %s", dumpShape(once), dumpShape(twice))
	}
}

// sameShape compares two Cmd trees structurally for the idempotence
// check; it doesn't need to be a general-purpose equality (Value itself
// has no Equals), just enough to catch Clean changing shape on a second
// pass.
func sameShape(a, b Cmd) bool {
	return dumpShape(a) == dumpShape(b)
}

func dumpShape(c Cmd) string {
	var walk func(Cmd) string
	walk = func(c Cmd) string {
		if c == nil {
			return "nil"
		}
		switch n := c.(type) {
		case *Seq:
			s := "Seq("
			for _, child := range n.Cmds {
				s += walk(child) + ","
			}
			return s + ")"
		case *If:
			return "If(" + walk(n.Then) + "," + walk(n.Else) + ")"
		case *Loop:
			return "Loop(" + walk(n.Body) + ")"
		default:
			return c.Tag()
		}
	}
	return walk(c)
}
