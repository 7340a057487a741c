package ir

import (
	"reflect"
	"testing"
)

func TestFlattenPreOrder(t *testing.T) {
	a := &Move{Dst: 1, Src: Integer{Value: 1}}
	b := &Move{Dst: 2, Src: Integer{Value: 2}}
	tree := &Seq{Cmds: []Cmd{a, &If{Cond: Bool{Value: true}, Then: b, Else: &Nop{}}}}

	got := Flatten(tree)
	// pre-order: the Seq itself, then a, then the If, then b, then the Nop.
	want := []Cmd{tree, a, tree.Cmds[1], b, tree.Cmds[1].(*If).Else}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Flatten order mismatch:\ngot  %#v\nwant %#v", got, want)
	}
}

func TestFlattenEqualsDrainingIter(t *testing.T) {
	tree := &Loop{Body: &Seq{Cmds: []Cmd{&Break{}}}}

	var drained []Cmd
	it := Iter(tree)
	for {
		n, ok := it.Next()
		if !ok {
			break
		}
		drained = append(drained, n)
	}

	if !reflect.DeepEqual(drained, Flatten(tree)) {
		t.Fatalf("draining Iter by hand produced a different walk than Flatten")
	}
}

func TestIterNilRoot(t *testing.T) {
	if Flatten(nil) != nil {
		t.Fatalf("Flatten(nil) should return nil, not an empty-but-non-nil slice")
	}
}
