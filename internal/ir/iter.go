package ir

// Iterator walks a Cmd tree in pre-order without recursion, so a caller
// can pause and resume a traversal (e.g. interleave it with another
// iterator, or bail out early without unwinding a call stack).
//
// DESIGN CHOICE: explicit stack of pending children rather than a
// goroutine-backed channel iterator. A Cmd tree is finite and small
// enough that a plain slice-backed stack gets the same restartability
// without a goroutine leak if the caller never drains it.
type Iterator struct {
	stack []Cmd
}

// Iter returns a fresh pre-order Iterator rooted at c. c itself is the
// first value Next returns.
func Iter(c Cmd) *Iterator {
	if c == nil {
		return &Iterator{}
	}
	return &Iterator{stack: []Cmd{c}}
}

// Next returns the next command in pre-order, and true. It returns
// (nil, false) once the traversal is exhausted.
func (it *Iterator) Next() (Cmd, bool) {
	if len(it.stack) == 0 {
		return nil, false
	}
	n := len(it.stack) - 1
	cur := it.stack[n]
	it.stack = it.stack[:n]
	it.push(children(cur))
	return cur, true
}

// push appends kids to the stack in reverse so the first child is popped
// (and thus visited) first.
func (it *Iterator) push(kids []Cmd) {
	for i := len(kids) - 1; i >= 0; i-- {
		if kids[i] != nil {
			it.stack = append(it.stack, kids[i])
		}
	}
}

// children returns c's direct Cmd children, in execution order. Leaf
// commands (Move, Binop, Return, Break, ...) have none.
func children(c Cmd) []Cmd {
	switch n := c.(type) {
	case *Seq:
		return n.Cmds
	case *If:
		return []Cmd{n.Then, n.Else}
	case *Loop:
		return []Cmd{n.Body}
	case *For:
		return []Cmd{n.Body}
	default:
		return nil
	}
}

// Flatten runs an Iterator rooted at c to completion and returns every
// visited node in pre-order. Equivalent to draining Iter(c), provided as
// a convenience for callers that don't need to pause mid-walk.
func Flatten(c Cmd) []Cmd {
	var out []Cmd
	it := Iter(c)
	for {
		n, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, n)
	}
}
