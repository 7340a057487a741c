package ir

// GetSrcs returns every Value a Cmd reads from, in a stable order
// matching the field order in cmd.go. Structured control flow (Seq, If,
// Loop, For's Body) and the Nop/Break/CheckGC markers contribute no
// direct sources beyond what they themselves carry (If's Cond, For's
// Start/Limit/Step); their child Cmds are walked separately via
// children() in iter.go, not through this function.
//
// DESIGN CHOICE: one centralized type switch rather than a GetSrcs()
// method per variant — see the Cmd doc comment in cmd.go.
func GetSrcs(c Cmd) []Value {
	switch n := c.(type) {
	case *Move:
		return []Value{n.Src}
	case *Unop:
		return []Value{n.Src}
	case *Binop:
		return []Value{n.Src1, n.Src2}
	case *Concat:
		return n.Srcs
	case *ToFloat:
		return []Value{n.Src}
	case *ToDyn:
		return []Value{n.Src}
	case *FromDyn:
		return []Value{n.Src}
	case *IsTruthy:
		return []Value{n.Src}
	case *IsNil:
		return []Value{n.Src}
	case *NewArr:
		return []Value{n.SrcSize}
	case *GetArr:
		return []Value{n.SrcArr, n.SrcI}
	case *SetArr:
		return []Value{n.SrcArr, n.SrcI, n.SrcV}
	case *NewTable:
		return []Value{n.SrcSize}
	case *GetTable:
		return []Value{n.SrcTab, n.SrcK}
	case *SetTable:
		return []Value{n.SrcTab, n.SrcK, n.SrcV}
	case *NewRecord:
		return nil
	case *GetField:
		return []Value{n.SrcRec}
	case *SetField:
		return []Value{n.SrcRec, n.SrcV}
	case *NewClosure:
		return nil
	case *InitUpvalues:
		srcs := make([]Value, 0, len(n.Srcs)+1)
		srcs = append(srcs, n.SrcF)
		srcs = append(srcs, n.Srcs...)
		return srcs
	case *CallStatic:
		srcs := make([]Value, 0, len(n.Srcs)+1)
		srcs = append(srcs, n.SrcF)
		srcs = append(srcs, n.Srcs...)
		return srcs
	case *CallDyn:
		srcs := make([]Value, 0, len(n.Srcs)+1)
		srcs = append(srcs, n.SrcF)
		srcs = append(srcs, n.Srcs...)
		return srcs
	case *RuntimeError:
		return nil
	case *Builtin:
		return n.Srcs
	case *Return:
		return n.Srcs
	case *If:
		return []Value{n.Cond}
	case *For:
		return []Value{n.Start, n.Limit, n.Step}
	default:
		return nil
	}
}

// GetDsts returns every local id a Cmd writes to, in field order. A
// NoDst entry in a Dsts slice (CallStatic/CallDyn/Builtin) is preserved
// as-is: callers that care whether a particular return value is kept
// must check against NoDst themselves.
func GetDsts(c Cmd) []int {
	switch n := c.(type) {
	case *Move:
		return []int{n.Dst}
	case *Unop:
		return []int{n.Dst}
	case *Binop:
		return []int{n.Dst}
	case *Concat:
		return []int{n.Dst}
	case *ToFloat:
		return []int{n.Dst}
	case *ToDyn:
		return []int{n.Dst}
	case *FromDyn:
		return []int{n.Dst}
	case *IsTruthy:
		return []int{n.Dst}
	case *IsNil:
		return []int{n.Dst}
	case *NewArr:
		return []int{n.Dst}
	case *GetArr:
		return []int{n.Dst}
	case *SetArr:
		return nil
	case *NewTable:
		return []int{n.Dst}
	case *GetTable:
		return []int{n.Dst}
	case *SetTable:
		return nil
	case *NewRecord:
		return []int{n.Dst}
	case *GetField:
		return []int{n.Dst}
	case *SetField:
		return nil
	case *NewClosure:
		return []int{n.Dst}
	case *InitUpvalues:
		return nil
	case *CallStatic:
		return n.Dsts
	case *CallDyn:
		return n.Dsts
	case *RuntimeError:
		return nil
	case *Builtin:
		return n.Dsts
	case *Return:
		return nil
	case *For:
		return []int{n.Dst}
	default:
		return nil
	}
}
