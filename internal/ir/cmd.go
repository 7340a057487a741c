package ir

import (
	"github.com/hassan/tlcore/internal/source"
	"github.com/hassan/tlcore/internal/types"
)

// NoDst marks an absent destination slot in a Dsts list (an unused or
// void return). Valid local ids start at 1 and are strictly monotonic per
// container, so 0 is a safe sentinel.
const NoDst = 0

// Cmd is an effectful or control-flow node — the body of a Function is a
// tree of commands. A Cmd is three-address: none of its operand fields
// may contain another Cmd or a nested expression; every computation
// names its destination explicitly.
//
// DESIGN CHOICE: like Value, a sealed interface with a Tag() method. The
// generic accessors (GetSrcs/GetDsts in getters.go) are centralized type
// switches rather than per-variant methods — reflection-free hand-written
// dispatch is allowed here, and a single switch is where
// every later pass (pretty-printer, iterator, lowering) already has to
// look, so duplicating that ladder across a Result()-style method on
// each of the thirty-odd variants would just be more places for a new
// variant to be missed.
type Cmd interface {
	// Tag returns the stable tag string for this command
	// (e.g. "ir.Cmd.Move"), used by backends and diagnostics.
	Tag() string

	sealedCmd()
}

// ---- Variables ----

// Move copies Src into Dst.
type Move struct {
	Loc source.Loc
	Dst int
	Src Value
}

func (*Move) Tag() string { return "ir.Cmd.Move" }
func (*Move) sealedCmd()  {}

// ---- Primitive arithmetic ----

// Unop applies a unary operator.
type Unop struct {
	Loc source.Loc
	Dst int
	Op  Op
	Src Value
}

func (*Unop) Tag() string { return "ir.Cmd.Unop" }
func (*Unop) sealedCmd()  {}

// Binop applies a binary operator.
type Binop struct {
	Loc        source.Loc
	Dst        int
	Op         Op
	Src1, Src2 Value
}

func (*Binop) Tag() string { return "ir.Cmd.Binop" }
func (*Binop) sealedCmd()  {}

// Concat concatenates a sequence of string-typed values.
type Concat struct {
	Loc  source.Loc
	Dst  int
	Srcs []Value
}

func (*Concat) Tag() string { return "ir.Cmd.Concat" }
func (*Concat) sealedCmd()  {}

// ToFloat converts an integer-typed Src to a float-typed Dst.
type ToFloat struct {
	Loc source.Loc
	Dst int
	Src Value
}

func (*ToFloat) Tag() string { return "ir.Cmd.ToFloat" }
func (*ToFloat) sealedCmd()  {}

// ---- Dynamic boxing ----

// ToDyn boxes a statically-typed Src (of type SrcTyp) as a dynamic value.
type ToDyn struct {
	Loc    source.Loc
	SrcTyp types.Handle
	Dst    int
	Src    Value
}

func (*ToDyn) Tag() string { return "ir.Cmd.ToDyn" }
func (*ToDyn) sealedCmd()  {}

// FromDyn narrows a dynamic Src to the statically-typed DstTyp.
type FromDyn struct {
	Loc    source.Loc
	DstTyp types.Handle
	Dst    int
	Src    Value
}

func (*FromDyn) Tag() string { return "ir.Cmd.FromDyn" }
func (*FromDyn) sealedCmd()  {}

// IsTruthy tests a dynamic value's truthiness per host-language rules.
type IsTruthy struct {
	Loc source.Loc
	Dst int
	Src Value
}

func (*IsTruthy) Tag() string { return "ir.Cmd.IsTruthy" }
func (*IsTruthy) sealedCmd()  {}

// IsNil tests whether a dynamic value is nil.
type IsNil struct {
	Loc source.Loc
	Dst int
	Src Value
}

func (*IsNil) Tag() string { return "ir.Cmd.IsNil" }
func (*IsNil) sealedCmd()  {}

// ---- Arrays ----

// NewArr allocates a new array of the given size.
type NewArr struct {
	Loc     source.Loc
	Dst     int
	SrcSize Value
}

func (*NewArr) Tag() string { return "ir.Cmd.NewArr" }
func (*NewArr) sealedCmd()  {}

// GetArr reads SrcArr[SrcI] (elements of type DstTyp) into Dst.
type GetArr struct {
	Loc             source.Loc
	DstTyp          types.Handle
	Dst             int
	SrcArr, SrcI    Value
}

func (*GetArr) Tag() string { return "ir.Cmd.GetArr" }
func (*GetArr) sealedCmd()  {}

// SetArr writes SrcV (of type SrcTyp) into SrcArr[SrcI].
type SetArr struct {
	Loc                  source.Loc
	SrcTyp               types.Handle
	SrcArr, SrcI, SrcV Value
}

func (*SetArr) Tag() string { return "ir.Cmd.SetArr" }
func (*SetArr) sealedCmd()  {}

// ---- Tables ----

// NewTable allocates a new table hinting at the given initial size.
type NewTable struct {
	Loc     source.Loc
	Dst     int
	SrcSize Value
}

func (*NewTable) Tag() string { return "ir.Cmd.NewTable" }
func (*NewTable) sealedCmd()  {}

// GetTable reads SrcTab[SrcK] (values of type DstTyp) into Dst.
type GetTable struct {
	Loc            source.Loc
	DstTyp         types.Handle
	Dst            int
	SrcTab, SrcK   Value
}

func (*GetTable) Tag() string { return "ir.Cmd.GetTable" }
func (*GetTable) sealedCmd()  {}

// SetTable writes SrcV (of type SrcTyp) into SrcTab[SrcK].
type SetTable struct {
	Loc                  source.Loc
	SrcTyp               types.Handle
	SrcTab, SrcK, SrcV Value
}

func (*SetTable) Tag() string { return "ir.Cmd.SetTable" }
func (*SetTable) sealedCmd()  {}

// ---- Records ----

// NewRecord allocates a new instance of RecTyp.
type NewRecord struct {
	Loc     source.Loc
	RecTyp  types.Handle
	Dst     int
}

func (*NewRecord) Tag() string { return "ir.Cmd.NewRecord" }
func (*NewRecord) sealedCmd()  {}

// GetField reads SrcRec.FieldName into Dst.
type GetField struct {
	Loc       source.Loc
	RecTyp    types.Handle
	Dst       int
	SrcRec    Value
	FieldName string
}

func (*GetField) Tag() string { return "ir.Cmd.GetField" }
func (*GetField) sealedCmd()  {}

// SetField writes SrcV into SrcRec.FieldName.
type SetField struct {
	Loc       source.Loc
	RecTyp    types.Handle
	SrcRec    Value
	FieldName string
	SrcV      Value
}

func (*SetField) Tag() string { return "ir.Cmd.SetField" }
func (*SetField) sealedCmd()  {}

// ---- Functions ----

// NewClosure names a freshly-created closure over function FID, before
// its upvalue vector is populated. Split from InitUpvalues so self- and
// mutually-recursive closures need no back-patch step.
type NewClosure struct {
	Loc source.Loc
	Dst int
	FID int
}

func (*NewClosure) Tag() string { return "ir.Cmd.NewClosure" }
func (*NewClosure) sealedCmd()  {}

// InitUpvalues populates SrcF's (function id FID) upvalue vector.
type InitUpvalues struct {
	Loc  source.Loc
	SrcF Value
	Srcs []Value
	FID  int
}

func (*InitUpvalues) Tag() string { return "ir.Cmd.InitUpvalues" }
func (*InitUpvalues) sealedCmd()  {}

// CallStatic calls a known function (FTyp is its signature). Dsts has
// one entry per return slot; NoDst discards that slot.
type CallStatic struct {
	Loc  source.Loc
	FTyp types.Handle
	Dsts []int
	SrcF Value
	Srcs []Value
}

func (*CallStatic) Tag() string { return "ir.Cmd.CallStatic" }
func (*CallStatic) sealedCmd()  {}

// CallDyn calls a callee known only as a dynamic value.
type CallDyn struct {
	Loc  source.Loc
	Dsts []int
	SrcF Value
	Srcs []Value
}

func (*CallDyn) Tag() string { return "ir.Cmd.CallDyn" }
func (*CallDyn) sealedCmd()  {}

// ---- Diagnostics ----

// RuntimeError terminates execution with Msg. This is IR data, not a Go
// error: it is emitted as an instruction the target raises when run.
type RuntimeError struct {
	Loc source.Loc
	Msg string
}

func (*RuntimeError) Tag() string { return "ir.Cmd.RuntimeError" }
func (*RuntimeError) sealedCmd()  {}

// ---- Builtins ----

// Builtin invokes one operation from the closed host-library enumeration
// (builtin.go). Dsts entries may be NoDst for a discarded return value.
type Builtin struct {
	Loc  source.Loc
	Op   BuiltinOp
	Dsts []int
	Srcs []Value
}

func (*Builtin) Tag() string { return "ir.Cmd.Builtin" }
func (*Builtin) sealedCmd()  {}

// ---- Structured control flow ----

// Nop does nothing. `clean` uses it as the identity element for Seq.
type Nop struct{}

func (*Nop) Tag() string { return "ir.Cmd.Nop" }
func (*Nop) sealedCmd()  {}

// Seq runs its children in order. It is the only variant besides
// If/Loop/For that contains child commands.
type Seq struct {
	Cmds []Cmd
}

func (*Seq) Tag() string { return "ir.Cmd.Seq" }
func (*Seq) sealedCmd()  {}

// Return returns Srcs (one Value per declared return).
type Return struct {
	Loc  source.Loc
	Srcs []Value
}

func (*Return) Tag() string { return "ir.Cmd.Return" }
func (*Return) sealedCmd()  {}

// Break exits the nearest enclosing Loop. Lowering resolves its target
// via the break stack; at the tree level it names no block.
type Break struct{}

func (*Break) Tag() string { return "ir.Cmd.Break" }
func (*Break) sealedCmd()  {}

// Loop runs Body forever, until a Break or RuntimeError inside it exits.
type Loop struct {
	Body Cmd
}

func (*Loop) Tag() string { return "ir.Cmd.Loop" }
func (*Loop) sealedCmd()  {}

// If runs Then when Cond is truthy, Else otherwise.
type If struct {
	Loc       source.Loc
	Cond      Value
	Then, Else Cmd
}

func (*If) Tag() string { return "ir.Cmd.If" }
func (*If) sealedCmd()  {}

// For counts Dst from Start to Limit by Step (which must not be zero;
// lowering expands the zero-step check and the loop itself).
type For struct {
	Loc                       source.Loc
	Dst                       int
	Start, Limit, Step Value
	Body                      Cmd
}

func (*For) Tag() string { return "ir.Cmd.For" }
func (*For) sealedCmd()  {}

// ---- GC hook ----

// CheckGC marks an allocation-safe point where the host garbage
// collector may run.
type CheckGC struct{}

func (*CheckGC) Tag() string { return "ir.Cmd.CheckGC" }
func (*CheckGC) sealedCmd()  {}
