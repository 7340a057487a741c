package ir

import (
	"github.com/hassan/tlcore/internal/source"
	"github.com/hassan/tlcore/internal/types"
)

// Module is the root container produced by a single compilation: every
// function and record type the unit defines, plus its global variables.
// A Module is built incrementally by AddFunction/AddRecordType/AddGlobal
// and is not safe for concurrent mutation.
type Module struct {
	Functions   []*Function
	RecordTypes []types.Handle

	// Globals holds one VarDecl per module-level variable, eagerly
	// allocated by NewModule: eager matches how RecordTypes/Functions
	// are both plain slices the caller
	// appends to, so Globals gets the same shape instead of a special
	// lazy-init path).
	Globals []VarDecl

	// Exported names the functions and globals visible outside this
	// compilation unit, indexed by position into Functions/Globals.
	ExportedFunctions []int
	ExportedGlobals   []int
}

// NewModule returns an empty Module ready for incremental construction.
func NewModule() *Module {
	return &Module{Globals: make([]VarDecl, 0)}
}

// AddRecordType registers a record type definition and returns its handle.
func (m *Module) AddRecordType(rt types.Handle) types.Handle {
	m.RecordTypes = append(m.RecordTypes, rt)
	return rt
}

// AddFunction appends fn and returns its function id (FID), the index
// NewClosure/InitUpvalues/CallStatic use to refer back to it.
func (m *Module) AddFunction(fn *Function) int {
	m.Functions = append(m.Functions, fn)
	return len(m.Functions) - 1
}

// AddGlobal declares a new module-level variable and returns its index
// into Globals.
func (m *Module) AddGlobal(decl VarDecl) int {
	m.Globals = append(m.Globals, decl)
	return len(m.Globals) - 1
}

// AddExportedFunction marks the function at index fid as visible outside
// this compilation unit.
func (m *Module) AddExportedFunction(fid int) {
	m.ExportedFunctions = append(m.ExportedFunctions, fid)
}

// AddExportedGlobal marks the global at index gid as visible outside
// this compilation unit.
func (m *Module) AddExportedGlobal(gid int) {
	m.ExportedGlobals = append(m.ExportedGlobals, gid)
}

// VarDecl names a declared variable's static type and source location.
// Both Function.Vars/CapturedVars and Module.Globals are built from this.
type VarDecl struct {
	Loc  source.Loc
	Name string
	Typ  types.Handle
}

// JmpFalse is the conditional edge a BasicBlock takes when its Cond
// value is falsy; the unconditional fallthrough edge is BasicBlock.Next.
type JmpFalse struct {
	Cond   Value
	Target int
}

// BasicBlock is one node of the flat control-flow graph GenerateBasicBlocks
// produces from a Function's Body tree. Cmds never contains a
// nested Seq/If/Loop/For — those are lowered away; only straight-line
// commands remain.
type BasicBlock struct {
	Cmds []Cmd

	// Next is the fallthrough successor's block index, or -1 if this
	// block has no unconditional successor (e.g. the exit block, or a
	// block ending in Return/RuntimeError).
	Next int

	// JmpFalse is the conditional-branch edge, present only on blocks
	// lowered from an If condition. Nil otherwise.
	JmpFalse *JmpFalse
}

// Function is a single function definition: its signature (via Typ),
// parameter/upvalue/local variable tables, and either a Body tree (before
// lowering) or a Blocks graph (after GenerateBasicBlocks runs).
type Function struct {
	Loc  source.Loc
	Name string
	Typ  types.Handle

	// Vars holds every local variable declared in this function,
	// including parameters, addressed by v_id = index+1 (v_id 0 is
	// reserved as the NoDst sentinel — see cmd.go).
	Vars []VarDecl

	// CapturedVars holds the upvalues this function closes over,
	// addressed by u_id = index+1 the same way.
	CapturedVars []VarDecl

	// NumParams is a prefix of Vars: Vars[0:NumParams] are the
	// function's parameters, in declaration order.
	NumParams int

	// Body is the tree-form command this function runs, present before
	// lowering. GenerateBasicBlocks reads it to populate Blocks and
	// leaves it in place, so a lowered Function carries both.
	Body Cmd

	// Blocks is the flat control-flow graph GenerateBasicBlocks produces.
	// Blocks[0] is always the reserved empty entry block and
	// Blocks[len(Blocks)-1] is always the reserved empty exit block.
	Blocks []BasicBlock
}

// AddLocal declares a new local variable and returns its v_id.
//
// DESIGN CHOICE: this is a flat append-and-return-index, not a lookup
// through a lexical scope tree — the frontend has already resolved names
// to slots during semantic analysis, so by the time code reaches the IR
// there is nothing left to look up.
func (f *Function) AddLocal(decl VarDecl) int {
	f.Vars = append(f.Vars, decl)
	return len(f.Vars)
}

// AddUpvalue declares a new captured variable and returns its u_id.
func (f *Function) AddUpvalue(decl VarDecl) int {
	f.CapturedVars = append(f.CapturedVars, decl)
	return len(f.CapturedVars)
}

// ArgVar returns the LocalVar referencing the i'th parameter (0-based).
// It asserts i is within [0, NumParams) — an out-of-range parameter
// index is a bug in the caller, not a condition to recover from.
func (f *Function) ArgVar(i int) LocalVar {
	if err := assertTrue(i >= 0 && i < f.NumParams,
		"ArgVar: index %d out of range [0, %d)", i, f.NumParams); err != nil {
		panic(err)
	}
	return LocalVar{ID: i + 1}
}
