// Package demos builds small, hand-written *ir.Module values that
// exercise the IR core end to end, standing in for a frontend this repo
// doesn't have (lexing/parsing/type-checking are out of scope). The
// CLI's build/verify subcommands operate on these named modules.
package demos

import (
	"github.com/hassan/tlcore/internal/ir"
	"github.com/hassan/tlcore/internal/source"
	"github.com/hassan/tlcore/internal/types"
)

// Registry maps a demo's command-line name to the constructor that
// builds its Module.
var Registry = map[string]func() *ir.Module{
	"minimal":  Minimal,
	"if-chain": IfChain,
	"break-in-loop": BreakInLoop,
}

func loc(line int) source.Loc {
	return source.Loc{Filename: "<demo>", Line: line, Column: 1}
}

// Minimal builds a one-function module whose body is a single Return —
// the simplest possible lowering: three blocks (reserved entry, one body
// block, reserved exit), entry.Next pointing at the body block and the
// body block having no Next of its own since Return never falls through.
func Minimal() *ir.Module {
	m := ir.NewModule()
	fn := &ir.Function{
		Loc:  loc(1),
		Name: "answer",
		Typ:  &types.Function{Rets: []types.Handle{types.TInteger}},
	}
	fn.Body = &ir.Return{Loc: loc(1), Srcs: []ir.Value{ir.Integer{Value: 42}}}
	ir.GenerateBasicBlocks(fn)
	m.AddFunction(fn)
	m.AddExportedFunction(0)
	return m
}

// IfChain builds a function whose body is an if/elseif/elseif/else
// cascade over an integer parameter, classifying it as negative, zero,
// small, or large.
func IfChain() *ir.Module {
	m := ir.NewModule()
	fn := &ir.Function{
		Loc: loc(1),
		Name: "classify",
		Typ: &types.Function{
			Params: []types.Handle{types.TInteger},
			Rets:   []types.Handle{types.TInteger},
		},
	}
	v := fn.AddLocal(ir.VarDecl{Loc: loc(1), Name: "n", Typ: types.TInteger})
	fn.NumParams = 1
	cond := fn.AddLocal(ir.VarDecl{Loc: loc(1), Name: "$cond", Typ: types.TBool})

	n := ir.LocalVar{ID: v}
	mkCond := func(op ir.Op, rhs int64) ir.Cmd {
		return &ir.Binop{Loc: loc(1), Dst: cond, Op: op, Src1: n, Src2: ir.Integer{Value: rhs}}
	}
	ret := func(code int64) ir.Cmd {
		return &ir.Return{Loc: loc(1), Srcs: []ir.Value{ir.Integer{Value: code}}}
	}

	fn.Body = &ir.Seq{Cmds: []ir.Cmd{
		mkCond(ir.IntLt, 0),
		&ir.If{
			Loc:  loc(1),
			Cond: ir.LocalVar{ID: cond},
			Then: ret(-1),
			Else: &ir.Seq{Cmds: []ir.Cmd{
				mkCond(ir.IntEq, 0),
				&ir.If{
					Loc:  loc(1),
					Cond: ir.LocalVar{ID: cond},
					Then: ret(0),
					Else: &ir.Seq{Cmds: []ir.Cmd{
						mkCond(ir.IntLt, 100),
						&ir.If{
							Loc:  loc(1),
							Cond: ir.LocalVar{ID: cond},
							Then: ret(1),
							Else: ret(2),
						},
					}},
				},
			}},
		},
	}}

	ir.GenerateBasicBlocks(fn)
	m.AddFunction(fn)
	m.AddExportedFunction(0)
	return m
}

// BreakInLoop builds a function that loops a counter up from 0, summing
// values into an accumulator, and exits early via Break once the sum
// crosses a threshold.
func BreakInLoop() *ir.Module {
	m := ir.NewModule()
	fn := &ir.Function{
		Loc:  loc(1),
		Name: "sum_until",
		Typ:  &types.Function{Rets: []types.Handle{types.TInteger}},
	}
	i := fn.AddLocal(ir.VarDecl{Loc: loc(1), Name: "i", Typ: types.TInteger})
	acc := fn.AddLocal(ir.VarDecl{Loc: loc(1), Name: "acc", Typ: types.TInteger})
	over := fn.AddLocal(ir.VarDecl{Loc: loc(1), Name: "$over", Typ: types.TBool})

	iv := ir.LocalVar{ID: i}
	accv := ir.LocalVar{ID: acc}

	fn.Body = &ir.Seq{Cmds: []ir.Cmd{
		&ir.Move{Loc: loc(1), Dst: i, Src: ir.Integer{Value: 0}},
		&ir.Move{Loc: loc(1), Dst: acc, Src: ir.Integer{Value: 0}},
		&ir.Loop{Body: &ir.Seq{Cmds: []ir.Cmd{
			&ir.Binop{Loc: loc(1), Dst: acc, Op: ir.IntAdd, Src1: accv, Src2: iv},
			&ir.Binop{Loc: loc(1), Dst: over, Op: ir.IntGeq, Src1: accv, Src2: ir.Integer{Value: 1000}},
			&ir.If{
				Loc:  loc(1),
				Cond: ir.LocalVar{ID: over},
				Then: &ir.Break{},
				Else: &ir.Nop{},
			},
			&ir.Binop{Loc: loc(1), Dst: i, Op: ir.IntAdd, Src1: iv, Src2: ir.Integer{Value: 1}},
		}}},
		&ir.Return{Loc: loc(1), Srcs: []ir.Value{accv}},
	}}

	ir.GenerateBasicBlocks(fn)
	m.AddFunction(fn)
	m.AddExportedFunction(0)
	return m
}
