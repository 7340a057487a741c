package ir

import (
	"github.com/sirupsen/logrus"

	"github.com/hassan/tlcore/internal/types"
)

// GenerateBasicBlocks builds fn.Blocks from fn.Body (a structured tree of
// Seq/If/Loop/For): a flat control-flow graph of straight-line
// commands connected by Next (fallthrough) and JmpFalse (conditional)
// edges. Block 0 is always the reserved empty entry block and
// the last block is always the reserved empty exit block; fn.Body is
// left untouched (callers that want the tree form can still read it).
func GenerateBasicBlocks(fn *Function) {
	lw := &lowerer{fn: fn}
	entry := lw.newBlock()
	start := lw.newBlock()
	lw.blocks[entry].Next = start

	end := lw.lower(fn.Body, start)

	exit := lw.newBlock()
	if end != -1 {
		lw.blocks[end].Next = exit
	}

	fn.Blocks = lw.blocks
	logrus.WithFields(logrus.Fields{
		"function": fn.Name,
		"blocks":   len(fn.Blocks),
	}).Debug("ir: lowered function to basic blocks")
}

// breakFrame collects the blocks a Break inside the current Loop ends
// on. They're left unresolved (no Next) until the loop finishes lowering
// and its after-block exists, at which point lowerLoop patches all of
// them at once.
type breakFrame struct {
	pending []int
}

type lowerer struct {
	fn         *Function
	blocks     []BasicBlock
	breakStack []*breakFrame
}

func (lw *lowerer) newBlock() int {
	lw.blocks = append(lw.blocks, BasicBlock{Next: -1})
	return len(lw.blocks) - 1
}

func (lw *lowerer) emit(block int, c Cmd) {
	lw.blocks[block].Cmds = append(lw.blocks[block].Cmds, c)
}

// lower appends c's effect to block cur and returns the index of the
// block where control continues afterward, or -1 if c never falls
// through (it ended in Return, RuntimeError, or Break).
func (lw *lowerer) lower(c Cmd, cur int) int {
	switch n := c.(type) {
	case nil:
		return cur
	case *Nop:
		return cur
	case *Seq:
		for _, child := range n.Cmds {
			if cur == -1 {
				// Structurally unreachable tail (code after a Return/
				// Break/RuntimeError within the same Seq); drop it
				// rather than emit into a block nothing reaches.
				break
			}
			cur = lw.lower(child, cur)
		}
		return cur
	case *Return:
		lw.emit(cur, n)
		return -1
	case *RuntimeError:
		lw.emit(cur, n)
		return -1
	case *Break:
		if len(lw.breakStack) == 0 {
			// Frontend/verify should never let this through; lower it
			// as a Return-shaped terminal instead of panicking.
			lw.emit(cur, &RuntimeError{Msg: "break outside loop"})
			return -1
		}
		frame := lw.breakStack[len(lw.breakStack)-1]
		frame.pending = append(frame.pending, cur)
		return -1
	case *If:
		return lw.lowerIf(n, cur)
	case *Loop:
		return lw.lowerLoop(n, cur)
	case *For:
		return lw.lowerFor(n, cur)
	default:
		lw.emit(cur, n)
		return cur
	}
}

// lowerIf splits cur on n.Cond: JmpFalse routes to the Else arm, the
// fallthrough Next routes to the Then arm. When Else is itself an If
// (an `elseif` cascade from the frontend), lowering it recurses directly
// into the same else-block rather than through a fresh wrapper, so a
// chain of elseifs costs one block per arm instead of one block per
// arm plus a throwaway merge for each link. The merge block is the Else
// arm's trailing block while that block is still empty; a fresh one is
// opened only when it already holds commands.
func (lw *lowerer) lowerIf(n *If, cur int) int {
	thenBlock := lw.newBlock()
	elseBlock := lw.newBlock()

	lw.blocks[cur].Next = thenBlock
	lw.blocks[cur].JmpFalse = &JmpFalse{Cond: n.Cond, Target: elseBlock}

	thenEnd := lw.lower(n.Then, thenBlock)
	elseEnd := lw.lower(n.Else, elseBlock)

	if thenEnd == -1 && elseEnd == -1 {
		return -1
	}

	merge := elseEnd
	if merge == -1 || len(lw.blocks[merge].Cmds) > 0 {
		merge = lw.newBlock()
		if elseEnd != -1 {
			lw.blocks[elseEnd].Next = merge
		}
	}
	if thenEnd != -1 {
		lw.blocks[thenEnd].Next = merge
	}
	return merge
}

// lowerLoop wires cur -> header -> (body) -> header, pushing a fresh
// breakFrame so any Break reached while lowering n.Body is deferred
// until the loop's after-block is known, then patches every deferred
// Break to that block in one pass.
func (lw *lowerer) lowerLoop(n *Loop, cur int) int {
	frame := &breakFrame{}
	lw.breakStack = append(lw.breakStack, frame)

	header := lw.newBlock()
	lw.blocks[cur].Next = header

	bodyEnd := lw.lower(n.Body, header)

	lw.breakStack = lw.breakStack[:len(lw.breakStack)-1]

	if bodyEnd != -1 {
		lw.blocks[bodyEnd].Next = header
	}

	after := lw.newBlock()
	for _, b := range frame.pending {
		lw.blocks[b].Next = after
	}
	return after
}

// lowerFor expands a numeric for-loop using four fresh temporaries (the
// zero-step guard, the step-sign test, the folded loop condition and its
// negation), with n.Dst itself as the counter, and hands the resulting tree
// straight to lower/lowerLoop rather than hand-wiring blocks a second
// time. This assumes an integer counter; a float for is out of scope
// for this expansion since there is no typed frontend feeding it one.
func (lw *lowerer) lowerFor(n *For, cur int) int {
	loc := n.Loc
	stepZero := lw.fn.AddLocal(VarDecl{Loc: loc, Name: "$step_zero", Typ: types.TBool})
	isPos := lw.fn.AddLocal(VarDecl{Loc: loc, Name: "$step_pos", Typ: types.TBool})
	cond := lw.fn.AddLocal(VarDecl{Loc: loc, Name: "$for_cond", Typ: types.TBool})
	notCond := lw.fn.AddLocal(VarDecl{Loc: loc, Name: "$for_done", Typ: types.TBool})

	zero := Integer{Value: 0}
	counter := LocalVar{ID: n.Dst}

	expanded := &Seq{Cmds: []Cmd{
		&Move{Loc: loc, Dst: n.Dst, Src: n.Start},
		&Binop{Loc: loc, Dst: stepZero, Op: IntEq, Src1: n.Step, Src2: zero},
		&If{
			Loc:  loc,
			Cond: LocalVar{ID: stepZero},
			Then: &RuntimeError{Loc: loc, Msg: "'for' step is zero"},
			Else: &Nop{},
		},
		&Loop{Body: &Seq{Cmds: []Cmd{
			&Binop{Loc: loc, Dst: isPos, Op: IntGt, Src1: n.Step, Src2: zero},
			&If{
				Loc:  loc,
				Cond: LocalVar{ID: isPos},
				Then: &Binop{Loc: loc, Dst: cond, Op: IntLeq, Src1: counter, Src2: n.Limit},
				Else: &Binop{Loc: loc, Dst: cond, Op: IntGeq, Src1: counter, Src2: n.Limit},
			},
			&Unop{Loc: loc, Dst: notCond, Op: BoolNot, Src: LocalVar{ID: cond}},
			&If{
				Loc:  loc,
				Cond: LocalVar{ID: notCond},
				Then: &Break{},
				Else: &Nop{},
			},
			n.Body,
			&Binop{Loc: loc, Dst: n.Dst, Op: IntAdd, Src1: counter, Src2: n.Step},
		}}},
	}}

	return lw.lower(expanded, cur)
}
