package optimizer

import "github.com/hassan/tlcore/internal/ir"

// DeadBlockEliminationPass removes basic blocks unreachable from block 0
// once a Function has been lowered (ir.GenerateBasicBlocks run), except
// the reserved exit block, which is always kept as the last block. A
// no-op on a Function still in tree form (Blocks is empty).
//
// Uses a DFS-with-explicit-stack reachability walk over this IR's
// index-addressed Next/JmpFalse edges, which means removal also has to
// renumber every surviving block's Next/JmpFalse.Target.
type DeadBlockEliminationPass struct{}

// Name returns the name of this optimization pass.
func (d *DeadBlockEliminationPass) Name() string { return "DeadBlockElimination" }

// Run drops every block in fn.Blocks unreachable from block 0, other than
// the reserved exit block, and renumbers the survivors' Next/JmpFalse
// edges to match.
func (d *DeadBlockEliminationPass) Run(fn *ir.Function) error {
	if len(fn.Blocks) == 0 {
		return nil
	}

	reachable := make(map[int]bool)
	stack := []int{0}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if reachable[cur] {
			continue
		}
		reachable[cur] = true

		bb := fn.Blocks[cur]
		if bb.Next != -1 && !reachable[bb.Next] {
			stack = append(stack, bb.Next)
		}
		if bb.JmpFalse != nil && !reachable[bb.JmpFalse.Target] {
			stack = append(stack, bb.JmpFalse.Target)
		}
	}
	// The last block is the reserved exit block; it stays even when no
	// edge reaches it (a body that always returns).
	reachable[len(fn.Blocks)-1] = true

	if len(reachable) == len(fn.Blocks) {
		return nil
	}

	remap := make(map[int]int, len(reachable))
	kept := make([]ir.BasicBlock, 0, len(reachable))
	for old := 0; old < len(fn.Blocks); old++ {
		if !reachable[old] {
			continue
		}
		remap[old] = len(kept)
		kept = append(kept, fn.Blocks[old])
	}

	for i := range kept {
		if kept[i].Next != -1 {
			kept[i].Next = remap[kept[i].Next]
		}
		if kept[i].JmpFalse != nil {
			kept[i].JmpFalse.Target = remap[kept[i].JmpFalse.Target]
		}
	}

	fn.Blocks = kept
	return nil
}
