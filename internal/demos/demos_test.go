package demos

import (
	"testing"

	"github.com/hassan/tlcore/internal/ir"
)

func TestAllDemosVerifyCleanly(t *testing.T) {
	for name, ctor := range Registry {
		t.Run(name, func(t *testing.T) {
			if errs := ir.Verify(ctor()); len(errs) != 0 {
				t.Fatalf("demo %q failed verification: %v", name, errs)
			}
		})
	}
}

func TestMinimalHasThreeBlocks(t *testing.T) {
	m := Minimal()
	fn := m.Functions[0]
	if len(fn.Blocks) != 3 {
		t.Fatalf("want 3 blocks, got %d", len(fn.Blocks))
	}
}

func TestBreakInLoopEndsWithReservedExit(t *testing.T) {
	m := BreakInLoop()
	fn := m.Functions[0]
	last := fn.Blocks[len(fn.Blocks)-1]
	if len(last.Cmds) != 0 || last.Next != -1 {
		t.Fatalf("want the reserved empty exit block last, got %+v", last)
	}
}
