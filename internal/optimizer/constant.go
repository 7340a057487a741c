package optimizer

import "github.com/hassan/tlcore/internal/ir"

// CleanPass applies ir.Clean's algebraic simplifications — Seq
// flattening, Nop elision, and If-on-constant-Bool folding — to fn.Body.
//
// This runs first in the default pipeline. It rewrites only fn.Body: a
// Blocks graph already lowered from the old Body is left as it was.
// Binop's operands are always already-reduced
// leaves by the time the frontend builds this IR, so there's no
// arithmetic left to fold at this layer — what's left to simplify is
// control flow (If) and structure (Seq), which is exactly what Clean
// does.
type CleanPass struct{}

// Name returns the name of this optimization pass.
func (c *CleanPass) Name() string { return "Clean" }

// Run simplifies fn.Body in place.
func (c *CleanPass) Run(fn *ir.Function) error {
	if fn.Body == nil {
		return nil
	}
	fn.Body = ir.Clean(fn.Body)
	return nil
}
