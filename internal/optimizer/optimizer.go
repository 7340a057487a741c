package optimizer

import (
	"fmt"

	"github.com/hassan/tlcore/internal/ir"
)

// Pass represents an optimization pass that can be applied to IR.
//
// DESIGN CHOICE: interface-based, one transformation per implementation,
// so passes can be reordered, disabled, or added without touching the
// Optimizer that drives them.
type Pass interface {
	// Name returns a human-readable name for this pass.
	Name() string

	// Run executes this pass on fn, mutating it in place.
	Run(fn *ir.Function) error
}

// Optimizer coordinates the execution of optimization passes over a
// whole Module, one function at a time.
type Optimizer struct {
	passes  []Pass
	verbose bool
}

// NewOptimizer returns an Optimizer configured with the default pass
// order: algebraic simplification, then dead-block elimination. The two
// work on different forms: CleanPass rewrites fn.Body, while
// DeadBlockEliminationPass works on fn.Blocks as already lowered, which
// CleanPass does not regenerate.
func NewOptimizer() *Optimizer {
	return &Optimizer{
		passes: []Pass{
			&CleanPass{},
			&DeadBlockEliminationPass{},
		},
	}
}

// AddPass appends a custom pass to the pipeline.
func (o *Optimizer) AddPass(pass Pass) {
	o.passes = append(o.passes, pass)
}

// SetVerbose enables per-pass logging via logrus (see log.go).
func (o *Optimizer) SetVerbose(verbose bool) {
	o.verbose = verbose
}

// Optimize runs every pass, in order, over every function in module.
func (o *Optimizer) Optimize(module *ir.Module) error {
	for _, fn := range module.Functions {
		if err := o.OptimizeFunction(fn); err != nil {
			return fmt.Errorf("optimizing function %s: %w", fn.Name, err)
		}
	}
	return nil
}

// OptimizeFunction runs every configured pass once, in sequence, over fn.
func (o *Optimizer) OptimizeFunction(fn *ir.Function) error {
	for _, pass := range o.passes {
		if o.verbose {
			logVerbose(pass.Name(), fn.Name)
		}
		if err := pass.Run(fn); err != nil {
			return fmt.Errorf("pass %s: %w", pass.Name(), err)
		}
	}
	return nil
}
