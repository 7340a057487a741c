package ir

import "github.com/sirupsen/logrus"

// Verify checks the structural invariants a Module must hold after
// construction (or after lowering) and returns every violation found. A
// nil/empty result means m is well-formed; Verify never mutates m.
//
// Checks, in order:
//  1. every local/upvalue id a Cmd's GetSrcs/GetDsts references is
//     within the owning Function's Vars/CapturedVars bounds
//  2. every Builtin's Srcs/Dsts lengths match BuiltinArities
//  3. for a lowered Function (len(Blocks) > 0), block 0 is the reserved
//     empty entry and the last block is the reserved empty exit
//  4. every Next/JmpFalse target is a valid block index
func Verify(m *Module) []error {
	var errs []error
	for fid, fn := range m.Functions {
		errs = append(errs, verifyFunction(fid, fn)...)
	}
	if len(errs) > 0 {
		logrus.WithField("violations", len(errs)).Warn("ir: module failed verification")
	}
	return errs
}

func verifyFunction(fid int, fn *Function) []error {
	var errs []error

	if fn.Body != nil {
		for _, c := range Flatten(fn.Body) {
			errs = append(errs, verifyCmd(fid, fn, c)...)
		}
	}

	if len(fn.Blocks) == 0 {
		return errs
	}

	if err := assertTrue(len(fn.Blocks[0].Cmds) == 0 && fn.Blocks[0].Next == 1,
		"function %d: block 0 must be the reserved empty entry block", fid); err != nil {
		errs = append(errs, err)
	}
	last := len(fn.Blocks) - 1
	if err := assertTrue(len(fn.Blocks[last].Cmds) == 0 && fn.Blocks[last].Next == -1,
		"function %d: block %d must be the reserved empty exit block", fid, last); err != nil {
		errs = append(errs, err)
	}

	for i, bb := range fn.Blocks {
		if bb.Next != -1 {
			if err := assertTrue(bb.Next >= 0 && bb.Next < len(fn.Blocks),
				"function %d: block %d has out-of-range Next %d", fid, i, bb.Next); err != nil {
				errs = append(errs, err)
			}
		}
		if bb.JmpFalse != nil {
			if err := assertTrue(bb.JmpFalse.Target >= 0 && bb.JmpFalse.Target < len(fn.Blocks),
				"function %d: block %d has out-of-range JmpFalse target %d", fid, i, bb.JmpFalse.Target); err != nil {
				errs = append(errs, err)
			}
		}
		for _, c := range bb.Cmds {
			errs = append(errs, verifyCmd(fid, fn, c)...)
		}
	}

	return errs
}

func verifyCmd(fid int, fn *Function, c Cmd) []error {
	var errs []error

	for _, src := range GetSrcs(c) {
		if err := verifyValue(fid, fn, src); err != nil {
			errs = append(errs, err)
		}
	}
	for _, dst := range GetDsts(c) {
		if dst == NoDst {
			continue
		}
		if err := assertTrue(dst >= 1 && dst <= len(fn.Vars),
			"function %d: dst v%d out of range (%d locals)", fid, dst, len(fn.Vars)); err != nil {
			errs = append(errs, err)
		}
	}

	if b, ok := c.(*Builtin); ok {
		arity, known := BuiltinArities[b.Op]
		if err := assertTrue(known, "function %d: unknown builtin %q", fid, b.Op); err != nil {
			errs = append(errs, err)
		} else {
			if err := assertTrue(len(b.Srcs) == arity.Srcs,
				"function %d: builtin %q wants %d srcs, got %d", fid, b.Op, arity.Srcs, len(b.Srcs)); err != nil {
				errs = append(errs, err)
			}
			if err := assertTrue(len(b.Dsts) == arity.Dsts,
				"function %d: builtin %q wants %d dsts, got %d", fid, b.Op, arity.Dsts, len(b.Dsts)); err != nil {
				errs = append(errs, err)
			}
		}
	}

	return errs
}

func verifyValue(fid int, fn *Function, v Value) error {
	switch val := v.(type) {
	case LocalVar:
		return assertTrue(val.ID >= 1 && val.ID <= len(fn.Vars),
			"function %d: v%d out of range (%d locals)", fid, val.ID, len(fn.Vars))
	case Upvalue:
		return assertTrue(val.ID >= 1 && val.ID <= len(fn.CapturedVars),
			"function %d: u%d out of range (%d upvalues)", fid, val.ID, len(fn.CapturedVars))
	default:
		return nil
	}
}
