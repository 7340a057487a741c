// Package ir implements the intermediate representation core: a closed
// sum-type algebra of values and commands in three-address form, per-
// function variable tables with stable numeric identities, generic tree
// traversal/rewriting/simplification, and basic-block lowering.
//
// DESIGN PHILOSOPHY:
// - Every node declares its own tag string for backend dispatch and
//   diagnostics. Generic passes (pretty-printing, operand-discipline
//   checks) read operands through the GetSrcs/GetDsts type switches in
//   getters.go, which return nil for a variant they do not list.
// - Nesting of operands is forbidden: every Value is a leaf, every Cmd
//   names its destination(s) explicitly. This is what makes `get_srcs`/
//   `get_dsts` a sufficient substrate for every later pass.
package ir

import "fmt"

// Value is a side-effect-free IR operand: a literal, a local reference,
// or an upvalue reference. Unlike Cmd, a Value never has a destination
// and never appears nested inside another Value.
//
// DESIGN CHOICE: sealed interface with a Tag() method rather than a
// single struct with a Kind enum, because each variant's payload differs
// (LocalVar carries an id, String carries a string, Nil carries nothing)
// and a Go type switch is the idiomatic way to dispatch on that payload.
type Value interface {
	fmt.Stringer

	// Tag returns the stable tag string used for backend dispatch and
	// diagnostics (e.g. "ir.Value.Integer").
	Tag() string

	sealedValue()
}

// Nil is the literal nil value.
type Nil struct{}

func (Nil) String() string { return "nil" }
func (Nil) Tag() string    { return "ir.Value.Nil" }
func (Nil) sealedValue()   {}

// Bool is a boolean literal.
type Bool struct {
	Value bool
}

func (v Bool) String() string { return fmt.Sprintf("%t", v.Value) }
func (Bool) Tag() string      { return "ir.Value.Bool" }
func (Bool) sealedValue()     {}

// Integer is an integer literal.
type Integer struct {
	Value int64
}

func (v Integer) String() string { return fmt.Sprintf("%d", v.Value) }
func (Integer) Tag() string      { return "ir.Value.Integer" }
func (Integer) sealedValue()     {}

// Float is a floating-point literal.
type Float struct {
	Value float64
}

func (v Float) String() string { return fmt.Sprintf("%g", v.Value) }
func (Float) Tag() string      { return "ir.Value.Float" }
func (Float) sealedValue()     {}

// String is a string literal.
type String struct {
	Value string
}

func (v String) String() string { return fmt.Sprintf("%q", v.Value) }
func (String) Tag() string      { return "ir.Value.String" }
func (String) sealedValue()     {}

// LocalVar references a local variable by its v_id (index+1 into the
// owning Function's Vars table).
type LocalVar struct {
	ID int
}

func (v LocalVar) String() string { return fmt.Sprintf("v%d", v.ID) }
func (LocalVar) Tag() string      { return "ir.Value.LocalVar" }
func (LocalVar) sealedValue()     {}

// Upvalue references a captured variable by its u_id (index+1 into the
// owning Function's CapturedVars table).
type Upvalue struct {
	ID int
}

func (v Upvalue) String() string { return fmt.Sprintf("u%d", v.ID) }
func (Upvalue) Tag() string      { return "ir.Value.Upvalue" }
func (Upvalue) sealedValue()     {}
