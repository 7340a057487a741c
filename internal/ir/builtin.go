package ir

// BuiltinOp is a tag drawn from the closed enumeration of host-library
// operations the typed front end is allowed to call directly instead of
// going through a generic dynamic call.
type BuiltinOp string

const (
	BuiltinIoWrite     BuiltinOp = "BuiltinIoWrite"
	BuiltinMathAbs     BuiltinOp = "BuiltinMathAbs"
	BuiltinMathCeil    BuiltinOp = "BuiltinMathCeil"
	BuiltinMathFloor   BuiltinOp = "BuiltinMathFloor"
	BuiltinMathFmod    BuiltinOp = "BuiltinMathFmod"
	BuiltinMathExp     BuiltinOp = "BuiltinMathExp"
	BuiltinMathLn      BuiltinOp = "BuiltinMathLn"
	BuiltinMathLog     BuiltinOp = "BuiltinMathLog"
	BuiltinMathModf    BuiltinOp = "BuiltinMathModf"
	BuiltinMathPow     BuiltinOp = "BuiltinMathPow"
	BuiltinMathSqrt    BuiltinOp = "BuiltinMathSqrt"
	BuiltinStringChar  BuiltinOp = "BuiltinStringChar"
	BuiltinStringSub   BuiltinOp = "BuiltinStringSub"
	BuiltinType        BuiltinOp = "BuiltinType"
	BuiltinTostring    BuiltinOp = "BuiltinTostring"
)

// BuiltinArity describes the fixed source/destination counts of one
// builtin. A backend (or Verify, see verify.go) can check a Builtin
// command's Srcs/Dsts lengths against this table instead of re-deriving
// arity rules from prose at each call site.
type BuiltinArity struct {
	Srcs int
	Dsts int
}

// BuiltinArities is indexed by BuiltinOp. Variadic builtins (none in the
// closed enumeration above) would use -1; every current entry is fixed.
var BuiltinArities = map[BuiltinOp]BuiltinArity{
	BuiltinIoWrite:    {Srcs: 1, Dsts: 0},
	BuiltinMathAbs:    {Srcs: 1, Dsts: 1},
	BuiltinMathCeil:   {Srcs: 1, Dsts: 1},
	BuiltinMathFloor:  {Srcs: 1, Dsts: 1},
	BuiltinMathFmod:   {Srcs: 2, Dsts: 1},
	BuiltinMathExp:    {Srcs: 1, Dsts: 1},
	BuiltinMathLn:     {Srcs: 1, Dsts: 1},
	BuiltinMathLog:    {Srcs: 2, Dsts: 1},
	BuiltinMathModf:   {Srcs: 1, Dsts: 2},
	BuiltinMathPow:    {Srcs: 2, Dsts: 1},
	BuiltinMathSqrt:   {Srcs: 1, Dsts: 1},
	BuiltinStringChar: {Srcs: 1, Dsts: 1},
	BuiltinStringSub:  {Srcs: 3, Dsts: 1},
	BuiltinType:       {Srcs: 1, Dsts: 1},
	BuiltinTostring:   {Srcs: 1, Dsts: 1},
}
