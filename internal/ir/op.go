package ir

// Op is a tag drawn from the closed, typed operator vocabulary that
// Unop/Binop carry. The frontend has already picked the narrow, typed
// operator during semantic analysis; the IR never infers or widens one.
type Op string

// Integer operators.
const (
	IntAdd  Op = "IntAdd"
	IntSub  Op = "IntSub"
	IntMul  Op = "IntMul"
	IntIDiv Op = "IntIDiv"
	IntMod  Op = "IntMod"
	IntBAnd Op = "IntBAnd"
	IntBOr  Op = "IntBOr"
	IntBXor Op = "IntBXor"
	IntShl  Op = "IntShl"
	IntShr  Op = "IntShr"
	IntEq   Op = "IntEq"
	IntNeq  Op = "IntNeq"
	IntLt   Op = "IntLt"
	IntLeq  Op = "IntLeq"
	IntGt   Op = "IntGt"
	IntGeq  Op = "IntGeq"
	IntNeg  Op = "IntNeg"
	IntBNot Op = "IntBNot"
)

// Float operators.
const (
	FloatAdd Op = "FloatAdd"
	FloatSub Op = "FloatSub"
	FloatMul Op = "FloatMul"
	FloatDiv Op = "FloatDiv"
	FloatMod Op = "FloatMod"
	FloatEq  Op = "FloatEq"
	FloatNeq Op = "FloatNeq"
	FloatLt  Op = "FloatLt"
	FloatLeq Op = "FloatLeq"
	FloatGt  Op = "FloatGt"
	FloatGeq Op = "FloatGeq"
	FloatNeg Op = "FloatNeg"
)

// Boolean and string operators.
const (
	BoolEq  Op = "BoolEq"
	BoolNeq Op = "BoolNeq"
	BoolNot Op = "BoolNot"

	StrEq  Op = "StrEq"
	StrNeq Op = "StrNeq"
	StrLt  Op = "StrLt"
	StrLeq Op = "StrLeq"
)
