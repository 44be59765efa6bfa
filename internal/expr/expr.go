package expr

import (
	"strconv"
	"strings"
)

// Expr is a typed expression.
type Expr interface {
	// Type returns the static type of the expression.
	Type() TypeRef
	// String returns a compact, language-neutral form used in diagnostics and dumps.
	String() string
}

// Literal is a scalar constant. Value is one of string, int64, uint64, float64, bool or nil.
type Literal struct {
	Of    TypeRef
	Value any
}

func (e Literal) Type() TypeRef { return e.Of }

func (e Literal) String() string {
	switch v := e.Value.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return "<invalid literal>"
	}
}

// Default is the representation-appropriate empty value of a type.
type Default struct {
	Of TypeRef
}

func (e Default) Type() TypeRef  { return e.Of }
func (e Default) String() string { return "default(" + e.Of.String() + ")" }

// Param references a parameter or a pattern-bound local.
type Param struct {
	Name string
	Of   TypeRef
}

func (e Param) Type() TypeRef  { return e.Of }
func (e Param) String() string { return e.Name }

// This references the current instance.
type This struct {
	Of TypeRef
}

func (e This) Type() TypeRef  { return e.Of }
func (e This) String() string { return "this" }

// Member reads a field or property. A nil Target denotes a static member of Owner.
type Member struct {
	Target Expr
	Owner  TypeRef
	Name   string
	Of     TypeRef
}

func (e Member) Type() TypeRef { return e.Of }

func (e Member) String() string {
	if e.Target == nil {
		return e.Owner.Name + "." + e.Name
	}

	return e.Target.String() + "." + e.Name
}

// Call invokes a method. A nil Target denotes a static method of Owner.
type Call struct {
	Target Expr
	Owner  TypeRef
	Method string
	Args   []Expr
	Of     TypeRef
}

func (e Call) Type() TypeRef { return e.Of }

func (e Call) String() string {
	recv := e.Owner.Name
	if e.Target != nil {
		recv = e.Target.String()
	}

	return recv + "." + e.Method + "(" + join(e.Args) + ")"
}

// New constructs an instance of a generated type.
type New struct {
	Of   TypeRef
	Args []Expr
}

func (e New) Type() TypeRef  { return e.Of }
func (e New) String() string { return "new " + e.Of.String() + "(" + join(e.Args) + ")" }

// Convert converts Operand to To, using a declared conversion when one exists.
type Convert struct {
	Operand Expr
	To      TypeRef
}

func (e Convert) Type() TypeRef  { return e.To }
func (e Convert) String() string { return "(" + e.To.String() + ")" + e.Operand.String() }

// BinaryOp is a boolean connective.
type BinaryOp int

const (
	OpAnd BinaryOp = iota
	OpOr
)

// Binary combines two boolean expressions.
type Binary struct {
	Op          BinaryOp
	Left, Right Expr
}

func (e Binary) Type() TypeRef { return Bool }

func (e Binary) String() string {
	op := " && "
	if e.Op == OpOr {
		op = " || "
	}

	return "(" + e.Left.String() + op + e.Right.String() + ")"
}

// Not negates a boolean expression.
type Not struct {
	Operand Expr
}

func (e Not) Type() TypeRef  { return Bool }
func (e Not) String() string { return "!" + e.Operand.String() }

// TypeTest tests Operand against Target and, when Bind is set, binds the narrowed value.
type TypeTest struct {
	Operand Expr
	Target  TypeRef
	Bind    string
}

func (e TypeTest) Type() TypeRef { return Bool }

func (e TypeTest) String() string {
	s := e.Operand.String() + " is " + e.Target.String()
	if e.Bind != "" {
		s += " " + e.Bind
	}

	return s
}

// Conditional selects Then or Else by Cond.
type Conditional struct {
	Cond, Then, Else Expr
}

func (e Conditional) Type() TypeRef { return e.Then.Type() }

func (e Conditional) String() string {
	return "(" + e.Cond.String() + " ? " + e.Then.String() + " : " + e.Else.String() + ")"
}

// IntrinsicOp names a framework operation with fixed, environment-independent semantics.
type IntrinsicOp int

const (
	// IntrinsicEqual compares two scalars exactly.
	IntrinsicEqual IntrinsicOp = iota
	// IntrinsicEqualFold compares two texts ignoring case, independent of locale.
	IntrinsicEqualFold
	// IntrinsicHash is the natural hash of a scalar.
	IntrinsicHash
	// IntrinsicHashFold hashes a text after locale-independent case folding; absent text hashes to 0.
	IntrinsicHashFold
	// IntrinsicFormat renders a numeric scalar with the invariant format.
	IntrinsicFormat
	// IntrinsicIsNull reports whether a value is absent.
	IntrinsicIsNull
)

// String returns a human-readable intrinsic name.
func (op IntrinsicOp) String() string {
	switch op {
	case IntrinsicEqual:
		return "equal"
	case IntrinsicEqualFold:
		return "equalFold"
	case IntrinsicHash:
		return "hash"
	case IntrinsicHashFold:
		return "hashFold"
	case IntrinsicFormat:
		return "formatInvariant"
	case IntrinsicIsNull:
		return "isNull"
	default:
		return "unknown"
	}
}

// Intrinsic applies a framework operation.
type Intrinsic struct {
	Op   IntrinsicOp
	Args []Expr
	Of   TypeRef
}

func (e Intrinsic) Type() TypeRef  { return e.Of }
func (e Intrinsic) String() string { return e.Op.String() + "(" + join(e.Args) + ")" }

func join(args []Expr) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}

	return strings.Join(parts, ", ")
}
