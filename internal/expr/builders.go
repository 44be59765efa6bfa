package expr

// Str returns a text literal.
func Str(s string) Literal {
	return Literal{Of: String, Value: s}
}

// Null returns the absent value of t.
func Null(t TypeRef) Literal {
	return Literal{Of: t.WithNullable(true), Value: nil}
}

// True returns the boolean literal true.
func True() Literal {
	return Literal{Of: Bool, Value: true}
}

// Equal compares two scalars exactly.
func Equal(a, b Expr) Intrinsic {
	return Intrinsic{Op: IntrinsicEqual, Args: []Expr{a, b}, Of: Bool}
}

// EqualFold compares two texts ignoring case with the invariant culture.
func EqualFold(a, b Expr) Intrinsic {
	return Intrinsic{Op: IntrinsicEqualFold, Args: []Expr{a, b}, Of: Bool}
}

// Hash returns the natural hash of a scalar.
func Hash(a Expr) Intrinsic {
	return Intrinsic{Op: IntrinsicHash, Args: []Expr{a}, Of: Int32}
}

// HashFold returns the case-folded hash of a text.
func HashFold(a Expr) Intrinsic {
	return Intrinsic{Op: IntrinsicHashFold, Args: []Expr{a}, Of: Int32}
}

// Format renders a numeric scalar with the invariant format.
func Format(a Expr) Intrinsic {
	return Intrinsic{Op: IntrinsicFormat, Args: []Expr{a}, Of: String}
}

// IsNull reports whether a is absent.
func IsNull(a Expr) Intrinsic {
	return Intrinsic{Op: IntrinsicIsNull, Args: []Expr{a}, Of: Bool}
}

// And combines two boolean expressions.
func And(a, b Expr) Binary {
	return Binary{Op: OpAnd, Left: a, Right: b}
}

// Body wraps a single expression into a returning body.
func Body(e Expr) []Stmt {
	return []Stmt{Return{Value: e}}
}
