package expr

import (
	"strings"

	"member-generator/primitive"
)

// TypeRef references a scalar, a generated type or a framework type.
type TypeRef struct {
	// Name is the keyword of a scalar or the declared name of any other type.
	Name string `yaml:"name" json:"name"`
	// Scalar is set for scalar representations only.
	Scalar primitive.KindEnum `yaml:"-" json:"-"`
	// Nullable marks a type whose values may be absent.
	Nullable bool `yaml:"nullable,omitempty" json:"nullable,omitempty"`
	// Args holds generic type arguments.
	Args []TypeRef `yaml:"args,omitempty" json:"args,omitempty"`
}

// Common framework types.
var (
	Object = Named("object")
	Bool   = Scalar(primitive.KindBool)
	Int32  = Scalar(primitive.KindInt32)
	String = Scalar(primitive.KindString)
	Void   = Named("void")
)

// Equatable returns the structural-equality capability over t.
func Equatable(t TypeRef) TypeRef {
	return Named("Equatable", t)
}

// Scalar returns the type reference for a scalar representation.
func Scalar(k primitive.KindEnum) TypeRef {
	return TypeRef{Name: k.Keyword(), Scalar: k}
}

// Named returns a reference to a named (generated or framework) type.
func Named(name string, args ...TypeRef) TypeRef {
	return TypeRef{Name: name, Args: args}
}

// IsScalar reports whether the reference denotes a scalar representation.
func (t TypeRef) IsScalar() bool {
	return t.Scalar.IsValid()
}

// IsZero reports whether the reference is unset.
func (t TypeRef) IsZero() bool {
	return t.Name == "" && !t.Scalar.IsValid()
}

// CanBeAbsent reports whether a value of the type may be absent: nullable types
// and reference-like representations.
func (t TypeRef) CanBeAbsent() bool {
	if t.Nullable {
		return true
	}

	if t.IsScalar() {
		return t.Scalar.IsReference()
	}

	return t.Name == Object.Name
}

// WithNullable returns a copy of t with the nullable flag set to n.
func (t TypeRef) WithNullable(n bool) TypeRef {
	t.Nullable = n
	return t
}

// Equal reports whether both references denote the same type.
func (t TypeRef) Equal(o TypeRef) bool {
	if t.Name != o.Name || t.Scalar != o.Scalar || t.Nullable != o.Nullable || len(t.Args) != len(o.Args) {
		return false
	}

	for i := range t.Args {
		if !t.Args[i].Equal(o.Args[i]) {
			return false
		}
	}

	return true
}

// String returns a readable form, e.g. "Equatable<Direction>" or "int32?".
func (t TypeRef) String() string {
	var sb strings.Builder

	sb.WriteString(t.Name)

	if len(t.Args) > 0 {
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = a.String()
		}

		sb.WriteString("<" + strings.Join(args, ", ") + ">")
	}

	if t.Nullable {
		sb.WriteString("?")
	}

	return sb.String()
}
