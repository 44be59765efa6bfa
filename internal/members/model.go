package members

import (
	"member-generator/internal/expr"
)

// Declaration holds the declaration-level modifiers of a generated type.
type Declaration struct {
	Name          string
	Description   string
	Accessibility Accessibility
	Kind          StructuralKind
	// Implements lists declared capabilities, e.g. Equatable<Self>.
	Implements []expr.TypeRef
	// Deprecated is set when the source schema is marked deprecated.
	Deprecated bool
	// Underlying is the raw representation carried by the type.
	Underlying expr.TypeRef
}

// Self returns the type reference of the declared type.
func (d Declaration) Self() expr.TypeRef {
	return expr.Named(d.Name)
}

// Field describes a field or named constant.
type Field struct {
	Name          string
	Description   string
	Accessibility Accessibility
	Modifiers     Modifiers
	Type          expr.TypeRef
	// Initializer is the compiled-in value; nil for fields assigned by a constructor.
	Initializer expr.Expr
}

// Property describes a property. Getter is nil for auto-properties.
type Property struct {
	Name          string
	Description   string
	Accessibility Accessibility
	Modifiers     Modifiers
	Type          expr.TypeRef
	Mutability    Mutability
	Getter        expr.Expr
	// Initializer is the pre-computed initial value, when there is one.
	Initializer expr.Expr
}

// Parameter is a constructor or method parameter.
type Parameter struct {
	Name        string
	Description string
	Type        expr.TypeRef
}

// Ref returns the expression referencing the parameter inside a body.
func (p Parameter) Ref() expr.Param {
	return expr.Param{Name: p.Name, Of: p.Type}
}

// Constructor describes an instance constructor.
type Constructor struct {
	Description   string
	Accessibility Accessibility
	Parameters    []Parameter
	Body          []expr.Stmt
}

// Method describes a method, an operator or a conversion operator.
type Method struct {
	Name          string
	Description   string
	Kind          MethodKind
	Accessibility Accessibility
	Modifiers     Modifiers
	Parameters    []Parameter
	ReturnType    expr.TypeRef
	Body          []expr.Stmt
}

// Signature returns the name followed by parameter types, e.g. "Equals(object)".
func (m *Method) Signature() string {
	sig := m.Name + "("

	for i, p := range m.Parameters {
		if i > 0 {
			sig += ", "
		}

		sig += p.Type.String()
	}

	return sig + ")"
}

// Model is the complete member set of one generated type.
type Model struct {
	Declaration  Declaration
	Fields       []*Field
	Properties   []*Property
	Constructors []*Constructor
	Methods      []*Method
}

// FieldByName returns the field with the given name, or nil.
func (m *Model) FieldByName(name string) *Field {
	for _, f := range m.Fields {
		if f.Name == name {
			return f
		}
	}

	return nil
}

// PropertyByName returns the property with the given name, or nil.
func (m *Model) PropertyByName(name string) *Property {
	for _, p := range m.Properties {
		if p.Name == name {
			return p
		}
	}

	return nil
}

// MethodBySignature returns the method with the given signature (see Method.Signature), or nil.
func (m *Model) MethodBySignature(sig string) *Method {
	for _, meth := range m.Methods {
		if meth.Signature() == sig {
			return meth
		}
	}

	return nil
}

// MethodByName returns the first method with the given name, or nil.
func (m *Model) MethodByName(name string) *Method {
	for _, meth := range m.Methods {
		if meth.Name == name {
			return meth
		}
	}

	return nil
}

// MethodsNamed returns every method with the given name, in declaration order.
func (m *Model) MethodsNamed(name string) []*Method {
	var out []*Method

	for _, meth := range m.Methods {
		if meth.Name == name {
			out = append(out, meth)
		}
	}

	return out
}

// StaticProperties returns the static properties in declaration order.
func (m *Model) StaticProperties() []*Property {
	var out []*Property

	for _, p := range m.Properties {
		if p.Modifiers.Has(ModStatic) {
			out = append(out, p)
		}
	}

	return out
}

// Operators returns the operator methods, conversions excluded.
func (m *Model) Operators() []*Method {
	var out []*Method

	for _, meth := range m.Methods {
		if meth.Kind == MethodOperator {
			out = append(out, meth)
		}
	}

	return out
}

// Conversions returns the implicit conversion operators.
func (m *Model) Conversions() []*Method {
	var out []*Method

	for _, meth := range m.Methods {
		if meth.Kind == MethodImplicitConversion {
			out = append(out, meth)
		}
	}

	return out
}

// MemberNames returns every declared member name, constructors excluded.
func (m *Model) MemberNames() []string {
	names := make([]string, 0, len(m.Fields)+len(m.Properties)+len(m.Methods))

	for _, f := range m.Fields {
		names = append(names, f.Name)
	}

	for _, p := range m.Properties {
		names = append(names, p.Name)
	}

	for _, meth := range m.Methods {
		names = append(names, meth.Name)
	}

	return names
}
