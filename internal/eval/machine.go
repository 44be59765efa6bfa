package eval

import (
	"fmt"

	"member-generator/internal/expr"
	"member-generator/internal/members"
	"member-generator/internal/provider"
)

// Machine evaluates the member model of one provider.
// A Machine is not safe for concurrent use.
type Machine struct {
	provider provider.TypeProvider
	model    *members.Model
	self     expr.TypeRef
}

// NewMachine builds the model of p and returns a machine over it.
func NewMachine(p provider.TypeProvider) (*Machine, error) {
	model, err := p.Members()
	if err != nil {
		return nil, err
	}

	return &Machine{
		provider: p,
		model:    model,
		self:     model.Declaration.Self(),
	}, nil
}

// Model returns the evaluated member model.
func (m *Machine) Model() *members.Model {
	return m.model
}

func (m *Machine) isEnum() bool {
	return m.model.Declaration.Kind == members.KindEnum
}

// Construct runs the constructor over a raw value.
func (m *Machine) Construct(raw any) (any, error) {
	if m.isEnum() {
		return nil, fmt.Errorf("%w: %s is a closed enumeration", ErrNotConstructible, m.self.Name)
	}

	return m.evalWith(expr.New{Of: m.self, Args: []expr.Expr{m.rawParam()}}, raw)
}

// StaticProperty returns a declared value: the static instance of a wrapper
// or the case of an enumeration.
func (m *Machine) StaticProperty(name string) (any, error) {
	return m.eval(expr.Member{Owner: m.self, Name: name, Of: m.self}, &frame{})
}

// Invoke calls a method by name. A nil target calls a static method.
func (m *Machine) Invoke(target any, method string, args ...any) (any, error) {
	values := make([]any, len(args))
	for i, a := range args {
		v, err := normalize(a)
		if err != nil {
			return nil, err
		}

		values[i] = v
	}

	if target == nil {
		return m.callStatic(method, values)
	}

	return m.callInstance(target, method, values)
}

// Equal compares two values with the equality operator of the type.
func (m *Machine) Equal(a, b any) (bool, error) {
	if m.isEnum() {
		return sameValue(a, b), nil
	}

	v, err := m.Invoke(nil, "op_Equality", a, b)
	if err != nil {
		return false, err
	}

	return v.(bool), nil
}

// Hash returns the hash code of a value.
func (m *Machine) Hash(v any) (int32, error) {
	if m.isEnum() {
		ev, ok := v.(EnumValue)
		if !ok {
			return 0, fmt.Errorf("%w: %T is not a %s", ErrTypeMismatch, v, m.self.Name)
		}

		h, err := hashScalar(ev.Value)

		return int32(h), err
	}

	h, err := m.Invoke(v, "GetHashCode")
	if err != nil {
		return 0, err
	}

	return int32(h.(int64)), nil
}

// String returns the textual form of a value: the raw text or invariant
// number of a wrapper, the case name of an enumeration.
func (m *Machine) String(v any) (string, error) {
	if m.isEnum() {
		ev, ok := v.(EnumValue)
		if !ok {
			return "", fmt.Errorf("%w: %T is not a %s", ErrTypeMismatch, v, m.self.Name)
		}

		for _, f := range m.model.Fields {
			if lit, ok := f.Initializer.(expr.Literal); ok && lit.Value == ev.Value {
				return f.Name, nil
			}
		}

		return formatScalar(ev.Value, m.model.Declaration.Underlying.Scalar)
	}

	s, err := m.Invoke(v, "ToString")
	if err != nil {
		return "", err
	}

	return s.(string), nil
}

// ToSerial runs the serialization expression of the provider.
func (m *Machine) ToSerial(v any) (any, error) {
	return m.evalWith(m.provider.ToSerial(expr.Param{Name: "value", Of: m.self}), v)
}

// ToEnum runs the deserialization expression of the provider.
func (m *Machine) ToEnum(raw any) (any, error) {
	return m.evalWith(m.provider.ToEnum(m.rawParam()), raw)
}

func (m *Machine) rawParam() expr.Param {
	return expr.Param{Name: "value", Of: expr.Scalar(m.provider.Schema().ValueType)}
}

func (m *Machine) evalWith(e expr.Expr, value any) (any, error) {
	v, err := normalize(value)
	if err != nil {
		return nil, err
	}

	return m.eval(e, &frame{locals: map[string]any{"value": v}})
}
