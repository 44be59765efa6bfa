package eval

import (
	"fmt"

	"member-generator/internal/expr"
	"member-generator/internal/members"
	"member-generator/primitive"
)

type frame struct {
	this   any
	locals map[string]any
}

func (f *frame) bind(name string, v any) {
	if f.locals == nil {
		f.locals = map[string]any{}
	}

	f.locals[name] = v
}

func (m *Machine) eval(e expr.Expr, f *frame) (any, error) {
	switch n := e.(type) {
	case expr.Literal:
		return n.Value, nil

	case expr.Default:
		return m.zero(n.Of), nil

	case expr.Param:
		v, ok := f.locals[n.Name]
		if !ok {
			return nil, fmt.Errorf("%w: parameter %s", ErrUnknownMember, n.Name)
		}

		return v, nil

	case expr.This:
		return f.this, nil

	case expr.Member:
		return m.member(n, f)

	case expr.Call:
		args, err := m.evalAll(n.Args, f)
		if err != nil {
			return nil, err
		}

		if n.Target == nil {
			return m.callStatic(n.Method, args)
		}

		target, err := m.eval(n.Target, f)
		if err != nil {
			return nil, err
		}

		return m.callInstance(target, n.Method, args)

	case expr.New:
		args, err := m.evalAll(n.Args, f)
		if err != nil {
			return nil, err
		}

		return m.construct(args)

	case expr.Convert:
		v, err := m.eval(n.Operand, f)
		if err != nil {
			return nil, err
		}

		return m.convert(v, n.To)

	case expr.Binary:
		left, err := m.evalBool(n.Left, f)
		if err != nil {
			return nil, err
		}

		if (n.Op == expr.OpAnd && !left) || (n.Op == expr.OpOr && left) {
			return left, nil
		}

		return m.evalBool(n.Right, f)

	case expr.Not:
		v, err := m.evalBool(n.Operand, f)
		return !v, err

	case expr.TypeTest:
		v, err := m.eval(n.Operand, f)
		if err != nil {
			return nil, err
		}

		if v == nil || !m.accepts(n.Target, v, false) {
			return false, nil
		}

		if n.Bind != "" {
			f.bind(n.Bind, v)
		}

		return true, nil

	case expr.Conditional:
		cond, err := m.evalBool(n.Cond, f)
		if err != nil {
			return nil, err
		}

		if cond {
			return m.eval(n.Then, f)
		}

		return m.eval(n.Else, f)

	case expr.Intrinsic:
		return m.intrinsic(n, f)

	default:
		return nil, fmt.Errorf("%w: expression %T", ErrUnknownMember, e)
	}
}

func (m *Machine) evalAll(es []expr.Expr, f *frame) ([]any, error) {
	out := make([]any, len(es))

	for i, e := range es {
		v, err := m.eval(e, f)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return out, nil
}

func (m *Machine) evalBool(e expr.Expr, f *frame) (bool, error) {
	v, err := m.eval(e, f)
	if err != nil {
		return false, err
	}

	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s is %T, not bool", ErrTypeMismatch, e, v)
	}

	return b, nil
}

// exec runs statements until one returns or throws.
func (m *Machine) exec(stmts []expr.Stmt, f *frame) (any, bool, error) {
	for _, s := range stmts {
		switch n := s.(type) {
		case expr.Return:
			if n.Value == nil {
				return nil, true, nil
			}

			v, err := m.eval(n.Value, f)

			return v, true, err

		case expr.Assign:
			if err := m.assign(n, f); err != nil {
				return nil, false, err
			}

		case expr.If:
			cond, err := m.evalBool(n.Cond, f)
			if err != nil {
				return nil, false, err
			}

			branch := n.Else
			if cond {
				branch = n.Then
			}

			if v, returned, err := m.exec(branch, f); returned || err != nil {
				return v, returned, err
			}

		case expr.Switch:
			if v, returned, err := m.execSwitch(n, f); returned || err != nil {
				return v, returned, err
			}

		case expr.Throw:
			rerr := &RuntimeError{Kind: n.Kind, Type: m.self.Name, Param: n.Param, Message: n.Message}
			if n.Subject != nil {
				v, err := m.eval(n.Subject, f)
				if err != nil {
					return nil, false, err
				}

				rerr.Value = v
			}

			return nil, false, rerr

		default:
			return nil, false, fmt.Errorf("%w: statement %T", ErrUnknownMember, s)
		}
	}

	return nil, false, nil
}

func (m *Machine) execSwitch(n expr.Switch, f *frame) (any, bool, error) {
	subject, err := m.eval(n.Subject, f)
	if err != nil {
		return nil, false, err
	}

	for _, c := range n.Cases {
		match, err := m.eval(c.Match, f)
		if err != nil {
			return nil, false, err
		}

		if sameValue(subject, match) {
			return m.exec(c.Body, f)
		}
	}

	return m.exec(n.Default, f)
}

func (m *Machine) assign(n expr.Assign, f *frame) error {
	target, ok := n.Target.(expr.Member)
	if !ok || target.Target == nil {
		return fmt.Errorf("%w: cannot assign to %s", ErrUnknownMember, n.Target)
	}

	owner, err := m.eval(target.Target, f)
	if err != nil {
		return err
	}

	inst, ok := owner.(*Instance)
	if !ok {
		return fmt.Errorf("%w: cannot assign a field of %T", ErrTypeMismatch, owner)
	}

	v, err := m.eval(n.Value, f)
	if err != nil {
		return err
	}

	inst.fields[target.Name] = v

	return nil
}

// member reads a field or property.
func (m *Machine) member(n expr.Member, f *frame) (any, error) {
	if n.Target != nil {
		target, err := m.eval(n.Target, f)
		if err != nil {
			return nil, err
		}

		inst, ok := target.(*Instance)
		if !ok {
			return nil, fmt.Errorf("%w: member %s of %T", ErrTypeMismatch, n.Name, target)
		}

		return inst.fields[n.Name], nil
	}

	if n.Owner.Name != m.self.Name {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMember, n)
	}

	if fld := m.model.FieldByName(n.Name); fld != nil && fld.Modifiers.Has(members.ModConst) {
		v, err := m.eval(fld.Initializer, f)
		if err != nil {
			return nil, err
		}

		if m.isEnum() {
			return EnumValue{Type: m.self.Name, Value: v}, nil
		}

		return v, nil
	}

	if prop := m.model.PropertyByName(n.Name); prop != nil && prop.Modifiers.Has(members.ModStatic) && prop.Initializer != nil {
		return m.eval(prop.Initializer, &frame{})
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownMember, n)
}

func (m *Machine) construct(args []any) (any, error) {
	for _, ctor := range m.model.Constructors {
		if len(ctor.Parameters) != len(args) {
			continue
		}

		inst := &Instance{Type: m.self.Name, fields: map[string]any{}}
		for _, fld := range m.model.Fields {
			if !fld.Modifiers.Has(members.ModConst) && !fld.Modifiers.Has(members.ModStatic) {
				inst.fields[fld.Name] = m.zero(fld.Type)
			}
		}

		f := &frame{this: inst}
		for i, p := range ctor.Parameters {
			v, err := m.coerce(p.Type, args[i])
			if err != nil {
				return nil, err
			}

			f.bind(p.Name, v)
		}

		if _, _, err := m.exec(ctor.Body, f); err != nil {
			return nil, err
		}

		return inst, nil
	}

	return nil, fmt.Errorf("%w: %s with %d arguments", ErrNotConstructible, m.self.Name, len(args))
}

func (m *Machine) callStatic(name string, args []any) (any, error) {
	meth, err := m.resolve(name, true, args)
	if err != nil {
		return nil, err
	}

	return m.call(meth, nil, args)
}

func (m *Machine) callInstance(target any, name string, args []any) (any, error) {
	if _, ok := target.(*Instance); !ok {
		return nil, fmt.Errorf("%w: cannot call %s on %T", ErrTypeMismatch, name, target)
	}

	meth, err := m.resolve(name, false, args)
	if err != nil {
		return nil, err
	}

	return m.call(meth, target, args)
}

func (m *Machine) call(meth *members.Method, this any, args []any) (any, error) {
	f := &frame{this: this}

	for i, p := range meth.Parameters {
		v, err := m.coerce(p.Type, args[i])
		if err != nil {
			return nil, err
		}

		f.bind(p.Name, v)
	}

	v, returned, err := m.exec(meth.Body, f)
	if err != nil {
		return nil, err
	}

	if !returned && !meth.ReturnType.Equal(expr.Void) {
		return nil, fmt.Errorf("%w: %s did not return", ErrTypeMismatch, meth.Signature())
	}

	return v, nil
}

// resolve picks the overload accepting args, preferring exact parameter
// types over object and over implicit conversions.
func (m *Machine) resolve(name string, static bool, args []any) (*members.Method, error) {
	var best *members.Method

	bestScore := -1

	for _, meth := range m.model.MethodsNamed(name) {
		if meth.Modifiers.Has(members.ModStatic) != static || len(meth.Parameters) != len(args) {
			continue
		}

		score := 0
		ok := true

		for i, p := range meth.Parameters {
			switch {
			case p.Type.Equal(expr.Object):
			case m.accepts(p.Type, args[i], false):
				score += 2
			case m.accepts(p.Type, args[i], true):
				score++
			default:
				ok = false
			}
		}

		if ok && score > bestScore {
			best, bestScore = meth, score
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: %s.%s with %d arguments", ErrUnknownMember, m.self.Name, name, len(args))
	}

	return best, nil
}

// accepts reports whether v can be bound to t, optionally through the
// implicit conversion of the type.
func (m *Machine) accepts(t expr.TypeRef, v any, implicit bool) bool {
	if t.Equal(expr.Object) {
		return true
	}

	if t.IsScalar() {
		if v == nil {
			return true
		}

		return scalarAccepts(t.Scalar, v)
	}

	if t.Name != m.self.Name {
		return false
	}

	switch x := v.(type) {
	case nil:
		return t.Nullable
	case *Instance:
		return x.Type == t.Name
	case EnumValue:
		return x.Type == t.Name
	default:
		return implicit && len(m.model.Conversions()) > 0 &&
			scalarAccepts(m.model.Declaration.Underlying.Scalar, v)
	}
}

func scalarAccepts(k primitive.KindEnum, v any) bool {
	switch v.(type) {
	case string:
		return k == primitive.KindString
	case int64, uint64:
		return k.IsNumber()
	case float64:
		return k.IsFloat()
	case bool:
		return k == primitive.KindBool
	default:
		return false
	}
}

// coerce binds v to t: absent non-nullable numbers take the zero value,
// integers take the signedness of t or widen to floating-point, raw values
// convert implicitly.
func (m *Machine) coerce(t expr.TypeRef, v any) (any, error) {
	if t.IsScalar() {
		if v == nil {
			if t.CanBeAbsent() {
				return nil, nil
			}

			return m.zero(t), nil
		}

		switch x := v.(type) {
		case int64:
			if t.Scalar.IsFloat() {
				return float64(x), nil
			}
		case uint64:
			if t.Scalar.IsFloat() {
				return float64(x), nil
			}
		}

		if t.Scalar.IsInteger() {
			if _, ok := v.(float64); !ok && scalarAccepts(t.Scalar, v) {
				iv, ok := integerOf(t.Scalar, v)
				if !ok {
					return nil, fmt.Errorf("%w: %v is out of range for %s", ErrTypeMismatch, v, t)
				}

				return iv, nil
			}
		}
	}

	if !m.accepts(t, v, false) {
		if m.accepts(t, v, true) {
			return m.callStatic("op_Implicit", []any{v})
		}

		return nil, fmt.Errorf("%w: %T is not a %s", ErrTypeMismatch, v, t)
	}

	return v, nil
}

func (m *Machine) convert(v any, to expr.TypeRef) (any, error) {
	switch x := v.(type) {
	case EnumValue:
		if to.IsScalar() && to.Scalar.IsNumber() {
			return m.coerce(to, x.Value)
		}
	case int64, uint64:
		if to.Name == m.self.Name && m.isEnum() {
			iv, ok := integerOf(m.model.Declaration.Underlying.Scalar, x)
			if !ok {
				return nil, fmt.Errorf("%w: %v is out of range for %s", ErrTypeMismatch, x, to)
			}

			return EnumValue{Type: m.self.Name, Value: iv}, nil
		}
	}

	return m.coerce(to, v)
}

// zero is the representation-appropriate empty value of t.
func (m *Machine) zero(t expr.TypeRef) any {
	if t.CanBeAbsent() {
		return nil
	}

	if t.IsScalar() {
		switch {
		case t.Scalar.IsUnsigned():
			return uint64(0)
		case t.Scalar.IsInteger():
			return int64(0)
		case t.Scalar.IsFloat():
			return 0.0
		case t.Scalar == primitive.KindBool:
			return false
		default:
			return nil
		}
	}

	if t.Name == m.self.Name {
		if m.isEnum() {
			return EnumValue{Type: m.self.Name, Value: m.zero(m.model.Declaration.Underlying)}
		}

		inst := &Instance{Type: m.self.Name, fields: map[string]any{}}
		for _, fld := range m.model.Fields {
			if !fld.Modifiers.Has(members.ModConst) {
				inst.fields[fld.Name] = m.zero(fld.Type)
			}
		}

		return inst
	}

	return nil
}
