package provider

import (
	"fmt"

	"member-generator/internal/expr"
	"member-generator/internal/ident"
	"member-generator/internal/members"
	"member-generator/internal/schema"
	"member-generator/primitive"
)

// Member names synthesized for open value wrappers.
const (
	methodEquals      = "Equals"
	methodGetHashCode = "GetHashCode"
	methodToString    = "ToString"
	opEquality        = "op_Equality"
	opInequality      = "op_Inequality"
	opImplicit        = "op_Implicit"
)

// extensible builds an open value wrapper: any raw value can be wrapped and
// the allowed values are exposed as static instances.
type extensible struct {
	enumBase
}

func newExtensible(s *schema.EnumSchema, o options) *extensible {
	p := &extensible{enumBase: newBase(s, o, VariantExtensible)}
	p.memoize(p.buildModel)

	return p
}

func (p *extensible) IsExtensible() bool {
	return true
}

func (p *extensible) isText() bool {
	return p.schema.ValueKind() == primitive.ValueKindString
}

func (p *extensible) Declaration() members.Declaration {
	return members.Declaration{
		Name:          p.schema.Name,
		Description:   p.schema.Description,
		Accessibility: p.schema.Accessibility,
		Kind:          members.KindReadOnlyStruct,
		Implements:    []expr.TypeRef{expr.Equatable(p.self)},
		Deprecated:    p.schema.Deprecated,
		Underlying:    p.raw,
	}
}

// ToSerial is the textual conversion for text wrappers and the
// representation-specific accessor otherwise.
func (p *extensible) ToSerial(value expr.Expr) expr.Expr {
	if p.isText() {
		return expr.Call{Target: value, Owner: p.self, Method: methodToString, Of: expr.String}
	}

	return expr.Call{Target: value, Owner: p.self, Method: p.serialMethod(), Of: p.raw}
}

// ToEnum wraps any raw value.
func (p *extensible) ToEnum(value expr.Expr) expr.Expr {
	return expr.New{Of: p.self, Args: []expr.Expr{value}}
}

func (p *extensible) buildModel() (*built, error) {
	naming := p.opts.naming

	reserved := ident.NewNamespace(
		p.schema.Name, naming.BackingField,
		methodEquals, methodGetHashCode, methodToString,
		opEquality, opInequality, opImplicit,
	)
	if !p.isText() {
		reserved.Reserve(p.serialMethod())
	}

	values, err := resolveValues(p.schema, reserved)
	if err != nil {
		return nil, err
	}

	for _, v := range values {
		reserved.Reserve(v.name)
	}

	backing := &members.Field{
		Name:          naming.BackingField,
		Description:   "The raw value.",
		Accessibility: members.AccessPrivate,
		Modifiers:     members.ModReadOnly,
		Type:          p.raw,
	}

	model := &members.Model{
		Declaration: p.Declaration(),
		Fields:      []*members.Field{backing},
	}
	enumMembers := make([]EnumMember, 0, len(values))

	for _, v := range values {
		constant := &members.Field{
			Name:          reserved.Reserve(v.name + naming.ConstantSuffix),
			Accessibility: members.AccessPrivate,
			Modifiers:     members.ModConst,
			Type:          p.raw,
			Initializer:   v.literal,
		}
		model.Fields = append(model.Fields, constant)

		model.Properties = append(model.Properties, &members.Property{
			Name:          v.name,
			Description:   v.description(),
			Accessibility: members.AccessPublic,
			Modifiers:     members.ModStatic,
			Type:          p.self,
			Mutability:    members.MutabilityNone,
			Initializer: expr.New{
				Of:   p.self,
				Args: []expr.Expr{expr.Member{Owner: p.self, Name: constant.Name, Of: p.raw}},
			},
		})

		enumMembers = append(enumMembers, EnumMember{Name: v.name, BackingField: constant, Literal: v.literal})
	}

	model.Constructors = []*members.Constructor{p.constructor(backing)}
	model.Methods = p.methods(backing)

	return &built{model: model, enumMembers: enumMembers}, nil
}

func (p *extensible) backingOf(target expr.Expr, backing *members.Field) expr.Member {
	return expr.Member{Target: target, Owner: p.self, Name: backing.Name, Of: p.raw}
}

// constructor validates reference-like raw values before storing them.
func (p *extensible) constructor(backing *members.Field) *members.Constructor {
	value := members.Parameter{Name: "value", Description: "The raw value.", Type: p.raw}

	var body []expr.Stmt
	if p.schema.ValueType.IsReference() {
		body = append(body, expr.If{
			Cond: expr.IsNull(value.Ref()),
			Then: []expr.Stmt{expr.Throw{Kind: expr.ErrorArgumentNull, Param: value.Name}},
		})
	}

	body = append(body, expr.Assign{
		Target: p.backingOf(expr.This{Of: p.self}, backing),
		Value:  value.Ref(),
	})

	return &members.Constructor{
		Description:   fmt.Sprintf("Initializes a new %s from a raw value.", p.schema.Name),
		Accessibility: members.AccessPublic,
		Parameters:    []members.Parameter{value},
		Body:          body,
	}
}

func (p *extensible) methods(backing *members.Field) []*members.Method {
	this := expr.This{Of: p.self}
	left := members.Parameter{Name: "left", Type: p.self}
	right := members.Parameter{Name: "right", Type: p.self}
	other := members.Parameter{Name: "other", Type: p.self}
	obj := members.Parameter{Name: "obj", Type: expr.Object}
	value := members.Parameter{Name: "value", Type: p.raw}

	equals := func(a, b expr.Expr) expr.Expr {
		return expr.Call{Target: a, Owner: p.self, Method: methodEquals, Args: []expr.Expr{b}, Of: expr.Bool}
	}

	mine := p.backingOf(this, backing)
	theirs := p.backingOf(other.Ref(), backing)

	var equality, hash, text expr.Expr
	if p.isText() {
		equality = expr.EqualFold(mine, theirs)
		hash = expr.HashFold(mine)
		text = mine
	} else {
		equality = expr.Equal(mine, theirs)
		hash = expr.Hash(mine)
		text = expr.Format(mine)
	}

	methods := []*members.Method{
		{
			Name:          opEquality,
			Description:   "Determines whether two values are equal.",
			Kind:          members.MethodOperator,
			Accessibility: members.AccessPublic,
			Modifiers:     members.ModStatic,
			Parameters:    []members.Parameter{left, right},
			ReturnType:    expr.Bool,
			Body:          expr.Body(equals(left.Ref(), right.Ref())),
		},
		{
			Name:          opInequality,
			Description:   "Determines whether two values are not equal.",
			Kind:          members.MethodOperator,
			Accessibility: members.AccessPublic,
			Modifiers:     members.ModStatic,
			Parameters:    []members.Parameter{left, right},
			ReturnType:    expr.Bool,
			Body:          expr.Body(expr.Not{Operand: equals(left.Ref(), right.Ref())}),
		},
		{
			Name:          opImplicit,
			Description:   fmt.Sprintf("Converts a raw value to %s.", p.schema.Name),
			Kind:          members.MethodImplicitConversion,
			Accessibility: members.AccessPublic,
			Modifiers:     members.ModStatic,
			Parameters:    []members.Parameter{value},
			ReturnType:    p.self,
			Body:          expr.Body(p.ToEnum(value.Ref())),
		},
		{
			Name:          methodEquals,
			Accessibility: members.AccessPublic,
			Modifiers:     members.ModOverride,
			Parameters:    []members.Parameter{obj},
			ReturnType:    expr.Bool,
			Body: expr.Body(expr.And(
				expr.TypeTest{Operand: obj.Ref(), Target: p.self, Bind: other.Name},
				equals(this, other.Ref()),
			)),
		},
		{
			Name:          methodEquals,
			Accessibility: members.AccessPublic,
			Parameters:    []members.Parameter{other},
			ReturnType:    expr.Bool,
			Body:          expr.Body(equality),
		},
		{
			Name:          methodGetHashCode,
			Accessibility: members.AccessPublic,
			Modifiers:     members.ModOverride,
			ReturnType:    expr.Int32,
			Body:          expr.Body(hash),
		},
		{
			Name:          methodToString,
			Accessibility: members.AccessPublic,
			Modifiers:     members.ModOverride,
			ReturnType:    expr.String,
			Body:          expr.Body(text),
		},
	}

	if !p.isText() {
		methods = append(methods, &members.Method{
			Name:          p.serialMethod(),
			Description:   "Returns the raw value.",
			Accessibility: members.AccessPublic,
			ReturnType:    p.raw,
			Body:          expr.Body(mine),
		})
	}

	return methods
}
