package provider

import (
	"fmt"

	"golang.org/x/text/cases"

	"member-generator/internal/expr"
	"member-generator/internal/ident"
	"member-generator/internal/members"
	"member-generator/internal/schema"
	"member-generator/primitive"
)

// fixed builds a closed enumeration: only declared values are instances,
// and parsing an unknown raw value raises a mapping error.
type fixed struct {
	enumBase
}

func newFixed(s *schema.EnumSchema, o options) *fixed {
	p := &fixed{enumBase: newBase(s, o, VariantFixed)}
	p.memoize(p.buildModel)

	return p
}

func (p *fixed) IsExtensible() bool {
	return false
}

// byConversion reports whether cases carry their raw value as the constant.
func (p *fixed) byConversion() bool {
	return p.schema.ValueType.IsInteger()
}

// underlying is the constant type of the cases: the raw integer type, or
// int32 ordinals for text and floating-point values.
func (p *fixed) underlying() expr.TypeRef {
	if p.byConversion() {
		return p.raw
	}

	return expr.Int32
}

func (p *fixed) parseMethod() string {
	return p.opts.naming.ParsePrefix + p.schema.Name
}

func (p *fixed) Declaration() members.Declaration {
	return members.Declaration{
		Name:          p.schema.Name,
		Description:   p.schema.Description,
		Accessibility: p.schema.Accessibility,
		Kind:          members.KindEnum,
		Deprecated:    p.schema.Deprecated,
		Underlying:    p.underlying(),
	}
}

// ToSerial is total over declared cases.
func (p *fixed) ToSerial(value expr.Expr) expr.Expr {
	if p.byConversion() {
		return expr.Convert{Operand: value, To: p.raw}
	}

	return expr.Call{Owner: p.self, Method: p.serialMethod(), Args: []expr.Expr{value}, Of: p.raw}
}

// ToEnum is partial: unknown raw values raise a mapping error.
func (p *fixed) ToEnum(value expr.Expr) expr.Expr {
	return expr.Call{Owner: p.self, Method: p.parseMethod(), Args: []expr.Expr{value}, Of: p.self}
}

func (p *fixed) buildModel() (*built, error) {
	values, err := resolveValues(p.schema, ident.NewNamespace(p.schema.Name))
	if err != nil {
		return nil, err
	}

	under := p.underlying()
	model := &members.Model{Declaration: p.Declaration()}
	enumMembers := make([]EnumMember, 0, len(values))

	for i, v := range values {
		init := expr.Literal{Of: under, Value: int64(i)}
		if p.byConversion() {
			init = v.literal
		}

		field := &members.Field{
			Name:          v.name,
			Description:   v.description(),
			Accessibility: members.AccessPublic,
			Modifiers:     members.ModConst,
			Type:          p.self,
			Initializer:   init,
		}
		model.Fields = append(model.Fields, field)
		enumMembers = append(enumMembers, EnumMember{Name: v.name, BackingField: field, Literal: v.literal})
	}

	if !p.byConversion() {
		model.Methods = append(model.Methods, p.serializer(enumMembers))
	}

	model.Methods = append(model.Methods, p.parser(enumMembers))

	return &built{model: model, enumMembers: enumMembers}, nil
}

func (p *fixed) unknownValue(subject expr.Expr) expr.Throw {
	return expr.Throw{
		Kind:    expr.ErrorMapping,
		Param:   "value",
		Message: fmt.Sprintf("Unknown %s value.", p.schema.Name),
		Subject: subject,
	}
}

// serializer switches over the cases, returning each literal.
func (p *fixed) serializer(cases []EnumMember) *members.Method {
	value := members.Parameter{Name: "value", Type: p.self}

	sw := expr.Switch{
		Subject: value.Ref(),
		Default: []expr.Stmt{p.unknownValue(value.Ref())},
	}
	for _, c := range cases {
		sw.Cases = append(sw.Cases, expr.Case{Match: p.caseRef(c.Name), Body: expr.Body(c.Literal)})
	}

	return &members.Method{
		Name:          p.serialMethod(),
		Description:   fmt.Sprintf("Returns the serialized form of a %s value.", p.schema.Name),
		Accessibility: p.schema.Accessibility,
		Modifiers:     members.ModStatic | members.ModExtension,
		Parameters:    []members.Parameter{value},
		ReturnType:    p.raw,
		Body:          []expr.Stmt{sw},
	}
}

// parser compares a raw value against every literal: text ignoring case,
// numbers exactly. Text literals differing only in case are first matched
// exactly, so each of them parses to its own case.
func (p *fixed) parser(cases []EnumMember) *members.Method {
	value := members.Parameter{Name: "value", Type: p.raw}
	text := p.schema.ValueKind() == primitive.ValueKindString

	body := make([]expr.Stmt, 0, 2*len(cases)+1)
	if text && foldCollides(cases) {
		for _, c := range cases {
			body = append(body, expr.If{Cond: expr.Equal(value.Ref(), c.Literal), Then: expr.Body(p.caseRef(c.Name))})
		}
	}

	for _, c := range cases {
		var cond expr.Expr
		if text {
			cond = expr.EqualFold(value.Ref(), c.Literal)
		} else {
			cond = expr.Equal(value.Ref(), c.Literal)
		}

		body = append(body, expr.If{Cond: cond, Then: expr.Body(p.caseRef(c.Name))})
	}

	body = append(body, p.unknownValue(value.Ref()))

	return &members.Method{
		Name:          p.parseMethod(),
		Description:   fmt.Sprintf("Parses a raw value into %s.", p.schema.Name),
		Accessibility: p.schema.Accessibility,
		Modifiers:     members.ModStatic | members.ModExtension,
		Parameters:    []members.Parameter{value},
		ReturnType:    p.self,
		Body:          body,
	}
}

// foldCollides reports whether two text literals are equal ignoring case.
func foldCollides(values []EnumMember) bool {
	folder := cases.Fold()
	seen := make(map[string]struct{}, len(values))

	for _, v := range values {
		text, _ := v.Literal.Value.(string)

		key := folder.String(text)
		if _, ok := seen[key]; ok {
			return true
		}

		seen[key] = struct{}{}
	}

	return false
}
