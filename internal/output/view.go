package output

import (
	"member-generator/internal/expr"
	"member-generator/internal/members"
	"member-generator/internal/pipeline"
	"member-generator/internal/provider"
)

// TypeView is the serializable form of one enumeration model.
type TypeView struct {
	Name          string            `yaml:"name" json:"name"`
	Variant       string            `yaml:"variant" json:"variant"`
	Declaration   DeclarationView   `yaml:"declaration" json:"declaration"`
	Fields        []FieldView       `yaml:"fields,omitempty" json:"fields,omitempty"`
	Properties    []PropertyView    `yaml:"properties,omitempty" json:"properties,omitempty"`
	Constructors  []ConstructorView `yaml:"constructors,omitempty" json:"constructors,omitempty"`
	Methods       []MethodView      `yaml:"methods,omitempty" json:"methods,omitempty"`
	Serialization SerializationView `yaml:"serialization" json:"serialization"`
}

// RecordView is the serializable form of the properties of one record.
type RecordView struct {
	Name       string         `yaml:"name" json:"name"`
	Properties []PropertyView `yaml:"properties" json:"properties"`
}

type DeclarationView struct {
	Accessibility string   `yaml:"accessibility" json:"accessibility"`
	Kind          string   `yaml:"kind" json:"kind"`
	Underlying    string   `yaml:"underlying" json:"underlying"`
	Implements    []string `yaml:"implements,omitempty" json:"implements,omitempty"`
	Deprecated    bool     `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Description   string   `yaml:"description,omitempty" json:"description,omitempty"`
}

type FieldView struct {
	Name        string `yaml:"name" json:"name"`
	Access      string `yaml:"access" json:"access"`
	Modifiers   string `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
	Type        string `yaml:"type" json:"type"`
	Initializer string `yaml:"initializer,omitempty" json:"initializer,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

type PropertyView struct {
	Name        string `yaml:"name" json:"name"`
	Access      string `yaml:"access" json:"access"`
	Modifiers   string `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
	Type        string `yaml:"type" json:"type"`
	Mutability  string `yaml:"mutability" json:"mutability"`
	Initializer string `yaml:"initializer,omitempty" json:"initializer,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

type ConstructorView struct {
	Access      string   `yaml:"access" json:"access"`
	Parameters  []string `yaml:"parameters" json:"parameters"`
	Body        []string `yaml:"body" json:"body"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}

type MethodView struct {
	Signature   string   `yaml:"signature" json:"signature"`
	Kind        string   `yaml:"kind" json:"kind"`
	Access      string   `yaml:"access" json:"access"`
	Modifiers   string   `yaml:"modifiers,omitempty" json:"modifiers,omitempty"`
	Returns     string   `yaml:"returns" json:"returns"`
	Body        []string `yaml:"body" json:"body"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// SerializationView shows the conversion expressions handed to serializers.
type SerializationView struct {
	ToSerial string `yaml:"toSerial" json:"toSerial"`
	ToEnum   string `yaml:"toEnum" json:"toEnum"`
}

// NewTypeView renders the model of p.
func NewTypeView(p provider.TypeProvider, model *members.Model) TypeView {
	variant := provider.VariantFixed
	if p.IsExtensible() {
		variant = provider.VariantExtensible
	}

	decl := model.Declaration
	v := TypeView{
		Name:    decl.Name,
		Variant: variant.String(),
		Declaration: DeclarationView{
			Accessibility: decl.Accessibility.String(),
			Kind:          decl.Kind.String(),
			Underlying:    decl.Underlying.String(),
			Deprecated:    decl.Deprecated,
			Description:   decl.Description,
		},
		Serialization: SerializationView{
			ToSerial: p.ToSerial(expr.Param{Name: "value", Of: decl.Self()}).String(),
			ToEnum:   p.ToEnum(expr.Param{Name: "value", Of: decl.Underlying}).String(),
		},
	}

	for _, t := range decl.Implements {
		v.Declaration.Implements = append(v.Declaration.Implements, t.String())
	}

	for _, f := range model.Fields {
		v.Fields = append(v.Fields, FieldView{
			Name:        f.Name,
			Access:      f.Accessibility.String(),
			Modifiers:   f.Modifiers.String(),
			Type:        f.Type.String(),
			Initializer: render(f.Initializer),
			Description: f.Description,
		})
	}

	for _, prop := range model.Properties {
		v.Properties = append(v.Properties, newPropertyView(prop))
	}

	for _, c := range model.Constructors {
		v.Constructors = append(v.Constructors, ConstructorView{
			Access:      c.Accessibility.String(),
			Parameters:  parameters(c.Parameters),
			Body:        statements(c.Body),
			Description: c.Description,
		})
	}

	for _, m := range model.Methods {
		v.Methods = append(v.Methods, MethodView{
			Signature:   m.Signature(),
			Kind:        m.Kind.String(),
			Access:      m.Accessibility.String(),
			Modifiers:   m.Modifiers.String(),
			Returns:     m.ReturnType.String(),
			Body:        statements(m.Body),
			Description: m.Description,
		})
	}

	return v
}

// NewRecordView renders synthesized record properties.
func NewRecordView(r pipeline.RecordResult) RecordView {
	v := RecordView{Name: r.Schema.Name}
	for _, prop := range r.Properties {
		v.Properties = append(v.Properties, newPropertyView(prop))
	}

	return v
}

func newPropertyView(p *members.Property) PropertyView {
	return PropertyView{
		Name:        p.Name,
		Access:      p.Accessibility.String(),
		Modifiers:   p.Modifiers.String(),
		Type:        p.Type.String(),
		Mutability:  p.Mutability.String(),
		Initializer: render(p.Initializer),
		Description: p.Description,
	}
}

func render(e expr.Expr) string {
	if e == nil {
		return ""
	}

	return e.String()
}

func parameters(params []members.Parameter) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = p.Type.String() + " " + p.Name
	}

	return out
}

func statements(stmts []expr.Stmt) []string {
	out := make([]string, len(stmts))
	for i, s := range stmts {
		out[i] = s.String()
	}

	return out
}
