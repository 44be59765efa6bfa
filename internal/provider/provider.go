package provider

import (
	"log/slog"
	"sync"
	"time"

	"member-generator/internal/config"
	"member-generator/internal/expr"
	"member-generator/internal/members"
	"member-generator/internal/schema"
)

// TypeProvider synthesizes the members of one enumeration type.
type TypeProvider interface {
	Name() string
	Schema() *schema.EnumSchema
	IsExtensible() bool
	// Declaration returns the declaration-level modifiers of the type.
	Declaration() members.Declaration
	// Members returns the memoized member model.
	Members() (*members.Model, error)
	// EnumMembers returns one entry per allowed value, in declaration order.
	EnumMembers() ([]EnumMember, error)
	// ToSerial converts an instance expression to its raw value.
	ToSerial(value expr.Expr) expr.Expr
	// ToEnum converts a raw value expression to an instance.
	ToEnum(value expr.Expr) expr.Expr
}

// EnumMember ties an allowed value to the field holding it.
type EnumMember struct {
	Name         string
	BackingField *members.Field
	Literal      expr.Literal
}

type options struct {
	naming config.Naming
	logger *slog.Logger
}

// Option configures a provider.
type Option func(*options)

// WithNaming overrides the member naming conventions.
func WithNaming(n config.Naming) Option {
	return func(o *options) {
		o.naming = n
	}
}

// WithLogger sets the logger model construction is reported to.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Create returns the provider for s. It never fails; schema problems are
// reported when members are first requested.
func Create(s *schema.EnumSchema, opts ...Option) TypeProvider {
	o := options{
		naming: config.DefaultNaming(),
		logger: config.Discard(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	switch Dispatch(s) {
	case VariantExtensible:
		return newExtensible(s, o)
	default:
		return newFixed(s, o)
	}
}

type built struct {
	model       *members.Model
	enumMembers []EnumMember
}

// enumBase carries what both variants share: the schema, the resolved self
// and raw types, and the memoized build.
type enumBase struct {
	schema  *schema.EnumSchema
	opts    options
	variant VariantEnum
	self    expr.TypeRef
	raw     expr.TypeRef
	build   func() (*built, error)
}

func newBase(s *schema.EnumSchema, o options, v VariantEnum) enumBase {
	return enumBase{
		schema:  s,
		opts:    o,
		variant: v,
		self:    expr.Named(s.Name),
		raw:     expr.Scalar(s.ValueType),
	}
}

// memoize installs fn as the once-only build of the provider.
func (b *enumBase) memoize(fn func() (*built, error)) {
	b.build = sync.OnceValues(func() (*built, error) {
		start := time.Now()

		r, err := fn()
		if err != nil {
			b.opts.logger.Debug("member model rejected",
				slog.String("type", b.schema.Name),
				slog.String("variant", b.variant.String()),
				slog.Any("error", err))

			return nil, err
		}

		b.opts.logger.Debug("member model built",
			slog.String("type", b.schema.Name),
			slog.String("variant", b.variant.String()),
			slog.Int("values", len(r.enumMembers)),
			slog.Int("members", len(r.model.MemberNames())),
			slog.Duration("elapsed", time.Since(start)))

		return r, nil
	})
}

func (b *enumBase) Name() string {
	return b.schema.Name
}

func (b *enumBase) Schema() *schema.EnumSchema {
	return b.schema
}

func (b *enumBase) Members() (*members.Model, error) {
	r, err := b.build()
	if err != nil {
		return nil, err
	}

	return r.model, nil
}

func (b *enumBase) EnumMembers() ([]EnumMember, error) {
	r, err := b.build()
	if err != nil {
		return nil, err
	}

	return r.enumMembers, nil
}

// serialMethod names the representation-specific serialization accessor.
func (b *enumBase) serialMethod() string {
	return b.opts.naming.SerialPrefix + b.schema.ValueType.RepresentationName()
}

func (b *enumBase) caseRef(name string) expr.Member {
	return expr.Member{Owner: b.self, Name: name, Of: b.self}
}
