package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"member-generator/internal/config"
	"member-generator/internal/diagnostic"
	"member-generator/internal/members"
	"member-generator/internal/property"
	"member-generator/internal/provider"
	"member-generator/internal/schema"
)

// ErrInvalidSchema is returned when the document fails structural validation.
var ErrInvalidSchema = errors.New("invalid schema")

// EnumResult is the outcome of one enumeration. Model is nil when Err is set.
type EnumResult struct {
	Provider    provider.TypeProvider
	Model       *members.Model
	EnumMembers []provider.EnumMember
	Err         error
}

// RecordResult is the outcome of one record.
type RecordResult struct {
	Schema     *schema.RecordSchema
	Properties []*members.Property
	Err        error
}

// Result holds per-type outcomes in input order.
type Result struct {
	Enums       []EnumResult
	Records     []RecordResult
	Diagnostics diagnostic.Diagnostics
}

// Option configures a run.
type Option func(*runOptions)

type runOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger of the run and of every provider it creates.
func WithLogger(l *slog.Logger) Option {
	return func(o *runOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Run builds every type of f with at most cfg.Workers types in flight.
// The returned error is reserved for structural validation failures and
// cancellation; per-type schema errors are in Result.Diagnostics.
func Run(ctx context.Context, f *schema.File, cfg config.Config, opts ...Option) (*Result, error) {
	o := runOptions{logger: config.Discard()}
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result{}

	res.Diagnostics.Merge(*schema.Validate(f))
	if res.Diagnostics.HasErrors() {
		return res, fmt.Errorf("%w: %d structural errors", ErrInvalidSchema, len(res.Diagnostics.Errors))
	}

	res.Enums = make([]EnumResult, len(f.Enums))
	res.Records = make([]RecordResult, len(f.Records))

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}

	for i := range f.Enums {
		s := &f.Enums[i]

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			p := provider.Create(s, provider.WithNaming(cfg.Naming), provider.WithLogger(o.logger))

			result := EnumResult{Provider: p}

			result.Model, result.Err = p.Members()
			if result.Err == nil {
				result.EnumMembers, result.Err = p.EnumMembers()
			}

			res.Enums[i] = result

			return nil
		})
	}

	for i := range f.Records {
		r := &f.Records[i]

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			props, err := property.SynthesizeAll(r)
			res.Records[i] = RecordResult{Schema: r, Properties: props, Err: err}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	collect(res)

	o.logger.Info("generation finished",
		slog.Int("enums", len(res.Enums)),
		slog.Int("records", len(res.Records)),
		slog.Int("errors", len(res.Diagnostics.Errors)),
		slog.Int("warnings", len(res.Diagnostics.Warnings)))

	return res, nil
}

// collect turns per-type errors into diagnostics.
func collect(res *Result) {
	for _, e := range res.Enums {
		if e.Err == nil {
			continue
		}

		schemaErrs := provider.SchemaErrors(e.Err)
		if len(schemaErrs) == 0 {
			res.Diagnostics.AddError("build_failed", e.Err.Error(), e.Provider.Name(), "")
			continue
		}

		for _, se := range schemaErrs {
			res.Diagnostics.AddError(se.Code, se.Err.Error(), se.TypeName, se.Value)
		}
	}

	for _, r := range res.Records {
		if r.Err != nil {
			res.Diagnostics.AddError("invalid_record", r.Err.Error(), r.Schema.Name, "")
		}
	}

	res.Diagnostics.Sort()
}

// Failed reports whether any type could not be built.
func (r *Result) Failed() bool {
	return r.Diagnostics.HasErrors()
}
