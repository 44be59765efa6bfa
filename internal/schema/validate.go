package schema

import (
	"fmt"

	"member-generator/internal/diagnostic"
)

// Validate reports structural problems of a schema document: missing names,
// missing value types and values, duplicate type and field names.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("schema_is_nil", "schema file is nil", "", "")
		return res
	}

	if f.Version != "1" {
		res.AddError("unsupported_version", fmt.Sprintf("unsupported schema version %q", f.Version), "", f.Version)
	}

	seenTypes := map[string]struct{}{}
	declare := func(name string) {
		if _, ok := seenTypes[name]; ok {
			res.AddError("duplicate_type", fmt.Sprintf("type %q is declared more than once", name), name, "")
			return
		}

		seenTypes[name] = struct{}{}
	}

	for i := range f.Enums {
		e := &f.Enums[i]
		if e.Name == "" {
			res.AddError("missing_name", "enumeration has no name", "", fmt.Sprintf("enums[%d]", i))
			continue
		}

		declare(e.Name)
		validateEnum(res, e)
	}

	for i := range f.Records {
		r := &f.Records[i]
		if r.Name == "" {
			res.AddError("missing_name", "record has no name", "", fmt.Sprintf("records[%d]", i))
			continue
		}

		declare(r.Name)
		validateRecord(res, r)
	}

	return res
}

func validateEnum(res *diagnostic.Diagnostics, e *EnumSchema) {
	if !e.ValueType.IsValid() {
		res.AddError("missing_value_type", "enumeration has no value type", e.Name, "")
	}

	if len(e.Values) == 0 {
		res.AddWarning("empty_enum", "enumeration declares no values", e.Name, "")
	}

	for j, v := range e.Values {
		path := fmt.Sprintf("values[%d]", j)

		if v.Value == nil {
			res.AddError("missing_value", "allowed value has no literal", e.Name, path)
		}

		if v.Name == "" {
			res.AddError("missing_value_name", "allowed value has no name", e.Name, path)
		}
	}
}

func validateRecord(res *diagnostic.Diagnostics, r *RecordSchema) {
	seen := map[string]struct{}{}

	for j, fld := range r.Fields {
		path := fmt.Sprintf("fields[%d]", j)

		if fld.Name == "" {
			res.AddError("missing_field_name", "field has no name", r.Name, path)
			continue
		}

		if _, ok := seen[fld.Name]; ok {
			res.AddError("duplicate_field", fmt.Sprintf("field %q is declared more than once", fld.Name), r.Name, fld.Name)
		}

		seen[fld.Name] = struct{}{}

		if fld.Type.Name == "" {
			res.AddError("missing_field_type", "field has no type", r.Name, fld.Name)
			continue
		}

		if fld.Type.IsLiteral && !fld.Type.Nullable {
			if _, err := fld.Type.LiteralExpr(); err != nil {
				res.AddError("invalid_literal", err.Error(), r.Name, fld.Name)
			}
		}

		if fld.Type.ReadOnlyView && !fld.Type.Collection {
			res.AddWarning("read_only_view_scalar", "readOnlyView only applies to collections", r.Name, fld.Name)
		}
	}
}
