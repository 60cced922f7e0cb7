package schema

import (
	"fmt"
	"go/token"

	"variantgen/internal/diagnostic"
	"variantgen/internal/ident"
)

// Validate checks parse-level well-formedness of a schema file. Capability
// preconditions (target resolution, propagation dependencies) are not checked
// here; they belong to the plan package where the merged configuration is
// available.
func Validate(f *File) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("schema_is_nil", "schema file is nil", "", "", "")
		return res
	}

	seenEnums := map[string]struct{}{}

	for i := range f.Enums {
		e := &f.Enums[i]

		if e.Name == "" {
			res.AddError("missing_enum_name", "enum declaration must have a name", "", "", "")
			continue
		}

		if !token.IsIdentifier(e.Name) {
			res.AddError("invalid_enum_name", fmt.Sprintf("enum name %q is not a valid identifier", e.Name), e.Name, "", "")
		}

		if _, ok := seenEnums[e.Name]; ok {
			res.AddError("duplicate_enum", fmt.Sprintf("duplicate enum %q", e.Name), e.Name, "", "")
			continue
		}

		seenEnums[e.Name] = struct{}{}

		if !e.Profile.IsValid() {
			res.AddError("unknown_profile", fmt.Sprintf("unknown profile %q", e.Profile), e.Name, "", "profile")
		}

		for _, imp := range e.Imports {
			if imp.Path == "" {
				res.AddError("missing_import_path", "import must specify a path", e.Name, "", "imports")
			}
		}

		if len(e.Variants) == 0 {
			res.AddWarning("empty_enum", "enum has no variants; nothing will be generated", e.Name, "", "")
		}

		validateVariants(res, e)
	}

	return res
}

// validateVariants checks the variants of one enum declaration.
func validateVariants(res *diagnostic.Diagnostics, e *Enum) {
	seen := map[string]struct{}{}

	for i := range e.Variants {
		v := &e.Variants[i]

		if v.Name == "" {
			res.AddError("missing_variant_name", "variant must have a name", e.Name, "", "")
			continue
		}

		if !token.IsIdentifier(v.Name) {
			res.AddError("invalid_variant_name", fmt.Sprintf("variant name %q is not a valid identifier", v.Name), e.Name, v.Name, "")
		}

		if _, ok := seen[v.Name]; ok {
			res.AddError("duplicate_variant", fmt.Sprintf("duplicate variant %q", v.Name), e.Name, v.Name, "")
			continue
		}

		seen[v.Name] = struct{}{}

		validateFields(res, e, v)
	}
}

// validateFields checks field well-formedness within one variant.
func validateFields(res *diagnostic.Diagnostics, e *Enum, v *Variant) {
	named := 0
	unnamed := 0
	seen := map[string]struct{}{}
	exported := map[string]string{}

	for i := range v.Fields {
		fld := &v.Fields[i]

		if fld.Name == "" {
			unnamed++
		} else {
			named++

			if _, ok := seen[fld.Name]; ok {
				res.AddError("duplicate_field", fmt.Sprintf("duplicate field %q", fld.Name), e.Name, v.Name, fld.Name)
			}

			seen[fld.Name] = struct{}{}

			// Distinct declared names may still collide once exported. The
			// generated struct would not compile, so reject them here.
			goName := ident.Export(fld.Name)
			if prev, ok := exported[goName]; ok && prev != fld.Name {
				res.AddError("colliding_field",
					fmt.Sprintf("fields %q and %q export to the same Go field %q", prev, fld.Name, goName),
					e.Name, v.Name, fld.Name)
			} else if !ok {
				exported[goName] = fld.Name
			}
		}

		if fld.Type == "" {
			res.AddError("missing_field_type", "field must have a type", e.Name, v.Name, fld.Name)
		}

		for _, tag := range fld.Tags {
			if !tag.IsValid() {
				res.AddError("unknown_tag", fmt.Sprintf("unknown tag %q", tag), e.Name, v.Name, fld.Name)
			}
		}

		// Zero or one of each tag per field.
		for _, tag := range []Tag{TagTarget, TagDeref} {
			if fld.Tags.Count(tag) > 1 {
				res.AddError("repeated_tag", fmt.Sprintf("tag %q repeated on one field", tag), e.Name, v.Name, fld.Name)
			}
		}
	}

	if named > 0 && unnamed > 0 {
		res.AddError("mixed_fields", "variant mixes named and unnamed fields", e.Name, v.Name, "")
	}
}
