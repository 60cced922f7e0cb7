package analyze

import (
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"

	"variantgen/internal/diagnostic"
	"variantgen/internal/gen"
	"variantgen/internal/schema"
)

// LoadMode specifies what information to load from generated packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedTypes |
	packages.NeedImports

// Verifier loads generated packages and checks them against schemas.
type Verifier struct {
	// Dir is the output directory the packages were generated into.
	Dir string
}

// NewVerifier creates a Verifier rooted at the given output directory.
func NewVerifier(dir string) *Verifier {
	return &Verifier{Dir: dir}
}

// Verify checks every enum of the schema file against the generated output.
// Structural mismatches are reported as diagnostics; load failures are
// returned as errors.
func (v *Verifier) Verify(f *schema.File) (*diagnostic.Diagnostics, error) {
	res := &diagnostic.Diagnostics{}

	for i := range f.Enums {
		e := &f.Enums[i]
		if len(e.Variants) == 0 {
			continue
		}

		pkg, err := v.loadPackage(gen.Namespace(e.Name))
		if err != nil {
			return nil, fmt.Errorf("loading generated package for %s: %w", e.Name, err)
		}

		verifyEnum(res, e, pkg)
	}

	return res, nil
}

// loadPackage loads one generated package by its namespace directory.
func (v *Verifier) loadPackage(ns string) (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  v.Dir,
	}

	pkgs, err := packages.Load(cfg, "./"+ns)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %s: %w", ns, err)
	}

	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected one package for %s, got %d", ns, len(pkgs))
	}

	pkg := pkgs[0]
	for _, e := range pkg.Errors {
		return nil, fmt.Errorf("package %s has errors: %v", ns, e)
	}

	return pkg, nil
}

// verifyEnum checks one enum's variants against a loaded package.
func verifyEnum(res *diagnostic.Diagnostics, e *schema.Enum, pkg *packages.Package) {
	ns := gen.Namespace(e.Name)
	if pkg.Name != ns {
		res.AddError("package_name_mismatch",
			fmt.Sprintf("generated package is named %q, want %q", pkg.Name, ns),
			e.Name, "", "")
	}

	scope := pkg.Types.Scope()

	for i := range e.Variants {
		variant := &e.Variants[i]

		obj := scope.Lookup(variant.Name)
		if obj == nil {
			res.AddError("missing_generated_type",
				fmt.Sprintf("type %s not found in package %s", variant.Name, ns),
				e.Name, variant.Name, "")

			continue
		}

		typeName, ok := obj.(*types.TypeName)
		if !ok {
			res.AddError("not_a_type",
				fmt.Sprintf("%s.%s is not a type", ns, variant.Name),
				e.Name, variant.Name, "")

			continue
		}

		st, ok := typeName.Type().Underlying().(*types.Struct)
		if !ok {
			res.AddError("not_a_struct",
				fmt.Sprintf("%s.%s is not a struct", ns, variant.Name),
				e.Name, variant.Name, "")

			continue
		}

		if st.NumFields() != len(variant.Fields) {
			res.AddError("field_count_mismatch",
				fmt.Sprintf("%s.%s has %d fields, schema declares %d",
					ns, variant.Name, st.NumFields(), len(variant.Fields)),
				e.Name, variant.Name, "")
		}
	}
}
