package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"variantgen/capability"
	"variantgen/internal/common"
	"variantgen/internal/plan"
	"variantgen/internal/schema"
)

// capabilityImport is the package every generated file imports for its
// binding value objects.
const capabilityImport = "variantgen/capability"

// Config holds configuration for code generation.
type Config struct {
	// OutputDir is the directory where generated packages are written.
	OutputDir string
}

// Generator generates Go code from resolved enum plans. One Generator serves
// a whole run: it remembers every namespace it has emitted so that enums from
// different schema files cannot claim the same package in one output tree.
type Generator struct {
	cfg        Config
	namespaces map[string]string
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(cfg Config) *Generator {
	return &Generator{
		cfg:        cfg,
		namespaces: make(map[string]string),
	}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is relative to the output directory (e.g. "game_event/game_event.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate generates one file per plan. source is the schema file path
// recorded in the generated headers. Namespaces must be unique across every
// Generate call on one Generator; a collision aborts generation.
func (g *Generator) Generate(source string, plans []*plan.Plan) ([]GeneratedFile, error) {
	var files []GeneratedFile

	for _, p := range plans {
		ns := Namespace(p.Enum.Name)
		if prev, ok := g.namespaces[ns]; ok {
			return nil, fmt.Errorf("enums %s and %s both generate package %s", prev, p.Enum.Name, ns)
		}

		g.namespaces[ns] = p.Enum.Name

		file, err := g.generateEnum(p, source)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", p.Enum.Name, err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// generateEnum renders and formats the file for one enum plan.
func (g *Generator) generateEnum(p *plan.Plan, source string) (*GeneratedFile, error) {
	data := g.buildTemplateData(p, source)

	var buf bytes.Buffer
	if err := enumTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: keep the unformatted code around to aid debugging.
		if g.cfg.OutputDir != "" {
			_ = writeDebugUnformatted(g.cfg.OutputDir, data.Filename, buf.Bytes())
		}

		return &GeneratedFile{
			Filename: data.Filename,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Filename: data.Filename,
		Content:  formatted,
	}, nil
}

// templateData holds all data needed for the enum file template.
type templateData struct {
	Package  string
	Enum     string
	Source   string
	Filename string
	Imports  []importSpec
	Types    []typeData
}

// importSpec represents an import statement.
type importSpec struct {
	Alias string
	Path  string
}

// typeData represents one synthesized type.
type typeData struct {
	Name string
	// ParamsDecl is the type parameter declaration, e.g. "[T any]".
	ParamsDecl string
	// ParamsUse is the parameter usage on receivers, e.g. "[T]".
	ParamsUse string
	Fields    []fieldData
	Binding   bindingData
	Target    *accessorData
	Deref     *accessorData
}

// fieldData is one struct field of a synthesized type.
type fieldData struct {
	Name string
	Type string
}

// accessorData describes a typed accessor for a resolved field role.
type accessorData struct {
	Field string
	Type  string
}

// bindingData holds the rendered pieces of the capability binding literal.
type bindingData struct {
	ProfileExpr string
	Target      string
	Deref       string
	Propagate   *propagationData
}

// propagationData holds the rendered propagation literal pieces.
type propagationData struct {
	RelationExpr string
	Auto         bool
}

// buildTemplateData constructs the template data for one enum plan.
func (g *Generator) buildTemplateData(p *plan.Plan, source string) *templateData {
	ns := Namespace(p.Enum.Name)

	data := &templateData{
		Package:  ns,
		Enum:     p.Enum.Name,
		Source:   source,
		Filename: filepath.Join(ns, ns+".go"),
	}

	// Collect imports: the capability package plus the enum's declared imports.
	imports := map[string]importSpec{
		capabilityImport: {Path: capabilityImport},
	}

	for _, imp := range p.Enum.Imports {
		alias := imp.Alias
		if alias == common.PkgAlias(imp.Path) {
			alias = ""
		}

		imports[imp.Path] = importSpec{Alias: alias, Path: imp.Path}
	}

	for _, spec := range imports {
		data.Imports = append(data.Imports, spec)
	}

	sort.Slice(data.Imports, func(i, j int) bool {
		return data.Imports[i].Path < data.Imports[j].Path
	})

	paramsDecl, paramsUse := typeParams(p.Enum.Generics)

	for i := range p.Variants {
		data.Types = append(data.Types, g.buildType(p, &p.Variants[i], paramsDecl, paramsUse))
	}

	return data
}

// buildType constructs the template data for one synthesized type.
func (g *Generator) buildType(p *plan.Plan, rv *plan.ResolvedVariant, paramsDecl, paramsUse string) typeData {
	v := rv.Variant

	td := typeData{
		Name:       v.Name,
		ParamsDecl: paramsDecl,
		ParamsUse:  paramsUse,
	}

	for i := range v.Fields {
		td.Fields = append(td.Fields, fieldData{
			Name: FieldName(&v.Fields[i], i),
			Type: v.Fields[i].Type,
		})
	}

	if rv.Config.HasTarget() {
		idx := rv.Config.TargetField
		td.Target = &accessorData{
			Field: FieldName(&v.Fields[idx], idx),
			Type:  v.Fields[idx].Type,
		}
	}

	if rv.Config.HasDeref() {
		idx := rv.Config.DerefField
		td.Deref = &accessorData{
			Field: FieldName(&v.Fields[idx], idx),
			Type:  v.Fields[idx].Type,
		}
	}

	td.Binding = g.buildBinding(p, rv, td.Target, td.Deref)

	return td
}

// buildBinding renders the capability binding literal pieces for one type.
func (g *Generator) buildBinding(p *plan.Plan, rv *plan.ResolvedVariant, target, deref *accessorData) bindingData {
	targetName := ""
	if target != nil {
		targetName = target.Field
	}

	derefName := ""
	if deref != nil {
		derefName = deref.Field
	}

	b := rv.Binding(p.Enum, targetName, derefName)

	bd := bindingData{
		ProfileExpr: profileExpr(b.Profile),
		Target:      b.Target,
		Deref:       b.Deref,
	}

	if b.Propagate != nil {
		relExpr := "capability.DefaultRelation"
		if b.Propagate.Relation != capability.DefaultRelation {
			relExpr = strconv.Quote(b.Propagate.Relation)
		}

		bd.Propagate = &propagationData{
			RelationExpr: relExpr,
			Auto:         b.Propagate.Auto,
		}
	}

	return bd
}

// profileExpr returns the Go selector expression for a profile constant.
func profileExpr(p capability.Profile) string {
	switch p {
	case capability.ProfileMessage:
		return "capability.ProfileMessage"
	case capability.ProfileEntityEvent:
		return "capability.ProfileEntityEvent"
	default:
		return "capability.ProfileEvent"
	}
}

// typeParams renders the declaration and usage forms of the enum's type
// parameters, e.g. "[T any, U comparable]" and "[T, U]".
func typeParams(params []schema.GenericParam) (decl, use string) {
	if len(params) == 0 {
		return "", ""
	}

	var decls, uses []string
	for _, p := range params {
		decls = append(decls, p.Name+" "+p.Constraint)
		uses = append(uses, p.Name)
	}

	return "[" + strings.Join(decls, ", ") + "]", "[" + strings.Join(uses, ", ") + "]"
}

// Template for one generated enum package file.

var enumTemplate = template.Must(template.New("enum").Parse(`// Code generated by variantgen. DO NOT EDIT.
{{if .Source}}// source: {{.Source}}
{{end}}
package {{.Package}}

import (
{{range .Imports}}	{{if .Alias}}{{.Alias}} {{end}}"{{.Path}}"
{{end}})
{{range .Types}}
// {{.Name}} carries the field layout of the {{$.Enum}}.{{.Name}} variant.
{{if .Fields}}type {{.Name}}{{.ParamsDecl}} struct {
{{range .Fields}}	{{.Name}} {{.Type}}
{{end}}}{{else}}type {{.Name}}{{.ParamsDecl}} struct{}{{end}}

// Binding reports the capability metadata attached to {{.Name}}.
func ({{.Name}}{{.ParamsUse}}) Binding() capability.Binding {
	return capability.Binding{
		Enum:    "{{$.Enum}}",
		Variant: "{{.Name}}",
		Profile: {{.Binding.ProfileExpr}},
{{if .Binding.Target}}		Target:  "{{.Binding.Target}}",
{{end}}{{if .Binding.Deref}}		Deref:   "{{.Binding.Deref}}",
{{end}}{{if .Binding.Propagate}}		Propagate: &capability.Propagation{Relation: {{.Binding.Propagate.RelationExpr}}, Auto: {{.Binding.Propagate.Auto}}},
{{end}}	}
}
{{if .Target}}
// EventTarget returns the entity {{.Name}} is addressed to.
func (v {{.Name}}{{.ParamsUse}}) EventTarget() {{.Target.Type}} {
	return v.{{.Target.Field}}
}
{{end}}{{if .Deref}}
// Deref returns a pointer to the field {{.Name}} transparently exposes.
func (v *{{.Name}}{{.ParamsUse}}) Deref() *{{.Deref.Type}} {
	return &v.{{.Deref.Field}}
}
{{end}}{{end}}`))
