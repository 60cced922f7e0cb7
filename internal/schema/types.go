package schema

import (
	"errors"

	"variantgen/capability"
)

// File represents the root of a YAML schema file.
type File struct {
	// Version of the schema format (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Enums is the list of enum declarations. Each declaration is processed
	// independently; there is no shared state across declarations.
	Enums []Enum `yaml:"enums"`
}

// Enum is one enum declaration. It is immutable once parsed and owned
// exclusively by a single generator invocation.
type Enum struct {
	// Name is the enum identifier, e.g. "GameEvent". The generated package
	// name is its lower_snake_case form.
	Name string `yaml:"name"`

	// Profile is the capability profile requested for every variant.
	Profile capability.Profile `yaml:"profile"`

	// Generics is the ordered list of type parameters forwarded onto every
	// synthesized type, whether or not a given variant uses them.
	Generics []GenericParam `yaml:"generics,omitempty"`

	// Imports lists package imports emitted into the generated package so
	// that opaque field type expressions resolve.
	Imports ImportList `yaml:"imports,omitempty"`

	// Config is the enum-level raw directive set.
	Config Directives `yaml:"config,omitempty"`

	// Variants in declaration order. Order is significant for diagnostics
	// and tie-breaking only.
	Variants []Variant `yaml:"variants"`
}

// GenericParam is one type parameter with its constraint.
type GenericParam struct {
	Name string `yaml:"name"`
	// Constraint defaults to "any" when omitted.
	Constraint string `yaml:"constraint,omitempty"`
}

// Variant is one alternative of an enum declaration.
type Variant struct {
	// Name is unique within the enum and becomes the synthesized type name.
	Name string `yaml:"name"`

	// Config is the variant-level raw directive set. An absent key inherits
	// the enum-level value.
	Config Directives `yaml:"config,omitempty"`

	// Fields in declaration order; empty for unit variants.
	Fields []Field `yaml:"fields,omitempty"`

	// Kind is derived from Fields during normalization, never read from YAML.
	Kind Kind `yaml:"-"`
}

// Field is one field of a variant.
type Field struct {
	// Name is present for named variants only.
	Name string `yaml:"name,omitempty"`

	// Type is an opaque type expression, passed through unexamined.
	Type string `yaml:"type"`

	// Tags holds the capability tags on this field.
	Tags TagSet `yaml:"tags,omitempty"`
}

// Kind is the structural kind of a variant.
type Kind int

const (
	KindUnit  Kind = iota // no fields
	KindTuple             // positional fields
	KindNamed             // named fields
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindTuple:
		return "tuple"
	case KindNamed:
		return "named"
	default:
		return "unknown"
	}
}

// Tag is a capability tag on a field.
type Tag string

const (
	// TagTarget designates the field addressing the runtime entity.
	TagTarget Tag = "target"
	// TagDeref designates the field the synthesized type transparently exposes.
	TagDeref Tag = "deref"
)

// IsValid returns true if the tag is a recognized value.
func (t Tag) IsValid() bool {
	return t == TagTarget || t == TagDeref
}

// TagSet is the set of capability tags on one field.
type TagSet []Tag

// Has returns true if the set contains the given tag.
func (s TagSet) Has(t Tag) bool {
	for _, have := range s {
		if have == t {
			return true
		}
	}

	return false
}

// Count returns the number of occurrences of the given tag.
func (s TagSet) Count(t Tag) int {
	n := 0

	for _, have := range s {
		if have == t {
			n++
		}
	}

	return n
}

// Directives is a raw directive set at enum or variant level. Nil pointer
// fields mean "not specified at this level" so the merge in the plan package
// can distinguish absence from an explicit false.
type Directives struct {
	// Propagate enables hierarchy propagation, optionally naming a relation.
	Propagate *PropagateSpec `yaml:"propagate,omitempty"`

	// AutoPropagate continues traversal without per-observer opt-in.
	// Requires Propagate to be set at some level.
	AutoPropagate *bool `yaml:"auto_propagate,omitempty"`
}

// IsZero returns true if no directive is specified at this level.
func (d Directives) IsZero() bool {
	return d.Propagate == nil && d.AutoPropagate == nil
}

// PropagateSpec is a propagation directive value.
// YAML formats supported:
//   - Boolean: "propagate: true" (host-default relation) or "propagate: false"
//   - String: "propagate: game.TeamOf" (explicit relation type, passed through)
type PropagateSpec struct {
	// Enabled reports whether propagation is requested.
	Enabled bool
	// Relation is empty for the host-default relation, otherwise an explicit
	// relation type expression.
	Relation string
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (p *PropagateSpec) UnmarshalYAML(unmarshal func(any) error) error {
	var b bool
	if err := unmarshal(&b); err == nil {
		*p = PropagateSpec{Enabled: b}
		return nil
	}

	var s string
	if err := unmarshal(&s); err == nil {
		if s == "" {
			return errors.New("propagate relation must not be empty")
		}

		*p = PropagateSpec{Enabled: true, Relation: s}

		return nil
	}

	return errors.New("expected boolean or relation type string for propagate")
}

// Import is one package import for a generated package.
type Import struct {
	Path  string `yaml:"path"`
	Alias string `yaml:"alias,omitempty"`
}

// ImportList is a collection of imports that can be unmarshaled from either
// plain path strings or {path, alias} objects:
//
//	imports:
//	  - example.com/game/ecs
//	  - path: example.com/game/combat
//	    alias: cmb
type ImportList []Import

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *ImportList) UnmarshalYAML(unmarshal func(any) error) error {
	var list []any
	if err := unmarshal(&list); err != nil {
		return err
	}

	result := make([]Import, 0, len(list))

	for _, item := range list {
		switch v := item.(type) {
		case string:
			result = append(result, Import{Path: v})
		case map[string]any:
			imp := Import{}

			if p, ok := v["path"].(string); ok {
				imp.Path = p
			}

			if a, ok := v["alias"].(string); ok {
				imp.Alias = a
			}

			if imp.Path == "" {
				return errors.New("import object must specify path")
			}

			result = append(result, imp)
		default:
			return errors.New("expected string or {path, alias} for import")
		}
	}

	*l = result

	return nil
}
