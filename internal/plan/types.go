package plan

import (
	"variantgen/capability"
	"variantgen/internal/schema"
)

// Config holds resolution-wide switches.
type Config struct {
	// Deref enables deref-field synthesis. When false, the deref selection
	// path is never invoked and no deref metadata is produced anywhere.
	Deref bool
}

// DefaultConfig returns the default resolver configuration.
func DefaultConfig() Config {
	return Config{Deref: true}
}

// Plan is the resolved output for one enum declaration. It contains
// everything code generation needs.
type Plan struct {
	// Enum is the source declaration.
	Enum *schema.Enum
	// Variants pairs each variant with its effective configuration,
	// in declaration order.
	Variants []ResolvedVariant
}

// ResolvedVariant is one variant with its merged, validated configuration.
type ResolvedVariant struct {
	Variant *schema.Variant
	Config  EffectiveConfig
}

// EffectiveConfig is the merged two-level configuration for one variant.
// It is a pure function of the enum-level and variant-level directive sets.
type EffectiveConfig struct {
	// TargetField indexes the variant's field list, -1 when no target role
	// applies.
	TargetField int
	// DerefField indexes the variant's field list, -1 when the deref
	// capability is inactive for this variant.
	DerefField int
	// Propagate is nil unless propagation is enabled at some level.
	Propagate *schema.PropagateSpec
	// Auto is meaningful only when Propagate is set.
	Auto bool
}

// HasTarget returns true if a target field resolved.
func (c EffectiveConfig) HasTarget() bool {
	return c.TargetField >= 0
}

// HasDeref returns true if a deref field resolved.
func (c EffectiveConfig) HasDeref() bool {
	return c.DerefField >= 0
}

// Binding builds the capability value object handed to the downstream
// implementation layer for one synthesized type. Field roles are reported by
// exported Go name, computed by the caller.
func (rv *ResolvedVariant) Binding(e *schema.Enum, targetName, derefName string) capability.Binding {
	b := capability.Binding{
		Enum:    e.Name,
		Variant: rv.Variant.Name,
		Profile: e.Profile,
		Target:  targetName,
		Deref:   derefName,
	}

	if rv.Config.Propagate != nil && rv.Config.Propagate.Enabled {
		relation := rv.Config.Propagate.Relation
		if relation == "" {
			relation = capability.DefaultRelation
		}

		b.Propagate = &capability.Propagation{
			Relation: relation,
			Auto:     rv.Config.Auto,
		}
	}

	return b
}
