package plan

import (
	"variantgen/internal/diagnostic"
	"variantgen/internal/schema"
)

// Resolver resolves enum declarations into generation plans.
type Resolver struct {
	cfg Config
}

// NewResolver creates a new Resolver with the given configuration.
func NewResolver(cfg Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve processes one enum declaration. Every variant is resolved and
// validated independently and all diagnostics are collected; the plan is nil
// whenever any variant produced an error.
func (r *Resolver) Resolve(e *schema.Enum) (*Plan, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	p := &Plan{
		Enum:     e,
		Variants: make([]ResolvedVariant, 0, len(e.Variants)),
	}

	for i := range e.Variants {
		v := &e.Variants[i]
		merged := mergeDirectives(e.Config, v.Config)
		cfg := r.resolveVariant(e, v, merged, diags)

		p.Variants = append(p.Variants, ResolvedVariant{
			Variant: v,
			Config:  cfg,
		})
	}

	if diags.HasErrors() {
		return nil, diags
	}

	return p, diags
}

// mergeDirectives merges the enum-level and variant-level directive sets.
// Each key is taken wholesale from the variant level when present there,
// otherwise from the enum level; there are no partial merges within a key.
// In particular an explicit "propagate: false" at variant level cancels an
// enum-level "propagate: true" rather than blending with it.
func mergeDirectives(enumLevel, variantLevel schema.Directives) schema.Directives {
	out := enumLevel

	if variantLevel.Propagate != nil {
		out.Propagate = variantLevel.Propagate
	}

	if variantLevel.AutoPropagate != nil {
		out.AutoPropagate = variantLevel.AutoPropagate
	}

	return out
}

// resolveVariant validates the merged directives for one variant against the
// enum's profile and selects field roles. It always returns a config; on
// violation the corresponding role stays unresolved and an error diagnostic
// is recorded.
func (r *Resolver) resolveVariant(
	e *schema.Enum,
	v *schema.Variant,
	merged schema.Directives,
	diags *diagnostic.Diagnostics,
) EffectiveConfig {
	cfg := EffectiveConfig{
		TargetField: -1,
		DerefField:  -1,
	}

	validateStructure(e, v, &cfg, diags)

	if r.cfg.Deref {
		resolveDeref(e, v, &cfg, diags)
	}

	resolvePropagation(e, v, merged, &cfg, diags)

	return cfg
}

// resolvePropagation applies the propagation directives to the config.
// auto_propagate without propagate (at either level) is a dependency error.
func resolvePropagation(
	e *schema.Enum,
	v *schema.Variant,
	merged schema.Directives,
	cfg *EffectiveConfig,
	diags *diagnostic.Diagnostics,
) {
	enabled := merged.Propagate != nil && merged.Propagate.Enabled
	auto := merged.AutoPropagate != nil && *merged.AutoPropagate

	if auto && !enabled {
		diags.AddError("config_dependency", "auto_propagate without propagate", e.Name, v.Name, "auto_propagate")
		return
	}

	if enabled {
		cfg.Propagate = merged.Propagate
		cfg.Auto = auto
	}
}
