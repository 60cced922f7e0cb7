package plan

import (
	"errors"
	"fmt"

	"variantgen/capability"
	"variantgen/internal/diagnostic"
	"variantgen/internal/schema"
)

// validateStructure checks the variant against the structural preconditions
// of the enum's capability profile and resolves the target role.
//
// Profiles:
//   - event, message: no preconditions beyond well-formed fields.
//   - entity_event: the variant must have named fields and exactly one field
//     must resolve as the target, via an explicit tag or the conventional
//     entity-identity name.
func validateStructure(
	e *schema.Enum,
	v *schema.Variant,
	cfg *EffectiveConfig,
	diags *diagnostic.Diagnostics,
) {
	if e.Profile != capability.ProfileEntityEvent {
		return
	}

	if v.Kind != schema.KindNamed {
		diags.AddError("structural",
			fmt.Sprintf("entity_event profile requires named fields, variant is %s", v.Kind),
			e.Name, v.Name, "")

		return
	}

	idx, err := selectTarget(v.Fields)

	switch {
	case errors.Is(err, errAmbiguous):
		diags.AddError("ambiguous_target", "more than one field qualifies as target", e.Name, v.Name, "target")
	case errors.Is(err, errNoCandidate):
		diags.AddError("missing_target",
			fmt.Sprintf("no field tagged target and no field named %q", conventionalTarget),
			e.Name, v.Name, "target")
	default:
		cfg.TargetField = idx
	}
}

// resolveDeref resolves the deref role for one variant. Only ambiguity is an
// error; a variant where no field qualifies simply has no deref capability.
func resolveDeref(
	e *schema.Enum,
	v *schema.Variant,
	cfg *EffectiveConfig,
	diags *diagnostic.Diagnostics,
) {
	idx, err := selectDeref(v.Fields)
	if errors.Is(err, errAmbiguous) {
		diags.AddError("ambiguous_deref", "more than one field tagged deref", e.Name, v.Name, "deref")
		return
	}

	cfg.DerefField = idx
}
