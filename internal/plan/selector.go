package plan

import (
	"errors"

	"variantgen/internal/common"
	"variantgen/internal/ident"
	"variantgen/internal/schema"
)

// conventionalTarget is the normalized form of the conventional
// entity-identity field name. A field named "entity" (in any casing or
// separator style) is the fallback target when no explicit tag is present.
const conventionalTarget = "entity"

var (
	errNoCandidate = errors.New("no candidate field")
	errAmbiguous   = errors.New("more than one candidate field")
)

// selectTarget resolves the target field role. Explicit tags win over the
// naming convention; a field that both matches the convention and carries the
// tag is simply the tagged field. More than one candidate at either stage is
// ambiguous, never a first-match pick, so resolution stays deterministic.
func selectTarget(fields []schema.Field) (int, error) {
	tagged := indicesWithTag(fields, schema.TagTarget)

	if common.IsMultiple(tagged) {
		return -1, errAmbiguous
	}

	if idx, ok := common.First(tagged); ok {
		return idx, nil
	}

	var conventional []int

	for i := range fields {
		if ident.Normalize(fields[i].Name) == conventionalTarget {
			conventional = append(conventional, i)
		}
	}

	if common.IsMultiple(conventional) {
		return -1, errAmbiguous
	}

	if idx, ok := common.First(conventional); ok {
		return idx, nil
	}

	return -1, errNoCandidate
}

// selectDeref resolves the deref field role. Explicit tags win; absent any
// tag, a single-field variant derefs to its only field and anything else
// leaves the capability silently inactive (-1, nil).
func selectDeref(fields []schema.Field) (int, error) {
	tagged := indicesWithTag(fields, schema.TagDeref)

	if common.IsMultiple(tagged) {
		return -1, errAmbiguous
	}

	if idx, ok := common.First(tagged); ok {
		return idx, nil
	}

	if common.IsSingle(fields) {
		return 0, nil
	}

	return -1, nil
}

// indicesWithTag returns the declaration-order indices of fields carrying the tag.
func indicesWithTag(fields []schema.Field, tag schema.Tag) []int {
	var out []int

	for i := range fields {
		if fields[i].Tags.Has(tag) {
			out = append(out, i)
		}
	}

	return out
}
