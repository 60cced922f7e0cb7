package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseValid(t *testing.T, yaml string) *File {
	t.Helper()

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)

	return f
}

func TestValidateOK(t *testing.T) {
	f := parseValid(t, `
enums:
  - name: GameEvent
    profile: event
    variants:
      - name: Victory
        fields:
          - type: string
      - name: GameOver
`)

	diags := Validate(f)
	assert.True(t, diags.IsValid())
	assert.Empty(t, diags.Warnings)
}

func TestValidateDuplicateVariant(t *testing.T) {
	f := parseValid(t, `
enums:
  - name: GameEvent
    profile: event
    variants:
      - name: Victory
      - name: Victory
`)

	diags := Validate(f)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "duplicate_variant", diags.Errors[0].Code)
	assert.Equal(t, "GameEvent", diags.Errors[0].Enum)
	assert.Equal(t, "Victory", diags.Errors[0].Variant)
}

func TestValidateCollidingFieldNames(t *testing.T) {
	f := parseValid(t, `
enums:
  - name: TeamEvent
    profile: event
    variants:
      - name: Changed
        fields:
          - name: team_id
            type: int
          - name: teamId
            type: int
`)

	diags := Validate(f)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "colliding_field", diags.Errors[0].Code)
	assert.Contains(t, diags.Errors[0].Message, `"TeamId"`)
	assert.Equal(t, "Changed", diags.Errors[0].Variant)
}

func TestValidateMixedFields(t *testing.T) {
	f := parseValid(t, `
enums:
  - name: GameEvent
    profile: event
    variants:
      - name: Odd
        fields:
          - name: score
            type: int32
          - type: string
`)

	diags := Validate(f)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "mixed_fields", diags.Errors[0].Code)
}

func TestValidateUnknownProfile(t *testing.T) {
	f := parseValid(t, `
enums:
  - name: GameEvent
    profile: broadcast
    variants:
      - name: Victory
`)

	diags := Validate(f)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "unknown_profile", diags.Errors[0].Code)
}

func TestValidateRepeatedTag(t *testing.T) {
	f := parseValid(t, `
enums:
  - name: CombatEvent
    profile: entity_event
    variants:
      - name: Attack
        fields:
          - name: attacker
            type: ecs.Entity
            tags: [target, target]
`)

	diags := Validate(f)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "repeated_tag", diags.Errors[0].Code)
}

func TestValidateUnknownTag(t *testing.T) {
	f := parseValid(t, `
enums:
  - name: CombatEvent
    profile: entity_event
    variants:
      - name: Attack
        fields:
          - name: attacker
            type: ecs.Entity
            tags: [primary]
`)

	diags := Validate(f)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "unknown_tag", diags.Errors[0].Code)
}

func TestValidateEmptyEnumWarns(t *testing.T) {
	f := parseValid(t, `
enums:
  - name: Hollow
    profile: message
    variants: []
`)

	diags := Validate(f)
	assert.True(t, diags.IsValid())
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "empty_enum", diags.Warnings[0].Code)
}

func TestValidateMissingFieldType(t *testing.T) {
	f := parseValid(t, `
enums:
  - name: GameEvent
    profile: event
    variants:
      - name: Victory
        fields:
          - name: team
`)

	diags := Validate(f)
	require.True(t, diags.HasErrors())
	assert.Equal(t, "missing_field_type", diags.Errors[0].Code)
}
