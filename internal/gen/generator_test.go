package gen

import (
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"variantgen/internal/plan"
	"variantgen/internal/schema"
)

// resolveAll runs the schema through validation and resolution, failing the
// test on any diagnostic error.
func resolveAll(t *testing.T, source string) []*plan.Plan {
	t.Helper()

	f, err := schema.Parse([]byte(source))
	require.NoError(t, err)

	diags := schema.Validate(f)
	require.False(t, diags.HasErrors(), diags.Error())

	r := plan.NewResolver(plan.DefaultConfig())

	var plans []*plan.Plan

	for i := range f.Enums {
		p, pd := r.Resolve(&f.Enums[i])
		require.False(t, pd.HasErrors(), pd.Error())

		plans = append(plans, p)
	}

	return plans
}

func generate(t *testing.T, source, schemaSource string) []GeneratedFile {
	t.Helper()

	g := NewGenerator(Config{})

	files, err := g.Generate(source, resolveAll(t, schemaSource))
	require.NoError(t, err)

	return files
}

func TestGenerateEventEnum(t *testing.T) {
	files := generate(t, "", `
enums:
  - name: GameEvent
    profile: event
    variants:
      - name: Victory
        fields:
          - type: string
      - name: ScoreChanged
        fields:
          - name: team
            type: string
          - name: score
            type: int32
      - name: GameOver
`)

	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join("game_event", "game_event.go"), files[0].Filename)

	g := goldie.New(t)
	g.Assert(t, "game_event", files[0].Content)
}

func TestGenerateEntityEventEnum(t *testing.T) {
	files := generate(t, "", `
enums:
  - name: EntityHealthEvent
    profile: entity_event
    imports:
      - example.com/game/ecs
    config:
      propagate: true
      auto_propagate: true
    variants:
      - name: Damaged
        fields:
          - name: entity
            type: ecs.Entity
          - name: amount
            type: uint32
      - name: Died
        fields:
          - name: entity
            type: ecs.Entity
`)

	require.Len(t, files, 1)

	g := goldie.New(t)
	g.Assert(t, "entity_health_event", files[0].Content)
}

func TestGenerateForwardsGenerics(t *testing.T) {
	files := generate(t, "", `
enums:
  - name: OwnedMessage
    profile: message
    generics:
      - name: T
    variants:
      - name: Owned
        fields:
          - type: T
      - name: Dropped
`)

	require.Len(t, files, 1)
	content := string(files[0].Content)

	assert.Contains(t, content, "type Owned[T any] struct {\n\tF0 T\n}")
	assert.Contains(t, content, "func (Owned[T]) Binding() capability.Binding {")
	assert.Contains(t, content, "func (v *Owned[T]) Deref() *T {\n\treturn &v.F0\n}")

	// Unused parameters are forwarded anyway so all types share one shape.
	assert.Contains(t, content, "type Dropped[T any] struct{}")
}

func TestGenerateNamespaceCollision(t *testing.T) {
	plans := resolveAll(t, `
enums:
  - name: PlayerEvent
    profile: event
    variants:
      - name: Joined
  - name: Player_Event
    profile: event
    variants:
      - name: Left
`)

	g := NewGenerator(Config{})

	_, err := g.Generate("", plans)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player_event")
}

func TestGenerateNamespaceCollisionAcrossFiles(t *testing.T) {
	g := NewGenerator(Config{})

	_, err := g.Generate("a.yaml", resolveAll(t, `
enums:
  - name: PlayerEvent
    profile: event
    variants:
      - name: Joined
`))
	require.NoError(t, err)

	// A second schema file in the same run must not reuse the package.
	_, err = g.Generate("b.yaml", resolveAll(t, `
enums:
  - name: Player_Event
    profile: event
    variants:
      - name: Left
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player_event")
	assert.Contains(t, err.Error(), "PlayerEvent")
}

func TestGenerateImportAliases(t *testing.T) {
	files := generate(t, "", `
enums:
  - name: CombatEvent
    profile: event
    imports:
      - path: example.com/game/combat
        alias: cmb
      - path: example.com/game/ecs
        alias: ecs
    variants:
      - name: Struck
        fields:
          - name: attacker
            type: ecs.Entity
          - name: damage
            type: cmb.Damage
`)

	require.Len(t, files, 1)
	content := string(files[0].Content)

	assert.Contains(t, content, "cmb \"example.com/game/combat\"")

	// An alias matching the package's own name is dropped.
	assert.Contains(t, content, "\t\"example.com/game/ecs\"\n")
	assert.NotContains(t, content, "ecs \"example.com/game/ecs\"")
}

func TestGenerateSourceHeader(t *testing.T) {
	files := generate(t, "schemas/events.yaml", `
enums:
  - name: GameEvent
    profile: event
    variants:
      - name: GameOver
`)

	require.Len(t, files, 1)
	assert.Contains(t, string(files[0].Content), "// source: schemas/events.yaml\n")
}

func TestGenerateCustomRelation(t *testing.T) {
	files := generate(t, "", `
enums:
  - name: ChainEvent
    profile: entity_event
    imports:
      - example.com/game/ecs
    variants:
      - name: Linked
        config:
          propagate: game.TeamOf
          auto_propagate: true
        fields:
          - name: entity
            type: ecs.Entity
`)

	require.Len(t, files, 1)
	content := string(files[0].Content)

	assert.Contains(t, content,
		`Propagate: &capability.Propagation{Relation: "game.TeamOf", Auto: true}`)
}
