// Package capability defines the value objects the generator attaches to
// every synthesized type. Bindings are plain data: the downstream runtime
// layer reads them to wire dispatch, storage, and hierarchy traversal, and
// this package deliberately carries no behavior beyond formatting.
package capability

// Profile is the requested category of synthesized type.
type Profile string

const (
	// ProfileEvent is a global observer event with no addressing requirements.
	ProfileEvent Profile = "event"
	// ProfileMessage is a buffered message delivered through queue readers.
	ProfileMessage Profile = "message"
	// ProfileEntityEvent is an observer event addressed to a single entity.
	ProfileEntityEvent Profile = "entity_event"
)

// IsValid returns true if the profile is a recognized value.
func (p Profile) IsValid() bool {
	return p == ProfileEvent || p == ProfileMessage || p == ProfileEntityEvent
}

// DefaultRelation selects the host runtime's canonical hierarchy relation
// (typically parent/child) when no explicit relation type is configured.
const DefaultRelation = "default"

// Propagation describes whether and how a synthesized type's effect
// traverses a hierarchy of related entities.
type Propagation struct {
	// Relation is the relation type to traverse. DefaultRelation means the
	// host-defined canonical relation; anything else is an explicit relation
	// type expression passed through unexamined.
	Relation string
	// Auto reports whether traversal continues without an explicit opt-in at
	// each observer.
	Auto bool
}

// Binding is the generation-time metadata attached to one synthesized type.
type Binding struct {
	// Enum and Variant identify the source declaration.
	Enum    string
	Variant string
	// Profile is the capability profile the type was generated under.
	Profile Profile
	// Target is the Go field name addressing the runtime entity. Empty
	// unless the profile is ProfileEntityEvent.
	Target string
	// Deref is the Go field name the type transparently exposes as its
	// value. Empty when the deref capability did not resolve.
	Deref string
	// Propagate is nil when the type's effect stays on its target entity.
	Propagate *Propagation
}

// String returns a compact human-readable form, e.g. "GameEvent.Victory (event)".
func (b Binding) String() string {
	return b.Enum + "." + b.Variant + " (" + string(b.Profile) + ")"
}
