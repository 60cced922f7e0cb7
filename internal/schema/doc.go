// Package schema provides the enum schema model, YAML parsing, and
// parse-level well-formedness validation.
//
// A schema file is the hand-off from the external parsing layer: it already
// describes syntactically valid enum declarations, their variants and fields,
// and raw configuration directives at enum and variant level. Directive
// merging and capability validation happen later, in the plan package, so
// that diagnostics can reference the fully merged view.
//
// # Schema Overview
//
// A schema file has the following structure:
//
//	version: "1"
//	enums:
//	  - name: EntityHealthEvent
//	    profile: entity_event
//	    imports:
//	      - example.com/game/ecs
//	    config:
//	      propagate: true
//	      auto_propagate: true
//	    variants:
//	      - name: Damaged
//	        fields:
//	          - name: entity
//	            type: ecs.Entity
//	          - name: amount
//	            type: uint32
//	      - name: Died
//	        config:
//	          propagate: false
//	        fields:
//	          - name: entity
//	            type: ecs.Entity
//
// # Directive Keys
//
//   - target, deref: capability tags on individual fields (no value)
//   - propagate: enum/variant flag; true enables the host-default relation,
//     a string names an explicit relation type
//   - auto_propagate: boolean flag, requires propagate
//
// # Variant Kinds
//
// A variant's kind is derived from its field list, never declared:
//   - no fields: unit
//   - fields without names: tuple
//   - fields with names: named
//
// Mixing named and unnamed fields in one variant is a parse-level error.
package schema
