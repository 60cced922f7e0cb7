// Package gen provides deterministic Go code generation for resolved enum
// plans.
//
// Generation approach uses text/template + go/format for readable output.
// For each enum, one file is emitted into a package named after the enum's
// lower_snake_case form, containing:
//   - one struct per variant with the variant's field layout
//   - the enum's type parameters copied verbatim onto every struct
//   - a Binding method returning the capability metadata value object
//   - typed EventTarget/Deref accessors where those roles resolved
//
// Output is byte-identical across repeated runs of the same schema.
package gen
