// Package analyze cross-checks previously generated packages against their
// schema declarations.
//
// It uses golang.org/x/tools/go/packages with go/types to load the generated
// output and verify that every variant of every enum exists as an exported
// struct type with the expected field count in the expected package.
package analyze
