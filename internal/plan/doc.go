// Package plan resolves enum declarations into generation plans.
//
// Resolution is a pure, single-pass transformation per declaration:
//  1. Merge enum-level and variant-level directives per key, variant wins.
//  2. Validate the merged view against the profile's structural preconditions.
//  3. Select the target and deref field roles (explicit tags first, then
//     convention/arity fallback).
//
// All violations across the variants of one enum are collected before the
// declaration fails as a unit; a plan is produced only when no variant has an
// error, so there is never partial output for an enum.
package plan
