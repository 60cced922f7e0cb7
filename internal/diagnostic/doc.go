// Package diagnostic provides structured errors and warnings for the
// variant generator.
//
// Key capabilities:
//   - Per-variant violation reports with enum/variant/key locators
//   - Collect-all semantics: independent variants are checked independently
//     and every violation for one enum is reported together
//   - Stable, greppable diagnostic codes
package diagnostic
