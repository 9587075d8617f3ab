// Package validation checks the raw payloads of template lifecycle operations
// and turns them into typed requests.
//
// Each call runs the same passes in order: a shape pass over the raw JSON
// (types, presence, defaults, unknown keys dropped), normalization, field
// rules expressed as validator tags, and cross-field refinements. Every issue
// found is returned as an errors.ValidationErrors value carrying the JSON path
// of the offending field.
package validation
