// Package domain contains the federation's entities, enumerations, and
// domain-specific errors.
//
// Entities mirror the persisted record shapes one to one: the `db` tags name
// the columns the repository scans into, and the `json` tags are a last line
// of defence for anything serialized without going through a response DTO
// (internal ids and credential hashes are tagged `json:"-"`).
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Enumerations are closed sets of string constants
package domain
