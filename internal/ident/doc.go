// Package ident turns raw schema names into target identifiers.
//
// Key functions:
//   - Sanitize: PascalCase identifier from an arbitrary schema name
//   - Snake: snake_case file name stems
//   - Stem: collision-free private names derived from a stem
package ident
