// Package provider builds the member model of an enumeration schema.
//
// Create dispatches once on the schema: extensible schemas become an open
// value wrapper (a read-only struct holding any raw value), fixed schemas
// become a closed enumeration whose raw-value parser is partial.
//
// Models are built lazily on first access and memoized, so every consumer of
// a provider observes the same *members.Model. Schema problems (duplicate
// names after sanitization, unsupported value kinds, invalid literals) are
// returned from Members and EnumMembers, never from Create.
package provider
