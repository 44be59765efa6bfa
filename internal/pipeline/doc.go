// Package pipeline generates the member models of every type in a schema
// document concurrently.
//
// Each enumeration provider and each record is built by exactly one worker.
// A schema error in one type never aborts the others; it is reported in the
// result diagnostics with the type name and the offending value.
package pipeline
