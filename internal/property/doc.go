// Package property synthesizes the property descriptor of a record field:
// its mutability, its compiled-in initializer and its documentation.
// Synthesis is stateless; every call depends on its argument only.
package property
