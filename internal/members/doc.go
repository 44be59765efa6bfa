// Package members defines the member model: the ordered fields, properties,
// constructors and methods synthesized for one generated type, plus the
// declaration modifiers of the type itself.
//
// The model is data only. It is produced once per type provider and handed by
// reference to printers, serialization emitters and documentation emitters,
// which must all observe the same instance.
package members
