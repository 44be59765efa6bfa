// Package schema defines the normalized input of the member generator:
// enumeration schemas and record field descriptors, loaded from YAML or JSON.
//
// Example YAML:
//
//	version: "1"
//	enums:
//	  - name: Direction
//	    extensible: true
//	    valueType: string
//	    values:
//	      - name: North
//	        value: north
//	      - name: South
//	        value: south
//	records:
//	  - name: Route
//	    fields:
//	      - name: Kind
//	        type: { name: string, literal: true, literalValue: route }
//	        required: true
//	      - name: Stops
//	        type: string[]?
//
// Loading never checks sanitized-name collisions or the value kind of an
// enumeration; those are reported by the provider when members are built.
package schema
