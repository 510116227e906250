// Package classmodel defines the read-only view of a compiled class that
// the serial version engine consumes, and a YAML-backed implementation of it.
//
// The view is supplied by an external class-model provider; nothing here
// parses class files. Names may be given in internal ("java/lang/String")
// or dotted form.
//
// Key types:
//   - Class: the provider-facing interface
//   - Snapshot: an in-memory Class, loadable from YAML
//   - Access: JVM access flags with keyword (un)marshaling
//
// # YAML format
//
//	name: com/example/Point
//	access: [public, super]
//	interfaces: [java/io/Serializable]
//	static_initializer: true
//	fields:
//	  - {name: x, access: [private], descriptor: I}
//	constructors:
//	  - {access: [public], descriptor: (II)V}
//	methods:
//	  - {name: getX, access: [public], descriptor: ()I}
//
// Access flags may also be written as a number (0x21 or 33).
package classmodel
