// Package suid computes the default serialVersionUID of a class.
//
// The identifier is derived the way the Java serialization protocol
// derives it when a class does not declare one: the class name, modifiers,
// interfaces and non-private members are written in a canonical order to a
// DataOutput-style stream, the stream is hashed with SHA-1, and the first
// eight bytes of the digest are read as a little-endian 64-bit integer.
// Enum classes always have the identifier 0.
//
// Every call hashes with its own digest, so Compute may be used
// concurrently on independent classes.
package suid
