// Package signature provides method signatures built from descriptors,
// source-like text or reflected members.
//
// A Method is immutable once built. Its descriptor is computed at
// construction and two methods are equal when their names and descriptors
// are equal, however they were built:
//
//	m, _ := signature.Parse("boolean equals(Object)")
//	m.String() // "equals(Ljava/lang/Object;)Z"
//
// Textual signatures resolve unqualified type names either against a fixed
// table of java.lang types or literally in the default package, chosen once
// when the Parser is created.
package signature
