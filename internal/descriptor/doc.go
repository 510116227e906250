// Package descriptor implements the JVM type descriptor notation.
//
// A descriptor is the compact textual form of a type used inside class
// files:
//
//	I                    int
//	Ljava/lang/String;   java.lang.String
//	[[D                  double[][]
//	(ILjava/lang/Object;)V   void m(int, Object)
//
// Key types:
//   - Type: a primitive, object or array type, comparable with ==
//   - SyntaxError: the failure reported for malformed descriptor text
package descriptor
