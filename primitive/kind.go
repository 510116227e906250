package primitive

import (
	"reflect"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum enumerates the primitive types of the JVM type system.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindVoid
	KindBoolean
	KindByte
	KindChar
	KindShort
	KindInt
	KindFloat
	KindLong
	KindDouble

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var descriptors = [KindTotal]byte{
	KindVoid:    'V',
	KindBoolean: 'Z',
	KindByte:    'B',
	KindChar:    'C',
	KindShort:   'S',
	KindInt:     'I',
	KindFloat:   'F',
	KindLong:    'J',
	KindDouble:  'D',
}

var keywords = [KindTotal]string{
	KindVoid:    "void",
	KindBoolean: "boolean",
	KindByte:    "byte",
	KindChar:    "char",
	KindShort:   "short",
	KindInt:     "int",
	KindFloat:   "float",
	KindLong:    "long",
	KindDouble:  "double",
}

// IsValid reports whether k is one of the defined kinds.
func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

// Descriptor returns the single-letter descriptor of the kind, e.g. 'I' for int.
// Returns 0 for invalid kinds.
func (k KindEnum) Descriptor() byte {
	if !k.IsValid() {
		return 0
	}

	return descriptors[k]
}

// Keyword returns the source-level keyword of the kind, e.g. "int".
func (k KindEnum) Keyword() string {
	if !k.IsValid() {
		return ""
	}

	return keywords[k]
}

func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindByte, KindChar, KindShort, KindInt, KindLong,
		KindFloat, KindDouble:
		return true
	}
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindByte, KindChar, KindShort, KindInt, KindLong:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat, KindDouble:
		return true
	}
}

// Size returns the number of local variable slots a value of this kind occupies.
func (k KindEnum) Size() int {
	switch k {
	default:
		panic("size requested for invalid kind: " + k.String())
	case KindVoid:
		return 0
	case KindLong, KindDouble:
		return 2
	case KindBoolean, KindByte, KindChar, KindShort, KindInt, KindFloat:
		return 1
	}
}

// FromDescriptor returns the kind denoted by a descriptor letter, or 0.
func FromDescriptor(c byte) KindEnum {
	for k := KindVoid; int(k) < KindTotal; k++ {
		if descriptors[k] == c {
			return k
		}
	}

	return 0
}

// FromKeyword returns the kind denoted by a source keyword, or 0.
func FromKeyword(keyword string) KindEnum {
	for k := KindVoid; int(k) < KindTotal; k++ {
		if keywords[k] == keyword {
			return k
		}
	}

	return 0
}

// FromReflectType maps a Go type onto the JVM primitive that represents it.
// Named types are mapped by their underlying kind. Returns 0 for types
// without a primitive counterpart.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	switch rtype.Kind() {
	default:
		return 0
	case reflect.Bool:
		return KindBoolean
	case reflect.Int8, reflect.Uint8:
		return KindByte
	case reflect.Uint16:
		return KindChar
	case reflect.Int16:
		return KindShort
	case reflect.Int32:
		return KindInt
	case reflect.Int, reflect.Int64:
		return KindLong
	case reflect.Float32:
		return KindFloat
	case reflect.Float64:
		return KindDouble
	}
}
