package descriptor

import (
	"strconv"
	"strings"

	"classmeta/internal/common"
	"classmeta/primitive"
)

//go:generate go tool stringer -type=Sort -output=sort_string.go

// Sort is the tag of a Type.
type Sort int

const (
	_ Sort = iota

	SortPrimitive
	SortObject
	SortArray
)

// Type is a single type descriptor. For arrays, kind or name describe the
// element type and dims is the number of dimensions.
type Type struct {
	sort Sort
	kind primitive.KindEnum
	name string // internal name of the object (or array element) type
	dims int
}

var (
	Void    = Primitive(primitive.KindVoid)
	Boolean = Primitive(primitive.KindBoolean)
	Byte    = Primitive(primitive.KindByte)
	Char    = Primitive(primitive.KindChar)
	Short   = Primitive(primitive.KindShort)
	Int     = Primitive(primitive.KindInt)
	Float   = Primitive(primitive.KindFloat)
	Long    = Primitive(primitive.KindLong)
	Double  = Primitive(primitive.KindDouble)

	ObjectType = Object("java/lang/Object")
	StringType = Object("java/lang/String")
)

// Primitive returns the Type of a primitive kind.
func Primitive(kind primitive.KindEnum) Type {
	if !kind.IsValid() {
		panic("descriptor: invalid primitive kind " + kind.String())
	}

	return Type{sort: SortPrimitive, kind: kind}
}

// Object returns the Type of a class or interface. The name may be given
// in internal ("java/lang/String") or dotted form.
func Object(name string) Type {
	if !ValidObjectName(name) {
		panic("descriptor: invalid object type name " + strconv.Quote(name))
	}

	return Type{sort: SortObject, name: common.InternalName(name)}
}

// ValidObjectName reports whether name can be used as an object type name.
func ValidObjectName(name string) bool {
	return name != "" && !strings.ContainsAny(name, ";[]()<>")
}

// ArrayOf returns an array of elem with the given number of additional
// dimensions. Arrays of arrays are flattened.
func ArrayOf(elem Type, dims int) Type {
	if dims < 1 {
		panic("descriptor: array dimensions must be positive")
	}

	if elem.IsVoid() {
		panic("descriptor: array of void")
	}

	elem.dims += dims
	elem.sort = SortArray

	return elem
}

// Sort returns the tag of the type.
func (t Type) Sort() Sort { return t.sort }

// Kind returns the primitive kind of a primitive type, or 0.
func (t Type) Kind() primitive.KindEnum {
	if t.sort != SortPrimitive {
		return 0
	}

	return t.kind
}

// IsVoid reports whether t is the void type.
func (t Type) IsVoid() bool {
	return t.sort == SortPrimitive && t.kind == primitive.KindVoid
}

// Dimensions returns the number of array dimensions, 0 for non-arrays.
func (t Type) Dimensions() int { return t.dims }

// ElementType returns the element type of an array, or t itself.
func (t Type) ElementType() Type {
	if t.sort != SortArray {
		return t
	}

	elem := t
	elem.dims = 0

	if elem.name != "" {
		elem.sort = SortObject
	} else {
		elem.sort = SortPrimitive
	}

	return elem
}

// InternalName returns the internal name of an object type, or the
// descriptor of an array type. Primitives have no internal name.
func (t Type) InternalName() string {
	switch t.sort {
	case SortObject:
		return t.name
	case SortArray:
		return t.Descriptor()
	default:
		return ""
	}
}

// Descriptor returns the descriptor of the type with '/' separators.
func (t Type) Descriptor() string {
	var sb strings.Builder
	t.appendTo(&sb)

	return sb.String()
}

// DottedDescriptor returns the descriptor with '.' separators, the form
// used by the serialization protocol.
func (t Type) DottedDescriptor() string {
	return common.DottedName(t.Descriptor())
}

// ClassName returns the source-level name: "int", "java.lang.String", "byte[][]".
func (t Type) ClassName() string {
	switch t.sort {
	case SortPrimitive:
		return t.kind.Keyword()
	case SortObject:
		return common.DottedName(t.name)
	case SortArray:
		return t.ElementType().ClassName() + strings.Repeat("[]", t.dims)
	default:
		return ""
	}
}

// Size returns the number of local variable slots the type occupies.
func (t Type) Size() int {
	if t.sort == SortPrimitive {
		return t.kind.Size()
	}

	return 1
}

func (t Type) String() string {
	return t.Descriptor()
}

func (t Type) appendTo(sb *strings.Builder) {
	for range t.dims {
		sb.WriteByte('[')
	}

	if t.name != "" {
		sb.WriteByte('L')
		sb.WriteString(t.name)
		sb.WriteByte(';')

		return
	}

	sb.WriteByte(t.kind.Descriptor())
}
