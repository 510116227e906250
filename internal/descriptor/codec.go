package descriptor

import (
	"strings"

	"classmeta/primitive"
)

// Encode returns the descriptor of t. It is equivalent to t.Descriptor().
func Encode(t Type) string {
	return t.Descriptor()
}

// Decode parses exactly one type descriptor.
func Decode(s string) (Type, error) {
	t, end, err := decodeAt(s, 0)
	if err != nil {
		return Type{}, err
	}

	if end != len(s) {
		return Type{}, syntaxError(s, end, "unexpected trailing input %q", s[end:])
	}

	return t, nil
}

// MustDecode is like Decode but panics on malformed input.
func MustDecode(s string) Type {
	t, err := Decode(s)
	if err != nil {
		panic(err)
	}

	return t
}

// MethodDescriptor renders "(args)ret".
func MethodDescriptor(ret Type, args ...Type) string {
	var sb strings.Builder

	sb.WriteByte('(')

	for _, arg := range args {
		arg.appendTo(&sb)
	}

	sb.WriteByte(')')
	ret.appendTo(&sb)

	return sb.String()
}

// ParseMethod splits a method descriptor "(args)ret" into its argument
// and return types. Void is accepted only as the return type.
func ParseMethod(s string) ([]Type, Type, error) {
	if s == "" || s[0] != '(' {
		return nil, Type{}, syntaxError(s, 0, "method descriptor must start with '('")
	}

	var args []Type

	pos := 1
	for {
		if pos >= len(s) {
			return nil, Type{}, syntaxError(s, pos, "missing ')'")
		}

		if s[pos] == ')' {
			pos++
			break
		}

		arg, end, err := decodeAt(s, pos)
		if err != nil {
			return nil, Type{}, err
		}

		if arg.IsVoid() {
			return nil, Type{}, syntaxError(s, pos, "void parameter")
		}

		args = append(args, arg)
		pos = end
	}

	ret, end, err := decodeAt(s, pos)
	if err != nil {
		return nil, Type{}, err
	}

	if end != len(s) {
		return nil, Type{}, syntaxError(s, end, "unexpected trailing input %q", s[end:])
	}

	return args, ret, nil
}

// decodeAt decodes the descriptor starting at pos and returns the offset
// just past it.
func decodeAt(s string, pos int) (Type, int, error) {
	start := pos

	dims := 0
	for pos < len(s) && s[pos] == '[' {
		dims++
		pos++
	}

	if pos >= len(s) {
		if dims > 0 {
			return Type{}, pos, syntaxError(s, pos, "array without element type")
		}

		return Type{}, pos, syntaxError(s, pos, "unexpected end of input")
	}

	var elem Type

	switch c := s[pos]; c {
	case 'L':
		semi := strings.IndexByte(s[pos+1:], ';')
		if semi < 0 {
			return Type{}, pos, syntaxError(s, pos, "unterminated object type")
		}

		name := s[pos+1 : pos+1+semi]
		if !ValidObjectName(name) || strings.Contains(name, ".") {
			return Type{}, pos, syntaxError(s, pos+1, "invalid object type name %q", name)
		}

		elem = Type{sort: SortObject, name: name}
		pos += semi + 2
	default:
		kind := primitive.FromDescriptor(c)
		if kind == 0 {
			return Type{}, pos, syntaxError(s, pos, "unknown type letter %q", c)
		}

		if kind == primitive.KindVoid && dims > 0 {
			return Type{}, start, syntaxError(s, start, "array of void")
		}

		elem = Type{sort: SortPrimitive, kind: kind}
		pos++
	}

	if dims > 0 {
		elem = ArrayOf(elem, dims)
	}

	return elem, pos, nil
}
