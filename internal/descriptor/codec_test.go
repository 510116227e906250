package descriptor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classmeta/primitive"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		typ       Type
		desc      string
		dotted    string
		className string
	}{
		{"void", Void, "V", "V", "void"},
		{"int", Int, "I", "I", "int"},
		{"long", Long, "J", "J", "long"},
		{"object", Object("pkg/Class"), "Lpkg/Class;", "Lpkg.Class;", "pkg.Class"},
		{"dotted object", Object("pkg.sub.Class"), "Lpkg/sub/Class;", "Lpkg.sub.Class;", "pkg.sub.Class"},
		{"int array", ArrayOf(Int, 1), "[I", "[I", "int[]"},
		{"object matrix", ArrayOf(StringType, 2), "[[Ljava/lang/String;", "[[Ljava.lang.String;", "java.lang.String[][]"},
		{"nested array", ArrayOf(ArrayOf(Double, 1), 2), "[[[D", "[[[D", "double[][][]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.desc, Encode(tt.typ))
			assert.Equal(t, tt.dotted, tt.typ.DottedDescriptor())
			assert.Equal(t, tt.className, tt.typ.ClassName())

			decoded, err := Decode(tt.desc)
			require.NoError(t, err)
			assert.Equal(t, tt.typ, decoded)
		})
	}
}

func TestTypeAccessors(t *testing.T) {
	t.Parallel()

	arr := ArrayOf(Object("pkg/Class"), 3)
	assert.Equal(t, SortArray, arr.Sort())
	assert.Equal(t, 3, arr.Dimensions())
	assert.Equal(t, Object("pkg/Class"), arr.ElementType())
	assert.Equal(t, "[[[Lpkg/Class;", arr.InternalName())
	assert.Equal(t, primitive.KindEnum(0), arr.Kind())
	assert.Equal(t, 1, arr.Size())

	assert.Equal(t, Long, ArrayOf(Long, 1).ElementType())
	assert.Equal(t, primitive.KindLong, Long.Kind())
	assert.Equal(t, 2, Long.Size())
	assert.Equal(t, 0, Void.Size())
	assert.Equal(t, "", Int.InternalName())
	assert.Equal(t, "java/lang/Object", ObjectType.InternalName())
	assert.True(t, Void.IsVoid())
	assert.False(t, ArrayOf(Int, 1).IsVoid())
	assert.Equal(t, "SortObject", ObjectType.Sort().String())
}

func TestConstructorsRejectMalformed(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { Object("") })
	assert.Panics(t, func() { Object("a;b") })
	assert.Panics(t, func() { Object("[I") })
	assert.Panics(t, func() { ArrayOf(Int, 0) })
	assert.Panics(t, func() { ArrayOf(Void, 1) })
	assert.Panics(t, func() { Primitive(0) })
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		offset int
	}{
		{"", 0},
		{"Q", 0},
		{"Ljava/lang/String", 0},
		{"L;", 1},
		{"Lpkg.Class;", 1},
		{"[", 1},
		{"[[", 2},
		{"[V", 0},
		{"II", 1},
		{"Lpkg/Class;I", 11},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			_, err := Decode(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntax)

			var syntaxErr *SyntaxError
			require.True(t, errors.As(err, &syntaxErr))
			assert.Equal(t, tt.input, syntaxErr.Input)
			assert.Equal(t, tt.offset, syntaxErr.Offset)
		})
	}
}

func TestParseMethod(t *testing.T) {
	t.Parallel()

	args, ret, err := ParseMethod("(BCSIFJDLpkg/Class;[Lpkg/Class;)Z")
	require.NoError(t, err)
	assert.Equal(t, Boolean, ret)
	assert.Equal(t, []Type{
		Byte, Char, Short, Int, Float, Long, Double,
		Object("pkg/Class"), ArrayOf(Object("pkg/Class"), 1),
	}, args)

	args, ret, err = ParseMethod("()V")
	require.NoError(t, err)
	assert.Empty(t, args)
	assert.Equal(t, Void, ret)

	assert.Equal(t, "(I[J)Ljava/lang/String;", MethodDescriptor(StringType, Int, ArrayOf(Long, 1)))
	assert.Equal(t, "()V", MethodDescriptor(Void))
}

func TestParseMethodErrors(t *testing.T) {
	t.Parallel()

	for _, input := range []string{
		"",
		"I)V",
		"(I",
		"(I)",
		"(V)V",
		"(I)VV",
		"(Lpkg/Class)V",
		"(X)V",
		"([)V",
	} {
		_, _, err := ParseMethod(input)
		assert.ErrorIs(t, err, ErrSyntax, "input %q", input)
	}
}

func TestMustDecode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ArrayOf(Char, 2), MustDecode("[[C"))
	assert.Panics(t, func() { MustDecode("[[") })
}
