package signature

import (
	"errors"
	"fmt"
	"hash/fnv"
	"slices"

	"classmeta/internal/descriptor"
)

const (
	// ConstructorName is the name of every instance initializer.
	ConstructorName = "<init>"
	// StaticInitializerName is the name of the class initializer.
	StaticInitializerName = "<clinit>"
)

// ErrEmptyName is returned when a method is built without a name.
var ErrEmptyName = errors.New("method name is required")

// Method is a method name together with its argument and return types.
type Method struct {
	name string
	desc string
	args []descriptor.Type
	ret  descriptor.Type
}

// New builds a Method from a name and a method descriptor such as "(I)J".
func New(name, desc string) (Method, error) {
	if name == "" {
		return Method{}, ErrEmptyName
	}

	args, ret, err := descriptor.ParseMethod(desc)
	if err != nil {
		return Method{}, fmt.Errorf("method %s: %w", name, err)
	}

	return Method{name: name, desc: desc, args: args, ret: ret}, nil
}

// MustNew is like New but panics on error.
func MustNew(name, desc string) Method {
	m, err := New(name, desc)
	if err != nil {
		panic(err)
	}

	return m
}

// FromTypes builds a Method from a name, return type and argument types.
func FromTypes(name string, ret descriptor.Type, args ...descriptor.Type) Method {
	if name == "" {
		panic(ErrEmptyName)
	}

	for _, arg := range args {
		if arg.IsVoid() {
			panic("signature: void argument in method " + name)
		}
	}

	args = slices.Clone(args)

	return Method{
		name: name,
		desc: descriptor.MethodDescriptor(ret, args...),
		args: args,
		ret:  ret,
	}
}

func (m Method) Name() string { return m.name }

// Descriptor returns the method descriptor, e.g. "(I)J".
func (m Method) Descriptor() string { return m.desc }

// ArgumentTypes returns a copy of the argument types.
func (m Method) ArgumentTypes() []descriptor.Type { return slices.Clone(m.args) }

func (m Method) ReturnType() descriptor.Type { return m.ret }

// IsConstructor reports whether the method is an instance initializer.
func (m Method) IsConstructor() bool { return m.name == ConstructorName }

// String returns the name immediately followed by the descriptor.
func (m Method) String() string {
	return m.name + m.desc
}

// Equal reports whether both methods have the same name and descriptor.
func (m Method) Equal(other Method) bool {
	return m.name == other.name && m.desc == other.desc
}

// Hash returns a hash consistent with Equal. It is never zero.
func (m Method) Hash() uint32 {
	h := hashString(m.name) ^ hashString(m.desc)
	if h == 0 {
		return 1
	}

	return h
}

// ArgumentsAndReturnSizes packs the slot sizes of the arguments (including
// the implicit receiver) and of the return value as (args << 2) | ret.
func (m Method) ArgumentsAndReturnSizes() int {
	argSize := 1
	for _, arg := range m.args {
		argSize += arg.Size()
	}

	return argSize<<2 | m.ret.Size()
}

func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))

	return h.Sum32()
}
