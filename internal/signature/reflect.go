package signature

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"classmeta/internal/descriptor"
	"classmeta/primitive"
)

// ErrUnsupportedType is returned when a Go type has no JVM counterpart.
var ErrUnsupportedType = errors.New("unsupported Go type")

// reflectMember is a Member backed by a Go func type.
type reflectMember struct {
	name   string
	params []descriptor.Type
	ret    descriptor.Type
	ctor   bool
}

func (m *reflectMember) Name() string                      { return m.name }
func (m *reflectMember) ParameterTypes() []descriptor.Type { return slices.Clone(m.params) }
func (m *reflectMember) ReturnType() descriptor.Type       { return m.ret }
func (m *reflectMember) IsConstructor() bool               { return m.ctor }

// ReflectFunc describes a Go func type as a member named name.
// A func without results returns void; more than one result is unsupported.
func ReflectFunc(name string, fn reflect.Type) (Member, error) {
	return reflectFunc(name, fn, 0, false)
}

// ReflectMethod describes a method obtained from reflect.Type.Method.
// The receiver of concrete-type methods is not a parameter.
func ReflectMethod(method reflect.Method) (Member, error) {
	skip := 0
	if method.Func.IsValid() {
		skip = 1
	}

	return reflectFunc(method.Name, method.Type, skip, false)
}

// ReflectConstructor describes a Go factory func as a constructor. Its
// results are ignored.
func ReflectConstructor(fn reflect.Type) (Member, error) {
	return reflectFunc(ConstructorName, fn, 0, true)
}

func reflectFunc(name string, fn reflect.Type, skip int, ctor bool) (Member, error) {
	if fn == nil || fn.Kind() != reflect.Func {
		return nil, fmt.Errorf("reflect member %s: %v is not a func: %w", name, fn, ErrUnsupportedType)
	}

	m := &reflectMember{name: name, ret: descriptor.Void, ctor: ctor}

	for i := skip; i < fn.NumIn(); i++ {
		t, err := TypeOf(fn.In(i))
		if err != nil {
			return nil, fmt.Errorf("reflect member %s: parameter %d: %w", name, i-skip, err)
		}

		m.params = append(m.params, t)
	}

	if ctor {
		return m, nil
	}

	switch fn.NumOut() {
	case 0:
	case 1:
		t, err := TypeOf(fn.Out(0))
		if err != nil {
			return nil, fmt.Errorf("reflect member %s: result: %w", name, err)
		}

		m.ret = t
	default:
		return nil, fmt.Errorf("reflect member %s: %d results: %w", name, fn.NumOut(), ErrUnsupportedType)
	}

	return m, nil
}

// TypeOf maps a Go type onto a JVM type descriptor. Strings map to
// java.lang.String, interfaces to java.lang.Object, slices and arrays to
// JVM arrays, and named structs (or pointers to them) to a class named
// after their package path.
func TypeOf(rtype reflect.Type) (descriptor.Type, error) {
	if rtype == nil {
		return descriptor.ObjectType, nil
	}

	if kind := primitive.FromReflectType(rtype); kind != 0 {
		return descriptor.Primitive(kind), nil
	}

	switch rtype.Kind() {
	case reflect.String:
		return descriptor.StringType, nil
	case reflect.Interface:
		return descriptor.ObjectType, nil
	case reflect.Slice, reflect.Array:
		elem, err := TypeOf(rtype.Elem())
		if err != nil {
			return descriptor.Type{}, err
		}

		return descriptor.ArrayOf(elem, 1), nil
	case reflect.Pointer:
		if rtype.Elem().Kind() == reflect.Struct {
			return TypeOf(rtype.Elem())
		}
	case reflect.Struct:
		if rtype.Name() != "" && rtype.PkgPath() != "" {
			return descriptor.Object(rtype.PkgPath() + "/" + rtype.Name()), nil
		}
	}

	return descriptor.Type{}, fmt.Errorf("%v: %w", rtype, ErrUnsupportedType)
}
