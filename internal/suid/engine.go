package suid

import (
	"cmp"
	"crypto"
	_ "crypto/sha1" // registers crypto.SHA1
	"encoding/binary"
	"slices"
	"strings"

	"classmeta/internal/classmodel"
	"classmeta/internal/common"
	"classmeta/internal/descriptor"
	"classmeta/internal/diagnostic"
	"classmeta/internal/signature"
)

// hashFunc is the digest of the canonical stream.
var hashFunc = crypto.SHA1

const (
	classMask = classmodel.AccPublic | classmodel.AccFinal |
		classmodel.AccInterface | classmodel.AccAbstract

	fieldMask = classmodel.AccPublic | classmodel.AccPrivate | classmodel.AccProtected |
		classmodel.AccStatic | classmodel.AccFinal | classmodel.AccVolatile |
		classmodel.AccTransient

	methodMask = classmodel.AccPublic | classmodel.AccPrivate | classmodel.AccProtected |
		classmodel.AccStatic | classmodel.AccFinal | classmodel.AccSynchronized |
		classmodel.AccNative | classmodel.AccAbstract | classmodel.AccStrict
)

// item is one member entry of the canonical stream.
type item struct {
	name   string
	access classmodel.Access
	desc   string
}

func compareItems(a, b item) int {
	return cmp.Or(strings.Compare(a.name, b.name), strings.Compare(a.desc, b.desc))
}

// Compute returns the default serialVersionUID of c. Enums yield 0.
// The model is only read, and nothing of it is retained after the call.
func Compute(c classmodel.Class) (int64, error) {
	if c.IsEnum() {
		return 0, nil
	}

	if !hashFunc.Available() {
		return 0, ErrDigestUnavailable
	}

	data, err := Canonical(c)
	if err != nil {
		return 0, err
	}

	h := hashFunc.New()
	h.Write(data)
	sum := h.Sum(nil)

	return int64(binary.LittleEndian.Uint64(sum[:8])), nil
}

// Canonical returns the byte stream that Compute hashes.
func Canonical(c classmodel.Class) ([]byte, error) {
	className := common.DottedName(c.Name())

	d := classmodel.Validate(c)
	if d.HasErrors() {
		return nil, &ModelError{Class: className, Diagnostics: d}
	}

	methods := hashedMethods(c.Methods())

	var s stream

	s.writeUTF(className)

	access := c.Access()
	if c.IsInterface() {
		if len(methods) > 0 {
			access |= classmodel.AccAbstract
		} else {
			access &^= classmodel.AccAbstract
		}
	}

	s.writeInt(int32(access & classMask))

	var interfaces []string
	for _, itf := range c.Interfaces() {
		interfaces = append(interfaces, common.DottedName(itf))
	}

	slices.Sort(interfaces)

	for _, itf := range interfaces {
		s.writeUTF(itf)
	}

	writeItems(&s, hashedFields(c.Fields()))

	if c.HasStaticInitializer() {
		s.writeUTF(signature.StaticInitializerName)
		s.writeInt(int32(classmodel.AccStatic))
		s.writeUTF(descriptor.MethodDescriptor(descriptor.Void))
	}

	writeItems(&s, hashedConstructors(c.Constructors()))
	writeItems(&s, methods)

	data, err := s.bytes()
	if err != nil {
		var encoding diagnostic.Diagnostics
		encoding.AddError(CodeStringTooLong, err.Error(), className, "")
		d.Merge(encoding)

		return nil, &ModelError{Class: className, Diagnostics: d}
	}

	return data, nil
}

func writeItems(s *stream, items []item) {
	slices.SortFunc(items, compareItems)

	for _, it := range items {
		s.writeUTF(it.name)
		s.writeInt(int32(it.access))
		s.writeUTF(it.desc)
	}
}

// hashedFields drops private static and private transient fields.
// Field descriptors are hashed as declared.
func hashedFields(fields []classmodel.Field) []item {
	out := make([]item, 0, len(fields))

	for _, f := range fields {
		if f.Access&classmodel.AccPrivate != 0 &&
			f.Access&(classmodel.AccStatic|classmodel.AccTransient) != 0 {
			continue
		}

		out = append(out, item{name: f.Name, access: f.Access & fieldMask, desc: f.Descriptor})
	}

	return out
}

func hashedConstructors(ctors []classmodel.Constructor) []item {
	out := make([]item, 0, len(ctors))

	for _, ctor := range ctors {
		if ctor.Access&classmodel.AccPrivate != 0 {
			continue
		}

		out = append(out, item{
			name:   signature.ConstructorName,
			access: ctor.Access & methodMask,
			desc:   common.DottedName(ctor.Descriptor),
		})
	}

	return out
}

// hashedMethods keeps non-private methods that are neither bridges nor
// synthetic. Initializers never appear here.
func hashedMethods(methods []classmodel.Method) []item {
	out := make([]item, 0, len(methods))

	for _, m := range methods {
		if m.Access&(classmodel.AccPrivate|classmodel.AccBridge|classmodel.AccSynthetic) != 0 {
			continue
		}

		if m.Name == signature.ConstructorName || m.Name == signature.StaticInitializerName {
			continue
		}

		out = append(out, item{name: m.Name, access: m.Access & methodMask, desc: common.DottedName(m.Descriptor)})
	}

	return out
}
