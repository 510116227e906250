package classmodel

import (
	"fmt"
	"strings"

	"classmeta/internal/common"
	"classmeta/internal/descriptor"
	"classmeta/internal/diagnostic"
)

// Diagnostic codes reported by Validate.
const (
	CodeEmptyClassName      = "empty_class_name"
	CodeInvalidClassName    = "invalid_class_name"
	CodeEmptyName           = "empty_name"
	CodeEmptyDescriptor     = "empty_descriptor"
	CodeMalformedDescriptor = "malformed_descriptor"
	CodeDuplicateMember     = "duplicate_member"
	CodeDeclaresSUID        = "declares_serial_version_uid"
	CodeInterfaceCtor       = "interface_constructor"
)

// SerialVersionUIDField is the name of the field holding a class's
// serialization version.
const SerialVersionUIDField = "serialVersionUID"

// Validate checks that c is usable for structural hashing. Errors make the
// model unusable; malformed descriptors are only warned about since they
// are hashed as supplied.
func Validate(c Class) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	className := c.Name()

	switch {
	case className == "":
		d.AddError(CodeEmptyClassName, "class name is empty", "", "")
	case !validName(className):
		d.AddError(CodeInvalidClassName, fmt.Sprintf("class name %q is not a valid binary name", className), className, "")
	}

	for i, itf := range c.Interfaces() {
		if !validName(itf) {
			d.AddError(CodeInvalidClassName, fmt.Sprintf("interface name %q is not a valid binary name", itf),
				className, fmt.Sprintf("interfaces[%d]", i))
		}
	}

	seen := make(map[string]struct{})

	for i, f := range c.Fields() {
		where := fmt.Sprintf("fields[%d]", i)
		if f.Name != "" {
			where = f.Name
		}

		checkMember(&d, className, where, "field", f.Name, f.Descriptor, seen, checkFieldDescriptor)

		if f.Name == SerialVersionUIDField {
			d.AddInfo(CodeDeclaresSUID, "class declares serialVersionUID", className, where)
		}
	}

	for i, m := range c.Methods() {
		where := fmt.Sprintf("methods[%d]", i)
		if m.Name != "" {
			where = m.Name + m.Descriptor
		}

		checkMember(&d, className, where, "method", m.Name, m.Descriptor, seen, checkMethodDescriptor)
	}

	for i, ctor := range c.Constructors() {
		where := fmt.Sprintf("constructors[%d]", i)
		checkMember(&d, className, where, "constructor", "<init>", ctor.Descriptor, seen, checkMethodDescriptor)
	}

	if c.IsInterface() && len(c.Constructors()) > 0 {
		d.AddWarning(CodeInterfaceCtor, "interface declares constructors", className, "")
	}

	return d
}

func checkMember(
	d *diagnostic.Diagnostics,
	className, where, kind, name, desc string,
	seen map[string]struct{},
	check func(string) error,
) {
	if name == "" {
		d.AddError(CodeEmptyName, kind+" name is empty", className, where)
	}

	if desc == "" {
		d.AddError(CodeEmptyDescriptor, kind+" descriptor is empty", className, where)
		return
	}

	if err := check(desc); err != nil {
		d.AddWarning(CodeMalformedDescriptor, err.Error(), className, where)
	}

	key := kind + " " + name + " " + desc
	if _, dup := seen[key]; dup {
		d.AddWarning(CodeDuplicateMember, kind+" declared more than once", className, where)
	}

	seen[key] = struct{}{}
}

func checkFieldDescriptor(desc string) error {
	t, err := descriptor.Decode(common.InternalName(desc))
	if err != nil {
		return err
	}

	if t.IsVoid() {
		return fmt.Errorf("field of type void: %w", descriptor.ErrSyntax)
	}

	return nil
}

func checkMethodDescriptor(desc string) error {
	_, _, err := descriptor.ParseMethod(common.InternalName(desc))
	return err
}

func validName(name string) bool {
	return name != "" && !strings.ContainsAny(name, ";[]() \t\n")
}
