package suid

import (
	"classmeta/internal/classmodel"
	"classmeta/internal/descriptor"
)

// FieldPlan describes the serialVersionUID field to add to a class.
type FieldPlan struct {
	Name       string
	Access     classmodel.Access
	Descriptor string
	Value      int64
}

// Field returns the plan as a class model field entry.
func (p FieldPlan) Field() classmodel.Field {
	return classmodel.Field{Name: p.Name, Access: p.Access, Descriptor: p.Descriptor}
}

// Plan computes the serialVersionUID field a class should receive. It
// reports false for enums and for classes that already declare the field.
func Plan(c classmodel.Class) (FieldPlan, bool, error) {
	if c.IsEnum() || classmodel.DeclaresField(c, classmodel.SerialVersionUIDField) {
		return FieldPlan{}, false, nil
	}

	id, err := Compute(c)
	if err != nil {
		return FieldPlan{}, false, err
	}

	access := classmodel.AccStatic | classmodel.AccFinal
	if c.IsInterface() {
		access |= classmodel.AccPublic
	}

	return FieldPlan{
		Name:       classmodel.SerialVersionUIDField,
		Access:     access,
		Descriptor: descriptor.Long.Descriptor(),
		Value:      id,
	}, true, nil
}
