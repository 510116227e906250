package classmodel

import (
	"slices"
)

// Class is the read-only structure of one compiled class as supplied by a
// class-model provider. Implementations may be transient views; callers
// must not retain the returned slices beyond a single computation.
type Class interface {
	// Name returns the qualified class name in internal or dotted form.
	Name() string
	Access() Access
	IsInterface() bool
	IsEnum() bool
	// Interfaces returns the directly implemented interfaces in any order.
	Interfaces() []string
	Fields() []Field
	Methods() []Method
	Constructors() []Constructor
	HasStaticInitializer() bool
}

// Field is a declared field.
type Field struct {
	Name       string `yaml:"name"`
	Access     Access `yaml:"access"`
	Descriptor string `yaml:"descriptor"`
}

// Method is a declared method other than a constructor or the static initializer.
type Method struct {
	Name       string `yaml:"name"`
	Access     Access `yaml:"access"`
	Descriptor string `yaml:"descriptor"`
}

// Constructor is a declared instance initializer.
type Constructor struct {
	Access     Access `yaml:"access"`
	Descriptor string `yaml:"descriptor"`
}

// Snapshot is an in-memory Class. The Interface and Enum flags are
// implied by the corresponding access bits and may also be set explicitly.
type Snapshot struct {
	QualifiedName      string        `yaml:"name"`
	AccessFlags        Access        `yaml:"access"`
	Interface          bool          `yaml:"interface,omitempty"`
	Enum               bool          `yaml:"enum,omitempty"`
	InterfaceNames     []string      `yaml:"interfaces,omitempty"`
	FieldEntries       []Field       `yaml:"fields,omitempty"`
	MethodEntries      []Method      `yaml:"methods,omitempty"`
	ConstructorEntries []Constructor `yaml:"constructors,omitempty"`
	StaticInitializer  bool          `yaml:"static_initializer,omitempty"`
}

var _ Class = (*Snapshot)(nil)

func (s *Snapshot) Name() string   { return s.QualifiedName }
func (s *Snapshot) Access() Access { return s.AccessFlags }

func (s *Snapshot) IsInterface() bool {
	return s.Interface || s.AccessFlags.Has(AccInterface)
}

func (s *Snapshot) IsEnum() bool {
	return s.Enum || s.AccessFlags.Has(AccEnum)
}

func (s *Snapshot) Interfaces() []string        { return slices.Clone(s.InterfaceNames) }
func (s *Snapshot) Fields() []Field             { return slices.Clone(s.FieldEntries) }
func (s *Snapshot) Methods() []Method           { return slices.Clone(s.MethodEntries) }
func (s *Snapshot) Constructors() []Constructor { return slices.Clone(s.ConstructorEntries) }
func (s *Snapshot) HasStaticInitializer() bool  { return s.StaticInitializer }

// SnapshotOf copies any Class into a Snapshot, e.g. to persist a provider's
// transient view.
func SnapshotOf(c Class) *Snapshot {
	if s, ok := c.(*Snapshot); ok {
		clone := *s
		clone.InterfaceNames = s.Interfaces()
		clone.FieldEntries = s.Fields()
		clone.MethodEntries = s.Methods()
		clone.ConstructorEntries = s.Constructors()

		return &clone
	}

	return &Snapshot{
		QualifiedName:      c.Name(),
		AccessFlags:        c.Access(),
		Interface:          c.IsInterface(),
		Enum:               c.IsEnum(),
		InterfaceNames:     c.Interfaces(),
		FieldEntries:       c.Fields(),
		MethodEntries:      c.Methods(),
		ConstructorEntries: c.Constructors(),
		StaticInitializer:  c.HasStaticInitializer(),
	}
}

// DeclaresField reports whether c declares a field with the given name.
func DeclaresField(c Class, name string) bool {
	return slices.ContainsFunc(c.Fields(), func(f Field) bool {
		return f.Name == name
	})
}
