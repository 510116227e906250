package signature

import "classmeta/internal/descriptor"

// Member is a method or constructor handle supplied by a reflection
// provider. Types are already resolved; no text is parsed.
type Member interface {
	Name() string
	ParameterTypes() []descriptor.Type
	ReturnType() descriptor.Type
	IsConstructor() bool
}

// FromMember builds a Method from a member handle. Constructors are named
// "<init>" and return void whatever the provider reports.
func FromMember(member Member) Method {
	if member.IsConstructor() {
		return FromTypes(ConstructorName, descriptor.Void, member.ParameterTypes()...)
	}

	return FromTypes(member.Name(), member.ReturnType(), member.ParameterTypes()...)
}
