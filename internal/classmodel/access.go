package classmodel

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Access is a set of JVM access and property flags.
type Access uint16

const (
	AccPublic       Access = 0x0001
	AccPrivate      Access = 0x0002
	AccProtected    Access = 0x0004
	AccStatic       Access = 0x0008
	AccFinal        Access = 0x0010
	AccSuper        Access = 0x0020 // class
	AccSynchronized Access = 0x0020 // method
	AccVolatile     Access = 0x0040 // field
	AccBridge       Access = 0x0040 // method
	AccTransient    Access = 0x0080 // field
	AccVarargs      Access = 0x0080 // method
	AccNative       Access = 0x0100
	AccInterface    Access = 0x0200
	AccAbstract     Access = 0x0400
	AccStrict       Access = 0x0800
	AccSynthetic    Access = 0x1000
	AccAnnotation   Access = 0x2000
	AccEnum         Access = 0x4000
	AccMandated     Access = 0x8000
)

// accessNames lists one keyword per bit, in bit order. Bits shared by
// classes, fields and methods use the member keyword.
var accessNames = []struct {
	flag Access
	name string
}{
	{AccPublic, "public"},
	{AccPrivate, "private"},
	{AccProtected, "protected"},
	{AccStatic, "static"},
	{AccFinal, "final"},
	{AccSynchronized, "synchronized"},
	{AccVolatile, "volatile"},
	{AccTransient, "transient"},
	{AccNative, "native"},
	{AccInterface, "interface"},
	{AccAbstract, "abstract"},
	{AccStrict, "strict"},
	{AccSynthetic, "synthetic"},
	{AccAnnotation, "annotation"},
	{AccEnum, "enum"},
	{AccMandated, "mandated"},
}

// accessAliases are accepted when parsing in addition to accessNames.
var accessAliases = map[string]Access{
	"super":    AccSuper,
	"bridge":   AccBridge,
	"varargs":  AccVarargs,
	"strictfp": AccStrict,
}

// Has reports whether all bits of flag are set.
func (a Access) Has(flag Access) bool {
	return a&flag == flag
}

// Keywords returns the keyword of every set bit, in bit order.
func (a Access) Keywords() []string {
	var out []string

	for _, n := range accessNames {
		if a&n.flag != 0 {
			out = append(out, n.name)
		}
	}

	return out
}

// String returns the keywords of the set bits separated by spaces.
func (a Access) String() string {
	if a == 0 {
		return "0"
	}

	return strings.Join(a.Keywords(), " ")
}

// ParseAccess parses a single keyword or a number such as "0x21".
func ParseAccess(s string) (Access, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	for _, n := range accessNames {
		if n.name == s {
			return n.flag, nil
		}
	}

	if flag, ok := accessAliases[s]; ok {
		return flag, nil
	}

	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("unknown access flag %q", s)
	}

	return Access(v), nil
}

// UnmarshalYAML accepts a number, a single keyword or a list of keywords.
func (a *Access) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Value == "" {
			*a = 0
			return nil
		}

		flag, err := ParseAccess(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}

		*a = flag

		return nil

	case yaml.SequenceNode:
		var keywords []string

		err := node.Decode(&keywords)
		if err != nil {
			return err
		}

		var flags Access

		for _, keyword := range keywords {
			flag, err := ParseAccess(keyword)
			if err != nil {
				return fmt.Errorf("line %d: %w", node.Line, err)
			}

			flags |= flag
		}

		*a = flags

		return nil

	default:
		return fmt.Errorf("line %d: expected access flags as number or list, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML writes the flags as a list of keywords.
func (a Access) MarshalYAML() (any, error) {
	keywords := a.Keywords()
	if keywords == nil {
		return []string{}, nil
	}

	return keywords, nil
}
