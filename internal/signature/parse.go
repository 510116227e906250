package signature

import (
	"fmt"
	"strings"
	"unicode"

	"classmeta/internal/common"
	"classmeta/internal/descriptor"
	"classmeta/primitive"
)

// ParseReason classifies why a textual signature was rejected.
type ParseReason int

const (
	_ ParseReason = iota

	MissingParens      // no '(' or no matching ')'
	MissingReturnType  // return type or name missing or unusable
	MalformedParameter // empty or malformed parameter token, or text after ')'
	InvalidName        // method name is not a valid member name
)

// String returns a human-readable reason.
func (r ParseReason) String() string {
	switch r {
	case MissingParens:
		return "missing parentheses"
	case MissingReturnType:
		return "missing return type"
	case MalformedParameter:
		return "malformed parameter"
	case InvalidName:
		return "invalid method name"
	default:
		return fmt.Sprintf("ParseReason(%d)", int(r))
	}
}

// ParseError reports a rejected textual signature and the offending part of it.
type ParseError struct {
	Signature string
	Fragment  string
	Reason    ParseReason
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid method signature %q: %s in %q", e.Signature, e.Reason, e.Fragment)
}

func (e *ParseError) Unwrap() error {
	return descriptor.ErrSyntax
}

// wellKnownTypes are the java.lang types an unqualified name resolves to
// when default package resolution is off.
var wellKnownTypes = map[string]string{
	"AutoCloseable":    "java/lang/AutoCloseable",
	"Boolean":          "java/lang/Boolean",
	"Byte":             "java/lang/Byte",
	"CharSequence":     "java/lang/CharSequence",
	"Character":        "java/lang/Character",
	"Class":            "java/lang/Class",
	"Cloneable":        "java/lang/Cloneable",
	"Comparable":       "java/lang/Comparable",
	"Double":           "java/lang/Double",
	"Enum":             "java/lang/Enum",
	"Error":            "java/lang/Error",
	"Exception":        "java/lang/Exception",
	"Float":            "java/lang/Float",
	"Integer":          "java/lang/Integer",
	"Iterable":         "java/lang/Iterable",
	"Long":             "java/lang/Long",
	"Math":             "java/lang/Math",
	"Number":           "java/lang/Number",
	"Object":           "java/lang/Object",
	"Record":           "java/lang/Record",
	"Runnable":         "java/lang/Runnable",
	"RuntimeException": "java/lang/RuntimeException",
	"Short":            "java/lang/Short",
	"String":           "java/lang/String",
	"StringBuffer":     "java/lang/StringBuffer",
	"StringBuilder":    "java/lang/StringBuilder",
	"System":           "java/lang/System",
	"Thread":           "java/lang/Thread",
	"Throwable":        "java/lang/Throwable",
	"Void":             "java/lang/Void",
}

// typeResolver turns an unqualified, non-primitive type name into a Type.
type typeResolver interface {
	resolve(name string) descriptor.Type
}

type literalResolver struct{}

func (literalResolver) resolve(name string) descriptor.Type {
	return descriptor.Object(name)
}

type wellKnownResolver struct {
	fallback literalResolver
}

func (r wellKnownResolver) resolve(name string) descriptor.Type {
	if internal, ok := wellKnownTypes[name]; ok {
		return descriptor.Object(internal)
	}

	return r.fallback.resolve(name)
}

// Parser parses source-like signatures such as "boolean name(int, pkg.Class[])".
type Parser struct {
	resolver typeResolver
}

// NewParser creates a Parser. When defaultPackage is true, unqualified type
// names are taken literally as classes of the default package; otherwise
// they are first looked up among the well-known java.lang types.
func NewParser(defaultPackage bool) *Parser {
	if defaultPackage {
		return &Parser{resolver: literalResolver{}}
	}

	return &Parser{resolver: wellKnownResolver{}}
}

// Parse parses a signature with default package resolution off.
func Parse(text string) (Method, error) {
	return NewParser(false).Parse(text)
}

// MustParse is like Parse but panics on error.
func MustParse(text string) Method {
	m, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return m
}

// Parse parses "<returnType> <name>(<type>, <type>, ...)".
func (p *Parser) Parse(text string) (Method, error) {
	fail := func(reason ParseReason, fragment string) (Method, error) {
		return Method{}, &ParseError{Signature: text, Fragment: fragment, Reason: reason}
	}

	open := strings.IndexByte(text, '(')
	if open < 0 {
		return fail(MissingParens, text)
	}

	closing := strings.IndexByte(text[open+1:], ')')
	if closing < 0 {
		return fail(MissingParens, text[open:])
	}

	closing += open + 1

	head := strings.Fields(text[:open])
	if len(head) != 2 {
		return fail(MissingReturnType, strings.TrimSpace(text[:open]))
	}

	if tail := strings.TrimSpace(text[closing+1:]); tail != "" {
		return fail(MalformedParameter, tail)
	}

	if !validMethodName(head[1]) {
		return fail(InvalidName, head[1])
	}

	ret, ok := p.parseType(head[0], true)
	if !ok {
		return fail(MissingReturnType, head[0])
	}

	var args []descriptor.Type

	if inner := text[open+1 : closing]; strings.TrimSpace(inner) != "" {
		for _, token := range strings.Split(inner, ",") {
			token = strings.TrimSpace(token)

			arg, ok := p.parseType(token, false)
			if !ok {
				return fail(MalformedParameter, token)
			}

			args = append(args, arg)
		}
	}

	return FromTypes(head[1], ret, args...), nil
}

// parseType resolves one source-level type token, e.g. "int", "pkg.Class[][]" or "Object".
func (p *Parser) parseType(token string, allowVoid bool) (descriptor.Type, bool) {
	dims := 0
	for strings.HasSuffix(token, "[]") {
		dims++
		token = strings.TrimSpace(token[:len(token)-2])
	}

	if !validTypeName(token) {
		return descriptor.Type{}, false
	}

	var t descriptor.Type

	switch kind := primitive.FromKeyword(token); {
	case kind == primitive.KindVoid:
		if !allowVoid || dims > 0 {
			return descriptor.Type{}, false
		}

		t = descriptor.Void
	case kind != 0:
		t = descriptor.Primitive(kind)
	case common.IsQualified(token):
		t = descriptor.Object(token)
	default:
		t = p.resolver.resolve(token)
	}

	if dims > 0 {
		t = descriptor.ArrayOf(t, dims)
	}

	return t, true
}

// validMethodName rejects characters the class file format forbids in
// member names. Angle brackets are only allowed in the initializer names.
func validMethodName(name string) bool {
	if name == ConstructorName || name == StaticInitializerName {
		return true
	}

	return !strings.ContainsAny(name, ".;[/<>")
}

func validTypeName(name string) bool {
	if !descriptor.ValidObjectName(name) || strings.ContainsFunc(name, unicode.IsSpace) {
		return false
	}

	for _, part := range strings.Split(common.InternalName(name), "/") {
		if part == "" {
			return false
		}
	}

	return true
}
