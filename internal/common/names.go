package common

import "strings"

// DottedName converts an internal class name ("java/lang/String") into
// its dotted form ("java.lang.String"). Dotted input is returned unchanged.
func DottedName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

// InternalName converts a dotted class name into its internal form.
func InternalName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}

// IsQualified reports whether the name carries a package prefix in either form.
func IsQualified(name string) bool {
	return strings.ContainsAny(name, "./")
}

// SimpleName returns the last element of a qualified class name.
func SimpleName(name string) string {
	if i := strings.LastIndexAny(name, "./"); i >= 0 {
		return name[i+1:]
	}

	return name
}
