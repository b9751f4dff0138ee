// Package names computes the final external symbol names functions resolve
// to in the emitted object format. Proxy synthesis in the backend must name
// a proxy exactly as its target maps, or the two would resolve to different
// symbols at link time.
package names

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aster-lang/aster/internal/bir"
)

// ExternalNameAnnotation overrides a declaration's external symbol name.
const ExternalNameAnnotation = "aster.platform.ExternalName"

// ExternalName returns the symbol name fn resolves to in the object format.
// An explicit @ExternalName annotation wins; property accessors translate to
// get/set form; plain functions map to their own (sanitized) name.
func ExternalName(fn *bir.Function) string {
	if v, ok := bir.FindAnnotationValue(fn.Annotations, ExternalNameAnnotation, "name"); ok {
		return v
	}
	if prop := fn.CorrespondingProperty; prop != nil {
		if v, ok := bir.FindAnnotationValue(prop.Annotations, ExternalNameAnnotation, "name"); ok {
			return v
		}
		switch fn {
		case prop.Getter:
			return GetterName(prop.Name)
		case prop.Setter:
			return SetterName(prop.Name)
		}
	}
	return Sanitize(fn.Name)
}

// GetterName maps a property name to its accessor symbol name. Names already
// in "is" form are kept as-is, matching the object format's conventions.
func GetterName(property string) string {
	if isPrefixed(property) {
		return Sanitize(property)
	}
	return "get" + Sanitize(capitalize(property))
}

// SetterName maps a property name to its setter symbol name.
func SetterName(property string) string {
	if isPrefixed(property) {
		return "set" + Sanitize(capitalize(property[2:]))
	}
	return "set" + Sanitize(capitalize(property))
}

func isPrefixed(name string) bool {
	if !strings.HasPrefix(name, "is") {
		return false
	}
	r, _ := utf8.DecodeRuneInString(name[2:])
	return r != utf8.RuneError && !unicode.IsLower(r)
}

func capitalize(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}

// Sanitize replaces characters that are illegal in object-format symbol
// names. Aster allows backtick-quoted identifiers, so arbitrary characters
// can reach the backend.
func Sanitize(name string) string {
	var sb strings.Builder
	for _, r := range name {
		switch r {
		case '.', ';', '[', ']', '/', '<', '>', ':', '\\':
			sb.WriteRune('$')
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
