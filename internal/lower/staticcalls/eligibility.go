package staticcalls

import "github.com/aster-lang/aster/internal/bir"

// StaticCallAnnotation marks members callable without an instance.
const StaticCallAnnotation = "aster.platform.StaticCall"

// isEligible reports whether fn is a lowering target: the annotation is
// present on the function itself or on its corresponding property, and the
// function is not the synthetic accessor that exists only to host
// property-targeted annotations (that declaration is never callable).
func isEligible(fn *bir.Function) bool {
	if fn.Origin == bir.OriginPropertyAnnotationHost {
		return false
	}
	if bir.HasAnnotation(fn.Annotations, StaticCallAnnotation) {
		return true
	}
	if prop := fn.CorrespondingProperty; prop != nil {
		return bir.HasAnnotation(prop.Annotations, StaticCallAnnotation)
	}
	return false
}
