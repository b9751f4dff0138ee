package staticcalls

import (
	"testing"

	"github.com/aster-lang/aster/internal/bir"
)

func annotated(name string) *bir.Function {
	fn := bir.NewFunction(name, bir.UnitType)
	fn.Annotations = []*bir.Annotation{{Name: StaticCallAnnotation}}
	return fn
}

func TestIsEligible_AnnotatedFunction(t *testing.T) {
	if !isEligible(annotated("f")) {
		t.Error("directly annotated function should be eligible")
	}
}

func TestIsEligible_Unannotated(t *testing.T) {
	fn := bir.NewFunction("f", bir.UnitType)
	if isEligible(fn) {
		t.Error("unannotated function should not be eligible")
	}
}

func TestIsEligible_AccessorViaProperty(t *testing.T) {
	prop := &bir.Property{
		Name:        "count",
		Annotations: []*bir.Annotation{{Name: StaticCallAnnotation}},
	}
	getter := bir.NewFunction("<get-count>", bir.Type{Name: "aster.Int"})
	getter.CorrespondingProperty = prop
	prop.Getter = getter

	if !isEligible(getter) {
		t.Error("accessor should inherit eligibility from its property")
	}
}

func TestIsEligible_PropertyAnnotationHostExcluded(t *testing.T) {
	fn := annotated("f$annotations")
	fn.Origin = bir.OriginPropertyAnnotationHost
	if isEligible(fn) {
		t.Error("synthetic annotation host must never be eligible")
	}
}

func TestIsEligible_Pure(t *testing.T) {
	fn := annotated("f")
	first := isEligible(fn)
	for i := 0; i < 3; i++ {
		if isEligible(fn) != first {
			t.Fatal("eligibility changed across evaluations")
		}
	}
}
