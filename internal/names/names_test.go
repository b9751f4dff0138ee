package names

import (
	"testing"

	"github.com/aster-lang/aster/internal/bir"
)

func TestExternalName_PlainFunction(t *testing.T) {
	fn := bir.NewFunction("greet", bir.Type{Name: "aster.String"})
	if got := ExternalName(fn); got != "greet" {
		t.Errorf("ExternalName = %q, want %q", got, "greet")
	}
}

func TestExternalName_Accessors(t *testing.T) {
	cases := []struct {
		property string
		getter   string
		setter   string
	}{
		{"count", "getCount", "setCount"},
		{"isReady", "isReady", "setReady"},
		{"島", "get島", "set島"},
	}
	for _, tc := range cases {
		prop := &bir.Property{Name: tc.property}
		get := bir.NewFunction("<get-"+tc.property+">", bir.Type{Name: "aster.Int"})
		set := bir.NewFunction("<set-"+tc.property+">", bir.UnitType)
		get.CorrespondingProperty, set.CorrespondingProperty = prop, prop
		prop.Getter, prop.Setter = get, set

		if got := ExternalName(get); got != tc.getter {
			t.Errorf("getter of %q = %q, want %q", tc.property, got, tc.getter)
		}
		if got := ExternalName(set); got != tc.setter {
			t.Errorf("setter of %q = %q, want %q", tc.property, got, tc.setter)
		}
	}
}

func TestExternalName_AnnotationOverride(t *testing.T) {
	fn := bir.NewFunction("greet", bir.Type{Name: "aster.String"})
	fn.Annotations = []*bir.Annotation{{
		Name:   ExternalNameAnnotation,
		Values: map[string]string{"name": "hello"},
	}}
	if got := ExternalName(fn); got != "hello" {
		t.Errorf("ExternalName = %q, want %q", got, "hello")
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"plain", "plain"},
		{"with space", "with space"},
		{"a.b/c", "a$b$c"},
		{"weird<name>", "weird$name$"},
	}
	for _, tc := range cases {
		if got := Sanitize(tc.in); got != tc.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
