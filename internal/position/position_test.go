package position

import "testing"

func TestPositionString(t *testing.T) {
	cases := []struct {
		pos  Position
		want string
	}{
		{Position{Filename: "src/app.aster", Line: 3, Column: 7}, "app.aster:3:7"},
		{Position{Line: 3, Column: 7}, "3:7"},
	}
	for _, tc := range cases {
		if got := tc.pos.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestSpanString(t *testing.T) {
	cases := []struct {
		span Span
		want string
	}{
		{Point("app.aster", 3, 7), "app.aster:3:7"},
		{
			Span{Start: Position{Filename: "app.aster", Line: 3, Column: 7}, End: Position{Filename: "app.aster", Line: 3, Column: 12}},
			"app.aster:3:7-12",
		},
		{
			Span{Start: Position{Filename: "app.aster", Line: 3, Column: 7}, End: Position{Filename: "app.aster", Line: 5, Column: 2}},
			"app.aster:3:7-5:2",
		},
	}
	for _, tc := range cases {
		if got := tc.span.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestIsValid(t *testing.T) {
	if (Span{}).IsValid() {
		t.Error("zero span must be invalid")
	}
	if (Position{Filename: "a", Line: 0, Column: 1}).IsValid() {
		t.Error("zero line must be invalid")
	}
	if !Point("a", 1, 1).IsValid() {
		t.Error("point span at 1:1 must be valid")
	}
	mixed := Span{Start: Position{Filename: "a", Line: 1, Column: 1}, End: Position{Filename: "b", Line: 1, Column: 1}}
	if mixed.IsValid() {
		t.Error("span crossing files must be invalid")
	}
}
