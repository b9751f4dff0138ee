package bir

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/aster-lang/aster/internal/position"
)

// Textual unit fixtures. The inspection CLI and tests build small BIR units
// from a YAML description instead of running the whole front end. The format
// mirrors the post-typechecking shape of a unit: declarations plus a list of
// call sites, each already carrying its lowered dispatch argument. Each spec
// keeps the line and column of its YAML node, so decoded nodes carry real
// spans.

type unitSpec struct {
	Module  string      `yaml:"module"`
	Classes []classSpec `yaml:"classes"`
	Objects []classSpec `yaml:"objects"`
	Uses    []useSpec   `yaml:"uses"`
}

type classSpec struct {
	Name      string         `yaml:"name"`
	Kind      string         `yaml:"kind"`
	Companion *classSpec     `yaml:"companion"`
	Functions []functionSpec `yaml:"functions"`

	line, column int
}

func (s *classSpec) UnmarshalYAML(value *yaml.Node) error {
	type plain classSpec
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = classSpec(p)
	s.line, s.column = value.Line, value.Column
	return nil
}

type functionSpec struct {
	Name        string      `yaml:"name"`
	Annotations []string    `yaml:"annotations"`
	External    bool        `yaml:"external"`
	Suspend     bool        `yaml:"suspend"`
	Params      []paramSpec `yaml:"params"`
	Returns     string      `yaml:"returns"`

	line, column int
}

func (s *functionSpec) UnmarshalYAML(value *yaml.Node) error {
	type plain functionSpec
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = functionSpec(p)
	s.line, s.column = value.Line, value.Column
	return nil
}

type paramSpec struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type useSpec struct {
	Target string   `yaml:"target"` // "Owner.function"
	Args   []string `yaml:"args"`   // string literal arguments

	line, column int
}

func (s *useSpec) UnmarshalYAML(value *yaml.Node) error {
	type plain useSpec
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = useSpec(p)
	s.line, s.column = value.Line, value.Column
	return nil
}

// DecodeUnitFile reads a YAML unit fixture from path.
func DecodeUnitFile(path string) (*Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read unit fixture: %w", err)
	}
	return decodeUnit(data, path)
}

// DecodeUnit builds a compilation unit from a YAML fixture. Spans carry line
// and column only; use DecodeUnitFile to attach the filename.
func DecodeUnit(data []byte) (*Module, error) {
	return decodeUnit(data, "")
}

func decodeUnit(data []byte, filename string) (*Module, error) {
	var spec unitSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse unit fixture: %w", err)
	}
	if spec.Module == "" {
		return nil, fmt.Errorf("unit fixture: module name is required")
	}

	unit := NewModule(spec.Module)
	for _, cs := range spec.Classes {
		cls, err := buildClass(cs, KindClass, filename)
		if err != nil {
			return nil, err
		}
		unit.AddDecl(cls)
	}
	for _, cs := range spec.Objects {
		cls, err := buildClass(cs, KindObject, filename)
		if err != nil {
			return nil, err
		}
		unit.AddDecl(cls)
	}

	if len(spec.Uses) > 0 {
		main, err := buildUses(unit, spec.Uses, filename)
		if err != nil {
			return nil, err
		}
		unit.AddDecl(main)
	}
	return unit, nil
}

func buildClass(spec classSpec, defaultKind ClassKind, filename string) (*Class, error) {
	kind := defaultKind
	switch spec.Kind {
	case "":
	case "class":
		kind = KindClass
	case "interface":
		kind = KindInterface
	case "object":
		kind = KindObject
	default:
		return nil, fmt.Errorf("unit fixture: class %s: unknown kind %q", spec.Name, spec.Kind)
	}

	cls := NewClass(spec.Name, kind)
	cls.Span = position.Point(filename, spec.line, spec.column)
	for _, fs := range spec.Functions {
		cls.AddMember(buildFunction(cls, fs, filename))
	}
	if spec.Companion != nil {
		companion := NewClass(spec.Name+".Companion", KindCompanionObject)
		companion.Span = position.Point(filename, spec.Companion.line, spec.Companion.column)
		for _, fs := range spec.Companion.Functions {
			companion.AddMember(buildFunction(companion, fs, filename))
		}
		cls.AddMember(companion)
	}
	return cls, nil
}

func buildFunction(owner *Class, spec functionSpec, filename string) *Function {
	fn := NewFunction(spec.Name, qualifyType(spec.Returns))
	fn.Span = position.Point(filename, spec.line, spec.column)
	fn.External = spec.External
	fn.Suspend = spec.Suspend
	if owner.Kind == KindInterface {
		fn.Modality = ModalityOpen
	}
	fn.SetDispatchReceiver(owner.SelfType())
	for _, ps := range spec.Params {
		fn.AddValueParameter(ps.Name, qualifyType(ps.Type))
	}
	for _, name := range spec.Annotations {
		fn.Annotations = append(fn.Annotations, &Annotation{Name: qualifyAnnotation(name)})
	}
	return fn
}

// buildUses synthesizes a top-level driver function holding one call per use
// entry, already in the pre-lowering shape: singleton targets receive their
// instance field read as the dispatch argument. Every call carries the span
// of its use entry.
func buildUses(unit *Module, uses []useSpec, filename string) (*Function, error) {
	main := NewFunction("main", UnitType)
	main.Static = true

	body := At(main.Span).Block()
	for _, use := range uses {
		owner, fn, err := resolveUse(unit, use.Target)
		if err != nil {
			return nil, err
		}
		b := At(position.Point(filename, use.line, use.column))
		call := b.Call(fn.Symbol)
		if fn.DispatchReceiver != nil && owner.InstanceField != nil {
			call.Dispatch = b.GetStaticField(owner.InstanceField)
		}
		for _, arg := range use.Args {
			call.Args = append(call.Args, b.StringConst(arg))
		}
		body.Exprs = append(body.Exprs, call)
	}
	main.Body = body
	return main, nil
}

func resolveUse(unit *Module, target string) (*Class, *Function, error) {
	for i := len(target) - 1; i >= 0; i-- {
		if target[i] != '.' {
			continue
		}
		ownerName, fnName := target[:i], target[i+1:]
		for _, cls := range unit.Classes() {
			if cls.Name != ownerName {
				continue
			}
			for _, fn := range cls.Functions() {
				if fn.Name == fnName {
					return cls, fn, nil
				}
			}
		}
		return nil, nil, fmt.Errorf("unit fixture: use target %q not found", target)
	}
	return nil, nil, fmt.Errorf("unit fixture: use target %q must be Owner.function", target)
}

func qualifyType(name string) Type {
	if name == "" {
		return UnitType
	}
	return Type{Name: qualifyName(name)}
}

func qualifyAnnotation(name string) string {
	for _, r := range name {
		if r == '.' {
			return name
		}
	}
	return "aster.platform." + name
}

func qualifyName(name string) string {
	for _, r := range name {
		if r == '.' {
			return name
		}
	}
	return "aster." + name
}
