// Package bir defines the Backend Intermediate Representation (BIR) for the
// Aster compiler. BIR is the tree handed to the backend lowering stages after
// type checking and annotation resolution: declarations keep their symbolic
// identity, call expressions reference their targets through stable symbols,
// and every node carries a source span.
//
// The schema is deliberately small: it covers the declaration and expression
// shapes the backend lowerings rewrite (classes, singleton objects, companion
// objects, functions, calls, field reads) rather than the full surface
// language.
package bir

import (
	"github.com/google/uuid"

	"github.com/aster-lang/aster/internal/position"
)

// NodeID uniquely identifies a BIR node within a program.
type NodeID uint64

// Node is the base interface for all BIR nodes.
type Node interface {
	// GetID returns the unique identifier for this node.
	GetID() NodeID
	// GetSpan returns the source span covered by this node.
	GetSpan() position.Span
}

// Origin records why or how a declaration was produced.
type Origin int

const (
	// OriginSource marks declarations written by the user.
	OriginSource Origin = iota
	// OriginSynthetic marks compiler-synthesized declarations with no more
	// specific origin.
	OriginSynthetic
	// OriginPropertyAnnotationHost marks the synthetic accessor that exists
	// only to host property-targeted annotations. It is never callable.
	OriginPropertyAnnotationHost
	// OriginStaticProxy marks static proxies and compatibility accessors
	// synthesized by the static-dispatch lowering.
	OriginStaticProxy
	// OriginForeignStub marks a local receiver-less copy of a declaration
	// imported from a previously compiled unit.
	OriginForeignStub
)

func (o Origin) String() string {
	switch o {
	case OriginSource:
		return "source"
	case OriginSynthetic:
		return "synthetic"
	case OriginPropertyAnnotationHost:
		return "property-annotation-host"
	case OriginStaticProxy:
		return "static-proxy"
	case OriginForeignStub:
		return "foreign-stub"
	default:
		return "unknown"
	}
}

// Visibility controls where a declaration may be referenced from.
type Visibility int

const (
	VisibilityPublic Visibility = iota
	VisibilityInternal
	VisibilityProtected
	VisibilityPrivate
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityInternal:
		return "internal"
	case VisibilityProtected:
		return "protected"
	case VisibilityPrivate:
		return "private"
	default:
		return "unknown"
	}
}

// Modality controls whether a member may be overridden.
type Modality int

const (
	ModalityFinal Modality = iota
	ModalityOpen
	ModalityAbstract
)

func (m Modality) String() string {
	switch m {
	case ModalityFinal:
		return "final"
	case ModalityOpen:
		return "open"
	case ModalityAbstract:
		return "abstract"
	default:
		return "unknown"
	}
}

// ClassKind distinguishes the declaration forms a Class node can take.
type ClassKind int

const (
	// KindClass is an ordinary class.
	KindClass ClassKind = iota
	// KindInterface is an interface.
	KindInterface
	// KindObject is a standalone singleton object declaration.
	KindObject
	// KindCompanionObject is the singleton implicitly attached to an
	// enclosing class.
	KindCompanionObject
)

func (k ClassKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindObject:
		return "object"
	case KindCompanionObject:
		return "companion object"
	default:
		return "unknown"
	}
}

// Type is a resolved type reference. Backend lowerings only need nominal
// identity, type arguments, and type-parameter references; structural detail
// stays in the front end.
type Type struct {
	// Name is the fully qualified nominal name, e.g. "aster.String".
	Name string
	// Args holds type arguments for generic types.
	Args []Type
	// Param is non-nil when this type references a type parameter in scope.
	Param *TypeParameter
}

// UnitType is the type of expressions evaluated only for their effects.
var UnitType = Type{Name: "aster.Unit"}

// NothingType is the type of expressions that never produce a value.
var NothingType = Type{Name: "aster.Nothing"}

// IsUnit reports whether t is the unit type.
func (t Type) IsUnit() bool {
	return t.Param == nil && t.Name == UnitType.Name
}

// Equals reports nominal equality including type arguments.
func (t Type) Equals(other Type) bool {
	if t.Name != other.Name || t.Param != other.Param {
		return false
	}
	if len(t.Args) != len(other.Args) {
		return false
	}
	for i := range t.Args {
		if !t.Args[i].Equals(other.Args[i]) {
			return false
		}
	}
	return true
}

// ParamRef returns a type that references the given type parameter.
func ParamRef(tp *TypeParameter) Type {
	return Type{Name: tp.Name, Param: tp}
}

// Symbol is a stable handle to a function declaration. Call expressions
// reference their target through a symbol so the target can be rebound
// without touching the call's arguments, and so side tables can key on an
// identity that survives declaration mutation.
type Symbol struct {
	ID    uuid.UUID
	owner *Function
}

// NewSymbol creates an unbound symbol with fresh identity.
func NewSymbol() *Symbol {
	return &Symbol{ID: uuid.New()}
}

// Owner returns the declaration currently bound to the symbol, or nil.
func (s *Symbol) Owner() *Function { return s.owner }

// Bind points the symbol at fn. Binding an already-bound symbol re-targets
// it; callers that need fresh identity create a new symbol instead.
func (s *Symbol) Bind(fn *Function) { s.owner = fn }

// Annotation is a resolved annotation entry on a declaration.
type Annotation struct {
	// Name is the annotation's fully qualified name.
	Name string
	// Values holds named constant arguments, if any.
	Values map[string]string
}

// HasAnnotation reports whether the list carries an annotation with the
// given fully qualified name.
func HasAnnotation(list []*Annotation, name string) bool {
	for _, a := range list {
		if a.Name == name {
			return true
		}
	}
	return false
}

// FindAnnotationValue returns the named argument of the first annotation
// with the given fully qualified name.
func FindAnnotationValue(list []*Annotation, name, arg string) (string, bool) {
	for _, a := range list {
		if a.Name == name {
			v, ok := a.Values[arg]
			return v, ok
		}
	}
	return "", false
}

// Node ID generation (simple counter for now).
var nextNodeID NodeID = 1

func generateNodeID() NodeID {
	id := nextNodeID
	nextNodeID++

	return id
}
