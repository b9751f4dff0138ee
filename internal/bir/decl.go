package bir

import "github.com/aster-lang/aster/internal/position"

// Declaration is implemented by all BIR declaration nodes.
type Declaration interface {
	Node
	// DeclName returns the declaration's simple name.
	DeclName() string
	// DeclParent returns the owning declaration, or nil for modules.
	DeclParent() Declaration
	// SetDeclParent re-homes the declaration under a new owner.
	SetDeclParent(parent Declaration)
}

// Module is one compilation unit: the root of a BIR tree.
type Module struct {
	Name  string
	Decls []Declaration
	Span  position.Span
	ID    NodeID
}

// NewModule creates an empty compilation unit.
func NewModule(name string) *Module {
	return &Module{ID: generateNodeID(), Name: name}
}

func (m *Module) GetID() NodeID                 { return m.ID }
func (m *Module) GetSpan() position.Span        { return m.Span }
func (m *Module) DeclName() string              { return m.Name }
func (m *Module) DeclParent() Declaration       { return nil }
func (m *Module) SetDeclParent(_ Declaration)   {}
func (m *Module) AddDecl(d Declaration) {
	d.SetDeclParent(m)
	m.Decls = append(m.Decls, d)
}

// Class is a class, interface, standalone object, or companion object.
type Class struct {
	Name           string
	Kind           ClassKind
	Parent         Declaration // Module or enclosing Class
	Visibility     Visibility
	Modality       Modality
	TypeParameters []*TypeParameter
	Members        []Declaration
	// InstanceField is the generated backing field holding the sole
	// instance; set for object kinds only.
	InstanceField *Field
	Annotations   []*Annotation
	Span          position.Span
	ID            NodeID
}

// NewClass creates a class declaration of the given kind. Object kinds get
// their singleton backing field generated immediately.
func NewClass(name string, kind ClassKind) *Class {
	c := &Class{ID: generateNodeID(), Name: name, Kind: kind}
	if kind == KindObject || kind == KindCompanionObject {
		c.InstanceField = &Field{
			ID:     generateNodeID(),
			Name:   "$instance",
			Type:   Type{Name: name},
			Owner:  c,
			Static: true,
		}
	}
	return c
}

func (c *Class) GetID() NodeID                    { return c.ID }
func (c *Class) GetSpan() position.Span           { return c.Span }
func (c *Class) DeclName() string                 { return c.Name }
func (c *Class) DeclParent() Declaration          { return c.Parent }
func (c *Class) SetDeclParent(parent Declaration) { c.Parent = parent }

// AddMember appends d to the class body and re-homes it under c.
func (c *Class) AddMember(d Declaration) {
	d.SetDeclParent(c)
	c.Members = append(c.Members, d)
}

// RemoveMember detaches d from the class body. It does not touch d's parent
// link; callers re-home the declaration themselves.
func (c *Class) RemoveMember(d Declaration) {
	for i, m := range c.Members {
		if m == d {
			c.Members = append(c.Members[:i], c.Members[i+1:]...)
			return
		}
	}
}

// Companion returns the companion object nested in c, or nil. A class owns
// at most one.
func (c *Class) Companion() *Class {
	for _, m := range c.Members {
		if nested, ok := m.(*Class); ok && nested.Kind == KindCompanionObject {
			return nested
		}
	}
	return nil
}

// Functions returns the class's member functions, including property
// accessors, in declaration order.
func (c *Class) Functions() []*Function {
	var out []*Function
	for _, m := range c.Members {
		switch n := m.(type) {
		case *Function:
			out = append(out, n)
		case *Property:
			if n.Getter != nil {
				out = append(out, n.Getter)
			}
			if n.Setter != nil {
				out = append(out, n.Setter)
			}
		}
	}
	return out
}

// IsObject reports whether c is a singleton of either form.
func (c *Class) IsObject() bool {
	return c.Kind == KindObject || c.Kind == KindCompanionObject
}

// SelfType returns the nominal type of instances of c.
func (c *Class) SelfType() Type {
	return Type{Name: c.Name}
}

// Field is a backing field owned by a class. The lowering only touches the
// generated singleton instance fields, which are always static.
type Field struct {
	Name   string
	Type   Type
	Owner  *Class
	Static bool
	Span   position.Span
	ID     NodeID
}

func (f *Field) GetID() NodeID                    { return f.ID }
func (f *Field) GetSpan() position.Span           { return f.Span }
func (f *Field) DeclName() string                 { return f.Name }
func (f *Field) DeclParent() Declaration          { return f.Owner }
func (f *Field) SetDeclParent(parent Declaration) { f.Owner, _ = parent.(*Class) }

// Property is a named value with generated accessor functions. Annotations
// placed on the property itself are visible to its accessors.
type Property struct {
	Name        string
	Parent      Declaration
	Annotations []*Annotation
	Getter      *Function
	Setter      *Function
	Span        position.Span
	ID          NodeID
}

func (p *Property) GetID() NodeID           { return p.ID }
func (p *Property) GetSpan() position.Span  { return p.Span }
func (p *Property) DeclName() string        { return p.Name }
func (p *Property) DeclParent() Declaration { return p.Parent }

// SetDeclParent re-homes the property and its accessors: accessor functions
// are owned by the class, not by the property node.
func (p *Property) SetDeclParent(parent Declaration) {
	p.Parent = parent
	if p.Getter != nil {
		p.Getter.Parent = parent
	}
	if p.Setter != nil {
		p.Setter.Parent = parent
	}
}

// Parameter is a value parameter or receiver parameter of a function.
type Parameter struct {
	Name string
	Type Type
	// Index is the position among the function's value parameters; -1 for
	// receiver parameters.
	Index int
	// DefaultValue is the default argument expression, if any.
	DefaultValue Expression
	Span         position.Span
	ID           NodeID
}

func (p *Parameter) GetID() NodeID          { return p.ID }
func (p *Parameter) GetSpan() position.Span { return p.Span }

// TypeParameter is a declared type parameter of a function or class.
type TypeParameter struct {
	Name   string
	Index  int
	Bounds []Type
	Span   position.Span
	ID     NodeID
}

func (tp *TypeParameter) GetID() NodeID          { return tp.ID }
func (tp *TypeParameter) GetSpan() position.Span { return tp.Span }

// Function is a function or accessor declaration.
type Function struct {
	Name       string
	Symbol     *Symbol
	Parent     Declaration
	Origin     Origin
	Visibility Visibility
	Modality   Modality
	// External marks declarations whose body lives outside this program
	// (native/foreign linkage).
	External bool
	// Suspend marks suspended-execution functions.
	Suspend bool
	// Static marks functions dispatched without an instance.
	Static bool

	ReturnType     Type
	TypeParameters []*TypeParameter
	// DispatchReceiver is the instance parameter; nil for static functions.
	DispatchReceiver *Parameter
	// ExtensionReceiver is the secondary receiver parameter, if any.
	ExtensionReceiver *Parameter
	ValueParameters   []*Parameter
	Annotations       []*Annotation
	// CorrespondingProperty links accessor functions to their property.
	CorrespondingProperty *Property
	Body                  *Block
	Span                  position.Span
	ID                    NodeID
}

// NewFunction creates a function declaration bound to a fresh symbol.
func NewFunction(name string, ret Type) *Function {
	fn := &Function{
		ID:         generateNodeID(),
		Name:       name,
		ReturnType: ret,
		Symbol:     NewSymbol(),
	}
	fn.Symbol.Bind(fn)
	return fn
}

func (f *Function) GetID() NodeID                    { return f.ID }
func (f *Function) GetSpan() position.Span           { return f.Span }
func (f *Function) DeclName() string                 { return f.Name }
func (f *Function) DeclParent() Declaration          { return f.Parent }
func (f *Function) SetDeclParent(parent Declaration) { f.Parent = parent }

// AddValueParameter appends a value parameter, keeping indices dense.
func (f *Function) AddValueParameter(name string, typ Type) *Parameter {
	p := &Parameter{
		ID:    generateNodeID(),
		Name:  name,
		Type:  typ,
		Index: len(f.ValueParameters),
	}
	f.ValueParameters = append(f.ValueParameters, p)
	return p
}

// SetDispatchReceiver installs the instance parameter for typ.
func (f *Function) SetDispatchReceiver(typ Type) *Parameter {
	f.DispatchReceiver = &Parameter{
		ID:    generateNodeID(),
		Name:  "this",
		Type:  typ,
		Index: -1,
	}
	return f.DispatchReceiver
}

// Root walks the parent chain up to the owning compilation unit. It returns
// nil for detached declarations.
func Root(d Declaration) *Module {
	for d != nil {
		if m, ok := d.(*Module); ok {
			return m
		}
		d = d.DeclParent()
	}
	return nil
}
