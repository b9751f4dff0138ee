package bir

import "github.com/aster-lang/aster/internal/position"

// Expression is implemented by all BIR expression nodes. Statements are
// expressions of unit type, so function bodies are plain expression trees.
type Expression interface {
	Node
	// Type returns the expression's static type.
	Type() Type
	exprNode()
}

// Call invokes a function through its symbol.
type Call struct {
	// Target is the symbol of the callee.
	Target *Symbol
	// Dispatch is the instance argument; nil for static calls.
	Dispatch Expression
	// Extension is the secondary receiver argument, if any.
	Extension Expression
	// Args are the positional value arguments.
	Args []Expression
	// TypeArgs are the type arguments, positionally matching the callee's
	// type parameters.
	TypeArgs []Type
	// RetType is the call's result type as seen by the caller.
	RetType Type
	Span    position.Span
	ID      NodeID
}

func (c *Call) GetID() NodeID          { return c.ID }
func (c *Call) GetSpan() position.Span { return c.Span }
func (c *Call) Type() Type             { return c.RetType }
func (c *Call) exprNode()              {}

// Block evaluates its expressions in order and yields the value of the last
// one (unit when empty).
type Block struct {
	Exprs []Expression
	Span  position.Span
	ID    NodeID
}

func (b *Block) GetID() NodeID          { return b.ID }
func (b *Block) GetSpan() position.Span { return b.Span }
func (b *Block) Type() Type {
	if len(b.Exprs) == 0 {
		return UnitType
	}
	return b.Exprs[len(b.Exprs)-1].Type()
}
func (b *Block) exprNode() {}

// GetValue reads a parameter, including receiver parameters ("this").
type GetValue struct {
	Param *Parameter
	Span  position.Span
	ID    NodeID
}

func (g *GetValue) GetID() NodeID          { return g.ID }
func (g *GetValue) GetSpan() position.Span { return g.Span }
func (g *GetValue) Type() Type             { return g.Param.Type }
func (g *GetValue) exprNode()              {}

// GetField reads a field. Receiver is nil for static fields such as the
// singleton instance fields.
type GetField struct {
	Field    *Field
	Receiver Expression
	Span     position.Span
	ID       NodeID
}

func (g *GetField) GetID() NodeID          { return g.ID }
func (g *GetField) GetSpan() position.Span { return g.Span }
func (g *GetField) Type() Type             { return g.Field.Type }
func (g *GetField) exprNode()              {}

// SetField writes a field, yielding unit.
type SetField struct {
	Field    *Field
	Receiver Expression
	Value    Expression
	Span     position.Span
	ID       NodeID
}

func (s *SetField) GetID() NodeID          { return s.ID }
func (s *SetField) GetSpan() position.Span { return s.Span }
func (s *SetField) Type() Type             { return UnitType }
func (s *SetField) exprNode()              {}

// ConstKind classifies constant expressions.
type ConstKind int

const (
	ConstInt ConstKind = iota
	ConstString
	ConstBool
	ConstUnit
)

// Const is a literal constant.
type Const struct {
	Kind    ConstKind
	Int64   int64
	Str     string
	Bool    bool
	ValType Type
	Span    position.Span
	ID      NodeID
}

func (c *Const) GetID() NodeID          { return c.ID }
func (c *Const) GetSpan() position.Span { return c.Span }
func (c *Const) Type() Type             { return c.ValType }
func (c *Const) exprNode()              {}

// TypeOpKind classifies type-operator expressions.
type TypeOpKind int

const (
	// OpImplicitCoerceToUnit marks an operand evaluated only for its
	// effects; the value is discarded and the expression yields unit.
	// Later stages rely on discarded values being marked, not dangling.
	OpImplicitCoerceToUnit TypeOpKind = iota
	// OpImplicitCast adjusts an expression's static type without a runtime
	// check.
	OpImplicitCast
)

func (k TypeOpKind) String() string {
	switch k {
	case OpImplicitCoerceToUnit:
		return "coerce-to-unit"
	case OpImplicitCast:
		return "implicit-cast"
	default:
		return "unknown"
	}
}

// TypeOperator wraps an operand with a type-level adjustment.
type TypeOperator struct {
	Op      TypeOpKind
	Operand Expression
	// Target is the resulting static type.
	Target Type
	Span   position.Span
	ID     NodeID
}

func (t *TypeOperator) GetID() NodeID          { return t.ID }
func (t *TypeOperator) GetSpan() position.Span { return t.Span }
func (t *TypeOperator) Type() Type             { return t.Target }
func (t *TypeOperator) exprNode()              {}

// Return exits the enclosing function with an optional value.
type Return struct {
	Value Expression // nil for bare returns
	Span  position.Span
	ID    NodeID
}

func (r *Return) GetID() NodeID          { return r.ID }
func (r *Return) GetSpan() position.Span { return r.Span }
func (r *Return) Type() Type             { return NothingType }
func (r *Return) exprNode()              {}
