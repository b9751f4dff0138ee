package bir

import "github.com/aster-lang/aster/internal/position"

// Builder constructs expression nodes at a fixed source position. Lowerings
// create one per synthesized construct so every generated node points back
// at the source expression it replaces.
type Builder struct {
	span position.Span
}

// At returns a builder placing nodes at the given span.
func At(span position.Span) *Builder {
	return &Builder{span: span}
}

// Call builds a call to the function bound to target.
func (b *Builder) Call(target *Symbol) *Call {
	return &Call{
		ID:      generateNodeID(),
		Target:  target,
		RetType: target.Owner().ReturnType,
		Span:    b.span,
	}
}

// Block builds a block yielding the value of its last expression.
func (b *Builder) Block(exprs ...Expression) *Block {
	return &Block{ID: generateNodeID(), Exprs: exprs, Span: b.span}
}

// GetValue builds a read of param.
func (b *Builder) GetValue(param *Parameter) *GetValue {
	return &GetValue{ID: generateNodeID(), Param: param, Span: b.span}
}

// GetStaticField builds a receiver-less read of a static field.
func (b *Builder) GetStaticField(field *Field) *GetField {
	return &GetField{ID: generateNodeID(), Field: field, Span: b.span}
}

// CoerceToUnit builds a discard marker around operand: the operand is
// evaluated for its effects and the resulting value is dropped.
func (b *Builder) CoerceToUnit(operand Expression) *TypeOperator {
	return &TypeOperator{
		ID:      generateNodeID(),
		Op:      OpImplicitCoerceToUnit,
		Operand: operand,
		Target:  UnitType,
		Span:    b.span,
	}
}

// Return builds a return of value from the enclosing function.
func (b *Builder) Return(value Expression) *Return {
	return &Return{ID: generateNodeID(), Value: value, Span: b.span}
}

// StringConst builds a string literal.
func (b *Builder) StringConst(v string) *Const {
	return &Const{
		ID:      generateNodeID(),
		Kind:    ConstString,
		Str:     v,
		ValType: Type{Name: "aster.String"},
		Span:    b.span,
	}
}

// IntConst builds an integer literal.
func (b *Builder) IntConst(v int64) *Const {
	return &Const{
		ID:      generateNodeID(),
		Kind:    ConstInt,
		Int64:   v,
		ValType: Type{Name: "aster.Int"},
		Span:    b.span,
	}
}
