package bir

// Expression traversal and rewriting. Lowerings rewrite bottom-up: children
// are transformed before their parent is offered to the callback, so a
// replacement node never has stale children.

// RewriteExpr transforms e bottom-up. The callback receives each expression
// after its children have been rewritten and returns the replacement (or
// the expression itself to keep it).
func RewriteExpr(e Expression, f func(Expression) Expression) Expression {
	if e == nil {
		return nil
	}
	switch n := e.(type) {
	case *Call:
		if n.Dispatch != nil {
			n.Dispatch = RewriteExpr(n.Dispatch, f)
		}
		if n.Extension != nil {
			n.Extension = RewriteExpr(n.Extension, f)
		}
		for i, a := range n.Args {
			n.Args[i] = RewriteExpr(a, f)
		}
	case *Block:
		for i, sub := range n.Exprs {
			n.Exprs[i] = RewriteExpr(sub, f)
		}
	case *GetField:
		if n.Receiver != nil {
			n.Receiver = RewriteExpr(n.Receiver, f)
		}
	case *SetField:
		if n.Receiver != nil {
			n.Receiver = RewriteExpr(n.Receiver, f)
		}
		n.Value = RewriteExpr(n.Value, f)
	case *TypeOperator:
		n.Operand = RewriteExpr(n.Operand, f)
	case *Return:
		if n.Value != nil {
			n.Value = RewriteExpr(n.Value, f)
		}
	case *GetValue, *Const:
		// Leaves.
	}
	return f(e)
}

// WalkExpr visits e and every sub-expression in evaluation order.
func WalkExpr(e Expression, f func(Expression)) {
	RewriteExpr(e, func(sub Expression) Expression {
		f(sub)
		return sub
	})
}

// Functions returns every function declared anywhere in the unit: top level,
// class members, nested objects and companions, and property accessors.
func (m *Module) Functions() []*Function {
	var out []*Function
	var fromDecl func(d Declaration)
	fromDecl = func(d Declaration) {
		switch n := d.(type) {
		case *Function:
			out = append(out, n)
		case *Property:
			if n.Getter != nil {
				out = append(out, n.Getter)
			}
			if n.Setter != nil {
				out = append(out, n.Setter)
			}
		case *Class:
			for _, member := range n.Members {
				fromDecl(member)
			}
		}
	}
	for _, d := range m.Decls {
		fromDecl(d)
	}
	return out
}

// Classes returns every class-like declaration in the unit, outermost first.
func (m *Module) Classes() []*Class {
	var out []*Class
	var fromDecl func(d Declaration)
	fromDecl = func(d Declaration) {
		if c, ok := d.(*Class); ok {
			out = append(out, c)
			for _, member := range c.Members {
				fromDecl(member)
			}
		}
	}
	for _, d := range m.Decls {
		fromDecl(d)
	}
	return out
}

// RewriteBodies applies f bottom-up to the body of every function in the
// unit, replacing each body with the rewritten tree.
func (m *Module) RewriteBodies(f func(Expression) Expression) {
	for _, fn := range m.Functions() {
		if fn.Body == nil {
			continue
		}
		rewritten := RewriteExpr(fn.Body, f)
		if blk, ok := rewritten.(*Block); ok {
			fn.Body = blk
		} else {
			fn.Body = &Block{ID: generateNodeID(), Exprs: []Expression{rewritten}, Span: rewritten.GetSpan()}
		}
	}
}
