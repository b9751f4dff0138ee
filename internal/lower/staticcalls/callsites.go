package staticcalls

import (
	"github.com/aster-lang/aster/internal/bir"
	"github.com/aster-lang/aster/internal/position"
)

// rewriteCallSites walks every expression in the unit and rewrites calls
// whose target is an eligible standalone-singleton member. The declaration
// sweeps have already run for this unit, so same-unit targets are static by
// now; targets owned by other units of this run are converted here in place,
// and targets finalized in previous runs are replaced by a local
// receiver-less copy.
func (t *Transformer) rewriteCallSites() {
	t.unit.RewriteBodies(func(e bir.Expression) bir.Expression {
		call, ok := e.(*bir.Call)
		if !ok {
			return e
		}
		return t.rewriteCall(call)
	})
}

// rewriteCall rewrites a single call site, or returns it unchanged when it
// is not affected. The dispatch-argument check doubles as the idempotence
// guard: once a call is rewritten it carries no instance argument and a
// revisit falls through here.
func (t *Transformer) rewriteCall(call *bir.Call) bir.Expression {
	if call.Dispatch == nil {
		return call
	}
	target := call.Target.Owner()
	if target == nil || !isEligible(target) {
		return call
	}
	if ownerOf(target).Kind != OwnerSingleton {
		return call
	}

	newTarget := call.Target
	if !t.ctx.Owns(target) {
		stub := t.cloneForeignTarget(target, call.Span)
		if stub == nil {
			return call
		}
		newTarget = stub.Symbol
	} else if target.DispatchReceiver != nil {
		// Record before nulling so the owning unit's singleton sweep can
		// still find the parameter for body rewriting.
		t.ctx.recordPendingReceiver(target.Symbol, target.DispatchReceiver)
		target.DispatchReceiver = nil
		target.Static = true
	}

	// The receiver argument is evaluated exactly once, in its original
	// position, for its effects; the value is explicitly discarded so later
	// phases see a marked unit, not a dangling one.
	b := bir.At(call.Span)
	rebuilt := b.Call(newTarget)
	rebuilt.RetType = call.RetType
	rebuilt.Extension = call.Extension
	rebuilt.Args = call.Args
	rebuilt.TypeArgs = call.TypeArgs
	return b.Block(b.CoerceToUnit(call.Dispatch), rebuilt)
}

// cloneForeignTarget synthesizes a local receiver-less copy of a declaration
// owned by a previously compiled unit. A fresh copy is made per occurrence;
// this method is the single seam where a symbol-to-copy cache would slot in
// if the duplication ever shows up in compile profiles.
func (t *Transformer) cloneForeignTarget(target *bir.Function, at position.Span) *bir.Function {
	if target.DispatchReceiver == nil {
		t.internalf(at, "call supplies an instance argument but foreign target %s has no instance parameter", target.Name)
		return nil
	}
	stub := bir.CopySignature(target)
	stub.Origin = bir.OriginForeignStub
	stub.DispatchReceiver = nil
	stub.Static = true
	stub.SetDeclParent(target.DeclParent())
	return stub
}
