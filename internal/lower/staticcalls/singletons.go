package staticcalls

import "github.com/aster-lang/aster/internal/bir"

// lowerSingleton promotes every eligible member of a standalone singleton
// object to a true static function: the instance parameter is dropped and
// body references to it are redirected at the object's backing instance
// field. Companion objects never reach here; they keep their members and
// gain proxies instead.
func (t *Transformer) lowerSingleton(obj *bir.Class) {
	for _, fn := range obj.Functions() {
		if !isEligible(fn) {
			continue
		}
		// The call-site sweep of an earlier unit may have stripped the
		// parameter already; the removed parameter is then on record.
		receiver := fn.DispatchReceiver
		if receiver == nil {
			receiver = t.ctx.pendingReceiver(fn.Symbol)
		}
		if receiver == nil {
			// Never had an instance parameter: already static-shaped.
			continue
		}

		fn.DispatchReceiver = nil
		fn.Static = true
		t.redirectReceiverUses(fn, receiver, obj)
	}
}

// redirectReceiverUses rewrites every read of the removed instance parameter
// into a read of the singleton's backing instance field. The body may still
// need the singleton's own state, so references are rewritten, not deleted.
func (t *Transformer) redirectReceiverUses(fn *bir.Function, receiver *bir.Parameter, obj *bir.Class) {
	if fn.Body == nil {
		return
	}
	if obj.InstanceField == nil {
		t.internalf(obj.GetSpan(), "singleton %s has no backing instance field", obj.Name)
		return
	}
	rewritten := bir.RewriteExpr(fn.Body, func(e bir.Expression) bir.Expression {
		get, ok := e.(*bir.GetValue)
		if !ok || get.Param != receiver {
			return e
		}
		return bir.At(get.GetSpan()).GetStaticField(obj.InstanceField)
	})
	fn.Body = rewritten.(*bir.Block)
}
