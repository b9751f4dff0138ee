package staticcalls

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/aster-lang/aster/internal/bir"
	"github.com/aster-lang/aster/internal/position"
)

// BackendContext carries the state that outlives a single compilation unit.
// A function owned by one unit may be called from another unit processed
// earlier or later in the same run, so this context is created once per run
// and shared by every per-unit Transformer.
type BackendContext struct {
	// pendingReceivers maps a function symbol to the instance parameter
	// that was removed from it. The call-site sweep can strip a receiver
	// before the owning unit's singleton sweep has rewritten the body; the
	// body rewrite then finds the removed parameter here.
	pendingReceivers map[uuid.UUID]*bir.Parameter
	// ownedUnits is the set of units compiled by this run. Declarations
	// rooted elsewhere were finalized in a previous run and must not be
	// mutated.
	ownedUnits map[*bir.Module]bool
}

// NewBackendContext creates the run-scoped context for the given units.
func NewBackendContext(units ...*bir.Module) *BackendContext {
	ctx := &BackendContext{
		pendingReceivers: make(map[uuid.UUID]*bir.Parameter),
		ownedUnits:       make(map[*bir.Module]bool, len(units)),
	}
	for _, u := range units {
		ctx.ownedUnits[u] = true
	}
	return ctx
}

// Owns reports whether fn is declared in a unit compiled by this run.
func (ctx *BackendContext) Owns(fn *bir.Function) bool {
	root := bir.Root(fn)
	return root != nil && ctx.ownedUnits[root]
}

// recordPendingReceiver remembers the instance parameter removed from the
// function bound to sym. Insertion is idempotent: the first writer wins and
// later writes are dropped, since the parameter field goes nil either way.
func (ctx *BackendContext) recordPendingReceiver(sym *bir.Symbol, param *bir.Parameter) {
	if _, ok := ctx.pendingReceivers[sym.ID]; ok {
		return
	}
	ctx.pendingReceivers[sym.ID] = param
}

// pendingReceiver returns the instance parameter previously removed from the
// function bound to sym, or nil.
func (ctx *BackendContext) pendingReceiver(sym *bir.Symbol) *bir.Parameter {
	return ctx.pendingReceivers[sym.ID]
}

// InternalError reports a violated structural precondition: the input tree
// broke an invariant upstream phases guarantee. It is fatal; the run aborts.
type InternalError struct {
	Unit   string
	Span   position.Span
	Detail string
	Args   []interface{}
}

func (e *InternalError) Error() string {
	msg := fmt.Sprintf("internal: unit %s: %s", e.Unit, fmt.Sprintf(e.Detail, e.Args...))
	if e.Span.IsValid() {
		msg += " at " + e.Span.String()
	}
	return msg
}
