// Package staticcalls implements the static-dispatch lowering stage of the
// Aster backend. Member functions annotated @StaticCall are rewritten into
// static-callable form, and every call site that targets a converted
// function is rewritten to the new calling convention.
//
// Two source shapes are handled:
//
//   - Companion-object members cannot themselves become static, because the
//     companion is a real object with identity. The enclosing class gains a
//     synthesized static proxy that forwards to the companion instance.
//   - Standalone singleton members can be promoted in place: the instance
//     parameter is dropped and body references to it are redirected at the
//     singleton's backing instance field.
//
// The stage runs three sweeps per unit, in fixed order: companion proxies,
// singleton conversion, then call-site rewriting. The two declaration sweeps
// must complete first so same-unit call sites observe the converted shapes;
// cross-unit targets are fixed up locally on demand because their owning
// units are not part of this run.
package staticcalls

import (
	"errors"

	"github.com/aster-lang/aster/internal/bir"
	"github.com/aster-lang/aster/internal/pipeline"
	"github.com/aster-lang/aster/internal/position"
)

// StageName identifies the lowering in the backend pipeline.
const StageName = "lower-static-calls"

// Transformer lowers one compilation unit. It accumulates structural faults
// instead of stopping at the first one, so a broken tree reports everything
// wrong with it.
type Transformer struct {
	ctx  *BackendContext
	unit *bir.Module
	errs []error
}

// NewTransformer creates a transformer for one unit of the run held by ctx.
func NewTransformer(ctx *BackendContext, unit *bir.Module) *Transformer {
	return &Transformer{ctx: ctx, unit: unit}
}

// Lower runs the three sweeps over the unit. Declaration sweeps run before
// the call-site sweep; see the package comment for why the order is fixed.
func (t *Transformer) Lower() error {
	for _, cls := range t.unit.Classes() {
		if cls.Companion() != nil {
			t.lowerCompanion(cls)
		}
	}
	for _, cls := range t.unit.Classes() {
		if cls.Kind == bir.KindObject {
			t.lowerSingleton(cls)
		}
	}
	t.rewriteCallSites()
	return errors.Join(t.errs...)
}

func (t *Transformer) internalf(span position.Span, format string, args ...interface{}) {
	t.errs = append(t.errs, &InternalError{Unit: t.unit.Name, Span: span, Detail: format, Args: args})
}

// Stage adapts the lowering to the backend pipeline. One stage value serves
// a whole run; per-unit state lives on the Transformer.
type Stage struct {
	ctx *BackendContext
}

// NewStage creates the pipeline stage backed by the run context.
func NewStage(ctx *BackendContext) *Stage {
	return &Stage{ctx: ctx}
}

// Name implements pipeline.Stage.
func (s *Stage) Name() string { return StageName }

// Run implements pipeline.Stage.
func (s *Stage) Run(unit *bir.Module) error {
	return NewTransformer(s.ctx, unit).Lower()
}

var _ pipeline.Stage = (*Stage)(nil)
