package staticcalls

import (
	"github.com/aster-lang/aster/internal/bir"
	"github.com/aster-lang/aster/internal/names"
)

// lowerCompanion synthesizes static-callable forms on cls for every eligible
// member of its companion object. Plain members get a static proxy on the
// enclosing class; externally linked members are moved onto the enclosing
// class (external symbols must resolve by their declared name and location
// at link time) and the companion keeps a non-static compatibility accessor
// in their place.
func (t *Transformer) lowerCompanion(cls *bir.Class) {
	companion := cls.Companion()
	if companion == nil {
		return
	}

	// Snapshot first: both paths below mutate the member lists.
	var targets []*bir.Function
	for _, fn := range companion.Functions() {
		if isEligible(fn) {
			targets = append(targets, fn)
		}
	}

	for _, fn := range targets {
		if fn.External {
			t.moveExternalMember(cls, companion, fn)
		} else {
			cls.AddMember(t.makeProxy(cls, companion, fn, true))
		}
	}
}

// moveExternalMember relocates an externally linked companion member onto
// the enclosing class as a static declaration and leaves a forwarding
// accessor of the same external name behind in the companion, so both call
// conventions keep resolving.
func (t *Transformer) moveExternalMember(cls, companion *bir.Class, fn *bir.Function) {
	moved := bir.CopySignature(fn)
	moved.Static = true
	moved.DispatchReceiver = nil
	cls.AddMember(moved)
	// Call sites still hold the original symbol; re-target it so they
	// resolve to the moved declaration.
	fn.Symbol.Bind(moved)

	companion.RemoveMember(fn)
	if prop := fn.CorrespondingProperty; prop != nil {
		// Accessors live on their property, not in the member list.
		switch fn {
		case prop.Getter:
			prop.Getter = nil
		case prop.Setter:
			prop.Setter = nil
		}
	}

	companion.AddMember(t.makeProxy(companion, companion, moved, false))
}

// makeProxy synthesizes a forwarding function for target, owned by owner. A
// static proxy has no instance parameter; a non-static one dispatches on the
// owner. The forwarding call's instance argument, when the target still
// takes one, is always a read of the companion's backing instance field,
// never the proxy's own receiver.
func (t *Transformer) makeProxy(owner, companion *bir.Class, target *bir.Function, static bool) *bir.Function {
	proxy := bir.NewFunction(names.ExternalName(target), target.ReturnType)
	proxy.Origin = bir.OriginStaticProxy
	proxy.Span = target.Span
	proxy.Visibility = target.Visibility
	proxy.Suspend = target.Suspend
	proxy.Annotations = bir.CopyAnnotations(target.Annotations)
	if owner.Kind == bir.KindInterface {
		proxy.Modality = bir.ModalityOpen
	} else {
		proxy.Modality = target.Modality
	}

	var remap map[*bir.TypeParameter]*bir.TypeParameter
	proxy.TypeParameters, remap = bir.CopyTypeParameters(target.TypeParameters)
	proxy.ReturnType = bir.RemapType(target.ReturnType, remap)
	proxy.ExtensionReceiver = bir.CopyParameter(target.ExtensionReceiver, remap)
	if static {
		proxy.Static = true
	} else {
		proxy.SetDispatchReceiver(owner.SelfType())
	}
	// Default-value expressions are dropped here: default-forwarding
	// bridges for synthesized proxies are not generated yet.
	proxy.ValueParameters = make([]*bir.Parameter, len(target.ValueParameters))
	for i, p := range target.ValueParameters {
		proxy.ValueParameters[i] = bir.CopyParameter(p, remap)
	}

	b := bir.At(target.Span)
	call := b.Call(target.Symbol)
	call.RetType = proxy.ReturnType
	if target.DispatchReceiver != nil {
		call.Dispatch = b.GetStaticField(companion.InstanceField)
	}
	if proxy.ExtensionReceiver != nil {
		call.Extension = b.GetValue(proxy.ExtensionReceiver)
	}
	call.TypeArgs = make([]bir.Type, len(proxy.TypeParameters))
	for i, tp := range proxy.TypeParameters {
		call.TypeArgs[i] = bir.ParamRef(tp)
	}
	call.Args = make([]bir.Expression, len(proxy.ValueParameters))
	for i, p := range proxy.ValueParameters {
		call.Args[i] = b.GetValue(p)
	}
	proxy.Body = b.Block(b.Return(call))

	return proxy
}
