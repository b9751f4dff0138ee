package bir

// Structural deep-copy helpers. Lowerings that synthesize declarations from
// existing ones must not alias parameter or type-parameter nodes: the source
// declaration stays live and both copies may be mutated independently.

// CopyAnnotations returns an independent copy of the annotation list.
func CopyAnnotations(list []*Annotation) []*Annotation {
	if list == nil {
		return nil
	}
	out := make([]*Annotation, len(list))
	for i, a := range list {
		na := &Annotation{Name: a.Name}
		if a.Values != nil {
			na.Values = make(map[string]string, len(a.Values))
			for k, v := range a.Values {
				na.Values[k] = v
			}
		}
		out[i] = na
	}
	return out
}

// CopyTypeParameters copies a type-parameter list and returns the mapping
// from source parameters to their copies, used to remap type references.
func CopyTypeParameters(list []*TypeParameter) ([]*TypeParameter, map[*TypeParameter]*TypeParameter) {
	if len(list) == 0 {
		return nil, nil
	}
	out := make([]*TypeParameter, len(list))
	remap := make(map[*TypeParameter]*TypeParameter, len(list))
	for i, tp := range list {
		ntp := &TypeParameter{
			ID:    generateNodeID(),
			Name:  tp.Name,
			Index: tp.Index,
			Span:  tp.Span,
		}
		remap[tp] = ntp
		out[i] = ntp
	}
	// Bounds may reference sibling type parameters, so remap after all
	// copies exist.
	for i, tp := range list {
		if len(tp.Bounds) == 0 {
			continue
		}
		bounds := make([]Type, len(tp.Bounds))
		for j, b := range tp.Bounds {
			bounds[j] = RemapType(b, remap)
		}
		out[i].Bounds = bounds
	}
	return out, remap
}

// RemapType rewrites type-parameter references in t according to remap.
// Types referencing parameters absent from the map are returned unchanged.
func RemapType(t Type, remap map[*TypeParameter]*TypeParameter) Type {
	if t.Param != nil {
		if ntp, ok := remap[t.Param]; ok {
			t.Param = ntp
		}
	}
	if len(t.Args) > 0 {
		args := make([]Type, len(t.Args))
		for i, a := range t.Args {
			args[i] = RemapType(a, remap)
		}
		t.Args = args
	}
	return t
}

// CopyParameter copies a parameter, remapping type-parameter references.
// Default-value expressions are not carried over; callers that need default
// forwarding synthesize their own bridges.
func CopyParameter(p *Parameter, remap map[*TypeParameter]*TypeParameter) *Parameter {
	if p == nil {
		return nil
	}
	return &Parameter{
		ID:    generateNodeID(),
		Name:  p.Name,
		Type:  RemapType(p.Type, remap),
		Index: p.Index,
		Span:  p.Span,
	}
}

// CopySignature returns a bodiless structural copy of fn bound to a fresh
// symbol: same name, flags, return type, annotations, receivers and value
// parameters, with type parameters copied structurally and every type
// reference remapped onto the copies.
func CopySignature(fn *Function) *Function {
	cp := NewFunction(fn.Name, fn.ReturnType)
	cp.Origin = fn.Origin
	cp.Visibility = fn.Visibility
	cp.Modality = fn.Modality
	cp.External = fn.External
	cp.Suspend = fn.Suspend
	cp.Static = fn.Static
	cp.Span = fn.Span
	cp.Annotations = CopyAnnotations(fn.Annotations)
	cp.CorrespondingProperty = fn.CorrespondingProperty

	var remap map[*TypeParameter]*TypeParameter
	cp.TypeParameters, remap = CopyTypeParameters(fn.TypeParameters)
	cp.ReturnType = RemapType(fn.ReturnType, remap)
	cp.DispatchReceiver = CopyParameter(fn.DispatchReceiver, remap)
	cp.ExtensionReceiver = CopyParameter(fn.ExtensionReceiver, remap)
	if len(fn.ValueParameters) > 0 {
		cp.ValueParameters = make([]*Parameter, len(fn.ValueParameters))
		for i, p := range fn.ValueParameters {
			cp.ValueParameters[i] = CopyParameter(p, remap)
		}
	}
	return cp
}
