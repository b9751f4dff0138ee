package bir

import "testing"

func TestCopySignature_NoAliasing(t *testing.T) {
	fn := NewFunction("send", Type{Name: "aster.Int"})
	fn.SetDispatchReceiver(Type{Name: "Mailer"})
	fn.AddValueParameter("to", Type{Name: "aster.String"})
	fn.AddValueParameter("retries", Type{Name: "aster.Int"})
	fn.Annotations = []*Annotation{{Name: "aster.platform.StaticCall"}}

	cp := CopySignature(fn)

	if cp.Symbol == fn.Symbol {
		t.Error("copy must be bound to a fresh symbol")
	}
	if cp.Symbol.Owner() != cp {
		t.Error("fresh symbol must be bound to the copy")
	}
	if cp.Name != fn.Name || !cp.ReturnType.Equals(fn.ReturnType) {
		t.Errorf("signature mismatch: got %s: %v", cp.Name, cp.ReturnType)
	}
	if cp.DispatchReceiver == fn.DispatchReceiver {
		t.Error("receiver parameter must be copied")
	}
	if len(cp.ValueParameters) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(cp.ValueParameters))
	}
	for i := range cp.ValueParameters {
		if cp.ValueParameters[i] == fn.ValueParameters[i] {
			t.Errorf("parameter %d is aliased", i)
		}
		if cp.ValueParameters[i].Name != fn.ValueParameters[i].Name {
			t.Errorf("parameter %d name mismatch", i)
		}
	}
	if cp.Annotations[0] == fn.Annotations[0] {
		t.Error("annotations must be copied")
	}
}

func TestCopyTypeParameters_RemapsReferences(t *testing.T) {
	a := &TypeParameter{Name: "A", Index: 0}
	b := &TypeParameter{Name: "B", Index: 1, Bounds: []Type{ParamRef(a)}}

	copies, remap := CopyTypeParameters([]*TypeParameter{a, b})
	if len(copies) != 2 {
		t.Fatalf("expected 2 copies, got %d", len(copies))
	}
	if copies[0] == a || copies[1] == b {
		t.Error("type parameters must be fresh nodes")
	}
	if copies[1].Bounds[0].Param != copies[0] {
		t.Error("bounds referencing sibling parameters must be remapped onto the copies")
	}
	if got := RemapType(ParamRef(a), remap); got.Param != copies[0] {
		t.Errorf("RemapType returned %v, want reference to copy of A", got)
	}
}

func TestCopySignature_RemapsParameterTypes(t *testing.T) {
	tp := &TypeParameter{Name: "T", Index: 0}
	fn := NewFunction("id", ParamRef(tp))
	fn.TypeParameters = []*TypeParameter{tp}
	fn.AddValueParameter("value", ParamRef(tp))

	cp := CopySignature(fn)
	if cp.ReturnType.Param != cp.TypeParameters[0] {
		t.Error("return type must reference the copied type parameter")
	}
	if cp.ValueParameters[0].Type.Param != cp.TypeParameters[0] {
		t.Error("parameter type must reference the copied type parameter")
	}
}
