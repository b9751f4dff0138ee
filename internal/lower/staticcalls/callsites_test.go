package staticcalls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aster-lang/aster/internal/bir"
	"github.com/aster-lang/aster/internal/position"
)

// callSingleton appends `Logger.tag()` in pre-lowering shape to a fresh
// caller function and returns both.
func callSingleton(logger *bir.Class, tag *bir.Function) (*bir.Function, *bir.Call) {
	main := bir.NewFunction("main", bir.UnitType)
	main.Static = true
	b := bir.At(main.Span)
	call := b.Call(tag.Symbol)
	call.Dispatch = b.GetStaticField(logger.InstanceField)
	main.Body = b.Block(call)
	return main, call
}

func TestCallSiteRewrite_PreservesReceiverEffects(t *testing.T) {
	unit, logger, tag := newSingletonUnit(t)
	main, call := callSingleton(logger, tag)
	originalDispatch := call.Dispatch
	unit.AddDecl(main)

	ctx := NewBackendContext(unit)
	require.NoError(t, NewTransformer(ctx, unit).Lower())

	// The call is replaced one-for-one by a block: first the discarded
	// receiver evaluation, then the receiver-less call.
	block, ok := main.Body.Exprs[0].(*bir.Block)
	require.True(t, ok, "rewritten call should be a block, got %T", main.Body.Exprs[0])
	require.Len(t, block.Exprs, 2)

	discard, ok := block.Exprs[0].(*bir.TypeOperator)
	require.True(t, ok)
	assert.Equal(t, bir.OpImplicitCoerceToUnit, discard.Op)
	assert.True(t, discard.Target.IsUnit())
	assert.Same(t, originalDispatch, discard.Operand,
		"the original receiver expression must be evaluated, not a copy")

	rewritten, ok := block.Exprs[1].(*bir.Call)
	require.True(t, ok)
	assert.Nil(t, rewritten.Dispatch)
	assert.Same(t, tag.Symbol, rewritten.Target)
	assert.Equal(t, call.RetType, rewritten.RetType)
	assert.True(t, block.Type().Equals(call.RetType),
		"the block must yield the original call's value")
}

func TestCallSiteRewrite_ArgumentsAndTypeArgumentsCarriedOver(t *testing.T) {
	unit, logger, tag := newSingletonUnit(t)
	tp := &bir.TypeParameter{Name: "T", Index: 0}
	tag.TypeParameters = []*bir.TypeParameter{tp}
	tag.AddValueParameter("level", intType)

	main, call := callSingleton(logger, tag)
	b := bir.At(main.Span)
	arg := b.IntConst(3)
	call.Args = []bir.Expression{arg}
	call.TypeArgs = []bir.Type{intType}
	unit.AddDecl(main)

	ctx := NewBackendContext(unit)
	require.NoError(t, NewTransformer(ctx, unit).Lower())

	block := main.Body.Exprs[0].(*bir.Block)
	rewritten := block.Exprs[1].(*bir.Call)
	require.Len(t, rewritten.Args, 1)
	assert.Same(t, arg, rewritten.Args[0], "value arguments are carried over unchanged")
	require.Len(t, rewritten.TypeArgs, 1)
	assert.True(t, rewritten.TypeArgs[0].Equals(intType))
}

func TestCallSiteRewrite_Idempotent(t *testing.T) {
	unit, logger, tag := newSingletonUnit(t)
	main, _ := callSingleton(logger, tag)
	unit.AddDecl(main)

	ctx := NewBackendContext(unit)
	require.NoError(t, NewTransformer(ctx, unit).Lower())
	once := main.Body.Exprs[0]

	// A second pass must not wrap the block again.
	require.NoError(t, NewTransformer(ctx, unit).Lower())
	assert.Same(t, once, main.Body.Exprs[0])
	block := once.(*bir.Block)
	assert.Len(t, block.Exprs, 2)
	assert.IsType(t, &bir.Call{}, block.Exprs[1])
}

func TestCallSiteRewrite_ForeignTargetCloned(t *testing.T) {
	// The singleton lives in a unit that is NOT part of this run.
	_, logger, tag := newSingletonUnit(t)

	unit := bir.NewModule("app")
	main, _ := callSingleton(logger, tag)
	second, _ := callSingleton(logger, tag)
	second.Name = "other"
	unit.AddDecl(main)
	unit.AddDecl(second)

	ctx := NewBackendContext(unit)
	require.NoError(t, NewTransformer(ctx, unit).Lower())

	// The finalized foreign declaration is untouched.
	assert.NotNil(t, tag.DispatchReceiver)
	assert.False(t, tag.Static)

	block := main.Body.Exprs[0].(*bir.Block)
	rewritten := block.Exprs[1].(*bir.Call)
	stub := rewritten.Target.Owner()
	require.NotNil(t, stub)
	assert.NotSame(t, tag, stub)
	assert.NotSame(t, tag.Symbol, rewritten.Target)
	assert.Equal(t, bir.OriginForeignStub, stub.Origin)
	assert.Nil(t, stub.DispatchReceiver)
	assert.True(t, stub.Static)
	assert.Equal(t, tag.Name, stub.Name)
	assert.Same(t, tag.DeclParent(), stub.DeclParent(), "parent linkage is copied")
	assert.Equal(t, len(tag.ValueParameters), len(stub.ValueParameters))

	// Known inefficiency, kept: each occurrence gets its own copy.
	otherStub := second.Body.Exprs[0].(*bir.Block).Exprs[1].(*bir.Call).Target.Owner()
	assert.NotSame(t, stub, otherStub)
}

func TestCallSiteRewrite_ForeignTargetWithoutReceiverIsFatal(t *testing.T) {
	foreign := bir.NewModule("lib")
	logger := bir.NewClass("Logger", bir.KindObject)
	tag := bir.NewFunction("tag", bir.UnitType)
	tag.Annotations = []*bir.Annotation{{Name: StaticCallAnnotation}}
	logger.AddMember(tag)
	foreign.AddDecl(logger)

	unit := bir.NewModule("app")
	main := bir.NewFunction("main", bir.UnitType)
	main.Static = true
	b := bir.At(position.Point("app.aster", 4, 3))
	call := b.Call(tag.Symbol)
	// Inconsistent input: an instance argument for a receiver-less target.
	call.Dispatch = b.GetStaticField(logger.InstanceField)
	main.Body = b.Block(call)
	unit.AddDecl(main)

	ctx := NewBackendContext(unit)
	err := NewTransformer(ctx, unit).Lower()
	require.Error(t, err)
	var internal *InternalError
	require.ErrorAs(t, err, &internal)
	assert.Contains(t, internal.Error(), "app.aster:4:3", "the fault should name the offending call site")
}

func TestReceiverCountInvariantHoldsAfterLowering(t *testing.T) {
	unit, logger, tag := newSingletonUnit(t)
	main, _ := callSingleton(logger, tag)
	second, _ := callSingleton(logger, tag)
	second.Name = "other"
	unit.AddDecl(main)
	unit.AddDecl(second)

	ctx := NewBackendContext(unit)
	require.NoError(t, NewTransformer(ctx, unit).Lower())

	for _, fn := range unit.Functions() {
		if ownerOf(fn).Kind == OwnerSingleton && isEligible(fn) {
			assert.Nil(t, fn.DispatchReceiver, "%s keeps an instance parameter", fn.Name)
		}
		if fn.Body == nil {
			continue
		}
		bir.WalkExpr(fn.Body, func(e bir.Expression) {
			call, ok := e.(*bir.Call)
			if !ok {
				return
			}
			target := call.Target.Owner()
			if target != nil && ownerOf(target).Kind == OwnerSingleton && isEligible(target) {
				assert.Nil(t, call.Dispatch, "call to %s still supplies an instance argument", target.Name)
			}
		})
	}
}
