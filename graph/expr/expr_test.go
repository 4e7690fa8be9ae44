package expr

import (
	"testing"

	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

func newCtx() *EvalContext {
	return NewEvalContext(NewFunctionRegistry(), NewAggregateRegistry())
}

func TestVariableLookupUnbound(t *testing.T) {
	ctx := newCtx()
	v := &Variable{Name: "missing"}
	if !v.Eval(ctx).IsNull() {
		t.Fatal("an unbound Variable should evaluate to Null")
	}
}

func TestVariableLookupBound(t *testing.T) {
	ctx := newCtx()
	ctx.Bind("x", value.Int(5))
	v := &Variable{Name: "x"}
	got, err := v.Eval(ctx).AsInt()
	if err != nil || got != 5 {
		t.Fatalf("Variable(x).Eval = %v, %v, want 5, nil", got, err)
	}
}

func TestBinaryComparison(t *testing.T) {
	ctx := newCtx()
	b := &Binary{Op: OpLt, Left: &Literal{Val: value.Int(1)}, Right: &Literal{Val: value.Int(2)}}
	got, err := b.Eval(ctx).AsBool()
	if err != nil || !got {
		t.Fatalf("1 < 2 = %v, %v, want true, nil", got, err)
	}
}

func TestBinaryComparisonNullPropagates(t *testing.T) {
	ctx := newCtx()
	b := &Binary{Op: OpLt, Left: &Literal{Val: value.Null()}, Right: &Literal{Val: value.Int(2)}}
	if !b.Eval(ctx).IsNull() {
		t.Fatal("comparison against a Null operand should evaluate to Null")
	}
}

func TestUnaryIsNull(t *testing.T) {
	ctx := newCtx()
	u := &Unary{Op: OpIsNull, Operand: &Literal{Val: value.Null()}}
	got, _ := u.Eval(ctx).AsBool()
	if !got {
		t.Fatal("IS NULL on a Null literal should be true")
	}
}

func TestCloneIsolatesBindings(t *testing.T) {
	ctx := newCtx()
	ctx.Bind("x", value.Int(1))
	clone := ctx.Clone()
	clone.Bind("x", value.Int(2))
	if got, _ := ctx.Lookup("x").AsInt(); got != 1 {
		t.Fatalf("binding into a clone mutated the source context: got %d, want 1", got)
	}
}

func TestPropertyReadsVertexTag(t *testing.T) {
	v := &value.Vertex{ID: "v1", Tags: []value.TagInstance{
		{Tag: "person", Props: map[string]value.Value{"name": value.String("alice")}},
	}}
	ctx := newCtx()
	p := &Property{Base: &Literal{Val: value.VertexVal(v)}, Tag: "person", Key: "name"}
	got, err := p.Eval(ctx).AsString()
	if err != nil || got != "alice" {
		t.Fatalf("Property(person.name) = %v, %v, want alice, nil", got, err)
	}
}

func TestPropertyOnNonGraphValueFoldsToBadType(t *testing.T) {
	ctx := newCtx()
	p := &Property{Base: &Literal{Val: value.Int(1)}, Tag: "t", Key: "k"}
	r := p.Eval(ctx)
	if r.Kind() != value.KNull || r.NullVariant() != value.NullBadType {
		t.Fatalf("Property on a scalar base = %v, want NullOf(NullBadType)", r)
	}
}
