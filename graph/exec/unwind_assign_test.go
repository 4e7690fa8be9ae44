package exec

import (
	"context"
	"testing"

	"github.com/zhukovaskychina/graphql-engine/graph/expr"
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

func TestUnwindExecExpandsListPerRow(t *testing.T) {
	child := newFakeOperator("Src", value.OK(dataSetOf([]string{"items"},
		[]value.Value{value.List([]value.Value{value.Int(1), value.Int(2)})},
		[]value.Value{value.List([]value.Value{value.Int(3)})},
	)))
	u := NewUnwindExec(child, &expr.Variable{Name: "items"}, "item", expr.NewFunctionRegistry(), expr.NewAggregateRegistry())

	res, err := u.Execute(context.Background())
	if err != nil || !res.Success {
		t.Fatalf("Execute failed: %v, %v", res, err)
	}
	if len(res.DataSet.Rows) != 3 {
		t.Fatalf("unwound row count = %d, want 3", len(res.DataSet.Rows))
	}
	if res.DataSet.ColNames[len(res.DataSet.ColNames)-1] != "item" {
		t.Fatal("Unwind should append the As column at the end")
	}
}

func TestUnwindExecNonListRowYieldsNoRows(t *testing.T) {
	child := newFakeOperator("Src", value.OK(dataSetOf([]string{"items"}, []value.Value{value.Int(5)})))
	u := NewUnwindExec(child, &expr.Variable{Name: "items"}, "item", expr.NewFunctionRegistry(), expr.NewAggregateRegistry())

	res, err := u.Execute(context.Background())
	if err != nil || !res.Success {
		t.Fatalf("Execute failed: %v, %v", res, err)
	}
	if len(res.DataSet.Rows) != 0 {
		t.Fatalf("a non-list row should unwind to zero rows, got %d", len(res.DataSet.Rows))
	}
}

func TestAssignExecAppendsComputedColumn(t *testing.T) {
	child := newFakeOperator("Src", value.OK(dataSetOf([]string{"a"}, []value.Value{value.Int(2)})))
	e := &expr.Binary{Op: expr.OpMul, Left: &expr.Variable{Name: "a"}, Right: &expr.Literal{Val: value.Int(10)}}
	a := NewAssignExec(child, e, "b", expr.NewFunctionRegistry(), expr.NewAggregateRegistry())

	res, err := a.Execute(context.Background())
	if err != nil || !res.Success {
		t.Fatalf("Execute failed: %v, %v", res, err)
	}
	got, _ := res.DataSet.Get(0, "b").AsInt()
	if got != 20 {
		t.Fatalf("assigned column b = %d, want 20", got)
	}
}
