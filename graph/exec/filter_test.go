package exec

import (
	"context"
	"testing"

	"github.com/zhukovaskychina/graphql-engine/graph/expr"
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

func TestFilterExecKeepsMatchingRowsSerial(t *testing.T) {
	child := newFakeOperator("Scan", value.OK(dataSetOf([]string{"n"},
		[]value.Value{value.Int(1)},
		[]value.Value{value.Int(2)},
		[]value.Value{value.Int(3)},
	)))
	pred := &expr.Binary{Op: expr.OpGt, Left: &expr.Variable{Name: "n"}, Right: &expr.Literal{Val: value.Int(1)}}
	f := NewFilterExec(child, pred, expr.NewFunctionRegistry(), expr.NewAggregateRegistry(), nil, ParallelConfig{})

	res, err := f.Execute(context.Background())
	if err != nil || !res.Success {
		t.Fatalf("Execute failed: %v, %v", res, err)
	}
	if len(res.DataSet.Rows) != 2 {
		t.Fatalf("kept %d rows, want 2 (n > 1)", len(res.DataSet.Rows))
	}
}

func TestFilterExecNilDataSetYieldsEmptyResult(t *testing.T) {
	child := newFakeOperator("Scan", value.OK(nil))
	pred := &expr.Literal{Val: value.Bool(true)}
	f := NewFilterExec(child, pred, expr.NewFunctionRegistry(), expr.NewAggregateRegistry(), nil, ParallelConfig{})

	res, err := f.Execute(context.Background())
	if err != nil || !res.Success || len(res.DataSet.Rows) != 0 {
		t.Fatalf("Execute on a nil input DataSet should yield an empty success result, got %v, %v", res, err)
	}
}

func TestFilterExecPropagatesChildFailure(t *testing.T) {
	child := newFakeOperator("Scan", value.Failed(value.ErrTypeMismatch))
	f := NewFilterExec(child, &expr.Literal{Val: value.Bool(true)}, expr.NewFunctionRegistry(), expr.NewAggregateRegistry(), nil, ParallelConfig{})

	res, err := f.Execute(context.Background())
	if res.Success {
		t.Fatal("a failed child result should propagate as failure, not succeed")
	}
	_ = err
}
