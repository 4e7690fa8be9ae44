package exec

import (
	"context"
	"errors"
	"testing"

	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

func TestSelectBranchExecResolvesTrue(t *testing.T) {
	ifOp := newFakeOperator("If", value.OK(dataSetOf([]string{"x"}, []value.Value{value.Int(1)})))
	elseOp := newFakeOperator("Else", value.OK(dataSetOf([]string{"x"}, []value.Value{value.Int(2)})))
	sb := NewSelectBranchExec(ifOp, elseOp, "cond", func(ctx context.Context, name string) (bool, error) {
		return true, nil
	})

	res, err := sb.Execute(context.Background())
	if err != nil || !res.Success {
		t.Fatalf("Execute failed: %v, %v", res, err)
	}
	got, _ := res.DataSet.Rows[0][0].AsInt()
	if got != 1 {
		t.Fatalf("a true condition should take the If branch, got %d", got)
	}
}

func TestSelectBranchExecResolvesFalse(t *testing.T) {
	ifOp := newFakeOperator("If", value.OK(dataSetOf([]string{"x"}, []value.Value{value.Int(1)})))
	elseOp := newFakeOperator("Else", value.OK(dataSetOf([]string{"x"}, []value.Value{value.Int(2)})))
	sb := NewSelectBranchExec(ifOp, elseOp, "cond", func(ctx context.Context, name string) (bool, error) {
		return false, nil
	})

	res, err := sb.Execute(context.Background())
	if err != nil || !res.Success {
		t.Fatalf("Execute failed: %v, %v", res, err)
	}
	got, _ := res.DataSet.Rows[0][0].AsInt()
	if got != 2 {
		t.Fatalf("a false condition should take the Else branch, got %d", got)
	}
}

func TestSelectBranchExecResolveErrorFails(t *testing.T) {
	ifOp := newFakeOperator("If", value.OK(value.NewDataSet(nil)))
	elseOp := newFakeOperator("Else", value.OK(value.NewDataSet(nil)))
	wantErr := errors.New("resolve failed")
	sb := NewSelectBranchExec(ifOp, elseOp, "cond", func(ctx context.Context, name string) (bool, error) {
		return false, wantErr
	})

	res, err := sb.Execute(context.Background())
	if err != wantErr || res.Success {
		t.Fatalf("a Resolve error should fail the branch, got %v, %v", res, err)
	}
}

func TestLoopExecStopsWhenConditionFalse(t *testing.T) {
	calls := 0
	body := &countingLoopBody{max: 3, colName: "more"}
	loop := NewLoopExec(body, "more", nil)

	res, err := loop.Execute(context.Background())
	if err != nil || !res.Success {
		t.Fatalf("Execute failed: %v, %v", res, err)
	}
	calls = body.calls
	if calls != 3 {
		t.Fatalf("loop body ran %d times, want 3 (stops once condition column is false)", calls)
	}
}

func TestLoopExecSafetyBoundsIterations(t *testing.T) {
	body := &countingLoopBody{max: 1000, colName: "more"}
	safety := &SafetyValidator{MaxLoopIterations: 5}
	loop := NewLoopExec(body, "more", safety)

	_, err := loop.Execute(context.Background())
	if err == nil {
		t.Fatal("a loop that never stops on its own should be cut off by SafetyValidator")
	}
}

// countingLoopBody returns a true "more" column for every call up to max,
// then false — simulating a loop body whose own output drives the
// continuation condition.
type countingLoopBody struct {
	BaseExecutor
	max     int
	colName string
	calls   int
}

func (c *countingLoopBody) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	c.calls++
	cont := c.calls < c.max
	ds := dataSetOf([]string{c.colName}, []value.Value{value.Bool(cont)})
	return value.OK(ds), nil
}
