package exec

import (
	"context"

	"github.com/zhukovaskychina/graphql-engine/graph/expr"
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// UnwindExec expands ListExpr, a list-valued expression evaluated per input
// row, into one output row per element — the planner's desugaring of an
// UNWIND clause. A non-list value (including null) unwinds to zero rows
// for that input row rather than failing the whole query.
type UnwindExec struct {
	BaseExecutor
	ListExpr expr.Expression
	As       string
	Funcs    *expr.FunctionRegistry
	Aggs     *expr.AggregateRegistry
}

func NewUnwindExec(child Operator, listExpr expr.Expression, as string, funcs *expr.FunctionRegistry, aggs *expr.AggregateRegistry) *UnwindExec {
	return &UnwindExec{BaseExecutor: NewBaseExecutor("Unwind", child), ListExpr: listExpr, As: as, Funcs: funcs, Aggs: aggs}
}

func (e *UnwindExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, e.Children()[0])
	if err != nil || !in.Success {
		if err == nil {
			err = in.Err
		}
		return value.Failed(err), err
	}
	ds := in.DataSet
	if ds == nil {
		ds = value.NewDataSet(nil)
	}
	outCols := append(append([]string(nil), ds.ColNames...), e.As)
	out := value.NewDataSet(outCols)
	evalCtx := expr.NewEvalContext(e.Funcs, e.Aggs)
	for _, row := range ds.Rows {
		bindRow(evalCtx, ds.ColNames, row)
		items, err := e.ListExpr.Eval(evalCtx).AsList()
		if err != nil {
			continue
		}
		for _, item := range items {
			outRow := append(append([]value.Value(nil), row...), item)
			_ = out.AppendRow(outRow)
		}
	}
	return value.OK(out), nil
}

// AssignExec binds Expr's per-row result to a new column, preserving every
// existing column — the planner's desugaring of a `WITH x AS y` style
// variable binding that does not otherwise reshape the row.
type AssignExec struct {
	BaseExecutor
	Expr  expr.Expression
	As    string
	Funcs *expr.FunctionRegistry
	Aggs  *expr.AggregateRegistry
}

func NewAssignExec(child Operator, e2 expr.Expression, as string, funcs *expr.FunctionRegistry, aggs *expr.AggregateRegistry) *AssignExec {
	return &AssignExec{BaseExecutor: NewBaseExecutor("Assign", child), Expr: e2, As: as, Funcs: funcs, Aggs: aggs}
}

func (e *AssignExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, e.Children()[0])
	if err != nil || !in.Success {
		if err == nil {
			err = in.Err
		}
		return value.Failed(err), err
	}
	ds := in.DataSet
	if ds == nil {
		ds = value.NewDataSet(nil)
	}
	outCols := append(append([]string(nil), ds.ColNames...), e.As)
	out := value.NewDataSet(outCols)
	evalCtx := expr.NewEvalContext(e.Funcs, e.Aggs)
	for _, row := range ds.Rows {
		bindRow(evalCtx, ds.ColNames, row)
		v := e.Expr.Eval(evalCtx)
		outRow := append(append([]value.Value(nil), row...), v)
		_ = out.AppendRow(outRow)
	}
	return value.OK(out), nil
}
