package exec

import (
	"context"

	"github.com/zhukovaskychina/graphql-engine/graph/expr"
	"github.com/zhukovaskychina/graphql-engine/graph/pool"
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// ProjectExec rebuilds each input row's column set by evaluating Items in
// order against the input row's bindings.
type ProjectExec struct {
	BaseExecutor
	Items       []ProjectItem
	Funcs       *expr.FunctionRegistry
	Aggs        *expr.AggregateRegistry
	Pool        *pool.Pool
	ParallelCfg ParallelConfig
}

// ProjectItem mirrors plan.ProjectItem so the operator files need not
// import graph/plan; only builder.go imports it and does the translation
// at wiring time.
type ProjectItem struct {
	Expr  expr.Expression
	Alias string
}

func NewProjectExec(child Operator, items []ProjectItem, funcs *expr.FunctionRegistry, aggs *expr.AggregateRegistry, p *pool.Pool, pc ParallelConfig) *ProjectExec {
	return &ProjectExec{BaseExecutor: NewBaseExecutor("Project", child), Items: items, Funcs: funcs, Aggs: aggs, Pool: p, ParallelCfg: pc}
}

func (e *ProjectExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, e.Children()[0])
	if err != nil || !in.Success {
		return in, err
	}
	ds := in.DataSet
	if ds == nil {
		return value.OK(value.NewDataSet(nil)), nil
	}

	cols := make([]string, len(e.Items))
	for i, it := range e.Items {
		cols[i] = it.Alias
	}

	n := len(ds.Rows)
	projected := make([][]value.Value, n)

	project := func(start, end int) {
		evalCtx := expr.NewEvalContext(e.Funcs, e.Aggs)
		for i := start; i < end; i++ {
			bindRow(evalCtx, ds.ColNames, ds.Rows[i])
			row := make([]value.Value, len(e.Items))
			for j, it := range e.Items {
				row[j] = it.Expr.Eval(evalCtx)
			}
			projected[i] = row
		}
	}

	if e.Pool != nil && e.ParallelCfg.shouldParallelize(n) {
		_ = pool.ScatterGather(e.Pool, n, e.ParallelCfg.batchSize(n), func(start, end, _ int) { project(start, end) })
	} else {
		project(0, n)
	}

	out := value.NewDataSet(cols)
	for _, row := range projected {
		_ = out.AppendRow(row)
	}
	return value.OK(out), nil
}
