package exec

import (
	"context"

	"github.com/zhukovaskychina/graphql-engine/graph/expr"
	"github.com/zhukovaskychina/graphql-engine/graph/pool"
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// FilterExec evaluates Predicate against every input row, keeping only the
// rows where it evaluates to true. Row-independent, so the parallel path
// splits rows into batches and evaluates each batch's predicate on its own
// EvalContext clone — identical per-row logic as the serial path, just
// scattered across the worker pool.
type FilterExec struct {
	BaseExecutor
	Predicate   expr.Expression
	Funcs       *expr.FunctionRegistry
	Aggs        *expr.AggregateRegistry
	Pool        *pool.Pool
	ParallelCfg ParallelConfig
}

func NewFilterExec(child Operator, predicate expr.Expression, funcs *expr.FunctionRegistry, aggs *expr.AggregateRegistry, p *pool.Pool, pc ParallelConfig) *FilterExec {
	return &FilterExec{
		BaseExecutor: NewBaseExecutor("Filter", child),
		Predicate:    predicate,
		Funcs:        funcs,
		Aggs:         aggs,
		Pool:         p,
		ParallelCfg:  pc,
	}
}

func (f *FilterExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, f.Children()[0])
	if err != nil || !in.Success {
		return in, err
	}
	ds := in.DataSet
	if ds == nil {
		return value.OK(value.NewDataSet(nil)), nil
	}

	keepFlags := make([]bool, len(ds.Rows))

	eval := func(start, end int) {
		evalCtx := expr.NewEvalContext(f.Funcs, f.Aggs)
		for i := start; i < end; i++ {
			bindRow(evalCtx, ds.ColNames, ds.Rows[i])
			keepFlags[i] = evalBool(f.Predicate, evalCtx)
		}
	}

	n := len(ds.Rows)
	if f.Pool != nil && f.ParallelCfg.shouldParallelize(n) {
		_ = pool.ScatterGather(f.Pool, n, f.ParallelCfg.batchSize(n), func(start, end, _ int) { eval(start, end) })
	} else {
		eval(0, n)
	}

	out := value.NewDataSet(ds.ColNames)
	for i, row := range ds.Rows {
		if keepFlags[i] {
			_ = out.AppendRow(row)
		}
	}
	return value.OK(out), nil
}
