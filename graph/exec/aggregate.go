package exec

import (
	"context"

	"github.com/zhukovaskychina/graphql-engine/graph/expr"
	"github.com/zhukovaskychina/graphql-engine/graph/pool"
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// AggregateItem mirrors plan.AggregateItem.
type AggregateItem struct {
	Func  expr.AggregateKind
	Arg   expr.Expression
	Alias string
}

// AggregateExec groups input rows by GroupKeys and computes Items per
// group. The parallel path computes one partial AggregateState set per
// batch and merges them — AggregateState.Merge exists specifically for
// this scatter-gather shape.
type AggregateExec struct {
	BaseExecutor
	GroupKeys   []expr.Expression
	GroupCols   []string
	Items       []AggregateItem
	Funcs       *expr.FunctionRegistry
	Aggs        *expr.AggregateRegistry
	Pool        *pool.Pool
	ParallelCfg ParallelConfig
}

func NewAggregateExec(child Operator, groupCols []string, groupKeys []expr.Expression, items []AggregateItem, funcs *expr.FunctionRegistry, aggs *expr.AggregateRegistry, p *pool.Pool, pc ParallelConfig) *AggregateExec {
	return &AggregateExec{
		BaseExecutor: NewBaseExecutor("Aggregate", child),
		GroupKeys:    groupKeys,
		GroupCols:    groupCols,
		Items:        items,
		Funcs:        funcs,
		Aggs:         aggs,
		Pool:         p,
		ParallelCfg:  pc,
	}
}

type groupBucket struct {
	keyVals []value.Value
	states  []expr.AggregateState
}

func (e *AggregateExec) newStates() []expr.AggregateState {
	states := make([]expr.AggregateState, len(e.Items))
	for i, it := range e.Items {
		states[i] = expr.NewAggregateState(it.Func)
	}
	return states
}

func (e *AggregateExec) groupKey(vals []value.Value) string {
	key := ""
	for _, v := range vals {
		key += v.DedupKey() + "\x1f"
	}
	return key
}

// computeBatch runs the group-by over ds.Rows[start:end], returning a
// fresh groupBucket map local to this batch — the per-batch partial the
// parallel path later merges with the others.
func (e *AggregateExec) computeBatch(ds *value.DataSet, start, end int) map[string]*groupBucket {
	buckets := make(map[string]*groupBucket)
	evalCtx := expr.NewEvalContext(e.Funcs, e.Aggs)
	for i := start; i < end; i++ {
		row := ds.Rows[i]
		bindRow(evalCtx, ds.ColNames, row)

		keyVals := make([]value.Value, len(e.GroupKeys))
		for k, ke := range e.GroupKeys {
			keyVals[k] = ke.Eval(evalCtx)
		}
		key := e.groupKey(keyVals)

		b, ok := buckets[key]
		if !ok {
			b = &groupBucket{keyVals: keyVals, states: e.newStates()}
			buckets[key] = b
		}
		for j, it := range e.Items {
			b.states[j].Add(it.Arg.Eval(evalCtx))
		}
	}
	return buckets
}

func (e *AggregateExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, e.Children()[0])
	if err != nil || !in.Success {
		return in, err
	}
	ds := in.DataSet
	cols := append([]string(nil), e.GroupCols...)
	for _, it := range e.Items {
		cols = append(cols, it.Alias)
	}
	if ds == nil {
		ds = value.NewDataSet(nil)
	}

	n := len(ds.Rows)
	var merged map[string]*groupBucket

	if e.Pool != nil && e.ParallelCfg.shouldParallelize(n) {
		batchSize := e.ParallelCfg.batchSize(n)
		numBatches := pool.NumBatches(n, batchSize)
		partials := make([]map[string]*groupBucket, numBatches)
		_ = pool.ScatterGather(e.Pool, n, batchSize, func(start, end, idx int) {
			partials[idx] = e.computeBatch(ds, start, end)
		})
		merged = make(map[string]*groupBucket)
		for _, p := range partials {
			for key, b := range p {
				if existing, ok := merged[key]; ok {
					for j := range existing.states {
						existing.states[j].Merge(b.states[j])
					}
				} else {
					merged[key] = b
				}
			}
		}
	} else {
		merged = e.computeBatch(ds, 0, n)
	}

	// No GROUP BY and no input rows still produces one row of aggregate
	// identities (COUNT()=0, SUM()=0, ...), matching the null-skip
	// contract's "aggregate over zero rows is not a missing row".
	if len(merged) == 0 && len(e.GroupCols) == 0 {
		states := e.newStates()
		row := make([]value.Value, len(e.Items))
		for j, s := range states {
			row[j] = s.Result()
		}
		out := value.NewDataSet(cols)
		_ = out.AppendRow(row)
		return value.OK(out), nil
	}

	out := value.NewDataSet(cols)
	for _, b := range merged {
		row := make([]value.Value, 0, len(cols))
		row = append(row, b.keyVals...)
		for _, s := range b.states {
			row = append(row, s.Result())
		}
		_ = out.AppendRow(row)
	}
	return value.OK(out), nil
}

// HavingExec filters post-aggregate rows by Predicate — the same
// evaluation contract as FilterExec, kept distinct so the builder can
// enforce "Having only ever sits directly above an Aggregate" at wiring
// time if it chooses to.
type HavingExec struct {
	BaseExecutor
	Predicate expr.Expression
	Funcs     *expr.FunctionRegistry
	Aggs      *expr.AggregateRegistry
}

func NewHavingExec(child Operator, predicate expr.Expression, funcs *expr.FunctionRegistry, aggs *expr.AggregateRegistry) *HavingExec {
	return &HavingExec{BaseExecutor: NewBaseExecutor("Having", child), Predicate: predicate, Funcs: funcs, Aggs: aggs}
}

func (e *HavingExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, e.Children()[0])
	if err != nil || !in.Success {
		return in, err
	}
	ds := in.DataSet
	if ds == nil {
		return value.OK(value.NewDataSet(nil)), nil
	}
	out := value.NewDataSet(ds.ColNames)
	evalCtx := expr.NewEvalContext(e.Funcs, e.Aggs)
	for _, row := range ds.Rows {
		bindRow(evalCtx, ds.ColNames, row)
		if evalBool(e.Predicate, evalCtx) {
			_ = out.AppendRow(row)
		}
	}
	return value.OK(out), nil
}
