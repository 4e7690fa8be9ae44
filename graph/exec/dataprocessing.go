package exec

import (
	"context"

	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// UnionExec concatenates rows from every input; the planner guarantees
// matching column schemas, so the first input's schema is authoritative.
type UnionExec struct{ BaseExecutor }

func NewUnionExec(children ...Operator) *UnionExec {
	return &UnionExec{BaseExecutor: NewBaseExecutor("Union", children...)}
}

func (e *UnionExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	var cols []string
	out := value.NewDataSet(nil)
	for _, child := range e.Children() {
		res, err := ExecuteChild(ctx, child)
		if err != nil || !res.Success {
			if err == nil {
				err = res.Err
			}
			return value.Failed(err), err
		}
		if res.DataSet == nil {
			continue
		}
		if cols == nil {
			cols = res.DataSet.ColNames
			out.ColNames = cols
		}
		out.Rows = append(out.Rows, res.DataSet.Rows...)
	}
	return value.OK(out), nil
}

// UnionAllVersionedExec is Union without a trailing Dedup — the rewrite
// engine introduces this shape only once it has proven every branch is
// already individually deduplicated and disjoint, so its executor is
// UnionExec under another name (the distinction matters to the rewrite
// engine, not to execution).
type UnionAllVersionedExec struct{ *UnionExec }

func NewUnionAllVersionedExec(children ...Operator) *UnionAllVersionedExec {
	u := NewUnionExec(children...)
	u.BaseExecutor = NewBaseExecutor("UnionAllVersioned", children...)
	return &UnionAllVersionedExec{UnionExec: u}
}

// IntersectExec keeps only rows present in every input, compared by full-
// row dedup key.
type IntersectExec struct{ BaseExecutor }

func NewIntersectExec(children ...Operator) *IntersectExec {
	return &IntersectExec{BaseExecutor: NewBaseExecutor("Intersect", children...)}
}

func (e *IntersectExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	children := e.Children()
	if len(children) == 0 {
		return value.OK(value.NewDataSet(nil)), nil
	}
	sets := make([]map[string][]value.Value, len(children))
	var cols []string
	for i, child := range children {
		res, err := ExecuteChild(ctx, child)
		if err != nil || !res.Success {
			if err == nil {
				err = res.Err
			}
			return value.Failed(err), err
		}
		ds := res.DataSet
		if ds == nil {
			ds = value.NewDataSet(nil)
		}
		if i == 0 {
			cols = ds.ColNames
		}
		set := make(map[string][]value.Value, len(ds.Rows))
		for _, row := range ds.Rows {
			set[fullRowKey(row)] = row
		}
		sets[i] = set
	}
	out := value.NewDataSet(cols)
	for key, row := range sets[0] {
		inAll := true
		for _, set := range sets[1:] {
			if _, ok := set[key]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			_ = out.AppendRow(row)
		}
	}
	return value.OK(out), nil
}

// MinusExec keeps rows present in the left input but absent from the
// right, compared by full-row dedup key.
type MinusExec struct{ BaseExecutor }

func NewMinusExec(left, right Operator) *MinusExec {
	return &MinusExec{BaseExecutor: NewBaseExecutor("Minus", left, right)}
}

func (e *MinusExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	l, r, err := executeBothSides(ctx, e.Children())
	if err != nil {
		return value.Failed(err), err
	}
	exclude := make(map[string]struct{}, len(r.Rows))
	for _, row := range r.Rows {
		exclude[fullRowKey(row)] = struct{}{}
	}
	out := value.NewDataSet(l.ColNames)
	for _, row := range l.Rows {
		if _, ok := exclude[fullRowKey(row)]; !ok {
			_ = out.AppendRow(row)
		}
	}
	return value.OK(out), nil
}

// DistinctExec is Dedup's full-row strategy expressed as its own node kind
// — the shape the planner emits directly for a DISTINCT clause.
type DistinctExec struct{ *DedupExec }

func NewDistinctExec(child Operator) *DistinctExec {
	return &DistinctExec{DedupExec: &DedupExec{BaseExecutor: NewBaseExecutor("Distinct", child), Strategy: DedupFull}}
}

// DataCollectExec gathers every row from its inputs into a single list-
// valued column — the terminal shape a subquery plan produces before
// being spliced back into its parent as an Argument.
type DataCollectExec struct {
	BaseExecutor
	CollectVar string
}

func NewDataCollectExec(collectVar string, children ...Operator) *DataCollectExec {
	return &DataCollectExec{BaseExecutor: NewBaseExecutor("DataCollect", children...), CollectVar: collectVar}
}

func (e *DataCollectExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	var items []value.Value
	for _, child := range e.Children() {
		res, err := ExecuteChild(ctx, child)
		if err != nil || !res.Success {
			if err == nil {
				err = res.Err
			}
			return value.Failed(err), err
		}
		if res.DataSet == nil {
			continue
		}
		for _, row := range res.DataSet.Rows {
			if len(row) == 1 {
				items = append(items, row[0])
			} else {
				items = append(items, value.List(append([]value.Value(nil), row...)))
			}
		}
	}
	out := value.NewDataSet([]string{e.CollectVar})
	_ = out.AppendRow([]value.Value{value.List(items)})
	return value.OK(out), nil
}
