package exec

import (
	"context"

	"github.com/zhukovaskychina/graphql-engine/graph/expr"
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// joinColumns concatenates both sides' schemas, the shared shape every
// join-family operator below produces.
func joinColumns(left, right []string) []string {
	return append(append([]string(nil), left...), right...)
}

func joinRow(left, right []value.Value) []value.Value {
	row := make([]value.Value, 0, len(left)+len(right))
	row = append(row, left...)
	row = append(row, right...)
	return row
}

// InnerJoinExec combines left/right rows where On evaluates true, with
// both sides' columns bound simultaneously — a nested-loop join, the
// fallback every join shape reduces to when no equi-join key is found.
type InnerJoinExec struct {
	BaseExecutor
	On    expr.Expression
	Funcs *expr.FunctionRegistry
	Aggs  *expr.AggregateRegistry
}

func NewInnerJoinExec(left, right Operator, on expr.Expression, funcs *expr.FunctionRegistry, aggs *expr.AggregateRegistry) *InnerJoinExec {
	return &InnerJoinExec{BaseExecutor: NewBaseExecutor("InnerJoin", left, right), On: on, Funcs: funcs, Aggs: aggs}
}

func (e *InnerJoinExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	l, r, err := executeBothSides(ctx, e.Children())
	if err != nil {
		return value.Failed(err), err
	}
	cols := joinColumns(l.ColNames, r.ColNames)
	out := value.NewDataSet(cols)
	evalCtx := expr.NewEvalContext(e.Funcs, e.Aggs)
	for _, lr := range l.Rows {
		for _, rr := range r.Rows {
			row := joinRow(lr, rr)
			bindRow(evalCtx, cols, row)
			if evalBool(e.On, evalCtx) {
				_ = out.AppendRow(row)
			}
		}
	}
	return value.OK(out), nil
}

// LeftJoinExec keeps every left row, padding unmatched right columns with
// null.
type LeftJoinExec struct {
	BaseExecutor
	On    expr.Expression
	Funcs *expr.FunctionRegistry
	Aggs  *expr.AggregateRegistry
}

func NewLeftJoinExec(left, right Operator, on expr.Expression, funcs *expr.FunctionRegistry, aggs *expr.AggregateRegistry) *LeftJoinExec {
	return &LeftJoinExec{BaseExecutor: NewBaseExecutor("LeftJoin", left, right), On: on, Funcs: funcs, Aggs: aggs}
}

func (e *LeftJoinExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	l, r, err := executeBothSides(ctx, e.Children())
	if err != nil {
		return value.Failed(err), err
	}
	cols := joinColumns(l.ColNames, r.ColNames)
	out := value.NewDataSet(cols)
	evalCtx := expr.NewEvalContext(e.Funcs, e.Aggs)
	nullRight := make([]value.Value, len(r.ColNames))
	for i := range nullRight {
		nullRight[i] = value.Null()
	}
	for _, lr := range l.Rows {
		matched := false
		for _, rr := range r.Rows {
			row := joinRow(lr, rr)
			bindRow(evalCtx, cols, row)
			if evalBool(e.On, evalCtx) {
				_ = out.AppendRow(row)
				matched = true
			}
		}
		if !matched {
			_ = out.AppendRow(joinRow(lr, nullRight))
		}
	}
	return value.OK(out), nil
}

// HashJoinExec is InnerJoin specialized to equi-join keys, built by the
// rewrite engine's join-strategy rule — buckets the smaller (right) side
// by LeftKey/RightKey rather than scanning it per left row.
type HashJoinExec struct {
	BaseExecutor
	LeftKey, RightKey expr.Expression
	Funcs             *expr.FunctionRegistry
	Aggs              *expr.AggregateRegistry
}

func NewHashJoinExec(left, right Operator, leftKey, rightKey expr.Expression, funcs *expr.FunctionRegistry, aggs *expr.AggregateRegistry) *HashJoinExec {
	return &HashJoinExec{BaseExecutor: NewBaseExecutor("HashJoin", left, right), LeftKey: leftKey, RightKey: rightKey, Funcs: funcs, Aggs: aggs}
}

func (e *HashJoinExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	l, r, err := executeBothSides(ctx, e.Children())
	if err != nil {
		return value.Failed(err), err
	}
	cols := joinColumns(l.ColNames, r.ColNames)
	out := value.NewDataSet(cols)

	buckets := make(map[string][][]value.Value)
	rightCtx := expr.NewEvalContext(e.Funcs, e.Aggs)
	for _, rr := range r.Rows {
		bindRow(rightCtx, r.ColNames, rr)
		key := e.RightKey.Eval(rightCtx).DedupKey()
		buckets[key] = append(buckets[key], rr)
	}

	leftCtx := expr.NewEvalContext(e.Funcs, e.Aggs)
	for _, lr := range l.Rows {
		bindRow(leftCtx, l.ColNames, lr)
		key := e.LeftKey.Eval(leftCtx).DedupKey()
		for _, rr := range buckets[key] {
			_ = out.AppendRow(joinRow(lr, rr))
		}
	}
	return value.OK(out), nil
}

// CrossJoinExec pairs every left row with every right row, no condition.
type CrossJoinExec struct{ BaseExecutor }

func NewCrossJoinExec(left, right Operator) *CrossJoinExec {
	return &CrossJoinExec{BaseExecutor: NewBaseExecutor("CrossJoin", left, right)}
}

func (e *CrossJoinExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	l, r, err := executeBothSides(ctx, e.Children())
	if err != nil {
		return value.Failed(err), err
	}
	out := value.NewDataSet(joinColumns(l.ColNames, r.ColNames))
	for _, lr := range l.Rows {
		for _, rr := range r.Rows {
			_ = out.AppendRow(joinRow(lr, rr))
		}
	}
	return value.OK(out), nil
}

// BiJoinExec joins two traversal frontiers on shared vertex ids — the
// shape bidirectional shortest-path planning collapses two independent
// Traverse subplans into.
type BiJoinExec struct {
	BaseExecutor
	LeftVertexCol, RightVertexCol string
}

func NewBiJoinExec(left, right Operator, leftVertexCol, rightVertexCol string) *BiJoinExec {
	return &BiJoinExec{BaseExecutor: NewBaseExecutor("BiJoin", left, right), LeftVertexCol: leftVertexCol, RightVertexCol: rightVertexCol}
}

func (e *BiJoinExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	l, r, err := executeBothSides(ctx, e.Children())
	if err != nil {
		return value.Failed(err), err
	}
	out := value.NewDataSet(joinColumns(l.ColNames, r.ColNames))
	lci, rci := l.ColIndex(e.LeftVertexCol), r.ColIndex(e.RightVertexCol)
	if lci < 0 || rci < 0 {
		return value.OK(out), nil
	}
	rightByID := make(map[string][][]value.Value)
	for _, rr := range r.Rows {
		if id, ok := vertexID(rr[rci]); ok {
			rightByID[id] = append(rightByID[id], rr)
		}
	}
	for _, lr := range l.Rows {
		id, ok := vertexID(lr[lci])
		if !ok {
			continue
		}
		for _, rr := range rightByID[id] {
			_ = out.AppendRow(joinRow(lr, rr))
		}
	}
	return value.OK(out), nil
}

func executeBothSides(ctx context.Context, children []Operator) (*value.DataSet, *value.DataSet, error) {
	left, err := ExecuteChild(ctx, children[0])
	if err != nil || !left.Success {
		if err == nil {
			err = left.Err
		}
		return nil, nil, err
	}
	right, err := ExecuteChild(ctx, children[1])
	if err != nil || !right.Success {
		if err == nil {
			err = right.Err
		}
		return nil, nil, err
	}
	l, r := left.DataSet, right.DataSet
	if l == nil {
		l = value.NewDataSet(nil)
	}
	if r == nil {
		r = value.NewDataSet(nil)
	}
	return l, r, nil
}
