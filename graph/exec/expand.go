package exec

import (
	"context"

	"github.com/zhukovaskychina/graphql-engine/graph/expr"
	"github.com/zhukovaskychina/graphql-engine/graph/storage"
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// ExpandExec is single-hop Traverse with an edge filter — kept as its own
// operator (rather than reusing TraverseExec with MinHop=MaxHop=1) so the
// common single-hop case skips the multi-hop frontier bookkeeping.
type ExpandExec struct {
	BaseExecutor
	SrcCol     string
	EdgeTypes  []string
	Reverse    bool
	EdgeFilter expr.Expression
	Store      storage.Collaborator
	Funcs      *expr.FunctionRegistry
	Aggs       *expr.AggregateRegistry
}

func NewExpandExec(child Operator, srcCol string, edgeTypes []string, reverse bool, edgeFilter expr.Expression, store storage.Collaborator, funcs *expr.FunctionRegistry, aggs *expr.AggregateRegistry) *ExpandExec {
	return &ExpandExec{BaseExecutor: NewBaseExecutor("Expand", child), SrcCol: srcCol, EdgeTypes: edgeTypes, Reverse: reverse, EdgeFilter: edgeFilter, Store: store, Funcs: funcs, Aggs: aggs}
}

func (e *ExpandExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, e.Children()[0])
	if err != nil || !in.Success {
		return in, err
	}
	ds := in.DataSet
	out := value.NewDataSet([]string{"_expand"})
	if ds == nil {
		return value.OK(out), nil
	}
	ci := ds.ColIndex(e.SrcCol)
	if ci < 0 {
		return value.OK(out), nil
	}
	evalCtx := expr.NewEvalContext(e.Funcs, e.Aggs)
	for _, row := range ds.Rows {
		srcID, ok := vertexID(row[ci])
		if !ok {
			continue
		}
		edges, err := e.Store.GetNeighbors(ctx, srcID, e.EdgeTypes, e.Reverse)
		if err != nil {
			return value.Failed(err), err
		}
		for _, ed := range edges {
			evalCtx.Bind("edge", value.EdgeVal(ed))
			if e.EdgeFilter != nil && !evalBool(e.EdgeFilter, evalCtx) {
				continue
			}
			_ = out.AppendRow([]value.Value{value.EdgeVal(ed)})
		}
	}
	return value.OK(out), nil
}

// ExpandAllExec expands every edge type with no filter; it is built from a
// plan ExpandAll node.
type ExpandAllExec struct {
	BaseExecutor
	SrcCol  string
	Reverse bool
	Store   storage.Collaborator
}

func NewExpandAllExec(child Operator, srcCol string, reverse bool, store storage.Collaborator) *ExpandAllExec {
	return &ExpandAllExec{BaseExecutor: NewBaseExecutor("ExpandAll", child), SrcCol: srcCol, Reverse: reverse, Store: store}
}

func (e *ExpandAllExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, e.Children()[0])
	if err != nil || !in.Success {
		return in, err
	}
	ds := in.DataSet
	out := value.NewDataSet([]string{"_expand"})
	if ds == nil {
		return value.OK(out), nil
	}
	ci := ds.ColIndex(e.SrcCol)
	if ci < 0 {
		return value.OK(out), nil
	}
	for _, row := range ds.Rows {
		srcID, ok := vertexID(row[ci])
		if !ok {
			continue
		}
		edges, err := e.Store.GetNeighbors(ctx, srcID, nil, e.Reverse)
		if err != nil {
			return value.Failed(err), err
		}
		for _, ed := range edges {
			_ = out.AppendRow([]value.Value{value.EdgeVal(ed)})
		}
	}
	return value.OK(out), nil
}

// AppendVerticesExec resolves the destination vertex of each edge a
// traversal produced, appending it as a new trailing "_dst" column.
type AppendVerticesExec struct {
	BaseExecutor
	EdgeCol string
	Store   storage.Collaborator
}

func NewAppendVerticesExec(child Operator, edgeCol string, store storage.Collaborator) *AppendVerticesExec {
	return &AppendVerticesExec{BaseExecutor: NewBaseExecutor("AppendVertices", child), EdgeCol: edgeCol, Store: store}
}

func (e *AppendVerticesExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, e.Children()[0])
	if err != nil || !in.Success {
		return in, err
	}
	ds := in.DataSet
	if ds == nil {
		return value.OK(value.NewDataSet(nil)), nil
	}
	ci := ds.ColIndex(e.EdgeCol)
	if ci < 0 {
		return value.OK(ds.Clone()), nil
	}

	dstIDs := make([]string, 0, len(ds.Rows))
	seen := make(map[string]struct{})
	for _, row := range ds.Rows {
		if ed, err := row[ci].AsEdge(); err == nil {
			if _, ok := seen[ed.Dst]; !ok {
				seen[ed.Dst] = struct{}{}
				dstIDs = append(dstIDs, ed.Dst)
			}
		}
	}
	vs, err := e.Store.GetVertices(ctx, dstIDs)
	if err != nil {
		return value.Failed(err), err
	}
	byID := make(map[string]*value.Vertex, len(vs))
	for _, v := range vs {
		byID[v.ID] = v
	}

	cols := append(append([]string(nil), ds.ColNames...), "_dst")
	out := value.NewDataSet(cols)
	for _, row := range ds.Rows {
		var dstVal value.Value
		if ed, err := row[ci].AsEdge(); err == nil {
			if v, ok := byID[ed.Dst]; ok {
				dstVal = value.VertexVal(v)
			} else {
				dstVal = value.Null()
			}
		} else {
			dstVal = value.Null()
		}
		newRow := append(append([]value.Value(nil), row...), dstVal)
		_ = out.AppendRow(newRow)
	}
	return value.OK(out), nil
}
