package exec

import (
	"context"

	"github.com/zhukovaskychina/graphql-engine/graph/storage"
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// ScanVerticesExec is a leaf operator reading every vertex (optionally
// restricted to a tag) through the storage collaborator.
type ScanVerticesExec struct {
	BaseExecutor
	TagFilter string
	Store     storage.Collaborator
}

func NewScanVerticesExec(tagFilter string, store storage.Collaborator) *ScanVerticesExec {
	return &ScanVerticesExec{BaseExecutor: NewBaseExecutor("ScanVertices"), TagFilter: tagFilter, Store: store}
}

func (e *ScanVerticesExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	vs, err := e.Store.ScanVertices(ctx, storage.VertexFilter{Tag: e.TagFilter})
	if err != nil {
		return value.Failed(err), err
	}
	out := value.NewDataSet([]string{"_scan"})
	for _, v := range vs {
		_ = out.AppendRow([]value.Value{value.VertexVal(v)})
	}
	return value.OK(out), nil
}

// ScanEdgesExec is a leaf operator reading every edge (optionally
// restricted to a type).
type ScanEdgesExec struct {
	BaseExecutor
	TypeFilter string
	Store      storage.Collaborator
}

func NewScanEdgesExec(typeFilter string, store storage.Collaborator) *ScanEdgesExec {
	return &ScanEdgesExec{BaseExecutor: NewBaseExecutor("ScanEdges"), TypeFilter: typeFilter, Store: store}
}

func (e *ScanEdgesExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	es, err := e.Store.ScanEdges(ctx, storage.EdgeFilter{Type: e.TypeFilter})
	if err != nil {
		return value.Failed(err), err
	}
	out := value.NewDataSet([]string{"_scan"})
	for _, ed := range es {
		_ = out.AppendRow([]value.Value{value.EdgeVal(ed)})
	}
	return value.OK(out), nil
}

// GetVerticesExec is a leaf operator fetching vertices by an explicit id
// list — a missing id is simply absent from the result, not an error.
type GetVerticesExec struct {
	BaseExecutor
	IDs   []string
	Store storage.Collaborator
}

func NewGetVerticesExec(ids []string, store storage.Collaborator) *GetVerticesExec {
	return &GetVerticesExec{BaseExecutor: NewBaseExecutor("GetVertices"), IDs: ids, Store: store}
}

func (e *GetVerticesExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	vs, err := e.Store.GetVertices(ctx, e.IDs)
	if err != nil {
		return value.Failed(err), err
	}
	out := value.NewDataSet([]string{"_get"})
	for _, v := range vs {
		_ = out.AppendRow([]value.Value{value.VertexVal(v)})
	}
	return value.OK(out), nil
}

// GetEdgesExec is a leaf operator fetching edges by exact key.
type GetEdgesExec struct {
	BaseExecutor
	Keys  []storage.EdgeKey
	Store storage.Collaborator
}

func NewGetEdgesExec(keys []storage.EdgeKey, store storage.Collaborator) *GetEdgesExec {
	return &GetEdgesExec{BaseExecutor: NewBaseExecutor("GetEdges"), Keys: keys, Store: store}
}

func (e *GetEdgesExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	es, err := e.Store.GetEdges(ctx, e.Keys)
	if err != nil {
		return value.Failed(err), err
	}
	out := value.NewDataSet([]string{"_get"})
	for _, ed := range es {
		_ = out.AppendRow([]value.Value{value.EdgeVal(ed)})
	}
	return value.OK(out), nil
}

// GetNeighborsExec fetches each input row's source vertex's immediate
// neighbors over a single hop — the single-row-at-a-time primitive
// TraverseExec generalizes to multiple hops.
type GetNeighborsExec struct {
	BaseExecutor
	SrcCol    string
	EdgeTypes []string
	Reverse   bool
	Store     storage.Collaborator
}

func NewGetNeighborsExec(child Operator, srcCol string, edgeTypes []string, reverse bool, store storage.Collaborator) *GetNeighborsExec {
	return &GetNeighborsExec{BaseExecutor: NewBaseExecutor("GetNeighbors", child), SrcCol: srcCol, EdgeTypes: edgeTypes, Reverse: reverse, Store: store}
}

func (e *GetNeighborsExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, e.Children()[0])
	if err != nil || !in.Success {
		return in, err
	}
	ds := in.DataSet
	out := value.NewDataSet([]string{"_neighbor"})
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
		neighbors, err := e.Store.GetNeighbors(ctx, srcID, e.EdgeTypes, e.Reverse)
		if err != nil {
			return value.Failed(err), err
		}
		for _, ed := range neighbors {
			_ = out.AppendRow([]value.Value{value.EdgeVal(ed)})
		}
	}
	return value.OK(out), nil
}

// vertexID extracts an id string from a Value that is either a Vertex or a
// plain String (a bound literal id, the common Argument-node case).
func vertexID(v value.Value) (string, bool) {
	if vtx, err := v.AsVertex(); err == nil {
		return vtx.ID, true
	}
	if s, err := v.AsString(); err == nil {
		return s, true
	}
	return "", false
}

// ArgumentExec is a leaf operator resolving a bound parameter list from the
// storage collaborator's GetInput hook.
type ArgumentExec struct {
	BaseExecutor
	ArgName string
	OutCol  string
	Store   storage.Collaborator
}

func NewArgumentExec(argName, outCol string, store storage.Collaborator) *ArgumentExec {
	return &ArgumentExec{BaseExecutor: NewBaseExecutor("Argument"), ArgName: argName, OutCol: outCol, Store: store}
}

func (e *ArgumentExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	vals, err := e.Store.GetInput(ctx, e.ArgName)
	if err != nil {
		return value.Failed(err), err
	}
	out := value.NewDataSet([]string{e.OutCol})
	for _, v := range vals {
		_ = out.AppendRow([]value.Value{v})
	}
	return value.OK(out), nil
}
