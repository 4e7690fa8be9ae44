package exec

import (
	"context"
	"sync"

	"github.com/zhukovaskychina/graphql-engine/graph/expr"
	"github.com/zhukovaskychina/graphql-engine/graph/pool"
	"github.com/zhukovaskychina/graphql-engine/graph/storage"
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// TraverseExec walks MinHop..MaxHop edges outward from each input row's
// SrcCol binding, operating on paths rather than raw edges: each step
// extends every live path by one hop and sorts the result into either
// next_paths (still below MaxHop) or completed_paths. Batches the input
// frontier and (when the row count clears ParallelCfg.MinParallelSize)
// fans each batch out to the worker pool. EdgeFilter/VertexFilter/
// GeneralFilter apply per-candidate in both the serial and the parallel
// path identically — this is a load-bearing property, not an
// implementation detail: a filter must reject exactly the same candidates
// regardless of which path ran it.
type TraverseExec struct {
	BaseExecutor
	SrcCol        string
	EdgeTypes     []string
	Reverse       bool
	MinHop        int
	MaxHop        int
	EdgeFilter    expr.Expression
	VertexFilter  expr.Expression
	GeneralFilter expr.Expression
	// GeneratePath selects the result envelope: true returns every
	// completed path (ResultPaths), false returns the deduplicated
	// vertices those paths visit (ResultVertices).
	GeneratePath bool

	Store       storage.Collaborator
	Funcs       *expr.FunctionRegistry
	Aggs        *expr.AggregateRegistry
	Pool        *pool.Pool
	ParallelCfg ParallelConfig
	Safety      *SafetyValidator
}

func NewTraverseExec(child Operator, srcCol string, edgeTypes []string, reverse bool, minHop, maxHop int,
	edgeFilter, vertexFilter, generalFilter expr.Expression,
	store storage.Collaborator, funcs *expr.FunctionRegistry, aggs *expr.AggregateRegistry,
	p *pool.Pool, pc ParallelConfig, safety *SafetyValidator) *TraverseExec {
	return &TraverseExec{
		BaseExecutor: NewBaseExecutor("Traverse", child),
		SrcCol:       srcCol, EdgeTypes: edgeTypes, Reverse: reverse, MinHop: minHop, MaxHop: maxHop,
		EdgeFilter: edgeFilter, VertexFilter: vertexFilter, GeneralFilter: generalFilter,
		GeneratePath: true,
		Store:        store, Funcs: funcs, Aggs: aggs, Pool: p, ParallelCfg: pc, Safety: safety,
	}
}

// candidatePasses applies every configured filter to one candidate step,
// identically whichever path (serial or parallel) calls it. depth is the
// 1-based hop this candidate would land at; the vertex filter only
// applies at depth 1, the spec's "step 0" seed check.
func (e *TraverseExec) candidatePasses(ctx context.Context, ed *value.Edge, srcVertex *value.Vertex, depth int, evalCtx *expr.EvalContext) (*value.Vertex, bool) {
	dstVertices, err := e.Store.GetVertices(ctx, []string{ed.Dst})
	if err != nil || len(dstVertices) == 0 {
		return nil, false
	}
	dst := dstVertices[0]

	evalCtx.Bind("edge", value.EdgeVal(ed))
	evalCtx.Bind("src", value.VertexVal(srcVertex))
	evalCtx.Bind("dst", value.VertexVal(dst))
	evalCtx.Bind("vertex", value.VertexVal(dst))

	if depth == 1 && e.VertexFilter != nil && !evalBool(e.VertexFilter, evalCtx) {
		return nil, false
	}
	if e.EdgeFilter != nil && !evalBool(e.EdgeFilter, evalCtx) {
		return nil, false
	}
	if e.GeneralFilter != nil && !evalBool(e.GeneralFilter, evalCtx) {
		return nil, false
	}
	return dst, true
}

// walkOne expands a single seed path out to e.MaxHop, returning every
// completed path with between MinHop and MaxHop steps. This is the single
// code path both the serial and parallel callers use per seed — this is
// what keeps their filter semantics identical.
func (e *TraverseExec) walkOne(ctx context.Context, seed *value.Path, evalCtx *expr.EvalContext) ([]*value.Path, error) {
	var completed []*value.Path
	currentPaths := []*value.Path{seed}

	for depth := 1; depth <= e.MaxHop && len(currentPaths) > 0; depth++ {
		if e.Safety != nil {
			if err := e.Safety.CheckExpandDepth(depth); err != nil {
				return completed, err
			}
		}
		var nextPaths []*value.Path
		for _, p := range currentPaths {
			srcVertex := p.Vertices[len(p.Vertices)-1]
			edges, err := e.Store.GetNeighbors(ctx, srcVertex.ID, e.EdgeTypes, e.Reverse)
			if err != nil {
				return completed, err
			}
			for _, ed := range edges {
				dst, ok := e.candidatePasses(ctx, ed, srcVertex, depth, evalCtx)
				if !ok {
					continue
				}
				extended := p.Append(ed, dst)
				if depth < e.MaxHop {
					nextPaths = append(nextPaths, extended)
				}
				if depth >= e.MinHop {
					completed = append(completed, extended)
				}
			}
		}
		currentPaths = nextPaths
	}
	return completed, nil
}

func (e *TraverseExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, e.Children()[0])
	if err != nil || !in.Success {
		return in, err
	}
	ds := in.DataSet
	if ds == nil {
		return traverseResult(e.GeneratePath, nil), nil
	}
	ci := ds.ColIndex(e.SrcCol)
	if ci < 0 {
		return traverseResult(e.GeneratePath, nil), nil
	}

	n := len(ds.Rows)
	results := make([][]*value.Path, n)
	var mu sync.Mutex
	var firstErr error

	run := func(start, end int) {
		evalCtx := expr.NewEvalContext(e.Funcs, e.Aggs)
		for i := start; i < end; i++ {
			srcID, ok := vertexID(ds.Rows[i][ci])
			if !ok {
				continue
			}
			seed := &value.Path{Vertices: []*value.Vertex{{ID: srcID}}}
			paths, err := e.walkOne(ctx, seed, evalCtx)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
			results[i] = paths
		}
	}

	if e.Pool != nil && e.ParallelCfg.shouldParallelize(n) {
		_ = pool.ScatterGather(e.Pool, n, e.ParallelCfg.batchSize(n), func(start, end, _ int) { run(start, end) })
	} else {
		run(0, n)
	}
	if firstErr != nil {
		return value.Failed(firstErr), firstErr
	}

	var paths []*value.Path
	for _, ps := range results {
		paths = append(paths, ps...)
	}
	return traverseResult(e.GeneratePath, paths), nil
}

// traverseResult builds the Paths or Vertices envelope scenario 1 (and
// spec.md §4.6's generate_path flag) requires, in place of a synthetic
// single-column DataSet.
func traverseResult(generatePath bool, paths []*value.Path) *value.ExecutionResult {
	if generatePath {
		return &value.ExecutionResult{Kind: value.ResultPaths, Paths: paths, Count: int64(len(paths)), Success: true}
	}
	verts := dedupPathVertices(paths)
	return &value.ExecutionResult{Kind: value.ResultVertices, Vertices: verts, Count: int64(len(verts)), Success: true}
}

// dedupPathVertices collects every vertex visited by paths, in first-seen
// order, deduplicated by id.
func dedupPathVertices(paths []*value.Path) []*value.Vertex {
	seen := make(map[string]bool)
	var out []*value.Vertex
	for _, p := range paths {
		for _, v := range p.Vertices {
			if seen[v.ID] {
				continue
			}
			seen[v.ID] = true
			out = append(out, v)
		}
	}
	return out
}
