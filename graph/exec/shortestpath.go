package exec

import (
	"context"

	"github.com/zhukovaskychina/graphql-engine/graph/pool"
	"github.com/zhukovaskychina/graphql-engine/graph/storage"
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// bfsStep is one queue entry: the path accumulated so far to reach Vertex.
type bfsStep struct {
	vertexID string
	path     *value.Path
}

// singleSourceBFS runs an unweighted breadth-first search from fromID,
// stopping the first time it reaches toID (or MaxHop is exhausted). It is
// the primitive BFSShortestExec and MultiShortestPathExec both build on, so
// their path-length and visited-set semantics never drift apart;
// ShortestPathExec uses bidirectionalBFS instead.
func singleSourceBFS(ctx context.Context, store storage.Collaborator, fromID, toID string, edgeTypes []string, maxHop int) (*value.Path, error) {
	if fromID == toID {
		return &value.Path{Vertices: []*value.Vertex{{ID: fromID}}}, nil
	}
	visited := map[string]bool{fromID: true}
	queue := []bfsStep{{vertexID: fromID, path: &value.Path{Vertices: []*value.Vertex{{ID: fromID}}}}}

	for hop := 0; hop < maxHop && len(queue) > 0; hop++ {
		var next []bfsStep
		for _, step := range queue {
			edges, err := store.GetNeighbors(ctx, step.vertexID, edgeTypes, false)
			if err != nil {
				return nil, err
			}
			for _, ed := range edges {
				if visited[ed.Dst] {
					continue
				}
				visited[ed.Dst] = true
				p := step.path.Append(ed, &value.Vertex{ID: ed.Dst})
				if ed.Dst == toID {
					return p, nil
				}
				next = append(next, bfsStep{vertexID: ed.Dst, path: p})
			}
		}
		queue = next
	}
	return nil, nil // unreachable within maxHop — caller treats nil as "no path"
}

// BFSShortestExec finds the shortest (fewest-hop) path between each input
// row's FromCol/ToCol vertex binding via single-direction BFS.
type BFSShortestExec struct {
	BaseExecutor
	FromCol, ToCol string
	EdgeTypes      []string
	MaxHop         int
	Store          storage.Collaborator
}

func NewBFSShortestExec(child Operator, fromCol, toCol string, edgeTypes []string, maxHop int, store storage.Collaborator) *BFSShortestExec {
	return &BFSShortestExec{BaseExecutor: NewBaseExecutor("BFSShortest", child), FromCol: fromCol, ToCol: toCol, EdgeTypes: edgeTypes, MaxHop: maxHop, Store: store}
}

func (e *BFSShortestExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, e.Children()[0])
	if err != nil || !in.Success {
		return in, err
	}
	ds := in.DataSet
	out := value.NewDataSet([]string{"_path"})
	if ds == nil {
		return value.OK(out), nil
	}
	fci, tci := ds.ColIndex(e.FromCol), ds.ColIndex(e.ToCol)
	if fci < 0 || tci < 0 {
		return value.OK(out), nil
	}
	for _, row := range ds.Rows {
		fromID, ok1 := vertexID(row[fci])
		toID, ok2 := vertexID(row[tci])
		if !ok1 || !ok2 {
			continue
		}
		p, err := singleSourceBFS(ctx, e.Store, fromID, toID, e.EdgeTypes, e.MaxHop)
		if err != nil {
			return value.Failed(err), err
		}
		if p != nil {
			_ = out.AppendRow([]value.Value{value.PathVal(p)})
		}
	}
	return value.OK(out), nil
}

// ShortestPathExec finds a shortest path via bidirectional BFS: expanding
// alternately from both endpoints halves the frontier size a single-
// direction search would visit. Falls back to returning no path if the two
// frontiers never meet within MaxHop.
type ShortestPathExec struct {
	BaseExecutor
	FromCol, ToCol string
	EdgeTypes      []string
	MaxHop         int
	Store          storage.Collaborator
}

func NewShortestPathExec(child Operator, fromCol, toCol string, edgeTypes []string, maxHop int, store storage.Collaborator) *ShortestPathExec {
	return &ShortestPathExec{BaseExecutor: NewBaseExecutor("ShortestPath", child), FromCol: fromCol, ToCol: toCol, EdgeTypes: edgeTypes, MaxHop: maxHop, Store: store}
}

func bidirectionalBFS(ctx context.Context, store storage.Collaborator, fromID, toID string, edgeTypes []string, maxHop int) (*value.Path, error) {
	if fromID == toID {
		return &value.Path{Vertices: []*value.Vertex{{ID: fromID}}}, nil
	}
	fVisited := map[string]*value.Path{fromID: {Vertices: []*value.Vertex{{ID: fromID}}}}
	bVisited := map[string]*value.Path{toID: {Vertices: []*value.Vertex{{ID: toID}}}}
	fFrontier := []string{fromID}
	bFrontier := []string{toID}

	for hop := 0; hop < maxHop; hop++ {
		// Expand the smaller frontier first, the standard bidirectional-BFS
		// balancing heuristic.
		if len(fFrontier) <= len(bFrontier) {
			next, meet := expandFrontier(ctx, store, fFrontier, fVisited, bVisited, edgeTypes, false)
			if meet != "" {
				return stitchPaths(fVisited[meet], bVisited[meet]), nil
			}
			fFrontier = next
		} else {
			next, meet := expandFrontier(ctx, store, bFrontier, bVisited, fVisited, edgeTypes, true)
			if meet != "" {
				return stitchPaths(fVisited[meet], bVisited[meet]), nil
			}
			bFrontier = next
		}
		if len(fFrontier) == 0 || len(bFrontier) == 0 {
			break
		}
	}
	return nil, nil
}

func expandFrontier(ctx context.Context, store storage.Collaborator, frontier []string, visited, otherVisited map[string]*value.Path, edgeTypes []string, reverse bool) ([]string, string) {
	var next []string
	for _, id := range frontier {
		edges, err := store.GetNeighbors(ctx, id, edgeTypes, reverse)
		if err != nil {
			return next, ""
		}
		for _, ed := range edges {
			if _, ok := visited[ed.Dst]; ok {
				continue
			}
			p := visited[id].Append(ed, &value.Vertex{ID: ed.Dst})
			visited[ed.Dst] = p
			if _, ok := otherVisited[ed.Dst]; ok {
				return next, ed.Dst
			}
			next = append(next, ed.Dst)
		}
	}
	return next, ""
}

// stitchPaths joins a forward-search path (src..meet) with a backward-
// search path (dst..meet), both rooted at meet, into one src->dst path.
func stitchPaths(forward, backward *value.Path) *value.Path {
	vs := append([]*value.Vertex(nil), forward.Vertices...)
	es := append([]*value.Edge(nil), forward.Edges...)
	for i := len(backward.Edges) - 1; i >= 0; i-- {
		es = append(es, backward.Edges[i].Reversed())
		vs = append(vs, backward.Vertices[i])
	}
	return &value.Path{Vertices: vs, Edges: es}
}

func (e *ShortestPathExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, e.Children()[0])
	if err != nil || !in.Success {
		return in, err
	}
	ds := in.DataSet
	out := value.NewDataSet([]string{"_path"})
	if ds == nil {
		return value.OK(out), nil
	}
	fci, tci := ds.ColIndex(e.FromCol), ds.ColIndex(e.ToCol)
	if fci < 0 || tci < 0 {
		return value.OK(out), nil
	}
	for _, row := range ds.Rows {
		fromID, ok1 := vertexID(row[fci])
		toID, ok2 := vertexID(row[tci])
		if !ok1 || !ok2 {
			continue
		}
		p, err := bidirectionalBFS(ctx, e.Store, fromID, toID, e.EdgeTypes, e.MaxHop)
		if err != nil {
			return value.Failed(err), err
		}
		if p != nil {
			_ = out.AppendRow([]value.Value{value.PathVal(p)})
		}
	}
	return value.OK(out), nil
}

// AllPathsExec enumerates every simple path between two vertices up to
// MaxHop via depth-first search, tracking the visited set per branch (not
// globally) so two divergent branches can still both pass through an
// unrelated vertex.
type AllPathsExec struct {
	BaseExecutor
	FromCol, ToCol string
	EdgeTypes      []string
	MaxHop         int
	Store          storage.Collaborator
	Safety         *SafetyValidator
}

func NewAllPathsExec(child Operator, fromCol, toCol string, edgeTypes []string, maxHop int, store storage.Collaborator, safety *SafetyValidator) *AllPathsExec {
	return &AllPathsExec{BaseExecutor: NewBaseExecutor("AllPaths", child), FromCol: fromCol, ToCol: toCol, EdgeTypes: edgeTypes, MaxHop: maxHop, Store: store, Safety: safety}
}

func (e *AllPathsExec) dfs(ctx context.Context, current *value.Path, toID string, visited map[string]bool, depth int, out *value.DataSet) error {
	if e.Safety != nil {
		if err := e.Safety.CheckExpandDepth(depth); err != nil {
			return err
		}
	}
	if depth >= e.MaxHop {
		return nil
	}
	curID := current.Vertices[len(current.Vertices)-1].ID
	edges, err := e.Store.GetNeighbors(ctx, curID, e.EdgeTypes, false)
	if err != nil {
		return err
	}
	for _, ed := range edges {
		if visited[ed.Dst] {
			continue
		}
		next := current.Append(ed, &value.Vertex{ID: ed.Dst})
		if ed.Dst == toID {
			_ = out.AppendRow([]value.Value{value.PathVal(next)})
			continue
		}
		visited[ed.Dst] = true
		if err := e.dfs(ctx, next, toID, visited, depth+1, out); err != nil {
			delete(visited, ed.Dst)
			return err
		}
		delete(visited, ed.Dst)
	}
	return nil
}

func (e *AllPathsExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, e.Children()[0])
	if err != nil || !in.Success {
		return in, err
	}
	ds := in.DataSet
	out := value.NewDataSet([]string{"_path"})
	if ds == nil {
		return value.OK(out), nil
	}
	fci, tci := ds.ColIndex(e.FromCol), ds.ColIndex(e.ToCol)
	if fci < 0 || tci < 0 {
		return value.OK(out), nil
	}
	for _, row := range ds.Rows {
		fromID, ok1 := vertexID(row[fci])
		toID, ok2 := vertexID(row[tci])
		if !ok1 || !ok2 {
			continue
		}
		start := &value.Path{Vertices: []*value.Vertex{{ID: fromID}}}
		if err := e.dfs(ctx, start, toID, map[string]bool{fromID: true}, 0, out); err != nil {
			return value.Failed(err), err
		}
	}
	return value.OK(out), nil
}

// MultiShortestPathExec finds a shortest path for every (from, to) pair
// bound by the input rows' FromCol/ToCol columns. Every pair yields at most
// one path, the first one the BFS reaches; Execute does not read
// SingleShortest, so setting it to false does not enumerate equal-length
// ties.
type MultiShortestPathExec struct {
	BaseExecutor
	FromCol, ToCol string
	EdgeTypes      []string
	MaxHop         int
	SingleShortest bool
	Store          storage.Collaborator
	Pool           *pool.Pool
	ParallelCfg    ParallelConfig
}

func (e *MultiShortestPathExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, e.Children()[0])
	if err != nil || !in.Success {
		return in, err
	}
	ds := in.DataSet
	out := value.NewDataSet([]string{"_path"})
	if ds == nil {
		return value.OK(out), nil
	}
	fci, tci := ds.ColIndex(e.FromCol), ds.ColIndex(e.ToCol)
	if fci < 0 || tci < 0 {
		return value.OK(out), nil
	}

	n := len(ds.Rows)
	paths := make([]*value.Path, n)
	var firstErr error

	run := func(start, end int) {
		for i := start; i < end; i++ {
			fromID, ok1 := vertexID(ds.Rows[i][fci])
			toID, ok2 := vertexID(ds.Rows[i][tci])
			if !ok1 || !ok2 {
				continue
			}
			p, err := singleSourceBFS(ctx, e.Store, fromID, toID, e.EdgeTypes, e.MaxHop)
			if err != nil && firstErr == nil {
				firstErr = err
			}
			paths[i] = p
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

	for _, p := range paths {
		if p != nil {
			_ = out.AppendRow([]value.Value{value.PathVal(p)})
		}
	}
	return value.OK(out), nil
}

func NewMultiShortestPathExec(child Operator, fromCol, toCol string, edgeTypes []string, maxHop int, singleShortest bool, store storage.Collaborator, p *pool.Pool, pc ParallelConfig) *MultiShortestPathExec {
	return &MultiShortestPathExec{
		BaseExecutor: NewBaseExecutor("MultiShortestPath", child),
		FromCol:      fromCol, ToCol: toCol, EdgeTypes: edgeTypes, MaxHop: maxHop, SingleShortest: singleShortest,
		Store: store, Pool: p, ParallelCfg: pc,
	}
}
