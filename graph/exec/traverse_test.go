package exec

import (
	"context"
	"testing"

	"github.com/zhukovaskychina/graphql-engine/graph/expr"
	"github.com/zhukovaskychina/graphql-engine/graph/pool"
	"github.com/zhukovaskychina/graphql-engine/graph/storage"
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// fakeGraphStore is a minimal storage.Collaborator backed by an in-memory
// adjacency list, enough to exercise TraverseExec without a real engine.
type fakeGraphStore struct {
	edges map[string][]*value.Edge
}

func (s *fakeGraphStore) ScanVertices(ctx context.Context, f storage.VertexFilter) ([]*value.Vertex, error) {
	return nil, nil
}
func (s *fakeGraphStore) ScanEdges(ctx context.Context, f storage.EdgeFilter) ([]*value.Edge, error) {
	return nil, nil
}
func (s *fakeGraphStore) GetVertices(ctx context.Context, ids []string) ([]*value.Vertex, error) {
	out := make([]*value.Vertex, 0, len(ids))
	for _, id := range ids {
		out = append(out, &value.Vertex{ID: id})
	}
	return out, nil
}
func (s *fakeGraphStore) GetEdges(ctx context.Context, keys []storage.EdgeKey) ([]*value.Edge, error) {
	return nil, nil
}
func (s *fakeGraphStore) GetNeighbors(ctx context.Context, src string, edgeTypes []string, reverse bool) ([]*value.Edge, error) {
	return s.edges[src], nil
}
func (s *fakeGraphStore) GetInput(ctx context.Context, argName string) ([]value.Value, error) {
	return nil, nil
}
func (s *fakeGraphStore) InsertVertex(ctx context.Context, v *value.Vertex) error { return nil }
func (s *fakeGraphStore) InsertEdge(ctx context.Context, e *value.Edge) error    { return nil }
func (s *fakeGraphStore) DeleteVertex(ctx context.Context, id string) error      { return nil }
func (s *fakeGraphStore) DeleteEdge(ctx context.Context, key storage.EdgeKey) error {
	return nil
}
func (s *fakeGraphStore) BeginTx(ctx context.Context) (storage.Tx, error) { return nil, nil }

// weightGreaterThan builds the expression `edge.weight > n`; scenario 1
// uses n = 10.
func weightGreaterThan(n int64) expr.Expression {
	return &expr.Binary{
		Op:   expr.OpGt,
		Left: &expr.Property{Base: &expr.Variable{Name: "edge"}, Key: "weight"},
		Right: &expr.Literal{Val: value.Int(n)},
	}
}

// TestTraverseExecSingleHopOutNeighborsFilter is end-to-end scenario 1:
// seed u1, Traverse(dir=Out, max_depth=1, e_filter="e.weight > 10") over
// edges (u1,v1,w=5) and (u1,v2,w=20) should yield exactly one path u1->v2.
func TestTraverseExecSingleHopOutNeighborsFilter(t *testing.T) {
	store := &fakeGraphStore{edges: map[string][]*value.Edge{
		"u1": {
			{Src: "u1", Dst: "v1", Type: "e", Props: map[string]value.Value{"weight": value.Int(5)}},
			{Src: "u1", Dst: "v2", Type: "e", Props: map[string]value.Value{"weight": value.Int(20)}},
		},
	}}
	child := newFakeOperator("Src", value.OK(dataSetOf([]string{"vid"}, []value.Value{value.String("u1")})))
	te := NewTraverseExec(child, "vid", nil, false, 1, 1, weightGreaterThan(10), nil, nil,
		store, expr.NewFunctionRegistry(), expr.NewAggregateRegistry(), nil, ParallelConfig{}, nil)

	res, err := te.Execute(context.Background())
	if err != nil || !res.Success {
		t.Fatalf("Execute failed: %v, %v", res, err)
	}
	if res.Kind != value.ResultPaths {
		t.Fatalf("Kind = %v, want ResultPaths", res.Kind)
	}
	if len(res.Paths) != 1 {
		t.Fatalf("got %d paths, want 1: %v", len(res.Paths), res.Paths)
	}
	p := res.Paths[0]
	if p.Length() != 1 || p.Vertices[0].ID != "u1" || p.Vertices[1].ID != "v2" {
		t.Fatalf("path = %v, want u1 -> v2", p)
	}
}

// TestTraverseExecGeneratePathFalseReturnsVertices exercises the
// generate_path=false branch: the same traversal returns a deduplicated
// Vertices envelope instead of Paths.
func TestTraverseExecGeneratePathFalseReturnsVertices(t *testing.T) {
	store := &fakeGraphStore{edges: map[string][]*value.Edge{
		"u1": {{Src: "u1", Dst: "v2", Type: "e", Props: map[string]value.Value{"weight": value.Int(20)}}},
	}}
	child := newFakeOperator("Src", value.OK(dataSetOf([]string{"vid"}, []value.Value{value.String("u1")})))
	te := NewTraverseExec(child, "vid", nil, false, 1, 1, nil, nil, nil,
		store, expr.NewFunctionRegistry(), expr.NewAggregateRegistry(), nil, ParallelConfig{}, nil)
	te.GeneratePath = false

	res, err := te.Execute(context.Background())
	if err != nil || !res.Success {
		t.Fatalf("Execute failed: %v, %v", res, err)
	}
	if res.Kind != value.ResultVertices {
		t.Fatalf("Kind = %v, want ResultVertices", res.Kind)
	}
	if len(res.Vertices) != 2 {
		t.Fatalf("got %d vertices, want 2 (u1, v2): %v", len(res.Vertices), res.Vertices)
	}
}

// TestTraverseExecMultiHopBuildsChainedPath checks a two-hop traversal
// builds one path carrying both edges, not a flat edge list.
func TestTraverseExecMultiHopBuildsChainedPath(t *testing.T) {
	store := &fakeGraphStore{edges: map[string][]*value.Edge{
		"u1": {{Src: "u1", Dst: "v1", Type: "e"}},
		"v1": {{Src: "v1", Dst: "v2", Type: "e"}},
	}}
	child := newFakeOperator("Src", value.OK(dataSetOf([]string{"vid"}, []value.Value{value.String("u1")})))
	te := NewTraverseExec(child, "vid", nil, false, 2, 2, nil, nil, nil,
		store, expr.NewFunctionRegistry(), expr.NewAggregateRegistry(), nil, ParallelConfig{}, nil)

	res, err := te.Execute(context.Background())
	if err != nil || !res.Success {
		t.Fatalf("Execute failed: %v, %v", res, err)
	}
	if len(res.Paths) != 1 {
		t.Fatalf("got %d paths, want 1", len(res.Paths))
	}
	p := res.Paths[0]
	if p.Length() != 2 {
		t.Fatalf("path length = %d, want 2", p.Length())
	}
	if p.Vertices[0].ID != "u1" || p.Vertices[1].ID != "v1" || p.Vertices[2].ID != "v2" {
		t.Fatalf("path = %v, want u1 -> v1 -> v2", p)
	}
}

// TestTraverseExecParallelMatchesSerial runs the same traversal through
// both the serial path and the worker-pool scatter-gather path (forced by
// a MinParallelSize of 1) across many concurrent seeds and compares the
// path counts. Run under `go test -race`, it also guards against a data
// race: a shared firstErr/results write without synchronization corrupts
// or crashes rather than just returning a wrong count.
func TestTraverseExecParallelMatchesSerial(t *testing.T) {
	edges := map[string][]*value.Edge{}
	rows := make([]value.Value, 0, 200)
	for i := 0; i < 200; i++ {
		src := "n" + string(rune('a'+i%26)) + string(rune('0'+i/26))
		dst := src + "-out"
		edges[src] = []*value.Edge{{Src: src, Dst: dst, Type: "e"}}
		rows = append(rows, value.String(src))
	}
	store := &fakeGraphStore{edges: edges}

	p := pool.New(4, 64)
	defer p.Shutdown()

	child := newFakeOperator("Src", value.OK(dataSetOf([]string{"vid"}, asRows(rows)...)))
	te := NewTraverseExec(child, "vid", nil, false, 1, 1, nil, nil, nil,
		store, expr.NewFunctionRegistry(), expr.NewAggregateRegistry(), p, ParallelConfig{MinParallelSize: 1, PreferredBatchSize: 8}, nil)

	res, err := te.Execute(context.Background())
	if err != nil || !res.Success {
		t.Fatalf("Execute failed: %v, %v", res, err)
	}
	if len(res.Paths) != 200 {
		t.Fatalf("got %d paths, want 200", len(res.Paths))
	}

	serial := NewTraverseExec(child, "vid", nil, false, 1, 1, nil, nil, nil,
		store, expr.NewFunctionRegistry(), expr.NewAggregateRegistry(), nil, ParallelConfig{}, nil)
	sres, err := serial.Execute(context.Background())
	if err != nil || !sres.Success {
		t.Fatalf("serial Execute failed: %v, %v", sres, err)
	}
	if len(sres.Paths) != len(res.Paths) {
		t.Fatalf("serial got %d paths, parallel got %d", len(sres.Paths), len(res.Paths))
	}
}

func asRows(vals []value.Value) [][]value.Value {
	rows := make([][]value.Value, len(vals))
	for i, v := range vals {
		rows[i] = []value.Value{v}
	}
	return rows
}
