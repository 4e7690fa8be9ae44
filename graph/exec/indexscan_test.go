package exec

import (
	"context"
	"testing"

	"github.com/zhukovaskychina/graphql-engine/graph/storage"
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// fakeCollaborator implements storage.Collaborator with just enough
// behavior to exercise IndexScanExec; every other method is unused here.
type fakeCollaborator struct {
	vertices    []*value.Vertex
	wantPropKey string
}

func (f *fakeCollaborator) ScanVertices(ctx context.Context, filter storage.VertexFilter) ([]*value.Vertex, error) {
	if filter.PropKey != f.wantPropKey || !filter.HasProp {
		return nil, nil
	}
	return f.vertices, nil
}
func (f *fakeCollaborator) ScanEdges(ctx context.Context, filter storage.EdgeFilter) ([]*value.Edge, error) {
	return nil, nil
}
func (f *fakeCollaborator) GetVertices(ctx context.Context, ids []string) ([]*value.Vertex, error) {
	return nil, nil
}
func (f *fakeCollaborator) GetEdges(ctx context.Context, keys []storage.EdgeKey) ([]*value.Edge, error) {
	return nil, nil
}
func (f *fakeCollaborator) GetNeighbors(ctx context.Context, src string, edgeTypes []string, reverse bool) ([]*value.Edge, error) {
	return nil, nil
}
func (f *fakeCollaborator) GetInput(ctx context.Context, argName string) ([]value.Value, error) {
	return nil, nil
}
func (f *fakeCollaborator) InsertVertex(ctx context.Context, v *value.Vertex) error { return nil }
func (f *fakeCollaborator) InsertEdge(ctx context.Context, e *value.Edge) error     { return nil }
func (f *fakeCollaborator) DeleteVertex(ctx context.Context, id string) error       { return nil }
func (f *fakeCollaborator) DeleteEdge(ctx context.Context, key storage.EdgeKey) error {
	return nil
}
func (f *fakeCollaborator) BeginTx(ctx context.Context) (storage.Tx, error) { return nil, nil }

func TestIndexScanExecDelegatesPropertyEqualityProbe(t *testing.T) {
	store := &fakeCollaborator{
		wantPropKey: "email",
		vertices:    []*value.Vertex{{ID: "v1"}, {ID: "v2"}},
	}
	is := NewIndexScanExec("email_idx", "email", store)

	res, err := is.Execute(context.Background())
	if err != nil || !res.Success {
		t.Fatalf("Execute failed: %v, %v", res, err)
	}
	if len(res.DataSet.Rows) != 2 {
		t.Fatalf("scanned %d rows, want 2", len(res.DataSet.Rows))
	}
}

func TestIndexScanExecWrongPropKeyYieldsNoRows(t *testing.T) {
	store := &fakeCollaborator{wantPropKey: "email", vertices: []*value.Vertex{{ID: "v1"}}}
	is := NewIndexScanExec("name_idx", "name", store)

	res, err := is.Execute(context.Background())
	if err != nil || !res.Success {
		t.Fatalf("Execute failed: %v, %v", res, err)
	}
	if len(res.DataSet.Rows) != 0 {
		t.Fatalf("probing a non-matching property should yield 0 rows, got %d", len(res.DataSet.Rows))
	}
}
