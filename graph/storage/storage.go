// Package storage declares the external storage-collaborator interface
// this engine consumes but never implements: durable storage, the
// transaction manager, and schema/catalog management live on the other
// side of this boundary (explicit non-goals). Every exec operator that
// touches data does so exclusively through a Collaborator, never by
// holding its own file handles or connections.
package storage

import (
	"context"

	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// VertexFilter narrows a vertex scan/get to a tag and, optionally, a
// property equality probe (used by IndexScan).
type VertexFilter struct {
	Tag      string
	PropKey  string
	PropVal  value.Value
	HasProp  bool
}

// EdgeFilter narrows an edge scan/get to a type and direction.
type EdgeFilter struct {
	Type    string
	Reverse bool
}

// Collaborator is the storage engine's read/write surface as seen by the
// executor. Every method takes a context so a long-running scan can be
// canceled alongside the query that started it.
type Collaborator interface {
	// ScanVertices streams vertices matching filter. An empty Tag in
	// filter scans every tag.
	ScanVertices(ctx context.Context, filter VertexFilter) ([]*value.Vertex, error)
	// ScanEdges streams edges matching filter.
	ScanEdges(ctx context.Context, filter EdgeFilter) ([]*value.Edge, error)
	// GetVertices fetches vertices by id; a missing id is simply absent
	// from the result, not an error.
	GetVertices(ctx context.Context, ids []string) ([]*value.Vertex, error)
	// GetEdges fetches edges by exact key.
	GetEdges(ctx context.Context, keys []EdgeKey) ([]*value.Edge, error)
	// GetNeighbors returns the edges incident to src matching edgeTypes
	// (and their direction, reversed when reverse is true) — the single-
	// hop primitive Traverse/Expand build on.
	GetNeighbors(ctx context.Context, src string, edgeTypes []string, reverse bool) ([]*value.Edge, error)
	// GetInput resolves an Argument node's bound parameter list by name.
	GetInput(ctx context.Context, argName string) ([]value.Value, error)

	// InsertVertex/InsertEdge/DeleteVertex/DeleteEdge are the write path;
	// every call participates in the currently open transaction, if any.
	InsertVertex(ctx context.Context, v *value.Vertex) error
	InsertEdge(ctx context.Context, e *value.Edge) error
	DeleteVertex(ctx context.Context, id string) error
	DeleteEdge(ctx context.Context, key EdgeKey) error

	// BeginTx/Commit/Rollback expose the transaction manager's lifecycle;
	// the manager's own implementation is out of scope here.
	BeginTx(ctx context.Context) (Tx, error)
}

// EdgeKey identifies one edge for a point Get/Delete.
type EdgeKey struct {
	Src, Dst, Type string
	Rank           int64
}

// Tx scopes a sequence of Collaborator writes to a single commit/rollback.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Catalog is the schema/metadata surface DDL (Management-category plan
// nodes) delegates to — tag/edge-type/index definitions live here, not in
// this engine.
type Catalog interface {
	CreateTag(ctx context.Context, name string, props map[string]string) error
	AlterTag(ctx context.Context, name string, addProps map[string]string, dropProps []string) error
	DropTag(ctx context.Context, name string) error
	CreateEdgeType(ctx context.Context, name string, props map[string]string) error
	AlterEdgeType(ctx context.Context, name string, addProps map[string]string, dropProps []string) error
	DropEdgeType(ctx context.Context, name string) error
	CreateIndex(ctx context.Context, name, onTag string, fields []string) error
	DropIndex(ctx context.Context, name string) error
	CreateSnapshot(ctx context.Context, name string) error
	// IndexFor satisfies rewrite.IndexCatalog so the rewrite engine's
	// index-selection rule can consult the same schema this executor
	// delegates DDL to.
	IndexFor(tag, key string) string
}

// AlgorithmRunner is the whole-graph analytics surface Algorithm-category
// plan nodes delegate to (PageRank, connected components, ...) — an
// iterative fixpoint computation over the entire graph, distinct from a
// single query's row-at-a-time execution and out of scope for this
// engine's core to implement itself.
type AlgorithmRunner interface {
	ConnectedComponents(ctx context.Context, edgeTypes []string) (*value.DataSet, error)
	LabelPropagation(ctx context.Context, edgeTypes []string, maxRounds int) (*value.DataSet, error)
	TriangleCount(ctx context.Context, edgeTypes []string) (*value.DataSet, error)
	PageRank(ctx context.Context, edgeTypes []string, damping float64, maxRounds int) (*value.DataSet, error)
	AllPairsShortestPath(ctx context.Context, edgeTypes []string) (*value.DataSet, error)
	// SubgraphExtract materializes the induced subgraph reachable from a
	// vertex set within maxHop as a two-column (vertices, edges) DataSet of
	// list-valued cells.
	SubgraphExtract(ctx context.Context, from []string, edgeTypes []string, maxHop int) (*value.DataSet, error)
}
