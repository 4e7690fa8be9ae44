package plan

import "github.com/zhukovaskychina/graphql-engine/graph/expr"

// Traverse walks MinHop..MaxHop edges outward from each input row's SrcVar
// binding, batching the frontier and (when the row count clears
// ParallelConfig.MinParallelSize) fanning each batch out to the worker
// pool. EdgeFilter/VertexFilter/GeneralFilter apply per-candidate in both
// the serial and the parallel path — identically, not a "simplified"
// variant in the parallel case.
type Traverse struct {
	BaseNode
	SrcVar        string
	EdgeTypes     []string
	Reverse       bool
	MinHop        int
	MaxHop        int
	EdgeFilter    expr.Expression
	VertexFilter  expr.Expression
	GeneralFilter expr.Expression
	// GeneratePath selects the result envelope the executor returns:
	// true for a Paths envelope, false for a deduplicated Vertices
	// envelope. Defaults to true (see NewTraverse).
	GeneratePath bool
}

func NewTraverse(outputVar, srcVar string, edgeTypes []string, reverse bool, minHop, maxHop int) *Traverse {
	return &Traverse{
		BaseNode:     NewBaseNode("Traverse", outputVar, []string{outputVar}),
		SrcVar:       srcVar,
		EdgeTypes:    edgeTypes,
		Reverse:      reverse,
		MinHop:       minHop,
		MaxHop:       maxHop,
		GeneratePath: true,
	}
}

func (n *Traverse) Kind() Kind         { return KindTraverse }
func (n *Traverse) Category() Category { return CategoryOf(KindTraverse) }
func (n *Traverse) Clone() Node {
	c := *n
	c.BaseNode = n.cloneBase()
	c.EdgeTypes = append([]string(nil), n.EdgeTypes...)
	return &c
}
func (n *Traverse) CloneWithNewID() Node {
	c := *n
	c.BaseNode = n.cloneBaseNewID()
	c.EdgeTypes = append([]string(nil), n.EdgeTypes...)
	return &c
}

// Expand is single-hop Traverse (MinHop == MaxHop == 1); kept as a
// distinct Kind so the fusion rule (Expand -> Expand) can recognize and
// merge consecutive single hops without unpacking Traverse's hop range
// every time.
type Expand struct {
	BaseNode
	SrcVar     string
	EdgeTypes  []string
	Reverse    bool
	EdgeFilter expr.Expression
}

func NewExpand(outputVar, srcVar string, edgeTypes []string, reverse bool) *Expand {
	return &Expand{BaseNode: NewBaseNode("Expand", outputVar, []string{outputVar}), SrcVar: srcVar, EdgeTypes: edgeTypes, Reverse: reverse}
}

func (n *Expand) Kind() Kind         { return KindExpand }
func (n *Expand) Category() Category { return CategoryOf(KindExpand) }
func (n *Expand) Clone() Node {
	return &Expand{BaseNode: n.cloneBase(), SrcVar: n.SrcVar, EdgeTypes: append([]string(nil), n.EdgeTypes...), Reverse: n.Reverse, EdgeFilter: n.EdgeFilter}
}
func (n *Expand) CloneWithNewID() Node {
	return &Expand{BaseNode: n.cloneBaseNewID(), SrcVar: n.SrcVar, EdgeTypes: append([]string(nil), n.EdgeTypes...), Reverse: n.Reverse, EdgeFilter: n.EdgeFilter}
}

// ExpandAll expands every edge type with no filter, so nothing is checked
// per-candidate. No rewrite rule produces it; it comes only from the
// planner.
type ExpandAll struct {
	BaseNode
	SrcVar  string
	Reverse bool
}

func NewExpandAll(outputVar, srcVar string, reverse bool) *ExpandAll {
	return &ExpandAll{BaseNode: NewBaseNode("ExpandAll", outputVar, []string{outputVar}), SrcVar: srcVar, Reverse: reverse}
}

func (n *ExpandAll) Kind() Kind         { return KindExpandAll }
func (n *ExpandAll) Category() Category { return CategoryOf(KindExpandAll) }
func (n *ExpandAll) Clone() Node {
	return &ExpandAll{BaseNode: n.cloneBase(), SrcVar: n.SrcVar, Reverse: n.Reverse}
}
func (n *ExpandAll) CloneWithNewID() Node {
	return &ExpandAll{BaseNode: n.cloneBaseNewID(), SrcVar: n.SrcVar, Reverse: n.Reverse}
}

// AppendVertices resolves the destination vertex of each edge a traversal
// produced, appending it to the row — separated from Traverse so a rule
// can drop it when only edges (not vertices) are projected downstream.
type AppendVertices struct {
	BaseNode
	EdgeVar string
}

func NewAppendVertices(outputVar, edgeVar string) *AppendVertices {
	return &AppendVertices{BaseNode: NewBaseNode("AppendVertices", outputVar, []string{outputVar}), EdgeVar: edgeVar}
}

func (n *AppendVertices) Kind() Kind         { return KindAppendVertices }
func (n *AppendVertices) Category() Category { return CategoryOf(KindAppendVertices) }
func (n *AppendVertices) Clone() Node {
	return &AppendVertices{BaseNode: n.cloneBase(), EdgeVar: n.EdgeVar}
}
func (n *AppendVertices) CloneWithNewID() Node {
	return &AppendVertices{BaseNode: n.cloneBaseNewID(), EdgeVar: n.EdgeVar}
}

// BFSShortest finds the shortest (fewest-hop) path from one source vertex
// to one target vertex via a single-direction breadth-first search.
type BFSShortest struct {
	BaseNode
	FromVar, ToVar string
	EdgeTypes      []string
	MaxHop         int
}

func NewBFSShortest(outputVar, fromVar, toVar string, edgeTypes []string, maxHop int) *BFSShortest {
	return &BFSShortest{BaseNode: NewBaseNode("BFSShortest", outputVar, []string{outputVar}), FromVar: fromVar, ToVar: toVar, EdgeTypes: edgeTypes, MaxHop: maxHop}
}

func (n *BFSShortest) Kind() Kind         { return KindBFSShortest }
func (n *BFSShortest) Category() Category { return CategoryOf(KindBFSShortest) }
func (n *BFSShortest) Clone() Node {
	return &BFSShortest{BaseNode: n.cloneBase(), FromVar: n.FromVar, ToVar: n.ToVar, EdgeTypes: append([]string(nil), n.EdgeTypes...), MaxHop: n.MaxHop}
}
func (n *BFSShortest) CloneWithNewID() Node {
	return &BFSShortest{BaseNode: n.cloneBaseNewID(), FromVar: n.FromVar, ToVar: n.ToVar, EdgeTypes: append([]string(nil), n.EdgeTypes...), MaxHop: n.MaxHop}
}

// ShortestPath finds the shortest path via bidirectional BFS (expanding
// from both endpoints alternately), halving the frontier a single-
// direction search would visit.
type ShortestPath struct {
	BaseNode
	FromVar, ToVar string
	EdgeTypes      []string
	MaxHop         int
}

func NewShortestPath(outputVar, fromVar, toVar string, edgeTypes []string, maxHop int) *ShortestPath {
	return &ShortestPath{BaseNode: NewBaseNode("ShortestPath", outputVar, []string{outputVar}), FromVar: fromVar, ToVar: toVar, EdgeTypes: edgeTypes, MaxHop: maxHop}
}

func (n *ShortestPath) Kind() Kind         { return KindShortestPath }
func (n *ShortestPath) Category() Category { return CategoryOf(KindShortestPath) }
func (n *ShortestPath) Clone() Node {
	return &ShortestPath{BaseNode: n.cloneBase(), FromVar: n.FromVar, ToVar: n.ToVar, EdgeTypes: append([]string(nil), n.EdgeTypes...), MaxHop: n.MaxHop}
}
func (n *ShortestPath) CloneWithNewID() Node {
	return &ShortestPath{BaseNode: n.cloneBaseNewID(), FromVar: n.FromVar, ToVar: n.ToVar, EdgeTypes: append([]string(nil), n.EdgeTypes...), MaxHop: n.MaxHop}
}

// AllPaths enumerates every simple path between two vertices up to MaxHop,
// not just the shortest.
type AllPaths struct {
	BaseNode
	FromVar, ToVar string
	EdgeTypes      []string
	MaxHop         int
}

func NewAllPaths(outputVar, fromVar, toVar string, edgeTypes []string, maxHop int) *AllPaths {
	return &AllPaths{BaseNode: NewBaseNode("AllPaths", outputVar, []string{outputVar}), FromVar: fromVar, ToVar: toVar, EdgeTypes: edgeTypes, MaxHop: maxHop}
}

func (n *AllPaths) Kind() Kind         { return KindAllPaths }
func (n *AllPaths) Category() Category { return CategoryOf(KindAllPaths) }
func (n *AllPaths) Clone() Node {
	return &AllPaths{BaseNode: n.cloneBase(), FromVar: n.FromVar, ToVar: n.ToVar, EdgeTypes: append([]string(nil), n.EdgeTypes...), MaxHop: n.MaxHop}
}
func (n *AllPaths) CloneWithNewID() Node {
	return &AllPaths{BaseNode: n.cloneBaseNewID(), FromVar: n.FromVar, ToVar: n.ToVar, EdgeTypes: append([]string(nil), n.EdgeTypes...), MaxHop: n.MaxHop}
}

// MultiShortestPath finds a shortest path for every (source, target) pair
// drawn from two input vertex sets. SingleShortest, when true, stops at
// the first reachable path per pair instead of continuing to search for
// ties (spec's documented resolution for this open question). The
// executor does not read the field: it always returns at most one path
// per pair.
type MultiShortestPath struct {
	BaseNode
	FromVar, ToVar  string
	EdgeTypes       []string
	MaxHop          int
	SingleShortest  bool
}

func NewMultiShortestPath(outputVar, fromVar, toVar string, edgeTypes []string, maxHop int, singleShortest bool) *MultiShortestPath {
	return &MultiShortestPath{
		BaseNode:       NewBaseNode("MultiShortestPath", outputVar, []string{outputVar}),
		FromVar:        fromVar,
		ToVar:          toVar,
		EdgeTypes:      edgeTypes,
		MaxHop:         maxHop,
		SingleShortest: singleShortest,
	}
}

func (n *MultiShortestPath) Kind() Kind         { return KindMultiShortestPath }
func (n *MultiShortestPath) Category() Category { return CategoryOf(KindMultiShortestPath) }
func (n *MultiShortestPath) Clone() Node {
	return &MultiShortestPath{BaseNode: n.cloneBase(), FromVar: n.FromVar, ToVar: n.ToVar, EdgeTypes: append([]string(nil), n.EdgeTypes...), MaxHop: n.MaxHop, SingleShortest: n.SingleShortest}
}
func (n *MultiShortestPath) CloneWithNewID() Node {
	return &MultiShortestPath{BaseNode: n.cloneBaseNewID(), FromVar: n.FromVar, ToVar: n.ToVar, EdgeTypes: append([]string(nil), n.EdgeTypes...), MaxHop: n.MaxHop, SingleShortest: n.SingleShortest}
}
