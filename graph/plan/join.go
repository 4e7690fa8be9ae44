package plan

import "github.com/zhukovaskychina/graphql-engine/graph/expr"

// InnerJoin combines Left and Right rows where On evaluates true,
// evaluated with both sides' variables bound simultaneously.
type InnerJoin struct {
	BaseNode
	On expr.Expression
}

func newJoinCols(left, right Node) []string {
	return append(append([]string(nil), left.ColNames()...), right.ColNames()...)
}

func NewInnerJoin(left, right Node, outputVar string, on expr.Expression) *InnerJoin {
	n := &InnerJoin{BaseNode: NewBaseNode("InnerJoin", outputVar, newJoinCols(left, right)), On: on}
	n.SetInputs([]Node{left, right})
	return n
}

func (n *InnerJoin) Kind() Kind         { return KindInnerJoin }
func (n *InnerJoin) Category() Category { return CategoryOf(KindInnerJoin) }
func (n *InnerJoin) Clone() Node        { return &InnerJoin{BaseNode: n.cloneBase(), On: n.On} }
func (n *InnerJoin) CloneWithNewID() Node {
	return &InnerJoin{BaseNode: n.cloneBaseNewID(), On: n.On}
}

// LeftJoin keeps every Left row, padding unmatched Right columns with null.
type LeftJoin struct {
	BaseNode
	On expr.Expression
}

func NewLeftJoin(left, right Node, outputVar string, on expr.Expression) *LeftJoin {
	n := &LeftJoin{BaseNode: NewBaseNode("LeftJoin", outputVar, newJoinCols(left, right)), On: on}
	n.SetInputs([]Node{left, right})
	return n
}

func (n *LeftJoin) Kind() Kind         { return KindLeftJoin }
func (n *LeftJoin) Category() Category { return CategoryOf(KindLeftJoin) }
func (n *LeftJoin) Clone() Node        { return &LeftJoin{BaseNode: n.cloneBase(), On: n.On} }
func (n *LeftJoin) CloneWithNewID() Node {
	return &LeftJoin{BaseNode: n.cloneBaseNewID(), On: n.On}
}

// HashJoin is InnerJoin specialized to equi-join keys — avoids the join
// operator's default nested-loop fallback. No rewrite rule converts an
// InnerJoin into a HashJoin; it comes only from the planner.
type HashJoin struct {
	BaseNode
	LeftKey, RightKey expr.Expression
}

func NewHashJoin(left, right Node, outputVar string, leftKey, rightKey expr.Expression) *HashJoin {
	n := &HashJoin{BaseNode: NewBaseNode("HashJoin", outputVar, newJoinCols(left, right)), LeftKey: leftKey, RightKey: rightKey}
	n.SetInputs([]Node{left, right})
	return n
}

func (n *HashJoin) Kind() Kind         { return KindHashJoin }
func (n *HashJoin) Category() Category { return CategoryOf(KindHashJoin) }
func (n *HashJoin) Clone() Node {
	return &HashJoin{BaseNode: n.cloneBase(), LeftKey: n.LeftKey, RightKey: n.RightKey}
}
func (n *HashJoin) CloneWithNewID() Node {
	return &HashJoin{BaseNode: n.cloneBaseNewID(), LeftKey: n.LeftKey, RightKey: n.RightKey}
}

// CrossJoin pairs every Left row with every Right row, no condition.
type CrossJoin struct {
	BaseNode
}

func NewCrossJoin(left, right Node, outputVar string) *CrossJoin {
	n := &CrossJoin{BaseNode: NewBaseNode("CrossJoin", outputVar, newJoinCols(left, right))}
	n.SetInputs([]Node{left, right})
	return n
}

func (n *CrossJoin) Kind() Kind         { return KindCrossJoin }
func (n *CrossJoin) Category() Category { return CategoryOf(KindCrossJoin) }
func (n *CrossJoin) Clone() Node        { return &CrossJoin{BaseNode: n.cloneBase()} }
func (n *CrossJoin) CloneWithNewID() Node {
	return &CrossJoin{BaseNode: n.cloneBaseNewID()}
}

// BiJoin joins two traversal frontiers on shared vertex ids — the shape
// produced when the bidirectional ShortestPath planning collapses two
// independent Traverse subplans into one join.
type BiJoin struct {
	BaseNode
	LeftVertexVar, RightVertexVar string
}

func NewBiJoin(left, right Node, outputVar, leftVertexVar, rightVertexVar string) *BiJoin {
	n := &BiJoin{BaseNode: NewBaseNode("BiJoin", outputVar, newJoinCols(left, right)), LeftVertexVar: leftVertexVar, RightVertexVar: rightVertexVar}
	n.SetInputs([]Node{left, right})
	return n
}

func (n *BiJoin) Kind() Kind         { return KindBiJoin }
func (n *BiJoin) Category() Category { return CategoryOf(KindBiJoin) }
func (n *BiJoin) Clone() Node {
	return &BiJoin{BaseNode: n.cloneBase(), LeftVertexVar: n.LeftVertexVar, RightVertexVar: n.RightVertexVar}
}
func (n *BiJoin) CloneWithNewID() Node {
	return &BiJoin{BaseNode: n.cloneBaseNewID(), LeftVertexVar: n.LeftVertexVar, RightVertexVar: n.RightVertexVar}
}
