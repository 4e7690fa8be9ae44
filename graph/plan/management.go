package plan

// Management-category nodes are DDL: their enum membership and
// plan-shape participation live here, but execution bodies are delegated
// entirely to the storage collaborator (spec's explicit non-goal — this
// engine never implements schema mutation itself).

type CreateTag struct {
	BaseNode
	TagName string
	Props   map[string]string // prop name -> type name
}

func NewCreateTag(tagName string, props map[string]string) *CreateTag {
	return &CreateTag{BaseNode: NewBaseNode("CreateTag", "", nil), TagName: tagName, Props: props}
}
func (n *CreateTag) Kind() Kind         { return KindCreateTag }
func (n *CreateTag) Category() Category { return CategoryOf(KindCreateTag) }
func (n *CreateTag) Clone() Node        { return &CreateTag{BaseNode: n.cloneBase(), TagName: n.TagName, Props: n.Props} }
func (n *CreateTag) CloneWithNewID() Node {
	return &CreateTag{BaseNode: n.cloneBaseNewID(), TagName: n.TagName, Props: n.Props}
}

type AlterTag struct {
	BaseNode
	TagName    string
	AddProps   map[string]string
	DropProps  []string
}

func NewAlterTag(tagName string, addProps map[string]string, dropProps []string) *AlterTag {
	return &AlterTag{BaseNode: NewBaseNode("AlterTag", "", nil), TagName: tagName, AddProps: addProps, DropProps: dropProps}
}
func (n *AlterTag) Kind() Kind         { return KindAlterTag }
func (n *AlterTag) Category() Category { return CategoryOf(KindAlterTag) }
func (n *AlterTag) Clone() Node {
	return &AlterTag{BaseNode: n.cloneBase(), TagName: n.TagName, AddProps: n.AddProps, DropProps: n.DropProps}
}
func (n *AlterTag) CloneWithNewID() Node {
	return &AlterTag{BaseNode: n.cloneBaseNewID(), TagName: n.TagName, AddProps: n.AddProps, DropProps: n.DropProps}
}

type DropTag struct {
	BaseNode
	TagName string
}

func NewDropTag(tagName string) *DropTag {
	return &DropTag{BaseNode: NewBaseNode("DropTag", "", nil), TagName: tagName}
}
func (n *DropTag) Kind() Kind         { return KindDropTag }
func (n *DropTag) Category() Category { return CategoryOf(KindDropTag) }
func (n *DropTag) Clone() Node        { return &DropTag{BaseNode: n.cloneBase(), TagName: n.TagName} }
func (n *DropTag) CloneWithNewID() Node {
	return &DropTag{BaseNode: n.cloneBaseNewID(), TagName: n.TagName}
}

type CreateEdgeType struct {
	BaseNode
	TypeName string
	Props    map[string]string
}

func NewCreateEdgeType(typeName string, props map[string]string) *CreateEdgeType {
	return &CreateEdgeType{BaseNode: NewBaseNode("CreateEdgeType", "", nil), TypeName: typeName, Props: props}
}
func (n *CreateEdgeType) Kind() Kind         { return KindCreateEdgeType }
func (n *CreateEdgeType) Category() Category { return CategoryOf(KindCreateEdgeType) }
func (n *CreateEdgeType) Clone() Node {
	return &CreateEdgeType{BaseNode: n.cloneBase(), TypeName: n.TypeName, Props: n.Props}
}
func (n *CreateEdgeType) CloneWithNewID() Node {
	return &CreateEdgeType{BaseNode: n.cloneBaseNewID(), TypeName: n.TypeName, Props: n.Props}
}

type AlterEdgeType struct {
	BaseNode
	TypeName  string
	AddProps  map[string]string
	DropProps []string
}

func NewAlterEdgeType(typeName string, addProps map[string]string, dropProps []string) *AlterEdgeType {
	return &AlterEdgeType{BaseNode: NewBaseNode("AlterEdgeType", "", nil), TypeName: typeName, AddProps: addProps, DropProps: dropProps}
}
func (n *AlterEdgeType) Kind() Kind         { return KindAlterEdgeType }
func (n *AlterEdgeType) Category() Category { return CategoryOf(KindAlterEdgeType) }
func (n *AlterEdgeType) Clone() Node {
	return &AlterEdgeType{BaseNode: n.cloneBase(), TypeName: n.TypeName, AddProps: n.AddProps, DropProps: n.DropProps}
}
func (n *AlterEdgeType) CloneWithNewID() Node {
	return &AlterEdgeType{BaseNode: n.cloneBaseNewID(), TypeName: n.TypeName, AddProps: n.AddProps, DropProps: n.DropProps}
}

type DropEdgeType struct {
	BaseNode
	TypeName string
}

func NewDropEdgeType(typeName string) *DropEdgeType {
	return &DropEdgeType{BaseNode: NewBaseNode("DropEdgeType", "", nil), TypeName: typeName}
}
func (n *DropEdgeType) Kind() Kind         { return KindDropEdgeType }
func (n *DropEdgeType) Category() Category { return CategoryOf(KindDropEdgeType) }
func (n *DropEdgeType) Clone() Node        { return &DropEdgeType{BaseNode: n.cloneBase(), TypeName: n.TypeName} }
func (n *DropEdgeType) CloneWithNewID() Node {
	return &DropEdgeType{BaseNode: n.cloneBaseNewID(), TypeName: n.TypeName}
}

type CreateIndex struct {
	BaseNode
	IndexName string
	OnTag     string
	Fields    []string
}

func NewCreateIndex(indexName, onTag string, fields []string) *CreateIndex {
	return &CreateIndex{BaseNode: NewBaseNode("CreateIndex", "", nil), IndexName: indexName, OnTag: onTag, Fields: fields}
}
func (n *CreateIndex) Kind() Kind         { return KindCreateIndex }
func (n *CreateIndex) Category() Category { return CategoryOf(KindCreateIndex) }
func (n *CreateIndex) Clone() Node {
	return &CreateIndex{BaseNode: n.cloneBase(), IndexName: n.IndexName, OnTag: n.OnTag, Fields: append([]string(nil), n.Fields...)}
}
func (n *CreateIndex) CloneWithNewID() Node {
	return &CreateIndex{BaseNode: n.cloneBaseNewID(), IndexName: n.IndexName, OnTag: n.OnTag, Fields: append([]string(nil), n.Fields...)}
}

type DropIndex struct {
	BaseNode
	IndexName string
}

func NewDropIndex(indexName string) *DropIndex {
	return &DropIndex{BaseNode: NewBaseNode("DropIndex", "", nil), IndexName: indexName}
}
func (n *DropIndex) Kind() Kind         { return KindDropIndex }
func (n *DropIndex) Category() Category { return CategoryOf(KindDropIndex) }
func (n *DropIndex) Clone() Node        { return &DropIndex{BaseNode: n.cloneBase(), IndexName: n.IndexName} }
func (n *DropIndex) CloneWithNewID() Node {
	return &DropIndex{BaseNode: n.cloneBaseNewID(), IndexName: n.IndexName}
}

type CreateSnapshot struct {
	BaseNode
	SnapshotName string
}

func NewCreateSnapshot(snapshotName string) *CreateSnapshot {
	return &CreateSnapshot{BaseNode: NewBaseNode("CreateSnapshot", "", nil), SnapshotName: snapshotName}
}
func (n *CreateSnapshot) Kind() Kind         { return KindCreateSnapshot }
func (n *CreateSnapshot) Category() Category { return CategoryOf(KindCreateSnapshot) }
func (n *CreateSnapshot) Clone() Node {
	return &CreateSnapshot{BaseNode: n.cloneBase(), SnapshotName: n.SnapshotName}
}
func (n *CreateSnapshot) CloneWithNewID() Node {
	return &CreateSnapshot{BaseNode: n.cloneBaseNewID(), SnapshotName: n.SnapshotName}
}
