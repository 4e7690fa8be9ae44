package plan

import "testing"

func TestCloneKeepsIDCloneWithNewIDMints(t *testing.T) {
	scan := NewScanVertices("v", "person")
	id := scan.ID()

	clone := scan.Clone()
	if clone.ID() != id {
		t.Fatalf("Clone() should keep the same id, got %d, want %d", clone.ID(), id)
	}

	fresh := scan.CloneWithNewID()
	if fresh.ID() == id {
		t.Fatal("CloneWithNewID() should mint a fresh id")
	}
}

func TestCloneIsIndependentOfSourceMutation(t *testing.T) {
	scan := NewScanVertices("v", "person")
	filter := NewFilter(scan, "f", nil)
	clone := filter.Clone()

	filter.SetInputs([]Node{NewScanEdges("e", "knows")})
	if clone.Inputs()[0].Kind() != KindScanVertices {
		t.Fatal("mutating the source node's Inputs after Clone must not affect the clone")
	}
}

func TestCategoryOfMatchesKindCategoryTable(t *testing.T) {
	if CategoryOf(KindFilter) != CategoryOperation {
		t.Fatalf("CategoryOf(KindFilter) = %v, want CategoryOperation", CategoryOf(KindFilter))
	}
	if CategoryOf(KindCreateTag) != CategoryManagement {
		t.Fatalf("CategoryOf(KindCreateTag) = %v, want CategoryManagement", CategoryOf(KindCreateTag))
	}
}

func TestIsDDLOnlyTrueForManagementCategory(t *testing.T) {
	if !IsDDL(KindDropIndex) {
		t.Fatal("KindDropIndex should be DDL")
	}
	if IsDDL(KindFilter) {
		t.Fatal("KindFilter should not be DDL")
	}
}

func TestKindStringKnownAndUnknown(t *testing.T) {
	if KindFilter.String() != "Filter" {
		t.Fatalf("KindFilter.String() = %q, want \"Filter\"", KindFilter.String())
	}
	if Kind(9999).String() != "InvalidKind" {
		t.Fatalf("an unregistered Kind should stringify as InvalidKind, got %q", Kind(9999).String())
	}
}

func TestWalkVisitsEveryNodePreorderAndCanPrune(t *testing.T) {
	scan := NewScanVertices("v", "person")
	filter := NewFilter(scan, "f", nil)

	var visited []Kind
	Walk(filter, func(n Node) bool {
		visited = append(visited, n.Kind())
		return true
	})
	if len(visited) != 2 || visited[0] != KindFilter || visited[1] != KindScanVertices {
		t.Fatalf("Walk order = %v, want [Filter ScanVertices]", visited)
	}

	visited = nil
	Walk(filter, func(n Node) bool {
		visited = append(visited, n.Kind())
		return false // prune: should not descend into children
	})
	if len(visited) != 1 {
		t.Fatalf("returning false from Visit should stop descent, visited %v", visited)
	}
}
