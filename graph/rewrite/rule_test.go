package rewrite

import (
	"testing"

	"github.com/zhukovaskychina/graphql-engine/graph/expr"
	"github.com/zhukovaskychina/graphql-engine/graph/plan"
	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

func TestPatternSingleMatchesKindOnly(t *testing.T) {
	p := Single(plan.KindFilter)
	f := plan.NewFilter(plan.NewScanVertices("v", "person"), "f", &expr.Literal{Val: value.Bool(true)})
	if !p.Matches(f) {
		t.Fatal("Single(KindFilter) should match a Filter node")
	}
	if p.Matches(plan.NewScanVertices("v", "person")) {
		t.Fatal("Single(KindFilter) should not match a ScanVertices node")
	}
}

func TestPatternMultiChecksChildShape(t *testing.T) {
	scan := plan.NewScanVertices("v", "person")
	f := plan.NewFilter(scan, "f", &expr.Literal{Val: value.Bool(true)})
	p := Multi(plan.KindFilter, Single(plan.KindScanVertices))
	if !p.Matches(f) {
		t.Fatal("Multi(Filter, Single(ScanVertices)) should match Filter(ScanVertices)")
	}

	other := plan.NewFilter(plan.NewScanEdges("e", "knows"), "f2", &expr.Literal{Val: value.Bool(true)})
	if p.Matches(other) {
		t.Fatal("Multi pattern must not match when the child kind differs")
	}
}

func TestTrueFilterEliminationErasesNode(t *testing.T) {
	scan := plan.NewScanVertices("v", "person")
	f := plan.NewFilter(scan, "f", &expr.Literal{Val: value.Bool(true)})

	result, err := TrueFilterElimination.Apply(&RewriteContext{}, f)
	if err != nil {
		t.Fatalf("Apply errored: %v", err)
	}
	if !result.Changed || !result.EraseCurr {
		t.Fatal("a constant-true Filter should be erased")
	}
	if result.NewNodes[0] != scan {
		t.Fatal("erasing a true Filter should splice in its input unchanged")
	}
}

func TestTrueFilterEliminationLeavesNonLiteralAlone(t *testing.T) {
	scan := plan.NewScanVertices("v", "person")
	f := plan.NewFilter(scan, "f", &expr.Variable{Name: "cond"})

	result, err := TrueFilterElimination.Apply(&RewriteContext{}, f)
	if err != nil {
		t.Fatalf("Apply errored: %v", err)
	}
	if result.Changed {
		t.Fatal("a Filter whose predicate isn't a constant literal must not be touched")
	}
}

func TestPassThroughEliminationSplicesInput(t *testing.T) {
	scan := plan.NewScanVertices("v", "person")
	pt := plan.NewPassThrough(scan, "pt")

	result, err := PassThroughElimination.Apply(&RewriteContext{}, pt)
	if err != nil {
		t.Fatalf("Apply errored: %v", err)
	}
	if !result.Changed || result.NewNodes[0] != scan {
		t.Fatal("PassThrough should always erase to its single input")
	}
}

func TestOptimizeReachesFixpointOnTrueFilter(t *testing.T) {
	scan := plan.NewScanVertices("v", "person")
	f := plan.NewFilter(scan, "f", &expr.Literal{Val: value.Bool(true)})

	out, err := Optimize(f, []*Rule{TrueFilterElimination}, 5, 8)
	if err != nil {
		t.Fatalf("Optimize errored: %v", err)
	}
	if out.Kind() != plan.KindScanVertices {
		t.Fatalf("Optimize result kind = %v, want ScanVertices (the true Filter should be gone)", out.Kind())
	}
}
