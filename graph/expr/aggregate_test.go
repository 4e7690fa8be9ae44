package expr

import (
	"testing"

	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

func TestCountSkipsNulls(t *testing.T) {
	s := NewAggregateState(AggCount)
	s.Add(value.Int(1))
	s.Add(value.Null())
	s.Add(value.Int(2))
	got, _ := s.Result().AsInt()
	if got != 2 {
		t.Fatalf("Count = %d, want 2 (nulls skipped)", got)
	}
}

func TestSumPoisonedBySticksAcrossMerge(t *testing.T) {
	a := NewAggregateState(AggSum)
	a.Add(value.Int(1))
	a.Add(value.String("x")) // poisons a

	b := NewAggregateState(AggSum)
	b.Add(value.Int(2))

	a.Merge(b)
	r := a.Result()
	if r.Kind() != value.KNull || r.NullVariant() != value.NullBadType {
		t.Fatalf("Sum poisoned by a bad row must stay poisoned after Merge, got %v", r)
	}
}

func TestSumKeepsIntPrecisionUntilMixed(t *testing.T) {
	s := NewAggregateState(AggSum)
	s.Add(value.Int(2))
	s.Add(value.Int(3))
	got, err := s.Result().AsInt()
	if err != nil || got != 5 {
		t.Fatalf("Sum(2, 3) = %v, %v, want 5, nil (should stay an Int)", got, err)
	}
}

func TestAvgOfEmptyIsNull(t *testing.T) {
	s := NewAggregateState(AggAvg)
	if !s.Result().IsNull() {
		t.Fatal("Avg with no input rows should be Null, not 0")
	}
}

func TestMaxIgnoresNulls(t *testing.T) {
	s := NewAggregateState(AggMax)
	s.Add(value.Int(3))
	s.Add(value.Null())
	s.Add(value.Int(7))
	s.Add(value.Int(1))
	got, _ := s.Result().AsInt()
	if got != 7 {
		t.Fatalf("Max = %d, want 7", got)
	}
}

func TestStdMergeMatchesSinglePass(t *testing.T) {
	vals := []value.Value{value.Float(2), value.Float(4), value.Float(4), value.Float(4), value.Float(5), value.Float(5), value.Float(7), value.Float(9)}

	single := NewAggregateState(AggStd)
	for _, v := range vals {
		single.Add(v)
	}

	a := NewAggregateState(AggStd)
	for _, v := range vals[:4] {
		a.Add(v)
	}
	b := NewAggregateState(AggStd)
	for _, v := range vals[4:] {
		b.Add(v)
	}
	a.Merge(b)

	wantF, _ := single.Result().AsFloat()
	gotF, _ := a.Result().AsFloat()
	diff := wantF - gotF
	if diff < 0 {
		diff = -diff
	}
	if diff > 1e-6 {
		t.Fatalf("merged stddev = %v, single-pass = %v, diverge by more than epsilon", gotF, wantF)
	}
}

func TestCollectSetDedupes(t *testing.T) {
	s := NewAggregateState(AggCollectSet)
	s.Add(value.Int(1))
	s.Add(value.Int(1))
	s.Add(value.Int(2))
	items, err := s.Result().AsList()
	if err != nil || len(items) != 2 {
		t.Fatalf("CollectSet = %v items, %v, want 2 items", len(items), err)
	}
}

func TestCountDistinctMerge(t *testing.T) {
	a := NewAggregateState(AggCountDistinct)
	a.Add(value.Int(1))
	a.Add(value.Int(2))
	b := NewAggregateState(AggCountDistinct)
	b.Add(value.Int(2))
	b.Add(value.Int(3))
	a.Merge(b)
	got, _ := a.Result().AsInt()
	if got != 3 {
		t.Fatalf("CountDistinct merged = %d, want 3", got)
	}
}
