package exec

import "testing"

func TestRecursionDetectorCatchesCycle(t *testing.T) {
	rd := NewRecursionDetector()
	if err := rd.Enter(1, 0); err != nil {
		t.Fatalf("first Enter(1) should succeed: %v", err)
	}
	if err := rd.Enter(1, 0); err != ErrCycleDetected {
		t.Fatalf("re-entering the same id should fail with ErrCycleDetected, got %v", err)
	}
	rd.Leave(1)
	if rd.Depth() != 0 {
		t.Fatalf("Depth after Leave should be 0, got %d", rd.Depth())
	}
}

func TestRecursionDetectorEnforcesMaxDepth(t *testing.T) {
	rd := NewRecursionDetector()
	if err := rd.Enter(1, 1); err != nil {
		t.Fatalf("Enter within depth budget should succeed: %v", err)
	}
	if err := rd.Enter(2, 1); err != ErrDepthExceeded {
		t.Fatalf("exceeding maxDepth should fail with ErrDepthExceeded, got %v", err)
	}
}

func TestRecursionDetectorLeaveIsSafeWhenNotEntered(t *testing.T) {
	rd := NewRecursionDetector()
	rd.Leave(42) // must not panic or corrupt state
	if rd.Depth() != 0 {
		t.Fatalf("Depth should remain 0, got %d", rd.Depth())
	}
}

func TestSafetyValidatorZeroMeansUnbounded(t *testing.T) {
	s := &SafetyValidator{}
	if err := s.CheckLoopIteration(1_000_000); err != nil {
		t.Fatalf("MaxLoopIterations=0 should mean no limit, got %v", err)
	}
	if err := s.CheckExpandDepth(1_000_000); err != nil {
		t.Fatalf("MaxExpandDepth=0 should mean no limit, got %v", err)
	}
}

func TestSafetyValidatorBoundsLoopIterations(t *testing.T) {
	s := NewSafetyValidator(3, 0)
	if err := s.CheckLoopIteration(2); err != nil {
		t.Fatalf("iteration 2 should be within a MaxLoopIterations=3 budget: %v", err)
	}
	if err := s.CheckLoopIteration(3); err != ErrLoopIterationsExceeded {
		t.Fatalf("iteration 3 should exceed a MaxLoopIterations=3 budget, got %v", err)
	}
}
