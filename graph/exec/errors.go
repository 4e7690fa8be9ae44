package exec

import "errors"

var (
	// ErrCycleDetected is returned when RecursionDetector's Enter finds
	// the same node already on the current call stack.
	ErrCycleDetected = errors.New("exec: cycle detected in plan tree")
	// ErrDepthExceeded is returned when a recursive walk (recursion
	// detector, multi-hop traversal, shortest-path search) exceeds its
	// configured depth bound.
	ErrDepthExceeded = errors.New("exec: recursion/expand depth exceeded")
	// ErrLoopIterationsExceeded is returned when a Loop operator's body
	// has run MaxLoopIterations times without its condition going false.
	ErrLoopIterationsExceeded = errors.New("exec: loop iteration cap exceeded")
	// ErrDedupMemoryExceeded is returned when a Dedup operator's seen-set
	// footprint estimate crosses its configured ceiling.
	ErrDedupMemoryExceeded = errors.New("exec: dedup memory limit exceeded")
	// ErrNotOpened names the "executed before Open" condition. No operator
	// in this package returns it: Execute does not check whether Open ran.
	ErrNotOpened = errors.New("exec: operator executed before being opened")
)
