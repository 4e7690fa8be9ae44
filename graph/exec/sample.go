package exec

import (
	"context"

	"github.com/zhukovaskychina/graphql-engine/graph/value"
)

// SampleStrategy mirrors plan.SampleStrategy.
type SampleStrategy uint8

const (
	SampleRandom SampleStrategy = iota
	SampleReservoir
	SampleSystem
)

// SampleExec picks Count rows from the input according to Strategy.
// Randomness is deterministic: the generator is seeded from the seed
// passed to NewSampleExec (the builder passes the plan node's id), not
// from wall-clock time or crypto/rand, so a freshly built operator
// replays identically given the same input.
type SampleExec struct {
	BaseExecutor
	Count    int64
	Strategy SampleStrategy
	rng      *lcg
}

func NewSampleExec(child Operator, count int64, strategy SampleStrategy, seed uint64) *SampleExec {
	return &SampleExec{BaseExecutor: NewBaseExecutor("Sample", child), Count: count, Strategy: strategy, rng: newLCG(seed)}
}

func (e *SampleExec) Execute(ctx context.Context) (*value.ExecutionResult, error) {
	in, err := ExecuteChild(ctx, e.Children()[0])
	if err != nil || !in.Success {
		return in, err
	}
	ds := in.DataSet
	out := value.NewDataSet(nil)
	if ds == nil {
		return value.OK(out), nil
	}
	out.ColNames = ds.ColNames
	if e.Count <= 0 || len(ds.Rows) == 0 {
		return value.OK(out), nil
	}

	switch e.Strategy {
	case SampleSystem:
		// System sampling: take every Kth row, K derived from the input
		// size, a cheap approximation that avoids per-row RNG calls.
		n := len(ds.Rows)
		k := n / int(e.Count)
		if k < 1 {
			k = 1
		}
		for i := 0; i < n && int64(len(out.Rows)) < e.Count; i += k {
			_ = out.AppendRow(ds.Rows[i])
		}
	case SampleReservoir:
		reservoir := make([][]value.Value, 0, e.Count)
		for i, row := range ds.Rows {
			if int64(len(reservoir)) < e.Count {
				reservoir = append(reservoir, row)
				continue
			}
			j := e.rng.intn(i + 1)
			if int64(j) < e.Count {
				reservoir[j] = row
			}
		}
		for _, row := range reservoir {
			_ = out.AppendRow(row)
		}
	default: // SampleRandom
		idx := make([]int, len(ds.Rows))
		for i := range idx {
			idx[i] = i
		}
		e.rng.shuffle(idx)
		limit := int(e.Count)
		if limit > len(idx) {
			limit = len(idx)
		}
		for _, i := range idx[:limit] {
			_ = out.AppendRow(ds.Rows[i])
		}
	}
	return value.OK(out), nil
}

// lcg is a minimal linear-congruential generator: deterministic given a
// seed, with no dependency on math/rand's global state or wall-clock time.
type lcg struct{ state uint64 }

func newLCG(seed uint64) *lcg {
	if seed == 0 {
		seed = 0x9E3779B97F4A7C15
	}
	return &lcg{state: seed}
}

func (g *lcg) next() uint64 {
	g.state = g.state*6364136223846793005 + 1442695040888963407
	return g.state
}

func (g *lcg) intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(g.next() % uint64(n))
}

func (g *lcg) shuffle(a []int) {
	for i := len(a) - 1; i > 0; i-- {
		j := g.intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
