package exec

// ParallelConfig is the subset of server/conf.ParallelConfig a scatter-
// gather-capable operator needs, duplicated here rather than importing
// server/conf so graph/exec stays free of a dependency on the server
// wiring layer. Whoever constructs the Builder sets its Parallel field;
// nothing in this module copies server/conf's values in.
type ParallelConfig struct {
	MinParallelSize    int
	PreferredBatchSize int
	MaxBatches         int
}

func (p ParallelConfig) shouldParallelize(n int) bool {
	return p.MinParallelSize > 0 && n >= p.MinParallelSize
}

func (p ParallelConfig) batchSize(n int) int {
	batch := p.PreferredBatchSize
	if batch <= 0 {
		batch = n
	}
	if p.MaxBatches > 0 {
		if nb := (n + batch - 1) / batch; nb > p.MaxBatches {
			batch = (n + p.MaxBatches - 1) / p.MaxBatches
		}
	}
	if batch <= 0 {
		batch = 1
	}
	return batch
}
