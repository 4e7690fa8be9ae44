package conf

import "gopkg.in/ini.v1"

// WorkerPoolConfig sizes the fixed-thread worker pool shared by every
// parallel-capable executor (filter, project, aggregate, traverse,
// multi-shortest-path). It is the
// same buffered-dispatch shape the teacher used for its message bus, with
// the bus-specific fields (type, handler timeout) dropped since the pool
// runs plain task closures, not typed messages.
type WorkerPoolConfig struct {
	// Workers is the pool's fixed goroutine count.
	Workers int `default:"8" ini:"workers"`
	// QueueSize bounds the shared FIFO task queue; a scatter call blocks
	// once it is full rather than growing unbounded.
	QueueSize int `default:"1000" ini:"queue_size"`
}

// NewWorkerPoolConfig returns the default pool sizing.
func NewWorkerPoolConfig() WorkerPoolConfig {
	return WorkerPoolConfig{
		Workers:   8,
		QueueSize: 1000,
	}
}

func (cfg *Cfg) parsePoolCfg(section *ini.Section) {
	if section == nil {
		return
	}
	if k, err := section.GetKey("workers"); err == nil {
		cfg.Pool.Workers = k.MustInt(cfg.Pool.Workers)
	}
	if k, err := section.GetKey("queue_size"); err == nil {
		cfg.Pool.QueueSize = k.MustInt(cfg.Pool.QueueSize)
	}
}
