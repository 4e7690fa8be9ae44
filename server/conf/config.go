// Package conf holds the engine's runtime configuration: parallel execution
// thresholds shared by every scatter-gather-capable operator, the rewrite
// driver's round caps, and the executor's safety guards. Values load from an
// ini.v1 file the same way the teacher's server config does, but a parse
// failure returns an error instead of calling os.Exit — this is a library
// import, not a standalone process, and must never terminate its caller.
package conf

import (
	"fmt"

	"github.com/juju/errors"
	"gopkg.in/ini.v1"
)

// CommandLineArgs carries the config file path, same shape the teacher's
// server entrypoint used to populate from flags.
type CommandLineArgs struct {
	ConfigPath string
}

// Cfg is the top-level configuration. Neither the rewrite driver nor the
// executor builder takes a Cfg; callers pass them the individual values.
type Cfg struct {
	Raw *ini.File

	Parallel ParallelConfig
	Rewrite  RewriteConfig
	Safety   SafetyConfig
	Pool     WorkerPoolConfig
}

// ParallelConfig controls scatter-gather decisions shared by every
// parallel-capable operator (filter, project, aggregate, traverse,
// multi-shortest-path).
type ParallelConfig struct {
	// MinParallelSize is the row/frontier count below which an operator
	// runs its serial path instead of scattering work to the worker pool.
	MinParallelSize int `default:"256" ini:"min_parallel_size"`
	// PreferredBatchSize is the target rows-per-batch a scatter-gather
	// call aims for.
	PreferredBatchSize int `default:"128" ini:"preferred_batch_size"`
	// MaxBatches caps how many batches a single scatter-gather call
	// issues, regardless of what PreferredBatchSize would otherwise give.
	MaxBatches int `default:"64" ini:"max_batches"`
}

// RewriteConfig bounds the rewrite/optimization driver.
type RewriteConfig struct {
	MaxOuterRounds int `default:"5" ini:"max_outer_rounds"`
	MaxInnerRounds int `default:"128" ini:"max_inner_rounds"`
}

// SafetyConfig bounds recursion and iteration so a cyclic or malformed plan
// cannot run forever.
type SafetyConfig struct {
	MaxRecursionDepth int `default:"256" ini:"max_recursion_depth"`
	MaxLoopIterations int `default:"10000" ini:"max_loop_iterations"`
	MaxExpandDepth    int `default:"100" ini:"max_expand_depth"`
	// DedupMemoryLimitBytes is Dedup's seen-set footprint ceiling, per
	// operator instance.
	DedupMemoryLimitBytes int64 `default:"104857600" ini:"dedup_memory_limit_bytes"`
}

// NewCfg returns a Cfg populated with defaults, no file loaded.
func NewCfg() *Cfg {
	return &Cfg{
		Raw: ini.Empty(),
		Parallel: ParallelConfig{
			MinParallelSize:    256,
			PreferredBatchSize: 128,
			MaxBatches:         64,
		},
		Rewrite: RewriteConfig{
			MaxOuterRounds: 5,
			MaxInnerRounds: 128,
		},
		Safety: SafetyConfig{
			MaxRecursionDepth:     256,
			MaxLoopIterations:     10000,
			MaxExpandDepth:        100,
			DedupMemoryLimitBytes: 100 * 1024 * 1024,
		},
		Pool: NewWorkerPoolConfig(),
	}
}

// Load reads args.ConfigPath (if non-empty) and overlays its [parallel],
// [rewrite], [safety], and [pool] sections onto the defaults. An empty
// ConfigPath returns the defaults unchanged.
func Load(args *CommandLineArgs) (*Cfg, error) {
	cfg := NewCfg()
	if args == nil || args.ConfigPath == "" {
		return cfg, nil
	}

	parsed, err := ini.Load(args.ConfigPath)
	if err != nil {
		return nil, errors.Annotatef(err, "conf: load %s", args.ConfigPath)
	}
	cfg.Raw = parsed

	if err := cfg.parseParallelCfg(parsed.Section("parallel")); err != nil {
		return nil, errors.Trace(err)
	}
	if err := cfg.parseRewriteCfg(parsed.Section("rewrite")); err != nil {
		return nil, errors.Trace(err)
	}
	if err := cfg.parseSafetyCfg(parsed.Section("safety")); err != nil {
		return nil, errors.Trace(err)
	}
	cfg.parsePoolCfg(parsed.Section("pool"))
	return cfg, nil
}

func (cfg *Cfg) parseParallelCfg(section *ini.Section) error {
	if section == nil {
		return nil
	}
	if k, err := section.GetKey("min_parallel_size"); err == nil {
		cfg.Parallel.MinParallelSize = k.MustInt(cfg.Parallel.MinParallelSize)
	}
	if k, err := section.GetKey("preferred_batch_size"); err == nil {
		cfg.Parallel.PreferredBatchSize = k.MustInt(cfg.Parallel.PreferredBatchSize)
	}
	if k, err := section.GetKey("max_batches"); err == nil {
		cfg.Parallel.MaxBatches = k.MustInt(cfg.Parallel.MaxBatches)
	}
	if cfg.Parallel.PreferredBatchSize <= 0 {
		return errors.New("conf: preferred_batch_size must be positive")
	}
	return nil
}

func (cfg *Cfg) parseRewriteCfg(section *ini.Section) error {
	if section == nil {
		return nil
	}
	if k, err := section.GetKey("max_outer_rounds"); err == nil {
		cfg.Rewrite.MaxOuterRounds = k.MustInt(cfg.Rewrite.MaxOuterRounds)
	}
	if k, err := section.GetKey("max_inner_rounds"); err == nil {
		cfg.Rewrite.MaxInnerRounds = k.MustInt(cfg.Rewrite.MaxInnerRounds)
	}
	if cfg.Rewrite.MaxOuterRounds <= 0 || cfg.Rewrite.MaxInnerRounds <= 0 {
		return errors.New("conf: rewrite round caps must be positive")
	}
	return nil
}

func (cfg *Cfg) parseSafetyCfg(section *ini.Section) error {
	if section == nil {
		return nil
	}
	if k, err := section.GetKey("max_recursion_depth"); err == nil {
		cfg.Safety.MaxRecursionDepth = k.MustInt(cfg.Safety.MaxRecursionDepth)
	}
	if k, err := section.GetKey("max_loop_iterations"); err == nil {
		cfg.Safety.MaxLoopIterations = k.MustInt(cfg.Safety.MaxLoopIterations)
	}
	if k, err := section.GetKey("max_expand_depth"); err == nil {
		cfg.Safety.MaxExpandDepth = k.MustInt(cfg.Safety.MaxExpandDepth)
	}
	if k, err := section.GetKey("dedup_memory_limit_bytes"); err == nil {
		cfg.Safety.DedupMemoryLimitBytes = k.MustInt64(cfg.Safety.DedupMemoryLimitBytes)
	}
	if cfg.Safety.MaxRecursionDepth <= 0 {
		return errors.New("conf: max_recursion_depth must be positive")
	}
	return nil
}

// ShouldUseParallel reports whether n rows/items warrant the worker pool.
func (p ParallelConfig) ShouldUseParallel(n int) bool {
	return n >= p.MinParallelSize
}

// CalculateBatchSize derives a batch size for n items that respects
// MaxBatches, matching the scatter-gather helper's expectations.
func (p ParallelConfig) CalculateBatchSize(n int) int {
	if n <= 0 {
		return 0
	}
	batch := p.PreferredBatchSize
	if batch <= 0 {
		batch = 1
	}
	batches := (n + batch - 1) / batch
	if batches > p.MaxBatches && p.MaxBatches > 0 {
		batch = (n + p.MaxBatches - 1) / p.MaxBatches
	}
	if batch <= 0 {
		batch = 1
	}
	return batch
}

// String renders a one-line summary of the configuration.
func (cfg *Cfg) String() string {
	return fmt.Sprintf(
		"parallel{min=%d batch=%d maxBatches=%d} rewrite{outer=%d inner=%d} safety{depth=%d loop=%d expand=%d dedupMB=%d} pool{workers=%d queue=%d}",
		cfg.Parallel.MinParallelSize, cfg.Parallel.PreferredBatchSize, cfg.Parallel.MaxBatches,
		cfg.Rewrite.MaxOuterRounds, cfg.Rewrite.MaxInnerRounds,
		cfg.Safety.MaxRecursionDepth, cfg.Safety.MaxLoopIterations, cfg.Safety.MaxExpandDepth,
		cfg.Safety.DedupMemoryLimitBytes/(1024*1024),
		cfg.Pool.Workers, cfg.Pool.QueueSize,
	)
}
