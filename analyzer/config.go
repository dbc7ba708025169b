package analyzer

import (
	"fmt"
	"runtime"

	"github.com/kbukum/convodyn/metrics"
)

// Config holds analyzer configuration. Everything the analysis depends on is
// carried here explicitly; there is no package-level mutable state.
type Config struct {
	// MergeGapTolerance is the same-speaker merge gap in seconds passed to
	// the turn builder. Default 0: only true adjacency/overlap merges.
	MergeGapTolerance float64 `yaml:"merge_gap_tolerance" mapstructure:"merge_gap_tolerance"`
	// Metrics names the metrics to run. Defaults to metrics.DefaultNames.
	Metrics []string `yaml:"metrics" mapstructure:"metrics"`
	// DropShortestSpeaker removes the speaker with the least total speaking
	// time before turn building when more than two speakers are present;
	// that speaker is usually diarization noise.
	DropShortestSpeaker bool `yaml:"drop_shortest_speaker" mapstructure:"drop_shortest_speaker"`
	// Workers bounds batch concurrency. Defaults to the CPU count.
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// ApplyDefaults sets sensible default values for unset fields.
func (c *Config) ApplyDefaults() {
	if len(c.Metrics) == 0 {
		c.Metrics = append([]string(nil), metrics.DefaultNames...)
	}
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.MergeGapTolerance < 0 {
		return fmt.Errorf("analyzer.merge_gap_tolerance must be non-negative (got: %g)", c.MergeGapTolerance)
	}
	if c.Workers < 0 {
		return fmt.Errorf("analyzer.workers must be non-negative (got: %d)", c.Workers)
	}
	return nil
}
