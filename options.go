package validocx

import (
	"go.uber.org/zap"

	"github.com/tsawler/validocx/attr"
	"github.com/tsawler/validocx/finding"
)

// CheckOptions holds configuration for a validation run.
type CheckOptions struct {
	tolerance  float64
	logger     *zap.Logger
	collectors []finding.Collector
}

// defaultOptions returns the default check options.
func defaultOptions() CheckOptions {
	return CheckOptions{
		tolerance: attr.DefaultTolerance,
		logger:    zap.NewNop(),
	}
}

// clone creates a deep copy of CheckOptions.
func (o CheckOptions) clone() CheckOptions {
	newOpts := CheckOptions{
		tolerance: o.tolerance,
		logger:    o.logger,
	}
	if o.collectors != nil {
		newOpts.collectors = make([]finding.Collector, len(o.collectors))
		copy(newOpts.collectors, o.collectors)
	}
	return newOpts
}
