package urplanner

import "github.com/rs/zerolog"

// DefaultMaxCommands is the default command limit of a batch.
const DefaultMaxCommands = 256

// PlannerOption configures a Planner.
type PlannerOption func(*Planner)

// PlanOption configures the Plan() and Compile() operations.
type PlanOption func(*planConfig)

// planConfig holds configuration for a compilation.
type planConfig struct {
	maxCommands int
	logger      zerolog.Logger
}

// defaultPlanConfig returns the default plan configuration.
func defaultPlanConfig() *planConfig {
	return &planConfig{
		maxCommands: DefaultMaxCommands,
		logger:      zerolog.Nop(),
	}
}

// WithMaxCommands sets a maximum command limit for the batch.
// Default is 256 commands. Negative limits are treated as zero.
func WithMaxCommands(n int) PlanOption {
	return func(c *planConfig) {
		c.maxCommands = max(n, 0)
	}
}

// WithLogger sets the logger that receives per-command debug records.
// By default nothing is logged.
func WithLogger(logger zerolog.Logger) PlanOption {
	return func(c *planConfig) {
		c.logger = logger
	}
}

// WithPlanDefaults sets options applied to every Plan() call of the planner.
func WithPlanDefaults(opts ...PlanOption) PlannerOption {
	return func(p *Planner) {
		p.planOpts = append(p.planOpts, opts...)
	}
}
