package clique

// Option configures engine construction via functional arguments.
type Option func(*config)

// config holds the tunable knobs shared by both search strategies.
type config struct {
	// precDepth bounds how deep into the recursion the weighted strategy
	// (Engine) recomputes full obstruction weights and runs its extra
	// propagation pass; beyond it, active candidates get a constant weight
	// without a fresh recount. FindCliqueEngine does not use it.
	precDepth int

	// assertions enables extra invariant checks (part-size bookkeeping never
	// below the actual active-vertex counts, non-negative weights, depth in
	// range) that are useful in tests but add overhead on the hot path.
	assertions bool
}

func defaultConfig() config {
	return config{precDepth: 5, assertions: false}
}

// WithPrecisionDepth overrides the default propagation depth (5). Negative
// values are ignored.
func WithPrecisionDepth(d int) Option {
	return func(c *config) {
		if d >= 0 {
			c.precDepth = d
		}
	}
}

// WithAssertions turns on the opt-in invariant assertions described in
// config.assertions.
func WithAssertions() Option {
	return func(c *config) {
		c.assertions = true
	}
}
