// Package betting validates bet-option configuration. Unlike the draw and
// evaluation paths, which degrade gracefully, betting config is enforced up
// front: a layout with an invalid bet table must be rejected before any
// ticket is issued.
package betting

import "fmt"

// Option is one bet tier a player can choose before scratching.
type Option struct {
	Order      int     `json:"order" yaml:"order"`
	Amount     int64   `json:"amount" yaml:"amount"`
	Threshold  int64   `json:"threshold" yaml:"threshold"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
}

// RequiredOptions is the fixed size of a bet table.
const RequiredOptions = 3

// Validate returns the exhaustive list of violated invariants: exactly
// three options, orders 1/2/3 each present exactly once, and positive
// amounts, thresholds, and multipliers throughout. An empty result means
// the configuration is acceptable.
func Validate(options []Option) []error {
	var violations []error

	if len(options) != RequiredOptions {
		violations = append(violations, fmt.Errorf("expected exactly %d bet options, got %d", RequiredOptions, len(options)))
	}

	orderCounts := make(map[int]int, RequiredOptions)
	for i, opt := range options {
		orderCounts[opt.Order]++
		if opt.Order < 1 || opt.Order > RequiredOptions {
			violations = append(violations, fmt.Errorf("option %d: order %d outside 1..%d", i, opt.Order, RequiredOptions))
		}
		if opt.Amount <= 0 {
			violations = append(violations, fmt.Errorf("option %d: bet amount %d must be positive", i, opt.Amount))
		}
		if opt.Threshold <= 0 {
			violations = append(violations, fmt.Errorf("option %d: threshold %d must be positive", i, opt.Threshold))
		}
		if opt.Multiplier <= 0 {
			violations = append(violations, fmt.Errorf("option %d: multiplier %g must be positive", i, opt.Multiplier))
		}
	}
	for order := 1; order <= RequiredOptions; order++ {
		switch n := orderCounts[order]; {
		case n == 0:
			violations = append(violations, fmt.Errorf("order %d missing", order))
		case n > 1:
			violations = append(violations, fmt.Errorf("order %d present %d times, want exactly once", order, n))
		}
	}
	return violations
}
