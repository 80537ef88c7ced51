package backoff

import "math"

// Strategy produces the next wait interval from the one just waited.
type Strategy interface {
	Next(interval uint64) uint64
}

// StrategyFunc adapts a plain function to Strategy.
type StrategyFunc func(interval uint64) uint64

// Next calls f(interval).
func (f StrategyFunc) Next(interval uint64) uint64 { return f(interval) }

// Exponential squares the interval: 2, 4, 16, 256, 65536, ...
// Results that do not fit in a uint64 saturate at math.MaxUint64.
type Exponential struct{}

// Next returns interval squared.
func (Exponential) Next(interval uint64) uint64 {
	if interval > math.MaxUint32 {
		return math.MaxUint64
	}
	return interval * interval
}
