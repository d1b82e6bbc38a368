package evolution

// Observer receives per-round telemetry, synchronously and in round order.
// Tours in the report are immutable and may be retained.
type Observer interface {
	ObserveRound(RoundReport)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(RoundReport)

// ObserveRound calls f(r).
func (f ObserverFunc) ObserveRound(r RoundReport) { f(r) }
