package evolution

import "time"

// SetClock replaces the engine's time source; tests only.
func SetClock(e *Engine, now func() time.Time) { e.now = now }
