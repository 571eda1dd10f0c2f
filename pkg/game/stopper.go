package game

import (
	"fmt"
	"time"
)

// GravityThreshold is the time between automatic descents.
const GravityThreshold = 500 * time.Millisecond

// Stopper accumulates the time since the last descent.
type Stopper struct {
	Threshold time.Duration
	Elapsed   time.Duration
}

func NewStopper(threshold time.Duration) *Stopper {
	return &Stopper{Threshold: threshold}
}

// Add accumulates d and reports whether the threshold has been exceeded.
// Negative durations are ignored.
func (st *Stopper) Add(d time.Duration) bool {
	if d > 0 {
		st.Elapsed += d
	}

	return st.Elapsed > st.Threshold
}

func (st *Stopper) Reset() {
	st.Elapsed = 0
}

func (st *Stopper) String() string {
	return fmt.Sprintf("%dms/%dms", st.Elapsed.Milliseconds(), st.Threshold.Milliseconds())
}
