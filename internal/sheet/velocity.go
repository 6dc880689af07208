package sheet

import "time"

// Offset is a 2D displacement or velocity. Y grows downward.
type Offset struct {
	X, Y float64
}

const (
	velocityWindow     = 100 * time.Millisecond
	maxTrackedSamples  = 20
	minVelocityElapsed = time.Millisecond
)

type sample struct {
	at  time.Time
	pos Offset
}

// VelocityTracker estimates pointer velocity from recent positions. Only
// samples within the last 100ms before the newest one contribute, so a
// pointer that stopped before release reports a slow velocity.
type VelocityTracker struct {
	samples []sample
}

// Add records the pointer position at time at.
func (t *VelocityTracker) Add(at time.Time, pos Offset) {
	t.samples = append(t.samples, sample{at: at, pos: pos})
	if len(t.samples) > maxTrackedSamples {
		t.samples = t.samples[len(t.samples)-maxTrackedSamples:]
	}
}

// Reset drops all samples.
func (t *VelocityTracker) Reset() {
	t.samples = t.samples[:0]
}

// Velocity returns units per second over the recent window. It returns the
// zero Offset when fewer than two samples fall in the window.
func (t *VelocityTracker) Velocity() Offset {
	if len(t.samples) < 2 {
		return Offset{}
	}
	newest := t.samples[len(t.samples)-1]
	oldest := newest
	for i := len(t.samples) - 2; i >= 0; i-- {
		s := t.samples[i]
		if newest.at.Sub(s.at) > velocityWindow {
			break
		}
		oldest = s
	}
	elapsed := newest.at.Sub(oldest.at)
	if elapsed < minVelocityElapsed {
		return Offset{}
	}
	secs := elapsed.Seconds()
	return Offset{
		X: (newest.pos.X - oldest.pos.X) / secs,
		Y: (newest.pos.Y - oldest.pos.Y) / secs,
	}
}
