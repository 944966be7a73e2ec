package appointment

import (
	"time"
)

// Interval is an ordered pair of zoned timestamps. Ordering (start before end)
// is deliberately NOT enforced here: the validator reports a reversed interval
// as its own rejection, distinct from a malformed one.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start, end time.Time) Interval {
	return Interval{start: start, end: end}
}

func (iv Interval) Start() time.Time { return iv.start }
func (iv Interval) End() time.Time   { return iv.end }

// InZone re-expresses both endpoints in loc without changing the instants.
func (iv Interval) InZone(loc *time.Location) Interval {
	return Interval{
		start: iv.start.In(loc),
		end:   iv.end.In(loc),
	}
}

// SameInstants reports whether both endpoints denote the same instants,
// regardless of zone.
func (iv Interval) SameInstants(other Interval) bool {
	return iv.start.Equal(other.start) && iv.end.Equal(other.end)
}
