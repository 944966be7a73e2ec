package appointment

import (
	"github.com/google/uuid"
)

// ExistingAppointment is a read-only projection of one other appointment for
// the same customer, supplied by the persistence layer for conflict checks.
type ExistingAppointment struct {
	ID       uuid.UUID
	Interval Interval
}

// FindConflict returns the first entry in others whose interval conflicts with
// the candidate, or nil. Callers must filter out the candidate's own stored
// record beforehand (the validator does this).
//
// The predicate is edge-inclusive: shared starts and shared ends conflict,
// endpoints strictly inside an existing interval conflict, and containment in
// either direction conflicts. Back-to-back intervals (one's end equal to the
// other's start) do NOT conflict.
func FindConflict(candidate Interval, others []ExistingAppointment) *ExistingAppointment {
	cs, ce := candidate.Start(), candidate.End()

	for i := range others {
		os, oe := others[i].Interval.Start(), others[i].Interval.End()

		switch {
		case cs.Equal(os) || ce.Equal(oe):
		case cs.After(os) && cs.Before(oe):
		case ce.After(os) && ce.Before(oe):
		case cs.Before(os) && ce.After(oe):
		case os.Before(cs) && oe.After(ce):
		default:
			continue
		}
		return &others[i]
	}

	return nil
}
