package appointment

import (
	"time"

	"client-scheduler/internal/pkg/errs"
)

var (
	ErrInvalidZone   = errs.New("invalid business zone identifier")
	ErrInvalidWindow = errs.New("business window start must be before end")
)

// timeOfDay is seconds since midnight, business-zone local.
type timeOfDay int

func timeOfDayOf(t time.Time) timeOfDay {
	return timeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

// BusinessWindow evaluates the business-hours rule: an interval must fall on a
// single calendar day in the business zone, with both endpoints inside the
// configured window.
type BusinessWindow struct {
	windowStart timeOfDay
	windowEnd   timeOfDay
	loc         *time.Location
}

// NewBusinessWindow parses "15:04"-format bounds and resolves the zone name.
// Bad configuration is reported here, once, so rule evaluation itself is total.
func NewBusinessWindow(zone, windowStart, windowEnd string) (BusinessWindow, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return BusinessWindow{}, errs.Mark(err, ErrInvalidZone)
	}

	start, err := parseClock(windowStart)
	if err != nil {
		return BusinessWindow{}, errs.Mark(err, ErrInvalidWindow)
	}
	end, err := parseClock(windowEnd)
	if err != nil {
		return BusinessWindow{}, errs.Mark(err, ErrInvalidWindow)
	}
	if start >= end {
		return BusinessWindow{}, ErrInvalidWindow
	}

	return BusinessWindow{windowStart: start, windowEnd: end, loc: loc}, nil
}

func (w BusinessWindow) Location() *time.Location {
	return w.loc
}

// Check evaluates iv against the window. The interval may be in any zone; it is
// converted to the business zone without altering the instants.
//
// Bound handling is asymmetric: a start exactly at the window close is
// rejected, while an end exactly at the window close is allowed.
func (w BusinessWindow) Check(iv Interval) *Rejection {
	biz := iv.InZone(w.loc)

	startY, startM, startD := biz.Start().Date()
	endY, endM, endD := biz.End().Date()
	if startY != endY || startM != endM || startD != endD {
		return &Rejection{Reason: ReasonSpansMultipleDays}
	}

	start := timeOfDayOf(biz.Start())
	end := timeOfDayOf(biz.End())

	if start < w.windowStart ||
		start >= w.windowEnd ||
		end > w.windowEnd ||
		end < w.windowStart {
		return &Rejection{Reason: ReasonOutsideBusinessHours}
	}

	return nil
}

func parseClock(s string) (timeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return timeOfDayOf(t), nil
}
