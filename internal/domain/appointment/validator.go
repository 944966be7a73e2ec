package appointment

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

type Reason string

const (
	ReasonBlankField           Reason = "blank_field"
	ReasonFieldTooLong         Reason = "field_too_long"
	ReasonStartAfterEnd        Reason = "start_after_end"
	ReasonSpansMultipleDays    Reason = "spans_multiple_days"
	ReasonOutsideBusinessHours Reason = "outside_business_hours"
	ReasonOverlap              Reason = "overlap"
)

// Rejection carries the reason an appointment may not be saved, with the
// offending field for field-level reasons and the conflicting appointment for
// overlaps.
type Rejection struct {
	Reason     Reason
	Field      string
	ConflictID uuid.UUID
}

func (r *Rejection) String() string {
	switch r.Reason {
	case ReasonBlankField:
		return fmt.Sprintf("%s cannot be blank", r.Field)
	case ReasonFieldTooLong:
		return fmt.Sprintf("%s cannot exceed %d characters", r.Field, MaxFieldLength)
	case ReasonOverlap:
		return fmt.Sprintf("conflicts with appointment %s", r.ConflictID)
	default:
		return string(r.Reason)
	}
}

// Result is the validation outcome as a plain value. Expected rejections are
// not errors; callers branch on the result explicitly.
type Result struct {
	rejection *Rejection
}

func Accepted() Result {
	return Result{}
}

func Rejected(r Rejection) Result {
	return Result{rejection: &r}
}

func (r Result) OK() bool {
	return r.rejection == nil
}

func (r Result) Rejection() *Rejection {
	return r.rejection
}

// MaxFieldLength bounds title, description, location and type.
const MaxFieldLength = 50

// Candidate is the appointment under evaluation. ID is nil when creating and
// set when editing, so the validator can exclude the candidate's own stored
// record from the conflict set.
type Candidate struct {
	ID          *uuid.UUID
	CustomerID  uuid.UUID
	ContactID   uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Location    string
	Type        string
	Interval    Interval
}

// Validator decides whether a proposed appointment may be saved, given the
// customer's other appointments. It is a pure function over its arguments and
// safe for concurrent use.
type Validator struct {
	window BusinessWindow
}

func NewValidator(window BusinessWindow) *Validator {
	return &Validator{window: window}
}

// Validate runs the checks in order and stops at the first failure:
// required fields, field lengths, interval ordering, business hours,
// then overlap against the customer's other appointments.
func (v *Validator) Validate(c Candidate, others []ExistingAppointment) Result {
	if rej := checkRequired(c); rej != nil {
		return Result{rejection: rej}
	}
	if rej := checkLengths(c); rej != nil {
		return Result{rejection: rej}
	}

	if !c.Interval.Start().Before(c.Interval.End()) {
		return Rejected(Rejection{Reason: ReasonStartAfterEnd})
	}

	if rej := v.window.Check(c.Interval); rej != nil {
		return Result{rejection: rej}
	}

	if conflict := FindConflict(c.Interval, excludeSelf(c.ID, others)); conflict != nil {
		return Rejected(Rejection{Reason: ReasonOverlap, ConflictID: conflict.ID})
	}

	return Accepted()
}

func checkRequired(c Candidate) *Rejection {
	blank := func(field string) *Rejection {
		return &Rejection{Reason: ReasonBlankField, Field: field}
	}

	switch {
	case isBlank(c.Title):
		return blank("title")
	case isBlank(c.Description):
		return blank("description")
	case isBlank(c.Location):
		return blank("location")
	case isBlank(c.Type):
		return blank("type")
	case c.CustomerID == uuid.Nil:
		return blank("customer")
	case c.ContactID == uuid.Nil:
		return blank("contact")
	case c.UserID == uuid.Nil:
		return blank("user")
	case c.Interval.Start().IsZero():
		return blank("start")
	case c.Interval.End().IsZero():
		return blank("end")
	}
	return nil
}

func checkLengths(c Candidate) *Rejection {
	fields := []struct {
		name  string
		value string
	}{
		{"title", c.Title},
		{"description", c.Description},
		{"location", c.Location},
		{"type", c.Type},
	}
	// Bound is in characters, not bytes, so multi-byte input is counted fairly.
	for _, f := range fields {
		if utf8.RuneCountInString(f.value) > MaxFieldLength {
			return &Rejection{Reason: ReasonFieldTooLong, Field: f.name}
		}
	}
	return nil
}

// excludeSelf drops the candidate's own stored record so an unchanged edit
// never conflicts with itself.
func excludeSelf(id *uuid.UUID, others []ExistingAppointment) []ExistingAppointment {
	if id == nil {
		return others
	}
	filtered := make([]ExistingAppointment, 0, len(others))
	for _, o := range others {
		if o.ID == *id {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
