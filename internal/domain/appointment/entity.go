package appointment

import (
	"strings"

	"github.com/google/uuid"
)

// Appointment entity. Start and end are stored as instants (UTC in the
// database); zone handling happens at the edges and in the validator.
type Appointment struct {
	id          uuid.UUID
	title       string
	description string
	location    string
	appType     string
	interval    Interval
	customerID  uuid.UUID
	userID      uuid.UUID
	contactID   uuid.UUID
}

// NewAppointment builds an entity from an already-validated candidate.
// Run Validator.Validate first; construction only normalizes whitespace.
func NewAppointment(c Candidate) *Appointment {
	id := uuid.New()
	if c.ID != nil {
		id = *c.ID
	}

	return &Appointment{
		id:          id,
		title:       strings.TrimSpace(c.Title),
		description: strings.TrimSpace(c.Description),
		location:    strings.TrimSpace(c.Location),
		appType:     strings.TrimSpace(c.Type),
		interval:    c.Interval,
		customerID:  c.CustomerID,
		userID:      c.UserID,
		contactID:   c.ContactID,
	}
}

func (a *Appointment) ID() uuid.UUID         { return a.id }
func (a *Appointment) Title() string         { return a.title }
func (a *Appointment) Description() string   { return a.description }
func (a *Appointment) Location() string      { return a.location }
func (a *Appointment) Type() string          { return a.appType }
func (a *Appointment) Interval() Interval    { return a.interval }
func (a *Appointment) CustomerID() uuid.UUID { return a.customerID }
func (a *Appointment) UserID() uuid.UUID     { return a.userID }
func (a *Appointment) ContactID() uuid.UUID  { return a.contactID }
