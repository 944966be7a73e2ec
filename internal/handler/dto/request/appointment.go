package request

import (
	"time"

	"client-scheduler/internal/usecase/commands"

	"github.com/google/uuid"
)

// Start and end arrive as RFC 3339 timestamps in whatever zone the client
// works in; validation converts them to the business zone.
type AppointmentRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Type        string    `json:"type" binding:"required"`
	Start       time.Time `json:"start" binding:"required"`
	End         time.Time `json:"end" binding:"required"`
	CustomerID  uuid.UUID `json:"customer_id" binding:"required"`
	ContactID   uuid.UUID `json:"contact_id" binding:"required"`
}

func (r *AppointmentRequest) ToParams(userID uuid.UUID) commands.AppointmentParams {
	return commands.AppointmentParams{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Type:        r.Type,
		Start:       r.Start,
		End:         r.End,
		CustomerID:  r.CustomerID,
		ContactID:   r.ContactID,
		UserID:      userID,
	}
}
