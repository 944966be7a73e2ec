//go:build unit || e2e

package builder

import (
	"time"

	"client-scheduler/internal/domain/appointment"
	reqdto "client-scheduler/internal/handler/dto/request"
	"client-scheduler/internal/usecase/commands"
	"client-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

// Eastern is the business zone; builder defaults land mid-morning inside the
// business window, so only the scenario under test needs adjusting.
var Eastern = func() *time.Location {
	loc, err := time.LoadLocation("US/Eastern")
	if err != nil {
		panic(err)
	}
	return loc
}()

type AppointmentBuilder struct {
	ID          *uuid.UUID
	CustomerID  uuid.UUID
	ContactID   uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Location    string
	Type        string
	Start       time.Time
	End         time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		CustomerID:  uuid.New(),
		ContactID:   uuid.New(),
		UserID:      uuid.New(),
		Title:       "Quarterly review",
		Description: "Quarterly account review",
		Location:    "Main office",
		Type:        "Planning",
		Start:       time.Date(2026, 4, 15, 9, 0, 0, 0, Eastern),
		End:         time.Date(2026, 4, 15, 10, 0, 0, 0, Eastern),
	}
}

func (b *AppointmentBuilder) WithID(id uuid.UUID) *AppointmentBuilder {
	b.ID = &id
	return b
}

func (b *AppointmentBuilder) WithCustomerID(id uuid.UUID) *AppointmentBuilder {
	b.CustomerID = id
	return b
}

func (b *AppointmentBuilder) WithTitle(title string) *AppointmentBuilder {
	b.Title = title
	return b
}

func (b *AppointmentBuilder) WithDescription(description string) *AppointmentBuilder {
	b.Description = description
	return b
}

func (b *AppointmentBuilder) WithLocation(location string) *AppointmentBuilder {
	b.Location = location
	return b
}

func (b *AppointmentBuilder) WithType(appType string) *AppointmentBuilder {
	b.Type = appType
	return b
}

func (b *AppointmentBuilder) WithTimes(start, end time.Time) *AppointmentBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *AppointmentBuilder) BuildCandidate() appointment.Candidate {
	return appointment.Candidate{
		ID:          b.ID,
		CustomerID:  b.CustomerID,
		ContactID:   b.ContactID,
		UserID:      b.UserID,
		Title:       b.Title,
		Description: b.Description,
		Location:    b.Location,
		Type:        b.Type,
		Interval:    appointment.NewInterval(b.Start, b.End),
	}
}

func (b *AppointmentBuilder) BuildExisting() appointment.ExistingAppointment {
	id := uuid.New()
	if b.ID != nil {
		id = *b.ID
	}
	return appointment.ExistingAppointment{
		ID:       id,
		Interval: appointment.NewInterval(b.Start, b.End),
	}
}

func (b *AppointmentBuilder) BuildDTO() reqdto.AppointmentRequest {
	return reqdto.AppointmentRequest{
		Title:       b.Title,
		Description: b.Description,
		Location:    b.Location,
		Type:        b.Type,
		Start:       b.Start,
		End:         b.End,
		CustomerID:  b.CustomerID,
		ContactID:   b.ContactID,
	}
}

func (b *AppointmentBuilder) BuildParams() commands.AppointmentParams {
	return commands.AppointmentParams{
		Title:       b.Title,
		Description: b.Description,
		Location:    b.Location,
		Type:        b.Type,
		Start:       b.Start,
		End:         b.End,
		CustomerID:  b.CustomerID,
		ContactID:   b.ContactID,
		UserID:      b.UserID,
	}
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	id := uuid.New()
	if b.ID != nil {
		id = *b.ID
	}
	now := time.Now()
	return &queries.AppointmentView{
		ID:           id,
		Title:        b.Title,
		Description:  b.Description,
		Location:     b.Location,
		Type:         b.Type,
		Start:        b.Start,
		End:          b.End,
		CustomerID:   b.CustomerID,
		CustomerName: "Acme Corp",
		ContactID:    b.ContactID,
		ContactName:  "Sales Desk",
		ContactEmail: "sales@example.com",
		UserID:       b.UserID,
		Username:     "scheduler1",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
