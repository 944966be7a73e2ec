package commands

import (
	"context"
	"time"

	"client-scheduler/internal/domain/appointment"
	"client-scheduler/internal/infra"
	"client-scheduler/internal/pkg/errs"
	"client-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrAppointmentNotFound     = errs.New("appointment not found")
	ErrCustomerNotFound        = errs.New("customer not found")
	ErrBlankField              = errs.New("required field is blank")
	ErrFieldTooLong            = errs.New("field exceeds maximum length")
	ErrStartAfterEnd           = errs.New("start must be before end")
	ErrSpansMultipleDays       = errs.New("appointment spans multiple business days")
	ErrOutsideBusinessHours    = errs.New("appointment outside business hours")
	ErrAppointmentConflict     = errs.New("appointment conflicts with an existing appointment")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type AppointmentParams struct {
	Title       string
	Description string
	Location    string
	Type        string
	CustomerID  uuid.UUID
	ContactID   uuid.UUID
	UserID      uuid.UUID
	Start       time.Time
	End         time.Time
}

type AppointmentCommands interface {
	Create(ctx context.Context, params AppointmentParams) (*queries.AppointmentView, error)
	Update(ctx context.Context, id uuid.UUID, params AppointmentParams) (*queries.AppointmentView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type appointmentCommandsImpl struct {
	appointmentRepo    AppointmentRepository
	customerRepo       CustomerRepository
	validator          *appointment.Validator
	appointmentQueries queries.AppointmentQueries
	db                 *pgxpool.Pool
}

func NewAppointmentCommands(
	appointmentRepo AppointmentRepository,
	customerRepo CustomerRepository,
	validator *appointment.Validator,
	appointmentQueries queries.AppointmentQueries,
	db *pgxpool.Pool,
) AppointmentCommands {
	return &appointmentCommandsImpl{
		appointmentRepo:    appointmentRepo,
		customerRepo:       customerRepo,
		validator:          validator,
		appointmentQueries: appointmentQueries,
		db:                 db,
	}
}

func (a *appointmentCommandsImpl) Create(ctx context.Context, params AppointmentParams) (*queries.AppointmentView, error) {
	entity, err := a.validate(ctx, nil, params)
	if err != nil {
		return nil, err
	}

	id, err := a.appointmentRepo.Create(ctx, a.db, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Read-after-write: return the complete view with joined names
	view, err := a.appointmentQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (a *appointmentCommandsImpl) Update(ctx context.Context, id uuid.UUID, params AppointmentParams) (*queries.AppointmentView, error) {
	entity, err := a.validate(ctx, &id, params)
	if err != nil {
		return nil, err
	}

	rows, err := a.appointmentRepo.Update(ctx, a.db, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if rows == 0 {
		// The record vanished between fetch and save (deleted by another
		// session); surface as not-found rather than silently re-inserting.
		return nil, ErrAppointmentNotFound
	}

	view, err := a.appointmentQueries.GetByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (a *appointmentCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	rows, err := a.appointmentRepo.Delete(ctx, a.db, id)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}
	return nil
}

// validate runs field, business-hours and overlap checks and returns the
// entity ready for persistence. id is nil on create.
func (a *appointmentCommandsImpl) validate(ctx context.Context, id *uuid.UUID, params AppointmentParams) (*appointment.Appointment, error) {
	exists, err := a.customerRepo.Exists(ctx, params.CustomerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !exists {
		return nil, ErrCustomerNotFound
	}

	others, err := a.appointmentRepo.FindIntervalsByCustomerID(ctx, params.CustomerID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	candidate := appointment.Candidate{
		ID:          id,
		CustomerID:  params.CustomerID,
		ContactID:   params.ContactID,
		UserID:      params.UserID,
		Title:       params.Title,
		Description: params.Description,
		Location:    params.Location,
		Type:        params.Type,
		Interval:    appointment.NewInterval(params.Start, params.End),
	}

	result := a.validator.Validate(candidate, others)
	if !result.OK() {
		return nil, rejectionError(result.Rejection())
	}

	return appointment.NewAppointment(candidate), nil
}

// rejectionError maps a domain rejection onto the sentinel errors the handler
// layer translates into HTTP statuses.
func rejectionError(rej *appointment.Rejection) error {
	detail := errs.New(rej.String())
	switch rej.Reason {
	case appointment.ReasonBlankField:
		return errs.Mark(detail, ErrBlankField)
	case appointment.ReasonFieldTooLong:
		return errs.Mark(detail, ErrFieldTooLong)
	case appointment.ReasonStartAfterEnd:
		return errs.Mark(detail, ErrStartAfterEnd)
	case appointment.ReasonSpansMultipleDays:
		return errs.Mark(detail, ErrSpansMultipleDays)
	case appointment.ReasonOutsideBusinessHours:
		return errs.Mark(detail, ErrOutsideBusinessHours)
	case appointment.ReasonOverlap:
		return errs.Mark(detail, ErrAppointmentConflict)
	default:
		return detail
	}
}
