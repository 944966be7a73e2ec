package components

import (
	"client-scheduler/internal/domain/appointment"
	"client-scheduler/internal/pkg/clock"
	"client-scheduler/internal/pkg/config"
	"client-scheduler/internal/usecase"
	"client-scheduler/internal/usecase/commands"
	"client-scheduler/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewAppointmentValidator,
)

// NewAppointmentValidator builds the scheduling rules from configuration. A
// bad zone or window is a deployment error, so it fails startup.
func NewAppointmentValidator(cfg config.Config) (*appointment.Validator, error) {
	window, err := appointment.NewBusinessWindow(cfg.Business.Zone, cfg.Business.WindowStart, cfg.Business.WindowEnd)
	if err != nil {
		return nil, err
	}
	return appointment.NewValidator(window), nil
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewAppointmentCommands,
		commands.NewCustomerCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewAppointmentQueries,
		queries.NewCustomerQueries,
		queries.NewLookupQueries,
		queries.NewReportQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
