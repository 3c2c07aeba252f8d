package di

import (
	"mathsolver-backend/application/commands/bus"
	commands_handlers "mathsolver-backend/application/commands/handlers"
	"mathsolver-backend/application/ports"
	querybus "mathsolver-backend/application/queries/bus"
	"mathsolver-backend/infrastructure/config"
	"mathsolver-backend/interfaces/http/rest"
	"mathsolver-backend/pkg/auth"
	pkgerrors "mathsolver-backend/pkg/errors"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	ProblemRepo  ports.ProblemRepository
	Solver       ports.ProblemSolver
	Orchestrator *commands_handlers.SolveProblemOrchestrator
	CommandBus   *bus.CommandBus
	QueryBus     *querybus.QueryBus
	JWTValidator *auth.JWTValidator
	ErrorHandler *pkgerrors.ErrorHandler
	Router       *rest.Router
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideProblemRepository,
	ProvideSolver,
	ProvideJWTValidator,
	ProvideErrorHandler,
	ProvideSolveOrchestrator,
	ProvideCommandBus,
	ProvideQueryBus,
	ProvideProblemHandler,
	ProvideRouter,
	wire.Struct(new(Container), "*"),
)
