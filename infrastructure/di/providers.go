package di

import (
	"context"
	"fmt"

	"mathsolver-backend/application/commands"
	"mathsolver-backend/application/commands/bus"
	commands_handlers "mathsolver-backend/application/commands/handlers"
	"mathsolver-backend/application/ports"
	"mathsolver-backend/application/queries"
	querybus "mathsolver-backend/application/queries/bus"
	queries_handlers "mathsolver-backend/application/queries/handlers"
	"mathsolver-backend/infrastructure/ai/gemini"
	"mathsolver-backend/infrastructure/config"
	"mathsolver-backend/infrastructure/persistence/dynamodb"
	"mathsolver-backend/infrastructure/persistence/memory"
	"mathsolver-backend/interfaces/http/rest"
	"mathsolver-backend/interfaces/http/rest/handlers"
	"mathsolver-backend/pkg/auth"
	pkgerrors "mathsolver-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideProblemRepository creates the history repository. The memory
// backend is for keyless local development only; config validation
// rejects it in production.
func ProvideProblemRepository(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ProblemRepository {
	if cfg.StorageBackend == "memory" {
		logger.Warn("Using in-memory storage, history will not survive restarts")
		return memory.NewInMemoryProblemRepository()
	}
	return dynamodb.NewProblemRepository(
		client,
		cfg.DynamoDBTable,
		cfg.HistoryIndexName,
		logger,
	)
}

// ProvideSolver creates the problem solver. Development without an API
// key falls back to the mock solver so the service stays runnable.
func ProvideSolver(ctx context.Context, cfg *config.Config, logger *zap.Logger) (ports.ProblemSolver, error) {
	if cfg.GeminiAPIKey == "" {
		if cfg.Environment == "production" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required in production")
		}
		logger.Warn("No Gemini API key configured, using mock solver")
		return gemini.NewMockSolver(logger), nil
	}
	return gemini.NewSolver(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
}

// ProvideJWTValidator creates the bearer token validator
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	return auth.NewJWTValidator(auth.JWTConfig{
		SigningMethod: cfg.JWTSigningMethod,
		PublicKey:     cfg.JWTPublicKey,
		SecretKey:     cfg.JWTSecret,
		Issuer:        cfg.JWTIssuer,
		Audience:      []string{cfg.JWTAudience},
	})
}

// ProvideErrorHandler creates the shared HTTP error handler
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *pkgerrors.ErrorHandler {
	return pkgerrors.NewErrorHandler(logger, cfg.Environment != "production")
}

// ProvideSolveOrchestrator creates the solve pipeline orchestrator
func ProvideSolveOrchestrator(
	solver ports.ProblemSolver,
	problemRepo ports.ProblemRepository,
	logger *zap.Logger,
) *commands_handlers.SolveProblemOrchestrator {
	return commands_handlers.NewSolveProblemOrchestrator(solver, problemRepo, logger)
}

// CommandHandlerAdapter adapts specific command handlers to the generic interface
type CommandHandlerAdapter struct {
	handler func(context.Context, bus.Command) error
}

func (a *CommandHandlerAdapter) Handle(ctx context.Context, cmd bus.Command) error {
	return a.handler(ctx, cmd)
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	problemRepo ports.ProblemRepository,
	logger *zap.Logger,
) *bus.CommandBus {
	commandBus := bus.NewCommandBus()
	logging := bus.LoggingMiddleware(&zapLoggerAdapter{logger})

	deleteHandler := commands_handlers.NewDeleteProblemHandler(problemRepo, logger)
	commandBus.Register(commands.DeleteProblemCommand{}, logging(&CommandHandlerAdapter{
		handler: func(ctx context.Context, cmd bus.Command) error {
			deleteCmd, ok := cmd.(commands.DeleteProblemCommand)
			if !ok {
				return fmt.Errorf("invalid command type")
			}
			return deleteHandler.Handle(ctx, deleteCmd)
		},
	}))

	return commandBus
}

// QueryHandlerAdapter adapts specific query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	problemRepo ports.ProblemRepository,
	logger *zap.Logger,
) *querybus.QueryBus {
	queryBus := querybus.NewQueryBus()

	historyHandler := queries_handlers.NewGetHistoryHandler(problemRepo, logger)
	queryBus.Register(queries.GetHistoryQuery{}, &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			historyQuery, ok := query.(queries.GetHistoryQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return historyHandler.Handle(ctx, historyQuery)
		},
	})

	return queryBus
}

// ProvideProblemHandler creates the HTTP problem handler
func ProvideProblemHandler(
	orchestrator *commands_handlers.SolveProblemOrchestrator,
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *handlers.ProblemHandler {
	return handlers.NewProblemHandler(orchestrator, commandBus, queryBus, errorHandler, logger)
}

// ProvideRouter creates the HTTP router
func ProvideRouter(
	cfg *config.Config,
	problemHandler *handlers.ProblemHandler,
	jwtValidator *auth.JWTValidator,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(cfg, problemHandler, jwtValidator, logger)
}

// zapLoggerAdapter adapts zap to the bus logging interface
type zapLoggerAdapter struct {
	logger *zap.Logger
}

func (a *zapLoggerAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Sugar().Infow(msg, keysAndValues...)
}

func (a *zapLoggerAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.logger.Sugar().Errorw(msg, keysAndValues...)
}
