package di

import (
	"context"
	"fmt"

	cmdhandlers "elevate-backend/application/commands/handlers"
	"elevate-backend/application/ports"
	qryhandlers "elevate-backend/application/queries/handlers"
	"elevate-backend/domain/entity"
	"elevate-backend/infrastructure/config"
	"elevate-backend/infrastructure/identity"
	"elevate-backend/infrastructure/messaging/eventbridge"
	"elevate-backend/infrastructure/persistence/dynamodb"
	"elevate-backend/interfaces/appsync"
	"elevate-backend/interfaces/http/rest"
	"elevate-backend/interfaces/http/rest/handlers"
	"elevate-backend/pkg/auth"
	"elevate-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if level, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = level
	}

	return zapCfg.Build()
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

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideEntityStore creates the single-table entity store
func ProvideEntityStore(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.EntityStore {
	return dynamodb.NewEntityStore(client, cfg.DynamoDBTable, logger)
}

// ProvideNotificationPublisher creates the EventBridge notification publisher
func ProvideNotificationPublisher(client *awseventbridge.Client, cfg *config.Config, logger *zap.Logger) ports.NotificationPublisher {
	return eventbridge.NewPublisher(client, cfg.EventBusName, logger)
}

// ProvidePlanner creates the mutation planner backed by real ids and clock
func ProvidePlanner() *entity.Planner {
	return entity.NewPlanner(identity.NewUUIDSource(), identity.NewUTCClock())
}

// ProvideMetrics creates a metrics instance. Publication stays off unless
// the feature flag is on, so local runs never touch CloudWatch.
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	namespace := fmt.Sprintf("Elevate/%s", cfg.Environment)
	if !cfg.EnableMetrics {
		return observability.NewMetrics(namespace, nil, logger)
	}
	return observability.NewMetrics(namespace, client, logger)
}

// ProvideJWTValidator creates the token validator
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	secret := cfg.JWTSecret
	if secret == "" && !cfg.IsProduction() {
		secret = "local-development-secret"
	}
	return auth.NewJWTValidator(auth.JWTConfig{
		SecretKey: secret,
		Issuer:    cfg.JWTIssuer,
	})
}

// ProvideCreateEntityHandler creates the create entity handler
func ProvideCreateEntityHandler(store ports.EntityStore, planner *entity.Planner, logger *zap.Logger) *cmdhandlers.CreateEntityHandler {
	return cmdhandlers.NewCreateEntityHandler(store, planner, logger)
}

// ProvideUpdateEntityHandler creates the update entity handler
func ProvideUpdateEntityHandler(store ports.EntityStore, planner *entity.Planner, logger *zap.Logger) *cmdhandlers.UpdateEntityHandler {
	return cmdhandlers.NewUpdateEntityHandler(store, planner, logger)
}

// ProvideRequestNameChangeHandler creates the name change request handler
func ProvideRequestNameChangeHandler(
	store ports.EntityStore,
	planner *entity.Planner,
	notifier ports.NotificationPublisher,
	logger *zap.Logger,
) *cmdhandlers.RequestNameChangeHandler {
	return cmdhandlers.NewRequestNameChangeHandler(store, planner, notifier, logger)
}

// ProvideRespondNameChangeHandler creates the name change response handler
func ProvideRespondNameChangeHandler(
	store ports.EntityStore,
	planner *entity.Planner,
	notifier ports.NotificationPublisher,
	logger *zap.Logger,
) *cmdhandlers.RespondNameChangeHandler {
	return cmdhandlers.NewRespondNameChangeHandler(store, planner, notifier, logger)
}

// ProvideSaveProfileHandler creates the save profile handler
func ProvideSaveProfileHandler(store ports.EntityStore, planner *entity.Planner, logger *zap.Logger) *cmdhandlers.SaveProfileHandler {
	return cmdhandlers.NewSaveProfileHandler(store, planner, logger)
}

// ProvideUnsaveProfileHandler creates the unsave profile handler
func ProvideUnsaveProfileHandler(store ports.EntityStore, planner *entity.Planner, logger *zap.Logger) *cmdhandlers.UnsaveProfileHandler {
	return cmdhandlers.NewUnsaveProfileHandler(store, planner, logger)
}

// ProvideResetSuggestionFlagsHandler creates the suggestion flag reset handler
func ProvideResetSuggestionFlagsHandler(store ports.EntityStore, planner *entity.Planner, logger *zap.Logger) *cmdhandlers.ResetSuggestionFlagsHandler {
	return cmdhandlers.NewResetSuggestionFlagsHandler(store, planner, logger)
}

// ProvideGetEntityProfileHandler creates the profile query handler
func ProvideGetEntityProfileHandler(store ports.EntityStore, logger *zap.Logger) *qryhandlers.GetEntityProfileHandler {
	return qryhandlers.NewGetEntityProfileHandler(store, logger)
}

// ProvideListEntitiesHandler creates the listing handler on GSI1
func ProvideListEntitiesHandler(store ports.EntityStore, cfg *config.Config, logger *zap.Logger) *qryhandlers.ListEntitiesHandler {
	return qryhandlers.NewListEntitiesHandler(store, cfg.GSI1IndexName, logger)
}

// ProvideGetMapListHandler creates the map listing handler on GSI1
func ProvideGetMapListHandler(store ports.EntityStore, cfg *config.Config, logger *zap.Logger) *qryhandlers.GetMapListHandler {
	return qryhandlers.NewGetMapListHandler(store, cfg.GSI1IndexName, logger)
}

// ProvideGetSavedProfilesHandler creates the saved profiles handler
func ProvideGetSavedProfilesHandler(store ports.EntityStore, logger *zap.Logger) *qryhandlers.GetSavedProfilesHandler {
	return qryhandlers.NewGetSavedProfilesHandler(store, logger)
}

// ProvideListNameChangeRequestsHandler creates the request listing handler on GSI2
func ProvideListNameChangeRequestsHandler(store ports.EntityStore, cfg *config.Config, logger *zap.Logger) *qryhandlers.ListNameChangeRequestsHandler {
	return qryhandlers.NewListNameChangeRequestsHandler(store, cfg.GSI2IndexName, logger)
}

// ProvideGetNameChangeRequestHandler creates the single request handler
func ProvideGetNameChangeRequestHandler(store ports.EntityStore, logger *zap.Logger) *qryhandlers.GetNameChangeRequestHandler {
	return qryhandlers.NewGetNameChangeRequestHandler(store, logger)
}

// ProvideResolverHandlers bundles every handler the resolver dispatches to
func ProvideResolverHandlers(
	create *cmdhandlers.CreateEntityHandler,
	update *cmdhandlers.UpdateEntityHandler,
	requestRename *cmdhandlers.RequestNameChangeHandler,
	respondRename *cmdhandlers.RespondNameChangeHandler,
	save *cmdhandlers.SaveProfileHandler,
	unsave *cmdhandlers.UnsaveProfileHandler,
	resetFlags *cmdhandlers.ResetSuggestionFlagsHandler,
	getProfile *qryhandlers.GetEntityProfileHandler,
	list *qryhandlers.ListEntitiesHandler,
	mapList *qryhandlers.GetMapListHandler,
	savedProfiles *qryhandlers.GetSavedProfilesHandler,
	listRequests *qryhandlers.ListNameChangeRequestsHandler,
	getRequest *qryhandlers.GetNameChangeRequestHandler,
) appsync.Handlers {
	return appsync.Handlers{
		CreateEntity:         create,
		UpdateEntity:         update,
		RequestNameChange:    requestRename,
		RespondNameChange:    respondRename,
		SaveProfile:          save,
		UnsaveProfile:        unsave,
		ResetSuggestionFlags: resetFlags,

		GetEntityProfile:       getProfile,
		ListEntities:           list,
		GetMapList:             mapList,
		GetSavedProfiles:       savedProfiles,
		ListNameChangeRequests: listRequests,
		GetNameChangeRequest:   getRequest,
	}
}

// ProvideResolver creates the AppSync field resolver
func ProvideResolver(h appsync.Handlers, logger *zap.Logger) *appsync.Resolver {
	return appsync.NewResolver(h, logger)
}

// ProvideEntityHandler creates the REST entity handler
func ProvideEntityHandler(
	create *cmdhandlers.CreateEntityHandler,
	update *cmdhandlers.UpdateEntityHandler,
	requestRename *cmdhandlers.RequestNameChangeHandler,
	save *cmdhandlers.SaveProfileHandler,
	unsave *cmdhandlers.UnsaveProfileHandler,
	getProfile *qryhandlers.GetEntityProfileHandler,
	list *qryhandlers.ListEntitiesHandler,
	mapList *qryhandlers.GetMapListHandler,
	savedProfiles *qryhandlers.GetSavedProfilesHandler,
	logger *zap.Logger,
) *handlers.EntityHandler {
	return handlers.NewEntityHandler(create, update, requestRename, save, unsave,
		getProfile, list, mapList, savedProfiles, logger)
}

// ProvideAdminHandler creates the REST admin handler
func ProvideAdminHandler(
	respond *cmdhandlers.RespondNameChangeHandler,
	resetFlags *cmdhandlers.ResetSuggestionFlagsHandler,
	list *qryhandlers.ListEntitiesHandler,
	mapList *qryhandlers.GetMapListHandler,
	listRequests *qryhandlers.ListNameChangeRequestsHandler,
	getRequest *qryhandlers.GetNameChangeRequestHandler,
	logger *zap.Logger,
) *handlers.AdminHandler {
	return handlers.NewAdminHandler(respond, resetFlags, list, mapList, listRequests, getRequest, logger)
}

// ProvideRouter creates the REST router
func ProvideRouter(
	cfg *config.Config,
	entities *handlers.EntityHandler,
	admin *handlers.AdminHandler,
	validator *auth.JWTValidator,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(cfg, entities, admin, validator, logger)
}
