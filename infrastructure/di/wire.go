//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"elevate-backend/infrastructure/config"

	"github.com/google/wire"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideCloudWatchClient,
	ProvideEntityStore,
	ProvideNotificationPublisher,
	ProvidePlanner,
	ProvideMetrics,
	ProvideJWTValidator,
	ProvideCreateEntityHandler,
	ProvideUpdateEntityHandler,
	ProvideRequestNameChangeHandler,
	ProvideRespondNameChangeHandler,
	ProvideSaveProfileHandler,
	ProvideUnsaveProfileHandler,
	ProvideResetSuggestionFlagsHandler,
	ProvideGetEntityProfileHandler,
	ProvideListEntitiesHandler,
	ProvideGetMapListHandler,
	ProvideGetSavedProfilesHandler,
	ProvideListNameChangeRequestsHandler,
	ProvideGetNameChangeRequestHandler,
	ProvideResolverHandlers,
	ProvideResolver,
	ProvideEntityHandler,
	ProvideAdminHandler,
	ProvideRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
