// Package di wires the application graph with google/wire.
package di

import (
	"elevate-backend/application/ports"
	"elevate-backend/domain/entity"
	"elevate-backend/infrastructure/config"
	"elevate-backend/interfaces/appsync"
	"elevate-backend/interfaces/http/rest"
	"elevate-backend/pkg/auth"
	"elevate-backend/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	Store     ports.EntityStore
	Notifier  ports.NotificationPublisher
	Planner   *entity.Planner
	Metrics   *observability.Metrics
	Validator *auth.JWTValidator
	Resolver  *appsync.Resolver
	Router    *rest.Router
}
