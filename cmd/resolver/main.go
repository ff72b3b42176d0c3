// The resolver binary backs the AppSync API as a direct Lambda resolver.
package main

import (
	"context"
	"log"
	"time"

	"elevate-backend/infrastructure/config"
	"elevate-backend/infrastructure/di"
	"elevate-backend/interfaces/appsync"
	"elevate-backend/pkg/errors"

	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"
)

var container *di.Container

// init runs during cold start
func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	container, err = di.InitializeContainer(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}
}

// Handler resolves one AppSync field invocation.
func Handler(ctx context.Context, ev appsync.Event) (interface{}, error) {
	start := time.Now()
	result, err := container.Resolver.Resolve(ctx, ev)

	container.Metrics.RecordResolution(ctx, ev.Field, time.Since(start), err)
	if appErr := errors.GetAppError(err); appErr != nil {
		container.Metrics.RecordError(ctx, string(appErr.Type))
	}

	if err != nil {
		container.Logger.Error("field resolution failed",
			zap.String("field", ev.Field),
			zap.Error(err),
		)
	}
	return result, err
}

func main() {
	lambda.Start(Handler)
}
