// Package eventbridge publishes name change notifications to the event bus
// that fans out to the email sender.
package eventbridge

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"elevate-backend/application/ports"
	"elevate-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge"
	"github.com/aws/aws-sdk-go-v2/service/eventbridge/types"
	"go.uber.org/zap"
)

const (
	eventSource = "elevate.entities"
	detailType  = "EntityNotification"
)

// Publisher implements ports.NotificationPublisher on EventBridge.
type Publisher struct {
	client       *eventbridge.Client
	eventBusName string
	logger       *zap.Logger
}

// NewPublisher creates a new EventBridge publisher.
func NewPublisher(client *eventbridge.Client, eventBusName string, logger *zap.Logger) ports.NotificationPublisher {
	return &Publisher{
		client:       client,
		eventBusName: eventBusName,
		logger:       logger,
	}
}

// Publish sends one notification event to the bus.
func (p *Publisher) Publish(ctx context.Context, n ports.Notification) error {
	detail, err := json.Marshal(n)
	if err != nil {
		return errors.NewInternalError("marshal notification").WithCause(err)
	}

	entry := types.PutEventsRequestEntry{
		EventBusName: aws.String(p.eventBusName),
		Source:       aws.String(eventSource),
		DetailType:   aws.String(detailType),
		Detail:       aws.String(string(detail)),
		Time:         aws.Time(time.Now()),
	}

	result, err := p.client.PutEvents(ctx, &eventbridge.PutEventsInput{
		Entries: []types.PutEventsRequestEntry{entry},
	})
	if err != nil {
		return errors.NewExternalError("eventbridge", err)
	}

	if result.FailedEntryCount > 0 {
		for _, e := range result.Entries {
			if e.ErrorCode != nil {
				p.logger.Error("notification entry rejected",
					zap.String("templateType", n.TemplateType),
					zap.String("errorCode", aws.ToString(e.ErrorCode)),
					zap.String("errorMessage", aws.ToString(e.ErrorMessage)),
				)
			}
		}
		return errors.NewExternalError("eventbridge",
			fmt.Errorf("%d notification entries failed", result.FailedEntryCount))
	}

	p.logger.Debug("notification published",
		zap.String("templateType", n.TemplateType),
		zap.String("entityType", string(n.EntityType)),
		zap.String("eventBus", p.eventBusName),
	)
	return nil
}
