package handlers

import (
	"context"

	"elevate-backend/application/commands"
	"elevate-backend/application/ports"
	"elevate-backend/domain/entity"

	"go.uber.org/zap"
)

// RequestNameChangeHandler opens pending name change requests
type RequestNameChangeHandler struct {
	store    ports.EntityStore
	planner  *entity.Planner
	notifier ports.NotificationPublisher
	logger   *zap.Logger
}

// NewRequestNameChangeHandler creates a new request name change handler
func NewRequestNameChangeHandler(
	store ports.EntityStore,
	planner *entity.Planner,
	notifier ports.NotificationPublisher,
	logger *zap.Logger,
) *RequestNameChangeHandler {
	return &RequestNameChangeHandler{store: store, planner: planner, notifier: notifier, logger: logger}
}

// Handle records a pending request and returns its id. The current name is
// read off the METADATA item so the request carries both names for the
// review screen.
func (h *RequestNameChangeHandler) Handle(ctx context.Context, cmd commands.RequestNameChangeCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	meta, err := h.store.Get(ctx, metadataKey(cmd.EntityType, cmd.EntityID))
	if err != nil {
		return "", err
	}
	originalName := metadataName(meta, cmd.EntityType)

	requestID, set, err := h.planner.PlanNameChangeRequest(cmd.EntityType, cmd.EntityID, cmd.NewName, originalName)
	if err != nil {
		return "", err
	}

	if err := h.store.Write(ctx, set); err != nil {
		return "", err
	}

	h.logger.Info("name change requested",
		zap.String("entityType", string(cmd.EntityType)),
		zap.String("entityID", cmd.EntityID),
		zap.String("requestID", requestID),
	)

	h.notify(ctx, ports.Notification{
		TemplateType: ports.TemplateNameChangeReceived,
		EntityType:   cmd.EntityType,
		EntityName:   originalName,
		OldName:      originalName,
		NewName:      cmd.NewName,
		To:           recipients(meta.Email),
	})
	return requestID, nil
}

// notify is best effort. The request is already durable; a lost email never
// rolls it back.
func (h *RequestNameChangeHandler) notify(ctx context.Context, n ports.Notification) {
	if len(n.To) == 0 {
		return
	}
	if err := h.notifier.Publish(ctx, n); err != nil {
		h.logger.Warn("notification publish failed",
			zap.String("templateType", n.TemplateType),
			zap.Error(err),
		)
	}
}

func recipients(email string) []string {
	if email == "" {
		return nil
	}
	return []string{email}
}
