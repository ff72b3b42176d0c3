package handlers

import (
	"context"

	"elevate-backend/application/commands"
	"elevate-backend/application/ports"
	"elevate-backend/domain/entity"
	"elevate-backend/pkg/errors"

	"go.uber.org/zap"
)

// RespondNameChangeHandler settles pending name change requests
type RespondNameChangeHandler struct {
	store    ports.EntityStore
	planner  *entity.Planner
	notifier ports.NotificationPublisher
	logger   *zap.Logger
}

// NewRespondNameChangeHandler creates a new respond name change handler
func NewRespondNameChangeHandler(
	store ports.EntityStore,
	planner *entity.Planner,
	notifier ports.NotificationPublisher,
	logger *zap.Logger,
) *RespondNameChangeHandler {
	return &RespondNameChangeHandler{store: store, planner: planner, notifier: notifier, logger: logger}
}

// Handle stamps the verdict onto the request. Approval also rewrites the
// METADATA name; both writes ride one transaction, so the rename and the
// verdict are never observable apart.
func (h *RespondNameChangeHandler) Handle(ctx context.Context, cmd commands.RespondNameChangeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	requestKey := entity.Key{
		HashKey:  entity.HashKey(cmd.EntityType, cmd.EntityID),
		RangeKey: entity.RequestRangeKey(cmd.RequestID),
	}
	items, err := h.store.BatchGet(ctx, []entity.Key{requestKey, metadataKey(cmd.EntityType, cmd.EntityID)})
	if err != nil {
		return err
	}

	var request, meta *entity.Item
	for i := range items {
		switch items[i].RangeKey {
		case requestKey.RangeKey:
			request = &items[i]
		default:
			meta = &items[i]
		}
	}
	if request == nil {
		return errors.NewNotFoundError("name change request")
	}
	if meta == nil {
		return errors.NewNotFoundError(cmd.EntityType.TypeName())
	}

	set, err := h.planner.PlanNameChangeResponse(cmd.EntityType, cmd.EntityID, cmd.RequestID, cmd.Approved, request.NewName)
	if err != nil {
		return err
	}
	if err := h.store.Write(ctx, set); err != nil {
		return err
	}

	h.logger.Info("name change settled",
		zap.String("entityType", string(cmd.EntityType)),
		zap.String("entityID", cmd.EntityID),
		zap.String("requestID", cmd.RequestID),
		zap.Bool("approved", cmd.Approved),
	)

	template := ports.TemplateNameChangeRejected
	entityName := request.OriginalName
	if cmd.Approved {
		template = ports.TemplateNameChangeApproved
		entityName = request.NewName
	}
	h.notify(ctx, ports.Notification{
		TemplateType: template,
		EntityType:   cmd.EntityType,
		EntityName:   entityName,
		OldName:      request.OriginalName,
		NewName:      request.NewName,
		To:           recipients(meta.Email),
	})
	return nil
}

func (h *RespondNameChangeHandler) notify(ctx context.Context, n ports.Notification) {
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
