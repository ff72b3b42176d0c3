package handlers

import (
	"context"

	"elevate-backend/application/commands"
	"elevate-backend/application/ports"
	"elevate-backend/domain/entity"
	"elevate-backend/pkg/utils"

	"go.uber.org/zap"
)

// CreateEntityHandler handles entity creation commands
type CreateEntityHandler struct {
	store   ports.EntityStore
	planner *entity.Planner
	logger  *zap.Logger
}

// NewCreateEntityHandler creates a new create entity handler
func NewCreateEntityHandler(store ports.EntityStore, planner *entity.Planner, logger *zap.Logger) *CreateEntityHandler {
	return &CreateEntityHandler{store: store, planner: planner, logger: logger}
}

// Handle executes the create entity command and returns the new entity id.
// The metadata item and every provided page land in one atomic write.
func (h *CreateEntityHandler) Handle(ctx context.Context, cmd commands.CreateEntityCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}
	if err := utils.ValidateStruct(cmd.Input); err != nil {
		return "", err
	}

	entityID, set, err := h.planner.PlanCreate(cmd.EntityType, &cmd.Input)
	if err != nil {
		return "", err
	}

	if err := h.store.Write(ctx, set); err != nil {
		return "", err
	}

	h.logger.Info("entity created",
		zap.String("entityType", string(cmd.EntityType)),
		zap.String("entityID", entityID),
		zap.Int("items", len(set.Ops)),
	)
	return entityID, nil
}
