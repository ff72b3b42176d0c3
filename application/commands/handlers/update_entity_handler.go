package handlers

import (
	"context"

	"elevate-backend/application/commands"
	"elevate-backend/application/ports"
	"elevate-backend/domain/entity"
	"elevate-backend/pkg/errors"
	"elevate-backend/pkg/utils"

	"go.uber.org/zap"
)

// UpdateEntityHandler handles partial profile updates
type UpdateEntityHandler struct {
	store   ports.EntityStore
	planner *entity.Planner
	logger  *zap.Logger
}

// NewUpdateEntityHandler creates a new update entity handler
func NewUpdateEntityHandler(store ports.EntityStore, planner *entity.Planner, logger *zap.Logger) *UpdateEntityHandler {
	return &UpdateEntityHandler{store: store, planner: planner, logger: logger}
}

// Handle executes the update entity command. Every touched item carries an
// existence precondition, so updating an absent entity fails whole and is
// reported as not found.
func (h *UpdateEntityHandler) Handle(ctx context.Context, cmd commands.UpdateEntityCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := utils.ValidateStruct(cmd.Input); err != nil {
		return err
	}

	set, err := h.planner.PlanUpdate(cmd.EntityType, cmd.EntityID, &cmd.Input)
	if err != nil {
		return err
	}

	if err := h.store.Write(ctx, set); err != nil {
		if errors.IsConditionalWrite(err) {
			return errors.NewNotFoundError(cmd.EntityType.TypeName()).WithCause(err)
		}
		return err
	}

	h.logger.Info("entity updated",
		zap.String("entityType", string(cmd.EntityType)),
		zap.String("entityID", cmd.EntityID),
		zap.Int("items", len(set.Ops)),
	)
	return nil
}
