// Package commands defines the write-side operations of the application
// layer. Each command carries caller input; the matching handler in
// commands/handlers plans the writes and applies them through the store port.
package commands

import (
	"elevate-backend/domain/entity"
	"elevate-backend/pkg/errors"
)

// CreateEntityCommand registers a new startup or enabler profile.
type CreateEntityCommand struct {
	EntityType entity.Type  `json:"entityType" validate:"required"`
	Input      entity.Input `json:"input"`
}

// Validate checks the command invariants the planner does not cover.
func (cmd CreateEntityCommand) Validate() error {
	if !cmd.EntityType.IsValid() {
		return errors.NewValidationError("unknown entity type: " + string(cmd.EntityType))
	}
	if cmd.Input.DisplayName == nil || *cmd.Input.DisplayName == "" {
		return errors.NewValidationError(cmd.EntityType.TypeName() + " name is required")
	}
	return nil
}
