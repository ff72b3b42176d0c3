package commands

import (
	"elevate-backend/domain/entity"
	"elevate-backend/pkg/errors"
)

// UpdateEntityCommand applies a partial profile update. Absent input fields
// keep their stored values; present page collections replace the stored page
// whole.
type UpdateEntityCommand struct {
	EntityType entity.Type  `json:"entityType" validate:"required"`
	EntityID   string       `json:"entityId" validate:"required,uuid"`
	Input      entity.Input `json:"input"`
}

// Validate checks the command invariants.
func (cmd UpdateEntityCommand) Validate() error {
	if !cmd.EntityType.IsValid() {
		return errors.NewValidationError("unknown entity type: " + string(cmd.EntityType))
	}
	if cmd.EntityID == "" {
		return errors.NewValidationError("entity id is required")
	}
	return nil
}
