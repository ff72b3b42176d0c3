package commands

import (
	"elevate-backend/domain/entity"
	"elevate-backend/pkg/errors"
)

// RequestNameChangeCommand opens a pending name change request for an
// entity. Renames never happen directly; they go through this workflow and
// land only on approval.
type RequestNameChangeCommand struct {
	EntityType entity.Type `json:"entityType" validate:"required"`
	EntityID   string      `json:"entityId" validate:"required,uuid"`
	NewName    string      `json:"newName" validate:"required"`
}

// Validate checks the command invariants.
func (cmd RequestNameChangeCommand) Validate() error {
	if !cmd.EntityType.IsValid() {
		return errors.NewValidationError("unknown entity type: " + string(cmd.EntityType))
	}
	if cmd.EntityID == "" {
		return errors.NewValidationError("entity id is required")
	}
	if cmd.NewName == "" {
		return errors.NewValidationError("new name is required")
	}
	return nil
}

// RespondNameChangeCommand settles a pending request. Approval renames the
// entity in the same transaction that stamps the verdict, so no reader ever
// sees one without the other.
type RespondNameChangeCommand struct {
	EntityType entity.Type `json:"entityType" validate:"required"`
	EntityID   string      `json:"entityId" validate:"required,uuid"`
	RequestID  string      `json:"requestId" validate:"required,uuid"`
	Approved   bool        `json:"approved"`
}

// Validate checks the command invariants.
func (cmd RespondNameChangeCommand) Validate() error {
	if !cmd.EntityType.IsValid() {
		return errors.NewValidationError("unknown entity type: " + string(cmd.EntityType))
	}
	if cmd.EntityID == "" {
		return errors.NewValidationError("entity id is required")
	}
	if cmd.RequestID == "" {
		return errors.NewValidationError("request id is required")
	}
	return nil
}
