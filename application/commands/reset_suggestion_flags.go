package commands

import (
	"elevate-backend/domain/entity"
	"elevate-backend/pkg/errors"
)

// ResetSuggestionFlagsCommand clears the forSuggestionGeneration marker on
// every metadata item of one entity type. The suggestion pipeline runs this
// after consuming the flagged profiles.
type ResetSuggestionFlagsCommand struct {
	EntityType entity.Type `json:"entityType" validate:"required"`
}

// Validate checks the command invariants.
func (cmd ResetSuggestionFlagsCommand) Validate() error {
	if !cmd.EntityType.IsValid() {
		return errors.NewValidationError("unknown entity type: " + string(cmd.EntityType))
	}
	return nil
}
