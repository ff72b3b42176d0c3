package commands

import (
	"elevate-backend/domain/entity"
	"elevate-backend/pkg/errors"
)

// SaveProfileCommand bookmarks another entity's profile for the caller.
type SaveProfileCommand struct {
	OwnerType   entity.Type `json:"ownerType" validate:"required"`
	OwnerID     string      `json:"ownerId" validate:"required,uuid"`
	ProfileType entity.Type `json:"profileType" validate:"required"`
	ProfileID   string      `json:"profileId" validate:"required,uuid"`
}

// Validate checks the command invariants.
func (cmd SaveProfileCommand) Validate() error {
	return validateProfileRef(cmd.OwnerType, cmd.OwnerID, cmd.ProfileType, cmd.ProfileID)
}

// UnsaveProfileCommand removes a bookmark. Removing an absent bookmark is
// not an error.
type UnsaveProfileCommand struct {
	OwnerType   entity.Type `json:"ownerType" validate:"required"`
	OwnerID     string      `json:"ownerId" validate:"required,uuid"`
	ProfileType entity.Type `json:"profileType" validate:"required"`
	ProfileID   string      `json:"profileId" validate:"required,uuid"`
}

// Validate checks the command invariants.
func (cmd UnsaveProfileCommand) Validate() error {
	return validateProfileRef(cmd.OwnerType, cmd.OwnerID, cmd.ProfileType, cmd.ProfileID)
}

func validateProfileRef(ownerType entity.Type, ownerID string, profileType entity.Type, profileID string) error {
	if !ownerType.IsValid() || !profileType.IsValid() {
		return errors.NewValidationError("unknown entity type")
	}
	if ownerID == "" || profileID == "" {
		return errors.NewValidationError("owner and profile ids are required")
	}
	return nil
}
