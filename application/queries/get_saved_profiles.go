package queries

import (
	"elevate-backend/domain/entity"
	"elevate-backend/pkg/errors"
)

// GetSavedProfilesQuery lists the profiles an entity has bookmarked.
type GetSavedProfilesQuery struct {
	OwnerType entity.Type `json:"ownerType" validate:"required"`
	OwnerID   string      `json:"ownerId" validate:"required,uuid"`
}

// Validate checks the query invariants.
func (q GetSavedProfilesQuery) Validate() error {
	if !q.OwnerType.IsValid() {
		return errors.NewValidationError("unknown entity type: " + string(q.OwnerType))
	}
	if q.OwnerID == "" {
		return errors.NewValidationError("owner id is required")
	}
	return nil
}
