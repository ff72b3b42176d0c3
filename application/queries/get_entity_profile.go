// Package queries defines the read-side operations of the application
// layer. Query structs carry the caller's question; the handlers in
// queries/handlers fetch raw items and assemble the answers.
package queries

import (
	"elevate-backend/domain/entity"
	"elevate-backend/pkg/errors"
)

// GetEntityProfileQuery fetches one assembled profile. When a viewer is
// given, the result carries whether the viewer has bookmarked the profile.
type GetEntityProfileQuery struct {
	EntityType entity.Type `json:"entityType" validate:"required"`
	EntityID   string      `json:"entityId" validate:"required,uuid"`

	ViewerType entity.Type `json:"viewerType,omitempty"`
	ViewerID   string      `json:"viewerId,omitempty"`
}

// Validate checks the query invariants.
func (q GetEntityProfileQuery) Validate() error {
	if !q.EntityType.IsValid() {
		return errors.NewValidationError("unknown entity type: " + string(q.EntityType))
	}
	if q.EntityID == "" {
		return errors.NewValidationError("entity id is required")
	}
	if q.ViewerID != "" && !q.ViewerType.IsValid() {
		return errors.NewValidationError("unknown viewer type: " + string(q.ViewerType))
	}
	return nil
}
