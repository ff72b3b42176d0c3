package queries

import (
	"elevate-backend/domain/entity"
	"elevate-backend/pkg/errors"
)

// ListEntitiesQuery enumerates every entity of one type in creation order.
// Public listings hide invisible profiles; admin listings include them.
type ListEntitiesQuery struct {
	EntityType    entity.Type `json:"entityType" validate:"required"`
	IncludeHidden bool        `json:"includeHidden,omitempty"`

	ViewerType entity.Type `json:"viewerType,omitempty"`
	ViewerID   string      `json:"viewerId,omitempty"`
}

// Validate checks the query invariants.
func (q ListEntitiesQuery) Validate() error {
	if !q.EntityType.IsValid() {
		return errors.NewValidationError("unknown entity type: " + string(q.EntityType))
	}
	if q.ViewerID != "" && !q.ViewerType.IsValid() {
		return errors.NewValidationError("unknown viewer type: " + string(q.ViewerType))
	}
	return nil
}

// EntityList is the result of ListEntitiesQuery.
type EntityList struct {
	Entities []*entity.Entity `json:"entities"`
	Counts   entity.Counts    `json:"counts"`
}
