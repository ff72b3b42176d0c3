package queries

import (
	"elevate-backend/domain/entity"
	"elevate-backend/pkg/errors"
)

// Request status filters for ListNameChangeRequestsQuery. Empty means all.
const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// ListNameChangeRequestsQuery enumerates name change requests across all
// entities, newest-first ordering left to the index, optionally narrowed to
// one status.
type ListNameChangeRequestsQuery struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

// Validate checks the query invariants.
func (q ListNameChangeRequestsQuery) Validate() error {
	switch q.Status {
	case "", StatusPending, StatusApproved, StatusRejected:
		return nil
	}
	return errors.NewValidationError("unknown request status: " + q.Status)
}

// GetNameChangeRequestQuery fetches one request item.
type GetNameChangeRequestQuery struct {
	EntityType entity.Type `json:"entityType" validate:"required"`
	EntityID   string      `json:"entityId" validate:"required,uuid"`
	RequestID  string      `json:"requestId" validate:"required,uuid"`
}

// Validate checks the query invariants.
func (q GetNameChangeRequestQuery) Validate() error {
	if !q.EntityType.IsValid() {
		return errors.NewValidationError("unknown entity type: " + string(q.EntityType))
	}
	if q.EntityID == "" || q.RequestID == "" {
		return errors.NewValidationError("entity id and request id are required")
	}
	return nil
}
