package handlers

import (
	"context"

	"elevate-backend/application/ports"
	"elevate-backend/application/queries"
	"elevate-backend/domain/entity"

	"go.uber.org/zap"
)

// GetEntityProfileHandler assembles one full profile
type GetEntityProfileHandler struct {
	store  ports.EntityStore
	logger *zap.Logger
}

// NewGetEntityProfileHandler creates a new get entity profile handler
func NewGetEntityProfileHandler(store ports.EntityStore, logger *zap.Logger) *GetEntityProfileHandler {
	return &GetEntityProfileHandler{store: store, logger: logger}
}

// Handle fetches the entity's partition and assembles every page, the
// pending request status, and the viewer's bookmark flag into one profile.
func (h *GetEntityProfileHandler) Handle(ctx context.Context, q queries.GetEntityProfileQuery) (*entity.Entity, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	items, err := h.store.Query(ctx, entity.HashKey(q.EntityType, q.EntityID), "")
	if err != nil {
		return nil, err
	}

	e, err := entity.Assemble(q.EntityType, q.EntityID, items)
	if err != nil {
		return nil, err
	}

	if q.ViewerID != "" {
		saved, err := viewerSavedIDs(ctx, h.store, q.ViewerType, q.ViewerID)
		if err != nil {
			return nil, err
		}
		e.IsSaved = saved[q.EntityID]
	}
	return e, nil
}
