package handlers

import (
	"context"

	"elevate-backend/application/ports"
	"elevate-backend/application/queries"
	"elevate-backend/domain/entity"

	"go.uber.org/zap"
)

// GetSavedProfilesHandler lists an entity's bookmarked profiles
type GetSavedProfilesHandler struct {
	store  ports.EntityStore
	logger *zap.Logger
}

// NewGetSavedProfilesHandler creates a new get saved profiles handler
func NewGetSavedProfilesHandler(store ports.EntityStore, logger *zap.Logger) *GetSavedProfilesHandler {
	return &GetSavedProfilesHandler{store: store, logger: logger}
}

// Handle reads the owner's bookmark markers and resolves each into the
// referenced profile's metadata view. Bookmarks whose target has since been
// deleted drop out silently; stale markers must not break the list.
func (h *GetSavedProfilesHandler) Handle(ctx context.Context, q queries.GetSavedProfilesQuery) ([]*entity.Entity, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	markers, err := h.store.Query(ctx,
		entity.HashKey(q.OwnerType, q.OwnerID),
		entity.SavedProfileRangeKeyPrefix(q.OwnerType),
	)
	if err != nil {
		return nil, err
	}
	if len(markers) == 0 {
		return []*entity.Entity{}, nil
	}

	keys := make([]entity.Key, 0, len(markers))
	for i := range markers {
		profileType, profileID, err := entity.ParseSavedProfileRangeKey(markers[i].RangeKey)
		if err != nil {
			return nil, err
		}
		keys = append(keys, entity.Key{
			HashKey:  entity.HashKey(profileType, profileID),
			RangeKey: entity.PageRangeKey(profileType, entity.PageMetadata),
		})
	}

	metas, err := h.store.BatchGet(ctx, keys)
	if err != nil {
		return nil, err
	}

	profiles := make([]*entity.Entity, 0, len(metas))
	for i := range metas {
		profileType, profileID, err := entity.ParseHashKey(metas[i].HashKey)
		if err != nil {
			return nil, err
		}
		e, err := entity.Assemble(profileType, profileID, metas[i:i+1])
		if err != nil {
			return nil, err
		}
		e.IsSaved = true
		profiles = append(profiles, e)
	}

	h.logger.Debug("saved profiles resolved",
		zap.String("ownerID", q.OwnerID),
		zap.Int("markers", len(markers)),
		zap.Int("profiles", len(profiles)),
	)
	return profiles, nil
}
