package handlers

import (
	"context"

	"elevate-backend/application/ports"
	"elevate-backend/application/queries"
	"elevate-backend/domain/entity"

	"go.uber.org/zap"
)

// ListEntitiesHandler enumerates one entity population
type ListEntitiesHandler struct {
	store     ports.EntityStore
	indexName string
	logger    *zap.Logger
}

// NewListEntitiesHandler creates a new list entities handler. indexName is
// the creation-ordered enumeration index.
func NewListEntitiesHandler(store ports.EntityStore, indexName string, logger *zap.Logger) *ListEntitiesHandler {
	return &ListEntitiesHandler{store: store, indexName: indexName, logger: logger}
}

// Handle scans the enumeration index for one type's page items and
// aggregates them into assembled entities plus totals.
func (h *ListEntitiesHandler) Handle(ctx context.Context, q queries.ListEntitiesQuery) (*queries.EntityList, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	items, err := h.store.Scan(ctx, ports.ScanOptions{
		IndexName:      h.indexName,
		RangeKeyPrefix: entity.TypeRangeKeyPrefix(q.EntityType),
	})
	if err != nil {
		return nil, err
	}

	saved, err := viewerSavedIDs(ctx, h.store, q.ViewerType, q.ViewerID)
	if err != nil {
		return nil, err
	}

	policy := entity.CountVisible
	if q.IncludeHidden {
		policy = entity.CountAll
	}
	res, err := entity.Aggregate(items, entity.AggregateOptions{
		TypeFilter:      &q.EntityType,
		VisibleOnly:     !q.IncludeHidden,
		CountPolicy:     policy,
		SavedProfileIDs: saved,
	})
	if err != nil {
		return nil, err
	}

	h.logger.Debug("entities listed",
		zap.String("entityType", string(q.EntityType)),
		zap.Int("count", len(res.Entities)),
	)
	return &queries.EntityList{Entities: res.Entities, Counts: res.Counts}, nil
}
