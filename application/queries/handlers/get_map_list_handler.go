package handlers

import (
	"context"

	"elevate-backend/application/ports"
	"elevate-backend/application/queries"
	"elevate-backend/domain/entity"

	"go.uber.org/zap"
)

// GetMapListHandler builds the combined map view
type GetMapListHandler struct {
	store     ports.EntityStore
	indexName string
	logger    *zap.Logger
}

// NewGetMapListHandler creates a new get map list handler
func NewGetMapListHandler(store ports.EntityStore, indexName string, logger *zap.Logger) *GetMapListHandler {
	return &GetMapListHandler{store: store, indexName: indexName, logger: logger}
}

// Handle scans the enumeration index once and splits the aggregated
// entities into the two populations the map renders. Totals come from the
// same pass, so the counts and the lists can never drift apart.
func (h *GetMapListHandler) Handle(ctx context.Context, q queries.GetMapListQuery) (*queries.MapList, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	items, err := h.store.Scan(ctx, ports.ScanOptions{IndexName: h.indexName})
	if err != nil {
		return nil, err
	}

	policy := entity.CountVisible
	if q.IncludeHidden {
		policy = entity.CountAll
	}
	res, err := entity.Aggregate(items, entity.AggregateOptions{
		VisibleOnly: !q.IncludeHidden,
		CountPolicy: policy,
	})
	if err != nil {
		return nil, err
	}

	list := &queries.MapList{
		Startups: []*entity.Entity{},
		Enablers: []*entity.Entity{},
		Counts:   res.Counts,
	}
	if q.IncludeHidden {
		list.RequestList = res.Requests
	}
	for _, e := range res.Entities {
		switch e.EntityType {
		case entity.TypeStartup:
			list.Startups = append(list.Startups, e)
		case entity.TypeEnabler:
			list.Enablers = append(list.Enablers, e)
		}
	}

	h.logger.Debug("map list built",
		zap.Int("startups", len(list.Startups)),
		zap.Int("enablers", len(list.Enablers)),
		zap.Int("pendingRequests", res.Counts.PendingRequests),
	)
	return list, nil
}
