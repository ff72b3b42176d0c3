package handlers

import (
	"context"

	"elevate-backend/application/ports"
	"elevate-backend/application/queries"
	"elevate-backend/domain/entity"
	"elevate-backend/pkg/errors"

	"go.uber.org/zap"
)

// ListNameChangeRequestsHandler enumerates requests for the review screen
type ListNameChangeRequestsHandler struct {
	store     ports.EntityStore
	indexName string
	logger    *zap.Logger
}

// NewListNameChangeRequestsHandler creates a new list name change requests
// handler. indexName is the request enumeration index.
func NewListNameChangeRequestsHandler(store ports.EntityStore, indexName string, logger *zap.Logger) *ListNameChangeRequestsHandler {
	return &ListNameChangeRequestsHandler{store: store, indexName: indexName, logger: logger}
}

// Handle scans the request index and converts each row into its assembled
// view, optionally narrowed to one status. Pending requests have no
// isApproved attribute, so status filtering happens after the scan.
func (h *ListNameChangeRequestsHandler) Handle(ctx context.Context, q queries.ListNameChangeRequestsQuery) ([]*entity.NameChangeRequest, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	items, err := h.store.Scan(ctx, ports.ScanOptions{
		IndexName:        h.indexName,
		RangeKeyContains: entity.RequestRangeKeyPrefix,
	})
	if err != nil {
		return nil, err
	}

	requests := make([]*entity.NameChangeRequest, 0, len(items))
	for i := range items {
		entityType, entityID, err := entity.ParseHashKey(items[i].HashKey)
		if err != nil {
			return nil, err
		}
		r := items[i].RequestItem(entityType, entityID)
		if q.Status != "" && r.Status() != q.Status {
			continue
		}
		requests = append(requests, r)
	}

	h.logger.Debug("name change requests listed",
		zap.String("status", q.Status),
		zap.Int("count", len(requests)),
	)
	return requests, nil
}

// GetNameChangeRequestHandler fetches one request
type GetNameChangeRequestHandler struct {
	store  ports.EntityStore
	logger *zap.Logger
}

// NewGetNameChangeRequestHandler creates a new get name change request handler
func NewGetNameChangeRequestHandler(store ports.EntityStore, logger *zap.Logger) *GetNameChangeRequestHandler {
	return &GetNameChangeRequestHandler{store: store, logger: logger}
}

// Handle batch-fetches the request and the entity's METADATA item, so the
// review screen gets the contact email alongside the request fields.
func (h *GetNameChangeRequestHandler) Handle(ctx context.Context, q queries.GetNameChangeRequestQuery) (*entity.NameChangeRequest, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	hashKey := entity.HashKey(q.EntityType, q.EntityID)
	requestKey := entity.Key{HashKey: hashKey, RangeKey: entity.RequestRangeKey(q.RequestID)}
	metaKey := entity.Key{HashKey: hashKey, RangeKey: entity.PageRangeKey(q.EntityType, entity.PageMetadata)}

	items, err := h.store.BatchGet(ctx, []entity.Key{requestKey, metaKey})
	if err != nil {
		return nil, err
	}

	var r *entity.NameChangeRequest
	var email string
	for i := range items {
		switch items[i].RangeKey {
		case requestKey.RangeKey:
			r = items[i].RequestItem(q.EntityType, q.EntityID)
		case metaKey.RangeKey:
			email = items[i].Email
		}
	}
	if r == nil {
		return nil, errors.NewNotFoundError("name change request")
	}
	r.Email = email
	return r, nil
}
