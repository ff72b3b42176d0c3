package handlers

import (
	"context"

	"elevate-backend/application/commands"
	"elevate-backend/application/ports"
	"elevate-backend/domain/entity"

	"go.uber.org/zap"
)

// ResetSuggestionFlagsHandler clears consumed suggestion markers
type ResetSuggestionFlagsHandler struct {
	store   ports.EntityStore
	planner *entity.Planner
	logger  *zap.Logger
}

// NewResetSuggestionFlagsHandler creates a new reset suggestion flags handler
func NewResetSuggestionFlagsHandler(store ports.EntityStore, planner *entity.Planner, logger *zap.Logger) *ResetSuggestionFlagsHandler {
	return &ResetSuggestionFlagsHandler{store: store, planner: planner, logger: logger}
}

// Handle clears forSuggestionGeneration on every flagged METADATA item of
// the given type and returns how many were cleared. The updates are applied
// one by one; the flags are independent and a partial pass just leaves the
// rest for the next run.
func (h *ResetSuggestionFlagsHandler) Handle(ctx context.Context, cmd commands.ResetSuggestionFlagsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	items, err := h.store.Scan(ctx, ports.ScanOptions{
		RangeKeyPrefix: entity.PageRangeKey(cmd.EntityType, entity.PageMetadata),
	})
	if err != nil {
		return 0, err
	}

	var keys []entity.Key
	for i := range items {
		if items[i].ForSuggestionGeneration != nil && *items[i].ForSuggestionGeneration {
			keys = append(keys, items[i].Key())
		}
	}
	if len(keys) == 0 {
		return 0, nil
	}

	set := h.planner.PlanSuggestionFlagReset(keys, false)
	for _, op := range set.Ops {
		if err := h.store.Write(ctx, entity.WriteSet{Ops: []entity.WriteOp{op}}); err != nil {
			return 0, err
		}
	}

	h.logger.Info("suggestion flags reset",
		zap.String("entityType", string(cmd.EntityType)),
		zap.Int("count", len(keys)),
	)
	return len(keys), nil
}
