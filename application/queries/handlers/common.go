// Package handlers contains the query handlers. They fetch raw items
// through the store port and assemble them into the read models the
// interfaces return.
package handlers

import (
	"context"

	"elevate-backend/application/ports"
	"elevate-backend/domain/entity"
)

// viewerSavedIDs loads the set of profile ids a viewer has bookmarked, or
// nil when no viewer was given.
func viewerSavedIDs(ctx context.Context, store ports.EntityStore, viewerType entity.Type, viewerID string) (map[string]bool, error) {
	if viewerID == "" {
		return nil, nil
	}
	markers, err := store.Query(ctx,
		entity.HashKey(viewerType, viewerID),
		entity.SavedProfileRangeKeyPrefix(viewerType),
	)
	if err != nil {
		return nil, err
	}
	return entity.SavedProfileIDSet(markers)
}
