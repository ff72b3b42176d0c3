// Package handlers contains the command handlers. Each one validates its
// command, asks the planner for a write set, and applies it through the
// store port. Handlers never talk to the table directly.
package handlers

import (
	"elevate-backend/domain/entity"
)

// metadataKey addresses the METADATA item of one entity.
func metadataKey(entityType entity.Type, entityID string) entity.Key {
	return entity.Key{
		HashKey:  entity.HashKey(entityType, entityID),
		RangeKey: entity.PageRangeKey(entityType, entity.PageMetadata),
	}
}

// metadataName reads the display name off a raw METADATA item.
func metadataName(it *entity.Item, entityType entity.Type) string {
	if entityType == entity.TypeStartup {
		return it.StartUpName
	}
	return it.EnablerName
}
