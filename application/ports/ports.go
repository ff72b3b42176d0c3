// Package ports defines the interfaces the application layer depends on.
// Infrastructure provides the implementations; the core never initiates I/O
// on its own.
package ports

import (
	"context"

	"elevate-backend/domain/entity"
)

// ScanOptions narrow a table scan. Zero value scans the base table whole.
type ScanOptions struct {
	// IndexName selects a secondary index for the enumeration.
	IndexName string

	// RangeKeyPrefix filters rows whose sort key begins with the prefix.
	RangeKeyPrefix string

	// RangeKeyContains filters rows whose sort key contains the substring.
	RangeKeyContains string

	// IsApproved filters request rows by approval state when set.
	IsApproved *bool
}

// EntityStore is the abstract single-table store the core shapes requests
// for. Implementations surface failures as pkg/errors AppErrors: NOT_FOUND
// for a missing Get target, CONDITIONAL_WRITE_FAILED for precondition
// misses, STORE for everything else.
type EntityStore interface {
	Get(ctx context.Context, key entity.Key) (*entity.Item, error)
	Query(ctx context.Context, hashKey, rangeKeyPrefix string) ([]entity.Item, error)
	Scan(ctx context.Context, opts ScanOptions) ([]entity.Item, error)
	BatchGet(ctx context.Context, keys []entity.Key) ([]entity.Item, error)

	// Write applies a planned write set. Atomic sets are applied
	// all-or-nothing; partial application must never be observable.
	Write(ctx context.Context, set entity.WriteSet) error
}

// Notification is the payload handed to the email sender when a name change
// request changes state.
type Notification struct {
	TemplateType string      `json:"email_template_type"`
	EntityType   entity.Type `json:"entity_type"`
	EntityName   string      `json:"entity_name"`
	OldName      string      `json:"old_name"`
	NewName      string      `json:"new_name"`
	To           []string    `json:"to"`
}

// Notification template types consumed by the email sender.
const (
	TemplateNameChangeReceived = "name_change_request_received"
	TemplateNameChangeApproved = "name_change_request_approved"
	TemplateNameChangeRejected = "name_change_request_rejected"
)

// NotificationPublisher hands name change lifecycle notifications to the
// outbound dispatch channel. Delivery is someone else's problem; publish
// failures are logged, never propagated into the mutation result.
type NotificationPublisher interface {
	Publish(ctx context.Context, n Notification) error
}
