package entity

import (
	"fmt"
	"strings"

	"elevate-backend/pkg/errors"
)

// Page identifies one facet of an entity stored as its own item.
type Page string

const (
	PageMetadata           Page = "METADATA"
	PageContacts           Page = "CONTACTS"
	PageFounders           Page = "FOUNDERS"
	PageMilestones         Page = "MILESTONES"
	PageInvestmentCriteria Page = "INVESTMENT_CRITERIA"
	PagePortfolio          Page = "PORTFOLIO"
)

const (
	// RequestRangeKeyPrefix prefixes the sort key of every name change
	// request item.
	RequestRangeKeyPrefix = "REQUEST#NAME_CHANGE#"

	savedProfileDiscriminator = "SAVED_PROFILE"
)

// HashKey builds the partition key shared by all items of an entity,
// e.g. "STARTUP#1f3a...".
func HashKey(entityType Type, entityID string) string {
	return fmt.Sprintf("%s#%s", entityType, entityID)
}

// PageRangeKey builds the sort key of a page item, e.g. "STARTUP#METADATA".
func PageRangeKey(entityType Type, page Page) string {
	return fmt.Sprintf("%s#%s", entityType, page)
}

// RequestRangeKey builds the sort key of a name change request item.
func RequestRangeKey(requestID string) string {
	return RequestRangeKeyPrefix + requestID
}

// SavedProfileRangeKey builds the sort key of a saved profile marker,
// e.g. "ENABLER#SAVED_PROFILE#STARTUP#1f3a...".
func SavedProfileRangeKey(entityType, profileType Type, profileID string) string {
	return fmt.Sprintf("%s#%s#%s#%s", entityType, savedProfileDiscriminator, profileType, profileID)
}

// SavedProfileRangeKeyPrefix builds the sort key prefix that selects every
// saved profile marker owned by an entity of the given type.
func SavedProfileRangeKeyPrefix(entityType Type) string {
	return fmt.Sprintf("%s#%s#", entityType, savedProfileDiscriminator)
}

// TypeRangeKeyPrefix selects every page item of a given entity type,
// excluding request and suggestion rows.
func TypeRangeKeyPrefix(entityType Type) string {
	return string(entityType) + "#"
}

// ParseHashKey splits a partition key back into entity type and id. A key
// without a separator means the table holds rows this codebase never wrote,
// so the error must propagate instead of being skipped.
func ParseHashKey(key string) (Type, string, error) {
	entityType, entityID, ok := strings.Cut(key, "#")
	if !ok || entityType == "" || entityID == "" {
		return "", "", errors.NewMalformedKeyError(key)
	}
	return Type(entityType), entityID, nil
}

// ParseSavedProfileRangeKey extracts the referenced profile type and id from
// a saved profile marker sort key.
func ParseSavedProfileRangeKey(key string) (Type, string, error) {
	parts := strings.Split(key, "#")
	if len(parts) != 4 || parts[1] != savedProfileDiscriminator {
		return "", "", errors.NewMalformedKeyError(key)
	}
	return Type(parts[2]), parts[3], nil
}

// IsRequestRangeKey reports whether the sort key belongs to a name change
// request item.
func IsRequestRangeKey(key string) bool {
	return strings.HasPrefix(key, RequestRangeKeyPrefix)
}

// IsSavedProfileRangeKey reports whether the sort key belongs to a saved
// profile marker.
func IsSavedProfileRangeKey(key string) bool {
	parts := strings.SplitN(key, "#", 3)
	return len(parts) == 3 && parts[1] == savedProfileDiscriminator
}
