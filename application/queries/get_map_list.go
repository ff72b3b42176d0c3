package queries

import "elevate-backend/domain/entity"

// GetMapListQuery fetches both entity populations plus the totals the map
// screen renders. The admin variant includes hidden profiles and counts the
// whole table; the public variant counts only what it shows.
type GetMapListQuery struct {
	IncludeHidden bool `json:"includeHidden,omitempty"`
}

// Validate checks the query invariants.
func (q GetMapListQuery) Validate() error {
	return nil
}

// MapList is the result of GetMapListQuery.
type MapList struct {
	Startups []*entity.Entity `json:"startups"`
	Enablers []*entity.Entity `json:"enablers"`

	// RequestList is the flat pending request list the admin map renders
	// next to the populations. Absent from the public payload.
	RequestList []*entity.NameChangeRequest `json:"requestList,omitempty"`

	entity.Counts
}
