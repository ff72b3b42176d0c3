package entity

import "strings"

// CountPolicy names how type totals treat entities hidden by the visibility
// filter. The source resolvers disagreed on this, so the caller pins the
// semantics explicitly.
type CountPolicy int

const (
	// CountAll counts every scanned entity in its type total, including
	// those the visibility filter excludes from the returned list. Admin
	// views use this: the totals describe the table.
	CountAll CountPolicy = iota

	// CountVisible counts only entities that survive the visibility filter.
	// Public views use this: the totals describe what the caller sees.
	CountVisible
)

// Counts are the aggregate totals computed in the same pass as grouping.
type Counts struct {
	Startups        int `json:"startupLength"`
	Enablers        int `json:"enablersLength"`
	PendingRequests int `json:"pendingRequestsLen"`
}

// AggregateOptions tune one aggregation pass.
type AggregateOptions struct {
	// TypeFilter keeps only page items of one entity type. Matches the
	// scan-side filter (rangeKey prefix), so request and marker rows drop
	// out too.
	TypeFilter *Type

	// VisibleOnly excludes entities whose assembled visibility is false
	// from the returned sequence. CountPolicy decides whether they still
	// count.
	VisibleOnly bool
	CountPolicy CountPolicy

	// SavedProfileIDs, when non-nil, is the set of profile ids the calling
	// entity has bookmarked; each assembled entity gets its IsSaved flag
	// from membership.
	SavedProfileIDs map[string]bool
}

// Result is the output of one aggregation pass.
type Result struct {
	Entities []*Entity
	Requests []*NameChangeRequest
	Counts   Counts
}

type group struct {
	entityType Type
	entityID   string
	items      []Item
	pages      bool
	meta       bool
}

// Aggregate groups a scanned item set by partition key, assembles each group
// into an entity, and computes type totals plus the pending request count in
// the same O(n) pass. Partition keys keep their first-seen order so output
// is deterministic for a given scan. Pending requests are also surfaced as a
// flat list for admin views.
func Aggregate(items []Item, opts AggregateOptions) (*Result, error) {
	groups := make(map[string]*group)
	order := make([]string, 0)
	res := &Result{Entities: []*Entity{}, Requests: []*NameChangeRequest{}}

	for i := range items {
		it := &items[i]

		if opts.TypeFilter != nil && !strings.HasPrefix(it.RangeKey, TypeRangeKeyPrefix(*opts.TypeFilter)) {
			continue
		}

		entityType, entityID, err := ParseHashKey(it.HashKey)
		if err != nil {
			return nil, err
		}

		g, ok := groups[it.HashKey]
		if !ok {
			g = &group{entityType: entityType, entityID: entityID}
			groups[it.HashKey] = g
			order = append(order, it.HashKey)
		}
		g.items = append(g.items, *it)

		switch {
		case IsRequestRangeKey(it.RangeKey):
			g.pages = true
			if it.IsApproved == nil {
				res.Counts.PendingRequests++
				res.Requests = append(res.Requests, it.RequestItem(entityType, entityID))
			}
		case !IsSavedProfileRangeKey(it.RangeKey):
			g.pages = true
			if it.RangeKey == PageRangeKey(entityType, PageMetadata) {
				g.meta = true
			}
		}
	}

	for _, hashKey := range order {
		g := groups[hashKey]
		if !g.pages {
			// Partition held nothing but bookmark markers.
			continue
		}

		e, err := Assemble(g.entityType, g.entityID, g.items)
		if err != nil {
			return nil, err
		}
		if opts.SavedProfileIDs != nil {
			e.IsSaved = opts.SavedProfileIDs[e.EntityID]
		}

		hidden := opts.VisibleOnly && !e.Visibility
		if g.meta && (!hidden || opts.CountPolicy == CountAll) {
			switch e.EntityType {
			case TypeStartup:
				res.Counts.Startups++
			case TypeEnabler:
				res.Counts.Enablers++
			}
		}
		if !hidden {
			res.Entities = append(res.Entities, e)
		}
	}

	return res, nil
}

// SavedProfileIDSet extracts the referenced profile ids from a caller's
// bookmark marker items, for feeding AggregateOptions.SavedProfileIDs.
func SavedProfileIDSet(markers []Item) (map[string]bool, error) {
	ids := make(map[string]bool, len(markers))
	for i := range markers {
		if !IsSavedProfileRangeKey(markers[i].RangeKey) {
			continue
		}
		_, profileID, err := ParseSavedProfileRangeKey(markers[i].RangeKey)
		if err != nil {
			return nil, err
		}
		ids[profileID] = true
	}
	return ids, nil
}
