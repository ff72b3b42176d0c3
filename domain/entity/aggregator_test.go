package entity_test

import (
	"testing"

	"elevate-backend/domain/entity"
	"elevate-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scanFixture returns a mixed scan: two startups (one hidden), one enabler,
// one pending and one settled request, and a bookmark-only partition.
func scanFixture() []entity.Item {
	return []entity.Item{
		{HashKey: "STARTUP#s-1", RangeKey: "STARTUP#METADATA", StartUpName: "Acme"},
		{HashKey: "STARTUP#s-1", RangeKey: "STARTUP#CONTACTS",
			Contacts: []entity.Contact{{Platform: "website", Value: "https://acme.ph"}}},
		{HashKey: "STARTUP#s-2", RangeKey: "STARTUP#METADATA", StartUpName: "Stealth", Visibility: boolPtr(false)},
		{HashKey: "ENABLER#e-1", RangeKey: "ENABLER#METADATA", EnablerName: "Seed Fund"},
		{HashKey: "STARTUP#s-1", RangeKey: entity.RequestRangeKey("req-1"),
			RequestID: "req-1", NewName: "Acme Labs", OriginalName: "Acme"},
		{HashKey: "STARTUP#s-2", RangeKey: entity.RequestRangeKey("req-2"),
			RequestID: "req-2", IsApproved: boolPtr(false)},
		{HashKey: "ENABLER#e-2", RangeKey: entity.SavedProfileRangeKey(entity.TypeEnabler, entity.TypeStartup, "s-1")},
	}
}

func TestAggregateAdminView(t *testing.T) {
	res, err := entity.Aggregate(scanFixture(), entity.AggregateOptions{
		CountPolicy: entity.CountAll,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Counts.Startups)
	assert.Equal(t, 1, res.Counts.Enablers)
	assert.Equal(t, 1, res.Counts.PendingRequests)

	// First-seen partition order, bookmark-only partition dropped.
	require.Len(t, res.Entities, 3)
	assert.Equal(t, "s-1", res.Entities[0].EntityID)
	assert.Equal(t, "s-2", res.Entities[1].EntityID)
	assert.Equal(t, "e-1", res.Entities[2].EntityID)

	require.Len(t, res.Requests, 1)
	assert.Equal(t, "req-1", res.Requests[0].RequestID)
}

func TestAggregateVisibleOnlyHidesButStillCounts(t *testing.T) {
	res, err := entity.Aggregate(scanFixture(), entity.AggregateOptions{
		VisibleOnly: true,
		CountPolicy: entity.CountAll,
	})
	require.NoError(t, err)

	require.Len(t, res.Entities, 2)
	assert.Equal(t, "s-1", res.Entities[0].EntityID)
	assert.Equal(t, "e-1", res.Entities[1].EntityID)

	// CountAll keeps the hidden startup in the total.
	assert.Equal(t, 2, res.Counts.Startups)
}

func TestAggregateCountVisible(t *testing.T) {
	res, err := entity.Aggregate(scanFixture(), entity.AggregateOptions{
		VisibleOnly: true,
		CountPolicy: entity.CountVisible,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Counts.Startups)
	assert.Equal(t, 1, res.Counts.Enablers)
}

func TestAggregateTypeFilter(t *testing.T) {
	typ := entity.TypeStartup
	res, err := entity.Aggregate(scanFixture(), entity.AggregateOptions{
		TypeFilter:  &typ,
		CountPolicy: entity.CountAll,
	})
	require.NoError(t, err)

	require.Len(t, res.Entities, 2)
	for _, e := range res.Entities {
		assert.Equal(t, entity.TypeStartup, e.EntityType)
	}
	assert.Equal(t, 0, res.Counts.Enablers)

	// The prefix filter also drops request rows, so none are counted.
	assert.Equal(t, 0, res.Counts.PendingRequests)
}

func TestAggregateSavedProfileFlag(t *testing.T) {
	res, err := entity.Aggregate(scanFixture(), entity.AggregateOptions{
		CountPolicy:     entity.CountAll,
		SavedProfileIDs: map[string]bool{"s-1": true},
	})
	require.NoError(t, err)

	byID := map[string]*entity.Entity{}
	for _, e := range res.Entities {
		byID[e.EntityID] = e
	}
	assert.True(t, byID["s-1"].IsSaved)
	assert.False(t, byID["s-2"].IsSaved)
}

func TestAggregateMalformedKeyAborts(t *testing.T) {
	items := []entity.Item{
		{HashKey: "garbage", RangeKey: "STARTUP#METADATA"},
	}
	_, err := entity.Aggregate(items, entity.AggregateOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsMalformedKey(err))
}

func TestSavedProfileIDSet(t *testing.T) {
	markers := []entity.Item{
		{RangeKey: entity.SavedProfileRangeKey(entity.TypeEnabler, entity.TypeStartup, "s-1")},
		{RangeKey: entity.SavedProfileRangeKey(entity.TypeEnabler, entity.TypeEnabler, "e-9")},
		{RangeKey: "ENABLER#METADATA"},
	}
	ids, err := entity.SavedProfileIDSet(markers)
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"s-1": true, "e-9": true}, ids)
}
