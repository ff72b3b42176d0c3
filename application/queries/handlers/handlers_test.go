package handlers_test

import (
	"context"
	"testing"

	"elevate-backend/application/queries"
	"elevate-backend/application/queries/handlers"
	"elevate-backend/domain/entity"
	"elevate-backend/infrastructure/persistence/memory"
	"elevate-backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testIndex = "GSI1"

func boolPtr(v bool) *bool { return &v }

// seedWorld populates a small cross-section of the table: two startups (one
// hidden), one enabler that bookmarked the visible startup, and one pending
// plus one rejected request.
func seedWorld(store *memory.EntityStore) {
	store.Seed(
		entity.Item{
			HashKey: "STARTUP#s-1", RangeKey: "STARTUP#METADATA",
			StartupID: "s-1", StartUpName: "Acme", Email: "founder@acme.ph",
			CreatedAt: "2024-01-01T00:00:00Z",
		},
		entity.Item{
			HashKey: "STARTUP#s-1", RangeKey: "STARTUP#CONTACTS",
			Contacts: []entity.Contact{{Platform: "website", Value: "https://acme.ph"}},
		},
		entity.Item{
			HashKey: "STARTUP#s-2", RangeKey: "STARTUP#METADATA",
			StartupID: "s-2", StartUpName: "Stealth", Visibility: boolPtr(false),
		},
		entity.Item{
			HashKey: "ENABLER#e-1", RangeKey: "ENABLER#METADATA",
			EnablerID: "e-1", EnablerName: "Seed Fund",
		},
		entity.Item{
			HashKey:  "ENABLER#e-1",
			RangeKey: entity.SavedProfileRangeKey(entity.TypeEnabler, entity.TypeStartup, "s-1"),
		},
		entity.Item{
			HashKey: "STARTUP#s-1", RangeKey: entity.RequestRangeKey("req-1"),
			RequestID: "req-1", EntityID: "s-1", EntityType: "STARTUP",
			OriginalName: "Acme", NewName: "Acme Labs",
		},
		entity.Item{
			HashKey: "STARTUP#s-2", RangeKey: entity.RequestRangeKey("req-2"),
			RequestID: "req-2", EntityID: "s-2", EntityType: "STARTUP",
			OriginalName: "Stealth", NewName: "Overt", IsApproved: boolPtr(false),
		},
	)
}

func TestGetEntityProfileHandler(t *testing.T) {
	store := memory.NewEntityStore()
	seedWorld(store)
	h := handlers.NewGetEntityProfileHandler(store, zap.NewNop())

	e, err := h.Handle(context.Background(), queries.GetEntityProfileQuery{
		EntityType: entity.TypeStartup,
		EntityID:   "s-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", e.StartUpName)
	assert.Len(t, e.Contacts, 1)
	require.NotNil(t, e.NameChangeRequestStatus)
	assert.Equal(t, "req-1", e.NameChangeRequestStatus.RequestID)
	assert.False(t, e.IsSaved)
}

func TestGetEntityProfileHandlerViewerBookmark(t *testing.T) {
	store := memory.NewEntityStore()
	seedWorld(store)
	h := handlers.NewGetEntityProfileHandler(store, zap.NewNop())

	e, err := h.Handle(context.Background(), queries.GetEntityProfileQuery{
		EntityType: entity.TypeStartup,
		EntityID:   "s-1",
		ViewerType: entity.TypeEnabler,
		ViewerID:   "e-1",
	})
	require.NoError(t, err)
	assert.True(t, e.IsSaved)
}

func TestGetEntityProfileHandlerNotFound(t *testing.T) {
	store := memory.NewEntityStore()
	h := handlers.NewGetEntityProfileHandler(store, zap.NewNop())

	_, err := h.Handle(context.Background(), queries.GetEntityProfileQuery{
		EntityType: entity.TypeStartup,
		EntityID:   "ghost",
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestListEntitiesHandlerPublicView(t *testing.T) {
	store := memory.NewEntityStore()
	seedWorld(store)
	h := handlers.NewListEntitiesHandler(store, testIndex, zap.NewNop())

	res, err := h.Handle(context.Background(), queries.ListEntitiesQuery{
		EntityType: entity.TypeStartup,
	})
	require.NoError(t, err)

	// The hidden startup is excluded and not counted.
	require.Len(t, res.Entities, 1)
	assert.Equal(t, "s-1", res.Entities[0].EntityID)
	assert.Equal(t, 1, res.Counts.Startups)
	assert.Equal(t, 0, res.Counts.Enablers)
}

func TestListEntitiesHandlerAdminView(t *testing.T) {
	store := memory.NewEntityStore()
	seedWorld(store)
	h := handlers.NewListEntitiesHandler(store, testIndex, zap.NewNop())

	res, err := h.Handle(context.Background(), queries.ListEntitiesQuery{
		EntityType:    entity.TypeStartup,
		IncludeHidden: true,
	})
	require.NoError(t, err)
	assert.Len(t, res.Entities, 2)
	assert.Equal(t, 2, res.Counts.Startups)
}

func TestListEntitiesHandlerViewerBookmarks(t *testing.T) {
	store := memory.NewEntityStore()
	seedWorld(store)
	h := handlers.NewListEntitiesHandler(store, testIndex, zap.NewNop())

	res, err := h.Handle(context.Background(), queries.ListEntitiesQuery{
		EntityType: entity.TypeStartup,
		ViewerType: entity.TypeEnabler,
		ViewerID:   "e-1",
	})
	require.NoError(t, err)
	require.Len(t, res.Entities, 1)
	assert.True(t, res.Entities[0].IsSaved)
}

func TestGetMapListHandler(t *testing.T) {
	store := memory.NewEntityStore()
	seedWorld(store)
	h := handlers.NewGetMapListHandler(store, testIndex, zap.NewNop())

	list, err := h.Handle(context.Background(), queries.GetMapListQuery{})
	require.NoError(t, err)

	require.Len(t, list.Startups, 1)
	require.Len(t, list.Enablers, 1)
	assert.Equal(t, 1, list.Counts.Startups)
	assert.Equal(t, 1, list.Counts.Enablers)
	assert.Equal(t, 1, list.Counts.PendingRequests)

	// The flat request list belongs to the admin payload only.
	assert.Nil(t, list.RequestList)
}

func TestGetMapListHandlerAdmin(t *testing.T) {
	store := memory.NewEntityStore()
	seedWorld(store)
	h := handlers.NewGetMapListHandler(store, testIndex, zap.NewNop())

	list, err := h.Handle(context.Background(), queries.GetMapListQuery{IncludeHidden: true})
	require.NoError(t, err)

	assert.Len(t, list.Startups, 2)
	assert.Equal(t, 2, list.Counts.Startups)

	// The admin map carries the pending requests flat, alongside their count.
	require.Len(t, list.RequestList, 1)
	assert.Equal(t, "req-1", list.RequestList[0].RequestID)
	assert.True(t, list.RequestList[0].Pending())
	assert.Equal(t, 1, list.Counts.PendingRequests)
}

func TestGetSavedProfilesHandler(t *testing.T) {
	store := memory.NewEntityStore()
	seedWorld(store)
	h := handlers.NewGetSavedProfilesHandler(store, zap.NewNop())

	profiles, err := h.Handle(context.Background(), queries.GetSavedProfilesQuery{
		OwnerType: entity.TypeEnabler,
		OwnerID:   "e-1",
	})
	require.NoError(t, err)
	require.Len(t, profiles, 1)
	assert.Equal(t, "s-1", profiles[0].EntityID)
	assert.Equal(t, "Acme", profiles[0].StartUpName)
	assert.True(t, profiles[0].IsSaved)
}

func TestGetSavedProfilesHandlerStaleMarkerDrops(t *testing.T) {
	store := memory.NewEntityStore()
	store.Seed(
		entity.Item{
			HashKey: "ENABLER#e-1", RangeKey: "ENABLER#METADATA",
			EnablerID: "e-1", EnablerName: "Seed Fund",
		},
		entity.Item{
			HashKey:  "ENABLER#e-1",
			RangeKey: entity.SavedProfileRangeKey(entity.TypeEnabler, entity.TypeStartup, "deleted"),
		},
	)
	h := handlers.NewGetSavedProfilesHandler(store, zap.NewNop())

	profiles, err := h.Handle(context.Background(), queries.GetSavedProfilesQuery{
		OwnerType: entity.TypeEnabler,
		OwnerID:   "e-1",
	})
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestGetSavedProfilesHandlerNoMarkers(t *testing.T) {
	store := memory.NewEntityStore()
	h := handlers.NewGetSavedProfilesHandler(store, zap.NewNop())

	profiles, err := h.Handle(context.Background(), queries.GetSavedProfilesQuery{
		OwnerType: entity.TypeEnabler,
		OwnerID:   "e-1",
	})
	require.NoError(t, err)
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)
}

func TestListNameChangeRequestsHandler(t *testing.T) {
	store := memory.NewEntityStore()
	seedWorld(store)
	h := handlers.NewListNameChangeRequestsHandler(store, "GSI2", zap.NewNop())

	all, err := h.Handle(context.Background(), queries.ListNameChangeRequestsQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	pending, err := h.Handle(context.Background(), queries.ListNameChangeRequestsQuery{
		Status: queries.StatusPending,
	})
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "req-1", pending[0].RequestID)

	rejected, err := h.Handle(context.Background(), queries.ListNameChangeRequestsQuery{
		Status: queries.StatusRejected,
	})
	require.NoError(t, err)
	require.Len(t, rejected, 1)
	assert.Equal(t, "req-2", rejected[0].RequestID)

	approved, err := h.Handle(context.Background(), queries.ListNameChangeRequestsQuery{
		Status: queries.StatusApproved,
	})
	require.NoError(t, err)
	assert.Empty(t, approved)
}

func TestListNameChangeRequestsHandlerBadStatus(t *testing.T) {
	store := memory.NewEntityStore()
	h := handlers.NewListNameChangeRequestsHandler(store, "GSI2", zap.NewNop())

	_, err := h.Handle(context.Background(), queries.ListNameChangeRequestsQuery{Status: "MAYBE"})
	require.Error(t, err)
	assert.True(t, errors.IsValidation(err))
}

func TestGetNameChangeRequestHandler(t *testing.T) {
	store := memory.NewEntityStore()
	seedWorld(store)
	h := handlers.NewGetNameChangeRequestHandler(store, zap.NewNop())

	r, err := h.Handle(context.Background(), queries.GetNameChangeRequestQuery{
		EntityType: entity.TypeStartup,
		EntityID:   "s-1",
		RequestID:  "req-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Labs", r.NewName)
	assert.Equal(t, "PENDING", r.Status())
	assert.Equal(t, "founder@acme.ph", r.Email)

	_, err = h.Handle(context.Background(), queries.GetNameChangeRequestQuery{
		EntityType: entity.TypeStartup,
		EntityID:   "s-1",
		RequestID:  "ghost",
	})
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}
