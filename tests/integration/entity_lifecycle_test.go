package integration

import (
	"context"
	"fmt"
	"testing"

	"elevate-backend/application/commands"
	cmdhandlers "elevate-backend/application/commands/handlers"
	"elevate-backend/application/ports"
	"elevate-backend/application/queries"
	qryhandlers "elevate-backend/application/queries/handlers"
	"elevate-backend/domain/entity"
	"elevate-backend/infrastructure/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// world bundles the full handler graph over one in-memory store, the same
// shape the DI container wires in production.
type world struct {
	store *memory.EntityStore

	create        *cmdhandlers.CreateEntityHandler
	update        *cmdhandlers.UpdateEntityHandler
	requestRename *cmdhandlers.RequestNameChangeHandler
	respondRename *cmdhandlers.RespondNameChangeHandler
	save          *cmdhandlers.SaveProfileHandler
	unsave        *cmdhandlers.UnsaveProfileHandler
	resetFlags    *cmdhandlers.ResetSuggestionFlagsHandler

	getProfile    *qryhandlers.GetEntityProfileHandler
	list          *qryhandlers.ListEntitiesHandler
	mapList       *qryhandlers.GetMapListHandler
	savedProfiles *qryhandlers.GetSavedProfilesHandler
	listRequests  *qryhandlers.ListNameChangeRequestsHandler

	notifications []ports.Notification
}

type seqIDs struct {
	ids    int
	tokens int
}

func (s *seqIDs) NewID() string {
	s.ids++
	return fmt.Sprintf("id-%d", s.ids)
}

func (s *seqIDs) NewToken() string {
	s.tokens++
	return fmt.Sprintf("token-%02d", s.tokens)
}

type fixedClock struct{}

func (fixedClock) NowISO8601() string { return "2024-06-01T00:00:00Z" }

func (w *world) Publish(ctx context.Context, n ports.Notification) error {
	w.notifications = append(w.notifications, n)
	return nil
}

func newWorld() *world {
	w := &world{store: memory.NewEntityStore()}
	logger := zap.NewNop()
	planner := entity.NewPlanner(&seqIDs{}, fixedClock{})

	w.create = cmdhandlers.NewCreateEntityHandler(w.store, planner, logger)
	w.update = cmdhandlers.NewUpdateEntityHandler(w.store, planner, logger)
	w.requestRename = cmdhandlers.NewRequestNameChangeHandler(w.store, planner, w, logger)
	w.respondRename = cmdhandlers.NewRespondNameChangeHandler(w.store, planner, w, logger)
	w.save = cmdhandlers.NewSaveProfileHandler(w.store, planner, logger)
	w.unsave = cmdhandlers.NewUnsaveProfileHandler(w.store, planner, logger)
	w.resetFlags = cmdhandlers.NewResetSuggestionFlagsHandler(w.store, planner, logger)

	w.getProfile = qryhandlers.NewGetEntityProfileHandler(w.store, logger)
	w.list = qryhandlers.NewListEntitiesHandler(w.store, "GSI1", logger)
	w.mapList = qryhandlers.NewGetMapListHandler(w.store, "GSI1", logger)
	w.savedProfiles = qryhandlers.NewGetSavedProfilesHandler(w.store, logger)
	w.listRequests = qryhandlers.NewListNameChangeRequestsHandler(w.store, "GSI2", logger)

	return w
}

func strPtr(v string) *string { return &v }

func TestEntityLifecycle(t *testing.T) {
	ctx := context.Background()
	w := newWorld()

	// Register a startup with two pages and an enabler.
	startupID, err := w.create.Handle(ctx, commands.CreateEntityCommand{
		EntityType: entity.TypeStartup,
		Input: entity.Input{
			DisplayName: strPtr("Acme"),
			Email:       strPtr("founder@acme.ph"),
			Industries:  []string{"fintech"},
			Founders:    []entity.Founder{{FounderID: "f-1", Name: "Ana"}},
		},
	})
	require.NoError(t, err)

	enablerID, err := w.create.Handle(ctx, commands.CreateEntityCommand{
		EntityType: entity.TypeEnabler,
		Input: entity.Input{
			DisplayName:      strPtr("Seed Fund"),
			OrganizationType: []string{"VC"},
		},
	})
	require.NoError(t, err)

	// A profile update marks the startup for suggestion regeneration.
	err = w.update.Handle(ctx, commands.UpdateEntityCommand{
		EntityType: entity.TypeStartup,
		EntityID:   startupID,
		Input:      entity.Input{Description: strPtr("B2B payments")},
	})
	require.NoError(t, err)

	profile, err := w.getProfile.Handle(ctx, queries.GetEntityProfileQuery{
		EntityType: entity.TypeStartup,
		EntityID:   startupID,
	})
	require.NoError(t, err)
	assert.Equal(t, "B2B payments", profile.Description)
	assert.True(t, profile.ForSuggestionGeneration)
	assert.Len(t, profile.Founders, 1)

	// The enabler bookmarks the startup and sees it flagged in listings.
	err = w.save.Handle(ctx, commands.SaveProfileCommand{
		OwnerType:   entity.TypeEnabler,
		OwnerID:     enablerID,
		ProfileType: entity.TypeStartup,
		ProfileID:   startupID,
	})
	require.NoError(t, err)

	listing, err := w.list.Handle(ctx, queries.ListEntitiesQuery{
		EntityType: entity.TypeStartup,
		ViewerType: entity.TypeEnabler,
		ViewerID:   enablerID,
	})
	require.NoError(t, err)
	require.Len(t, listing.Entities, 1)
	assert.True(t, listing.Entities[0].IsSaved)

	saved, err := w.savedProfiles.Handle(ctx, queries.GetSavedProfilesQuery{
		OwnerType: entity.TypeEnabler,
		OwnerID:   enablerID,
	})
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, startupID, saved[0].EntityID)

	// The rename workflow: request, surface on the profile, approve.
	requestID, err := w.requestRename.Handle(ctx, commands.RequestNameChangeCommand{
		EntityType: entity.TypeStartup,
		EntityID:   startupID,
		NewName:    "Acme Labs",
	})
	require.NoError(t, err)

	profile, err = w.getProfile.Handle(ctx, queries.GetEntityProfileQuery{
		EntityType: entity.TypeStartup,
		EntityID:   startupID,
	})
	require.NoError(t, err)
	require.NotNil(t, profile.NameChangeRequestStatus)
	assert.Equal(t, "PENDING", profile.NameChangeRequestStatus.Status())

	pending, err := w.listRequests.Handle(ctx, queries.ListNameChangeRequestsQuery{
		Status: queries.StatusPending,
	})
	require.NoError(t, err)
	require.Len(t, pending, 1)

	err = w.respondRename.Handle(ctx, commands.RespondNameChangeCommand{
		EntityType: entity.TypeStartup,
		EntityID:   startupID,
		RequestID:  requestID,
		Approved:   true,
	})
	require.NoError(t, err)

	// The rename applied and the pending marker is gone.
	profile, err = w.getProfile.Handle(ctx, queries.GetEntityProfileQuery{
		EntityType: entity.TypeStartup,
		EntityID:   startupID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Labs", profile.StartUpName)
	assert.Nil(t, profile.NameChangeRequestStatus)

	pending, err = w.listRequests.Handle(ctx, queries.ListNameChangeRequestsQuery{
		Status: queries.StatusPending,
	})
	require.NoError(t, err)
	assert.Empty(t, pending)

	// Both lifecycle transitions notified the owner.
	require.Len(t, w.notifications, 2)
	assert.Equal(t, ports.TemplateNameChangeReceived, w.notifications[0].TemplateType)
	assert.Equal(t, ports.TemplateNameChangeApproved, w.notifications[1].TemplateType)
	assert.Equal(t, []string{"founder@acme.ph"}, w.notifications[0].To)

	// The map shows both populations and no pending requests remain.
	mapList, err := w.mapList.Handle(ctx, queries.GetMapListQuery{})
	require.NoError(t, err)
	assert.Len(t, mapList.Startups, 1)
	assert.Len(t, mapList.Enablers, 1)
	assert.Equal(t, 0, mapList.Counts.PendingRequests)

	// The suggestion generator consumes the flag raised by the update.
	count, err := w.resetFlags.Handle(ctx, commands.ResetSuggestionFlagsCommand{
		EntityType: entity.TypeStartup,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// Unsave empties the bookmark list again.
	err = w.unsave.Handle(ctx, commands.UnsaveProfileCommand{
		OwnerType:   entity.TypeEnabler,
		OwnerID:     enablerID,
		ProfileType: entity.TypeStartup,
		ProfileID:   startupID,
	})
	require.NoError(t, err)

	saved, err = w.savedProfiles.Handle(ctx, queries.GetSavedProfilesQuery{
		OwnerType: entity.TypeEnabler,
		OwnerID:   enablerID,
	})
	require.NoError(t, err)
	assert.Empty(t, saved)
}
