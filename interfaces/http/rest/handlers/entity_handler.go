// Package handlers exposes the application operations over HTTP for
// non-GraphQL clients and internal tooling.
package handlers

import (
	"net/http"

	"elevate-backend/application/commands"
	cmdhandlers "elevate-backend/application/commands/handlers"
	"elevate-backend/application/queries"
	qryhandlers "elevate-backend/application/queries/handlers"
	"elevate-backend/domain/entity"
	"elevate-backend/pkg/common"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// EntityHandler serves the profile CRUD and bookmark endpoints.
type EntityHandler struct {
	create        *cmdhandlers.CreateEntityHandler
	update        *cmdhandlers.UpdateEntityHandler
	requestRename *cmdhandlers.RequestNameChangeHandler
	save          *cmdhandlers.SaveProfileHandler
	unsave        *cmdhandlers.UnsaveProfileHandler

	getProfile    *qryhandlers.GetEntityProfileHandler
	list          *qryhandlers.ListEntitiesHandler
	mapList       *qryhandlers.GetMapListHandler
	savedProfiles *qryhandlers.GetSavedProfilesHandler

	logger *zap.Logger
}

// NewEntityHandler creates a new entity handler
func NewEntityHandler(
	create *cmdhandlers.CreateEntityHandler,
	update *cmdhandlers.UpdateEntityHandler,
	requestRename *cmdhandlers.RequestNameChangeHandler,
	save *cmdhandlers.SaveProfileHandler,
	unsave *cmdhandlers.UnsaveProfileHandler,
	getProfile *qryhandlers.GetEntityProfileHandler,
	list *qryhandlers.ListEntitiesHandler,
	mapList *qryhandlers.GetMapListHandler,
	savedProfiles *qryhandlers.GetSavedProfilesHandler,
	logger *zap.Logger,
) *EntityHandler {
	return &EntityHandler{
		create:        create,
		update:        update,
		requestRename: requestRename,
		save:          save,
		unsave:        unsave,
		getProfile:    getProfile,
		list:          list,
		mapList:       mapList,
		savedProfiles: savedProfiles,
		logger:        logger,
	}
}

// pathEntityType resolves the {entityType} route segment.
func pathEntityType(r *http.Request) (entity.Type, bool) {
	switch chi.URLParam(r, "entityType") {
	case "startups":
		return entity.TypeStartup, true
	case "enablers":
		return entity.TypeEnabler, true
	}
	return "", false
}

// Create handles POST /{entityType}
func (h *EntityHandler) Create(w http.ResponseWriter, r *http.Request) {
	entityType, ok := pathEntityType(r)
	if !ok {
		common.RespondError(w, http.StatusNotFound, "NOT_FOUND", "unknown entity collection")
		return
	}

	var input entity.Input
	if err := common.ParseJSONBody(r, &input, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "malformed request body")
		return
	}

	entityID, err := h.create.Handle(r.Context(), commands.CreateEntityCommand{
		EntityType: entityType,
		Input:      input,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, common.MutationResponse{
		ID:      entityID,
		Message: entityType.TypeName() + " created successfully",
		Success: true,
	})
}

// Update handles PUT /{entityType}/{entityID}
func (h *EntityHandler) Update(w http.ResponseWriter, r *http.Request) {
	entityType, ok := pathEntityType(r)
	if !ok {
		common.RespondError(w, http.StatusNotFound, "NOT_FOUND", "unknown entity collection")
		return
	}
	entityID := chi.URLParam(r, "entityID")

	var input entity.Input
	if err := common.ParseJSONBody(r, &input, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "malformed request body")
		return
	}

	err := h.update.Handle(r.Context(), commands.UpdateEntityCommand{
		EntityType: entityType,
		EntityID:   entityID,
		Input:      input,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, common.MutationResponse{
		ID:      entityID,
		Message: entityType.TypeName() + " updated successfully",
		Success: true,
	})
}

// Get handles GET /{entityType}/{entityID}
func (h *EntityHandler) Get(w http.ResponseWriter, r *http.Request) {
	entityType, ok := pathEntityType(r)
	if !ok {
		common.RespondError(w, http.StatusNotFound, "NOT_FOUND", "unknown entity collection")
		return
	}

	q := queries.GetEntityProfileQuery{
		EntityType: entityType,
		EntityID:   chi.URLParam(r, "entityID"),
		ViewerType: entity.Type(r.URL.Query().Get("viewerType")),
		ViewerID:   r.URL.Query().Get("viewerId"),
	}
	profile, err := h.getProfile.Handle(r.Context(), q)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, profile)
}

// List handles GET /{entityType}
func (h *EntityHandler) List(w http.ResponseWriter, r *http.Request) {
	entityType, ok := pathEntityType(r)
	if !ok {
		common.RespondError(w, http.StatusNotFound, "NOT_FOUND", "unknown entity collection")
		return
	}

	result, err := h.list.Handle(r.Context(), queries.ListEntitiesQuery{
		EntityType: entityType,
		ViewerType: entity.Type(r.URL.Query().Get("viewerType")),
		ViewerID:   r.URL.Query().Get("viewerId"),
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// MapList handles GET /map
func (h *EntityHandler) MapList(w http.ResponseWriter, r *http.Request) {
	result, err := h.mapList.Handle(r.Context(), queries.GetMapListQuery{})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// RequestNameChange handles POST /name-change-requests
func (h *EntityHandler) RequestNameChange(w http.ResponseWriter, r *http.Request) {
	var cmd commands.RequestNameChangeCommand
	if err := common.ParseJSONBody(r, &cmd, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "malformed request body")
		return
	}

	requestID, err := h.requestRename.Handle(r.Context(), cmd)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, common.MutationResponse{
		ID:      requestID,
		Message: "name change request submitted",
		Success: true,
	})
}

// SaveProfile handles POST /saved-profiles
func (h *EntityHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var cmd commands.SaveProfileCommand
	if err := common.ParseJSONBody(r, &cmd, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "malformed request body")
		return
	}

	if err := h.save.Handle(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusCreated, common.MutationResponse{
		ID:      cmd.ProfileID,
		Message: "profile saved",
		Success: true,
	})
}

// UnsaveProfile handles DELETE /saved-profiles
func (h *EntityHandler) UnsaveProfile(w http.ResponseWriter, r *http.Request) {
	var cmd commands.UnsaveProfileCommand
	if err := common.ParseJSONBody(r, &cmd, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "malformed request body")
		return
	}

	if err := h.unsave.Handle(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, common.MutationResponse{
		ID:      cmd.ProfileID,
		Message: "profile removed from saved",
		Success: true,
	})
}

// SavedProfiles handles GET /saved-profiles
func (h *EntityHandler) SavedProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.savedProfiles.Handle(r.Context(), queries.GetSavedProfilesQuery{
		OwnerType: entity.Type(r.URL.Query().Get("entityType")),
		OwnerID:   r.URL.Query().Get("entityId"),
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, profiles)
}
