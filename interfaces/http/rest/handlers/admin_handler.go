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

// AdminHandler serves the review-desk endpoints: hidden-inclusive listings,
// request review, and suggestion flag maintenance.
type AdminHandler struct {
	respond    *cmdhandlers.RespondNameChangeHandler
	resetFlags *cmdhandlers.ResetSuggestionFlagsHandler

	list         *qryhandlers.ListEntitiesHandler
	mapList      *qryhandlers.GetMapListHandler
	listRequests *qryhandlers.ListNameChangeRequestsHandler
	getRequest   *qryhandlers.GetNameChangeRequestHandler

	logger *zap.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(
	respond *cmdhandlers.RespondNameChangeHandler,
	resetFlags *cmdhandlers.ResetSuggestionFlagsHandler,
	list *qryhandlers.ListEntitiesHandler,
	mapList *qryhandlers.GetMapListHandler,
	listRequests *qryhandlers.ListNameChangeRequestsHandler,
	getRequest *qryhandlers.GetNameChangeRequestHandler,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		respond:      respond,
		resetFlags:   resetFlags,
		list:         list,
		mapList:      mapList,
		listRequests: listRequests,
		getRequest:   getRequest,
		logger:       logger,
	}
}

// MapList handles GET /admin/map
func (h *AdminHandler) MapList(w http.ResponseWriter, r *http.Request) {
	result, err := h.mapList.Handle(r.Context(), queries.GetMapListQuery{IncludeHidden: true})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// List handles GET /admin/{entityType}
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	entityType, ok := pathEntityType(r)
	if !ok {
		common.RespondError(w, http.StatusNotFound, "NOT_FOUND", "unknown entity collection")
		return
	}

	result, err := h.list.Handle(r.Context(), queries.ListEntitiesQuery{
		EntityType:    entityType,
		IncludeHidden: true,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// ListRequests handles GET /admin/name-change-requests
func (h *AdminHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.listRequests.Handle(r.Context(), queries.ListNameChangeRequestsQuery{
		Status: r.URL.Query().Get("status"),
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, requests)
}

// GetRequest handles GET /admin/name-change-requests/{requestID}
func (h *AdminHandler) GetRequest(w http.ResponseWriter, r *http.Request) {
	request, err := h.getRequest.Handle(r.Context(), queries.GetNameChangeRequestQuery{
		EntityType: entity.Type(r.URL.Query().Get("entityType")),
		EntityID:   r.URL.Query().Get("entityId"),
		RequestID:  chi.URLParam(r, "requestID"),
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, request)
}

// RespondRequest handles POST /admin/name-change-requests/{requestID}/respond
func (h *AdminHandler) RespondRequest(w http.ResponseWriter, r *http.Request) {
	var body struct {
		EntityType entity.Type `json:"entityType"`
		EntityID   string      `json:"entityId"`
		Approved   bool        `json:"approved"`
	}
	if err := common.ParseJSONBody(r, &body, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "malformed request body")
		return
	}

	requestID := chi.URLParam(r, "requestID")
	err := h.respond.Handle(r.Context(), commands.RespondNameChangeCommand{
		EntityType: body.EntityType,
		EntityID:   body.EntityID,
		RequestID:  requestID,
		Approved:   body.Approved,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	message := "name change request rejected"
	if body.Approved {
		message = "name change request approved"
	}
	common.RespondJSON(w, http.StatusOK, common.MutationResponse{
		ID:      requestID,
		Message: message,
		Success: true,
	})
}

// ResetSuggestionFlags handles POST /admin/suggestion-flags/reset
func (h *AdminHandler) ResetSuggestionFlags(w http.ResponseWriter, r *http.Request) {
	var body struct {
		EntityType entity.Type `json:"entityType"`
	}
	if err := common.ParseJSONBody(r, &body, maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "malformed request body")
		return
	}

	count, err := h.resetFlags.Handle(r.Context(), commands.ResetSuggestionFlagsCommand{
		EntityType: body.EntityType,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"count":   count,
		"success": true,
	})
}
