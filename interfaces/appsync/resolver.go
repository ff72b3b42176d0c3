// Package appsync adapts GraphQL field invocations into application
// commands and queries. The resolver receives the direct Lambda payload the
// API maps each field onto and answers with the field's result shape.
package appsync

import (
	"context"
	"encoding/json"
	"fmt"

	"elevate-backend/application/commands"
	cmdhandlers "elevate-backend/application/commands/handlers"
	"elevate-backend/application/queries"
	qryhandlers "elevate-backend/application/queries/handlers"
	"elevate-backend/domain/entity"
	"elevate-backend/pkg/common"
	"elevate-backend/pkg/errors"

	"go.uber.org/zap"
)

// Event is the payload each field resolver receives.
type Event struct {
	Field     string          `json:"field"`
	Arguments json.RawMessage `json:"arguments"`
	Identity  *Identity       `json:"identity,omitempty"`
}

// Identity carries the caller identity the API forwards.
type Identity struct {
	Sub    string   `json:"sub,omitempty"`
	Groups []string `json:"groups,omitempty"`
}

// Handlers bundles every application handler the resolver dispatches to.
type Handlers struct {
	CreateEntity         *cmdhandlers.CreateEntityHandler
	UpdateEntity         *cmdhandlers.UpdateEntityHandler
	RequestNameChange    *cmdhandlers.RequestNameChangeHandler
	RespondNameChange    *cmdhandlers.RespondNameChangeHandler
	SaveProfile          *cmdhandlers.SaveProfileHandler
	UnsaveProfile        *cmdhandlers.UnsaveProfileHandler
	ResetSuggestionFlags *cmdhandlers.ResetSuggestionFlagsHandler

	GetEntityProfile       *qryhandlers.GetEntityProfileHandler
	ListEntities           *qryhandlers.ListEntitiesHandler
	GetMapList             *qryhandlers.GetMapListHandler
	GetSavedProfiles       *qryhandlers.GetSavedProfilesHandler
	ListNameChangeRequests *qryhandlers.ListNameChangeRequestsHandler
	GetNameChangeRequest   *qryhandlers.GetNameChangeRequestHandler
}

// Resolver dispatches field invocations.
type Resolver struct {
	h      Handlers
	logger *zap.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(h Handlers, logger *zap.Logger) *Resolver {
	return &Resolver{h: h, logger: logger}
}

// Resolve executes one field invocation. Expected failures come back inside
// the field's result envelope; invariant violations (malformed keys, store
// faults) escape as errors so the invocation fails loudly.
func (r *Resolver) Resolve(ctx context.Context, ev Event) (interface{}, error) {
	r.logger.Debug("resolving field", zap.String("field", ev.Field))

	switch ev.Field {
	case "createStartup":
		return r.create(ctx, entity.TypeStartup, ev)
	case "createEnabler":
		return r.create(ctx, entity.TypeEnabler, ev)
	case "updateStartup":
		return r.update(ctx, entity.TypeStartup, ev)
	case "updateEnabler":
		return r.update(ctx, entity.TypeEnabler, ev)
	case "getStartup":
		return r.getProfile(ctx, entity.TypeStartup, ev)
	case "getEnabler":
		return r.getProfile(ctx, entity.TypeEnabler, ev)
	case "getStartups":
		return r.list(ctx, entity.TypeStartup, ev, false)
	case "getEnablers":
		return r.list(ctx, entity.TypeEnabler, ev, false)
	case "getStartupsAdmin":
		return r.list(ctx, entity.TypeStartup, ev, true)
	case "getEnablersAdmin":
		return r.list(ctx, entity.TypeEnabler, ev, true)
	case "getMapList":
		return r.h.GetMapList.Handle(ctx, queries.GetMapListQuery{})
	case "getMapListAdmin":
		return r.h.GetMapList.Handle(ctx, queries.GetMapListQuery{IncludeHidden: true})
	case "requestNameChange":
		return r.requestNameChange(ctx, ev)
	case "respondToNameChangeRequest":
		return r.respondNameChange(ctx, ev)
	case "getNameChangeRequests":
		return r.listRequests(ctx, ev)
	case "getNameChangeRequestData":
		return r.getRequest(ctx, ev)
	case "saveProfile":
		return r.saveProfile(ctx, ev)
	case "unsaveProfile":
		return r.unsaveProfile(ctx, ev)
	case "getSavedProfiles":
		return r.savedProfiles(ctx, ev)
	case "resetSuggestionFlags":
		return r.resetFlags(ctx, ev)
	}

	return nil, errors.NewValidationError("unknown field: " + ev.Field)
}

type entityRef struct {
	EntityID  string `json:"entityId"`
	StartupID string `json:"startupId"`
	EnablerID string `json:"enablerId"`
}

func (ref entityRef) id() string {
	switch {
	case ref.EntityID != "":
		return ref.EntityID
	case ref.StartupID != "":
		return ref.StartupID
	default:
		return ref.EnablerID
	}
}

type viewerRef struct {
	ViewerType entity.Type `json:"viewerType"`
	ViewerID   string      `json:"viewerId"`
}

func (r *Resolver) create(ctx context.Context, entityType entity.Type, ev Event) (interface{}, error) {
	var args struct {
		Input json.RawMessage `json:"input"`
	}
	if err := json.Unmarshal(ev.Arguments, &args); err != nil {
		return nil, errors.NewValidationError("malformed arguments: " + err.Error())
	}

	normalized, err := normalizeInput(args.Input)
	if err != nil {
		return nil, errors.NewValidationError("malformed input: " + err.Error())
	}
	var input entity.Input
	if err := json.Unmarshal(normalized, &input); err != nil {
		return nil, errors.NewValidationError("malformed input: " + err.Error())
	}

	entityID, err := r.h.CreateEntity.Handle(ctx, commands.CreateEntityCommand{
		EntityType: entityType,
		Input:      input,
	})
	return r.mutationResult(entityID, entityType.TypeName()+" created successfully", err)
}

func (r *Resolver) update(ctx context.Context, entityType entity.Type, ev Event) (interface{}, error) {
	var args struct {
		entityRef
		Input json.RawMessage `json:"input"`
	}
	if err := json.Unmarshal(ev.Arguments, &args); err != nil {
		return nil, errors.NewValidationError("malformed arguments: " + err.Error())
	}

	normalized, err := normalizeInput(args.Input)
	if err != nil {
		return nil, errors.NewValidationError("malformed input: " + err.Error())
	}
	var input entity.Input
	if err := json.Unmarshal(normalized, &input); err != nil {
		return nil, errors.NewValidationError("malformed input: " + err.Error())
	}

	err = r.h.UpdateEntity.Handle(ctx, commands.UpdateEntityCommand{
		EntityType: entityType,
		EntityID:   args.id(),
		Input:      input,
	})
	return r.mutationResult(args.id(), entityType.TypeName()+" updated successfully", err)
}

func (r *Resolver) getProfile(ctx context.Context, entityType entity.Type, ev Event) (interface{}, error) {
	var args struct {
		entityRef
		viewerRef
	}
	if err := json.Unmarshal(ev.Arguments, &args); err != nil {
		return nil, errors.NewValidationError("malformed arguments: " + err.Error())
	}
	return r.queryResult(r.h.GetEntityProfile.Handle(ctx, queries.GetEntityProfileQuery{
		EntityType: entityType,
		EntityID:   args.id(),
		ViewerType: args.ViewerType,
		ViewerID:   args.ViewerID,
	}))
}

func (r *Resolver) list(ctx context.Context, entityType entity.Type, ev Event, includeHidden bool) (interface{}, error) {
	var args viewerRef
	if len(ev.Arguments) > 0 {
		if err := json.Unmarshal(ev.Arguments, &args); err != nil {
			return nil, errors.NewValidationError("malformed arguments: " + err.Error())
		}
	}
	return r.queryResult(r.h.ListEntities.Handle(ctx, queries.ListEntitiesQuery{
		EntityType:    entityType,
		IncludeHidden: includeHidden,
		ViewerType:    args.ViewerType,
		ViewerID:      args.ViewerID,
	}))
}

func (r *Resolver) requestNameChange(ctx context.Context, ev Event) (interface{}, error) {
	var args struct {
		entityRef
		EntityType entity.Type `json:"entityType"`
		NewName    string      `json:"newName"`
	}
	if err := json.Unmarshal(ev.Arguments, &args); err != nil {
		return nil, errors.NewValidationError("malformed arguments: " + err.Error())
	}
	requestID, err := r.h.RequestNameChange.Handle(ctx, commands.RequestNameChangeCommand{
		EntityType: args.EntityType,
		EntityID:   args.id(),
		NewName:    args.NewName,
	})
	return r.mutationResult(requestID, "name change request submitted", err)
}

func (r *Resolver) respondNameChange(ctx context.Context, ev Event) (interface{}, error) {
	var args struct {
		entityRef
		EntityType entity.Type `json:"entityType"`
		RequestID  string      `json:"requestId"`
		Approved   bool        `json:"approved"`
	}
	if err := json.Unmarshal(ev.Arguments, &args); err != nil {
		return nil, errors.NewValidationError("malformed arguments: " + err.Error())
	}
	err := r.h.RespondNameChange.Handle(ctx, commands.RespondNameChangeCommand{
		EntityType: args.EntityType,
		EntityID:   args.id(),
		RequestID:  args.RequestID,
		Approved:   args.Approved,
	})
	message := "name change request rejected"
	if args.Approved {
		message = "name change request approved"
	}
	return r.mutationResult(args.RequestID, message, err)
}

func (r *Resolver) listRequests(ctx context.Context, ev Event) (interface{}, error) {
	var args struct {
		Status string `json:"status"`
	}
	if len(ev.Arguments) > 0 {
		if err := json.Unmarshal(ev.Arguments, &args); err != nil {
			return nil, errors.NewValidationError("malformed arguments: " + err.Error())
		}
	}
	return r.queryResult(r.h.ListNameChangeRequests.Handle(ctx, queries.ListNameChangeRequestsQuery{
		Status: args.Status,
	}))
}

func (r *Resolver) getRequest(ctx context.Context, ev Event) (interface{}, error) {
	var args struct {
		entityRef
		EntityType entity.Type `json:"entityType"`
		RequestID  string      `json:"requestId"`
	}
	if err := json.Unmarshal(ev.Arguments, &args); err != nil {
		return nil, errors.NewValidationError("malformed arguments: " + err.Error())
	}
	return r.queryResult(r.h.GetNameChangeRequest.Handle(ctx, queries.GetNameChangeRequestQuery{
		EntityType: args.EntityType,
		EntityID:   args.id(),
		RequestID:  args.RequestID,
	}))
}

type profileRefArgs struct {
	OwnerType   entity.Type `json:"entityType"`
	OwnerID     string      `json:"entityId"`
	ProfileType entity.Type `json:"savedProfileType"`
	ProfileID   string      `json:"savedProfileId"`
}

func (r *Resolver) saveProfile(ctx context.Context, ev Event) (interface{}, error) {
	var args profileRefArgs
	if err := json.Unmarshal(ev.Arguments, &args); err != nil {
		return nil, errors.NewValidationError("malformed arguments: " + err.Error())
	}
	err := r.h.SaveProfile.Handle(ctx, commands.SaveProfileCommand{
		OwnerType:   args.OwnerType,
		OwnerID:     args.OwnerID,
		ProfileType: args.ProfileType,
		ProfileID:   args.ProfileID,
	})
	return r.mutationResult(args.ProfileID, "profile saved", err)
}

func (r *Resolver) unsaveProfile(ctx context.Context, ev Event) (interface{}, error) {
	var args profileRefArgs
	if err := json.Unmarshal(ev.Arguments, &args); err != nil {
		return nil, errors.NewValidationError("malformed arguments: " + err.Error())
	}
	err := r.h.UnsaveProfile.Handle(ctx, commands.UnsaveProfileCommand{
		OwnerType:   args.OwnerType,
		OwnerID:     args.OwnerID,
		ProfileType: args.ProfileType,
		ProfileID:   args.ProfileID,
	})
	return r.mutationResult(args.ProfileID, "profile removed from saved", err)
}

func (r *Resolver) savedProfiles(ctx context.Context, ev Event) (interface{}, error) {
	var args struct {
		OwnerType entity.Type `json:"entityType"`
		OwnerID   string      `json:"entityId"`
	}
	if err := json.Unmarshal(ev.Arguments, &args); err != nil {
		return nil, errors.NewValidationError("malformed arguments: " + err.Error())
	}
	return r.queryResult(r.h.GetSavedProfiles.Handle(ctx, queries.GetSavedProfilesQuery{
		OwnerType: args.OwnerType,
		OwnerID:   args.OwnerID,
	}))
}

func (r *Resolver) resetFlags(ctx context.Context, ev Event) (interface{}, error) {
	var args struct {
		EntityType entity.Type `json:"entityType"`
	}
	if err := json.Unmarshal(ev.Arguments, &args); err != nil {
		return nil, errors.NewValidationError("malformed arguments: " + err.Error())
	}
	count, err := r.h.ResetSuggestionFlags.Handle(ctx, commands.ResetSuggestionFlagsCommand{
		EntityType: args.EntityType,
	})
	return r.mutationResult("", fmt.Sprintf("%d suggestion flags reset", count), err)
}

// mutationResult folds a command outcome into the mutation envelope.
// Malformed keys and store faults abort the invocation instead; the API
// must surface those as errors, not as a polite failure message.
func (r *Resolver) mutationResult(id, okMessage string, err error) (interface{}, error) {
	if err != nil {
		if errors.IsMalformedKey(err) || errors.IsType(err, errors.ErrorTypeStore) {
			return nil, err
		}
		if appErr := errors.GetAppError(err); appErr != nil {
			r.logger.Warn("mutation rejected", zap.String("reason", appErr.Message))
			return common.MutationResponse{Message: appErr.Message, Success: false}, nil
		}
		return nil, err
	}
	return common.MutationResponse{ID: id, Message: okMessage, Success: true}, nil
}

// queryResult passes query outcomes through unchanged; queries have no
// success envelope, their errors always surface.
func (r *Resolver) queryResult(result interface{}, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	return result, nil
}
