package handlers

import (
	"context"

	"elevate-backend/application/commands"
	"elevate-backend/application/ports"
	"elevate-backend/domain/entity"

	"go.uber.org/zap"
)

// SaveProfileHandler handles bookmark creation
type SaveProfileHandler struct {
	store   ports.EntityStore
	planner *entity.Planner
	logger  *zap.Logger
}

// NewSaveProfileHandler creates a new save profile handler
func NewSaveProfileHandler(store ports.EntityStore, planner *entity.Planner, logger *zap.Logger) *SaveProfileHandler {
	return &SaveProfileHandler{store: store, planner: planner, logger: logger}
}

// Handle writes the bookmark marker. The target profile must exist; a
// bookmark may not reference a phantom entity.
func (h *SaveProfileHandler) Handle(ctx context.Context, cmd commands.SaveProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, err := h.store.Get(ctx, metadataKey(cmd.ProfileType, cmd.ProfileID)); err != nil {
		return err
	}

	set, err := h.planner.PlanSaveProfile(cmd.OwnerType, cmd.OwnerID, cmd.ProfileType, cmd.ProfileID)
	if err != nil {
		return err
	}
	if err := h.store.Write(ctx, set); err != nil {
		return err
	}

	h.logger.Info("profile saved",
		zap.String("ownerID", cmd.OwnerID),
		zap.String("profileID", cmd.ProfileID),
	)
	return nil
}

// UnsaveProfileHandler handles bookmark removal
type UnsaveProfileHandler struct {
	store   ports.EntityStore
	planner *entity.Planner
	logger  *zap.Logger
}

// NewUnsaveProfileHandler creates a new unsave profile handler
func NewUnsaveProfileHandler(store ports.EntityStore, planner *entity.Planner, logger *zap.Logger) *UnsaveProfileHandler {
	return &UnsaveProfileHandler{store: store, planner: planner, logger: logger}
}

// Handle deletes the bookmark marker. Deleting an absent marker succeeds.
func (h *UnsaveProfileHandler) Handle(ctx context.Context, cmd commands.UnsaveProfileCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	set, err := h.planner.PlanUnsaveProfile(cmd.OwnerType, cmd.OwnerID, cmd.ProfileType, cmd.ProfileID)
	if err != nil {
		return err
	}
	if err := h.store.Write(ctx, set); err != nil {
		return err
	}

	h.logger.Info("profile unsaved",
		zap.String("ownerID", cmd.OwnerID),
		zap.String("profileID", cmd.ProfileID),
	)
	return nil
}
