package handler

import (
	"net/http"
	"strings"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/economy"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
)

// PlayerHandler serves every per-player engine operation
type PlayerHandler struct {
	svc economy.Service
}

// NewPlayerHandler creates a new PlayerHandler
func NewPlayerHandler(svc economy.Service) *PlayerHandler {
	return &PlayerHandler{svc: svc}
}

// CreatePlayerRequest is the body of POST /players
type CreatePlayerRequest struct {
	Name   string `json:"name" validate:"required,min=2,max=24,excludesall=<>\"'"`
	Avatar string `json:"avatar" validate:"max=64"`
}

// SpendStatRequest is the body of POST /players/{playerID}/stats
type SpendStatRequest struct {
	Stat string `json:"stat" validate:"required,stat"`
}

// EquipRequest is the body of POST /players/{playerID}/equip. An empty slot
// lets the engine pick one.
type EquipRequest struct {
	ItemID string `json:"item_id" validate:"required"`
	Slot   string `json:"slot" validate:"slot"`
}

// UnequipRequest is the body of POST /players/{playerID}/unequip
type UnequipRequest struct {
	Slot string `json:"slot" validate:"required,slot"`
}

// HandleCreatePlayer creates a new gladiator
// @Summary Create player
// @Description Creates a level 1 gladiator at the bottom of the ladder
// @Tags player
// @Accept json
// @Produce json
// @Param request body CreatePlayerRequest true "Player details"
// @Success 201 {object} domain.Player
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /players [post]
func (h *PlayerHandler) HandleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req CreatePlayerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Create player"); err != nil {
		return
	}

	p, err := h.svc.CreatePlayer(r.Context(), req.Name, req.Avatar)
	if err != nil {
		respondServiceError(w, r, "Create player", err)
		return
	}
	logger.FromContext(r.Context()).Info(LogMsgPlayerCreated, "player_id", p.ID)
	respondJSON(w, http.StatusCreated, p)
}

// HandleGetPlayer returns the player's current snapshot
// @Summary Get player
// @Tags player
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} domain.Player
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID} [get]
func (h *PlayerHandler) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	p, err := h.svc.GetPlayer(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Get player", err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleSpendStatPoint raises one attribute by a point
// @Summary Spend stat point
// @Tags player
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body SpendStatRequest true "Stat to raise"
// @Success 200 {object} domain.Player
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/stats [post]
func (h *PlayerHandler) HandleSpendStatPoint(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	var req SpendStatRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spend stat point"); err != nil {
		return
	}
	p, err := h.svc.SpendStatPoint(r.Context(), id, domain.StatType(strings.ToLower(req.Stat)))
	if err != nil {
		respondServiceError(w, r, "Spend stat point", err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleEquip moves an item from the inventory into an equipment slot
// @Summary Equip item
// @Tags player
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body EquipRequest true "Item and optional slot"
// @Success 200 {object} domain.Player
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/equip [post]
func (h *PlayerHandler) HandleEquip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	var req EquipRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Equip item"); err != nil {
		return
	}
	p, err := h.svc.Equip(r.Context(), id, req.ItemID, domain.Slot(req.Slot))
	if err != nil {
		respondServiceError(w, r, "Equip item", err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleUnequip moves the item in a slot back into the inventory
// @Summary Unequip item
// @Tags player
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body UnequipRequest true "Slot to clear"
// @Success 200 {object} domain.Player
// @Failure 400 {object} ErrorResponse
// @Router /players/{playerID}/unequip [post]
func (h *PlayerHandler) HandleUnequip(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	var req UnequipRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Unequip item"); err != nil {
		return
	}
	p, err := h.svc.Unequip(r.Context(), id, domain.Slot(req.Slot))
	if err != nil {
		respondServiceError(w, r, "Unequip item", err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleMarkMessageRead flags an inbox message as read
// @Summary Mark message read
// @Tags player
// @Produce json
// @Param playerID path string true "Player ID"
// @Param messageID path string true "Message ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/messages/{messageID}/read [post]
func (h *PlayerHandler) HandleMarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	msgID, ok := pathParam(w, r, ParamMessageID)
	if !ok {
		return
	}
	if _, err := h.svc.MarkMessageRead(r.Context(), id, msgID); err != nil {
		respondServiceError(w, r, "Mark message read", err)
		return
	}
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMessageRead})
}
