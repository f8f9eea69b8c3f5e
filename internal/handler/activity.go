package handler

import (
	"net/http"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/economy"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
)

// StartActivityRequest is the body of POST /players/{playerID}/activity
type StartActivityRequest struct {
	Location string `json:"location" validate:"required,max=64"`
}

// CompletionResponse pairs the player's new state with the activity result
type CompletionResponse struct {
	Player     *domain.Player     `json:"player"`
	Completion economy.Completion `json:"completion"`
}

// HandleGetLocations lists the expedition and boss locations
// @Summary List locations
// @Tags activity
// @Produce json
// @Success 200 {array} activity.Location
// @Router /locations [get]
func (h *PlayerHandler) HandleGetLocations(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Locations())
}

// HandleStartActivity sends the gladiator to a location
// @Summary Start activity
// @Tags activity
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body StartActivityRequest true "Location name"
// @Success 200 {object} domain.Player
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /players/{playerID}/activity [post]
func (h *PlayerHandler) HandleStartActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	var req StartActivityRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start activity"); err != nil {
		return
	}
	p, err := h.svc.StartActivity(r.Context(), id, req.Location)
	if err != nil {
		respondServiceError(w, r, "Start activity", err)
		return
	}
	respondJSON(w, http.StatusOK, p)
}

// HandleActivityStatus reports the time left on the current activity
// @Summary Activity status
// @Tags activity
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} economy.ActivityStatus
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/activity [get]
func (h *PlayerHandler) HandleActivityStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	status, err := h.svc.ActivityStatus(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Activity status", err)
		return
	}
	respondJSON(w, http.StatusOK, status)
}

// HandleCompleteActivity resolves a finished activity and grants its rewards
// @Summary Complete activity
// @Tags activity
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} CompletionResponse
// @Failure 409 {object} ErrorResponse
// @Router /players/{playerID}/activity/complete [post]
func (h *PlayerHandler) HandleCompleteActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	p, done, err := h.svc.CompleteActivity(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Complete activity", err)
		return
	}
	logger.FromContext(r.Context()).Info(LogMsgActivityFinished,
		"player_id", id, "location", done.Location, "won", done.Won)
	respondJSON(w, http.StatusOK, CompletionResponse{Player: p, Completion: done})
}
