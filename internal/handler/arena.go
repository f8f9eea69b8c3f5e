package handler

import (
	"net/http"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/economy"
)

// Rankings page bounds
const (
	QueryLimit       = "limit"
	MaxRankingsLimit = 100
)

// ChallengeRequest is the body of POST /players/{playerID}/challenge
type ChallengeRequest struct {
	OpponentID string `json:"opponent_id" validate:"required"`
}

// DuelResponse pairs the player's new state with the duel outcome
type DuelResponse struct {
	Player  *domain.Player      `json:"player"`
	Outcome economy.DuelOutcome `json:"outcome"`
}

// HandleFightEnemy fights a generated arena enemy at the player's level
// @Summary Fight arena enemy
// @Tags arena
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} DuelResponse
// @Failure 409 {object} ErrorResponse
// @Router /players/{playerID}/arena/fight [post]
func (h *PlayerHandler) HandleFightEnemy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	p, out, err := h.svc.FightEnemy(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Fight enemy", err)
		return
	}
	respondJSON(w, http.StatusOK, DuelResponse{Player: p, Outcome: out})
}

// HandleFindOpponents lists challengeable players ranked above the caller
// @Summary Find opponents
// @Tags arena
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {array} domain.RankEntry
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/arena/opponents [get]
func (h *PlayerHandler) HandleFindOpponents(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	entries, err := h.svc.FindOpponents(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Find opponents", err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// HandleRankings returns the top of the ladder
// @Summary Ladder rankings
// @Tags arena
// @Produce json
// @Param limit query int false "Number of entries" default(10)
// @Success 200 {array} domain.RankEntry
// @Failure 400 {object} ErrorResponse
// @Router /rankings [get]
func (h *PlayerHandler) HandleRankings(w http.ResponseWriter, r *http.Request) {
	n, err := intQueryParam(r, QueryLimit, economy.DefaultRankingsLength, MaxRankingsLimit)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
		return
	}
	entries, err := h.svc.Rankings(r.Context(), n)
	if err != nil {
		respondServiceError(w, r, "Rankings", err)
		return
	}
	respondJSON(w, http.StatusOK, entries)
}

// HandleChallenge duels another gladiator for their ladder rank
// @Summary Challenge player
// @Tags arena
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body ChallengeRequest true "Opponent"
// @Success 200 {object} DuelResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/arena/challenge [post]
func (h *PlayerHandler) HandleChallenge(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	var req ChallengeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Challenge"); err != nil {
		return
	}
	p, out, err := h.svc.Challenge(r.Context(), id, req.OpponentID)
	if err != nil {
		respondServiceError(w, r, "Challenge", err)
		return
	}
	respondJSON(w, http.StatusOK, DuelResponse{Player: p, Outcome: out})
}

// HandleGetReport returns one stored combat report
// @Summary Get combat report
// @Tags arena
// @Produce json
// @Param playerID path string true "Player ID"
// @Param reportID path string true "Report ID"
// @Success 200 {object} domain.CombatReport
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/reports/{reportID} [get]
func (h *PlayerHandler) HandleGetReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	reportID, ok := pathParam(w, r, ParamReportID)
	if !ok {
		return
	}
	rep, err := h.svc.Report(r.Context(), id, reportID)
	if err != nil {
		respondServiceError(w, r, "Get report", err)
		return
	}
	respondJSON(w, http.StatusOK, rep)
}
