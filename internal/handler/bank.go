package handler

import (
	"context"
	"net/http"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/bank"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
)

// DepositRequest is the body of POST /players/{playerID}/bank/deposits
type DepositRequest struct {
	Amount int `json:"amount" validate:"required,min=1"`
}

// ReceiptResponse pairs the player's new state with the bank receipt
type ReceiptResponse struct {
	Player  *domain.Player `json:"player"`
	Receipt bank.Receipt   `json:"receipt"`
}

// IncomeResponse pairs the player's new state with the income paid out
type IncomeResponse struct {
	Player    *domain.Player `json:"player"`
	Collected int            `json:"collected"`
}

// HandleDeposit locks gold in the vault for a fixed term
// @Summary Deposit gold
// @Tags bank
// @Accept json
// @Produce json
// @Param playerID path string true "Player ID"
// @Param request body DepositRequest true "Amount"
// @Success 201 {object} ReceiptResponse
// @Failure 400 {object} ErrorResponse
// @Router /players/{playerID}/bank/deposits [post]
func (h *PlayerHandler) HandleDeposit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	var req DepositRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Deposit"); err != nil {
		return
	}
	p, rec, err := h.svc.Deposit(r.Context(), id, req.Amount)
	if err != nil {
		respondServiceError(w, r, "Deposit", err)
		return
	}
	respondJSON(w, http.StatusCreated, ReceiptResponse{Player: p, Receipt: rec})
}

// HandleClaimDeposit pays out a matured deposit with interest
// @Summary Claim deposit
// @Tags bank
// @Produce json
// @Param playerID path string true "Player ID"
// @Param depositID path string true "Deposit ID"
// @Success 200 {object} ReceiptResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /players/{playerID}/bank/deposits/{depositID}/claim [post]
func (h *PlayerHandler) HandleClaimDeposit(w http.ResponseWriter, r *http.Request) {
	h.settleDeposit(w, r, "Claim deposit", h.svc.ClaimDeposit)
}

// HandleCancelDeposit withdraws an immature deposit minus the commission
// @Summary Cancel deposit
// @Tags bank
// @Produce json
// @Param playerID path string true "Player ID"
// @Param depositID path string true "Deposit ID"
// @Success 200 {object} ReceiptResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /players/{playerID}/bank/deposits/{depositID}/cancel [post]
func (h *PlayerHandler) HandleCancelDeposit(w http.ResponseWriter, r *http.Request) {
	h.settleDeposit(w, r, "Cancel deposit", h.svc.CancelDeposit)
}

type settleFunc func(ctx context.Context, playerID, depositID string) (*domain.Player, bank.Receipt, error)

func (h *PlayerHandler) settleDeposit(w http.ResponseWriter, r *http.Request, op string, fn settleFunc) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	depositID, ok := pathParam(w, r, ParamDepositID)
	if !ok {
		return
	}
	p, rec, err := fn(r.Context(), id, depositID)
	if err != nil {
		respondServiceError(w, r, op, err)
		return
	}
	respondJSON(w, http.StatusOK, ReceiptResponse{Player: p, Receipt: rec})
}

// HandleCollectIncome pays out the passive income accrued since the last collection
// @Summary Collect income
// @Tags bank
// @Produce json
// @Param playerID path string true "Player ID"
// @Success 200 {object} IncomeResponse
// @Failure 404 {object} ErrorResponse
// @Router /players/{playerID}/income [post]
func (h *PlayerHandler) HandleCollectIncome(w http.ResponseWriter, r *http.Request) {
	id, ok := pathParam(w, r, ParamPlayerID)
	if !ok {
		return
	}
	p, collected, err := h.svc.CollectIncome(r.Context(), id)
	if err != nil {
		respondServiceError(w, r, "Collect income", err)
		return
	}
	respondJSON(w, http.StatusOK, IncomeResponse{Player: p, Collected: collected})
}
