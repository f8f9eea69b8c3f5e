package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/domain"
	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse lists the fields that failed validation
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// bufferPool reuses encode buffers across responses
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// encode first so a marshal failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and answers with the status and message its
// sentinel maps to
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceError(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Info(opName+" rejected", "reason", err.Error())
	}
	respondError(w, status, msg)
}

type errorMapping struct {
	target error
	status int
	msg    string
}

// errorMappings is checked in order; the first sentinel found in the chain wins
var errorMappings = []errorMapping{
	{domain.ErrPlayerNotFound, http.StatusNotFound, ErrMsgPlayerNotFoundError},
	{domain.ErrItemNotFound, http.StatusNotFound, ErrMsgItemNotFoundError},
	{domain.ErrDepositNotFound, http.StatusNotFound, ErrMsgDepositNotFoundError},
	{domain.ErrMessageNotFound, http.StatusNotFound, ErrMsgMessageNotFoundError},
	{domain.ErrReportNotFound, http.StatusNotFound, ErrMsgReportNotFoundError},
	{domain.ErrLocationNotFound, http.StatusNotFound, ErrMsgLocationNotFoundError},
	{domain.ErrInsufficientFunds, http.StatusBadRequest, ErrMsgNotEnoughGoldError},
	{domain.ErrNotBuyable, http.StatusBadRequest, ErrMsgNotBuyableError},
	{domain.ErrInvalidAmount, http.StatusBadRequest, ErrMsgInvalidAmountError},
	{domain.ErrNotEquippable, http.StatusBadRequest, ErrMsgNotEquippableError},
	{domain.ErrSlotMismatch, http.StatusBadRequest, ErrMsgSlotMismatchError},
	{domain.ErrSlotEmpty, http.StatusBadRequest, ErrMsgSlotEmptyError},
	{domain.ErrRequirementsNotMet, http.StatusBadRequest, ErrMsgRequirementsNotMetError},
	{domain.ErrNotConsumable, http.StatusBadRequest, ErrMsgNotConsumableError},
	{domain.ErrLuckChargeMissing, http.StatusBadRequest, ErrMsgLuckChargeMissingError},
	{domain.ErrNoStatPoints, http.StatusBadRequest, ErrMsgNoStatPointsError},
	{domain.ErrInvalidStat, http.StatusBadRequest, ErrMsgInvalidStatError},
	{domain.ErrInvalidName, http.StatusBadRequest, ErrMsgInvalidNameError},
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestError},
	{domain.ErrLevelTooLow, http.StatusForbidden, ErrMsgLevelTooLowError},
	{domain.ErrOpponentNotEligible, http.StatusForbidden, ErrMsgOpponentNotEligibleError},
	{domain.ErrActivityInProgress, http.StatusConflict, ErrMsgActivityInProgressError},
	{domain.ErrPlayerBusy, http.StatusConflict, ErrMsgPlayerBusyError},
	{domain.ErrNoActivity, http.StatusConflict, ErrMsgNoActivityError},
	{domain.ErrActivityNotFinished, http.StatusConflict, ErrMsgActivityNotFinishedError},
	{domain.ErrDepositNotMature, http.StatusConflict, ErrMsgDepositNotMatureError},
	{domain.ErrDepositMatured, http.StatusConflict, ErrMsgDepositMaturedError},
}

// mapServiceError converts a service error into an HTTP status and a
// user-facing message. Unknown errors never leak their text.
func mapServiceError(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.msg
		}
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
