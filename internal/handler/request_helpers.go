package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
)

// Path parameter names
const (
	ParamPlayerID  = "playerID"
	ParamItemID    = "itemID"
	ParamDepositID = "depositID"
	ParamMessageID = "messageID"
	ParamReportID  = "reportID"
)

// DecodeAndValidateRequest decodes a JSON body into req and validates it.
// On error the response has already been written and the handler should return.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}

// pathParam reads a required chi URL parameter, answering 400 when it is empty
func pathParam(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	v := chi.URLParam(r, name)
	if v == "" {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingPathParam, name))
		return "", false
	}
	return v, true
}

// intQueryParam parses an optional positive integer query parameter
func intQueryParam(r *http.Request, name string, def, maxValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return min(n, maxValue), nil
}
