package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/pkg/money"
)

type Response struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"job already paid"`
}

// DepositLimitResponse tells the caller how much it may still deposit.
type DepositLimitResponse struct {
	Status  string `json:"status" example:"error"`
	Message string `json:"message" example:"deposit limit exceeded: at most 50.00 may be deposited"`
	Ceiling string `json:"ceiling" example:"50.00"`
}

func RespondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("can't encode response", zap.Error(err))
	}
}

func RespondWithError(w http.ResponseWriter, code int, message string) {
	RespondWithJSON(w, code, Response{Status: "error", Message: message})
}

// RespondWithServiceError maps the ledger error taxonomy onto HTTP statuses.
// Anything outside the taxonomy is an opaque 500.
func RespondWithServiceError(w http.ResponseWriter, err error) {
	var limitErr *domain.DepositLimitError
	switch {
	case errors.As(err, &limitErr):
		RespondWithJSON(w, http.StatusUnprocessableEntity, DepositLimitResponse{
			Status:  "error",
			Message: limitErr.Error(),
			Ceiling: limitErr.Ceiling.StringFixed(money.Places),
		})
	case errors.Is(err, domain.ErrNotFound):
		RespondWithError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, domain.ErrForbidden):
		RespondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrAlreadyPaid):
		RespondWithError(w, http.StatusConflict, domain.ErrAlreadyPaid.Error())
	case errors.Is(err, domain.ErrInsufficientBalance):
		RespondWithError(w, http.StatusPaymentRequired, domain.ErrInsufficientBalance.Error())
	case errors.Is(err, domain.ErrInvalidAmount):
		RespondWithError(w, http.StatusUnprocessableEntity, domain.ErrInvalidAmount.Error())
	case errors.Is(err, domain.ErrInvalidRange), errors.Is(err, domain.ErrInvalidLimit):
		RespondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrTransient):
		w.Header().Set("Retry-After", "1")
		RespondWithError(w, http.StatusServiceUnavailable, "Temporarily unavailable, retry the request")
	default:
		RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
