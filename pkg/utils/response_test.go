package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/gigledger/internal/domain"
)

func TestRespondWithJSON(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithJSON(w, http.StatusCreated, map[string]int{"id": 1})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithError(w, http.StatusBadRequest, "invalid request body")

	var body Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, Response{Status: "error", Message: "invalid request body"}, body)
}

func TestRespondWithServiceError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"Not found", fmt.Errorf("job 7: %w", domain.ErrNotFound), http.StatusNotFound},
		{"Forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"Already paid", domain.ErrAlreadyPaid, http.StatusConflict},
		{"Insufficient balance", domain.ErrInsufficientBalance, http.StatusPaymentRequired},
		{"Invalid amount", domain.ErrInvalidAmount, http.StatusUnprocessableEntity},
		{"Invalid range", fmt.Errorf("%w: start is after end", domain.ErrInvalidRange), http.StatusBadRequest},
		{"Invalid limit", domain.ErrInvalidLimit, http.StatusBadRequest},
		{"Unexpected", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			RespondWithServiceError(w, tt.err)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestRespondWithServiceError_Transient(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithServiceError(w, fmt.Errorf("pay: %w", domain.ErrTransient))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestRespondWithServiceError_DepositLimit(t *testing.T) {
	w := httptest.NewRecorder()
	RespondWithServiceError(w, &domain.DepositLimitError{Ceiling: decimal.RequireFromString("50")})

	var body DepositLimitResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "50.00", body.Ceiling)
	assert.Contains(t, body.Message, "at most 50.00")
}
