package balances

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/dto"
	"github.com/GlebRadaev/gigledger/pkg/auth"
	"github.com/GlebRadaev/gigledger/pkg/money"
	"github.com/GlebRadaev/gigledger/pkg/utils"
	"github.com/GlebRadaev/gigledger/pkg/validate"
)

//go:generate mockgen -source=balances.go -destination=mock_balances.go -package=balances

type Service interface {
	Deposit(ctx context.Context, callerID, targetID int, amount decimal.Decimal) (*domain.DepositResult, error)
}

type BalanceHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *BalanceHandler {
	return &BalanceHandler{
		ledgerService: ledgerService,
	}
}

// Deposit godoc
//
//	@Summary		Deposit money into a client balance
//	@Description	Clients top up their own balance. The balance after the deposit may not exceed 25% of the unpaid work on the client's active contracts.
//	@Tags			Balances
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			userID	path		int							true	"Profile ID to credit, must be the caller"
//	@Param			request	body		dto.DepositRequestDTO		true	"Deposit amount"
//	@Success		200		{object}	dto.DepositResponseDTO		"New balance"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Deposit for another profile or for a contractor"
//	@Failure		422		{object}	utils.DepositLimitResponse	"Amount not positive or above the deposit ceiling"
//	@Failure		503		{object}	utils.Response				"Conflict with a concurrent update, retry"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/balances/deposit/{userID} [post]
func (h *BalanceHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	targetID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil || targetID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req dto.DepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "amount must be a decimal number")
		return
	}

	result, err := h.ledgerService.Deposit(r.Context(), caller.ID, targetID, amount)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.DepositResponseDTO{
		ProfileID: result.ProfileID,
		Balance:   result.Balance.StringFixed(money.Places),
	})
}
