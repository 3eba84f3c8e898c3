package contracts

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/dto"
	"github.com/GlebRadaev/gigledger/pkg/auth"
	"github.com/GlebRadaev/gigledger/pkg/utils"
)

//go:generate mockgen -source=contracts.go -destination=mock_contracts.go -package=contracts

type Service interface {
	GetContract(ctx context.Context, callerID, id int) (*domain.Contract, error)
	ListContracts(ctx context.Context, callerID int) ([]domain.Contract, error)
}

type ContractHandler struct {
	contractService Service
}

func New(contractService Service) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
	}
}

// GetContract godoc
//
//	@Summary		Get a contract
//	@Description	Return the contract if the caller is its client or its contractor.
//	@Tags			Contracts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int							true	"Contract ID"
//	@Success		200	{object}	dto.ContractResponseDTO		"Contract"
//	@Failure		400	{object}	utils.Response				"Invalid contract id"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		403	{object}	utils.Response				"Caller is not a party of the contract"
//	@Failure		404	{object}	utils.Response				"Contract not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/contracts/{id} [get]
func (h *ContractHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid contract id")
		return
	}

	contract, err := h.contractService.GetContract(r.Context(), caller.ID, id)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewContractResponse(*contract))
}

// ListContracts godoc
//
//	@Summary		List contracts
//	@Description	Non-terminated contracts where the caller is the client or the contractor.
//	@Tags			Contracts
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.ContractResponseDTO	"Contracts"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/contracts [get]
func (h *ContractHandler) ListContracts(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	contracts, err := h.contractService.ListContracts(r.Context(), caller.ID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	response := make([]dto.ContractResponseDTO, len(contracts))
	for i, c := range contracts {
		response[i] = dto.NewContractResponse(c)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
