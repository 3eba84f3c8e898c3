package jobs

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/dto"
	"github.com/GlebRadaev/gigledger/pkg/auth"
	"github.com/GlebRadaev/gigledger/pkg/daterange"
	"github.com/GlebRadaev/gigledger/pkg/money"
	"github.com/GlebRadaev/gigledger/pkg/utils"
)

//go:generate mockgen -source=jobs.go -destination=mock_jobs.go -package=jobs

type Service interface {
	Pay(ctx context.Context, callerID, jobID int) (*domain.PaymentResult, error)
}

type ContractService interface {
	ListUnpaidJobs(ctx context.Context, callerID int) ([]domain.Job, error)
}

type ReportService interface {
	PaidTotal(ctx context.Context, profileID int, r daterange.Range) (decimal.Decimal, error)
}

type JobHandler struct {
	ledgerService   Service
	contractService ContractService
	reportService   ReportService
}

func New(ledgerService Service, contractService ContractService, reportService ReportService) *JobHandler {
	return &JobHandler{
		ledgerService:   ledgerService,
		contractService: contractService,
		reportService:   reportService,
	}
}

// Pay godoc
//
//	@Summary		Pay for a job
//	@Description	Move the job price from the client's balance to the contractor's balance and mark the job paid. Only the contract's client may pay, and a job is paid at most once.
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Produce		json
//	@Param			jobID	path		int						true	"Job ID"
//	@Success		200		{object}	dto.PayJobResponseDTO	"Job paid"
//	@Failure		400		{object}	utils.Response			"Invalid job id"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		402		{object}	utils.Response			"Insufficient balance"
//	@Failure		403		{object}	utils.Response			"Caller is not the contract's client"
//	@Failure		404		{object}	utils.Response			"Job not found"
//	@Failure		409		{object}	utils.Response			"Job already paid"
//	@Failure		503		{object}	utils.Response			"Conflict with a concurrent payment, retry"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/jobs/{jobID}/pay [post]
func (h *JobHandler) Pay(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobID, err := strconv.Atoi(chi.URLParam(r, "jobID"))
	if err != nil || jobID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	result, err := h.ledgerService.Pay(r.Context(), caller.ID, jobID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewPayJobResponse(result))
}

// ListUnpaid godoc
//
//	@Summary		List unpaid jobs
//	@Description	Unpaid jobs on the caller's active contracts, as client or contractor.
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.JobResponseDTO	"Unpaid jobs"
//	@Failure		401	{object}	utils.Response		"User not authorized"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/jobs/unpaid [get]
func (h *JobHandler) ListUnpaid(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	jobs, err := h.contractService.ListUnpaidJobs(r.Context(), caller.ID)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	response := make([]dto.JobResponseDTO, len(jobs))
	for i, j := range jobs {
		response[i] = dto.NewJobResponse(j)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// PaidTotal godoc
//
//	@Summary		Sum of paid jobs in a window
//	@Description	Total of the caller's jobs paid in [start, end), across all of the caller's contracts.
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Produce		json
//	@Param			start	query		string						true	"Inclusive start, RFC 3339 or YYYY-MM-DD"
//	@Param			end		query		string						true	"Exclusive end, RFC 3339 or YYYY-MM-DD"
//	@Success		200		{object}	dto.PaidTotalResponseDTO	"Paid total"
//	@Failure		400		{object}	utils.Response				"Invalid date range"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/jobs/paid-total [get]
func (h *JobHandler) PaidTotal(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.ProfileFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	window, err := daterange.Parse(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}

	total, err := h.reportService.PaidTotal(r.Context(), caller.ID, window)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaidTotalResponseDTO{
		ProfileID: caller.ID,
		Start:     window.Start,
		End:       window.End,
		Total:     total.StringFixed(money.Places),
	})
}
