package admin

import (
	"context"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/dto"
	"github.com/GlebRadaev/gigledger/pkg/daterange"
	"github.com/GlebRadaev/gigledger/pkg/utils"
	"github.com/GlebRadaev/gigledger/pkg/validate"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

type Service interface {
	BestProfession(ctx context.Context, r daterange.Range) (string, error)
	BestClients(ctx context.Context, r daterange.Range, limit int) ([]domain.ClientPayments, error)
	Overview(ctx context.Context, r daterange.Range, limit int) (*domain.Overview, error)
}

type AdminHandler struct {
	reportService Service
}

func New(reportService Service) *AdminHandler {
	return &AdminHandler{
		reportService: reportService,
	}
}

// BestProfession godoc
//
//	@Summary		Best earning profession
//	@Description	Profession of the contractor who earned the most from jobs paid in [start, end). Ties go to the lowest contractor id; empty when nothing was paid.
//	@Tags			Admin
//	@Produce		json
//	@Param			start	query		string							true	"Inclusive start, RFC 3339 or YYYY-MM-DD"
//	@Param			end		query		string							true	"Exclusive end, RFC 3339 or YYYY-MM-DD"
//	@Success		200		{object}	dto.BestProfessionResponseDTO	"Best profession"
//	@Failure		400		{object}	utils.Response					"Invalid date range"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/admin/best-profession [get]
func (h *AdminHandler) BestProfession(w http.ResponseWriter, r *http.Request) {
	window, _, ok := parseReportQuery(w, r)
	if !ok {
		return
	}

	profession, err := h.reportService.BestProfession(r.Context(), window)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BestProfessionResponseDTO{Profession: profession})
}

// BestClients godoc
//
//	@Summary		Best paying clients
//	@Description	Clients ordered by the amount they paid for jobs in [start, end), highest first. Ties go to the lowest client id.
//	@Tags			Admin
//	@Produce		json
//	@Param			start	query		string						true	"Inclusive start, RFC 3339 or YYYY-MM-DD"
//	@Param			end		query		string						true	"Exclusive end, RFC 3339 or YYYY-MM-DD"
//	@Param			limit	query		int							false	"Number of clients"	default(2)
//	@Success		200		{array}		dto.BestClientResponseDTO	"Best clients"
//	@Failure		400		{object}	utils.Response				"Invalid date range or limit"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/admin/best-clients [get]
func (h *AdminHandler) BestClients(w http.ResponseWriter, r *http.Request) {
	window, limit, ok := parseReportQuery(w, r)
	if !ok {
		return
	}

	clients, err := h.reportService.BestClients(r.Context(), window, limit)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewBestClientsResponse(clients))
}

// Overview godoc
//
//	@Summary		Admin overview
//	@Description	Both admin reports for the same window in one response.
//	@Tags			Admin
//	@Produce		json
//	@Param			start	query		string					true	"Inclusive start, RFC 3339 or YYYY-MM-DD"
//	@Param			end		query		string					true	"Exclusive end, RFC 3339 or YYYY-MM-DD"
//	@Param			limit	query		int						false	"Number of clients"	default(2)
//	@Success		200		{object}	dto.OverviewResponseDTO	"Overview"
//	@Failure		400		{object}	utils.Response			"Invalid date range or limit"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/admin/overview [get]
func (h *AdminHandler) Overview(w http.ResponseWriter, r *http.Request) {
	window, limit, ok := parseReportQuery(w, r)
	if !ok {
		return
	}

	overview, err := h.reportService.Overview(r.Context(), window, limit)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.OverviewResponseDTO{
		BestProfession: overview.BestProfession,
		BestClients:    dto.NewBestClientsResponse(overview.BestClients),
	})
}

// parseReportQuery writes a 400 and returns false when the query is unusable.
func parseReportQuery(w http.ResponseWriter, r *http.Request) (daterange.Range, int, bool) {
	q := dto.ReportQueryDTO{
		Start: r.URL.Query().Get("start"),
		End:   r.URL.Query().Get("end"),
		Limit: dto.DefaultBestClientsLimit,
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "limit must be an integer")
			return daterange.Range{}, 0, false
		}
		q.Limit = limit
	}
	if err := validate.Struct(q); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return daterange.Range{}, 0, false
	}

	window, err := daterange.Parse(q.Start, q.End)
	if err != nil {
		utils.RespondWithServiceError(w, err)
		return daterange.Range{}, 0, false
	}
	return window, q.Limit, true
}
