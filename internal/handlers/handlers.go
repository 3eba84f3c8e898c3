package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/gigledger/docs"
	adminhandlers "github.com/GlebRadaev/gigledger/internal/handlers/admin"
	balancehandlers "github.com/GlebRadaev/gigledger/internal/handlers/balances"
	contracthandlers "github.com/GlebRadaev/gigledger/internal/handlers/contracts"
	jobhandlers "github.com/GlebRadaev/gigledger/internal/handlers/jobs"
	"github.com/GlebRadaev/gigledger/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type JobHandler interface {
	Pay(w http.ResponseWriter, r *http.Request)
	ListUnpaid(w http.ResponseWriter, r *http.Request)
	PaidTotal(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	Deposit(w http.ResponseWriter, r *http.Request)
}

type ContractHandler interface {
	GetContract(w http.ResponseWriter, r *http.Request)
	ListContracts(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	BestProfession(w http.ResponseWriter, r *http.Request)
	BestClients(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	JobHandler      JobHandler
	BalanceHandler  BalanceHandler
	ContractHandler ContractHandler
	AdminHandler    AdminHandler

	// Authenticate puts the caller's profile into the request context.
	Authenticate   func(http.Handler) http.Handler
	RequestTimeout time.Duration
}

func New(s *service.Services, authenticate func(http.Handler) http.Handler, requestTimeout time.Duration) *Handlers {
	return &Handlers{
		JobHandler:      jobhandlers.New(s.LedgerService, s.ContractService, s.ReportService),
		BalanceHandler:  balancehandlers.New(s.LedgerService),
		ContractHandler: contracthandlers.New(s.ContractService),
		AdminHandler:    adminhandlers.New(s.ReportService),
		Authenticate:    authenticate,
		RequestTimeout:  requestTimeout,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	if h.RequestTimeout > 0 {
		r.Use(middleware.Timeout(h.RequestTimeout))
	}

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(h.Authenticate)
		r.Route("/contracts", func(r chi.Router) {
			r.Get("/", h.ContractHandler.ListContracts)
			r.Get("/{id}", h.ContractHandler.GetContract)
		})
		r.Route("/jobs", func(r chi.Router) {
			r.Get("/unpaid", h.JobHandler.ListUnpaid)
			r.Get("/paid-total", h.JobHandler.PaidTotal)
			r.Post("/{jobID}/pay", h.JobHandler.Pay)
		})
		r.Post("/balances/deposit/{userID}", h.BalanceHandler.Deposit)
	})

	// Admin reports are read-only and not tied to a caller.
	r.Route("/admin", func(r chi.Router) {
		r.Get("/best-profession", h.AdminHandler.BestProfession)
		r.Get("/best-clients", h.AdminHandler.BestClients)
		r.Get("/overview", h.AdminHandler.Overview)
	})

	return r
}
