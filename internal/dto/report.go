package dto

import (
	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/pkg/money"
)

const DefaultBestClientsLimit = 2

// ReportQueryDTO holds the query string of the admin reports.
type ReportQueryDTO struct {
	Start string `validate:"required"`
	End   string `validate:"required"`
	Limit int    `validate:"gte=1"`
}

type BestProfessionResponseDTO struct {
	Profession string `json:"profession" example:"Programmer"`
}

type BestClientResponseDTO struct {
	ID       int    `json:"id" example:"4"`
	FullName string `json:"fullName" example:"Ash Kethcum"`
	Paid     string `json:"paid" example:"2020.00"`
}

func NewBestClientsResponse(clients []domain.ClientPayments) []BestClientResponseDTO {
	response := make([]BestClientResponseDTO, len(clients))
	for i, c := range clients {
		response[i] = BestClientResponseDTO{
			ID:       c.ClientID,
			FullName: c.FullName,
			Paid:     c.Paid.StringFixed(money.Places),
		}
	}
	return response
}

type OverviewResponseDTO struct {
	BestProfession string                  `json:"best_profession" example:"Programmer"`
	BestClients    []BestClientResponseDTO `json:"best_clients"`
}
