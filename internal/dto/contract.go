package dto

import "github.com/GlebRadaev/gigledger/internal/domain"

type ContractResponseDTO struct {
	ID           int    `json:"id" example:"1"`
	Terms        string `json:"terms" example:"bla bla bla"`
	Status       string `json:"status" example:"in_progress"`
	ClientID     int    `json:"client_id" example:"1"`
	ContractorID int    `json:"contractor_id" example:"5"`
}

func NewContractResponse(c domain.Contract) ContractResponseDTO {
	return ContractResponseDTO{
		ID:           c.ID,
		Terms:        c.Terms,
		Status:       string(c.Status),
		ClientID:     c.ClientID,
		ContractorID: c.ContractorID,
	}
}
