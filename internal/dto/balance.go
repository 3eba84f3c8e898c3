package dto

import "encoding/json"

// DepositRequestDTO accepts the amount as a JSON number or a decimal string.
type DepositRequestDTO struct {
	Amount json.Number `json:"amount" validate:"required,numeric" swaggertype:"string" example:"50.00"`
}

type DepositResponseDTO struct {
	ProfileID int    `json:"profile_id" example:"1"`
	Balance   string `json:"balance" example:"1200.50"`
}
