package dto

import (
	"time"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/pkg/money"
)

type JobResponseDTO struct {
	ID          int        `json:"id" example:"2"`
	ContractID  int        `json:"contract_id" example:"1"`
	Description string     `json:"description" example:"work"`
	Price       string     `json:"price" example:"201.00"`
	Paid        bool       `json:"paid" example:"false"`
	PaymentDate *time.Time `json:"payment_date,omitempty" example:"2020-08-15T19:11:26.737Z"`
}

func NewJobResponse(j domain.Job) JobResponseDTO {
	return JobResponseDTO{
		ID:          j.ID,
		ContractID:  j.ContractID,
		Description: j.Description,
		Price:       j.Price.StringFixed(money.Places),
		Paid:        j.Paid,
		PaymentDate: j.PaymentDate,
	}
}

type PayJobResponseDTO struct {
	JobID             int       `json:"job_id" example:"2"`
	Paid              bool      `json:"paid" example:"true"`
	PaymentDate       time.Time `json:"payment_date" example:"2020-08-15T19:11:26.737Z"`
	ClientBalance     string    `json:"client_balance" example:"300.00"`
	ContractorBalance string    `json:"contractor_balance" example:"200.00"`
}

func NewPayJobResponse(r *domain.PaymentResult) PayJobResponseDTO {
	return PayJobResponseDTO{
		JobID:             r.JobID,
		Paid:              r.Paid,
		PaymentDate:       r.PaymentDate,
		ClientBalance:     r.ClientBalance.StringFixed(money.Places),
		ContractorBalance: r.ContractorBalance.StringFixed(money.Places),
	}
}

type PaidTotalResponseDTO struct {
	ProfileID int       `json:"profile_id" example:"1"`
	Start     time.Time `json:"start" example:"2020-08-01T00:00:00Z"`
	End       time.Time `json:"end" example:"2020-09-01T00:00:00Z"`
	Total     string    `json:"total" example:"442.00"`
}
