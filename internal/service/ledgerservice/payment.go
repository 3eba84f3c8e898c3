package ledgerservice

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/internal/metrics"
	"github.com/GlebRadaev/gigledger/internal/policy"
	"github.com/GlebRadaev/gigledger/pkg/money"
)

// Pay moves the job price from the contract's client to its contractor and
// marks the job paid. The three writes commit together in one serializable
// transaction or not at all.
func (s *Service) Pay(ctx context.Context, callerID, jobID int) (*domain.PaymentResult, error) {
	var (
		result *domain.PaymentResult
		price  decimal.Decimal
	)
	err := s.txManager.BeginSerializable(ctx, func(ctx context.Context) error {
		var err error
		result, price, err = s.pay(ctx, callerID, jobID)
		return err
	})

	metrics.PaymentsTotal.WithLabelValues(resultLabel(err, "paid")).Inc()
	if err != nil {
		fields := []zap.Field{zap.Int("callerID", callerID), zap.Int("jobID", jobID), zap.Error(err)}
		if isRejection(err) {
			zap.L().Info("payment rejected", fields...)
		} else {
			zap.L().Error("payment failed", fields...)
		}
		return nil, err
	}

	amount, _ := price.Float64()
	metrics.TransferredAmountTotal.Add(amount)
	zap.L().Info("job paid",
		zap.Int("callerID", callerID),
		zap.Int("jobID", jobID),
		zap.String("clientBalance", result.ClientBalance.StringFixed(money.Places)),
		zap.String("contractorBalance", result.ContractorBalance.StringFixed(money.Places)),
	)
	return result, nil
}

func (s *Service) pay(ctx context.Context, callerID, jobID int) (*domain.PaymentResult, decimal.Decimal, error) {
	job, err := s.jobs.GetJobForUpdate(ctx, jobID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("get job %d: %w", jobID, err)
	}
	if job == nil {
		return nil, decimal.Zero, fmt.Errorf("job %d: %w", jobID, domain.ErrNotFound)
	}
	if job.Paid {
		return nil, decimal.Zero, domain.ErrAlreadyPaid
	}

	contract, err := s.contracts.GetContract(ctx, job.ContractID)
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("get contract %d: %w", job.ContractID, err)
	}
	if !policy.CanPayJob(callerID, contract) {
		return nil, decimal.Zero, domain.ErrForbidden
	}

	profiles, err := s.profiles.GetProfilesForUpdate(ctx, []int{contract.ClientID, contract.ContractorID})
	if err != nil {
		return nil, decimal.Zero, fmt.Errorf("lock profiles of contract %d: %w", contract.ID, err)
	}
	client, contractor := profiles[contract.ClientID], profiles[contract.ContractorID]
	if client == nil || contractor == nil {
		return nil, decimal.Zero, fmt.Errorf("parties of contract %d: %w", contract.ID, domain.ErrNotFound)
	}

	if client.Balance.LessThan(job.Price) {
		return nil, decimal.Zero, domain.ErrInsufficientBalance
	}

	clientBalance := money.Round(client.Balance.Sub(job.Price))
	contractorBalance := money.Round(contractor.Balance.Add(job.Price))

	if err := s.profiles.UpdateBalance(ctx, client.ID, client.Balance, clientBalance); err != nil {
		return nil, decimal.Zero, fmt.Errorf("debit client %d: %w", client.ID, err)
	}
	if err := s.profiles.UpdateBalance(ctx, contractor.ID, contractor.Balance, contractorBalance); err != nil {
		return nil, decimal.Zero, fmt.Errorf("credit contractor %d: %w", contractor.ID, err)
	}

	paidAt := s.now().UTC()
	if err := s.jobs.MarkPaid(ctx, job.ID, paidAt); err != nil {
		return nil, decimal.Zero, fmt.Errorf("mark job %d paid: %w", job.ID, err)
	}

	return &domain.PaymentResult{
		JobID:             job.ID,
		Paid:              true,
		PaymentDate:       paidAt,
		ClientBalance:     clientBalance,
		ContractorBalance: contractorBalance,
	}, job.Price, nil
}
