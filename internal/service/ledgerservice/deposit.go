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

// Deposit credits a client's own balance. The balance a client holds after a
// deposit may not exceed 25% of the unpaid work on its active contracts, so the
// largest accepted amount is that ceiling minus the current balance.
//
// It runs at read committed: a payment committing between the unpaid-total
// read and the credit can leave the deposit slightly above the ceiling
// computed afterwards. The ceiling is a guardrail, not a conservation rule,
// and the credit itself is still conditional on the balance it read.
func (s *Service) Deposit(ctx context.Context, callerID, targetID int, amount decimal.Decimal) (*domain.DepositResult, error) {
	result, err := s.deposit(ctx, callerID, targetID, amount)

	metrics.DepositsTotal.WithLabelValues(resultLabel(err, "deposited")).Inc()
	if err != nil {
		fields := []zap.Field{
			zap.Int("callerID", callerID),
			zap.Int("targetID", targetID),
			zap.String("amount", amount.String()),
			zap.Error(err),
		}
		if isRejection(err) {
			zap.L().Info("deposit rejected", fields...)
		} else {
			zap.L().Error("deposit failed", fields...)
		}
		return nil, err
	}

	zap.L().Info("deposit credited",
		zap.Int("profileID", result.ProfileID),
		zap.String("balance", result.Balance.StringFixed(money.Places)),
	)
	return result, nil
}

func (s *Service) deposit(ctx context.Context, callerID, targetID int, amount decimal.Decimal) (*domain.DepositResult, error) {
	amount = money.Round(amount)
	if !amount.IsPositive() {
		return nil, domain.ErrInvalidAmount
	}
	if !policy.CanDeposit(callerID, targetID) {
		return nil, domain.ErrForbidden
	}

	var result *domain.DepositResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		profile, err := s.profiles.GetProfile(ctx, targetID)
		if err != nil {
			return fmt.Errorf("get profile %d: %w", targetID, err)
		}
		if !policy.CanHoldDeposit(profile) {
			return domain.ErrForbidden
		}

		unpaid, err := s.unpaidTotal(ctx, targetID)
		if err != nil {
			return err
		}
		headroom := money.DepositHeadroom(unpaid, profile.Balance)
		if amount.GreaterThan(headroom) {
			return &domain.DepositLimitError{Ceiling: headroom}
		}

		balance := money.Round(profile.Balance.Add(amount))
		if err := s.profiles.UpdateBalance(ctx, profile.ID, profile.Balance, balance); err != nil {
			return fmt.Errorf("credit profile %d: %w", profile.ID, err)
		}
		result = &domain.DepositResult{ProfileID: profile.ID, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// unpaidTotal sums unpaid job prices across the user's active contracts.
func (s *Service) unpaidTotal(ctx context.Context, userID int) (decimal.Decimal, error) {
	contracts, err := s.contracts.ListActiveContractsForUser(ctx, userID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("list active contracts of %d: %w", userID, err)
	}
	total, err := s.jobs.SumUnpaidJobsForContracts(ctx, contractIDs(contracts))
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum unpaid jobs of %d: %w", userID, err)
	}
	return total, nil
}
