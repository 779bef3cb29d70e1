package service

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"reward_wallet_back/internal/withdrawal"
	"reward_wallet_back/models"
	"reward_wallet_back/pkg/repository"
	"reward_wallet_back/pkg/utils"
)

type WithdrawalService struct {
	repos repository.Ledger
	rates RateProvider
	cfg   WithdrawalConfig
}

func NewWithdrawalService(repos repository.Ledger, rates RateProvider, cfg WithdrawalConfig) *WithdrawalService {
	return &WithdrawalService{
		repos: repos,
		rates: rates,
		cfg:   cfg,
	}
}

// Submit validates the intent, computes the fee and hands the atomic
// debit+create to the ledger. The pre-read balance only serves validation;
// the ledger re-checks it under lock, so two racing submissions cannot both
// pass on one balance.
func (s *WithdrawalService) Submit(actor models.Actor, input models.SubmitWithdrawalInput) (models.Withdrawal, error) {
	method := strings.ToLower(strings.TrimSpace(input.Method))

	balance, err := s.repos.GetBalance(actor.UserID)
	if err != nil {
		return models.Withdrawal{}, ledgerErr(err)
	}

	if err := withdrawal.Validate(input.Amount, method, input.Recipient, balance, s.cfg.Limits); err != nil {
		return models.Withdrawal{}, err
	}

	created, err := s.repos.CreateWithdrawal(models.Withdrawal{
		UserID:    actor.UserID,
		Amount:    input.Amount,
		Fee:       withdrawal.Fee(input.Amount, method),
		Method:    method,
		Recipient: input.Recipient,
		Status:    withdrawal.StatusPending,
	})
	if err != nil {
		return models.Withdrawal{}, ledgerErr(err)
	}

	go utils.NotifyNewWithdrawal(actor.TelegramID, created)

	return created, nil
}

func (s *WithdrawalService) List(actor models.Actor) ([]models.Withdrawal, error) {
	withdrawals, err := s.repos.ListWithdrawals(actor.UserID, s.cfg.PageSize)
	if err != nil {
		return nil, ledgerErr(err)
	}
	return withdrawals, nil
}

// Decide applies an admin approval or rejection to a pending request.
// Rejection refunds the amount; the fee stays debited either way.
func (s *WithdrawalService) Decide(actor models.Actor, input models.DecideWithdrawalInput) (models.Withdrawal, error) {
	if !actor.IsAdmin {
		return models.Withdrawal{}, withdrawal.ErrUnauthorized
	}

	w, err := s.repos.FindWithdrawal(input.WithdrawalID)
	if err != nil {
		return models.Withdrawal{}, ledgerErr(err)
	}
	if !withdrawal.CanTransition(w.Status, input.Status) {
		return models.Withdrawal{}, withdrawal.ErrInvalidStateTransition
	}

	audit := models.AuditRecord{
		ActorID:    actor.UserID,
		Reason:     input.Reason,
		IPAddress:  actor.IPAddress,
		DeviceInfo: actor.DeviceInfo,
	}

	switch input.Status {
	case withdrawal.StatusApproved:
		audit.ActivityType = withdrawal.ActivityApproved
		audit.Description = fmt.Sprintf("Withdrawal request approved for %s BDT via %s", w.Amount, w.Method)
		err = s.repos.ApproveWithdrawal(w.ID, audit)
	case withdrawal.StatusRejected:
		audit.ActivityType = withdrawal.ActivityRejected
		audit.Description = fmt.Sprintf("Withdrawal request rejected for %s BDT via %s", w.Amount, w.Method)
		err = s.repos.RejectWithdrawal(w.ID, audit)
	}
	if err != nil {
		return models.Withdrawal{}, ledgerErr(err)
	}

	w.Status = input.Status
	return w, nil
}

// Cancel lets the owner (or an admin) withdraw a pending request. The
// amount comes back, the fee does not, and the record is deleted after an
// audit entry equivalent to a rejection.
func (s *WithdrawalService) Cancel(actor models.Actor, input models.CancelWithdrawalInput) (CancelResult, error) {
	w, err := s.repos.FindWithdrawal(input.ID)
	if err != nil {
		return CancelResult{}, ledgerErr(err)
	}
	if w.UserID != actor.UserID && !actor.IsAdmin {
		return CancelResult{}, withdrawal.ErrUnauthorized
	}
	if w.Status != withdrawal.StatusPending {
		return CancelResult{}, withdrawal.ErrInvalidStateTransition
	}

	refunded, err := s.repos.CancelWithdrawal(w.ID, models.AuditRecord{
		ActorID:      actor.UserID,
		ActivityType: withdrawal.ActivityRejected,
		Description:  fmt.Sprintf("Withdrawal request cancelled by user for %s BDT via %s", w.Amount, w.Method),
		Reason:       "User cancelled withdrawal",
		IPAddress:    actor.IPAddress,
		DeviceInfo:   actor.DeviceInfo,
	})
	if err != nil {
		return CancelResult{}, ledgerErr(err)
	}

	return CancelResult{
		RefundedAmount:    refunded,
		RefundedAmountBDT: refunded.Mul(s.rates.USDToBDT()),
	}, nil
}

// ledgerErr passes domain kinds through untouched and classifies anything
// else (driver faults, broken connections) as a ledger failure.
func ledgerErr(err error) error {
	for _, kind := range []error{
		withdrawal.ErrNotFound,
		withdrawal.ErrInsufficientBalance,
		withdrawal.ErrInvalidStateTransition,
	} {
		if errors.Is(err, kind) {
			return err
		}
	}
	return pkgerrors.Wrapf(withdrawal.ErrLedgerUnavailable, "%v", err)
}
