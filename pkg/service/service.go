package service

import (
	"github.com/shopspring/decimal"
	"reward_wallet_back/internal/withdrawal"
	"reward_wallet_back/models"
	"reward_wallet_back/pkg/ratesclient"
	"reward_wallet_back/pkg/repository"
)

type Authorization interface {
	GetUserByTelegramId(telegramID int64) (models.User, error)
	CreateUser(user models.User) (int64, error)
}

type Withdrawals interface {
	Submit(actor models.Actor, input models.SubmitWithdrawalInput) (models.Withdrawal, error)
	List(actor models.Actor) ([]models.Withdrawal, error)
	Decide(actor models.Actor, input models.DecideWithdrawalInput) (models.Withdrawal, error)
	Cancel(actor models.Actor, input models.CancelWithdrawalInput) (CancelResult, error)
}

// RateProvider supplies the USD→BDT display rate.
type RateProvider interface {
	USDToBDT() decimal.Decimal
}

type CancelResult struct {
	RefundedAmount    decimal.Decimal `json:"refundedAmount"`
	RefundedAmountBDT decimal.Decimal `json:"refundedAmountBDT"`
}

// WithdrawalConfig carries the policy knobs read from the config file.
type WithdrawalConfig struct {
	Limits   withdrawal.Limits
	PageSize int
}

func DefaultWithdrawalConfig() WithdrawalConfig {
	return WithdrawalConfig{
		Limits:   withdrawal.DefaultLimits(),
		PageSize: 10,
	}
}

type Service struct {
	Authorization
	Withdrawals
}

func NewService(repos *repository.Repository, cfg WithdrawalConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Authorization),
		Withdrawals:   NewWithdrawalService(repos.Ledger, ratesclient.NewClient(), cfg),
	}
}
