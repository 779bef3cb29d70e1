package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Withdrawal struct {
	ID        int64           `json:"id" db:"id"`
	UserID    int64           `json:"userId" db:"user_id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Fee       decimal.Decimal `json:"fee" db:"fee"`
	Method    string          `json:"method" db:"method"`
	Recipient string          `json:"recipient" db:"recipient"`
	Status    string          `json:"status" db:"status"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}

type SubmitWithdrawalInput struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Method    string          `json:"method" binding:"required"`
	Recipient string          `json:"recipient" binding:"required"`
}

type DecideWithdrawalInput struct {
	WithdrawalID int64  `json:"withdrawalId" binding:"required"`
	Status       string `json:"status" binding:"required"`
	Reason       string `json:"reason"`
}

type CancelWithdrawalInput struct {
	ID int64 `json:"id" binding:"required"`
}

// AuditRecord is append-only; one row per state transition.
type AuditRecord struct {
	ID           int64           `json:"id" db:"id"`
	WithdrawalID int64           `json:"withdrawalId" db:"withdrawal_id"`
	UserID       int64           `json:"userId" db:"user_id"`
	ActorID      int64           `json:"actorId" db:"actor_id"`
	ActivityType string          `json:"activityType" db:"activity_type"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Method       string          `json:"method" db:"method"`
	Recipient    string          `json:"recipient" db:"recipient"`
	Status       string          `json:"status" db:"status"`
	Description  string          `json:"description" db:"description"`
	Reason       string          `json:"reason" db:"reason"`
	IPAddress    string          `json:"ipAddress" db:"ip_address"`
	DeviceInfo   string          `json:"deviceInfo" db:"device_info"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
}
