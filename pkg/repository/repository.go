package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"reward_wallet_back/models"
)

type Authorization interface {
	GetUserByTelegramId(telegramID int64) (models.User, error)
	CreateUser(user models.User) (int64, error)
}

// Ledger is the durable store for balances and withdrawal records. Every
// mutating call is atomic: the balance check, the balance change and the
// record change commit together or not at all.
type Ledger interface {
	GetBalance(userID int64) (decimal.Decimal, error)
	// CreateWithdrawal debits amount+fee and inserts the pending record in
	// one transaction. The balance is re-checked under lock at debit time.
	CreateWithdrawal(w models.Withdrawal) (models.Withdrawal, error)
	FindWithdrawal(id int64) (models.Withdrawal, error)
	ListWithdrawals(userID int64, limit int) ([]models.Withdrawal, error)
	// ApproveWithdrawal moves a pending record to approved. No balance
	// change: the funds already left at submission.
	ApproveWithdrawal(id int64, audit models.AuditRecord) error
	// RejectWithdrawal moves a pending record to rejected and credits the
	// amount (not the fee) back to the owner.
	RejectWithdrawal(id int64, audit models.AuditRecord) error
	// CancelWithdrawal credits the amount back, appends the audit entry and
	// deletes the pending record. Returns the refunded amount.
	CancelWithdrawal(id int64, audit models.AuditRecord) (decimal.Decimal, error)
}

type Repository struct {
	Authorization
	Ledger
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Authorization: NewAuthPostgres(db),
		Ledger:        NewLedgerPostgres(db),
	}
}
