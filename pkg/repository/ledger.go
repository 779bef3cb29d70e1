package repository

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"reward_wallet_back/internal/withdrawal"
	"reward_wallet_back/models"
)

const withdrawalColumns = `id, user_id, amount, fee, method, recipient, status, created_at`

type LedgerPostgres struct {
	db *sqlx.DB
}

func NewLedgerPostgres(db *sqlx.DB) *LedgerPostgres {
	return &LedgerPostgres{db: db}
}

func (r *LedgerPostgres) GetBalance(userID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := r.db.Get(&balance, `SELECT balance FROM users WHERE id = $1`, userID)
	if err == sql.ErrNoRows {
		return decimal.Zero, withdrawal.ErrNotFound
	}
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "get balance")
	}
	return balance, nil
}

func (r *LedgerPostgres) CreateWithdrawal(w models.Withdrawal) (models.Withdrawal, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return models.Withdrawal{}, errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	// The balance read under lock is the authoritative check; whatever the
	// caller saw before is treated as stale.
	var balance decimal.Decimal
	err = tx.Get(&balance, `SELECT balance FROM users WHERE id = $1 FOR UPDATE`, w.UserID)
	if err == sql.ErrNoRows {
		return models.Withdrawal{}, withdrawal.ErrNotFound
	}
	if err != nil {
		return models.Withdrawal{}, errors.Wrap(err, "lock balance")
	}

	total := w.Amount.Add(w.Fee)
	if balance.LessThan(total) {
		return models.Withdrawal{}, withdrawal.ErrInsufficientBalance
	}

	if err := debitTx(tx, w.UserID, total); err != nil {
		return models.Withdrawal{}, err
	}

	err = tx.QueryRow(`
        INSERT INTO withdrawals (user_id, amount, fee, method, recipient, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `, w.UserID, w.Amount, w.Fee, w.Method, w.Recipient, w.Status).Scan(&w.ID, &w.CreatedAt)
	if err != nil {
		return models.Withdrawal{}, errors.Wrap(err, "insert withdrawal")
	}

	if err := tx.Commit(); err != nil {
		return models.Withdrawal{}, errors.Wrap(err, "commit")
	}
	return w, nil
}

func (r *LedgerPostgres) FindWithdrawal(id int64) (models.Withdrawal, error) {
	var w models.Withdrawal
	err := r.db.Get(&w, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return models.Withdrawal{}, withdrawal.ErrNotFound
	}
	if err != nil {
		return models.Withdrawal{}, errors.Wrap(err, "find withdrawal")
	}
	return w, nil
}

func (r *LedgerPostgres) ListWithdrawals(userID int64, limit int) ([]models.Withdrawal, error) {
	withdrawals := []models.Withdrawal{}
	err := r.db.Select(&withdrawals, `
        SELECT `+withdrawalColumns+` FROM withdrawals
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2
    `, userID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "list withdrawals")
	}
	return withdrawals, nil
}

func (r *LedgerPostgres) ApproveWithdrawal(id int64, audit models.AuditRecord) error {
	return r.finishWithdrawal(id, withdrawal.StatusApproved, false, false, audit)
}

func (r *LedgerPostgres) RejectWithdrawal(id int64, audit models.AuditRecord) error {
	return r.finishWithdrawal(id, withdrawal.StatusRejected, true, false, audit)
}

func (r *LedgerPostgres) CancelWithdrawal(id int64, audit models.AuditRecord) (decimal.Decimal, error) {
	var refunded decimal.Decimal
	err := r.db.Get(&refunded, `SELECT amount FROM withdrawals WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return decimal.Zero, withdrawal.ErrNotFound
	}
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "find withdrawal")
	}
	if err := r.finishWithdrawal(id, withdrawal.StatusRejected, true, true, audit); err != nil {
		return decimal.Zero, err
	}
	return refunded, nil
}

// finishWithdrawal runs a terminal transition in one transaction: lock the
// row, require it to still be pending, update or delete it, credit the
// refund when asked, append the audit entry. The fee is never refunded.
func (r *LedgerPostgres) finishWithdrawal(id int64, status string, refund, remove bool, audit models.AuditRecord) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback()

	var w models.Withdrawal
	err = tx.Get(&w, `SELECT `+withdrawalColumns+` FROM withdrawals WHERE id = $1 FOR UPDATE`, id)
	if err == sql.ErrNoRows {
		return withdrawal.ErrNotFound
	}
	if err != nil {
		return errors.Wrap(err, "lock withdrawal")
	}
	if !withdrawal.CanTransition(w.Status, status) {
		return withdrawal.ErrInvalidStateTransition
	}

	if remove {
		_, err = tx.Exec(`DELETE FROM withdrawals WHERE id = $1`, id)
	} else {
		_, err = tx.Exec(`UPDATE withdrawals SET status = $1 WHERE id = $2`, status, id)
	}
	if err != nil {
		return errors.Wrap(err, "update withdrawal")
	}

	if refund {
		if err := creditTx(tx, w.UserID, w.Amount); err != nil {
			return err
		}
	}

	audit.WithdrawalID = w.ID
	audit.UserID = w.UserID
	audit.Amount = w.Amount
	audit.Method = w.Method
	audit.Recipient = w.Recipient
	audit.Status = status
	if err := appendAuditTx(tx, audit); err != nil {
		return err
	}

	return errors.Wrap(tx.Commit(), "commit")
}

func debitTx(tx *sqlx.Tx, userID int64, amount decimal.Decimal) error {
	res, err := tx.Exec(`
        UPDATE users SET balance = balance - $1
        WHERE id = $2 AND balance >= $1
    `, amount, userID)
	if err != nil {
		return errors.Wrap(err, "debit")
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "debit")
	}
	if affected == 0 {
		return withdrawal.ErrInsufficientBalance
	}
	return nil
}

func creditTx(tx *sqlx.Tx, userID int64, amount decimal.Decimal) error {
	_, err := tx.Exec(`UPDATE users SET balance = balance + $1 WHERE id = $2`, amount, userID)
	return errors.Wrap(err, "credit")
}

func appendAuditTx(tx *sqlx.Tx, a models.AuditRecord) error {
	_, err := tx.Exec(`
        INSERT INTO withdrawal_audit
            (withdrawal_id, user_id, actor_id, activity_type, amount, method,
             recipient, status, description, reason, ip_address, device_info)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    `, a.WithdrawalID, a.UserID, a.ActorID, a.ActivityType, a.Amount, a.Method,
		a.Recipient, a.Status, a.Description, a.Reason, a.IPAddress, a.DeviceInfo)
	return errors.Wrap(err, "append audit")
}
