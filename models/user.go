package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID         int64           `json:"id" db:"id"`
	TelegramID int64           `json:"telegram_id" db:"telegram_id"`
	Username   string          `json:"username" db:"username"`
	FirstName  string          `json:"first_name" db:"first_name"`
	LastName   string          `json:"last_name" db:"last_name"`
	Balance    decimal.Decimal `json:"balance" db:"balance"`
	IsAdmin    bool            `json:"is_admin" db:"is_admin"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}

// Actor is the pre-authenticated caller identity the middleware resolves
// from the X-Telegram-ID header. The service layer trusts it as-is.
type Actor struct {
	UserID     int64
	TelegramID int64
	IsAdmin    bool
	IPAddress  string
	DeviceInfo string
}
