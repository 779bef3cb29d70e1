package withdrawal

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidBDPhoneNumber(t *testing.T) {
	tests := []struct {
		number string
		valid  bool
	}{
		{"+8801712345678", true},
		{"01712345678", true},
		{"1712345678", true},
		{"8801712345678", true},
		{"017-1234-5678", true},
		{"01312345678", true},
		{"01912345678", true},
		{"01212345678", false}, // operator prefix 12 does not exist
		{"171234567", false},   // nine digits
		{"017123456789", false},
		{"0212345678", false}, // landline, does not start with 1
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, ValidBDPhoneNumber(tt.number), "number %q", tt.number)
	}
}

func TestValidRecipientCrypto(t *testing.T) {
	bitgetAddr := strings.Repeat("Ab3", 12) + "xy" // 38 alphanumeric chars
	binanceAddr := "0x" + strings.Repeat("a1", 20)

	assert.True(t, ValidRecipient(MethodBitget, bitgetAddr))
	assert.False(t, ValidRecipient(MethodBitget, strings.Repeat("a", 33)))
	assert.False(t, ValidRecipient(MethodBitget, strings.Repeat("a", 43)))
	assert.False(t, ValidRecipient(MethodBitget, strings.Repeat("a", 34)+"!"))

	assert.True(t, ValidRecipient(MethodBinance, binanceAddr))
	assert.False(t, ValidRecipient(MethodBinance, strings.Repeat("a1", 20)), "missing 0x prefix")
	assert.False(t, ValidRecipient(MethodBinance, "0x"+strings.Repeat("a1", 19)))
	assert.False(t, ValidRecipient(MethodBinance, "0x"+strings.Repeat("zz", 20)))
}

func TestValidate(t *testing.T) {
	limits := DefaultLimits()
	balance := decimal.NewFromInt(500)

	tests := []struct {
		name      string
		amount    decimal.Decimal
		method    string
		recipient string
		available decimal.Decimal
		wantErr   error
	}{
		{"ok phone", decimal.NewFromInt(100), MethodBkash, "01712345678", balance, nil},
		{"ok crypto", decimal.NewFromInt(100), MethodBinance, "0x" + strings.Repeat("ab", 20), balance, nil},
		{"zero amount", decimal.Zero, MethodBkash, "01712345678", balance, ErrInvalidAmount},
		{"negative amount", decimal.NewFromInt(-5), MethodBkash, "01712345678", balance, ErrInvalidAmount},
		{"below min", decimal.NewFromInt(49), MethodBkash, "01712345678", balance, ErrAmountOutOfRange},
		{"above max", decimal.NewFromInt(1001), MethodBkash, "01712345678", balance, ErrAmountOutOfRange},
		{"unknown method", decimal.NewFromInt(100), "paypal", "01712345678", balance, ErrUnsupportedMethod},
		{"bad phone", decimal.NewFromInt(100), MethodNagad, "01212345678", balance, ErrInvalidRecipient},
		{"amount covered but fee not", decimal.NewFromInt(100), MethodBkash, "01712345678", decimal.NewFromInt(100), ErrInsufficientBalance},
		{"exactly covered with fee", decimal.NewFromInt(100), MethodBkash, "01712345678", decimal.NewFromInt(101), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.amount, tt.method, tt.recipient, tt.available, limits)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRangeCheckedBeforeMethod(t *testing.T) {
	err := Validate(decimal.NewFromInt(5), "paypal", "whatever", decimal.NewFromInt(500), DefaultLimits())

	assert.ErrorIs(t, err, ErrAmountOutOfRange)
}
