package withdrawal

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Limits bound the requested amount in BDT.
type Limits struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

func DefaultLimits() Limits {
	return Limits{
		Min: decimal.NewFromInt(50),
		Max: decimal.NewFromInt(1000),
	}
}

var bitgetAddressRe = regexp.MustCompile(`^[0-9a-zA-Z]{34,42}$`)

// Bangladeshi mobile operator prefixes (the two digits after the leading 1).
var operatorPrefixes = map[string]bool{
	"13": true, "14": true, "15": true, "16": true,
	"17": true, "18": true, "19": true,
}

// Validate runs every pre-mutation check for a submission. It is a pure
// function; the authoritative balance check still happens at debit time.
func Validate(amount decimal.Decimal, method, recipient string, available decimal.Decimal, limits Limits) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if amount.LessThan(limits.Min) || amount.GreaterThan(limits.Max) {
		return ErrAmountOutOfRange
	}
	if !IsSupportedMethod(method) {
		return ErrUnsupportedMethod
	}
	if !ValidRecipient(method, recipient) {
		return ErrInvalidRecipient
	}
	if amount.Add(Fee(amount, method)).GreaterThan(available) {
		return ErrInsufficientBalance
	}
	return nil
}

// ValidRecipient checks the destination identifier against the rule for the
// method: BD phone number for mobile-money/bank methods, exchange address
// format for crypto methods, non-empty otherwise.
func ValidRecipient(method, recipient string) bool {
	if phoneMethods[method] {
		return ValidBDPhoneNumber(recipient)
	}
	switch method {
	case MethodBitget:
		return bitgetAddressRe.MatchString(recipient)
	case MethodBinance:
		return strings.HasPrefix(recipient, "0x") && common.IsHexAddress(recipient)
	}
	return strings.TrimSpace(recipient) != ""
}

// ValidBDPhoneNumber accepts local ("01712345678"), international
// ("+8801712345678") and bare ("1712345678") forms. After stripping
// non-digits, the 880 country code and a leading zero, the number must be
// ten digits starting with 1 and carry a known operator prefix.
func ValidBDPhoneNumber(number string) bool {
	var digits strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	local := digits.String()

	if strings.HasPrefix(local, "880") {
		local = local[3:]
	}
	if strings.HasPrefix(local, "0") {
		local = local[1:]
	}

	if len(local) != 10 || !strings.HasPrefix(local, "1") {
		return false
	}
	return operatorPrefixes[local[:2]]
}
