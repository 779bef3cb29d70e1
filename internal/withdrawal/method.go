package withdrawal

import "github.com/shopspring/decimal"

// Payment methods accepted by the withdrawal form. The first six settle to
// Bangladeshi mobile-money / bank accounts identified by phone number, the
// last two to crypto exchange deposit addresses.
const (
	MethodBkash   = "bkash"
	MethodNagad   = "nagad"
	MethodRocket  = "rocket"
	MethodBank    = "bank"
	MethodUpay    = "upay"
	MethodTap     = "tap"
	MethodBitget  = "bitget"
	MethodBinance = "binance"
)

var phoneMethods = map[string]bool{
	MethodBkash:  true,
	MethodNagad:  true,
	MethodRocket: true,
	MethodBank:   true,
	MethodUpay:   true,
	MethodTap:    true,
}

var cryptoMethods = map[string]bool{
	MethodBitget:  true,
	MethodBinance: true,
}

func IsSupportedMethod(method string) bool {
	return phoneMethods[method] || cryptoMethods[method]
}

// FeeSchedule maps to fee = amount * Percentage / 100 + Fixed.
type FeeSchedule struct {
	Percentage decimal.Decimal
	Fixed      decimal.Decimal
}

var defaultFeeSchedule = FeeSchedule{
	Percentage: decimal.NewFromInt(1),
	Fixed:      decimal.Zero,
}

var feeSchedules = map[string]FeeSchedule{
	MethodBkash:   {Percentage: decimal.NewFromInt(1), Fixed: decimal.Zero},
	MethodNagad:   {Percentage: decimal.NewFromInt(1), Fixed: decimal.Zero},
	MethodRocket:  {Percentage: decimal.NewFromInt(1), Fixed: decimal.Zero},
	MethodBank:    {Percentage: decimal.NewFromInt(1), Fixed: decimal.Zero},
	MethodUpay:    {Percentage: decimal.NewFromInt(1), Fixed: decimal.Zero},
	MethodTap:     {Percentage: decimal.NewFromInt(1), Fixed: decimal.Zero},
	MethodBitget:  {Percentage: decimal.NewFromInt(1), Fixed: decimal.Zero},
	MethodBinance: {Percentage: decimal.NewFromInt(1), Fixed: decimal.Zero},
}

// Fee computes the fee owed for the amount/method pair. Methods without a
// schedule fall back to the default one instead of failing, so a method
// added to the form before the schedule table keeps working.
func Fee(amount decimal.Decimal, method string) decimal.Decimal {
	schedule, ok := feeSchedules[method]
	if !ok {
		schedule = defaultFeeSchedule
	}
	percentageFee := amount.Mul(schedule.Percentage).Div(decimal.NewFromInt(100))
	return percentageFee.Add(schedule.Fixed)
}
