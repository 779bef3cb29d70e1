package withdrawal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFeeOnePercentForListedMethods(t *testing.T) {
	amount := decimal.NewFromInt(100)
	want := decimal.NewFromInt(1)

	for _, method := range []string{
		MethodBkash, MethodNagad, MethodRocket,
		MethodBank, MethodUpay, MethodTap,
		MethodBitget, MethodBinance,
	} {
		assert.True(t, Fee(amount, method).Equal(want), "method %s", method)
	}
}

func TestFeeUnknownMethodFallsBackToDefault(t *testing.T) {
	amount := decimal.NewFromInt(500)

	fee := Fee(amount, "paypal")

	assert.True(t, fee.Equal(decimal.NewFromInt(5)))
}

func TestFeeIsExact(t *testing.T) {
	fee := Fee(decimal.NewFromFloat(99.95), MethodBkash)

	assert.True(t, fee.Equal(decimal.NewFromFloat(0.9995)))
}
