package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	d, err := ParseMoney("1998.00")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(1998)))

	d, err = ParseMoney("0.10")
	require.NoError(t, err)
	assert.Equal(t, "0.10", FormatMoney(d))

	_, err = ParseMoney("12,50")
	assert.Error(t, err)

	_, err = ParseMoney("")
	assert.Error(t, err)
}

func TestFormatMoneyAlwaysTwoDecimals(t *testing.T) {
	cases := map[string]string{
		"5":       "5.00",
		"19.9":    "19.90",
		"1310.17": "1310.17",
		"0":       "0.00",
	}
	for in, want := range cases {
		d, err := ParseMoney(in)
		require.NoError(t, err)
		assert.Equal(t, want, FormatMoney(d))
	}
}

func TestOrderGrandTotal(t *testing.T) {
	o := Order{TotalAmount: "1310.17", ShippingCost: "49.00"}
	assert.Equal(t, "1359.17", o.GrandTotal())

	o = Order{TotalAmount: "1998.00", ShippingCost: "0"}
	assert.Equal(t, "1998.00", o.GrandTotal())

	o = Order{TotalAmount: "bad", ShippingCost: "49.00"}
	assert.Equal(t, "", o.GrandTotal())
}
