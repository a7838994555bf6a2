package format

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	tests := []struct {
		name   string
		amount decimal.Decimal
		want   string
	}{
		{"zero", decimal.Zero, "0.00 ₽"},
		{"thousands separated", decimal.NewFromInt(12499), "12 499.00 ₽"},
		{"cents kept", decimal.New(99950, -2), "999.50 ₽"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Price(tt.amount))
		})
	}
}
