package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConvertNumberToWords(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "zéro"},
		{1, "un"},
		{16, "seize"},
		{17, "dix-sept"},
		{21, "vingt et un"},
		{71, "soixante et onze"},
		{77, "soixante-dix-sept"},
		{80, "quatre-vingts"},
		{81, "quatre-vingt-un"},
		{91, "quatre-vingt-onze"},
		{100, "cent"},
		{200, "deux cents"},
		{201, "deux cent un"},
		{1000, "mille"},
		{80000, "quatre-vingt mille"},
		{270000, "deux cent soixante-dix mille"},
		{810000, "huit cent dix mille"},
		{2000000, "deux millions"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, convertNumberToWords(tt.n), "n=%d", tt.n)
	}
}

func TestAmountToWords(t *testing.T) {
	assert.Equal(t, "MILLE CINQ CENTS", AmountToWords(decimal.NewFromInt(1500)))
	assert.Equal(t, "MILLE CINQ CENTS ET 50/100", AmountToWords(decimal.RequireFromString("1500.50")))
	assert.Equal(t, "ZÉRO", AmountToWords(decimal.Zero))
}
