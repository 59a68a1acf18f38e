package services

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountToWords spells an amount in French capitals for receipts.
// Example: 1500.50 -> "MILLE CINQ CENTS ET 50/100"
func AmountToWords(amount decimal.Decimal) string {
	amount = amount.Round(2)
	integerPart := amount.IntPart()
	cents := amount.Sub(decimal.NewFromInt(integerPart)).Mul(decimal.NewFromInt(100)).Abs().IntPart()

	words := strings.ToUpper(convertNumberToWords(integerPart))
	if cents == 0 {
		return words
	}
	return fmt.Sprintf("%s ET %02d/100", words, cents)
}

var scales = []struct {
	value int64
	name  string
}{
	{1000000000, "milliard"},
	{1000000, "million"},
}

func convertNumberToWords(n int64) string {
	if n == 0 {
		return "zéro"
	}
	if n < 0 {
		return "moins " + convertNumberToWords(-n)
	}

	var parts []string
	for _, sc := range scales {
		if q := n / sc.value; q > 0 {
			name := sc.name
			if q > 1 {
				name += "s"
			}
			parts = append(parts, convertNumberToWords(q)+" "+name)
			n %= sc.value
		}
	}

	if q := n / 1000; q > 0 {
		if q == 1 {
			parts = append(parts, "mille")
		} else {
			// "cent" and "vingt" stay singular before mille
			parts = append(parts, below1000(q, false)+" mille")
		}
		n %= 1000
	}

	if n > 0 {
		parts = append(parts, below1000(n, true))
	}
	return strings.Join(parts, " ")
}

func below1000(n int64, final bool) string {
	h, r := n/100, n%100
	if h == 0 {
		return below100(r, final)
	}

	word := "cent"
	if h > 1 {
		word = units[h] + " cent"
		if r == 0 && final {
			word += "s"
		}
	}
	if r == 0 {
		return word
	}
	return word + " " + below100(r, final)
}

func below100(n int64, final bool) string {
	if n < 17 {
		return units[n]
	}
	if n < 20 {
		return "dix-" + units[n-10]
	}

	t, u := n/10, n%10
	switch t {
	case 7:
		if u == 1 {
			return "soixante et onze"
		}
		return "soixante-" + below100(10+u, final)
	case 8:
		if u == 0 {
			if final {
				return "quatre-vingts"
			}
			return "quatre-vingt"
		}
		return "quatre-vingt-" + units[u]
	case 9:
		return "quatre-vingt-" + below100(10+u, final)
	}

	if u == 0 {
		return tens[t]
	}
	if u == 1 {
		return tens[t] + " et un"
	}
	return tens[t] + "-" + units[u]
}

var units = []string{
	"", "un", "deux", "trois", "quatre", "cinq", "six", "sept", "huit", "neuf",
	"dix", "onze", "douze", "treize", "quatorze", "quinze", "seize",
}

var tens = []string{
	"", "dix", "vingt", "trente", "quarante", "cinquante", "soixante",
}
