package decimal

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySuffix is appended by Format
const CurrencySuffix = "FCFA"

// Money represents a monetary amount with cent precision for display
type Money struct {
	decimal.Decimal
}

// NewMoney creates a Money from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a Money from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a Money from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// RoundCents rounds a float64 to two decimal places (half away from zero).
// The shortest decimal form of value is rounded, not its binary expansion, so
// 1.005 becomes 1.01 where a binary-exact rounding would give 1.00.
func RoundCents(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(2)
}

// Round rounds the amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// String returns the amount with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount the way French locales do, e.g. "1 234 567,89 FCFA".
// Trailing ",00" is dropped for whole amounts.
func (m Money) Format() string {
	return Group(m.Decimal, " ", ",") + " " + CurrencySuffix
}

// frenchPrinter groups thousands per CLDR French rules.
var frenchPrinter = message.NewPrinter(language.French)

var maxInt64 = decimal.NewFromInt(math.MaxInt64)

// frenchInteger formats a non-negative whole number. Magnitudes past int64
// go through float64 and keep only its significant digits.
func frenchInteger(whole decimal.Decimal) string {
	if whole.LessThanOrEqual(maxInt64) {
		return frenchPrinter.Sprintf("%d", whole.IntPart())
	}
	return frenchPrinter.Sprintf("%.0f", whole.InexactFloat64())
}

// Group renders d with two decimals, grouping thousands with sep and using
// point as the decimal mark. Whole amounts omit the fraction.
func Group(d decimal.Decimal, sep, point string) string {
	d = d.Round(2)
	abs := d.Abs()
	whole := abs.Truncate(0)
	cents := abs.Sub(whole).Shift(2).IntPart()

	// CLDR separates French thousands with a no-break space.
	spaces := strings.NewReplacer("\u00a0", sep, "\u202f", sep, " ", sep)
	out := spaces.Replace(frenchInteger(whole))
	if cents != 0 {
		out += fmt.Sprintf("%s%02d", point, cents)
	}
	if d.IsNegative() {
		out = "-" + out
	}
	return out
}
