package cashbook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money pairs a decimal value with a display currency. The ledger itself is
// single-currency: amounts are stored as plain decimals, and Money is used at
// the rendering boundary to format them.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from a decimal value and a currency code.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// currency returns the money's currency.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the formatted representation of the money value, e.g. "$1,234.50".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Currency() string { return m.cur }

func (m Money) Amount() decimal.Decimal { return m.value }

func (m Money) IsZero() bool { return m.value.IsZero() }

func (m Money) IsNegative() bool { return m.value.IsNegative() }

func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

// SignedString returns the string representation of the money value with an
// explicit sign. Zero is represented as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
