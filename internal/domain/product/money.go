package product

import (
	"github.com/shopspring/decimal"
)

const moneyScale = 2

// Money is a non-negative amount with two fractional digits.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, ErrNegativePrice
	}
	return Money{amount: d.Round(moneyScale)}, nil
}

func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidPrice
	}
	return NewMoney(d)
}

// MustParseMoney is meant for fixtures and seed data.
func MustParseMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal { return m.amount }

func (m Money) Mul(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n))).Round(moneyScale)}
}

func (m Money) Equal(o Money) bool { return m.amount.Equal(o.amount) }

func (m Money) String() string { return m.amount.StringFixed(moneyScale) }
