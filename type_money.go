package investwise

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Money represents a monetary value as an exact decimal amount in major
// units, together with its ISO 4217 currency code.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M creates a new Money from a float amount and a currency code.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the money's currency, never nil.
func (m Money) currency() money.Currency {
	// the money constructor falls back to a generic currency for unknown codes.
	return *money.New(0, m.cur).Currency()
}

// String formats the amount with the currency's own formatter, e.g. "$1,234.50".
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string   { return m.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

// moneyJSON is the persisted form of a Money value in goal records.
type moneyJSON struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{Amount: m.value, Currency: m.cur})
}

func (m *Money) UnmarshalJSON(data []byte) error {
	var raw moneyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.value = raw.Amount
	m.cur = raw.Currency
	return nil
}
