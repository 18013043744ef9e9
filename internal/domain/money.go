package domain

import (
	"math"
	"strconv"
)

// Cents is an amount in the gateway's minor currency unit.
type Cents int64

// CentsFromAmount converts a decimal major-unit amount to cents.
func CentsFromAmount(amount float64) Cents {
	return Cents(math.Round(amount * 100))
}

// Amount returns the value in major units.
func (c Cents) Amount() float64 {
	return float64(c) / 100
}

func (c Cents) String() string {
	return strconv.FormatFloat(c.Amount(), 'f', 2, 64)
}

// MarshalJSON encodes the amount as a decimal number of major units.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(c.Amount(), 'f', -1, 64)), nil
}
