package jsonschema

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/goccy/go-json"
)

// Rat wraps a big.Rat to enable custom JSON marshaling and unmarshaling.
type Rat struct {
	*big.Rat
}

// UnmarshalJSON implements the json.Unmarshaler interface for Rat.
func (r *Rat) UnmarshalJSON(data []byte) error {
	var tmp interface{}
	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}

	converted, err := convertToBigRat(tmp)
	if err != nil {
		return err
	}

	r.Rat = converted
	return nil
}

// MarshalJSON implements the json.Marshaler interface for Rat.
func (r *Rat) MarshalJSON() ([]byte, error) {
	formattedValue := FormatRat(r)
	if strings.Contains(formattedValue, "/") {
		// Output as a JSON string if it still contains a fraction
		return json.Marshal(formattedValue)
	}
	// Output as a JSON number
	return []byte(formattedValue), nil
}

// convertToBigRat converts various types to big.Rat.
func convertToBigRat(data interface{}) (*big.Rat, error) {
	var str string
	switch v := data.(type) {
	case float64, float32, int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8:
		str = fmt.Sprint(v)
	case string:
		str = v
	default:
		return nil, ErrUnsupportedTypeForRat
	}

	numRat := new(big.Rat)
	if _, ok := numRat.SetString(str); !ok {
		return nil, ErrFailedToConvertToRat
	}
	return numRat, nil
}

// NewRat creates a new Rat instance from a given value.
func NewRat(value interface{}) *Rat {
	converted, err := convertToBigRat(value)
	if err != nil {
		return nil
	}
	return &Rat{converted}
}

// FormatRat formats a Rat as a string.
func FormatRat(r *Rat) string {
	if r == nil {
		return "null"
	}

	// Check if the Rat is an integer
	if r.IsInt() {
		return r.Num().String() // Output as a plain integer string
	}

	// Format as a decimal maintaining precision
	dec := r.FloatString(10) // You might adjust precision as needed

	// Trim unnecessary trailing zeros and decimal point if no fractional part
	trimmedDec := strings.TrimRight(dec, "0")
	trimmedDec = strings.TrimRight(trimmedDec, ".")

	if trimmedDec == "" {
		return "0" // correct trimming edge case of "0.0000"
	}

	return trimmedDec
}

// lcmRat returns the least common multiple of two strictly positive Rats.
// Unlike the reference implementation (which takes `abs(a*b) // gcd(a, b)`
// over native machine integers), this operates on exact big.Rat numerators
// and denominators so that multipleOf values with a fractional part merge
// correctly instead of silently truncating.
func lcmRat(a, b *Rat) *Rat {
	if a == nil || b == nil {
		return nil
	}

	// Reduce to a common denominator, then take the LCM of the numerators
	// over the GCD, scaled back down by that denominator.
	commonDenom := new(big.Int).Mul(a.Rat.Denom(), b.Rat.Denom())
	na := new(big.Int).Mul(a.Rat.Num(), b.Rat.Denom())
	nb := new(big.Int).Mul(b.Rat.Num(), a.Rat.Denom())

	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(na), new(big.Int).Abs(nb))
	if gcd.Sign() == 0 {
		return NewRat(0)
	}

	prod := new(big.Int).Mul(na, nb)
	prod.Abs(prod)
	lcmNum := new(big.Int).Div(prod, gcd)

	result := new(big.Rat).SetFrac(lcmNum, commonDenom)
	return &Rat{result}
}

// cmp compares two Rats, returning -1, 0, or 1 as a.Cmp(b) would.
func (r *Rat) cmp(other *Rat) int {
	return r.Rat.Cmp(other.Rat)
}
