package recipe

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Number is a JSON number that also accepts a numeric string such as "4.5".
type Number float64

func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if strings.HasPrefix(s, `"`) {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("invalid number %s: %w", s, err)
		}
		s = strings.TrimSpace(unquoted)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid number %s", data)
	}
	*n = Number(f)
	return nil
}

func (n *Number) float() float64 { return float64(*n) }

// floatPtr converts an optional Number, keeping nil as nil.
func floatPtr(n *Number) *float64 {
	if n == nil {
		return nil
	}
	f := float64(*n)
	return &f
}
