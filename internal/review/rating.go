package review

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Rating holds a review's rating exactly as it was stored. Legacy
// collections may contain strings, fractions or garbage; they are kept
// verbatim and only coerced when displayed.
type Rating struct {
	raw json.RawMessage
}

// NewRating returns a rating holding n.
func NewRating(n int) Rating {
	return Rating{raw: json.RawMessage(strconv.Itoa(n))}
}

// IsZero reports whether no rating was stored.
func (r Rating) IsZero() bool { return len(r.raw) == 0 }

// Raw returns the stored JSON.
func (r Rating) Raw() json.RawMessage { return r.raw }

func (r Rating) MarshalJSON() ([]byte, error) {
	if r.IsZero() {
		return []byte("null"), nil
	}
	return r.raw, nil
}

func (r *Rating) UnmarshalJSON(b []byte) error {
	r.raw = bytes.Clone(b)
	return nil
}

func (r Rating) String() string {
	if r.IsZero() {
		return ""
	}
	return string(r.raw)
}

// CoerceRatingForDisplay maps any stored rating onto [1,5]. Values that do
// not parse as a number count as 0 and clamp to 1. Fractions truncate.
func CoerceRatingForDisplay(v any) int {
	f := toNumber(v)
	switch {
	case math.IsNaN(f), f < MinRating:
		return MinRating
	case f > MaxRating:
		return MaxRating
	default:
		return int(math.Trunc(f))
	}
}

func toNumber(v any) float64 {
	switch x := v.(type) {
	case nil:
		return 0
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case uint:
		return float64(x)
	case float32:
		return float64(x)
	case float64:
		return x
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		return parseNumber(x)
	case json.Number:
		return parseNumber(string(x))
	case Rating:
		return rawNumber(x.raw)
	case *Rating:
		if x == nil {
			return 0
		}
		return rawNumber(x.raw)
	case json.RawMessage:
		return rawNumber(x)
	default:
		return 0
	}
}

func rawNumber(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0
	}
	return toNumber(v)
}

func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
