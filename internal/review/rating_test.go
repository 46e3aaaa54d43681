package review

import (
	"encoding/json"
	"math"
	"testing"
)

func TestCoerceRatingForDisplay(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"int in range", 3, 3},
		{"zero clamps up", 0, 1},
		{"negative clamps up", -4, 1},
		{"seven clamps down", 7, 5},
		{"float truncates", 4.9, 4},
		{"small fraction", 0.5, 1},
		{"numeric string", "4", 4},
		{"padded string", " 2 ", 2},
		{"non-numeric string", "abc", 1},
		{"empty string", "", 1},
		{"nil", nil, 1},
		{"true", true, 1},
		{"json number", json.Number("5"), 5},
		{"NaN", math.NaN(), 1},
		{"infinity", math.Inf(1), 5},
		{"stored rating", NewRating(2), 2},
		{"stored string rating", Rating{raw: json.RawMessage(`"3"`)}, 3},
		{"stored garbage", Rating{raw: json.RawMessage(`{"x":1}`)}, 1},
		{"missing rating", Rating{}, 1},
		{"unknown type", struct{}{}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoerceRatingForDisplay(tt.in); got != tt.want {
				t.Errorf("CoerceRatingForDisplay(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestCoerceAlwaysInRange(t *testing.T) {
	for _, v := range []any{-1e9, -1, 0, 1, 2.2, 5, 5.0001, 1e9, "x", nil} {
		got := CoerceRatingForDisplay(v)
		if got < MinRating || got > MaxRating {
			t.Errorf("CoerceRatingForDisplay(%v) = %d, out of range", v, got)
		}
	}
}

func TestRatingRoundTripsVerbatim(t *testing.T) {
	stored := `[{"user":"A","text":"t","rating":"7.5"},{"user":"B","text":"u","rating":null},{"user":"C","text":"v"}]`

	var reviews []Review
	if err := json.Unmarshal([]byte(stored), &reviews); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if reviews[0].Stars() != 5 || reviews[1].Stars() != 1 || reviews[2].Stars() != 1 {
		t.Errorf("stars = %d %d %d, want 5 1 1", reviews[0].Stars(), reviews[1].Stars(), reviews[2].Stars())
	}

	out, err := json.Marshal(reviews)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != stored {
		t.Errorf("re-encoded = %s\nwant        %s", out, stored)
	}
}

func TestStars(t *testing.T) {
	if got := Stars(3); got != "★★★☆☆" {
		t.Errorf("Stars(3) = %q", got)
	}
	if got := Stars("bad"); got != "★☆☆☆☆" {
		t.Errorf("Stars(bad) = %q", got)
	}
}
