package review

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		rating   int
		wantErr  error
		wantText string
	}{
		{"accepted", "Great flat", 4, nil, "Great flat"},
		{"trims text", "  nice view \n", 5, nil, "nice view"},
		{"min rating", "ok", 1, nil, "ok"},
		{"whitespace only", "   ", 4, ErrEmptyText, ""},
		{"empty", "", 3, ErrEmptyText, ""},
		{"rating zero", "ok", 0, ErrRatingOutOfRange, ""},
		{"rating six", "ok", 6, ErrRatingOutOfRange, ""},
		{"negative rating", "ok", -2, ErrRatingOutOfRange, ""},
		{"both invalid reports text", " ", 9, ErrEmptyText, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.text, tt.rating)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
				}
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("error %T is not *ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if got.Text != tt.wantText || got.Rating != tt.rating {
				t.Errorf("Validate() = %+v, want text %q rating %d", got, tt.wantText, tt.rating)
			}
		})
	}
}

func TestValidationErrorField(t *testing.T) {
	_, err := Validate("fine", 6)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Field != "rating" {
		t.Fatalf("error = %v, want rating field", err)
	}
	if ve.Error() != "rating: rating must be between 1 and 5" {
		t.Errorf("Error() = %q", ve.Error())
	}
}
