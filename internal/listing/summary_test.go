package listing

import (
	"errors"
	"testing"

	"github.com/matheus3301/estate/internal/contracts"
)

func TestParse(t *testing.T) {
	body := []byte(`{"_id":"L1","name":"Flat","regularPrice":1200000,"discountPrice":1100000,"offer":true,"type":"sale","bedrooms":2,"bathrooms":1,"imageUrls":["https://img/1.jpg"],"userRef":"U1","__v":0}`)
	s, err := Parse(body, "Rs.")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if s.ID != "L1" || s.Type != Sale || s.Bedrooms != 2 || s.UserRef != "U1" {
		t.Errorf("Parse() = %+v", s)
	}
	if s.Currency != "Rs." {
		t.Errorf("Currency = %q, want default Rs.", s.Currency)
	}
	if EffectivePrice(*s) != 1100000 {
		t.Errorf("EffectivePrice = %v", EffectivePrice(*s))
	}
}

func TestParseRejectsSchemaViolations(t *testing.T) {
	for _, body := range []string{
		`{"_id":"L1","name":"Flat","regularPrice":1,"type":"lease"}`,
		`{"_id":"L1","name":"Flat","regularPrice":1,"type":"rent","bedrooms":-2}`,
		`{"_id":"L1","name":"Flat","regularPrice":1,"type":"rent","imageUrls":[]}`,
	} {
		_, err := Parse([]byte(body), "Rs.")
		var se *contracts.SchemaError
		if !errors.As(err, &se) {
			t.Errorf("Parse(%s) error = %v, want *contracts.SchemaError", body, err)
		}
	}
}

func TestParseList(t *testing.T) {
	body := []byte(`[{"_id":"A","name":"A","regularPrice":1,"type":"rent","currency":"$"},{"_id":"B","name":"B","regularPrice":2,"type":"sale"}]`)
	got, err := ParseList(body, "Rs.")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Currency != "$" || got[1].Currency != "Rs." {
		t.Errorf("ParseList() = %+v", got)
	}
}

func TestParseType(t *testing.T) {
	if ty, err := ParseType("rent"); err != nil || ty != Rent {
		t.Errorf("ParseType(rent) = %v, %v", ty, err)
	}
	if _, err := ParseType("lease"); err == nil {
		t.Error("ParseType(lease) should fail")
	}
}
