package contracts

import (
	"errors"
	"testing"
)

func TestValidateListing(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"minimal", `{"_id":"L1","name":"Flat","type":"rent","regularPrice":1000}`, false},
		{"full", `{"_id":"L1","name":"Flat","description":"d","address":"a","regularPrice":1200000,"discountPrice":1100000,"offer":true,"type":"sale","furnished":false,"parking":true,"bedrooms":2,"bathrooms":1,"imageUrls":["https://img/1.jpg"],"userRef":"U1","currency":"Rs."}`, false},
		{"unknown fields ignored", `{"_id":"L1","name":"Flat","type":"rent","regularPrice":1,"createdAt":"2024-01-01"}`, false},
		{"missing id", `{"name":"Flat","type":"rent","regularPrice":1}`, true},
		{"bad type", `{"_id":"L1","name":"Flat","type":"lease","regularPrice":1}`, true},
		{"negative price", `{"_id":"L1","name":"Flat","type":"rent","regularPrice":-5}`, true},
		{"negative bedrooms", `{"_id":"L1","name":"Flat","type":"rent","regularPrice":1,"bedrooms":-1}`, true},
		{"fractional bathrooms", `{"_id":"L1","name":"Flat","type":"rent","regularPrice":1,"bathrooms":1.5}`, true},
		{"empty images", `{"_id":"L1","name":"Flat","type":"rent","regularPrice":1,"imageUrls":[]}`, true},
		{"not an object", `[1]`, true},
		{"not json", `{oops`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(Listing, []byte(tt.body))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var se *SchemaError
				if !errors.As(err, &se) || se.Schema != Listing {
					t.Errorf("error = %T %v, want *SchemaError for listing", err, err)
				}
			}
		})
	}
}

func TestValidateListingsResolvesRef(t *testing.T) {
	ok := `[{"_id":"L1","name":"A","type":"rent","regularPrice":1},{"_id":"L2","name":"B","type":"sale","regularPrice":2}]`
	if err := Validate(Listings, []byte(ok)); err != nil {
		t.Fatalf("Validate(listings) error = %v", err)
	}
	bad := `[{"_id":"L1","name":"A","type":"rent","regularPrice":1},{"_id":"L2"}]`
	if err := Validate(Listings, []byte(bad)); err == nil {
		t.Fatal("Validate(listings) should reject an invalid element")
	}
}

func TestValidateUser(t *testing.T) {
	if err := Validate(User, []byte(`{"_id":"U1","username":"ravi","email":"ravi@example.com"}`)); err != nil {
		t.Fatalf("Validate(user) error = %v", err)
	}
	if err := Validate(User, []byte(`{"username":"ravi","email":"ravi@example.com","profilePic":"https://img/p.png"}`)); err != nil {
		t.Errorf("Validate(user without _id) error = %v", err)
	}
	if err := Validate(User, []byte(`{"_id":"U1","email":"not-an-email"}`)); err == nil {
		t.Fatal("Validate(user) should reject a malformed email")
	}
	if err := Validate(User, []byte(`{"_id":"U1","username":"ravi"}`)); err == nil {
		t.Fatal("Validate(user) should require an email")
	}
}

func TestValidateUnknownSchema(t *testing.T) {
	if err := Validate("nope", []byte(`{}`)); !errors.Is(err, ErrUnknownSchema) {
		t.Fatalf("error = %v, want ErrUnknownSchema", err)
	}
}
