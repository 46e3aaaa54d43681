package listing

import "testing"

func TestFormatterPrice(t *testing.T) {
	f := NewFormatter("en-US", "Rs.")
	tests := []struct {
		name string
		s    Summary
		want string
	}{
		{"sale regular", Summary{Type: Sale, RegularPrice: 1200000}, "Rs. 1,200,000"},
		{"sale offer", Summary{Type: Sale, Offer: true, RegularPrice: 1200000, DiscountPrice: 1100000}, "Rs. 1,100,000"},
		{"rent", Summary{Type: Rent, RegularPrice: 25000}, "Rs. 25,000 / month"},
		{"own currency", Summary{Type: Rent, RegularPrice: 900, Currency: "$"}, "$ 900 / month"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Price(tt.s); got != tt.want {
				t.Errorf("Price() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatterDiscount(t *testing.T) {
	f := NewFormatter("en-US", "Rs.")
	if got := f.Discount(Summary{RegularPrice: 500}); got != "" {
		t.Errorf("Discount(no offer) = %q", got)
	}
	got := f.Discount(Summary{Offer: true, RegularPrice: 1200000, DiscountPrice: 1100000})
	if got != "Rs. 100,000 OFF" {
		t.Errorf("Discount() = %q", got)
	}
}

func TestFormatterBadLocaleFallsBack(t *testing.T) {
	f := NewFormatter("not a locale!!", "Rs.")
	if got := f.Price(Summary{Type: Sale, RegularPrice: 1000}); got != "Rs. 1,000" {
		t.Errorf("Price() = %q", got)
	}
}

func TestLabels(t *testing.T) {
	one := Summary{Bedrooms: 1, Bathrooms: 1, Type: Rent, Parking: true, Furnished: true}
	many := Summary{Bedrooms: 3, Bathrooms: 2, Type: Sale}

	checks := []struct{ got, want string }{
		{Beds(one), "1 bed"},
		{Beds(many), "3 beds"},
		{Baths(one), "1 bath"},
		{Baths(many), "2 baths"},
		{TypeLabel(one), "For Rent"},
		{TypeLabel(many), "For Sale"},
		{ParkingLabel(one), "Parking spot"},
		{ParkingLabel(many), "No Parking"},
		{FurnishedLabel(one), "Furnished"},
		{FurnishedLabel(many), "Unfurnished"},
		{CoverImage(one), ""},
		{CoverImage(Summary{ImageURLs: []string{"a", "b"}}), "a"},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("got %q, want %q", c.got, c.want)
		}
	}
}
