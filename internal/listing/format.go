package listing

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders listing fields for display.
type Formatter struct {
	printer  *message.Printer
	currency string
}

// NewFormatter groups digits per locale (a BCP 47 tag such as "en-IN").
// currency is used for listings that carry none.
func NewFormatter(locale, currency string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{printer: message.NewPrinter(tag), currency: currency}
}

func (f *Formatter) unit(s Summary) string {
	if s.Currency != "" {
		return s.Currency
	}
	return f.currency
}

func (f *Formatter) amount(v float64) string {
	return f.printer.Sprintf("%d", int64(math.Round(v)))
}

// EffectivePrice is the discounted price for offers, otherwise the regular price.
func EffectivePrice(s Summary) float64 {
	if s.Offer {
		return s.DiscountPrice
	}
	return s.RegularPrice
}

// Price renders the effective price, e.g. "Rs. 12,00,000 / month".
func (f *Formatter) Price(s Summary) string {
	out := f.unit(s) + " " + f.amount(EffectivePrice(s))
	if s.Type == Rent {
		out += " / month"
	}
	return out
}

// Discount renders "Rs. 1,00,000 OFF" for offers and "" otherwise.
func (f *Formatter) Discount(s Summary) string {
	if !s.Offer {
		return ""
	}
	return f.unit(s) + " " + f.amount(s.RegularPrice-s.DiscountPrice) + " OFF"
}

// TypeLabel returns "For Rent" or "For Sale".
func TypeLabel(s Summary) string {
	if s.Type == Rent {
		return "For Rent"
	}
	return "For Sale"
}

// Beds pluralises the bedroom count.
func Beds(s Summary) string { return plural(s.Bedrooms, "bed") }

// Baths pluralises the bathroom count.
func Baths(s Summary) string { return plural(s.Bathrooms, "bath") }

// ParkingLabel returns "Parking spot" or "No Parking".
func ParkingLabel(s Summary) string {
	if s.Parking {
		return "Parking spot"
	}
	return "No Parking"
}

// FurnishedLabel returns "Furnished" or "Unfurnished".
func FurnishedLabel(s Summary) string {
	if s.Furnished {
		return "Furnished"
	}
	return "Unfurnished"
}

// CoverImage returns the first image URL, or "" when none.
func CoverImage(s Summary) string {
	if len(s.ImageURLs) == 0 {
		return ""
	}
	return s.ImageURLs[0]
}

func plural(n int, word string) string {
	if n > 1 {
		return fmt.Sprintf("%d %ss", n, word)
	}
	return fmt.Sprintf("%d %s", n, word)
}
