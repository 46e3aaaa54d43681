package contact

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Provider is a webmail service that can open a prefilled compose window.
type Provider string

const (
	Gmail   Provider = "gmail"
	Yahoo   Provider = "yahoo"
	Outlook Provider = "outlook"
)

// ErrUnknownProvider is returned for names outside Providers().
var ErrUnknownProvider = errors.New("unknown email provider")

// Providers lists the supported providers in display order.
func Providers() []Provider {
	return []Provider{Gmail, Yahoo, Outlook}
}

// ParseProvider accepts a provider name, case-insensitively.
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case Gmail, Yahoo, Outlook:
		return p, nil
	default:
		return "", fmt.Errorf("%w %q (want gmail, yahoo or outlook)", ErrUnknownProvider, s)
	}
}

// Name is the display name, e.g. "Gmail".
func (p Provider) Name() string {
	// A Caser is stateful, so one is made per call.
	return cases.Title(language.English).String(string(p))
}

// Label is the call to action shown once the provider is selected.
func (p Provider) Label() string { return "Send Message via " + p.Name() }

// Subject is the compose subject for a listing.
func Subject(listingName string) string { return "Regarding " + listingName }

// escape percent-encodes s for a query value, with spaces as %20.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ComposeLink builds the provider's compose URL. It is a pure function of its
// arguments.
func ComposeLink(p Provider, to, listingName, message string) (string, error) {
	to, subject, body := escape(to), escape(Subject(listingName)), escape(message)
	switch p {
	case Gmail:
		return "https://mail.google.com/mail/?view=cm&fs=1&to=" + to + "&su=" + subject + "&body=" + body, nil
	case Yahoo:
		return "https://compose.mail.yahoo.com/?to=" + to + "&subj=" + subject + "&body=" + body, nil
	case Outlook:
		return "https://outlook.live.com/owa/?path=/mail/action/compose&to=" + to + "&subject=" + subject + "&body=" + body, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownProvider, string(p))
	}
}
