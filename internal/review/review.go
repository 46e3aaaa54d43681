package review

import (
	"strings"
)

// DefaultAvatar is shown for reviews stored without a profile picture.
const DefaultAvatar = "https://freesvg.org/img/abstract-user-flat-4.png"

const anonymous = "Anonymous"

// Review is one stored review of a listing. Field names match the persisted
// JSON so older collections keep loading.
type Review struct {
	User       string `json:"user"`
	Text       string `json:"text"`
	Rating     Rating `json:"rating,omitzero"`
	ProfilePic string `json:"profilePic,omitempty"`
}

// Author identifies who is submitting a review.
type Author struct {
	Name   string
	Avatar string
}

// New builds a review from validated input. An author without an avatar gets
// placeholder, or DefaultAvatar when placeholder is empty.
func New(author Author, n Normalized, placeholder string) Review {
	pic := author.Avatar
	if pic == "" {
		pic = placeholder
	}
	if pic == "" {
		pic = DefaultAvatar
	}
	return Review{
		User:       author.Name,
		Text:       n.Text,
		Rating:     NewRating(n.Rating),
		ProfilePic: pic,
	}
}

// DisplayName returns the author, or "Anonymous" when none was stored.
func (r Review) DisplayName() string {
	if name := strings.TrimSpace(r.User); name != "" {
		return name
	}
	return anonymous
}

// Avatar returns the stored picture or placeholder.
func (r Review) Avatar(placeholder string) string {
	if r.ProfilePic != "" {
		return r.ProfilePic
	}
	if placeholder != "" {
		return placeholder
	}
	return DefaultAvatar
}

// Stars is the display rating, always in [1,5].
func (r Review) Stars() int {
	return CoerceRatingForDisplay(r.Rating)
}

// Stars renders rating as five filled or hollow stars after coercion.
func Stars(rating any) string {
	n := CoerceRatingForDisplay(rating)
	return strings.Repeat("★", n) + strings.Repeat("☆", MaxRating-n)
}
