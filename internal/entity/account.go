// Package entity defines the Mastodon API entity shapes exchanged as wire
// JSON. Entities are immutable value records: they are produced by decoding
// wire payloads or by explicit construction, never mutated in place.
//
// Every entity carries a Raw field holding the original JSON payload it was
// decoded from. Raw is excluded from encoding and must be ignored when
// comparing entities; it exists so callers can recover API fields the typed
// model does not expose.
package entity

import "encoding/json"

// Account represents a Mastodon account profile.
type Account struct {
	ID             string   `json:"id"`
	Username       string   `json:"username"`
	Acct           string   `json:"acct"`
	DisplayName    string   `json:"display_name"`
	Locked         bool     `json:"locked"`
	CreatedAt      string   `json:"created_at"`
	FollowersCount int      `json:"followers_count"`
	FollowingCount int      `json:"following_count"`
	StatusesCount  int      `json:"statuses_count"`
	Note           string   `json:"note"`
	URL            string   `json:"url"`
	Avatar         string   `json:"avatar"`
	AvatarStatic   string   `json:"avatar_static"`
	Header         string   `json:"header"`
	HeaderStatic   string   `json:"header_static"`
	Emojis         []Emoji  `json:"emojis"`
	Fields         []Field  `json:"fields"`
	Bot            bool     `json:"bot"`
	Moved          *Account `json:"moved,omitempty"`
	Source         *Source  `json:"source,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// Field is a single name/value pair on an account profile.
type Field struct {
	Name       string  `json:"name"`
	Value      string  `json:"value"`
	VerifiedAt *string `json:"verified_at,omitempty"`
}

// Emoji is a custom emoji shortcode together with its rendered images.
type Emoji struct {
	Shortcode       string `json:"shortcode"`
	URL             string `json:"url"`
	StaticURL       string `json:"static_url"`
	VisibleInPicker bool   `json:"visible_in_picker"`
}

// Source holds the preference data attached to the authenticated user's own
// account. It is absent on every other account.
type Source struct {
	Privacy   *Visibility `json:"privacy,omitempty"`
	Sensitive bool        `json:"sensitive"`
	Language  *string     `json:"language,omitempty"`
	Note      string      `json:"note"`
	Fields    []Field     `json:"fields"`

	Raw json.RawMessage `json:"-"`
}
