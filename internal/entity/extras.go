package entity

import "encoding/json"

// Notification is an event concerning the authenticated user. Status is set
// for mention, reblog, and favourite notifications and absent for follows.
type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	CreatedAt string           `json:"created_at"`
	Account   Account          `json:"account"`
	Status    *Status          `json:"status,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// Filter is a keyword filter applied on the server side.
type Filter struct {
	ID           string          `json:"id"`
	Phrase       string          `json:"phrase"`
	Context      []FilterContext `json:"context"`
	ExpiresAt    *string         `json:"expires_at,omitempty"`
	Irreversible bool            `json:"irreversible"`
	WholeWord    bool            `json:"whole_word"`

	Raw json.RawMessage `json:"-"`
}

// Instance describes a Mastodon server.
type Instance struct {
	URI            string    `json:"uri"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Email          string    `json:"email"`
	Version        string    `json:"version"`
	Thumbnail      *string   `json:"thumbnail,omitempty"`
	URLs           *URLs     `json:"urls,omitempty"`
	Stats          Stats     `json:"stats"`
	Languages      []string  `json:"languages"`
	ContactAccount *Account  `json:"contact_account,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// URLs holds the auxiliary endpoints advertised by an instance.
type URLs struct {
	StreamingAPI string `json:"streaming_api"`
}

// Stats holds an instance's aggregate usage counters.
type Stats struct {
	UserCount   int `json:"user_count"`
	StatusCount int `json:"status_count"`
	DomainCount int `json:"domain_count"`
}

// ListEntity is a user-curated account list. The name avoids shadowing the
// polymorphic list variants of Entity.
type ListEntity struct {
	ID    string `json:"id"`
	Title string `json:"title"`

	Raw json.RawMessage `json:"-"`
}

// PushSubscription describes a Web Push subscription.
type PushSubscription struct {
	ID        string `json:"id"`
	Endpoint  string `json:"endpoint"`
	ServerKey string `json:"server_key"`
	Alerts    Alerts `json:"alerts"`

	Raw json.RawMessage `json:"-"`
}

// Alerts flags which notification types a push subscription delivers.
type Alerts struct {
	Follow    bool `json:"follow"`
	Favourite bool `json:"favourite"`
	Reblog    bool `json:"reblog"`
	Mention   bool `json:"mention"`
}

// Relationship describes how the authenticated user relates to one account.
type Relationship struct {
	ID                  string `json:"id"`
	Following           bool   `json:"following"`
	FollowedBy          bool   `json:"followed_by"`
	Blocking            bool   `json:"blocking"`
	Muting              bool   `json:"muting"`
	MutingNotifications bool   `json:"muting_notifications"`
	Requested           bool   `json:"requested"`
	DomainBlocking      bool   `json:"domain_blocking"`
	ShowingReblogs      bool   `json:"showing_reblogs"`
	Endorsed            bool   `json:"endorsed"`

	Raw json.RawMessage `json:"-"`
}

// Results is a search result set.
type Results struct {
	Accounts []Account `json:"accounts"`
	Statuses []Status  `json:"statuses"`
	Hashtags []Tag     `json:"hashtags"`

	Raw json.RawMessage `json:"-"`
}

// Token is an OAuth access token issued by the token endpoint.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
	CreatedAt   int64  `json:"created_at"`

	Raw json.RawMessage `json:"-"`
}

// App is a registered client application including its OAuth credentials.
type App struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Website      *string `json:"website,omitempty"`
	RedirectURI  string  `json:"redirect_uri"`
	ClientID     string  `json:"client_id"`
	ClientSecret string  `json:"client_secret"`
	VapidKey     *string `json:"vapid_key,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// Authorization is the persisted login state for one server: the app
// credentials plus the user's access token.
type Authorization struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	Token        string `json:"token"`
}

// Error is the API error body. HTTPStatus is not part of the wire payload;
// the HTTP layer that observed the response supplies it at decode time.
type Error struct {
	HTTPStatus  string `json:"-"`
	Description string `json:"error"`

	Raw json.RawMessage `json:"-"`
}
