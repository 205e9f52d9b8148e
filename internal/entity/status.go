package entity

import "encoding/json"

// Status represents a single post. Reblog points at the wrapped status when
// this status re-shares another one; the API nests at most one level but the
// shape supports arbitrary depth.
type Status struct {
	ID                 string       `json:"id"`
	URI                string       `json:"uri"`
	URL                *string      `json:"url,omitempty"`
	Account            Account      `json:"account"`
	InReplyToID        *string      `json:"in_reply_to_id,omitempty"`
	InReplyToAccountID *string      `json:"in_reply_to_account_id,omitempty"`
	Reblog             *Status      `json:"reblog,omitempty"`
	Content            string       `json:"content"`
	CreatedAt          string       `json:"created_at"`
	Emojis             []Emoji      `json:"emojis"`
	RepliesCount       int          `json:"replies_count"`
	ReblogsCount       int          `json:"reblogs_count"`
	FavouritesCount    int          `json:"favourites_count"`
	Reblogged          bool         `json:"reblogged"`
	Favourited         bool         `json:"favourited"`
	Muted              bool         `json:"muted"`
	Sensitive          bool         `json:"sensitive"`
	SpoilerText        string       `json:"spoiler_text"`
	Visibility         Visibility   `json:"visibility"`
	MediaAttachments   []Attachment `json:"media_attachments"`
	Mentions           []Mention    `json:"mentions"`
	Tags               []Tag        `json:"tags"`
	Card               *Card        `json:"card,omitempty"`
	Poll               *Poll        `json:"poll,omitempty"`
	Application        *Application `json:"application,omitempty"`
	Language           *string      `json:"language,omitempty"`
	Pinned             bool         `json:"pinned"`

	Raw json.RawMessage `json:"-"`
}

// Mention references an account mentioned in a status body.
type Mention struct {
	URL      string `json:"url"`
	Username string `json:"username"`
	Acct     string `json:"acct"`
	ID       string `json:"id"`
}

// Tag is a hashtag attached to a status.
type Tag struct {
	Name    string    `json:"name"`
	URL     string    `json:"url"`
	History []History `json:"history"`
}

// History is one day of usage statistics for a hashtag.
type History struct {
	Day      string `json:"day"`
	Uses     int    `json:"uses"`
	Accounts int    `json:"accounts"`
}

// Card is the preview card generated for a link in a status.
type Card struct {
	URL          string   `json:"url"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        *string  `json:"image,omitempty"`
	Type         CardType `json:"type"`
	AuthorName   *string  `json:"author_name,omitempty"`
	AuthorURL    *string  `json:"author_url,omitempty"`
	ProviderName *string  `json:"provider_name,omitempty"`
	ProviderURL  *string  `json:"provider_url,omitempty"`
	HTML         *string  `json:"html,omitempty"`
	Width        *int     `json:"width,omitempty"`
	Height       *int     `json:"height,omitempty"`
	EmbedURL     *string  `json:"embed_url,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// Poll is a vote attached to a status.
type Poll struct {
	ID         string       `json:"id"`
	ExpiresAt  *string      `json:"expires_at,omitempty"`
	Expired    bool         `json:"expired"`
	Multiple   bool         `json:"multiple"`
	VotesCount int          `json:"votes_count"`
	Options    []PollOption `json:"options"`
	Voted      bool         `json:"voted"`

	Raw json.RawMessage `json:"-"`
}

// PollOption is a single choice within a poll.
type PollOption struct {
	Title      string `json:"title"`
	VotesCount int    `json:"votes_count"`
}

// Application names the client application that posted a status.
type Application struct {
	Name    string  `json:"name"`
	Website *string `json:"website,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// Context holds the thread surrounding a status.
type Context struct {
	Ancestors   []Status `json:"ancestors"`
	Descendants []Status `json:"descendants"`

	Raw json.RawMessage `json:"-"`
}

// ScheduledStatus is a status queued for future publication.
type ScheduledStatus struct {
	ID               string       `json:"id"`
	ScheduledAt      string       `json:"scheduled_at"`
	Params           StatusParams `json:"params"`
	MediaAttachments []Attachment `json:"media_attachments"`

	Raw json.RawMessage `json:"-"`
}

// StatusParams holds the submission parameters of a scheduled status.
type StatusParams struct {
	Text          string      `json:"text"`
	InReplyToID   *string     `json:"in_reply_to_id,omitempty"`
	MediaIDs      []string    `json:"media_ids"`
	Sensitive     bool        `json:"sensitive"`
	SpoilerText   *string     `json:"spoiler_text,omitempty"`
	Visibility    *Visibility `json:"visibility,omitempty"`
	ScheduledAt   *string     `json:"scheduled_at,omitempty"`
	ApplicationID *string     `json:"application_id,omitempty"`
}

// Conversation is a direct-message thread.
type Conversation struct {
	ID         string    `json:"id"`
	Accounts   []Account `json:"accounts"`
	LastStatus *Status   `json:"last_status,omitempty"`
	Unread     bool      `json:"unread"`

	Raw json.RawMessage `json:"-"`
}
