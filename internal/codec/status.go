package codec

import "github.com/masto-go/mastogo/internal/entity"

const (
	entityNameStatus          = "Status"
	entityNameMention         = "Mention"
	entityNameTag             = "Tag"
	entityNameHistory         = "History"
	entityNameCard            = "Card"
	entityNamePoll            = "Poll"
	entityNamePollOption      = "PollOption"
	entityNameApplication     = "Application"
	entityNameContext         = "Context"
	entityNameScheduledStatus = "ScheduledStatus"
	entityNameStatusParams    = "StatusParams"
	entityNameConversation    = "Conversation"
)

// DecodeStatus decodes a wire Status payload. The reblog decoder recurses
// into DecodeStatus itself; the API nests one level deep in practice but no
// depth limit is imposed.
func DecodeStatus(data []byte) (*entity.Status, error) {
	status, err := decodeStatus(data)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

func decodeStatus(data []byte) (entity.Status, error) {
	reader := newObjectReader(entityNameStatus, data)
	status := entity.Status{
		ID:                 reader.requiredString("id"),
		URI:                reader.requiredString("uri"),
		URL:                reader.nullableString("url"),
		InReplyToID:        reader.nullableString("in_reply_to_id"),
		InReplyToAccountID: reader.nullableString("in_reply_to_account_id"),
		Content:            reader.requiredString("content"),
		CreatedAt:          reader.requiredString("created_at"),
		RepliesCount:       reader.optionalInt("replies_count", 0),
		ReblogsCount:       reader.optionalInt("reblogs_count", 0),
		FavouritesCount:    reader.optionalInt("favourites_count", 0),
		Reblogged:          reader.optionalBool("reblogged", false),
		Favourited:         reader.optionalBool("favourited", false),
		Muted:              reader.optionalBool("muted", false),
		Sensitive:          reader.optionalBool("sensitive", false),
		SpoilerText:        reader.optionalString("spoiler_text", ""),
		Visibility:         reader.requiredVisibility("visibility"),
		Language:           reader.nullableString("language"),
		Pinned:             reader.optionalBool("pinned", false),
	}
	if raw, present := reader.requiredField("account"); present {
		account, err := decodeAccount(raw)
		if err != nil {
			reader.nested("account", err)
		} else {
			status.Account = account
		}
	}
	if raw, present := reader.nullableField("reblog"); present {
		reblog, err := decodeStatus(raw)
		if err != nil {
			reader.nested("reblog", err)
		} else {
			status.Reblog = &reblog
		}
	}
	status.Emojis = decodeSlice(reader, "emojis", decodeEmoji)
	status.MediaAttachments = decodeSlice(reader, "media_attachments", decodeAttachment)
	status.Mentions = decodeSlice(reader, "mentions", decodeMention)
	status.Tags = decodeSlice(reader, "tags", decodeTag)
	if raw, present := reader.nullableField("card"); present {
		card, err := decodeCard(raw)
		if err != nil {
			reader.nested("card", err)
		} else {
			status.Card = &card
		}
	}
	if raw, present := reader.nullableField("poll"); present {
		poll, err := decodePoll(raw)
		if err != nil {
			reader.nested("poll", err)
		} else {
			status.Poll = &poll
		}
	}
	if raw, present := reader.nullableField("application"); present {
		application, err := decodeApplication(raw)
		if err != nil {
			reader.nested("application", err)
		} else {
			status.Application = &application
		}
	}
	if err := reader.Err(); err != nil {
		return entity.Status{}, err
	}
	status.Raw = reader.payload()
	return status, nil
}

func decodeMention(data []byte) (entity.Mention, error) {
	reader := newObjectReader(entityNameMention, data)
	mention := entity.Mention{
		URL:      reader.requiredString("url"),
		Username: reader.requiredString("username"),
		Acct:     reader.requiredString("acct"),
		ID:       reader.requiredString("id"),
	}
	if err := reader.Err(); err != nil {
		return entity.Mention{}, err
	}
	return mention, nil
}

func decodeTag(data []byte) (entity.Tag, error) {
	reader := newObjectReader(entityNameTag, data)
	tag := entity.Tag{
		Name: reader.requiredString("name"),
		URL:  reader.requiredString("url"),
	}
	tag.History = decodeSlice(reader, "history", decodeHistory)
	if err := reader.Err(); err != nil {
		return entity.Tag{}, err
	}
	return tag, nil
}

func decodeHistory(data []byte) (entity.History, error) {
	reader := newObjectReader(entityNameHistory, data)
	history := entity.History{
		Day:      reader.requiredString("day"),
		Uses:     reader.optionalInt("uses", 0),
		Accounts: reader.optionalInt("accounts", 0),
	}
	if err := reader.Err(); err != nil {
		return entity.History{}, err
	}
	return history, nil
}

// DecodeCard decodes a link preview card.
func DecodeCard(data []byte) (*entity.Card, error) {
	card, err := decodeCard(data)
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func decodeCard(data []byte) (entity.Card, error) {
	reader := newObjectReader(entityNameCard, data)
	card := entity.Card{
		URL:          reader.requiredString("url"),
		Title:        reader.requiredString("title"),
		Description:  reader.requiredString("description"),
		Image:        reader.nullableString("image"),
		Type:         reader.requiredCardType("type"),
		AuthorName:   reader.nullableString("author_name"),
		AuthorURL:    reader.nullableString("author_url"),
		ProviderName: reader.nullableString("provider_name"),
		ProviderURL:  reader.nullableString("provider_url"),
		HTML:         reader.nullableString("html"),
		Width:        reader.nullableInt("width"),
		Height:       reader.nullableInt("height"),
		EmbedURL:     reader.nullableString("embed_url"),
	}
	if err := reader.Err(); err != nil {
		return entity.Card{}, err
	}
	card.Raw = reader.payload()
	return card, nil
}

// DecodePoll decodes a poll attached to a status.
func DecodePoll(data []byte) (*entity.Poll, error) {
	poll, err := decodePoll(data)
	if err != nil {
		return nil, err
	}
	return &poll, nil
}

func decodePoll(data []byte) (entity.Poll, error) {
	reader := newObjectReader(entityNamePoll, data)
	poll := entity.Poll{
		ID:         reader.requiredString("id"),
		ExpiresAt:  reader.nullableString("expires_at"),
		Expired:    reader.optionalBool("expired", false),
		Multiple:   reader.optionalBool("multiple", false),
		VotesCount: reader.optionalInt("votes_count", 0),
		Voted:      reader.optionalBool("voted", false),
	}
	poll.Options = decodeSlice(reader, "options", decodePollOption)
	if err := reader.Err(); err != nil {
		return entity.Poll{}, err
	}
	poll.Raw = reader.payload()
	return poll, nil
}

func decodePollOption(data []byte) (entity.PollOption, error) {
	reader := newObjectReader(entityNamePollOption, data)
	option := entity.PollOption{
		Title:      reader.requiredString("title"),
		VotesCount: reader.optionalInt("votes_count", 0),
	}
	if err := reader.Err(); err != nil {
		return entity.PollOption{}, err
	}
	return option, nil
}

// DecodeApplication decodes the client application stamp on a status.
func DecodeApplication(data []byte) (*entity.Application, error) {
	application, err := decodeApplication(data)
	if err != nil {
		return nil, err
	}
	return &application, nil
}

func decodeApplication(data []byte) (entity.Application, error) {
	reader := newObjectReader(entityNameApplication, data)
	application := entity.Application{
		Name:    reader.requiredString("name"),
		Website: reader.nullableString("website"),
	}
	if err := reader.Err(); err != nil {
		return entity.Application{}, err
	}
	application.Raw = reader.payload()
	return application, nil
}

// DecodeContext decodes the ancestor/descendant thread around a status.
func DecodeContext(data []byte) (*entity.Context, error) {
	context, err := decodeContext(data)
	if err != nil {
		return nil, err
	}
	return &context, nil
}

func decodeContext(data []byte) (entity.Context, error) {
	reader := newObjectReader(entityNameContext, data)
	threadContext := entity.Context{}
	reader.requirePresence("ancestors")
	reader.requirePresence("descendants")
	threadContext.Ancestors = decodeSlice(reader, "ancestors", decodeStatus)
	threadContext.Descendants = decodeSlice(reader, "descendants", decodeStatus)
	if err := reader.Err(); err != nil {
		return entity.Context{}, err
	}
	threadContext.Raw = reader.payload()
	return threadContext, nil
}

// DecodeScheduledStatus decodes a status queued for future publication.
func DecodeScheduledStatus(data []byte) (*entity.ScheduledStatus, error) {
	scheduled, err := decodeScheduledStatus(data)
	if err != nil {
		return nil, err
	}
	return &scheduled, nil
}

func decodeScheduledStatus(data []byte) (entity.ScheduledStatus, error) {
	reader := newObjectReader(entityNameScheduledStatus, data)
	scheduled := entity.ScheduledStatus{
		ID:          reader.requiredString("id"),
		ScheduledAt: reader.requiredString("scheduled_at"),
	}
	if raw, present := reader.requiredField("params"); present {
		params, err := decodeStatusParams(raw)
		if err != nil {
			reader.nested("params", err)
		} else {
			scheduled.Params = params
		}
	}
	scheduled.MediaAttachments = decodeSlice(reader, "media_attachments", decodeAttachment)
	if err := reader.Err(); err != nil {
		return entity.ScheduledStatus{}, err
	}
	scheduled.Raw = reader.payload()
	return scheduled, nil
}

func decodeStatusParams(data []byte) (entity.StatusParams, error) {
	reader := newObjectReader(entityNameStatusParams, data)
	params := entity.StatusParams{
		Text:          reader.requiredString("text"),
		InReplyToID:   reader.nullableString("in_reply_to_id"),
		MediaIDs:      reader.stringList("media_ids"),
		Sensitive:     reader.optionalBool("sensitive", false),
		SpoilerText:   reader.nullableString("spoiler_text"),
		Visibility:    reader.nullableVisibility("visibility"),
		ScheduledAt:   reader.nullableString("scheduled_at"),
		ApplicationID: reader.nullableString("application_id"),
	}
	if err := reader.Err(); err != nil {
		return entity.StatusParams{}, err
	}
	return params, nil
}

// DecodeConversation decodes a direct-message thread.
func DecodeConversation(data []byte) (*entity.Conversation, error) {
	conversation, err := decodeConversation(data)
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

func decodeConversation(data []byte) (entity.Conversation, error) {
	reader := newObjectReader(entityNameConversation, data)
	conversation := entity.Conversation{
		ID:     reader.requiredString("id"),
		Unread: reader.optionalBool("unread", false),
	}
	conversation.Accounts = decodeSlice(reader, "accounts", decodeAccount)
	if raw, present := reader.nullableField("last_status"); present {
		status, err := decodeStatus(raw)
		if err != nil {
			reader.nested("last_status", err)
		} else {
			conversation.LastStatus = &status
		}
	}
	if err := reader.Err(); err != nil {
		return entity.Conversation{}, err
	}
	conversation.Raw = reader.payload()
	return conversation, nil
}
