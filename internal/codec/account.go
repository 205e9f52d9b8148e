package codec

import "github.com/masto-go/mastogo/internal/entity"

const (
	entityNameAccount = "Account"
	entityNameSource  = "Source"
	entityNameField   = "Field"
	entityNameEmoji   = "Emoji"
)

// DecodeAccount decodes a wire Account payload. The moved decoder recurses
// into DecodeAccount itself; the API nests one level deep in practice but no
// depth limit is imposed.
func DecodeAccount(data []byte) (*entity.Account, error) {
	account, err := decodeAccount(data)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func decodeAccount(data []byte) (entity.Account, error) {
	reader := newObjectReader(entityNameAccount, data)
	account := entity.Account{
		ID:             reader.requiredString("id"),
		Username:       reader.requiredString("username"),
		Acct:           reader.requiredString("acct"),
		DisplayName:    reader.requiredString("display_name"),
		Locked:         reader.requiredBool("locked"),
		CreatedAt:      reader.requiredString("created_at"),
		FollowersCount: reader.requiredInt("followers_count"),
		FollowingCount: reader.requiredInt("following_count"),
		StatusesCount:  reader.requiredInt("statuses_count"),
		Note:           reader.requiredString("note"),
		URL:            reader.requiredString("url"),
		Avatar:         reader.requiredString("avatar"),
		AvatarStatic:   reader.requiredString("avatar_static"),
		Header:         reader.requiredString("header"),
		HeaderStatic:   reader.requiredString("header_static"),
		Bot:            reader.optionalBool("bot", false),
	}
	account.Emojis = decodeSlice(reader, "emojis", decodeEmoji)
	account.Fields = decodeSlice(reader, "fields", decodeField)
	if raw, present := reader.nullableField("moved"); present {
		moved, err := decodeAccount(raw)
		if err != nil {
			reader.nested("moved", err)
		} else {
			account.Moved = &moved
		}
	}
	if raw, present := reader.nullableField("source"); present {
		source, err := decodeSource(raw)
		if err != nil {
			reader.nested("source", err)
		} else {
			account.Source = &source
		}
	}
	if err := reader.Err(); err != nil {
		return entity.Account{}, err
	}
	account.Raw = reader.payload()
	return account, nil
}

// DecodeSource decodes the preference block of the authenticated account.
func DecodeSource(data []byte) (*entity.Source, error) {
	source, err := decodeSource(data)
	if err != nil {
		return nil, err
	}
	return &source, nil
}

func decodeSource(data []byte) (entity.Source, error) {
	reader := newObjectReader(entityNameSource, data)
	source := entity.Source{
		Privacy:   reader.nullableVisibility("privacy"),
		Sensitive: reader.optionalBool("sensitive", false),
		Language:  reader.nullableString("language"),
		Note:      reader.requiredString("note"),
	}
	source.Fields = decodeSlice(reader, "fields", decodeField)
	if err := reader.Err(); err != nil {
		return entity.Source{}, err
	}
	source.Raw = reader.payload()
	return source, nil
}

// DecodeField decodes one profile name/value field.
func DecodeField(data []byte) (entity.Field, error) {
	return decodeField(data)
}

func decodeField(data []byte) (entity.Field, error) {
	reader := newObjectReader(entityNameField, data)
	field := entity.Field{
		Name:       reader.requiredString("name"),
		Value:      reader.requiredString("value"),
		VerifiedAt: reader.nullableString("verified_at"),
	}
	if err := reader.Err(); err != nil {
		return entity.Field{}, err
	}
	return field, nil
}

// DecodeEmoji decodes one custom emoji record.
func DecodeEmoji(data []byte) (entity.Emoji, error) {
	return decodeEmoji(data)
}

func decodeEmoji(data []byte) (entity.Emoji, error) {
	reader := newObjectReader(entityNameEmoji, data)
	emoji := entity.Emoji{
		Shortcode:       reader.requiredString("shortcode"),
		URL:             reader.requiredString("url"),
		StaticURL:       reader.requiredString("static_url"),
		VisibleInPicker: reader.optionalBool("visible_in_picker", false),
	}
	if err := reader.Err(); err != nil {
		return entity.Emoji{}, err
	}
	return emoji, nil
}
