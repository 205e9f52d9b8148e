package entity

// Visibility identifies the audience of a status. The constant values are
// the exact lowercase strings used on the wire.
type Visibility string

// Visibility wire values.
const (
	VisibilityPublic   Visibility = "public"
	VisibilityUnlisted Visibility = "unlisted"
	VisibilityPrivate  Visibility = "private"
	VisibilityDirect   Visibility = "direct"
)

// AttachmentType identifies the media kind of an attachment.
type AttachmentType string

// AttachmentType wire values.
const (
	AttachmentTypeUnknown AttachmentType = "unknown"
	AttachmentTypeImage   AttachmentType = "image"
	AttachmentTypeGifv    AttachmentType = "gifv"
	AttachmentTypeVideo   AttachmentType = "video"
)

// CardType identifies the preview-card layout of a linked resource.
type CardType string

// CardType wire values.
const (
	CardTypeLink  CardType = "link"
	CardTypePhoto CardType = "photo"
	CardTypeVideo CardType = "video"
	CardTypeRich  CardType = "rich"
)

// FilterContext identifies where a keyword filter applies.
type FilterContext string

// FilterContext wire values.
const (
	FilterContextHome          FilterContext = "home"
	FilterContextNotifications FilterContext = "notifications"
	FilterContextPublic        FilterContext = "public"
	FilterContextThread        FilterContext = "thread"
)

// NotificationType identifies the event that produced a notification.
type NotificationType string

// NotificationType wire values.
const (
	NotificationTypeFollow    NotificationType = "follow"
	NotificationTypeMention   NotificationType = "mention"
	NotificationTypeReblog    NotificationType = "reblog"
	NotificationTypeFavourite NotificationType = "favourite"
)

var (
	visibilityValues = map[Visibility]struct{}{
		VisibilityPublic:   {},
		VisibilityUnlisted: {},
		VisibilityPrivate:  {},
		VisibilityDirect:   {},
	}
	attachmentTypeValues = map[AttachmentType]struct{}{
		AttachmentTypeUnknown: {},
		AttachmentTypeImage:   {},
		AttachmentTypeGifv:    {},
		AttachmentTypeVideo:   {},
	}
	cardTypeValues = map[CardType]struct{}{
		CardTypeLink:  {},
		CardTypePhoto: {},
		CardTypeVideo: {},
		CardTypeRich:  {},
	}
	filterContextValues = map[FilterContext]struct{}{
		FilterContextHome:          {},
		FilterContextNotifications: {},
		FilterContextPublic:        {},
		FilterContextThread:        {},
	}
	notificationTypeValues = map[NotificationType]struct{}{
		NotificationTypeFollow:    {},
		NotificationTypeMention:   {},
		NotificationTypeReblog:    {},
		NotificationTypeFavourite: {},
	}
)

// Valid reports whether the value belongs to the closed visibility set.
func (value Visibility) Valid() bool {
	_, known := visibilityValues[value]
	return known
}

// Valid reports whether the value belongs to the closed attachment-type set.
func (value AttachmentType) Valid() bool {
	_, known := attachmentTypeValues[value]
	return known
}

// Valid reports whether the value belongs to the closed card-type set.
func (value CardType) Valid() bool {
	_, known := cardTypeValues[value]
	return known
}

// Valid reports whether the value belongs to the closed filter-context set.
func (value FilterContext) Valid() bool {
	_, known := filterContextValues[value]
	return known
}

// Valid reports whether the value belongs to the closed notification-type set.
func (value NotificationType) Valid() bool {
	_, known := notificationTypeValues[value]
	return known
}
