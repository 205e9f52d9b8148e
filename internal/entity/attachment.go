package entity

import "encoding/json"

// Attachment is a media file attached to a status. The shape of Meta depends
// on Type: image attachments carry ImageMeta, video and gifv attachments
// carry VideoMeta, and unknown attachments never carry meta at all.
type Attachment struct {
	ID          string         `json:"id"`
	Type        AttachmentType `json:"type"`
	URL         string         `json:"url"`
	RemoteURL   *string        `json:"remote_url,omitempty"`
	PreviewURL  string         `json:"preview_url"`
	TextURL     *string        `json:"text_url,omitempty"`
	Meta        Meta           `json:"meta,omitempty"`
	Description *string        `json:"description,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// Meta is the closed set of attachment metadata shapes. The concrete type is
// selected by the attachment's Type field, not by anything in the meta
// payload itself.
type Meta interface {
	attachmentMeta()
}

// ImageMeta holds the metadata variants of an image attachment.
type ImageMeta struct {
	Small    *ImageMetaFields `json:"small,omitempty"`
	Original *ImageMetaFields `json:"original,omitempty"`
	Focus    *Focus           `json:"focus,omitempty"`
}

// VideoMeta holds the metadata variants of a video or gifv attachment.
type VideoMeta struct {
	Small    *VideoMetaFields `json:"small,omitempty"`
	Original *VideoMetaFields `json:"original,omitempty"`
	Focus    *Focus           `json:"focus,omitempty"`
}

func (*ImageMeta) attachmentMeta() {}
func (*VideoMeta) attachmentMeta() {}

// ImageMetaFields describes one rendition of an image attachment.
type ImageMetaFields struct {
	Width  *int     `json:"width,omitempty"`
	Height *int     `json:"height,omitempty"`
	Size   *string  `json:"size,omitempty"`
	Aspect *float64 `json:"aspect,omitempty"`
}

// VideoMetaFields describes one rendition of a video attachment.
type VideoMetaFields struct {
	Width     *int     `json:"width,omitempty"`
	Height    *int     `json:"height,omitempty"`
	FrameRate *string  `json:"frame_rate,omitempty"`
	Duration  *float64 `json:"duration,omitempty"`
	Bitrate   *int     `json:"bitrate,omitempty"`
}

// Focus is the preferred crop point of an image attachment.
type Focus struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
