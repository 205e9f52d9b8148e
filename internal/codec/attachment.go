package codec

import "github.com/masto-go/mastogo/internal/entity"

const (
	entityNameAttachment = "Attachment"
	entityNameImageMeta  = "ImageMeta"
	entityNameVideoMeta  = "VideoMeta"
	entityNameMetaFields = "MetaFields"
	entityNameFocus      = "Focus"
)

// DecodeAttachment decodes a media attachment. The type field is decoded
// first and selects the meta shape: image attachments get ImageMeta, video
// and gifv get VideoMeta. Unknown attachments never get meta: any meta
// payload on an unknown attachment is ignored, not validated.
func DecodeAttachment(data []byte) (*entity.Attachment, error) {
	attachment, err := decodeAttachment(data)
	if err != nil {
		return nil, err
	}
	return &attachment, nil
}

func decodeAttachment(data []byte) (entity.Attachment, error) {
	reader := newObjectReader(entityNameAttachment, data)
	attachment := entity.Attachment{
		ID:          reader.requiredString("id"),
		Type:        reader.requiredAttachmentType("type"),
		URL:         reader.requiredString("url"),
		RemoteURL:   reader.nullableString("remote_url"),
		PreviewURL:  reader.requiredString("preview_url"),
		TextURL:     reader.nullableString("text_url"),
		Description: reader.nullableString("description"),
	}
	if raw, present := reader.nullableField("meta"); present {
		switch attachment.Type {
		case entity.AttachmentTypeImage:
			meta, err := decodeImageMeta(raw)
			if err != nil {
				reader.nested("meta", err)
			} else {
				attachment.Meta = meta
			}
		case entity.AttachmentTypeVideo, entity.AttachmentTypeGifv:
			meta, err := decodeVideoMeta(raw)
			if err != nil {
				reader.nested("meta", err)
			} else {
				attachment.Meta = meta
			}
		case entity.AttachmentTypeUnknown:
			// unknown attachments carry no meta; the payload is dropped
		}
	}
	if err := reader.Err(); err != nil {
		return entity.Attachment{}, err
	}
	attachment.Raw = reader.payload()
	return attachment, nil
}

func decodeImageMeta(data []byte) (*entity.ImageMeta, error) {
	reader := newObjectReader(entityNameImageMeta, data)
	meta := &entity.ImageMeta{}
	if raw, present := reader.nullableField("small"); present {
		fields, err := decodeImageMetaFields(raw)
		if err != nil {
			reader.nested("small", err)
		} else {
			meta.Small = &fields
		}
	}
	if raw, present := reader.nullableField("original"); present {
		fields, err := decodeImageMetaFields(raw)
		if err != nil {
			reader.nested("original", err)
		} else {
			meta.Original = &fields
		}
	}
	if raw, present := reader.nullableField("focus"); present {
		focus, err := decodeFocus(raw)
		if err != nil {
			reader.nested("focus", err)
		} else {
			meta.Focus = &focus
		}
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return meta, nil
}

func decodeVideoMeta(data []byte) (*entity.VideoMeta, error) {
	reader := newObjectReader(entityNameVideoMeta, data)
	meta := &entity.VideoMeta{}
	if raw, present := reader.nullableField("small"); present {
		fields, err := decodeVideoMetaFields(raw)
		if err != nil {
			reader.nested("small", err)
		} else {
			meta.Small = &fields
		}
	}
	if raw, present := reader.nullableField("original"); present {
		fields, err := decodeVideoMetaFields(raw)
		if err != nil {
			reader.nested("original", err)
		} else {
			meta.Original = &fields
		}
	}
	if raw, present := reader.nullableField("focus"); present {
		focus, err := decodeFocus(raw)
		if err != nil {
			reader.nested("focus", err)
		} else {
			meta.Focus = &focus
		}
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return meta, nil
}

func decodeImageMetaFields(data []byte) (entity.ImageMetaFields, error) {
	reader := newObjectReader(entityNameMetaFields, data)
	fields := entity.ImageMetaFields{
		Width:  reader.nullableInt("width"),
		Height: reader.nullableInt("height"),
		Size:   reader.nullableString("size"),
		Aspect: reader.nullableFloat("aspect"),
	}
	if err := reader.Err(); err != nil {
		return entity.ImageMetaFields{}, err
	}
	return fields, nil
}

func decodeVideoMetaFields(data []byte) (entity.VideoMetaFields, error) {
	reader := newObjectReader(entityNameMetaFields, data)
	fields := entity.VideoMetaFields{
		Width:     reader.nullableInt("width"),
		Height:    reader.nullableInt("height"),
		FrameRate: reader.nullableString("frame_rate"),
		Duration:  reader.nullableFloat("duration"),
		Bitrate:   reader.nullableInt("bitrate"),
	}
	if err := reader.Err(); err != nil {
		return entity.VideoMetaFields{}, err
	}
	return fields, nil
}

func decodeFocus(data []byte) (entity.Focus, error) {
	reader := newObjectReader(entityNameFocus, data)
	focus := entity.Focus{
		X: reader.requiredFloat("x"),
		Y: reader.requiredFloat("y"),
	}
	if err := reader.Err(); err != nil {
		return entity.Focus{}, err
	}
	return focus, nil
}
