package codec_test

import (
	"testing"

	"github.com/masto-go/mastogo/internal/codec"
	"github.com/masto-go/mastogo/internal/entity"
)

func baseAttachmentPayload(attachmentType string) map[string]any {
	return map[string]any{
		"id":          "5",
		"type":        attachmentType,
		"url":         "https://x/media/5",
		"preview_url": "https://x/media/5/small",
	}
}

func TestDecodeAttachmentImageMeta(t *testing.T) {
	payload := baseAttachmentPayload("image")
	payload["meta"] = map[string]any{
		"small":    map[string]any{"width": 100, "height": 50, "size": "100x50", "aspect": 2.0},
		"original": map[string]any{"width": 400, "height": 200},
		"focus":    map[string]any{"x": 0.5, "y": -0.5},
	}

	attachment, err := codec.DecodeAttachment(marshalPayload(t, payload))
	assertNoError(t, err)

	imageMeta, ok := attachment.Meta.(*entity.ImageMeta)
	if !ok {
		t.Fatalf("meta type = %T, want *entity.ImageMeta", attachment.Meta)
	}
	if imageMeta.Small == nil || imageMeta.Small.Width == nil || *imageMeta.Small.Width != 100 {
		t.Fatalf("small.width not recoverable: %+v", imageMeta.Small)
	}
	if imageMeta.Focus == nil || imageMeta.Focus.X != 0.5 || imageMeta.Focus.Y != -0.5 {
		t.Fatalf("focus not decoded: %+v", imageMeta.Focus)
	}
}

func TestDecodeAttachmentVideoMeta(t *testing.T) {
	payload := baseAttachmentPayload("gifv")
	payload["meta"] = map[string]any{
		"original": map[string]any{
			"width": 640, "height": 480, "frame_rate": "30/1", "duration": 2.5, "bitrate": 1000000,
		},
	}

	attachment, err := codec.DecodeAttachment(marshalPayload(t, payload))
	assertNoError(t, err)

	videoMeta, ok := attachment.Meta.(*entity.VideoMeta)
	if !ok {
		t.Fatalf("meta type = %T, want *entity.VideoMeta", attachment.Meta)
	}
	if videoMeta.Original == nil || videoMeta.Original.FrameRate == nil || *videoMeta.Original.FrameRate != "30/1" {
		t.Fatalf("original.frame_rate not recoverable: %+v", videoMeta.Original)
	}
	if videoMeta.Original.Duration == nil || *videoMeta.Original.Duration != 2.5 {
		t.Fatalf("original.duration not recoverable: %+v", videoMeta.Original)
	}
}

func TestDecodeAttachmentUnknownIgnoresMeta(t *testing.T) {
	payload := baseAttachmentPayload("unknown")
	payload["meta"] = map[string]any{"anything": map[string]any{"oddly": "shaped"}}

	attachment, err := codec.DecodeAttachment(marshalPayload(t, payload))
	assertNoError(t, err)
	if attachment.Meta != nil {
		t.Fatalf("unknown attachment must drop meta, got %+v", attachment.Meta)
	}
}

func TestDecodeAttachmentUnknownType(t *testing.T) {
	payload := baseAttachmentPayload("hologram")

	_, err := codec.DecodeAttachment(marshalPayload(t, payload))
	assertDecodeFailure(t, err, codec.ReasonUnknownEnumValue, "type")
}

func TestAttachmentRoundTrip(t *testing.T) {
	payload := baseAttachmentPayload("image")
	payload["meta"] = map[string]any{
		"small": map[string]any{"width": 100, "height": 50},
	}
	payload["description"] = "a picture"

	decoded, err := codec.DecodeAttachment(marshalPayload(t, payload))
	assertNoError(t, err)

	encoded, err := codec.EncodeAttachment(decoded)
	assertNoError(t, err)

	redecoded, err := codec.DecodeAttachment(encoded)
	assertNoError(t, err)

	if redecoded.ID != decoded.ID || redecoded.Type != decoded.Type {
		t.Fatalf("round trip identity mismatch: %+v vs %+v", decoded, redecoded)
	}
	imageMeta, ok := redecoded.Meta.(*entity.ImageMeta)
	if !ok || imageMeta.Small == nil || *imageMeta.Small.Width != 100 {
		t.Fatalf("round trip meta mismatch: %+v", redecoded.Meta)
	}
	if redecoded.Description == nil || *redecoded.Description != "a picture" {
		t.Fatalf("round trip description mismatch: %+v", redecoded.Description)
	}
}
