package codec_test

import (
	"reflect"
	"testing"

	"github.com/masto-go/mastogo/internal/codec"
	"github.com/masto-go/mastogo/internal/entity"
)

func TestDecodeStatusDefaults(t *testing.T) {
	status, err := codec.DecodeStatus(marshalPayload(t, baseStatusPayload()))
	assertNoError(t, err)

	if status.Reblogged || status.Favourited || status.Muted {
		t.Fatalf("missing flags must default to false: %+v", status)
	}
	if status.Visibility != entity.VisibilityPublic {
		t.Fatalf("visibility = %q, want %q", status.Visibility, entity.VisibilityPublic)
	}
	if status.URL != nil || status.InReplyToID != nil || status.Language != nil {
		t.Fatalf("missing nullable fields must decode to nil: %+v", status)
	}
	if len(status.MediaAttachments) != 0 || len(status.Mentions) != 0 || len(status.Tags) != 0 {
		t.Fatalf("missing lists must decode to empty: %+v", status)
	}
}

func TestDecodeStatusUnknownVisibility(t *testing.T) {
	payload := baseStatusPayload()
	payload["visibility"] = "bogus"

	_, err := codec.DecodeStatus(marshalPayload(t, payload))
	assertDecodeFailure(t, err, codec.ReasonUnknownEnumValue, "visibility")
}

func TestDecodeStatusReblogSelfReference(t *testing.T) {
	inner := baseStatusPayload()
	inner["id"] = "11"
	inner["reblog"] = nil
	payload := baseStatusPayload()
	payload["reblog"] = inner

	status, err := codec.DecodeStatus(marshalPayload(t, payload))
	assertNoError(t, err)

	if status.Reblog == nil {
		t.Fatalf("outer status reblog not decoded")
	}
	if status.Reblog.ID != "11" {
		t.Fatalf("reblog id = %q, want %q", status.Reblog.ID, "11")
	}
	if status.Reblog.Reblog != nil {
		t.Fatalf("inner status reblog must be absent, got %+v", status.Reblog.Reblog)
	}
}

func TestDecodeStatusNestedAccountErrorPath(t *testing.T) {
	payload := baseStatusPayload()
	author := baseAccountPayload()
	delete(author, "acct")
	payload["account"] = author

	_, err := codec.DecodeStatus(marshalPayload(t, payload))
	assertDecodeFailure(t, err, codec.ReasonMissingField, "account.acct")
}

func TestDecodePollDefaults(t *testing.T) {
	payload := map[string]any{
		"id":      "77",
		"options": []any{map[string]any{"title": "yes"}, map[string]any{"title": "no", "votes_count": 3}},
	}

	poll, err := codec.DecodePoll(marshalPayload(t, payload))
	assertNoError(t, err)

	if poll.Voted {
		t.Fatalf("missing voted must default to false")
	}
	if poll.ExpiresAt != nil {
		t.Fatalf("missing expires_at must decode to nil")
	}
	if len(poll.Options) != 2 {
		t.Fatalf("options length = %d, want 2", len(poll.Options))
	}
	if poll.Options[0].VotesCount != 0 {
		t.Fatalf("missing votes_count must default to 0, got %d", poll.Options[0].VotesCount)
	}
	if poll.Options[1].VotesCount != 3 {
		t.Fatalf("votes_count = %d, want 3", poll.Options[1].VotesCount)
	}
}

func TestStatusRoundTrip(t *testing.T) {
	payload := baseStatusPayload()
	payload["url"] = "https://x/@u/10"
	payload["language"] = "en"
	payload["reblogged"] = true
	payload["spoiler_text"] = "cw"
	payload["mentions"] = []any{
		map[string]any{"url": "https://x/@v", "username": "v", "acct": "v", "id": "2"},
	}
	payload["tags"] = []any{
		map[string]any{"name": "go", "url": "https://x/tags/go", "history": []any{
			map[string]any{"day": "2019-03-03", "uses": 4, "accounts": 2},
		}},
	}
	payload["poll"] = map[string]any{
		"id":      "77",
		"voted":   true,
		"options": []any{map[string]any{"title": "yes", "votes_count": 1}},
	}
	payload["application"] = map[string]any{"name": "mastogo", "website": nil}
	payload["card"] = map[string]any{
		"url": "https://x/article", "title": "t", "description": "d", "type": "link",
	}

	decoded, err := codec.DecodeStatus(marshalPayload(t, payload))
	assertNoError(t, err)

	encoded, err := codec.EncodeStatus(decoded)
	assertNoError(t, err)

	redecoded, err := codec.DecodeStatus(encoded)
	assertNoError(t, err)

	clearStatusRaw(decoded)
	clearStatusRaw(redecoded)
	if !reflect.DeepEqual(decoded, redecoded) {
		t.Fatalf("round trip mismatch:\nfirst:  %+v\nsecond: %+v", decoded, redecoded)
	}
}
