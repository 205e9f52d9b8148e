package codec_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/masto-go/mastogo/internal/codec"
	"github.com/masto-go/mastogo/internal/entity"
)

// baseAccountPayload is the minimal valid Account wire object used across
// the codec tests; cases mutate a copy of it.
func baseAccountPayload() map[string]any {
	return map[string]any{
		"id":              "1",
		"username":        "u",
		"acct":            "u",
		"display_name":    "U",
		"locked":          false,
		"created_at":      "2019-01-01",
		"followers_count": 0,
		"following_count": 0,
		"statuses_count":  0,
		"note":            "",
		"url":             "https://x/u",
		"avatar":          "a",
		"avatar_static":   "a",
		"header":          "h",
		"header_static":   "h",
		"emojis":          []any{},
	}
}

func baseStatusPayload() map[string]any {
	return map[string]any{
		"id":         "10",
		"uri":        "https://x/users/u/statuses/10",
		"account":    baseAccountPayload(),
		"content":    "<p>hello</p>",
		"created_at": "2019-02-02",
		"visibility": "public",
	}
}

func marshalPayload(t *testing.T, payload any) []byte {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return data
}

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func assertDecodeFailure(t *testing.T, err error, expectedReason codec.Reason, expectedField string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a decode error, got none")
	}
	var decodeError *codec.DecodeError
	if !errors.As(err, &decodeError) {
		t.Fatalf("expected *codec.DecodeError, got %T: %v", err, err)
	}
	if decodeError.Reason != expectedReason {
		t.Fatalf("reason = %q, want %q (error: %v)", decodeError.Reason, expectedReason, err)
	}
	if decodeError.Field != expectedField {
		t.Fatalf("field = %q, want %q (error: %v)", decodeError.Field, expectedField, err)
	}
}

// clearAccountRaw strips the raw-JSON passthrough from an account and every
// nested entity so decoded values can be compared with reflect.DeepEqual.
func clearAccountRaw(account *entity.Account) {
	if account == nil {
		return
	}
	account.Raw = nil
	clearAccountRaw(account.Moved)
	if account.Source != nil {
		account.Source.Raw = nil
	}
}

func clearStatusRaw(status *entity.Status) {
	if status == nil {
		return
	}
	status.Raw = nil
	clearAccountRaw(&status.Account)
	clearStatusRaw(status.Reblog)
	for index := range status.MediaAttachments {
		status.MediaAttachments[index].Raw = nil
	}
	if status.Card != nil {
		status.Card.Raw = nil
	}
	if status.Poll != nil {
		status.Poll.Raw = nil
	}
	if status.Application != nil {
		status.Application.Raw = nil
	}
}
