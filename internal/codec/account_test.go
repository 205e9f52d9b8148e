package codec_test

import (
	"reflect"
	"testing"

	"github.com/masto-go/mastogo/internal/codec"
)

func TestDecodeAccountMinimalPayload(t *testing.T) {
	payload := marshalPayload(t, baseAccountPayload())

	account, err := codec.DecodeAccount(payload)
	assertNoError(t, err)

	if account.ID != "1" || account.Username != "u" || account.Acct != "u" {
		t.Fatalf("identity fields not decoded: %+v", account)
	}
	if account.DisplayName != "U" {
		t.Fatalf("display_name = %q, want %q", account.DisplayName, "U")
	}
	if account.Bot {
		t.Fatalf("missing bot flag must default to false")
	}
	if account.Fields == nil || len(account.Fields) != 0 {
		t.Fatalf("missing fields must decode to an empty list, got %#v", account.Fields)
	}
	if account.Moved != nil {
		t.Fatalf("missing moved must decode to nil, got %+v", account.Moved)
	}
	if account.Source != nil {
		t.Fatalf("missing source must decode to nil, got %+v", account.Source)
	}
	if len(account.Raw) == 0 {
		t.Fatalf("decoded account must retain its original payload")
	}
}

func TestDecodeAccountMovedNullAsAbsent(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(payload map[string]any)
	}{
		{
			name:   "key omitted entirely",
			mutate: func(map[string]any) {},
		},
		{
			name: "key present with JSON null",
			mutate: func(payload map[string]any) {
				payload["moved"] = nil
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			payload := baseAccountPayload()
			testCase.mutate(payload)

			account, err := codec.DecodeAccount(marshalPayload(t, payload))
			assertNoError(t, err)
			if account.Moved != nil {
				t.Fatalf("moved = %+v, want nil", account.Moved)
			}
		})
	}
}

func TestDecodeAccountMovedRecursion(t *testing.T) {
	payload := baseAccountPayload()
	successor := baseAccountPayload()
	successor["id"] = "2"
	successor["username"] = "u2"
	payload["moved"] = successor

	account, err := codec.DecodeAccount(marshalPayload(t, payload))
	assertNoError(t, err)
	if account.Moved == nil {
		t.Fatalf("moved account not decoded")
	}
	if account.Moved.ID != "2" || account.Moved.Username != "u2" {
		t.Fatalf("moved account fields = %+v", account.Moved)
	}
	if account.Moved.Moved != nil {
		t.Fatalf("nested moved must be absent, got %+v", account.Moved.Moved)
	}
}

func TestDecodeAccountFailures(t *testing.T) {
	testCases := []struct {
		name           string
		mutate         func(payload map[string]any)
		expectedReason codec.Reason
		expectedField  string
	}{
		{
			name: "required field absent",
			mutate: func(payload map[string]any) {
				delete(payload, "username")
			},
			expectedReason: codec.ReasonMissingField,
			expectedField:  "username",
		},
		{
			name: "required field wrong type",
			mutate: func(payload map[string]any) {
				payload["followers_count"] = "many"
			},
			expectedReason: codec.ReasonTypeMismatch,
			expectedField:  "followers_count",
		},
		{
			name: "optional flag wrong type",
			mutate: func(payload map[string]any) {
				payload["bot"] = "yes"
			},
			expectedReason: codec.ReasonTypeMismatch,
			expectedField:  "bot",
		},
		{
			name: "nested moved account invalid",
			mutate: func(payload map[string]any) {
				successor := baseAccountPayload()
				delete(successor, "username")
				payload["moved"] = successor
			},
			expectedReason: codec.ReasonMissingField,
			expectedField:  "moved.username",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			payload := baseAccountPayload()
			testCase.mutate(payload)

			_, err := codec.DecodeAccount(marshalPayload(t, payload))
			assertDecodeFailure(t, err, testCase.expectedReason, testCase.expectedField)
		})
	}
}

func TestAccountRoundTrip(t *testing.T) {
	payload := baseAccountPayload()
	payload["bot"] = true
	payload["fields"] = []any{
		map[string]any{"name": "site", "value": "https://x", "verified_at": "2020-01-01"},
		map[string]any{"name": "alt", "value": "none", "verified_at": nil},
	}
	payload["emojis"] = []any{
		map[string]any{"shortcode": "wave", "url": "https://x/wave", "static_url": "https://x/wave.s", "visible_in_picker": true},
	}
	successor := baseAccountPayload()
	successor["id"] = "2"
	payload["moved"] = successor

	decoded, err := codec.DecodeAccount(marshalPayload(t, payload))
	assertNoError(t, err)

	encoded, err := codec.EncodeAccount(decoded)
	assertNoError(t, err)

	redecoded, err := codec.DecodeAccount(encoded)
	assertNoError(t, err)

	clearAccountRaw(decoded)
	clearAccountRaw(redecoded)
	if !reflect.DeepEqual(decoded, redecoded) {
		t.Fatalf("round trip mismatch:\nfirst:  %+v\nsecond: %+v", decoded, redecoded)
	}
}
