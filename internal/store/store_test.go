package store_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/masto-go/mastogo/internal/entity"
	"github.com/masto-go/mastogo/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	stateStore, err := store.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return stateStore
}

func TestAuthorizationRoundTrip(t *testing.T) {
	stateStore := newTestStore(t)
	authorization := &entity.Authorization{ClientID: "ci", ClientSecret: "cs", Token: "tok"}

	if err := stateStore.SaveAuthorization("mastodon.example", authorization); err != nil {
		t.Fatalf("SaveAuthorization: %v", err)
	}
	loaded, err := stateStore.LoadAuthorization("mastodon.example")
	if err != nil {
		t.Fatalf("LoadAuthorization: %v", err)
	}
	if !reflect.DeepEqual(authorization, loaded) {
		t.Fatalf("round trip mismatch: %+v vs %+v", authorization, loaded)
	}
}

func TestAppRoundTrip(t *testing.T) {
	stateStore := newTestStore(t)
	app := &entity.App{
		ID:           "3",
		Name:         "mastogo",
		RedirectURI:  "urn:ietf:wg:oauth:2.0:oob",
		ClientID:     "ci",
		ClientSecret: "cs",
	}

	if err := stateStore.SaveApp("mastodon.example", app); err != nil {
		t.Fatalf("SaveApp: %v", err)
	}
	loaded, err := stateStore.LoadApp("mastodon.example")
	if err != nil {
		t.Fatalf("LoadApp: %v", err)
	}
	if loaded.ClientID != app.ClientID || loaded.ClientSecret != app.ClientSecret {
		t.Fatalf("loaded app = %+v", loaded)
	}
}

func TestRecordsAreKeyedByServer(t *testing.T) {
	stateStore := newTestStore(t)
	first := &entity.Authorization{ClientID: "a", ClientSecret: "b", Token: "t1"}
	second := &entity.Authorization{ClientID: "c", ClientSecret: "d", Token: "t2"}

	if err := stateStore.SaveAuthorization("one.example", first); err != nil {
		t.Fatalf("SaveAuthorization one: %v", err)
	}
	if err := stateStore.SaveAuthorization("two.example", second); err != nil {
		t.Fatalf("SaveAuthorization two: %v", err)
	}

	loaded, err := stateStore.LoadAuthorization("two.example")
	if err != nil {
		t.Fatalf("LoadAuthorization: %v", err)
	}
	if loaded.Token != "t2" {
		t.Fatalf("token = %q, want %q", loaded.Token, "t2")
	}
}

func TestLoadMissingRecord(t *testing.T) {
	stateStore := newTestStore(t)

	if _, err := stateStore.LoadAuthorization("absent.example"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
