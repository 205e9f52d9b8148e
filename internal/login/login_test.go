package login_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/masto-go/mastogo/internal/apiclient"
	"github.com/masto-go/mastogo/internal/entity"
	"github.com/masto-go/mastogo/internal/login"
)

const testAppJSON = `{
	"id":"3","name":"mastogo","redirect_uri":"urn:ietf:wg:oauth:2.0:oob",
	"client_id":"ci","client_secret":"cs"
}`

const testTokenJSON = `{
	"access_token":"tok","token_type":"Bearer","scope":"read write follow",
	"created_at":1550000000
}`

func newLoginTestClient(t *testing.T, handler http.Handler) *apiclient.Client {
	t.Helper()
	testServer := httptest.NewServer(handler)
	t.Cleanup(testServer.Close)

	client, err := apiclient.NewClient(apiclient.Config{Server: testServer.URL})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestRegisterApp(t *testing.T) {
	var seenForm url.Values
	client := newLoginTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/api/v1/apps" || request.Method != http.MethodPost {
			http.NotFound(writer, request)
			return
		}
		if err := request.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		seenForm = request.PostForm
		writer.Write([]byte(testAppJSON))
	}))

	app, err := login.RegisterApp(context.Background(), client, login.AppConfig{Name: "mastogo"})
	if err != nil {
		t.Fatalf("RegisterApp: %v", err)
	}
	if app.ClientID != "ci" || app.ClientSecret != "cs" {
		t.Fatalf("app credentials = %+v", app)
	}
	if seenForm.Get("client_name") != "mastogo" {
		t.Fatalf("client_name = %q", seenForm.Get("client_name"))
	}
	if seenForm.Get("redirect_uris") != login.RedirectURIOutOfBand {
		t.Fatalf("redirect_uris = %q, want out-of-band default", seenForm.Get("redirect_uris"))
	}
	if seenForm.Get("scopes") != login.DefaultScopes {
		t.Fatalf("scopes = %q, want default scopes", seenForm.Get("scopes"))
	}
}

func TestAuthorizeURL(t *testing.T) {
	app := &entity.App{ClientID: "ci", RedirectURI: login.RedirectURIOutOfBand}

	authorizeURL, err := login.AuthorizeURL("mastodon.example", app, "")
	if err != nil {
		t.Fatalf("AuthorizeURL: %v", err)
	}
	parsed, err := url.Parse(authorizeURL)
	if err != nil {
		t.Fatalf("parse authorize url: %v", err)
	}
	if parsed.Scheme != "https" || parsed.Host != "mastodon.example" {
		t.Fatalf("authorize url = %q", authorizeURL)
	}
	if !strings.HasSuffix(parsed.Path, "/oauth/authorize") {
		t.Fatalf("authorize path = %q", parsed.Path)
	}
	query := parsed.Query()
	if query.Get("client_id") != "ci" || query.Get("response_type") != "code" {
		t.Fatalf("authorize query = %v", query)
	}
	if query.Get("scope") != login.DefaultScopes {
		t.Fatalf("scope = %q, want default scopes", query.Get("scope"))
	}
}

func TestExchangeCode(t *testing.T) {
	var seenForm url.Values
	client := newLoginTestClient(t, http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if request.URL.Path != "/oauth/token" || request.Method != http.MethodPost {
			http.NotFound(writer, request)
			return
		}
		if err := request.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
		}
		seenForm = request.PostForm
		writer.Write([]byte(testTokenJSON))
	}))

	app := &entity.App{ClientID: "ci", ClientSecret: "cs", RedirectURI: login.RedirectURIOutOfBand}
	authorization, token, err := login.ExchangeCode(context.Background(), client, app, "auth-code")
	if err != nil {
		t.Fatalf("ExchangeCode: %v", err)
	}
	if seenForm.Get("grant_type") != "authorization_code" || seenForm.Get("code") != "auth-code" {
		t.Fatalf("token form = %v", seenForm)
	}
	if token.AccessToken != "tok" {
		t.Fatalf("access token = %q", token.AccessToken)
	}
	if authorization.ClientID != "ci" || authorization.Token != "tok" {
		t.Fatalf("authorization = %+v", authorization)
	}
}

func TestExchangeCodeRejectsEmptyCode(t *testing.T) {
	client := newLoginTestClient(t, http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Error("server must not be called for an empty code")
	}))

	app := &entity.App{ClientID: "ci", ClientSecret: "cs"}
	if _, _, err := login.ExchangeCode(context.Background(), client, app, "  "); err == nil {
		t.Fatalf("expected an error for an empty code")
	}
}
