// Package login implements the OAuth login sequence: registering a client
// application, building the user-facing authorize URL, and exchanging an
// authorization code for an access token. Token refresh is out of scope.
package login

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/masto-go/mastogo/internal/apiclient"
	"github.com/masto-go/mastogo/internal/codec"
	"github.com/masto-go/mastogo/internal/entity"
)

const (
	endpointApps      = "/api/v1/apps"
	endpointAuthorize = "/oauth/authorize"
	endpointToken     = "/oauth/token"

	paramClientName   = "client_name"
	paramRedirectURIs = "redirect_uris"
	paramRedirectURI  = "redirect_uri"
	paramScopes       = "scopes"
	paramScope        = "scope"
	paramWebsite      = "website"
	paramClientID     = "client_id"
	paramClientSecret = "client_secret"
	paramResponseType = "response_type"
	paramGrantType    = "grant_type"
	paramCode         = "code"

	responseTypeCode           = "code"
	grantTypeAuthorizationCode = "authorization_code"

	// DefaultScopes covers the read/write/follow surface the example client
	// uses; callers needing push must request it explicitly.
	DefaultScopes = "read write follow"

	// RedirectURIOutOfBand asks the server to display the authorization code
	// instead of redirecting, for clients without a callback endpoint.
	RedirectURIOutOfBand = "urn:ietf:wg:oauth:2.0:oob"

	defaultServerScheme = "https://"
	schemeSeparator     = "://"

	errMessageEmptyAppName = "application name cannot be empty"
	errMessageEmptyCode    = "authorization code cannot be empty"
	errMessageParseServer  = "parse server url"
)

// AppConfig describes the client application to register.
type AppConfig struct {
	Name        string
	Website     string
	RedirectURI string
	Scopes      string
}

// RegisterApp registers a client application with the server and returns its
// OAuth credentials.
func RegisterApp(ctx context.Context, client *apiclient.Client, configuration AppConfig) (*entity.App, error) {
	if strings.TrimSpace(configuration.Name) == "" {
		return nil, fmt.Errorf(errMessageEmptyAppName)
	}
	redirectURI := configuration.RedirectURI
	if redirectURI == "" {
		redirectURI = RedirectURIOutOfBand
	}
	scopes := configuration.Scopes
	if scopes == "" {
		scopes = DefaultScopes
	}

	params := url.Values{}
	params.Set(paramClientName, configuration.Name)
	params.Set(paramRedirectURIs, redirectURI)
	params.Set(paramScopes, scopes)
	if configuration.Website != "" {
		params.Set(paramWebsite, configuration.Website)
	}

	responseBody, err := client.Do(ctx, apiclient.Request{
		Method:   http.MethodPost,
		Endpoint: endpointApps,
		Params:   params,
	})
	if err != nil {
		return nil, err
	}
	return codec.DecodeApp(responseBody)
}

// AuthorizeURL builds the URL the user visits to grant access to the app.
func AuthorizeURL(server string, app *entity.App, scopes string) (string, error) {
	serverValue := strings.TrimSpace(server)
	if !strings.Contains(serverValue, schemeSeparator) {
		serverValue = defaultServerScheme + serverValue
	}
	baseURL, err := url.Parse(serverValue)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errMessageParseServer, err)
	}
	if scopes == "" {
		scopes = DefaultScopes
	}

	params := url.Values{}
	params.Set(paramClientID, app.ClientID)
	params.Set(paramRedirectURI, app.RedirectURI)
	params.Set(paramResponseType, responseTypeCode)
	params.Set(paramScope, scopes)

	authorizeURL := baseURL.ResolveReference(&url.URL{Path: endpointAuthorize})
	authorizeURL.RawQuery = params.Encode()
	return authorizeURL.String(), nil
}

// ExchangeCode trades an authorization code for an access token and returns
// the persistent Authorization record together with the raw token entity.
func ExchangeCode(ctx context.Context, client *apiclient.Client, app *entity.App, code string) (*entity.Authorization, *entity.Token, error) {
	if strings.TrimSpace(code) == "" {
		return nil, nil, fmt.Errorf(errMessageEmptyCode)
	}

	params := url.Values{}
	params.Set(paramGrantType, grantTypeAuthorizationCode)
	params.Set(paramCode, code)
	params.Set(paramClientID, app.ClientID)
	params.Set(paramClientSecret, app.ClientSecret)
	params.Set(paramRedirectURI, app.RedirectURI)

	responseBody, err := client.Do(ctx, apiclient.Request{
		Method:   http.MethodPost,
		Endpoint: endpointToken,
		Params:   params,
	})
	if err != nil {
		return nil, nil, err
	}
	token, err := codec.DecodeToken(responseBody)
	if err != nil {
		return nil, nil, err
	}

	authorization := &entity.Authorization{
		ClientID:     app.ClientID,
		ClientSecret: app.ClientSecret,
		Token:        token.AccessToken,
	}
	return authorization, token, nil
}
