// Package apiclient turns logical request values into Mastodon REST API
// calls and decodes the responses through the codec layer. It owns no retry
// policy: a failed call is reported once, as a value.
package apiclient

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/masto-go/mastogo/internal/codec"
	"github.com/masto-go/mastogo/internal/entity"
)

const (
	endpointVerifyCredentials = "/api/v1/accounts/verify_credentials"
	endpointHomeTimeline      = "/api/v1/timelines/home"
	endpointPublicTimeline    = "/api/v1/timelines/public"
	endpointAccountFormat     = "/api/v1/accounts/%s"
	endpointInstance          = "/api/v1/instance"

	authorizationHeaderName = "Authorization"
	bearerTokenPrefix       = "Bearer "
	acceptHeaderName        = "Accept"
	contentTypeHeaderName   = "Content-Type"
	jsonContentType         = "application/json"
	formContentType         = "application/x-www-form-urlencoded"
	userAgentHeaderName     = "User-Agent"
	defaultUserAgentValue   = "mastogo/1.0"

	defaultServerScheme = "https://"
	schemeSeparator     = "://"

	instanceFlightKey = "instance"

	maxResponseBodyBytes = 8 * 1024 * 1024

	defaultDialTimeout           = 5 * time.Second
	defaultTLSHandshakeTimeout   = 5 * time.Second
	defaultResponseHeaderTimeout = 10 * time.Second
	defaultHTTPTimeout           = 15 * time.Second
	defaultWorkerConcurrency     = 8

	errMessageEmptyServer    = "server cannot be empty"
	errMessageEmptyAccountID = "account id cannot be empty"
	errMessageParseServerURL = "parse server url"
	errMessageReadBody       = "read response body"
)

// Request describes one logical API call before it becomes HTTP: the method,
// the endpoint path under the server root, the parameters, and an optional
// bearer token. Parameters travel in the query string for GET requests and
// as a form body otherwise.
type Request struct {
	Method   string
	Endpoint string
	Params   url.Values
	Token    string
}

// HTTPError reports a non-success API response. Entity holds the decoded
// error body when it was parseable, with the HTTP status string merged in.
type HTTPError struct {
	StatusCode int
	Status     string
	Entity     *entity.Error
}

// Error formats the failure with its status and, when decoded, the server's
// error description.
func (httpError *HTTPError) Error() string {
	if httpError.Entity != nil {
		return fmt.Sprintf("api error %s: %s", httpError.Status, httpError.Entity.Description)
	}
	return fmt.Sprintf("api error %s", httpError.Status)
}

// Config customizes a Client instance.
type Config struct {
	Server        string
	Client        *http.Client
	MaxConcurrent int
	UserAgent     string
}

// Client performs Mastodon API calls against a single server.
type Client struct {
	httpClient  *http.Client
	baseURL     *url.URL
	workerCount int
	userAgent   string

	instanceMutex  sync.RWMutex
	cachedInstance *entity.Instance
	flightGroup    singleflight.Group
}

// NewClient constructs a Client with sensible defaults for HTTP timeouts.
// The server may be given with or without a scheme; a bare host gets https.
func NewClient(configuration Config) (*Client, error) {
	serverValue := strings.TrimSpace(configuration.Server)
	if serverValue == "" {
		return nil, fmt.Errorf(errMessageEmptyServer)
	}
	if !strings.Contains(serverValue, schemeSeparator) {
		serverValue = defaultServerScheme + serverValue
	}
	parsedBaseURL, err := url.Parse(serverValue)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errMessageParseServerURL, err)
	}

	httpClient := configuration.Client
	if httpClient == nil {
		httpClient = newHTTPClient()
	}
	if httpClient.Timeout == 0 {
		clonedClient := *httpClient
		clonedClient.Timeout = defaultHTTPTimeout
		httpClient = &clonedClient
	}

	workerCount := configuration.MaxConcurrent
	if workerCount <= 0 {
		workerCount = defaultWorkerConcurrency
	}
	userAgent := strings.TrimSpace(configuration.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgentValue
	}

	client := &Client{
		httpClient:  httpClient,
		baseURL:     parsedBaseURL,
		workerCount: workerCount,
		userAgent:   userAgent,
	}
	return client, nil
}

// Do performs one logical request and returns the raw response body. On a
// non-2xx response the body is decoded as an Error entity when possible and
// the call returns an HTTPError carrying it.
func (client *Client) Do(ctx context.Context, request Request) ([]byte, error) {
	requestURL := client.baseURL.ResolveReference(&url.URL{Path: request.Endpoint})
	var body io.Reader
	if len(request.Params) > 0 {
		if request.Method == http.MethodGet {
			requestURL.RawQuery = request.Params.Encode()
		} else {
			body = strings.NewReader(request.Params.Encode())
		}
	}

	httpRequest, err := http.NewRequestWithContext(ctx, request.Method, requestURL.String(), body)
	if err != nil {
		return nil, err
	}
	httpRequest.Header.Set(acceptHeaderName, jsonContentType)
	httpRequest.Header.Set(userAgentHeaderName, client.userAgent)
	if body != nil {
		httpRequest.Header.Set(contentTypeHeaderName, formContentType)
	}
	if request.Token != "" {
		httpRequest.Header.Set(authorizationHeaderName, bearerTokenPrefix+request.Token)
	}

	httpResponse, err := client.httpClient.Do(httpRequest)
	if err != nil {
		return nil, err
	}
	defer httpResponse.Body.Close()

	responseBody, err := io.ReadAll(io.LimitReader(httpResponse.Body, maxResponseBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errMessageReadBody, err)
	}

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode >= 300 {
		statusString := strconv.Itoa(httpResponse.StatusCode)
		apiError := &HTTPError{StatusCode: httpResponse.StatusCode, Status: statusString}
		if decodedError, decodeErr := codec.DecodeErrorEntity(responseBody, statusString); decodeErr == nil {
			apiError.Entity = decodedError
		}
		return nil, apiError
	}
	return responseBody, nil
}

// VerifyCredentials fetches the authenticated user's own account, including
// its source block.
func (client *Client) VerifyCredentials(ctx context.Context, token string) (*entity.Account, error) {
	responseBody, err := client.Do(ctx, Request{
		Method:   http.MethodGet,
		Endpoint: endpointVerifyCredentials,
		Token:    token,
	})
	if err != nil {
		return nil, err
	}
	return codec.DecodeAccount(responseBody)
}

// GetAccount fetches one account by identifier.
func (client *Client) GetAccount(ctx context.Context, token string, accountID string) (*entity.Account, error) {
	if strings.TrimSpace(accountID) == "" {
		return nil, fmt.Errorf(errMessageEmptyAccountID)
	}
	responseBody, err := client.Do(ctx, Request{
		Method:   http.MethodGet,
		Endpoint: fmt.Sprintf(endpointAccountFormat, accountID),
		Token:    token,
	})
	if err != nil {
		return nil, err
	}
	return codec.DecodeAccount(responseBody)
}

// HomeTimeline fetches the authenticated user's home timeline.
func (client *Client) HomeTimeline(ctx context.Context, token string, limit int) ([]entity.Status, error) {
	return client.timeline(ctx, endpointHomeTimeline, token, limit)
}

// PublicTimeline fetches the server's public timeline. No token is needed.
func (client *Client) PublicTimeline(ctx context.Context, limit int) ([]entity.Status, error) {
	return client.timeline(ctx, endpointPublicTimeline, "", limit)
}

func (client *Client) timeline(ctx context.Context, endpoint string, token string, limit int) ([]entity.Status, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	responseBody, err := client.Do(ctx, Request{
		Method:   http.MethodGet,
		Endpoint: endpoint,
		Params:   params,
		Token:    token,
	})
	if err != nil {
		return nil, err
	}
	return codec.DecodeStatusList(responseBody)
}

// Instance fetches the server's self-description. Concurrent callers share a
// single fetch and the decoded value is cached for the client's lifetime.
func (client *Client) Instance(ctx context.Context) (*entity.Instance, error) {
	client.instanceMutex.RLock()
	if client.cachedInstance != nil {
		cached := client.cachedInstance
		client.instanceMutex.RUnlock()
		return cached, nil
	}
	client.instanceMutex.RUnlock()

	resultChannel := client.flightGroup.DoChan(instanceFlightKey, func() (interface{}, error) {
		responseBody, err := client.Do(ctx, Request{
			Method:   http.MethodGet,
			Endpoint: endpointInstance,
		})
		if err != nil {
			return nil, err
		}
		instance, err := codec.DecodeInstance(responseBody)
		if err != nil {
			return nil, err
		}
		client.instanceMutex.Lock()
		client.cachedInstance = instance
		client.instanceMutex.Unlock()
		return instance, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case result := <-resultChannel:
		if result.Err != nil {
			return nil, result.Err
		}
		instance, _ := result.Val.(*entity.Instance)
		return instance, nil
	}
}

// AccountResult is the outcome of one account fetch within a batch.
type AccountResult struct {
	Account *entity.Account
	Err     error
}

// AccountsBatch fetches a set of accounts using a bounded worker pool.
func (client *Client) AccountsBatch(ctx context.Context, token string, accountIDs []string) map[string]AccountResult {
	uniqueAccountIDs := uniqueIDs(accountIDs)
	results := make(map[string]AccountResult, len(uniqueAccountIDs))
	if len(uniqueAccountIDs) == 0 {
		return results
	}

	var (
		resultsMutex sync.Mutex
		group        errgroup.Group
	)
	group.SetLimit(client.workerCount)
	for _, accountID := range uniqueAccountIDs {
		accountID := accountID
		group.Go(func() error {
			account, err := client.GetAccount(ctx, token, accountID)
			resultsMutex.Lock()
			results[accountID] = AccountResult{Account: account, Err: err}
			resultsMutex.Unlock()
			return nil
		})
	}
	_ = group.Wait()
	return results
}

func uniqueIDs(accountIDs []string) []string {
	unique := make([]string, 0, len(accountIDs))
	seen := make(map[string]struct{}, len(accountIDs))
	for _, accountID := range accountIDs {
		if strings.TrimSpace(accountID) == "" {
			continue
		}
		if _, exists := seen[accountID]; exists {
			continue
		}
		seen[accountID] = struct{}{}
		unique = append(unique, accountID)
	}
	return unique
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout:   defaultHTTPTimeout,
		Transport: defaultTransport(),
	}
}

func defaultTransport() http.RoundTripper {
	return &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: defaultDialTimeout, KeepAlive: 30 * time.Second}).DialContext,
		TLSHandshakeTimeout:   defaultTLSHandshakeTimeout,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConns:          100,
		MaxConnsPerHost:       100,
		ResponseHeaderTimeout: defaultResponseHeaderTimeout,
	}
}
