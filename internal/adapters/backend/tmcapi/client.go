// Package tmcapi talks to a TMC exercise server over HTTP.
package tmcapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/drcDRt/tmc-cli/internal/domain"
	"github.com/drcDRt/tmc-cli/internal/ports"
	"github.com/google/uuid"
)

const (
	passwordGrantType = "password"
	maxResponseBytes  = 4 << 20
	requestIDHeader   = "X-Request-ID"
)

// API lists the server paths used by Client. Zero values fall back to the
// TMC v8 defaults.
type API struct {
	TokenPath   string
	CoursesPath string
}

type Client struct {
	API            API
	ClientID       string
	ClientSecret   string
	ProbeURL       string
	HTTPClient     *http.Client
	RequestTimeout time.Duration

	tokensMu sync.Mutex
	tokens   map[string]string
}

var _ ports.Core = (*Client)(nil)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type oauthErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

type courseResponse struct {
	Name string `json:"name"`
}

type exerciseResponse struct {
	Name string `json:"name"`
}

// Ping reports whether the probe URL answers. Any HTTP response counts as
// reachable.
func (c *Client) Ping(ctx context.Context) error {
	if c.ProbeURL == "" {
		return fmt.Errorf("%w: probe url is not configured", domain.ErrConnectivity)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, c.ProbeURL, nil)
	if err != nil {
		return fmt.Errorf("create probe request: %w", err)
	}
	c.setRequestID(req)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%w: probe %s: %w", domain.ErrConnectivity, c.ProbeURL, err)
	}
	_ = resp.Body.Close()

	return nil
}

// Authenticate runs the OAuth password grant and caches the bearer token for
// later calls with the same account.
func (c *Client) Authenticate(ctx context.Context, account domain.Account) error {
	_, err := c.fetchToken(ctx, account)
	return err
}

func (c *Client) ListCourses(ctx context.Context, account domain.Account, observer ports.ProgressObserver) ([]domain.Course, error) {
	observer = orNop(observer)
	observer.Progress("Fetching courses", 0)

	var payload []courseResponse
	if err := c.getJSON(ctx, account, &payload, c.coursesPath()); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	courses := make([]domain.Course, 0, len(payload))
	for _, entry := range payload {
		if strings.TrimSpace(entry.Name) == "" {
			continue
		}
		courses = append(courses, domain.NewCourse(entry.Name))
	}

	observer.Progress("Fetched courses", 1)
	return courses, nil
}

func (c *Client) GetCourseDetails(ctx context.Context, account domain.Account, course domain.Course, observer ports.ProgressObserver) (domain.Course, error) {
	if strings.TrimSpace(course.Name) == "" {
		return domain.Course{}, fmt.Errorf("%w: course name is required", domain.ErrUserInput)
	}

	observer = orNop(observer)
	observer.Progress("Fetching exercises of "+course.Name, 0)

	var payload []exerciseResponse
	if err := c.getJSON(ctx, account, &payload, c.coursesPath(), course.Name, "exercises"); err != nil {
		return domain.Course{}, fmt.Errorf("get course %s: %w", course.Name, err)
	}

	exercises := make([]domain.Exercise, 0, len(payload))
	for _, entry := range payload {
		exercises = append(exercises, domain.Exercise{Name: entry.Name})
	}

	observer.Progress("Fetched exercises of "+course.Name, 1)
	return course.WithExercises(exercises), nil
}

func (c *Client) getJSON(ctx context.Context, account domain.Account, target any, segments ...string) error {
	token, err := c.token(ctx, account)
	if err != nil {
		return err
	}

	status, err := c.doGet(ctx, account, token, target, segments...)
	if status != http.StatusUnauthorized {
		return err
	}

	// The cached token may have expired; retry once with a fresh one.
	c.forgetToken(account)
	token, err = c.fetchToken(ctx, account)
	if err != nil {
		return err
	}

	_, err = c.doGet(ctx, account, token, target, segments...)
	return err
}

func (c *Client) doGet(ctx context.Context, account domain.Account, token string, target any, segments ...string) (int, error) {
	endpoint, err := buildAPIURL(account.ServerURL, segments...)
	if err != nil {
		return 0, err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	c.setRequestID(req)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrConnectivity, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return resp.StatusCode, fmt.Errorf("%w: status %d", domain.ErrAuth, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return resp.StatusCode, fmt.Errorf("%w: status %d", domain.ErrNotFound, resp.StatusCode)
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(target); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}

	return resp.StatusCode, nil
}

func (c *Client) token(ctx context.Context, account domain.Account) (string, error) {
	c.tokensMu.Lock()
	token, ok := c.tokens[tokenKey(account)]
	c.tokensMu.Unlock()
	if ok {
		return token, nil
	}

	return c.fetchToken(ctx, account)
}

func (c *Client) fetchToken(ctx context.Context, account domain.Account) (string, error) {
	if account.Username == "" || account.Password == "" {
		return "", fmt.Errorf("%w: username and password are required", domain.ErrAuth)
	}

	endpoint, err := buildAPIURL(account.ServerURL, c.tokenPath())
	if err != nil {
		return "", err
	}

	values := url.Values{}
	values.Set("grant_type", passwordGrantType)
	values.Set("client_id", c.ClientID)
	values.Set("client_secret", c.ClientSecret)
	values.Set("username", account.Username)
	values.Set("password", account.Password)

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, strings.NewReader(values.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.setRequestID(req)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request token: %w", domain.ErrConnectivity, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		reason := decodeOAuthError(resp)
		if resp.StatusCode >= http.StatusInternalServerError {
			return "", fmt.Errorf("request token: %s", reason)
		}
		return "", fmt.Errorf("%w: request token: %s", domain.ErrAuth, reason)
	}

	var payload tokenResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", errors.New("token response missing access token")
	}

	c.tokensMu.Lock()
	if c.tokens == nil {
		c.tokens = map[string]string{}
	}
	c.tokens[tokenKey(account)] = payload.AccessToken
	c.tokensMu.Unlock()

	return payload.AccessToken, nil
}

func (c *Client) forgetToken(account domain.Account) {
	c.tokensMu.Lock()
	defer c.tokensMu.Unlock()

	delete(c.tokens, tokenKey(account))
}

func (c *Client) tokenPath() string {
	if c.API.TokenPath != "" {
		return c.API.TokenPath
	}
	return "oauth/token"
}

func (c *Client) coursesPath() string {
	if c.API.CoursesPath != "" {
		return c.API.CoursesPath
	}
	return "api/v8/courses"
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

func (c *Client) setRequestID(req *http.Request) {
	req.Header.Set(requestIDHeader, uuid.NewString())
}

func tokenKey(account domain.Account) string {
	return account.ServerURL + "|" + account.Username
}

func orNop(observer ports.ProgressObserver) ports.ProgressObserver {
	if observer == nil {
		return ports.NopProgress{}
	}
	return observer
}

func decodeOAuthError(resp *http.Response) string {
	var oauthErr oauthErrorResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&oauthErr); err != nil || oauthErr.Error == "" {
		return fmt.Sprintf("status %d", resp.StatusCode)
	}
	if oauthErr.ErrorDescription != "" {
		return oauthErr.Error + ": " + oauthErr.ErrorDescription
	}
	return oauthErr.Error
}

func buildAPIURL(serverURL string, segments ...string) (string, error) {
	if serverURL == "" {
		return "", fmt.Errorf("%w: server url is required", domain.ErrUserInput)
	}

	parsed, err := url.Parse(serverURL)
	if err != nil {
		return "", fmt.Errorf("%w: parse server url: %w", domain.ErrUserInput, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("%w: server url must use http or https", domain.ErrUserInput)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("%w: server url host is required", domain.ErrUserInput)
	}

	return parsed.JoinPath(segments...).String(), nil
}
