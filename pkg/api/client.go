// Package api is the HTTP client for the SuryaSaathi verification backend.
// It owns bearer-token injection and the mapping of non-2xx responses into
// structured errors carrying the server's detail string.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ayushnp/AlgoMinds-SuryaSaathi/pkg/errors"
)

// TokenSource supplies the bearer token for authenticated calls. An empty
// token means unauthenticated; the backend will reject with 401.
type TokenSource interface {
	Token() (string, error)
}

// Client talks to the verification backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient creates a backend client. The HTTP client applies its own
// request timeout; callers do not add another.
func NewClient(baseURL string, tokens TokenSource) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 2 * time.Minute},
		tokens:     tokens,
	}
}

// Error is a structured backend failure. Detail carries the server's
// human-readable explanation when the response body provided one.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("server returned status %d", e.StatusCode)
}

// SubmitResult is the backend's acknowledgment of an accepted submission.
type SubmitResult struct {
	ApplicationID string `json:"application_id"`
	Message       string `json:"message"`
}

// SubmitEvidence POSTs an already-assembled multipart body to the evidence
// submission endpoint.
func (c *Client) SubmitEvidence(ctx context.Context, contentType string, body io.Reader) (*SubmitResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/verifications/submit", body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build submission request")
	}
	req.Header.Set("Content-Type", contentType)
	if err := c.authorize(req); err != nil {
		return nil, err
	}

	slog.Info("api_submit_start", "url", req.URL.String())
	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("api_submit_request_failed", "error", err)
		return nil, errors.Wrap(err, "submission request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.decodeError(resp)
	}

	var result SubmitResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Error("api_submit_decode_failed", "error", err)
		return nil, errors.Wrap(err, "failed to decode submission response")
	}

	slog.Info("api_submit_accepted", "application_id", result.ApplicationID)
	return &result, nil
}

// Login authenticates against the OAuth2 password endpoint and returns the
// access token. The backend uses the email address as the username field.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/auth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", errors.Wrap(err, "failed to build login request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("api_login_request_failed", "error", err)
		return "", errors.Wrap(err, "login request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", c.decodeError(resp)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errors.Wrap(err, "failed to decode login response")
	}
	if body.AccessToken == "" {
		return "", errors.New("login response carried no access token")
	}

	slog.Info("api_login_ok", "email", email)
	return body.AccessToken, nil
}

// Application mirrors the backend application fields the client renders.
type Application struct {
	ID             string  `json:"_id"`
	Status         string  `json:"status"`
	Address        string  `json:"address"`
	RegisteredLat  float64 `json:"registered_lat"`
	RegisteredLon  float64 `json:"registered_lon"`
	SubmissionDate string  `json:"submission_date"`
}

// GetApplication fetches one application's status by ID.
func (c *Client) GetApplication(ctx context.Context, applicationID string) (*Application, error) {
	var app Application
	if err := c.get(ctx, "/api/v1/applications/"+url.PathEscape(applicationID), &app); err != nil {
		return nil, err
	}
	return &app, nil
}

// VerificationReport is the backend's final decision summary. It is only
// available once the verification pipeline has reached a terminal status.
type VerificationReport struct {
	ConfidenceScore float64 `json:"confidence_score"`
	Decision        string  `json:"decision"`
	Reasoning       string  `json:"reasoning"`
}

// GetVerificationReport fetches the decision report for an application.
func (c *Client) GetVerificationReport(ctx context.Context, applicationID string) (*VerificationReport, error) {
	var report VerificationReport
	if err := c.get(ctx, "/api/v1/verifications/"+url.PathEscape(applicationID)+"/report", &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	if err := c.authorize(req); err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("api_get_failed", "path", path, "error", err)
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}
	return nil
}

func (c *Client) authorize(req *http.Request) error {
	if c.tokens == nil {
		return nil
	}
	token, err := c.tokens.Token()
	if err != nil {
		return errors.Wrap(err, "token load failed")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	apiErr := &Error{StatusCode: resp.StatusCode}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Detail = body.Detail
	}

	slog.Error("api_error_response", "status", resp.StatusCode, "detail", apiErr.Detail)
	return apiErr
}
