// Package linkedin implements the member-facing LinkedIn REST surface the
// server depends on: the OAuth authorization-code flow, identity resolution,
// the two-phase image upload protocol, and UGC post submission.
package linkedin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
	oauth2linkedin "golang.org/x/oauth2/linkedin"

	"github.com/postpilot/postpilot/internal/config"
)

// DefaultBaseURL is the LinkedIn REST API host.
const DefaultBaseURL = "https://api.linkedin.com"

// AuthorURNPrefix is the canonical member URN prefix.
const AuthorURNPrefix = "urn:li:person:"

var (
	// ErrUnresolvableIdentity means the profile response carried no subject id.
	ErrUnresolvableIdentity = errors.New("profile response has no subject id")

	// ErrInvalidImageData means the supplied image payload was not valid base64.
	ErrInvalidImageData = errors.New("image data is not valid base64")

	// ErrRegistrationResponse means the upload registration response did not
	// carry the expected nested uploadUrl/asset fields.
	ErrRegistrationResponse = errors.New("register upload response missing uploadUrl or asset")
)

// Client calls the LinkedIn API. All outbound requests share one HTTP client
// with a bounded timeout; nothing is retried or cached.
type Client struct {
	BaseURL string
	OAuth   *oauth2.Config

	http *http.Client
}

// NewClient creates a Client from configuration.
func NewClient(cfg *config.Config) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		OAuth: &oauth2.Config{
			ClientID:     cfg.LinkedInClientID,
			ClientSecret: cfg.LinkedInClientSecret,
			RedirectURL:  cfg.LinkedInRedirectURL,
			Scopes:       cfg.LinkedInScopes,
			Endpoint:     oauth2linkedin.Endpoint,
		},
		http: &http.Client{Timeout: cfg.UpstreamTimeout},
	}
}

// AuthorURN maps a provider subject id to the canonical author URN form.
func AuthorURN(sub string) string {
	return AuthorURNPrefix + sub
}

// AuthCodeURL returns the provider authorization URL the browser is sent to.
func (c *Client) AuthCodeURL() string {
	return c.OAuth.AuthCodeURL("")
}

// ExchangeCode exchanges an authorization code for an access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (string, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)
	tok, err := c.OAuth.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchange authorization code: %w", err)
	}
	return tok.AccessToken, nil
}

// do issues req with bearer authorization and returns the response body.
// Any non-2xx status is an error carrying the upstream body.
func (c *Client) do(req *http.Request, token string) ([]byte, error) {
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%s %s failed with status %d: %s", req.Method, req.URL.Path, resp.StatusCode, string(body))
	}

	return body, nil
}
