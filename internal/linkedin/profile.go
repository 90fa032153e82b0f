package linkedin

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Profile fetches the caller's identity document from the userinfo endpoint
// and returns it undecoded.
func (c *Client) Profile(ctx context.Context, token string) (json.RawMessage, error) {
	return c.userinfo(ctx, token)
}

// ResolveAuthorURN fetches the caller's identity and derives the author URN
// from its subject id.
func (c *Client) ResolveAuthorURN(ctx context.Context, token string) (string, error) {
	body, err := c.userinfo(ctx, token)
	if err != nil {
		return "", err
	}

	var info struct {
		Sub string `json:"sub"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		return "", fmt.Errorf("parse userinfo response: %w", err)
	}
	if info.Sub == "" {
		return "", ErrUnresolvableIdentity
	}

	return AuthorURN(info.Sub), nil
}

func (c *Client) userinfo(ctx context.Context, token string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/v2/userinfo", nil)
	if err != nil {
		return nil, fmt.Errorf("create userinfo request: %w", err)
	}
	return c.do(req, token)
}
