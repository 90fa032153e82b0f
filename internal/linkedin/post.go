package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Share media categories. The category and the media array are set together:
// NONE means no media entries, IMAGE means exactly one READY entry.
const (
	MediaCategoryNone  = "NONE"
	MediaCategoryImage = "IMAGE"
)

const (
	mediaStatusReady   = "READY"
	lifecyclePublished = "PUBLISHED"
	visibilityPublic   = "PUBLIC"

	// restliProtocolVersion is required on ugcPosts calls.
	restliProtocolVersion = "2.0.0"
)

type ugcPost struct {
	Author          string          `json:"author"`
	LifecycleState  string          `json:"lifecycleState"`
	SpecificContent specificContent `json:"specificContent"`
	Visibility      postVisibility  `json:"visibility"`
}

type specificContent struct {
	ShareContent shareContent `json:"com.linkedin.ugc.ShareContent"`
}

type shareContent struct {
	ShareCommentary    commentary   `json:"shareCommentary"`
	ShareMediaCategory string       `json:"shareMediaCategory"`
	Media              []shareMedia `json:"media,omitempty"`
}

type commentary struct {
	Text string `json:"text"`
}

type shareMedia struct {
	Status string `json:"status"`
	Media  string `json:"media"`
}

type postVisibility struct {
	MemberNetworkVisibility string `json:"com.linkedin.ugc.MemberNetworkVisibility"`
}

// newUGCPost assembles a post payload. An empty asset yields category NONE
// with no media array; a non-empty one yields category IMAGE with a single
// READY entry referencing it.
func newUGCPost(author, content, asset string) ugcPost {
	share := shareContent{
		ShareCommentary:    commentary{Text: content},
		ShareMediaCategory: MediaCategoryNone,
	}
	if asset != "" {
		share.ShareMediaCategory = MediaCategoryImage
		share.Media = []shareMedia{{Status: mediaStatusReady, Media: asset}}
	}

	return ugcPost{
		Author:          author,
		LifecycleState:  lifecyclePublished,
		SpecificContent: specificContent{ShareContent: share},
		Visibility:      postVisibility{MemberNetworkVisibility: visibilityPublic},
	}
}

// CreatePost submits a UGC post and returns the provider's response body
// undecoded. The asset may be empty for a text-only post.
func (c *Client) CreatePost(ctx context.Context, token, author, content, asset string) (json.RawMessage, error) {
	body, err := json.Marshal(newUGCPost(author, content, asset))
	if err != nil {
		return nil, fmt.Errorf("marshal ugc post: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v2/ugcPosts", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create ugc post request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Restli-Protocol-Version", restliProtocolVersion)

	respBody, err := c.do(req, token)
	if err != nil {
		return nil, fmt.Errorf("submit ugc post: %w", err)
	}

	if len(respBody) == 0 {
		respBody = []byte(`{}`)
	}
	if !json.Valid(respBody) {
		return nil, fmt.Errorf("ugc post response is not valid JSON")
	}
	return json.RawMessage(respBody), nil
}
