package linkedin

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const (
	feedshareImageRecipe = "urn:li:digitalmediaRecipe:feedshare-image"

	// uploadMechanismKey is the vendor-specific key under which LinkedIn nests
	// the upload URL in a registration response.
	uploadMechanismKey = "com.linkedin.digitalmedia.uploading.MediaUploadHttpRequest"
)

type registerUploadRequest struct {
	RegisterUploadRequest registerUploadBody `json:"registerUploadRequest"`
}

type registerUploadBody struct {
	Recipes              []string              `json:"recipes"`
	Owner                string                `json:"owner"`
	ServiceRelationships []serviceRelationship `json:"serviceRelationships"`
}

type serviceRelationship struct {
	RelationshipType string `json:"relationshipType"`
	Identifier       string `json:"identifier"`
}

type registerUploadResponse struct {
	Value struct {
		UploadMechanism map[string]struct {
			UploadURL string `json:"uploadUrl"`
		} `json:"uploadMechanism"`
		Asset string `json:"asset"`
	} `json:"value"`
}

// UploadImage runs the two-phase media upload protocol: register the asset
// with the owner URN, then PUT the decoded image bytes to the issued upload
// URL. Returns the asset identifier from the registration phase; the PUT
// response body is not used.
func (c *Client) UploadImage(ctx context.Context, token, owner, imageData string) (string, error) {
	raw, err := decodeImageData(imageData)
	if err != nil {
		return "", err
	}

	uploadURL, asset, err := c.registerUpload(ctx, token, owner)
	if err != nil {
		return "", err
	}

	if err := c.putBinary(ctx, token, uploadURL, raw); err != nil {
		return "", err
	}

	return asset, nil
}

func (c *Client) registerUpload(ctx context.Context, token, owner string) (uploadURL, asset string, err error) {
	payload := registerUploadRequest{
		RegisterUploadRequest: registerUploadBody{
			Recipes: []string{feedshareImageRecipe},
			Owner:   owner,
			ServiceRelationships: []serviceRelationship{
				{RelationshipType: "OWNER", Identifier: "urn:li:userGeneratedContent"},
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", "", fmt.Errorf("marshal register upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/v2/assets?action=registerUpload", bytes.NewReader(body))
	if err != nil {
		return "", "", fmt.Errorf("create register upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	respBody, err := c.do(req, token)
	if err != nil {
		return "", "", fmt.Errorf("register upload: %w", err)
	}

	var reg registerUploadResponse
	if err := json.Unmarshal(respBody, &reg); err != nil {
		return "", "", fmt.Errorf("parse register upload response: %w", err)
	}

	uploadURL = reg.Value.UploadMechanism[uploadMechanismKey].UploadURL
	asset = reg.Value.Asset
	if uploadURL == "" || asset == "" {
		return "", "", ErrRegistrationResponse
	}

	return uploadURL, asset, nil
}

func (c *Client) putBinary(ctx context.Context, token, uploadURL string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	if _, err := c.do(req, token); err != nil {
		return fmt.Errorf("upload binary: %w", err)
	}
	return nil
}

// decodeImageData strips an optional data-URI prefix and decodes the base64
// payload to raw bytes.
func decodeImageData(imageData string) ([]byte, error) {
	if strings.HasPrefix(imageData, "data:") {
		if i := strings.Index(imageData, "base64,"); i >= 0 {
			imageData = imageData[i+len("base64,"):]
		}
	}

	raw, err := base64.StdEncoding.DecodeString(imageData)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImageData, err)
	}
	return raw, nil
}
