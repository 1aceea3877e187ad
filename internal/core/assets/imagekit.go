package assets

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const defaultAPIBaseURL = "https://api.imagekit.io"

// Upload credentials are valid for 30 minutes, matching the ImageKit
// client SDK default.
const authParamsTTL = 30 * time.Minute

// ImageKitClient talks to the ImageKit media API.
// Authentication is HTTP basic auth with the private key as username.
type ImageKitClient struct {
	httpClient *http.Client
	baseURL    string
	privateKey string
}

// NewImageKitClient creates an ImageKit client.
// baseURL and httpClient may be empty/nil to use the production API with
// a default timeout; tests inject their own.
func NewImageKitClient(baseURL, privateKey string, httpClient *http.Client) *ImageKitClient {
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &ImageKitClient{
		httpClient: httpClient,
		baseURL:    baseURL,
		privateKey: privateKey,
	}
}

// DeleteFile removes an uploaded file by its ImageKit file id.
// DELETE /v1/files/{fileId} returns 204 on success.
func (c *ImageKitClient) DeleteFile(ctx context.Context, fileID string) error {
	endpoint := fmt.Sprintf("%s/v1/files/%s", c.baseURL, url.PathEscape(fileID))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	req.SetBasicAuth(c.privateKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call asset host: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent || resp.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("asset host returned %d deleting file %s: %s", resp.StatusCode, fileID, string(body))
}

// AuthenticationParameters generates upload credentials for client-side
// uploads: a random token, an expiry, and HMAC-SHA1(token+expire) signed
// with the private key, per the ImageKit auth scheme.
func (c *ImageKitClient) AuthenticationParameters() AuthParams {
	token := uuid.NewString()
	expire := time.Now().Add(authParamsTTL).Unix()

	mac := hmac.New(sha1.New, []byte(c.privateKey))
	mac.Write([]byte(token + strconv.FormatInt(expire, 10)))

	return AuthParams{
		Token:     token,
		Expire:    expire,
		Signature: hex.EncodeToString(mac.Sum(nil)),
	}
}
