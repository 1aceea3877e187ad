package assets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreAssets "Postline/internal/core/assets"
)

type stubAssetClient struct {
	params coreAssets.AuthParams
}

func (s stubAssetClient) DeleteFile(ctx context.Context, fileID string) error {
	panic("not used by the auth handler")
}

func (s stubAssetClient) AuthenticationParameters() coreAssets.AuthParams {
	return s.params
}

func TestAuthHandler_ReturnsUploadCredentials(t *testing.T) {
	handler := NewAuthHandler(stubAssetClient{params: coreAssets.AuthParams{
		Token:     "tok-1",
		Expire:    1700000000,
		Signature: "abc123",
	}})

	req := httptest.NewRequest(http.MethodGet, "/imagekitAuth", nil)
	rec := httptest.NewRecorder()

	handler.HandleAuthParams(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var params coreAssets.AuthParams
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &params))
	assert.Equal(t, "tok-1", params.Token)
	assert.Equal(t, int64(1700000000), params.Expire)
	assert.Equal(t, "abc123", params.Signature)
}
