package assets

import (
	"context"
	"crypto/hmac"
	"crypto/sha1"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageKitClient_DeleteFile(t *testing.T) {
	var gotMethod, gotPath, gotUser string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotUser, _, _ = r.BasicAuth()
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewImageKitClient(server.URL, "private_key_test", server.Client())

	err := client.DeleteFile(context.Background(), "file-abc-123")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/v1/files/file-abc-123", gotPath)
	assert.Equal(t, "private_key_test", gotUser)
}

func TestImageKitClient_DeleteFile_HostError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"File not found"}`))
	}))
	defer server.Close()

	client := NewImageKitClient(server.URL, "private_key_test", server.Client())

	err := client.DeleteFile(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestImageKitClient_AuthenticationParameters(t *testing.T) {
	const privateKey = "private_key_test"
	client := NewImageKitClient("", privateKey, nil)

	params := client.AuthenticationParameters()

	assert.NotEmpty(t, params.Token)

	// Expiry sits roughly 30 minutes out.
	expire := time.Unix(params.Expire, 0)
	assert.WithinDuration(t, time.Now().Add(authParamsTTL), expire, time.Minute)

	// Signature is HMAC-SHA1(token+expire) under the private key.
	mac := hmac.New(sha1.New, []byte(privateKey))
	mac.Write([]byte(params.Token + strconv.FormatInt(params.Expire, 10)))
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), params.Signature)
}

func TestImageKitClient_AuthenticationParameters_FreshTokens(t *testing.T) {
	client := NewImageKitClient("", "private_key_test", nil)

	first := client.AuthenticationParameters()
	second := client.AuthenticationParameters()

	assert.NotEqual(t, first.Token, second.Token)
}
