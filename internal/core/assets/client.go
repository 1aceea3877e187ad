package assets

import "context"

// AuthParams are the parameters a browser needs to upload a file directly
// to the asset host. Expire is a unix timestamp; Signature authenticates
// token+expire with our private key.
type AuthParams struct {
	Token     string `json:"token"`
	Expire    int64  `json:"expire"`
	Signature string `json:"signature"`
}

// Client defines the interface to the external media asset host.
// Post deletion uses DeleteFile on a best-effort basis; the upload auth
// endpoint uses AuthenticationParameters.
type Client interface {
	// DeleteFile removes a previously uploaded asset by its file id.
	DeleteFile(ctx context.Context, fileID string) error

	// AuthenticationParameters generates fresh client-side upload credentials.
	AuthenticationParameters() AuthParams
}
