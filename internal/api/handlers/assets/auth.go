package assets

import (
	"encoding/json"
	"log"
	"net/http"

	coreAssets "Postline/internal/core/assets"
)

// AuthHandler serves upload credentials for client-side uploads to the
// asset host.
type AuthHandler struct {
	client coreAssets.Client
}

// NewAuthHandler creates a new auth parameters handler
func NewAuthHandler(client coreAssets.Client) *AuthHandler {
	return &AuthHandler{client: client}
}

// HandleAuthParams returns fresh upload authentication parameters
// GET /imagekitAuth
func (h *AuthHandler) HandleAuthParams(w http.ResponseWriter, r *http.Request) {
	params := h.client.AuthenticationParameters()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(params); err != nil {
		log.Printf("Failed to encode auth params response: %v", err)
	}
}
