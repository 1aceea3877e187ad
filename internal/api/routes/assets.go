package routes

import (
	assetHandlers "Postline/internal/api/handlers/assets"
	"Postline/internal/core/assets"

	"github.com/go-chi/chi/v5"
)

// RegisterAssetRoutes registers the upload credentials endpoint used by
// clients that upload media straight to the asset host.
func RegisterAssetRoutes(r chi.Router, client assets.Client) {
	authHandler := assetHandlers.NewAuthHandler(client)

	r.Get("/imagekitAuth", authHandler.HandleAuthParams)
}
