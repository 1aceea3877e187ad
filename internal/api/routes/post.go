package routes

import (
	"Postline/internal/api/handlers/post"
	"Postline/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers the direct HTTP counter endpoints.
// These are the only post mutations reachable over plain HTTP; everything
// else goes through the message RPC surface.
func RegisterPostRoutes(r chi.Router, service posts.Service) {
	counters := post.NewCounterHandler(service)

	// Like count
	r.Patch("/posts/likes/{id}", counters.HandleIncrementLikes)
	r.Delete("/posts/likes/{id}", counters.HandleDecrementLikes)

	// Comment count
	r.Patch("/posts/comments/{id}", counters.HandleIncrementComments)
	r.Delete("/posts/comments/{id}", counters.HandleDecrementComments)
}
