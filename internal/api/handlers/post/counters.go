package post

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Postline/internal/api/handlers"
	"Postline/internal/core/posts"
)

// CounterHandler handles the four direct HTTP counter mutations.
// Every failure, including an unknown post id, answers with the same
// generic 500 envelope.
type CounterHandler struct {
	service posts.Service
}

// NewCounterHandler creates a new counter handler
func NewCounterHandler(service posts.Service) *CounterHandler {
	return &CounterHandler{service: service}
}

// HandleIncrementLikes adds one like
// PATCH /posts/likes/{id}
func (h *CounterHandler) HandleIncrementLikes(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.IncrementLikes)
}

// HandleDecrementLikes removes one like
// DELETE /posts/likes/{id}
func (h *CounterHandler) HandleDecrementLikes(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.DecrementLikes)
}

// HandleIncrementComments adds one to the comment count
// PATCH /posts/comments/{id}
func (h *CounterHandler) HandleIncrementComments(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.IncrementComments)
}

// HandleDecrementComments removes one from the comment count
// DELETE /posts/comments/{id}
func (h *CounterHandler) HandleDecrementComments(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.service.DecrementComments)
}

func (h *CounterHandler) respond(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id string) (string, error)) {
	id := chi.URLParam(r, "id")

	message, err := op(r.Context(), id)
	if err != nil {
		log.Printf("Counter update failed for post %s: %v", id, err)
		handlers.WriteError(w, http.StatusInternalServerError, handlers.GenericFailureMessage)
		return
	}

	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(message)); err != nil {
		log.Printf("Failed to write counter response: %v", err)
	}
}
