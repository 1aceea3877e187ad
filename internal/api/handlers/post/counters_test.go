package post

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"Postline/internal/core/posts"
)

// stubCounterService implements only the counter methods; embedding the
// interface panics if a handler ever reaches past them.
type stubCounterService struct {
	posts.Service
	err error
}

func (s stubCounterService) IncrementLikes(ctx context.Context, id string) (string, error) {
	return s.confirm(posts.MsgPostLiked)
}

func (s stubCounterService) DecrementLikes(ctx context.Context, id string) (string, error) {
	return s.confirm(posts.MsgPostDisliked)
}

func (s stubCounterService) IncrementComments(ctx context.Context, id string) (string, error) {
	return s.confirm(posts.MsgCommentAdded)
}

func (s stubCounterService) DecrementComments(ctx context.Context, id string) (string, error) {
	return s.confirm(posts.MsgCommentRemoved)
}

func (s stubCounterService) confirm(message string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return message, nil
}

func newCounterRouter(service posts.Service) chi.Router {
	r := chi.NewRouter()
	h := NewCounterHandler(service)
	r.Patch("/posts/likes/{id}", h.HandleIncrementLikes)
	r.Delete("/posts/likes/{id}", h.HandleDecrementLikes)
	r.Patch("/posts/comments/{id}", h.HandleIncrementComments)
	r.Delete("/posts/comments/{id}", h.HandleDecrementComments)
	return r
}

func TestCounterHandler_SuccessBodies(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		path     string
		wantBody string
	}{
		{name: "like", method: http.MethodPatch, path: "/posts/likes/p1", wantBody: "Post liked"},
		{name: "dislike", method: http.MethodDelete, path: "/posts/likes/p1", wantBody: "Post disliked"},
		{name: "comment added", method: http.MethodPatch, path: "/posts/comments/p1", wantBody: "Comment added"},
		{name: "comment removed", method: http.MethodDelete, path: "/posts/comments/p1", wantBody: "Comment removed from post"},
	}

	router := newCounterRouter(stubCounterService{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestCounterHandler_FailureCollapsesTo500(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "repository failure", err: errors.New("connection refused")},
		{name: "unknown post", err: posts.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newCounterRouter(stubCounterService{err: tt.err})

			req := httptest.NewRequest(http.MethodPatch, "/posts/likes/p1", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t,
				`{"status":500,"error":"Ooops! Something broke from our end. Please retry"}`,
				rec.Body.String())
		})
	}
}
