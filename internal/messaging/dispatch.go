package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"Postline/internal/core/posts"
)

// HandlerFunc processes one decoded RPC request and returns the value to
// marshal into the reply.
type HandlerFunc func(ctx context.Context, data []byte) (interface{}, error)

// rpcError is the structured error envelope sent back to RPC callers in
// place of a result.
type rpcError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type errorReply struct {
	Error rpcError `json:"error"`
}

// Dispatcher maps post commands to service calls. It owns request decoding
// and validation; everything past that boundary is the service's problem.
type Dispatcher struct {
	service  posts.Service
	validate *validator.Validate
}

// NewDispatcher creates a dispatcher over the post service.
func NewDispatcher(service posts.Service) *Dispatcher {
	return &Dispatcher{
		service:  service,
		validate: validator.New(),
	}
}

// Handlers returns the command table. Keys are the command names addressed
// as NATS subjects under the "posts." prefix.
func (d *Dispatcher) Handlers() map[string]HandlerFunc {
	return map[string]HandlerFunc{
		"create":        d.handleCreate,
		"findAll":       d.handleFindAll,
		"findOne":       d.handleFindOne,
		"findUserPosts": d.handleFindUserPosts,
		"update":        d.handleUpdate,
		"delete":        d.handleDelete,
	}
}

type paginationPayload struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type findOnePayload struct {
	ID string `json:"id" validate:"required"`
}

type userPostsPayload struct {
	UserID string `json:"userId" validate:"required"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

type deletePayload struct {
	ID     string `json:"id" validate:"required"`
	UserID string `json:"userId" validate:"required"`
}

func (d *Dispatcher) handleCreate(ctx context.Context, data []byte) (interface{}, error) {
	var req posts.CreatePostRequest
	if err := d.decode(data, &req); err != nil {
		return nil, err
	}
	return d.service.CreatePost(ctx, req)
}

func (d *Dispatcher) handleFindAll(ctx context.Context, data []byte) (interface{}, error) {
	var payload paginationPayload
	if err := d.decode(data, &payload); err != nil {
		return nil, err
	}
	return d.service.ListPosts(ctx, payload.Page, payload.Limit)
}

func (d *Dispatcher) handleFindOne(ctx context.Context, data []byte) (interface{}, error) {
	var payload findOnePayload
	if err := d.decode(data, &payload); err != nil {
		return nil, err
	}
	return d.service.GetPost(ctx, payload.ID)
}

func (d *Dispatcher) handleFindUserPosts(ctx context.Context, data []byte) (interface{}, error) {
	var payload userPostsPayload
	if err := d.decode(data, &payload); err != nil {
		return nil, err
	}
	return d.service.ListUserPosts(ctx, payload.UserID, payload.Page, payload.Limit)
}

func (d *Dispatcher) handleUpdate(ctx context.Context, data []byte) (interface{}, error) {
	var req posts.UpdatePostRequest
	if err := d.decode(data, &req); err != nil {
		return nil, err
	}
	return d.service.UpdatePost(ctx, req)
}

func (d *Dispatcher) handleDelete(ctx context.Context, data []byte) (interface{}, error) {
	var payload deletePayload
	if err := d.decode(data, &payload); err != nil {
		return nil, err
	}
	return d.service.DeletePost(ctx, payload.ID, payload.UserID)
}

// decode unmarshals a request payload and applies its validation tags,
// converting the first failed field into a domain ValidationError.
func (d *Dispatcher) decode(data []byte, v interface{}) error {
	if len(data) == 0 {
		data = []byte("{}")
	}
	if err := json.Unmarshal(data, v); err != nil {
		return posts.NewValidationError("body", "malformed JSON payload")
	}
	if err := d.validate.Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return posts.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
		}
		return posts.NewValidationError("body", err.Error())
	}
	return nil
}

// encodeReply marshals a handler outcome into the bytes sent back on the
// reply subject: either the result value or an error envelope.
func encodeReply(result interface{}, err error) []byte {
	if err != nil {
		reply, _ := json.Marshal(errorReply{Error: rpcError{
			Status:  errorStatus(err),
			Message: err.Error(),
		}})
		return reply
	}

	reply, marshalErr := json.Marshal(result)
	if marshalErr != nil {
		reply, _ = json.Marshal(errorReply{Error: rpcError{
			Status:  http.StatusInternalServerError,
			Message: "failed to encode response",
		}})
	}
	return reply
}

func errorStatus(err error) int {
	switch {
	case posts.IsValidationError(err):
		return http.StatusBadRequest
	case posts.IsNotFound(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
