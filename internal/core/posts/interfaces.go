package posts

import "context"

// CounterField names a counter column on the posts table.
// The repository only accepts the two values below.
type CounterField string

const (
	FieldLikes    CounterField = "numberOfLikes"
	FieldComments CounterField = "numberOfComments"
)

// Service defines the business logic interface for posts.
// Ownership and pagination policy live here; all storage atomicity lives in
// the Repository.
type Service interface {
	// CreatePost inserts a new post. Input is assumed validated by the
	// transport layer.
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	// ListPosts returns one page of all posts, newest first.
	ListPosts(ctx context.Context, page, limit int) (*PaginatedPosts, error)

	// ListUserPosts returns one page of a single user's posts, newest first.
	ListUserPosts(ctx context.Context, userID string, page, limit int) (*PaginatedPosts, error)

	// GetPost fetches a post by id, returning ErrNotFound if absent.
	GetPost(ctx context.Context, id string) (*Post, error)

	// UpdatePost edits a post's content. A missing id and an owner mismatch
	// are both reported as ErrNotFound so non-owners learn nothing.
	UpdatePost(ctx context.Context, req UpdatePostRequest) (*Post, error)

	// DeletePost removes a post under the same ownership rule as UpdatePost.
	// If the deleted post referenced an uploaded asset, the asset is removed
	// from the external host in the background; that cleanup never affects
	// the returned result.
	DeletePost(ctx context.Context, id, userID string) (*Post, error)

	// Counter mutations. Each returns a short confirmation message for the
	// HTTP response body.
	IncrementLikes(ctx context.Context, id string) (string, error)
	DecrementLikes(ctx context.Context, id string) (string, error)
	IncrementComments(ctx context.Context, id string) (string, error)
	DecrementComments(ctx context.Context, id string) (string, error)
}

// Repository defines the data access interface for posts.
// Every mutation is a single atomic statement; there is no application-level
// read-then-write anywhere in this contract.
type Repository interface {
	// Create inserts a new post; the store assigns id and timestamps.
	Create(ctx context.Context, req CreatePostRequest) (*Post, error)

	// GetByID retrieves a post by id, returning ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (*Post, error)

	// List returns up to limit posts starting at offset, ordered by
	// createdAt descending (id descending as tiebreak), plus the total
	// number of rows matching the filter. An empty userID means no filter.
	List(ctx context.Context, userID string, limit, offset int) ([]Post, int, error)

	// UpdateContentIfOwner updates content only where both id and userID
	// match, in one conditional statement. Zero rows affected means
	// ErrNotFound, whichever condition failed. Nil content means "leave
	// the body as is", not "clear it".
	UpdateContentIfOwner(ctx context.Context, id, userID string, content *string) (*Post, error)

	// DeleteIfOwner deletes under the same conditional pattern and returns
	// the deleted row.
	DeleteIfOwner(ctx context.Context, id, userID string) (*Post, error)

	// IncrementCounter applies delta to a counter column as a store-level
	// increment, clamped so the counter never goes below zero. Returns
	// ErrNotFound if the post does not exist.
	IncrementCounter(ctx context.Context, id string, field CounterField, delta int) error
}
