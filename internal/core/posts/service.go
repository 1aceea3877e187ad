package posts

import (
	"context"
	"fmt"
	"log"
	"time"

	"Postline/internal/core/assets"
)

// Confirmation messages returned by the counter operations.
// These are the literal HTTP response bodies of the counter endpoints.
const (
	MsgPostLiked      = "Post liked"
	MsgPostDisliked   = "Post disliked"
	MsgCommentAdded   = "Comment added"
	MsgCommentRemoved = "Comment removed from post"
)

type postService struct {
	repo   Repository
	assets assets.Client
}

// NewPostService creates the post service.
// assetClient is used only for best-effort cleanup of uploaded media when
// a post that references one is deleted.
func NewPostService(repo Repository, assetClient assets.Client) Service {
	return &postService{
		repo:   repo,
		assets: assetClient,
	}
}

func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	post, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

func (s *postService) ListPosts(ctx context.Context, page, limit int) (*PaginatedPosts, error) {
	return s.listPage(ctx, "", page, limit)
}

func (s *postService) ListUserPosts(ctx context.Context, userID string, page, limit int) (*PaginatedPosts, error) {
	return s.listPage(ctx, userID, page, limit)
}

// listPage fetches one pagination window and its metadata. The page query
// and the count query are separate round trips; totalPages may lag behind
// concurrent deletes, which is acceptable, but the page itself is always
// well formed.
func (s *postService) listPage(ctx context.Context, userID string, page, limit int) (*PaginatedPosts, error) {
	page, limit = normalizePagination(page, limit)
	offset := (page - 1) * limit

	items, total, err := s.repo.List(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return paginate(items, total, page, limit), nil
}

func (s *postService) GetPost(ctx context.Context, id string) (*Post, error) {
	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get post %s: %w", id, err)
	}
	return post, nil
}

func (s *postService) UpdatePost(ctx context.Context, req UpdatePostRequest) (*Post, error) {
	post, err := s.repo.UpdateContentIfOwner(ctx, req.ID, req.UserID, req.Content)
	if err != nil {
		if IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update post %s: %w", req.ID, err)
	}
	return post, nil
}

func (s *postService) DeletePost(ctx context.Context, id, userID string) (*Post, error) {
	post, err := s.repo.DeleteIfOwner(ctx, id, userID)
	if err != nil {
		if IsNotFound(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to delete post %s: %w", id, err)
	}

	// The row is gone; removing the uploaded asset is best-effort and must
	// not delay or fail the response. Detached from the request context on
	// purpose - the cleanup outlives the request.
	if post.ImagekitFileID != nil && *post.ImagekitFileID != "" {
		go s.cleanupAsset(*post.ImagekitFileID)
	}

	return post, nil
}

func (s *postService) cleanupAsset(fileID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.assets.DeleteFile(ctx, fileID); err != nil {
		log.Printf("WARN: failed to delete asset %s for removed post: %v", fileID, err)
	}
}

func (s *postService) IncrementLikes(ctx context.Context, id string) (string, error) {
	if err := s.repo.IncrementCounter(ctx, id, FieldLikes, 1); err != nil {
		return "", err
	}
	return MsgPostLiked, nil
}

func (s *postService) DecrementLikes(ctx context.Context, id string) (string, error) {
	if err := s.repo.IncrementCounter(ctx, id, FieldLikes, -1); err != nil {
		return "", err
	}
	return MsgPostDisliked, nil
}

func (s *postService) IncrementComments(ctx context.Context, id string) (string, error) {
	if err := s.repo.IncrementCounter(ctx, id, FieldComments, 1); err != nil {
		return "", err
	}
	return MsgCommentAdded, nil
}

func (s *postService) DecrementComments(ctx context.Context, id string) (string, error) {
	if err := s.repo.IncrementCounter(ctx, id, FieldComments, -1); err != nil {
		return "", err
	}
	return MsgCommentRemoved, nil
}
