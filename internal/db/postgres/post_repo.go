package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"Postline/internal/core/posts"
)

// Column list shared by every query that returns full rows.
// Column names are quoted because the original schema uses camelCase.
const postColumns = `
	id, content, "imgUrl", "videoUrl", "imagekit_fileId",
	"userId", "userFirstName", "userLastName", "userName", "userImageUrl",
	"numberOfLikes", "numberOfComments", "createdAt", "updatedAt"`

type postgresPostRepo struct {
	db *sql.DB
}

// NewPostRepository creates a new PostgreSQL post repository
func NewPostRepository(db *sql.DB) posts.Repository {
	return &postgresPostRepo{db: db}
}

// Create inserts a new post; the store assigns id and both timestamps.
func (r *postgresPostRepo) Create(ctx context.Context, req posts.CreatePostRequest) (*posts.Post, error) {
	query := `
		INSERT INTO posts (
			content, "imgUrl", "videoUrl", "imagekit_fileId",
			"userId", "userFirstName", "userLastName", "userName", "userImageUrl"
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8, $9
		)
		RETURNING` + postColumns

	row := r.db.QueryRowContext(
		ctx, query,
		req.Content, req.ImgURL, req.VideoURL, req.ImagekitFileID,
		req.UserID, req.UserFirstName, req.UserLastName, req.UserName, req.UserImageURL,
	)

	post, err := scanPost(row)
	if err != nil {
		if strings.Contains(err.Error(), "violates not-null constraint") {
			return nil, fmt.Errorf("missing required post field: %w", err)
		}
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return post, nil
}

// GetByID retrieves a post by its id.
func (r *postgresPostRepo) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	query := `SELECT` + postColumns + ` FROM posts WHERE id = $1`

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// List returns one pagination window ordered by creation time descending,
// id descending as tiebreak for a deterministic order, plus the total
// number of matching rows. The count runs after the page fetch within the
// same request; under concurrent deletes it may transiently disagree with
// the page, which callers accept.
func (r *postgresPostRepo) List(ctx context.Context, userID string, limit, offset int) ([]posts.Post, int, error) {
	where := ""
	args := []interface{}{}
	if userID != "" {
		where = `WHERE "userId" = $1`
		args = append(args, userID)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM posts
		%s
		ORDER BY "createdAt" DESC, id DESC
		LIMIT $%d OFFSET $%d
	`, postColumns, where, len(args)+1, len(args)+2)

	rows, err := r.db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	items := []posts.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan post: %w", err)
		}
		items = append(items, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating posts: %w", err)
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM posts %s`, where)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	return items, total, nil
}

// UpdateContentIfOwner updates content where both id and owner match, as a
// single conditional statement. Zero rows updated collapses into
// ErrNotFound so a wrong owner can't tell the post exists. A nil content
// leaves the stored body untouched: an update payload that omits the field
// must not erase it.
func (r *postgresPostRepo) UpdateContentIfOwner(ctx context.Context, id, userID string, content *string) (*posts.Post, error) {
	query := `
		UPDATE posts
		SET content = COALESCE($1, content), "updatedAt" = now()
		WHERE id = $2 AND "userId" = $3
		RETURNING` + postColumns

	post, err := scanPost(r.db.QueryRowContext(ctx, query, content, id, userID))
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// DeleteIfOwner deletes under the same conditional pattern as
// UpdateContentIfOwner and returns the deleted row.
func (r *postgresPostRepo) DeleteIfOwner(ctx context.Context, id, userID string) (*posts.Post, error) {
	query := `
		DELETE FROM posts
		WHERE id = $1 AND "userId" = $2
		RETURNING` + postColumns

	post, err := scanPost(r.db.QueryRowContext(ctx, query, id, userID))
	if err == sql.ErrNoRows {
		return nil, posts.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete post: %w", err)
	}

	return post, nil
}

// IncrementCounter applies delta to a counter column in a single UPDATE so
// concurrent increments never lose updates. The value is clamped at zero:
// decrementing an already-zero counter leaves it at zero rather than going
// negative.
func (r *postgresPostRepo) IncrementCounter(ctx context.Context, id string, field posts.CounterField, delta int) error {
	// The column name is interpolated, so restrict it to the known fields.
	switch field {
	case posts.FieldLikes, posts.FieldComments:
	default:
		return fmt.Errorf("unknown counter field: %s", field)
	}

	query := fmt.Sprintf(`
		UPDATE posts
		SET %q = GREATEST(%q + $1, 0), "updatedAt" = now()
		WHERE id = $2
	`, string(field), string(field))

	result, err := r.db.ExecContext(ctx, query, delta, id)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", field, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check counter update result: %w", err)
	}
	if rowsAffected == 0 {
		return posts.ErrNotFound
	}

	return nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*posts.Post, error) {
	var post posts.Post
	var content, imgURL, videoURL, fileID, userImageURL sql.NullString

	err := row.Scan(
		&post.ID, &content, &imgURL, &videoURL, &fileID,
		&post.UserID, &post.UserFirstName, &post.UserLastName, &post.UserName, &userImageURL,
		&post.NumberOfLikes, &post.NumberOfComments, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if content.Valid {
		post.Content = &content.String
	}
	if imgURL.Valid {
		post.ImgURL = &imgURL.String
	}
	if videoURL.Valid {
		post.VideoURL = &videoURL.String
	}
	if fileID.Valid {
		post.ImagekitFileID = &fileID.String
	}
	if userImageURL.Valid {
		post.UserImageURL = &userImageURL.String
	}

	return &post, nil
}
