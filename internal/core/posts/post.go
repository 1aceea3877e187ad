package posts

import "time"

// Post represents a row in the posts table.
// The owner's profile fields (userFirstName, userLastName, userName,
// userImageUrl) are a snapshot taken at creation time; the user service owns
// the live profile and we never sync back to it.
type Post struct {
	CreatedAt        time.Time `json:"createdAt" db:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updatedAt"`
	Content          *string   `json:"content,omitempty" db:"content"`
	ImgURL           *string   `json:"imgUrl,omitempty" db:"imgUrl"`
	VideoURL         *string   `json:"videoUrl,omitempty" db:"videoUrl"`
	ImagekitFileID   *string   `json:"imagekit_fileId,omitempty" db:"imagekit_fileId"`
	UserImageURL     *string   `json:"userImageUrl,omitempty" db:"userImageUrl"`
	ID               string    `json:"id" db:"id"`
	UserID           string    `json:"userId" db:"userId"`
	UserFirstName    string    `json:"userFirstName" db:"userFirstName"`
	UserLastName     string    `json:"userLastName" db:"userLastName"`
	UserName         string    `json:"userName" db:"userName"`
	NumberOfLikes    int       `json:"numberOfLikes" db:"numberOfLikes"`
	NumberOfComments int       `json:"numberOfComments" db:"numberOfComments"`
}

// CreatePostRequest represents input for creating a new post.
// Validation tags are enforced at the transport boundary before the
// request reaches the service.
type CreatePostRequest struct {
	Content        *string `json:"content,omitempty"`
	ImgURL         *string `json:"imgUrl,omitempty" validate:"omitempty,url"`
	VideoURL       *string `json:"videoUrl,omitempty"`
	ImagekitFileID *string `json:"imagekit_fileId,omitempty"`
	UserImageURL   *string `json:"userImageUrl,omitempty"`
	UserID         string  `json:"userId" validate:"required"`
	UserFirstName  string  `json:"userFirstName" validate:"required"`
	UserLastName   string  `json:"userLastName" validate:"required"`
	UserName       string  `json:"userName" validate:"required"`
}

// UpdatePostRequest represents input for editing a post's content.
// Only the stored owner may update; the repository enforces the ownership
// check atomically with the write.
type UpdatePostRequest struct {
	Content *string `json:"content,omitempty"`
	ID      string  `json:"id" validate:"required"`
	UserID  string  `json:"userId" validate:"required"`
}

// PaginatedPosts is a single page of posts plus pagination metadata.
// Size is the number of items actually returned, which is less than the
// requested limit on the final page.
type PaginatedPosts struct {
	Data        []Post `json:"data"`
	CurrentPage int    `json:"currentPage"`
	Size        int    `json:"size"`
	TotalPages  int    `json:"totalPages"`
	HasPrevious bool   `json:"hasPrevious"`
	HasNext     bool   `json:"hasNext"`
}

const (
	defaultPage  = 1
	defaultLimit = 10
)

// normalizePagination replaces non-positive page/limit values with the
// defaults so a bad caller can never produce a negative offset.
func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

// paginate builds the page envelope around the fetched items.
// totalPages is ceil(total/limit); an empty result set has zero pages.
func paginate(items []Post, total, page, limit int) *PaginatedPosts {
	if items == nil {
		items = []Post{}
	}
	totalPages := (total + limit - 1) / limit
	return &PaginatedPosts{
		Data:        items,
		CurrentPage: page,
		Size:        len(items),
		TotalPages:  totalPages,
		HasPrevious: page > 1,
		HasNext:     page < totalPages,
	}
}
