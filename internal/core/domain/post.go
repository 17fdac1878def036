package domain

// Post is a published article in the school feed.
type Post struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Author      string `json:"author"`
	AuthorID    string `json:"authorId"`
	CreatedAt   string `json:"createdAt"` // YYYY-MM-DD
	Description string `json:"description"`
}

// PostDraft carries the caller-supplied fields for a new post.
// ID and CreatedAt are assigned by the service.
type PostDraft struct {
	Title       string `validate:"required"`
	Content     string `validate:"required"`
	Author      string
	AuthorID    string
	Description string `validate:"required"`
}

// PostPatch is a partial update. Nil fields are left untouched on the
// server and in the cache.
type PostPatch struct {
	Title       *string
	Content     *string
	Author      *string
	Description *string
}
