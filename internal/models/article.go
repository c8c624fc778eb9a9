package models

import "time"

// Article is the external shape of an articles row. CommentCount is only
// populated by list queries; Body is left out of them.
type Article struct {
	ID            int64     `db:"article_id"      json:"article_id"`
	Title         string    `db:"title"           json:"title"`
	Topic         string    `db:"topic"           json:"topic"`
	Author        string    `db:"author"          json:"author"`
	Body          string    `db:"body"            json:"body,omitempty"`
	CreatedAt     time.Time `db:"created_at"      json:"created_at"`
	Votes         int       `db:"votes"           json:"votes"`
	ArticleImgURL string    `db:"article_img_url" json:"article_img_url"`
	CommentCount  *int      `db:"comment_count"   json:"comment_count,omitempty"`
}

// ArticleListParams carries the raw, unvalidated query string values of
// GET /api/articles.
type ArticleListParams struct {
	SortBy string
	Order  string
	Topic  string
}

// swagger:model PatchVotesRequest
type PatchVotesRequest struct {
	IncVotes *int `json:"inc_votes" validate:"required,min=-2147483648,max=2147483647" example:"1"`
}
