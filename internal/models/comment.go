package models

import "time"

type Comment struct {
	ID        int64     `db:"comment_id" json:"comment_id"`
	ArticleID int64     `db:"article_id" json:"article_id"`
	Body      string    `db:"body"       json:"body"`
	Author    string    `db:"author"     json:"author"`
	Votes     int       `db:"votes"      json:"votes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// swagger:model PostCommentRequest
type PostCommentRequest struct {
	Username string `json:"username" validate:"required" example:"butter_bridge"`
	Body     string `json:"body"     validate:"required" example:"This morning, I showered for nine minutes."`
}
