package model

import "time"

type Comment struct {
	ID       int64     `json:"id"`
	ItemID   int64     `json:"-"`
	AuthorID int64     `json:"-"`
	Text     string    `json:"text"`
	Created  time.Time `json:"created"`
}

// CommentDetail carries the author's display name alongside the comment.
type CommentDetail struct {
	Comment
	AuthorName string `json:"authorName"`
}
