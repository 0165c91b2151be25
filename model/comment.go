package model

import (
	"time"

	"gorm.io/gorm"
)

/*

Comment is a data model for one comment under a post

PostId: post this comment belongs to
AuthorId: user who wrote it
ParentCommentId: nil for a top-level comment, otherwise the comment it
replies to (one level of threading)
LikesCount/RepliesCount: denormalized counters maintained by the comment
collaborator

*/

type Comment struct {
	Id              string    `gorm:"primaryKey"`
	CreatedAt       time.Time `gorm:"index"`
	DeletedAt       gorm.DeletedAt
	PostId          string `gorm:"index"`
	AuthorId        string `gorm:"index"`
	Content         string
	ParentCommentId *string
	LikesCount      int
	RepliesCount    int
}
