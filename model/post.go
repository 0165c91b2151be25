package model

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PostVisibility string

const (
	PostVisibilityPublic      PostVisibility = "PUBLIC"
	PostVisibilityConnections PostVisibility = "CONNECTIONS"
	PostVisibilityGroup       PostVisibility = "GROUP"
)

type MediaKind string

const (
	MediaKindImage MediaKind = "IMAGE"
	MediaKindVideo MediaKind = "VIDEO"
)

// MediaAttachment is one entry of a post's ordered media list, stored
// denormalized in Post.MediaAttachments.
type MediaAttachment struct {
	Kind MediaKind `json:"kind"`
	Url  string    `json:"url"`
}

/*

Post is a data model for one piece of member-authored content

AuthorId: user who authored this post, "belongs-to" relation
Content: text body
MediaAttachments: ordered JSON list of MediaAttachment
Visibility: PUBLIC / CONNECTIONS / GROUP. GROUP posts never enter the feed
composed by this service
IsActive: soft-delete flag, only active posts are eligible for any feed
LikesCount/CommentsCount: counters denormalized by the post-management
collaborator on reaction/comment writes
ReactionCounts: per-reaction-type counters, JSON map keyed by reaction name

*/

type Post struct {
	Id               string    `gorm:"primaryKey"`
	CreatedAt        time.Time `gorm:"index"`
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt
	AuthorId         string `gorm:"index"`
	Content          string
	MediaAttachments datatypes.JSON
	// No column defaults here: gorm omits zero-valued fields that carry a
	// default tag on insert, which would silently flip IsActive: false to
	// true. Writers always set both fields explicitly.
	Visibility     PostVisibility `gorm:"index"`
	IsActive       bool           `gorm:"index"`
	LikesCount     int
	CommentsCount  int
	ReactionCounts datatypes.JSON
}

// Media decodes the ordered attachment list. Malformed or missing JSON
// yields nil; a feed item renders fine without media.
func (p Post) Media() []MediaAttachment {
	if len(p.MediaAttachments) == 0 {
		return nil
	}
	var media []MediaAttachment
	if err := json.Unmarshal(p.MediaAttachments, &media); err != nil {
		return nil
	}
	return media
}
