package model

import "time"

// ProfileSummary is a request-time projection of a user's profile. It is
// fetched fresh per feed composition and never cached across requests.
type ProfileSummary struct {
	AccountId   string `json:"accountId"`
	DisplayName string `json:"displayName"`
	Headline    string `json:"headline"`
	AvatarUrl   string `json:"avatarUrl"`
	Industry    string `json:"industry,omitempty"`
}

// OccupationSignal is a projection of a user's current job, used to derive
// the viewer's field and to find authors sharing it.
type OccupationSignal struct {
	AccountId string `json:"accountId"`
	Title     string `json:"title"`
	IsCurrent bool   `json:"isCurrent"`
}

// CommentPreview is one entry of a feed item's bounded discussion preview.
type CommentPreview struct {
	Id           string         `json:"id"`
	Content      string         `json:"content"`
	LikesCount   int            `json:"likesCount"`
	RepliesCount int            `json:"repliesCount"`
	CreatedAt    time.Time      `json:"createdAt"`
	Author       ProfileSummary `json:"author"`
}

// FeedItem is the enriched output unit of feed composition: the post itself
// plus a denormalized author summary and up to two recent comments. Built
// fresh per request, never persisted.
type FeedItem struct {
	Post     Post              `json:"post"`
	Author   ProfileSummary    `json:"author"`
	Media    []MediaAttachment `json:"media"`
	Comments []CommentPreview  `json:"comments"`
	IsRead   bool              `json:"isRead"`
}

// TierCounts holds the pre-deduplication item count of each composition tier.
type TierCounts struct {
	Connection int
	Field      int
	Industry   int
	Remaining  int
	UserOwn    int
}

// FeedDiagnostics is the meta block of a feed response. The per-tier counts
// are taken before deduplication, so they may not sum to TotalPosts.
type FeedDiagnostics struct {
	TotalPosts      int `json:"totalPosts"`
	ConnectionPosts int `json:"connectionPosts"`
	FieldPosts      int `json:"fieldPosts"`
	IndustryPosts   int `json:"industryPosts"`
	RemainingPosts  int `json:"remainingPosts"`
	UserOwnPosts    int `json:"userOwnPosts"`
}

// FeedResponse is the envelope returned by feed composition.
type FeedResponse struct {
	Items       []*FeedItem     `json:"items"`
	Diagnostics FeedDiagnostics `json:"diagnostics"`
}
