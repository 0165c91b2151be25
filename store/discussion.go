package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/careernet/careernet-backend/model"
)

// DiscussionStore reads comments.
type DiscussionStore struct {
	db *gorm.DB
}

func NewDiscussionStore(db *gorm.DB) *DiscussionStore {
	return &DiscussionStore{db: db}
}

// ListRecentComments returns all comments on the given posts, newest first.
// Replies are not filtered out here; the preview truncation happens in the
// enrichment pipeline.
func (s *DiscussionStore) ListRecentComments(ctx context.Context, postIds []string) ([]*model.Comment, error) {
	if len(postIds) == 0 {
		return nil, nil
	}
	var comments []*model.Comment
	result := s.db.WithContext(ctx).
		Where("post_id IN ?", postIds).
		Order("created_at DESC").
		Find(&comments)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to list recent comments")
	}
	return comments, nil
}
