package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/careernet/careernet-backend/model"
)

// ContentStore reads posts. Both list operations return active posts only,
// newest first, capped at limit. An empty visibility filter means any
// visibility.
type ContentStore struct {
	db *gorm.DB
}

func NewContentStore(db *gorm.DB) *ContentStore {
	return &ContentStore{db: db}
}

// ListEligiblePosts returns eligible posts authored by any of authorIds.
func (s *ContentStore) ListEligiblePosts(ctx context.Context, authorIds []string, visibility []model.PostVisibility, limit int) ([]*model.Post, error) {
	if len(authorIds) == 0 {
		return nil, nil
	}
	query := s.eligible(ctx, visibility).Where("author_id IN ?", authorIds)
	var posts []*model.Post
	if err := query.Order("created_at DESC").Limit(limit).Find(&posts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list eligible posts")
	}
	return posts, nil
}

// ListEligiblePostsExcluding returns eligible posts authored by anyone not
// in excludeAuthorIds. Used by the remaining tier, whose candidate author
// set is defined by exclusion rather than enumeration.
func (s *ContentStore) ListEligiblePostsExcluding(ctx context.Context, excludeAuthorIds []string, visibility []model.PostVisibility, limit int) ([]*model.Post, error) {
	query := s.eligible(ctx, visibility)
	if len(excludeAuthorIds) > 0 {
		query = query.Where("author_id NOT IN ?", excludeAuthorIds)
	}
	var posts []*model.Post
	if err := query.Order("created_at DESC").Limit(limit).Find(&posts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list eligible posts by exclusion")
	}
	return posts, nil
}

func (s *ContentStore) eligible(ctx context.Context, visibility []model.PostVisibility) *gorm.DB {
	query := s.db.WithContext(ctx).Model(&model.Post{}).Where("is_active = ?", true)
	if len(visibility) > 0 {
		query = query.Where("visibility IN ?", visibility)
	}
	return query
}
