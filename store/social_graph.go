package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/careernet/careernet-backend/model"
)

// SocialGraphStore reads connection edges. All mutation of edges happens in
// the connection-request collaborator, never here.
type SocialGraphStore struct {
	db *gorm.DB
}

func NewSocialGraphStore(db *gorm.DB) *SocialGraphStore {
	return &SocialGraphStore{db: db}
}

// ListAcceptedConnections returns every ACCEPTED edge the given user is on
// either end of.
func (s *SocialGraphStore) ListAcceptedConnections(ctx context.Context, accountId string) ([]*model.Connection, error) {
	var conns []*model.Connection
	result := s.db.WithContext(ctx).
		Where("(requester_id = ? OR recipient_id = ?) AND status = ?",
			accountId, accountId, model.ConnectionStatusAccepted).
		Find(&conns)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to list accepted connections")
	}
	return conns, nil
}
