package store

import (
	"context"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/careernet/careernet-backend/model"
)

// ProfileStore reads user profile attributes and job history. Absent records
// are reported as nil values, not errors, so callers can degrade.
type ProfileStore struct {
	db *gorm.DB
}

func NewProfileStore(db *gorm.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// GetProfileSummary returns the profile projection for one user, or nil if
// the user does not exist.
func (s *ProfileStore) GetProfileSummary(ctx context.Context, accountId string) (*model.ProfileSummary, error) {
	var users []*model.User
	result := s.db.WithContext(ctx).Where("id = ?", accountId).Limit(1).Find(&users)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to get profile summary")
	}
	if len(users) == 0 {
		return nil, nil
	}
	return summarizeUser(users[0]), nil
}

// GetCurrentOccupation returns the user's current job, or nil if the user
// has none. If multiple experience rows are marked current, the most
// recently started one wins.
func (s *ProfileStore) GetCurrentOccupation(ctx context.Context, accountId string) (*model.OccupationSignal, error) {
	var exps []*model.Experience
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND is_current = ?", accountId, true).
		Order("started_at DESC").
		Limit(1).
		Find(&exps)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to get current occupation")
	}
	if len(exps) == 0 {
		return nil, nil
	}
	return &model.OccupationSignal{
		AccountId: exps[0].UserId,
		Title:     exps[0].Title,
		IsCurrent: true,
	}, nil
}

// likeEscaper neutralizes LIKE metacharacters so patterns such as
// "100% Remote" match literally instead of as wildcards.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// FindAccountsByOccupationTitleLike returns ids of users whose current job
// title contains the given pattern, case-insensitive, excluding excludeIds.
func (s *ProfileStore) FindAccountsByOccupationTitleLike(ctx context.Context, pattern string, excludeIds []string) ([]string, error) {
	query := s.db.WithContext(ctx).Model(&model.Experience{}).
		Where("is_current = ? AND LOWER(title) LIKE '%' || LOWER(?) || '%' ESCAPE '\\'", true, likeEscaper.Replace(pattern))
	if len(excludeIds) > 0 {
		query = query.Where("user_id NOT IN ?", excludeIds)
	}
	var ids []string
	if err := query.Distinct("user_id").Pluck("user_id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find accounts by occupation title")
	}
	return ids, nil
}

// FindAccountsByIndustry returns ids of users with exactly the given
// industry tag, excluding excludeIds.
func (s *ProfileStore) FindAccountsByIndustry(ctx context.Context, industry string, excludeIds []string) ([]string, error) {
	query := s.db.WithContext(ctx).Model(&model.User{}).Where("industry = ?", industry)
	if len(excludeIds) > 0 {
		query = query.Where("id NOT IN ?", excludeIds)
	}
	var ids []string
	if err := query.Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find accounts by industry")
	}
	return ids, nil
}

// BatchGetProfileSummaries returns a map from account id to profile summary
// for every requested id that exists. Missing ids are simply absent from the
// map.
func (s *ProfileStore) BatchGetProfileSummaries(ctx context.Context, accountIds []string) (map[string]*model.ProfileSummary, error) {
	summaries := map[string]*model.ProfileSummary{}
	if len(accountIds) == 0 {
		return summaries, nil
	}
	var users []*model.User
	result := s.db.WithContext(ctx).Where("id IN ?", accountIds).Find(&users)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to batch get profile summaries")
	}
	for _, user := range users {
		summaries[user.Id] = summarizeUser(user)
	}
	return summaries, nil
}

func summarizeUser(user *model.User) *model.ProfileSummary {
	summary := model.ProfileSummary{}
	// copier maps Headline, AvatarUrl and Industry by name
	copier.Copy(&summary, user)
	summary.AccountId = user.Id
	summary.DisplayName = user.DisplayName()
	return &summary
}
