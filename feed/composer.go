package feed

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/careernet/careernet-backend/model"
	Logger "github.com/careernet/careernet-backend/utils/log"
)

// ErrCompositionFailed is reported whenever a store failure aborts the feed.
// Callers match it with errors.Is; the underlying store error stays on the
// chain via Unwrap.
var ErrCompositionFailed = errors.New("feed composition failed")

type compositionError struct {
	cause error
}

func (e *compositionError) Error() string {
	return ErrCompositionFailed.Error() + ": " + e.cause.Error()
}

func (e *compositionError) Unwrap() error { return e.cause }

func (e *compositionError) Is(target error) bool { return target == ErrCompositionFailed }

// Collaborator interfaces consumed by the composer. The gorm-backed
// implementations live in the store package; tests substitute in-memory
// fakes.

type SocialGraphStore interface {
	ListAcceptedConnections(ctx context.Context, accountId string) ([]*model.Connection, error)
}

type ProfileStore interface {
	GetProfileSummary(ctx context.Context, accountId string) (*model.ProfileSummary, error)
	GetCurrentOccupation(ctx context.Context, accountId string) (*model.OccupationSignal, error)
	FindAccountsByOccupationTitleLike(ctx context.Context, pattern string, excludeIds []string) ([]string, error)
	FindAccountsByIndustry(ctx context.Context, industry string, excludeIds []string) ([]string, error)
	BatchGetProfileSummaries(ctx context.Context, accountIds []string) (map[string]*model.ProfileSummary, error)
}

type ContentStore interface {
	ListEligiblePosts(ctx context.Context, authorIds []string, visibility []model.PostVisibility, limit int) ([]*model.Post, error)
	ListEligiblePostsExcluding(ctx context.Context, excludeAuthorIds []string, visibility []model.PostVisibility, limit int) ([]*model.Post, error)
}

type DiscussionStore interface {
	ListRecentComments(ctx context.Context, postIds []string) ([]*model.Comment, error)
}

// ReadStatusStore marks which feed items the viewer has already seen. It is
// optional: a nil store leaves every item unread, and a failing store
// degrades the same way instead of aborting the composition.
type ReadStatusStore interface {
	GetItemsReadStatus(postIds []string, userId string) ([]bool, error)
}

const defaultStoreTimeout = 5 * time.Second

// Composer assembles one viewer's feed: five prioritized candidate tiers,
// deduplication, then batch enrichment with author summaries and comment
// previews. It performs no writes; every store read is bounded by
// StoreTimeout and the caller's context.
type Composer struct {
	Graph        SocialGraphStore
	Profiles     ProfileStore
	Contents     ContentStore
	Discussions  DiscussionStore
	ReadStatus   ReadStatusStore
	StoreTimeout time.Duration

	mu  sync.Mutex
	rng *rand.Rand
}

func NewComposer(graph SocialGraphStore, profiles ProfileStore, contents ContentStore, discussions DiscussionStore, readStatus ReadStatusStore) *Composer {
	return &Composer{
		Graph:        graph,
		Profiles:     profiles,
		Contents:     contents,
		Discussions:  discussions,
		ReadStatus:   readStatus,
		StoreTimeout: defaultStoreTimeout,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SeedRand replaces the shuffle source with a deterministic one. Tests use
// this to make tier ordering reproducible.
func (c *Composer) SeedRand(seed int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rng = rand.New(rand.NewSource(seed))
}

// ComposeFeed builds the ranked, deduplicated, enriched feed for one viewer.
// Any store failure during tier sequencing or enrichment aborts the whole
// composition; no partial feed is returned.
func (c *Composer) ComposeFeed(ctx context.Context, viewerId string) (*model.FeedResponse, error) {
	posts, counts, err := c.sequenceTiers(ctx, viewerId)
	if err != nil {
		return nil, &compositionError{cause: err}
	}

	deduped := dedupPosts(posts)

	items, err := c.enrichPosts(ctx, deduped)
	if err != nil {
		return nil, &compositionError{cause: err}
	}

	c.applyReadStatus(items, viewerId)

	return &model.FeedResponse{
		Items: items,
		Diagnostics: model.FeedDiagnostics{
			TotalPosts:      len(items),
			ConnectionPosts: counts.Connection,
			FieldPosts:      counts.Field,
			IndustryPosts:   counts.Industry,
			RemainingPosts:  counts.Remaining,
			UserOwnPosts:    counts.UserOwn,
		},
	}, nil
}

// applyReadStatus fills the IsRead flag from the read-status store. Failures
// only lose the flag, never the feed.
func (c *Composer) applyReadStatus(items []*model.FeedItem, viewerId string) {
	if c.ReadStatus == nil || len(items) == 0 {
		return
	}
	postIds := make([]string, len(items))
	for i, item := range items {
		postIds[i] = item.Post.Id
	}
	status, err := c.ReadStatus.GetItemsReadStatus(postIds, viewerId)
	if err != nil {
		Logger.LogV2.Error(fmt.Sprintf("failed to get read status for user %s: %v", viewerId, err))
		return
	}
	if len(status) != len(items) {
		Logger.LogV2.Error(fmt.Sprintf("read status length mismatch: got %d, want %d", len(status), len(items)))
		return
	}
	for i := range items {
		items[i].IsRead = status[i]
	}
}

func (c *Composer) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := c.StoreTimeout
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}
