package feed

import (
	"context"
	"math/rand"
	"sync"

	"github.com/careernet/careernet-backend/model"
)

// Per-tier fetch caps. Each tier draws a recency-ordered candidate batch of
// at most this size before shuffling.
const (
	connectionTierLimit = 50
	fieldTierLimit      = 30
	industryTierLimit   = 30
	remainingTierLimit  = 30
	ownTierLimit        = 20
)

var feedVisibilities = []model.PostVisibility{
	model.PostVisibilityPublic,
	model.PostVisibilityConnections,
}

var publicOnly = []model.PostVisibility{model.PostVisibilityPublic}

// sequenceTiers runs the five composition tiers in priority order and
// returns the concatenated, not yet deduplicated candidate list.
//
// Tiers 2-4 each exclude every author already claimed by an earlier tier, so
// they must run sequentially; the own tier has no exclusion precondition and
// is fetched concurrently with the rest.
func (c *Composer) sequenceTiers(ctx context.Context, viewerId string) ([]*model.Post, model.TierCounts, error) {
	var counts model.TierCounts

	var ownPosts []*model.Post
	var ownErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		ownCtx, cancel := c.storeCtx(ctx)
		defer cancel()
		ownPosts, ownErr = c.Contents.ListEligiblePosts(ownCtx, []string{viewerId}, nil, ownTierLimit)
	}()

	// Tier 1: connections.
	connCtx, cancel := c.storeCtx(ctx)
	conns, err := c.Graph.ListAcceptedConnections(connCtx, viewerId)
	cancel()
	if err != nil {
		wg.Wait()
		return nil, counts, err
	}
	connectionIds := make([]string, 0, len(conns))
	for _, conn := range conns {
		if counterpart := conn.CounterpartId(viewerId); counterpart != "" {
			connectionIds = append(connectionIds, counterpart)
		}
	}

	connectionPosts, err := c.fetchTier(ctx, connectionIds, feedVisibilities, connectionTierLimit, true)
	if err != nil {
		wg.Wait()
		return nil, counts, err
	}
	counts.Connection = len(connectionPosts)

	// Viewer signals shared by tiers 2 and 3.
	profileCtx, cancel := c.storeCtx(ctx)
	viewerProfile, err := c.Profiles.GetProfileSummary(profileCtx, viewerId)
	cancel()
	if err != nil {
		wg.Wait()
		return nil, counts, err
	}
	occCtx, cancel := c.storeCtx(ctx)
	occupation, err := c.Profiles.GetCurrentOccupation(occCtx, viewerId)
	cancel()
	if err != nil {
		wg.Wait()
		return nil, counts, err
	}

	excluded := append([]string{viewerId}, connectionIds...)

	// Tier 2: same field, matched by case-insensitive substring on the
	// viewer's current job title. Skipped when the viewer has no current job.
	var fieldPosts []*model.Post
	var fieldUserIds []string
	if occupation != nil && occupation.Title != "" {
		findCtx, cancel := c.storeCtx(ctx)
		fieldUserIds, err = c.Profiles.FindAccountsByOccupationTitleLike(findCtx, occupation.Title, excluded)
		cancel()
		if err != nil {
			wg.Wait()
			return nil, counts, err
		}
		fieldPosts, err = c.fetchTier(ctx, fieldUserIds, publicOnly, fieldTierLimit, true)
		if err != nil {
			wg.Wait()
			return nil, counts, err
		}
		counts.Field = len(fieldPosts)
	}
	excluded = append(excluded, fieldUserIds...)

	// Tier 3: same industry. Skipped when the viewer has no industry tag.
	var industryPosts []*model.Post
	var industryUserIds []string
	if viewerProfile != nil && viewerProfile.Industry != "" {
		findCtx, cancel := c.storeCtx(ctx)
		industryUserIds, err = c.Profiles.FindAccountsByIndustry(findCtx, viewerProfile.Industry, excluded)
		cancel()
		if err != nil {
			wg.Wait()
			return nil, counts, err
		}
		industryPosts, err = c.fetchTier(ctx, industryUserIds, publicOnly, industryTierLimit, true)
		if err != nil {
			wg.Wait()
			return nil, counts, err
		}
		counts.Industry = len(industryPosts)
	}
	excluded = append(excluded, industryUserIds...)

	// Tier 4: everyone not claimed by an earlier tier. Kept unshuffled to
	// match the original ranking behavior.
	remainCtx, cancel := c.storeCtx(ctx)
	remainingPosts, err := c.Contents.ListEligiblePostsExcluding(remainCtx, excluded, publicOnly, remainingTierLimit)
	cancel()
	if err != nil {
		wg.Wait()
		return nil, counts, err
	}
	counts.Remaining = len(remainingPosts)

	// Tier 5: the viewer's own posts, appended unconditionally.
	wg.Wait()
	if ownErr != nil {
		return nil, counts, ownErr
	}
	counts.UserOwn = len(ownPosts)

	posts := make([]*model.Post, 0,
		len(connectionPosts)+len(fieldPosts)+len(industryPosts)+len(remainingPosts)+len(ownPosts))
	posts = append(posts, connectionPosts...)
	posts = append(posts, fieldPosts...)
	posts = append(posts, industryPosts...)
	posts = append(posts, remainingPosts...)
	posts = append(posts, ownPosts...)
	return posts, counts, nil
}

// fetchTier pulls one tier's capped candidate batch and optionally shuffles
// it. Shuffling trades strict freshness for diversity inside a window that
// recency already bounded; it never crosses tier boundaries.
func (c *Composer) fetchTier(ctx context.Context, authorIds []string, visibility []model.PostVisibility, limit int, shuffle bool) ([]*model.Post, error) {
	if len(authorIds) == 0 {
		return nil, nil
	}
	fetchCtx, cancel := c.storeCtx(ctx)
	defer cancel()
	posts, err := c.Contents.ListEligiblePosts(fetchCtx, authorIds, visibility, limit)
	if err != nil {
		return nil, err
	}
	if shuffle {
		c.shufflePosts(posts)
	}
	return posts, nil
}

func (c *Composer) shufflePosts(posts []*model.Post) {
	c.mu.Lock()
	defer c.mu.Unlock()
	shufflePosts(posts, c.rng)
}

// shufflePosts permutes posts uniformly in place.
func shufflePosts(posts []*model.Post, rng *rand.Rand) {
	rng.Shuffle(len(posts), func(i, j int) {
		posts[i], posts[j] = posts[j], posts[i]
	})
}
