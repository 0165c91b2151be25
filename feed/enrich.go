package feed

import (
	"context"
	"sync"

	"github.com/careernet/careernet-backend/model"
)

// Number of recent comments surfaced per feed item.
const commentPreviewLimit = 2

// enrichPosts joins the deduplicated post list against the profile and
// discussion stores, producing one feed item per post in the same order.
// Enrichment never drops an item: a missing profile degrades to a
// placeholder summary. A failed batch fetch is a store failure and aborts.
func (c *Composer) enrichPosts(ctx context.Context, posts []*model.Post) ([]*model.FeedItem, error) {
	authorIds := make([]string, 0, len(posts))
	seenAuthors := map[string]bool{}
	postIds := make([]string, 0, len(posts))
	for _, post := range posts {
		postIds = append(postIds, post.Id)
		if !seenAuthors[post.AuthorId] {
			seenAuthors[post.AuthorId] = true
			authorIds = append(authorIds, post.AuthorId)
		}
	}

	// Author profiles and comments have no data dependency on each other,
	// fetch both at once.
	var authorSummaries map[string]*model.ProfileSummary
	var authorErr error
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		profileCtx, cancel := c.storeCtx(ctx)
		defer cancel()
		authorSummaries, authorErr = c.Profiles.BatchGetProfileSummaries(profileCtx, authorIds)
	}()

	commentCtx, cancel := c.storeCtx(ctx)
	comments, commentErr := c.Discussions.ListRecentComments(commentCtx, postIds)
	cancel()
	wg.Wait()
	if authorErr != nil {
		return nil, authorErr
	}
	if commentErr != nil {
		return nil, commentErr
	}

	// Group newest-first comments by post and cap each group. Replies are
	// not distinguished from top-level comments here, matching the original
	// preview behavior.
	previews := map[string][]*model.Comment{}
	commentAuthorIds := []string{}
	seenCommentAuthors := map[string]bool{}
	for _, comment := range comments {
		if len(previews[comment.PostId]) >= commentPreviewLimit {
			continue
		}
		previews[comment.PostId] = append(previews[comment.PostId], comment)
		if !seenCommentAuthors[comment.AuthorId] {
			seenCommentAuthors[comment.AuthorId] = true
			commentAuthorIds = append(commentAuthorIds, comment.AuthorId)
		}
	}

	commentProfileCtx, cancel := c.storeCtx(ctx)
	commentAuthorSummaries, err := c.Profiles.BatchGetProfileSummaries(commentProfileCtx, commentAuthorIds)
	cancel()
	if err != nil {
		return nil, err
	}

	items := make([]*model.FeedItem, 0, len(posts))
	for _, post := range posts {
		item := &model.FeedItem{
			Post:     *post,
			Author:   summaryOrPlaceholder(authorSummaries, post.AuthorId),
			Media:    post.Media(),
			Comments: []model.CommentPreview{},
		}
		for _, comment := range previews[post.Id] {
			item.Comments = append(item.Comments, model.CommentPreview{
				Id:           comment.Id,
				Content:      comment.Content,
				LikesCount:   comment.LikesCount,
				RepliesCount: comment.RepliesCount,
				CreatedAt:    comment.CreatedAt,
				Author:       summaryOrPlaceholder(commentAuthorSummaries, comment.AuthorId),
			})
		}
		items = append(items, item)
	}
	return items, nil
}

func summaryOrPlaceholder(summaries map[string]*model.ProfileSummary, accountId string) model.ProfileSummary {
	if summary, ok := summaries[accountId]; ok && summary != nil {
		return *summary
	}
	return model.ProfileSummary{
		AccountId:   accountId,
		DisplayName: "Unknown User",
		Headline:    "",
		AvatarUrl:   "",
	}
}
