package feed

import "github.com/careernet/careernet-backend/model"

// dedupPosts collapses the tier-concatenated list to one entry per post id,
// keeping each post at its first occurrence so tier priority survives. The
// tier exclusion sets should already prevent overlap; this is the backstop
// for authorship edge cases that slip through.
func dedupPosts(posts []*model.Post) []*model.Post {
	seen := map[string]bool{}
	deduped := make([]*model.Post, 0, len(posts))
	for _, post := range posts {
		if seen[post.Id] {
			continue
		}
		seen[post.Id] = true
		deduped = append(deduped, post)
	}
	return deduped
}
