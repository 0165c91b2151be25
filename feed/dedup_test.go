package feed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/careernet/careernet-backend/model"
)

func TestDedupPosts(t *testing.T) {
	t.Run("keeps first occurrence position", func(t *testing.T) {
		// Same post fetched by two tiers: the earlier (higher priority)
		// position wins.
		fieldCopy := makePost("dup", "carol", model.PostVisibilityPublic, true, 1)
		industryCopy := makePost("dup", "carol", model.PostVisibilityPublic, true, 1)
		posts := []*model.Post{
			makePost("a", "alice", model.PostVisibilityPublic, true, 2),
			fieldCopy,
			makePost("b", "bob", model.PostVisibilityPublic, true, 3),
			industryCopy,
		}
		deduped := dedupPosts(posts)
		require.Equal(t, []string{"a", "dup", "b"}, postIdsOf(deduped))
		require.Same(t, fieldCopy, deduped[1])
	})

	t.Run("empty input", func(t *testing.T) {
		require.Empty(t, dedupPosts(nil))
	})

	t.Run("no duplicates is a no-op", func(t *testing.T) {
		posts := []*model.Post{
			makePost("a", "alice", model.PostVisibilityPublic, true, 1),
			makePost("b", "bob", model.PostVisibilityPublic, true, 2),
		}
		require.Equal(t, []string{"a", "b"}, postIdsOf(dedupPosts(posts)))
	})
}

func TestShufflePostsPreservesMultiset(t *testing.T) {
	var posts []*model.Post
	for i := 0; i < 15; i++ {
		posts = append(posts, makePost(postId(i), "alice", model.PostVisibilityPublic, true, i))
	}
	var want []string
	for _, p := range posts {
		want = append(want, p.Id)
	}

	composer := newTestComposer(&fakeGraph{}, &fakeProfiles{}, &fakeContents{}, &fakeDiscussions{}, nil)
	composer.shufflePosts(posts)
	require.ElementsMatch(t, want, postIdsOf(posts))
}

func postIdsOf(posts []*model.Post) []string {
	ids := make([]string, len(posts))
	for i, post := range posts {
		ids[i] = post.Id
	}
	return ids
}
