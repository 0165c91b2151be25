package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/careernet/careernet-backend/model"
)

type stubComposer struct {
	resp *model.FeedResponse
	err  error
}

func (s *stubComposer) ComposeFeed(ctx context.Context, viewerId string) (*model.FeedResponse, error) {
	return s.resp, s.err
}

func newFeedRouter(composer FeedComposer, viewerId string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/v1/feed", func(c *gin.Context) {
		if viewerId != "" {
			c.Set("sub", viewerId)
		}
		FeedHandler(composer)(c)
	})
	return router
}

func TestFeedHandlerEnvelope(t *testing.T) {
	composer := &stubComposer{resp: &model.FeedResponse{
		Items: []*model.FeedItem{
			{
				Post:     model.Post{Id: "p1", AuthorId: "alice"},
				Author:   model.ProfileSummary{AccountId: "alice", DisplayName: "Alice A"},
				Comments: []model.CommentPreview{},
			},
		},
		Diagnostics: model.FeedDiagnostics{TotalPosts: 1, ConnectionPosts: 1},
	}}
	router := newFeedRouter(composer, "viewer")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool                  `json:"success"`
		Data    []*model.FeedItem     `json:"data"`
		Meta    model.FeedDiagnostics `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.True(t, body.Success)
	require.Len(t, body.Data, 1)
	require.Equal(t, "p1", body.Data[0].Post.Id)
	require.Equal(t, 1, body.Meta.TotalPosts)
}

func TestFeedHandlerCompositionFailure(t *testing.T) {
	composer := &stubComposer{err: errors.New("feed composition failed: store unavailable")}
	router := newFeedRouter(composer, "viewer")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, false, body["success"])
	require.Equal(t, "failed to compose feed", body["error"])
}

func TestFeedHandlerMissingViewer(t *testing.T) {
	router := newFeedRouter(&stubComposer{}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
