package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careernet/careernet-backend/model"
	Logger "github.com/careernet/careernet-backend/utils/log"
)

// FeedComposer is the slice of the feed engine the HTTP layer needs.
type FeedComposer interface {
	ComposeFeed(ctx context.Context, viewerId string) (*model.FeedResponse, error)
}

// FeedHandler serves GET /api/v1/feed for the authenticated viewer. The
// response envelope is {success, data, meta}; a composition failure maps to
// a generic 500 without partial results.
func FeedHandler(composer FeedComposer) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerId := c.GetString("sub")
		if viewerId == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "missing viewer identity",
			})
			return
		}

		resp, err := composer.ComposeFeed(c.Request.Context(), viewerId)
		if err != nil {
			Logger.LogV2.Error(fmt.Sprintf("failed to compose feed for user %s: %v", viewerId, err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "failed to compose feed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data":    resp.Items,
			"meta":    resp.Diagnostics,
		})
	}
}
