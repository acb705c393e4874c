package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	feedUC "github.com/quangdng/devlink/internal/application/usecase/feed"
)

type FeedHandler struct {
	recentFeedUseCase *feedUC.RecentFeedUseCase
}

func NewFeedHandler(recentUC *feedUC.RecentFeedUseCase) *FeedHandler {
	return &FeedHandler{recentFeedUseCase: recentUC}
}

// Recent serves the worker-maintained newest-first feed.
func (h *FeedHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	output, err := h.recentFeedUseCase.Execute(c.Request.Context(), feedUC.RecentFeedInput{Limit: limit})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, output.Posts)
}
