package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamegroove/bll"
)

// GetHomeSummary assembles the landing-page numbers: the most reviewed game
// (a client-side reduction over the full review set) and the most frequent
// category (computed by the store). With no reviews yet both come back
// empty - that is nothing to display, not a failure.
func (h *Handler) GetHomeSummary(c *gin.Context) {
	ctx := c.Request.Context()

	reviews, err := h.Reviews.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load home page"})
		return
	}

	summary := gin.H{"topGame": nil, "topCategory": ""}

	if gameID := bll.TopGame(reviews); gameID != 0 {
		game, err := h.Games.ByID(ctx, gameID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load home page"})
			return
		}
		if game.GameID != 0 {
			summary["topGame"] = game
		}
	}

	top, err := h.Reviews.TopCategory(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load home page"})
		return
	}
	summary["topCategory"] = top.Category

	c.JSON(http.StatusOK, summary)
}
