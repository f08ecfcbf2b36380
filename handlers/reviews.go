package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"gamegroove/mapping"
	"gamegroove/models"
	"gamegroove/policy"
	"gamegroove/utils"
)

// GetReviews lists every review enriched with the game title and author
// username, optionally filtered by ?gameId=.
func (h *Handler) GetReviews(c *gin.Context) {
	ctx := c.Request.Context()
	reviews, err := h.Reviews.All(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	if raw := c.Query("gameId"); raw != "" {
		gameID, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid gameId"})
			return
		}
		filtered := reviews[:0]
		for _, r := range reviews {
			if r.GameID == gameID {
				filtered = append(filtered, r)
			}
		}
		reviews = filtered
	}

	details, err := h.reviewDetails(c, reviews)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *Handler) GetReviewByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	review, err := h.Reviews.ByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
		return
	}
	if review.ReviewID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	details, err := h.reviewDetails(c, []models.Review{review})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
		return
	}
	c.JSON(http.StatusOK, details[0])
}

func (h *Handler) CreateReview(c *gin.Context) {
	actor := currentActor(c)
	if d := policy.Evaluate(actor, policy.ActionCreate, policy.EntityReview, 0); d != policy.Allow {
		deny(c, d)
		return
	}

	var input models.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	review := models.Review{
		ReviewText: input.ReviewText,
		DatePosted: time.Now().Format("2006-01-02"),
		Category:   input.Category,
		UserID:     actor.UserID,
		GameID:     input.GameID,
	}
	if err := h.Reviews.Create(c.Request.Context(), review); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review created"})
}

// UpdateReview loads the target first to learn its owner, then runs the
// ownership-scoped policy check. Anonymous callers are turned away before
// the load.
func (h *Handler) UpdateReview(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	actor := currentActor(c)
	if !actor.Authenticated() {
		deny(c, policy.DenyLogin)
		return
	}

	ctx := c.Request.Context()
	review, err := h.Reviews.ByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		return
	}
	if review.ReviewID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	if d := policy.Evaluate(actor, policy.ActionUpdate, policy.EntityReview, review.UserID); d != policy.Allow {
		deny(c, d)
		return
	}

	var input models.UpdateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	review.ReviewText = input.ReviewText
	review.Category = input.Category

	if err := h.Reviews.Update(ctx, review); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		return
	}
	c.JSON(http.StatusOK, review)
}

func (h *Handler) DeleteReview(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	actor := currentActor(c)
	if !actor.Authenticated() {
		deny(c, policy.DenyLogin)
		return
	}

	ctx := c.Request.Context()
	review, err := h.Reviews.ByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}
	if review.ReviewID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}
	if d := policy.Evaluate(actor, policy.ActionDelete, policy.EntityReview, review.UserID); d != policy.Allow {
		deny(c, d)
		return
	}

	if err := h.Reviews.Delete(ctx, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

// reviewDetails resolves the game and author for each review, deduplicating
// lookups within the request. A dangling foreign key maps to empty display
// fields rather than an error.
func (h *Handler) reviewDetails(c *gin.Context, reviews []models.Review) ([]models.ReviewDetails, error) {
	ctx := c.Request.Context()
	games := make(map[int]models.Game)
	authors := make(map[int]models.User)

	details := make([]models.ReviewDetails, 0, len(reviews))
	for _, review := range reviews {
		game, seen := games[review.GameID]
		if !seen {
			var err error
			game, err = h.Games.ByID(ctx, review.GameID)
			if err != nil {
				return nil, err
			}
			games[review.GameID] = game
		}

		author, seen := authors[review.UserID]
		if !seen {
			var err error
			author, err = h.Users.ByID(ctx, review.UserID)
			if err != nil {
				return nil, err
			}
			authors[review.UserID] = author
		}

		details = append(details, mapping.ReviewToDetails(review, game, author))
	}
	return details, nil
}
