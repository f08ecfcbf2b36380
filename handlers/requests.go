package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gamegroove/models"
	"gamegroove/policy"
	"gamegroove/utils"
)

// CreateRequest files a game request under a snapshot of the submitter's
// current username. Renaming the account later does not touch old requests.
func (h *Handler) CreateRequest(c *gin.Context) {
	actor := currentActor(c)
	if d := policy.Evaluate(actor, policy.ActionCreate, policy.EntityRequest, 0); d != policy.Allow {
		deny(c, d)
		return
	}

	var input models.RequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	ctx := c.Request.Context()
	submitter, err := h.Users.ByID(ctx, actor.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
		return
	}

	request := models.Request{
		RequestText: input.RequestText,
		Username:    submitter.Username,
		Date:        time.Now().Format("2006-01-02"),
	}
	if err := h.Requests.Create(ctx, request); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create request"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Request submitted"})
}

func (h *Handler) GetRequests(c *gin.Context) {
	actor := currentActor(c)
	if d := policy.Evaluate(actor, policy.ActionReadAll, policy.EntityRequest, 0); d != policy.Allow {
		deny(c, d)
		return
	}

	requests, err := h.Requests.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch requests"})
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *Handler) GetRequestByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	actor := currentActor(c)
	if d := policy.Evaluate(actor, policy.ActionReadOne, policy.EntityRequest, 0); d != policy.Allow {
		deny(c, d)
		return
	}

	request, err := h.Requests.ByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch request"})
		return
	}
	if request.RequestID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}
	c.JSON(http.StatusOK, request)
}

func (h *Handler) DeleteRequest(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	actor := currentActor(c)
	if d := policy.Evaluate(actor, policy.ActionDelete, policy.EntityRequest, 0); d != policy.Allow {
		deny(c, d)
		return
	}

	ctx := c.Request.Context()
	request, err := h.Requests.ByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete request"})
		return
	}
	if request.RequestID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	if err := h.Requests.Delete(ctx, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete request"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request deleted"})
}
