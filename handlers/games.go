package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamegroove/models"
	"gamegroove/policy"
	"gamegroove/utils"
)

func (h *Handler) GetGames(c *gin.Context) {
	games, err := h.Games.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
		return
	}
	c.JSON(http.StatusOK, games)
}

func (h *Handler) GetGameByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	game, err := h.Games.ByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch game"})
		return
	}
	if game.GameID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}
	c.JSON(http.StatusOK, game)
}

func (h *Handler) CreateGame(c *gin.Context) {
	actor := currentActor(c)
	if d := policy.Evaluate(actor, policy.ActionCreate, policy.EntityGame, 0); d != policy.Allow {
		deny(c, d)
		return
	}

	var input models.GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	game := models.Game{
		Title:       input.Title,
		ReleaseDate: input.ReleaseDate,
		Developer:   input.Developer,
		Platform:    input.Platform,
	}
	if err := h.Games.Create(c.Request.Context(), game); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Game created"})
}

func (h *Handler) UpdateGame(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	actor := currentActor(c)
	if d := policy.Evaluate(actor, policy.ActionUpdate, policy.EntityGame, 0); d != policy.Allow {
		deny(c, d)
		return
	}

	ctx := c.Request.Context()
	game, err := h.Games.ByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
		return
	}
	if game.GameID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	var input models.GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	game.Title = input.Title
	game.ReleaseDate = input.ReleaseDate
	game.Developer = input.Developer
	game.Platform = input.Platform

	if err := h.Games.Update(ctx, game); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
		return
	}
	c.JSON(http.StatusOK, game)
}

func (h *Handler) DeleteGame(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	actor := currentActor(c)
	if d := policy.Evaluate(actor, policy.ActionDelete, policy.EntityGame, 0); d != policy.Allow {
		deny(c, d)
		return
	}

	ctx := c.Request.Context()
	game, err := h.Games.ByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		return
	}
	if game.GameID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	if err := h.Games.Delete(ctx, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game deleted"})
}
