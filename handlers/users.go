package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamegroove/mapping"
	"gamegroove/models"
	"gamegroove/policy"
	"gamegroove/utils"
)

// Register creates a new account with the basic User role. A duplicate
// username or email surfaces only through the gateway's affected-row
// boolean - the schema enforces uniqueness, there is no pre-check.
func (h *Handler) Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	user := models.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Username:  input.Username,
		Password:  input.Password,
		Email:     input.Email,
		RoleID:    policy.RoleUser,
	}

	created, err := h.Users.Create(c.Request.Context(), user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}
	if !created {
		c.JSON(http.StatusConflict, gin.H{"error": "Username or Email is already taken"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func (h *Handler) GetUsers(c *gin.Context) {
	actor := currentActor(c)
	if d := policy.Evaluate(actor, policy.ActionReadAll, policy.EntityUser, 0); d != policy.Allow {
		deny(c, d)
		return
	}

	users, err := h.Users.All(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	for i := range users {
		users[i].Password = ""
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByID returns a profile enriched with the role name and the user's
// favorite review category.
func (h *Handler) GetUserByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	actor := currentActor(c)
	if d := policy.Evaluate(actor, policy.ActionReadOne, policy.EntityUser, id); d != policy.Allow {
		deny(c, d)
		return
	}

	ctx := c.Request.Context()
	user, err := h.Users.ByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	if user.UserID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	role, err := h.Roles.ByID(ctx, user.RoleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	favorite, err := h.Reviews.TopCategoryForUser(ctx, user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	user.Password = ""
	c.JSON(http.StatusOK, mapping.UserToDetails(user, role, favorite.Category))
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	actor := currentActor(c)
	if d := policy.Evaluate(actor, policy.ActionUpdate, policy.EntityUser, id); d != policy.Allow {
		deny(c, d)
		return
	}

	ctx := c.Request.Context()
	target, err := h.Users.ByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	if target.UserID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var input models.UpdateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	target.FirstName = input.FirstName
	target.LastName = input.LastName
	target.Username = input.Username
	target.Email = input.Email
	// Only admins may move an account to another role.
	if input.RoleID != 0 && actor.IsAdmin() {
		target.RoleID = input.RoleID
	}

	if err := h.Users.Update(ctx, target); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	target.Password = ""
	c.JSON(http.StatusOK, target)
}

// ChangePassword verifies the current password against the stored record
// before writing the new one. Same plaintext comparison as Login.
func (h *Handler) ChangePassword(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	actor := currentActor(c)
	if d := policy.Evaluate(actor, policy.ActionChangePassword, policy.EntityUser, id); d != policy.Allow {
		deny(c, d)
		return
	}

	ctx := c.Request.Context()
	target, err := h.Users.ByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}
	if target.UserID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	var input models.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}
	if target.Password != input.Password {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect"})
		return
	}

	target.Password = input.NewPassword
	if err := h.Users.Update(ctx, target); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to change password"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}

// DeleteUser removes the account only. Reviews written by the account stay
// behind as orphans - the schema does not cascade.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	actor := currentActor(c)
	if d := policy.Evaluate(actor, policy.ActionDelete, policy.EntityUser, id); d != policy.Allow {
		deny(c, d)
		return
	}

	ctx := c.Request.Context()
	target, err := h.Users.ByID(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	if target.UserID == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := h.Users.Delete(ctx, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
