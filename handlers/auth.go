package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"gamegroove/models"
	"gamegroove/monitoring"
	"gamegroove/policy"
	"gamegroove/utils"
)

// Claims carried by the session token.
type Claims struct {
	UserID int `json:"userId"`
	RoleID int `json:"roleId"`
	jwt.RegisteredClaims
}

// Login checks the submitted credentials against the stored account and
// issues a session token. The password comparison is plaintext - faithful to
// the existing accounts table, which stores passwords unhashed.
func (h *Handler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := utils.ValidateStruct(input); err != nil {
		utils.ValidationErrorResponse(c, err)
		return
	}

	user, err := h.Users.ByUsername(c.Request.Context(), input.Username)
	if err != nil {
		monitoring.AuthenticationAttempts.WithLabelValues("failure").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	if user.UserID == 0 || user.Password != input.Password {
		monitoring.AuthenticationAttempts.WithLabelValues("failure").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Username or Password is incorrect"})
		return
	}

	token, err := h.issueToken(user)
	if err != nil {
		monitoring.AuthenticationAttempts.WithLabelValues("failure").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	monitoring.AuthenticationAttempts.WithLabelValues("success").Inc()
	user.Password = ""
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

func (h *Handler) issueToken(user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.UserID,
		RoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.UserID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.jwtSecret)
}

func (h *Handler) parseActor(c *gin.Context) (policy.Actor, bool) {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return policy.Actor{}, false
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(strings.TrimPrefix(header, prefix), claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return h.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return policy.Actor{}, false
	}
	return policy.Actor{UserID: claims.UserID, RoleID: claims.RoleID}, true
}

// SessionMiddleware resolves the actor from the session token when one is
// present and lets anonymous requests through. Authorization itself happens
// in each handler, so every entry point runs the same policy table.
func (h *Handler) SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor, ok := h.parseActor(c); ok {
			c.Set("actor", actor)
		}
		c.Next()
	}
}
