package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gamegroove/dal"
	"gamegroove/policy"
	"gamegroove/utils"
)

// Handler carries the gateways and shared collaborators behind every route.
// Gateways are stateless and safe to share across concurrent requests.
type Handler struct {
	Users    *dal.UserGateway
	Games    *dal.GameGateway
	Reviews  *dal.ReviewGateway
	Requests *dal.RequestGateway
	Roles    *dal.RoleGateway
	Log      *utils.Logger

	jwtSecret []byte
}

func New(store *dal.Store, log *utils.Logger, jwtSecret []byte) *Handler {
	return &Handler{
		Users:     dal.NewUserGateway(store),
		Games:     dal.NewGameGateway(store),
		Reviews:   dal.NewReviewGateway(store),
		Requests:  dal.NewRequestGateway(store),
		Roles:     dal.NewRoleGateway(store),
		Log:       log,
		jwtSecret: jwtSecret,
	}
}

// deny renders an authorization denial. Anonymous actors are pointed at the
// login page; signed-in actors without the required role or ownership get a
// plain 403. The two outcomes stay distinguishable everywhere.
func deny(c *gin.Context, d policy.Decision) {
	if d == policy.DenyLogin {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required", "redirect": "/login"})
		return
	}
	c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
}

// currentActor reads the actor placed in the context by SessionMiddleware.
// Requests without a valid session token carry the anonymous actor.
func currentActor(c *gin.Context) policy.Actor {
	if v, ok := c.Get("actor"); ok {
		if actor, ok := v.(policy.Actor); ok {
			return actor
		}
	}
	return policy.Actor{}
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
