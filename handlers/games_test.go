package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamegroove/models"
	"gamegroove/policy"
)

func gameRoutes(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(h.SessionMiddleware())
	r.GET("/games", h.GetGames)
	r.GET("/games/:id", h.GetGameByID)
	r.POST("/games", h.CreateGame)
	r.PUT("/games/:id", h.UpdateGame)
	r.DELETE("/games/:id", h.DeleteGame)
	return r
}

func TestGetGamesIsPublic(t *testing.T) {
	h, mock, _ := newTestHandler(t)
	r := gameRoutes(h)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM VIEW_ALL_GAMES()")).
		WillReturnRows(sqlmock.NewRows([]string{"GameID", "Title", "ReleaseDate", "Developer", "Platform"}).
			AddRow(int64(7), "Celeste", "2018-01-25", "EXOK", "PC"))

	w := doJSON(r, http.MethodGet, "/games", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var games []models.Game
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &games))
	require.Len(t, games, 1)
	assert.Equal(t, "Celeste", games[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGameModForbidden(t *testing.T) {
	h, mock, _ := newTestHandler(t)
	r := gameRoutes(h)

	w := doJSON(r, http.MethodPost, "/games", bearerFor(t, h, 30, policy.RoleMod), models.GameInput{
		Title:       "Celeste",
		ReleaseDate: "2018-01-25",
		Developer:   "EXOK",
		Platform:    "PC",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateGameAdminAllowed(t *testing.T) {
	h, mock, _ := newTestHandler(t)
	r := gameRoutes(h)

	mock.ExpectExec(regexp.QuoteMeta("CALL CREATE_GAME($1, $2, $3, $4)")).
		WithArgs("Celeste", "2018-01-25", "EXOK", "PC").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := doJSON(r, http.MethodPost, "/games", bearerFor(t, h, 99, policy.RoleAdmin), models.GameInput{
		Title:       "Celeste",
		ReleaseDate: "2018-01-25",
		Developer:   "EXOK",
		Platform:    "PC",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Mods curate the catalog's facts but cannot add or remove entries.
func TestUpdateGameModAllowed(t *testing.T) {
	h, mock, _ := newTestHandler(t)
	r := gameRoutes(h)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM VIEW_GAME_BY_ID($1)")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"GameID", "Title", "ReleaseDate", "Developer", "Platform"}).
			AddRow(int64(7), "Celeste", "2018-01-25", "EXOK", "PC"))
	mock.ExpectExec(regexp.QuoteMeta("CALL UPDATE_GAME($1, $2, $3, $4, $5)")).
		WithArgs(7, "Celeste", "2018-01-25", "Extremely OK Games", "PC").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := doJSON(r, http.MethodPut, "/games/7", bearerFor(t, h, 30, policy.RoleMod), models.GameInput{
		Title:       "Celeste",
		ReleaseDate: "2018-01-25",
		Developer:   "Extremely OK Games",
		Platform:    "PC",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteGameModForbidden(t *testing.T) {
	h, mock, _ := newTestHandler(t)
	r := gameRoutes(h)

	w := doJSON(r, http.MethodDelete, "/games/7", bearerFor(t, h, 30, policy.RoleMod), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGameByIDInvalidID(t *testing.T) {
	h, mock, _ := newTestHandler(t)
	r := gameRoutes(h)

	w := doJSON(r, http.MethodGet, "/games/abc", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetGameByIDMissingIs404(t *testing.T) {
	h, mock, _ := newTestHandler(t)
	r := gameRoutes(h)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM VIEW_GAME_BY_ID($1)")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"GameID"}))

	w := doJSON(r, http.MethodGet, "/games/7", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
