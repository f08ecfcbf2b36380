package handlers

import (
	"net/http"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"gamegroove/policy"
)

func requestRoutes(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(h.SessionMiddleware())
	r.POST("/requests", h.CreateRequest)
	r.GET("/requests", h.GetRequests)
	r.GET("/requests/:id", h.GetRequestByID)
	r.DELETE("/requests/:id", h.DeleteRequest)
	return r
}

// The request stores the submitter's username as it is right now; later
// renames do not follow.
func TestCreateRequestSnapshotsUsername(t *testing.T) {
	h, mock, _ := newTestHandler(t)
	r := requestRoutes(h)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM VIEW_USER_BY_ID($1)")).
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows([]string{"UserID", "Username"}).AddRow(int64(10), "grace"))
	mock.ExpectExec(regexp.QuoteMeta("CALL CREATE_REQUEST($1, $2, $3)")).
		WithArgs("please add silksong", "grace", time.Now().Format("2006-01-02")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := doJSON(r, http.MethodPost, "/requests", bearerFor(t, h, 10, policy.RoleUser), map[string]interface{}{
		"requestText": "please add silksong",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRequestsNonAdminForbidden(t *testing.T) {
	h, mock, _ := newTestHandler(t)
	r := requestRoutes(h)

	w := doJSON(r, http.MethodGet, "/requests", bearerFor(t, h, 20, policy.RoleMod), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRequestsAnonymousRedirects(t *testing.T) {
	h, mock, _ := newTestHandler(t)
	r := requestRoutes(h)

	w := doJSON(r, http.MethodGet, "/requests", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/login"`)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRequestAdminOnly(t *testing.T) {
	h, mock, _ := newTestHandler(t)
	r := requestRoutes(h)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM VIEW_REQUEST_BY_ID($1)")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"RequestID", "RequestText", "Username", "Date"}).
			AddRow(int64(5), "please add silksong", "grace", "2024-06-01"))
	mock.ExpectExec(regexp.QuoteMeta("CALL DELETE_REQUEST($1)")).
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := doJSON(r, http.MethodDelete, "/requests/5", bearerFor(t, h, 99, policy.RoleAdmin), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteRequestMissingIs404(t *testing.T) {
	h, mock, _ := newTestHandler(t)
	r := requestRoutes(h)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM VIEW_REQUEST_BY_ID($1)")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"RequestID"}))

	w := doJSON(r, http.MethodDelete, "/requests/5", bearerFor(t, h, 99, policy.RoleAdmin), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
