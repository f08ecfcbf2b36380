package dal

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"gamegroove/models"
	"gamegroove/utils"
)

func newTestStore(t *testing.T) (*Store, sqlmock.Sqlmock, *logtest.Hook) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)

	nullLogger, hook := logtest.NewNullLogger()
	return NewStore(gdb, &utils.Logger{Logger: nullLogger}, time.Second), mock, hook
}

func TestUserCreateReportsOneAffectedRow(t *testing.T) {
	store, mock, _ := newTestStore(t)
	gateway := NewUserGateway(store)

	mock.ExpectExec(regexp.QuoteMeta("CALL CREATE_USER($1, $2, $3, $4, $5, $6)")).
		WithArgs("Ada", "Lovelace", "ada", "1234", "ada@example.com", 1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := gateway.Create(context.Background(), models.User{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Password:  "1234",
		Email:     "ada@example.com",
		RoleID:    1,
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Zero affected rows is not an error: it is the only duplicate signal the
// schema gives us.
func TestUserCreateDuplicateIsNotAnError(t *testing.T) {
	store, mock, hook := newTestStore(t)
	gateway := NewUserGateway(store)

	mock.ExpectExec(regexp.QuoteMeta("CALL CREATE_USER($1, $2, $3, $4, $5, $6)")).
		WithArgs("Ada", "Lovelace", "ada", "1234", "ada@example.com", 1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	created, err := gateway.Create(context.Background(), models.User{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Password:  "1234",
		Email:     "ada@example.com",
		RoleID:    1,
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, hook.Entries)
}

// Store failures are logged with their component and operation, then
// returned to the caller unchanged.
func TestStoreErrorIsLoggedAndReRaised(t *testing.T) {
	store, mock, hook := newTestStore(t)
	gateway := NewUserGateway(store)

	boom := errors.New("connection reset")
	mock.ExpectExec(regexp.QuoteMeta("CALL DELETE_USER($1)")).
		WithArgs(7).
		WillReturnError(boom)

	err := gateway.Delete(context.Background(), 7)
	require.ErrorIs(t, err, boom)

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "UserGateway", entry.Data["component"])
	assert.Equal(t, "DELETE_USER", entry.Data["operation"])
	assert.Equal(t, boom.Error(), entry.Message)
}

func TestUserByIDMissingYieldsZeroRecord(t *testing.T) {
	store, mock, _ := newTestStore(t)
	gateway := NewUserGateway(store)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM VIEW_USER_BY_ID($1)")).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows([]string{"UserID", "FirstName", "LastName", "Username", "Password", "Email", "RoleID"}))

	user, err := gateway.ByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, models.User{}, user)
}

func TestUserByUsernameMapsRow(t *testing.T) {
	store, mock, _ := newTestStore(t)
	gateway := NewUserGateway(store)

	rows := sqlmock.NewRows([]string{"UserID", "FirstName", "LastName", "Username", "Password", "Email", "RoleID"}).
		AddRow(int64(3), "Ada", "Lovelace", "ada", "1234", "ada@example.com", int64(6))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM VIEW_USER_BY_USERNAME($1)")).
		WithArgs("ada").
		WillReturnRows(rows)

	user, err := gateway.ByUsername(context.Background(), "ada")
	require.NoError(t, err)
	assert.Equal(t, 3, user.UserID)
	assert.Equal(t, "1234", user.Password)
	assert.Equal(t, 6, user.RoleID)
}

func TestUserUpdateSendsEveryColumn(t *testing.T) {
	store, mock, _ := newTestStore(t)
	gateway := NewUserGateway(store)

	mock.ExpectExec(regexp.QuoteMeta("CALL UPDATE_USER($1, $2, $3, $4, $5, $6, $7)")).
		WithArgs(3, "Ada", "Lovelace", "ada", "1234", "ada@example.com", 4).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := gateway.Update(context.Background(), models.User{
		UserID:    3,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Username:  "ada",
		Password:  "1234",
		Email:     "ada@example.com",
		RoleID:    4,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Deleting an account never touches its reviews: the listing still returns
// rows whose author id no longer resolves.
func TestReviewsSurviveAuthorDeletion(t *testing.T) {
	store, mock, _ := newTestStore(t)
	users := NewUserGateway(store)
	reviews := NewReviewGateway(store)

	mock.ExpectExec(regexp.QuoteMeta("CALL DELETE_USER($1)")).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM VIEW_ALL_REVIEWS()")).
		WillReturnRows(sqlmock.NewRows([]string{"ReviewID", "ReviewText", "DatePosted", "Category", "UserID", "GameID"}).
			AddRow(int64(11), "orphaned but still here", "2024-05-01", "RPG", int64(3), int64(7)))

	require.NoError(t, users.Delete(context.Background(), 3))

	listed, err := reviews.All(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 3, listed[0].UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewUpdateOmitsOwnershipColumns(t *testing.T) {
	store, mock, _ := newTestStore(t)
	gateway := NewReviewGateway(store)

	mock.ExpectExec(regexp.QuoteMeta("CALL UPDATE_REVIEW($1, $2, $3, $4)")).
		WithArgs(11, "revised text", "2024-05-02", "Action").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := gateway.Update(context.Background(), models.Review{
		ReviewID:   11,
		ReviewText: "revised text",
		DatePosted: "2024-05-02",
		Category:   "Action",
		UserID:     999, // must never reach the statement
		GameID:     999,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTopCategoryEmptyTableYieldsZeroRecord(t *testing.T) {
	store, mock, _ := newTestStore(t)
	gateway := NewReviewGateway(store)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM CALCULATE_TOP_CATEGORY()")).
		WillReturnRows(sqlmock.NewRows([]string{"Category"}))

	review, err := gateway.TopCategory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.Review{}, review)
}

func TestGameByIDMapsRow(t *testing.T) {
	store, mock, _ := newTestStore(t)
	gateway := NewGameGateway(store)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM VIEW_GAME_BY_ID($1)")).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"GameID", "Title", "ReleaseDate", "Developer", "Platform"}).
			AddRow(int64(7), "Hollow Knight", "2017-02-24", "Team Cherry", "PC"))

	game, err := gateway.ByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Hollow Knight", game.Title)
	assert.Equal(t, 7, game.GameID)
}
