package dal

import (
	"context"

	"gamegroove/models"
)

const userComponent = "UserGateway"

var (
	createUser         = operation{"CREATE_USER", []string{"FirstName", "LastName", "Username", "Password", "Email", "RoleID"}}
	viewUserByUsername = operation{"VIEW_USER_BY_USERNAME", []string{"Username"}}
	viewUserByID       = operation{"VIEW_USER_BY_ID", []string{"UserID"}}
	viewAllUsers       = operation{"VIEW_ALL_USERS", nil}
	updateUser         = operation{"UPDATE_USER", []string{"UserID", "FirstName", "LastName", "Username", "Password", "Email", "RoleID"}}
	deleteUser         = operation{"DELETE_USER", []string{"UserID"}}
)

// UserGateway runs the stored procedures for the Users table.
type UserGateway struct {
	store *Store
}

func NewUserGateway(store *Store) *UserGateway {
	return &UserGateway{store: store}
}

// Create registers a new account. The returned boolean is true iff exactly
// one row was affected; zero rows is the only signal for a duplicate
// username or email, since the schema enforces uniqueness and there is no
// pre-check here.
func (g *UserGateway) Create(ctx context.Context, user models.User) (bool, error) {
	rows, err := g.store.exec(ctx, userComponent, createUser, map[string]interface{}{
		"FirstName": user.FirstName,
		"LastName":  user.LastName,
		"Username":  user.Username,
		"Password":  user.Password,
		"Email":     user.Email,
		"RoleID":    user.RoleID,
	})
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}

// ByUsername looks an account up for login. A username with no record
// yields a zero-value User.
func (g *UserGateway) ByUsername(ctx context.Context, username string) (models.User, error) {
	row, err := g.store.queryRow(ctx, userComponent, viewUserByUsername, map[string]interface{}{
		"Username": username,
	})
	if err != nil {
		return models.User{}, err
	}
	return mapUser(row), nil
}

// ByID returns one account; a missing ID yields a zero-value User
// (UserID == 0), not an error.
func (g *UserGateway) ByID(ctx context.Context, userID int) (models.User, error) {
	row, err := g.store.queryRow(ctx, userComponent, viewUserByID, map[string]interface{}{
		"UserID": userID,
	})
	if err != nil {
		return models.User{}, err
	}
	return mapUser(row), nil
}

// All lists every account.
func (g *UserGateway) All(ctx context.Context) ([]models.User, error) {
	rows, err := g.store.queryRows(ctx, userComponent, viewAllUsers, nil)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUser(row))
	}
	return users, nil
}

// Update rewrites every column of the target account.
func (g *UserGateway) Update(ctx context.Context, user models.User) error {
	_, err := g.store.exec(ctx, userComponent, updateUser, map[string]interface{}{
		"UserID":    user.UserID,
		"FirstName": user.FirstName,
		"LastName":  user.LastName,
		"Username":  user.Username,
		"Password":  user.Password,
		"Email":     user.Email,
		"RoleID":    user.RoleID,
	})
	return err
}

// Delete removes the account. Reviews written by the account are left in
// place - the schema does not cascade.
func (g *UserGateway) Delete(ctx context.Context, userID int) error {
	_, err := g.store.exec(ctx, userComponent, deleteUser, map[string]interface{}{
		"UserID": userID,
	})
	return err
}
