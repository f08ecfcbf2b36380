package dal

import (
	"context"

	"gamegroove/models"
)

const roleComponent = "RoleGateway"

var viewRoleByID = operation{"VIEW_ROLE_BY_ID", []string{"RoleID"}}

// RoleGateway reads the Roles reference table. Roles are a closed set, so
// lookup by ID is the only operation.
type RoleGateway struct {
	store *Store
}

func NewRoleGateway(store *Store) *RoleGateway {
	return &RoleGateway{store: store}
}

// ByID returns one role; a missing ID yields a zero-value Role.
func (g *RoleGateway) ByID(ctx context.Context, roleID int) (models.Role, error) {
	row, err := g.store.queryRow(ctx, roleComponent, viewRoleByID, map[string]interface{}{
		"RoleID": roleID,
	})
	if err != nil {
		return models.Role{}, err
	}
	return mapRole(row), nil
}
