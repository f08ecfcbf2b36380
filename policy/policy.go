// Package policy decides, per actor and per action, whether an operation may
// proceed. Evaluation is pure and side-effect-free; every entry point that
// guards an entity runs the same table.
package policy

// Role IDs from the Roles reference table.
const (
	RoleUser  = 1
	RoleMod   = 4
	RoleAdmin = 6
)

// Actor identifies the current request. The zero Actor is anonymous.
type Actor struct {
	UserID int
	RoleID int
}

// Authenticated reports whether anyone is signed in at all.
func (a Actor) Authenticated() bool {
	return a.RoleID != 0
}

func (a Actor) IsAdmin() bool {
	return a.RoleID == RoleAdmin
}

func (a Actor) IsMod() bool {
	return a.RoleID == RoleMod
}

// Action describes the kind of operation an actor wants to perform.
type Action string

const (
	ActionCreate         Action = "create"
	ActionReadOne        Action = "read"
	ActionReadAll        Action = "list"
	ActionUpdate         Action = "update"
	ActionDelete         Action = "delete"
	ActionChangePassword Action = "changePassword"
)

// Entity names a protected resource type.
type Entity string

const (
	EntityUser    Entity = "user"
	EntityGame    Entity = "game"
	EntityReview  Entity = "review"
	EntityRequest Entity = "request"
)

// Decision is the outcome of an authorization check.
type Decision int

const (
	Allow Decision = iota
	// DenyLogin means nobody is signed in; the caller redirects to
	// authentication.
	DenyLogin
	// DenyForbidden means the signed-in actor lacks the required role or
	// ownership.
	DenyForbidden
)

// Evaluate applies the authorization table. ownerID is the owning user ID of
// the target record and only matters for ownership-scoped rules; pass 0 when
// the rule is purely role-based. The identity check runs strictly before any
// role or ownership rule, except for reads that are open to everyone.
func Evaluate(actor Actor, action Action, entity Entity, ownerID int) Decision {
	if isPublic(entity, action) {
		return Allow
	}
	if !actor.Authenticated() {
		return DenyLogin
	}
	if allowed(actor, action, entity, ownerID) {
		return Allow
	}
	return DenyForbidden
}

// isPublic lists the reads that require no actor at all.
func isPublic(entity Entity, action Action) bool {
	switch entity {
	case EntityGame, EntityReview:
		return action == ActionReadOne || action == ActionReadAll
	}
	return false
}

func allowed(actor Actor, action Action, entity Entity, ownerID int) bool {
	switch entity {
	case EntityUser:
		switch action {
		case ActionReadAll, ActionDelete:
			return actor.IsAdmin()
		case ActionReadOne, ActionUpdate, ActionChangePassword:
			return actor.IsAdmin() || actor.UserID == ownerID
		}
	case EntityGame:
		switch action {
		case ActionCreate, ActionDelete:
			return actor.IsAdmin()
		case ActionUpdate:
			return actor.IsAdmin() || actor.IsMod()
		}
	case EntityReview:
		switch action {
		case ActionCreate:
			return true
		case ActionUpdate:
			return actor.IsAdmin() || actor.IsMod() || actor.UserID == ownerID
		case ActionDelete:
			return actor.IsAdmin() || actor.UserID == ownerID
		}
	case EntityRequest:
		switch action {
		case ActionCreate:
			return true
		case ActionReadAll, ActionReadOne, ActionDelete:
			return actor.IsAdmin()
		}
	}
	return false
}
