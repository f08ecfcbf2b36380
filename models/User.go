package models

// User mirrors one row of the Users table as returned by the user stored
// procedures (VIEW_USER_BY_ID, VIEW_USER_BY_USERNAME, VIEW_ALL_USERS).
type User struct {
	UserID    int    `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	Password  string `json:"password,omitempty"`
	Email     string `json:"email"`
	RoleID    int    `json:"roleId"`
}

// UserDetails is the presentation shape for a profile page: the base record
// plus denormalized display fields.
type UserDetails struct {
	User
	RoleName         string `json:"roleName"`
	FavoriteCategory string `json:"favoriteCategory"`
}

// LoginInput - used to validate the login form
type LoginInput struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
	Password string `json:"password" validate:"required,min=4,max=20"`
}

// RegisterInput - used to validate registration
type RegisterInput struct {
	FirstName string `json:"firstName" validate:"required,max=35"`
	LastName  string `json:"lastName" validate:"required,max=35"`
	Username  string `json:"username" validate:"required,min=3,max=20"`
	Password  string `json:"password" validate:"required,min=4,max=20"`
	Email     string `json:"email" validate:"required,email,max=50"`
}

// UpdateUserInput - used to validate profile updates
type UpdateUserInput struct {
	FirstName string `json:"firstName" validate:"required,max=35"`
	LastName  string `json:"lastName" validate:"required,max=35"`
	Username  string `json:"username" validate:"required,min=3,max=20"`
	Email     string `json:"email" validate:"required,email,max=50"`
	RoleID    int    `json:"roleId" validate:"omitempty,oneof=1 4 6"`
}

// ChangePasswordInput carries the current password for verification and the
// replacement twice.
type ChangePasswordInput struct {
	Password           string `json:"password" validate:"required,min=4,max=20"`
	NewPassword        string `json:"newPassword" validate:"required,min=4,max=20"`
	ConfirmNewPassword string `json:"confirmNewPassword" validate:"required,eqfield=NewPassword"`
}
