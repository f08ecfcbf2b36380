package models

// Role is a closed reference set; there is no create/update/delete path.
type Role struct {
	RoleID   int    `json:"roleId"`
	RoleName string `json:"roleName"`
}
