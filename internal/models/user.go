package models

import "time"

type Role string

const (
	RoleGovernment      Role = "GOVERNMENT"
	RoleNGO             Role = "NGO"
	RoleDistrictOfficer Role = "DISTRICT_OFFICER"
)

type User struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Session - текущая личность, удерживаемая кэшем после входа
type Session struct {
	User            User      `json:"user"`
	AuthenticatedAt time.Time `json:"authenticated_at"`
}
