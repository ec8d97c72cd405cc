package model

import "time"

// Role is the ordered editorial role hierarchy. Comparisons must go
// through Level/AtLeast, never through string comparison.
type Role string

const (
	RoleContributor  Role = "contributor"
	RoleAuthor       Role = "author"
	RoleSeniorWriter Role = "senior_writer"
	RoleEditor       Role = "editor"
	RoleAdmin        Role = "admin"
	RoleSuperAdmin   Role = "super_admin"
)

var roleLevels = map[Role]int{
	RoleContributor:  1,
	RoleAuthor:       2,
	RoleSeniorWriter: 3,
	RoleEditor:       4,
	RoleAdmin:        5,
	RoleSuperAdmin:   6,
}

// Level returns the role's position in the hierarchy. Unknown roles
// rank below contributor so a corrupt value never grants access.
func (r Role) Level() int {
	return roleLevels[r]
}

func (r Role) AtLeast(min Role) bool {
	return r.Level() >= min.Level()
}

// IsEditorial reports whether the role may claim, review, and publish
// other people's content.
func (r Role) IsEditorial() bool {
	return r.AtLeast(RoleEditor)
}

func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Role      Role      `json:"role"`
	WorkOSID  *string   `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Session struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// Actor is the authenticated identity attached to every workflow
// operation, resolved from the session by the auth middleware.
type Actor struct {
	ID    int64
	Name  string
	Email string
	Role  Role
}
