package models

import (
	"time"
)

type UserRole string

const (
	RoleFrontendDeveloper UserRole = "Frontend Developer"
	RoleBackendDeveloper  UserRole = "Backend Developer"
	RoleQAEngineer        UserRole = "QA Engineer"
	RoleDesigner          UserRole = "Designer"
	RoleManager           UserRole = "Manager"
	RoleHR                UserRole = "HR"
)

// IsValid reports whether the role is one of the fixed set.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleFrontendDeveloper, RoleBackendDeveloper, RoleQAEngineer,
		RoleDesigner, RoleManager, RoleHR:
		return true
	}
	return false
}

type User struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	FirstName   string    `json:"firstName" gorm:"not null"`
	LastName    string    `json:"lastName" gorm:"not null"`
	Nickname    string    `json:"nickname" gorm:"uniqueIndex;not null"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null"`
	Password    string    `json:"-" gorm:"not null"`
	Role        UserRole  `json:"role" gorm:"not null"`
	Description string    `json:"description"`
	Workplace   string    `json:"workplace"`
	Avatar      string    `json:"avatar"`
	Portfolio   []Project `json:"portfolio" gorm:"foreignKey:UserID"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Project is a portfolio entry owned by exactly one user. It has no
// lifecycle of its own: rows are only ever touched through the owning
// user's portfolio operations.
//
// PublicID is the identifier clients address projects by. Rows migrated
// from the old data set may have an empty PublicID ("legacy" projects);
// those serialize without an id and are only reachable through the
// title-based delete fallback until the backfill tool assigns them one.
type Project struct {
	ID           uint      `json:"-" gorm:"primarykey"`
	UserID       uint      `json:"-" gorm:"index;not null"`
	PublicID     string    `json:"id,omitempty" gorm:"index"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description"`
	Links        []string  `json:"links" gorm:"serializer:json"`
	PreviewImage string    `json:"previewImage"`
	Position     int       `json:"-" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// IsLegacy reports whether the project predates public identifiers.
func (p *Project) IsLegacy() bool {
	return p.PublicID == ""
}

// UserSummary is the flat listing shape: identity fields only.
type UserSummary struct {
	ID        uint     `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Nickname  string   `json:"nickname"`
	Role      UserRole `json:"role"`
	Avatar    string   `json:"avatar"`
}
