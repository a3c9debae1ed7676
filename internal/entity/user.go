package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPERADMIN"
)

// AdminRoles may access /api/admin routes.
var AdminRoles = []Role{RoleAdmin, RoleSuperAdmin}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// HasRole reports whether role is one of required.
func HasRole(role Role, required ...Role) bool {
	for _, r := range required {
		if role == r {
			return true
		}
	}
	return false
}

type User struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Username         string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email            string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash     string     `gorm:"size:255;not null" json:"-"`
	Role             Role       `gorm:"size:20;not null;default:USER;index" json:"role"`
	AssignedWallet   *string    `gorm:"size:42;uniqueIndex" json:"assignedWallet"`
	WalletAssignedAt *time.Time `json:"walletAssignedAt"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID, err = uuid.NewV7()
	}
	if u.Role == "" {
		u.Role = RoleUser
	}
	return
}
