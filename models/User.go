package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole grants platform-wide permissions.
type UserRole string

const (
	UserRoleAdmin  UserRole = "ADMIN"
	UserRoleMentor UserRole = "MENTOR"
	UserRoleMember UserRole = "MEMBER"
)

// User represents a person taking part in coaching sessions.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email" validate:"required,email"`
	Name      *string   `json:"name,omitempty" validate:"omitempty,notblank"`
	Role      UserRole  `gorm:"type:varchar(16);not null" json:"role" validate:"required,oneof=ADMIN MENTOR MEMBER"`
	AvatarURL *string   `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BeforeCreate assigns the primary key and the default role.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.Role == "" {
		u.Role = UserRoleMember
	}
	return nil
}
