package model

import (
	"strings"
	"time"
)

const (
	RoleAdmin     = "admin"
	RoleTeacher   = "teacher"
	RoleModerator = "moderator"
	RoleUser      = "user"
)

type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Username     string    `json:"username" gorm:"size:80;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"size:200;not null"`
	Role         string    `json:"role" gorm:"size:20;not null;default:'user'"`
	Coins        int       `json:"coins" gorm:"not null;default:0"`
	Badges       string    `json:"badges" gorm:"size:200;not null;default:''"`
	Streak       int       `json:"streak" gorm:"not null;default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsPrivileged reports whether the role bypasses assignment policy checks.
func (u *User) IsPrivileged() bool {
	return u.Role == RoleAdmin || u.Role == RoleTeacher
}

// HasBadge checks the comma-separated badge set.
func (u *User) HasBadge(name string) bool {
	for _, b := range strings.Split(u.Badges, ",") {
		if strings.TrimSpace(b) == name {
			return true
		}
	}
	return false
}

// AddBadge appends name to the badge set, deduplicated.
func (u *User) AddBadge(name string) {
	if u.HasBadge(name) {
		return
	}
	if u.Badges == "" {
		u.Badges = name
		return
	}
	u.Badges = u.Badges + "," + name
}
