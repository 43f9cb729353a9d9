package model

import "time"

// Assignment authorizes a user to attempt a quiz. At most one row per
// (user, quiz); re-assigning updates limit and cooldown in place.
type Assignment struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	UserID        uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_assignment_user_quiz"`
	QuizID        uint      `json:"quiz_id" gorm:"not null;uniqueIndex:idx_assignment_user_quiz"`
	AttemptsLimit int       `json:"attempts_limit" gorm:"not null;default:1"`
	CooldownDays  int       `json:"cooldown_days" gorm:"not null;default:0"`
	User          User      `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Quiz          Quiz      `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
