package model

import "time"

// Attempt is one run of a user through a quiz. Invariant: SubmittedAt
// is nil iff Active is true; Score is authoritative only after submit.
type Attempt struct {
	ID          uint            `gorm:"primarykey" json:"id"`
	UserID      uint            `json:"user_id" gorm:"not null;index"`
	QuizID      uint            `json:"quiz_id" gorm:"not null;index"`
	Score       float64         `json:"score" gorm:"not null;default:0"`
	StartedAt   time.Time       `json:"started_at" gorm:"not null"`
	SubmittedAt *time.Time      `json:"submitted_at,omitempty"`
	Active      bool            `json:"active" gorm:"not null;default:true"`
	User        User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Quiz        Quiz            `json:"quiz,omitempty" gorm:"foreignKey:QuizID"`
	Answers     []AttemptAnswer `json:"answers,omitempty" gorm:"foreignKey:AttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
