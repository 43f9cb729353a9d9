package model

import "time"

// NoteMaxLen bounds the free-text note a user can attach to an answer.
const NoteMaxLen = 300

// AttemptAnswer holds at most one row per (attempt, question). Created
// lazily on first autosave, or at submit time if the question was never
// touched. IsCorrect and MarksEarned are computed only at submit.
type AttemptAnswer struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	AttemptID      uint      `json:"attempt_id" gorm:"not null;uniqueIndex:idx_answer_attempt_question"`
	QuestionID     uint      `json:"question_id" gorm:"not null;uniqueIndex:idx_answer_attempt_question"`
	SelectedOption *string   `json:"selected_option,omitempty" gorm:"size:1"`
	IsCorrect      bool      `json:"is_correct" gorm:"not null;default:false"`
	MarksEarned    float64   `json:"marks_earned" gorm:"not null;default:0"`
	Flagged        bool      `json:"flagged" gorm:"not null;default:false"`
	Note           string    `json:"note" gorm:"size:300;not null;default:''"`
	Question       Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
