package model

import "time"

type Quiz struct {
	ID               uint       `gorm:"primarykey" json:"id"`
	Title            string     `json:"title" gorm:"size:200;not null"`
	DurationMinutes  int        `json:"duration_minutes" gorm:"not null;default:10"`
	NegativeMarking  float64    `json:"negative_marking" gorm:"not null;default:0"`
	MarksPerQuestion float64    `json:"marks_per_question" gorm:"not null;default:1"`
	StartTime        *time.Time `json:"start_time,omitempty"`
	EndTime          *time.Time `json:"end_time,omitempty"`
	Questions        []Question `json:"questions,omitempty" gorm:"foreignKey:QuizID"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// Deadline is advisory only; submissions after it are still accepted.
func (q *Quiz) Deadline(startedAt time.Time) time.Time {
	return startedAt.Add(time.Duration(q.DurationMinutes) * time.Minute)
}
