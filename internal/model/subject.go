package model

import "time"

type Subject struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Name      string    `json:"name" gorm:"size:120;not null;uniqueIndex"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Chapter always belongs to a subject; (subject_id, name) is unique so
// concurrent imports creating the same chapter collide on the index
// instead of duplicating rows.
type Chapter struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	SubjectID uint      `json:"subject_id" gorm:"not null;uniqueIndex:idx_chapter_subject_name"`
	Name      string    `json:"name" gorm:"size:120;not null;uniqueIndex:idx_chapter_subject_name"`
	Subject   Subject   `json:"subject,omitempty" gorm:"foreignKey:SubjectID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
