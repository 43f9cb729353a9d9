package model

import "time"

type Question struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	QuizID        uint      `json:"quiz_id" gorm:"not null;index"`
	SubjectID     *uint     `json:"subject_id,omitempty" gorm:"index"`
	ChapterID     *uint     `json:"chapter_id,omitempty" gorm:"index"`
	Text          string    `json:"text" gorm:"type:text;not null"`
	OptionA       string    `json:"option_a" gorm:"type:text;not null"`
	OptionB       string    `json:"option_b" gorm:"type:text;not null"`
	OptionC       string    `json:"option_c" gorm:"type:text;not null"`
	OptionD       string    `json:"option_d" gorm:"type:text;not null"`
	CorrectOption string    `json:"correct_option" gorm:"size:1;not null"`
	Difficulty    string    `json:"difficulty" gorm:"size:10;not null;default:'Medium'"`
	QType         string    `json:"qtype" gorm:"size:20;not null;default:'Concept'"`
	Subject       *Subject  `json:"subject,omitempty" gorm:"foreignKey:SubjectID"`
	Chapter       *Chapter  `json:"chapter,omitempty" gorm:"foreignKey:ChapterID"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SubjectName returns the tag used for review grouping; untagged
// questions fall under "General".
func (q *Question) SubjectName() string {
	if q.Subject != nil && q.Subject.Name != "" {
		return q.Subject.Name
	}
	return "General"
}

// ChapterName defaults to "-" when the question has no chapter tag.
func (q *Question) ChapterName() string {
	if q.Chapter != nil && q.Chapter.Name != "" {
		return q.Chapter.Name
	}
	return "-"
}
