package dto

import "time"

// QuestionCreateDTO is used standalone and within QuizCreateDTO.
// Subject and Chapter are free-form names resolved (and created if
// missing) at persist time; a chapter requires a subject.
type QuestionCreateDTO struct {
	Text          string `json:"text" binding:"required"`
	OptionA       string `json:"option_a" binding:"required"`
	OptionB       string `json:"option_b" binding:"required"`
	OptionC       string `json:"option_c" binding:"required"`
	OptionD       string `json:"option_d" binding:"required"`
	CorrectOption string `json:"correct_option" binding:"required"`
	Subject       string `json:"subject"`
	Chapter       string `json:"chapter"`
	Difficulty    string `json:"difficulty"`
	QType         string `json:"qtype"`
}

// QuizCreateDTO is for admin to create or update a quiz.
type QuizCreateDTO struct {
	Title            string              `json:"title" binding:"required"`
	DurationMinutes  int                 `json:"duration_minutes" binding:"required,min=1"`
	MarksPerQuestion float64             `json:"marks_per_question" binding:"min=0"`
	NegativeMarking  float64             `json:"negative_marking" binding:"min=0"`
	StartTime        *time.Time          `json:"start_time"`
	EndTime          *time.Time          `json:"end_time"`
	Questions        []QuestionCreateDTO `json:"questions" binding:"omitempty,dive"`
}

// AssignmentUpsertDTO creates or updates the single assignment row for
// (user, quiz).
type AssignmentUpsertDTO struct {
	UserID        uint `json:"user_id" binding:"required"`
	QuizID        uint `json:"quiz_id" binding:"required"`
	AttemptsLimit int  `json:"attempts_limit" binding:"required,min=1"`
	CooldownDays  int  `json:"cooldown_days" binding:"min=0"`
}

// UserCreateDTO is for admin account creation.
type UserCreateDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=admin teacher moderator user"`
}

// QuestionImportRowDTO is one already-parsed row of a bulk import.
// File parsing (CSV/XLSX/PDF) happens outside the core; rows arrive
// here pre-extracted.
type QuestionImportRowDTO struct {
	Text          string `json:"text" binding:"required"`
	OptionA       string `json:"option_a" binding:"required"`
	OptionB       string `json:"option_b" binding:"required"`
	OptionC       string `json:"option_c" binding:"required"`
	OptionD       string `json:"option_d" binding:"required"`
	CorrectOption string `json:"correct_option" binding:"required"`
	Subject       string `json:"subject"`
	Chapter       string `json:"chapter"`
	Difficulty    string `json:"difficulty"`
	QType         string `json:"qtype"`
}

// ImportRequestDTO carries the parsed rows for one quiz.
type ImportRequestDTO struct {
	Rows []QuestionImportRowDTO `json:"rows" binding:"required,min=1,dive"`
}

// ImportResultDTO summarizes a bulk import.
type ImportResultDTO struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

// QuestionFilterDTO narrows the admin question bank listing. This is
// the read contract blueprint generation consumes as well.
type QuestionFilterDTO struct {
	Subject    string `form:"subject"`
	Chapter    string `form:"chapter"`
	Difficulty string `form:"difficulty"`
	QType      string `form:"qtype"`
}
