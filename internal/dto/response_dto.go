package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type TokenResponse struct {
	Token string          `json:"token"`
	User  UserResponseDTO `json:"user"`
}

// UserResponseDTO never carries the password hash.
type UserResponseDTO struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Coins     int       `json:"coins"`
	Badges    string    `json:"badges"`
	CreatedAt time.Time `json:"created_at"`
}

// QuizSummaryDTO lists a quiz with its question count and, when a
// caller identity is known, how many attempts that caller has made.
type QuizSummaryDTO struct {
	ID               uint       `json:"id"`
	Title            string     `json:"title"`
	DurationMinutes  int        `json:"duration_minutes"`
	MarksPerQuestion float64    `json:"marks_per_question"`
	NegativeMarking  float64    `json:"negative_marking"`
	StartTime        *time.Time `json:"start_time,omitempty"`
	EndTime          *time.Time `json:"end_time,omitempty"`
	QuestionCount    int        `json:"question_count"`
	MyAttempts       int        `json:"my_attempts"`
	CreatedAt        time.Time  `json:"created_at"`
}

// QuestionResponseDTO is the admin view and includes the correct option.
type QuestionResponseDTO struct {
	ID            uint   `json:"id"`
	QuizID        uint   `json:"quiz_id"`
	Text          string `json:"text"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	CorrectOption string `json:"correct_option"`
	Subject       string `json:"subject,omitempty"`
	Chapter       string `json:"chapter,omitempty"`
	Difficulty    string `json:"difficulty"`
	QType         string `json:"qtype"`
}

// QuizResponseDTO is the admin view of a quiz with its questions.
type QuizResponseDTO struct {
	ID               uint                  `json:"id"`
	Title            string                `json:"title"`
	DurationMinutes  int                   `json:"duration_minutes"`
	MarksPerQuestion float64               `json:"marks_per_question"`
	NegativeMarking  float64               `json:"negative_marking"`
	StartTime        *time.Time            `json:"start_time,omitempty"`
	EndTime          *time.Time            `json:"end_time,omitempty"`
	Questions        []QuestionResponseDTO `json:"questions,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
}

// TakerQuestionDTO is the question view handed to a quiz taker. The
// correct option is deliberately absent.
type TakerQuestionDTO struct {
	ID      uint   `json:"id"`
	Text    string `json:"text"`
	OptionA string `json:"option_a"`
	OptionB string `json:"option_b"`
	OptionC string `json:"option_c"`
	OptionD string `json:"option_d"`
}

// StartAttemptDTO is returned when an attempt starts: the shuffled
// question snapshot and the advisory deadline for the client timer.
type StartAttemptDTO struct {
	AttemptID uint               `json:"attempt_id"`
	QuizID    uint               `json:"quiz_id"`
	QuizTitle string             `json:"quiz_title"`
	Questions []TakerQuestionDTO `json:"questions"`
	StartedAt time.Time          `json:"started_at"`
	Deadline  time.Time          `json:"deadline"`
}

type SubmitResultDTO struct {
	AttemptID   uint      `json:"attempt_id"`
	Score       float64   `json:"score"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type AttemptSummaryDTO struct {
	ID          uint       `json:"id"`
	QuizID      uint       `json:"quiz_id"`
	QuizTitle   string     `json:"quiz_title,omitempty"`
	UserID      uint       `json:"user_id"`
	Score       float64    `json:"score"`
	StartedAt   time.Time  `json:"started_at"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
	Active      bool       `json:"active"`
}

// ScoreBreakdownDTO is one review bucket: totals for a subject or a
// (subject, chapter) pair. Wrong counts only answered-and-incorrect;
// skipped questions raise Total alone.
type ScoreBreakdownDTO struct {
	Subject string  `json:"subject"`
	Chapter string  `json:"chapter,omitempty"`
	Total   int     `json:"total"`
	Correct int     `json:"correct"`
	Wrong   int     `json:"wrong"`
	Marks   float64 `json:"marks"`
}

// ReviewItemDTO is the per-question review line.
type ReviewItemDTO struct {
	QuestionID     uint    `json:"question_id"`
	Text           string  `json:"text"`
	OptionA        string  `json:"option_a"`
	OptionB        string  `json:"option_b"`
	OptionC        string  `json:"option_c"`
	OptionD        string  `json:"option_d"`
	CorrectOption  string  `json:"correct_option"`
	SelectedOption *string `json:"selected_option,omitempty"`
	IsCorrect      bool    `json:"is_correct"`
	MarksEarned    float64 `json:"marks_earned"`
	Flagged        bool    `json:"flagged"`
	Note           string  `json:"note,omitempty"`
	Subject        string  `json:"subject"`
	Chapter        string  `json:"chapter"`
}

// ReviewDTO is the full post-submit review payload.
type ReviewDTO struct {
	AttemptID   uint                `json:"attempt_id"`
	QuizID      uint                `json:"quiz_id"`
	QuizTitle   string              `json:"quiz_title"`
	Score       float64             `json:"score"`
	SubmittedAt *time.Time          `json:"submitted_at,omitempty"`
	PerSubject  []ScoreBreakdownDTO `json:"per_subject"`
	PerChapter  []ScoreBreakdownDTO `json:"per_chapter"`
	Items       []ReviewItemDTO     `json:"items"`
}

// QuizResultRowDTO is one line of the admin results report for a quiz.
type QuizResultRowDTO struct {
	AttemptID   uint       `json:"attempt_id"`
	UserID      uint       `json:"user_id"`
	Username    string     `json:"username"`
	Score       float64    `json:"score"`
	StartedAt   time.Time  `json:"started_at"`
	SubmittedAt *time.Time `json:"submitted_at,omitempty"`
}
