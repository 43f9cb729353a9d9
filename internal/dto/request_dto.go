package dto

// LoginRequest exchanges credentials for a JWT.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AutosaveRequest upserts one answer of an in-progress attempt.
// SelectedOption is optional: an empty string never clears a previous
// selection (last non-empty write wins). Flagged always overwrites.
type AutosaveRequest struct {
	QuestionID     uint   `json:"question_id" binding:"required"`
	SelectedOption string `json:"selected_option"`
	Flagged        bool   `json:"flagged"`
	Note           string `json:"note"`
}

// SubmitRequest finalizes an attempt. LateAnswers maps question ID to a
// selection for questions that never went through autosave.
type SubmitRequest struct {
	LateAnswers map[uint]string `json:"late_answers"`
}
