package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Margay/internal/apperr"
	"github.com/lshigami/Margay/internal/dto"
	"github.com/lshigami/Margay/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminQuizController struct {
	quizService     service.AdminQuizService
	questionService service.QuestionService
	importService   service.ImportService
}

func NewAdminQuizController(
	quizService service.AdminQuizService,
	questionService service.QuestionService,
	importService service.ImportService,
) *AdminQuizController {
	return &AdminQuizController{
		quizService:     quizService,
		questionService: questionService,
		importService:   importService,
	}
}

// CreateQuiz godoc
// @Summary (Admin) Create a new quiz
// @Description Create a quiz, optionally with its initial question set.
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param quiz_data body dto.QuizCreateDTO true "Quiz payload"
// @Success 201 {object} dto.QuizResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/quizzes [post]
func (c *AdminQuizController) CreateQuiz(ctx *gin.Context) {
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuiz: failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.quizService.CreateQuiz(req)
	if err != nil {
		log.Error().Err(err).Msg("Admin CreateQuiz: service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateQuiz godoc
// @Summary (Admin) Update quiz metadata
// @Tags Admin - Quizzes
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param quiz_data body dto.QuizCreateDTO true "Quiz payload"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/quizzes/{quiz_id} [put]
func (c *AdminQuizController) UpdateQuiz(ctx *gin.Context) {
	quizID, ok := parseID(ctx, "quiz_id")
	if !ok {
		return
	}
	var req dto.QuizCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.quizService.UpdateQuiz(quizID, req)
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQuiz godoc
// @Summary (Admin) Delete a quiz and everything attached to it
// @Description Removes the quiz with its questions, assignments, attempts and saved answers.
// @Tags Admin - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/quizzes/{quiz_id} [delete]
func (c *AdminQuizController) DeleteQuiz(ctx *gin.Context) {
	quizID, ok := parseID(ctx, "quiz_id")
	if !ok {
		return
	}
	if err := c.quizService.DeleteQuiz(quizID); err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// GetQuiz godoc
// @Summary (Admin) Get a quiz with its questions
// @Tags Admin - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {object} dto.QuizResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/quizzes/{quiz_id} [get]
func (c *AdminQuizController) GetQuiz(ctx *gin.Context) {
	quizID, ok := parseID(ctx, "quiz_id")
	if !ok {
		return
	}
	resp, err := c.quizService.GetQuiz(quizID)
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetQuizResults godoc
// @Summary (Admin) List all attempt results for a quiz
// @Tags Admin - Quizzes
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 200 {array} dto.QuizResultRowDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/quizzes/{quiz_id}/results [get]
func (c *AdminQuizController) GetQuizResults(ctx *gin.Context) {
	quizID, ok := parseID(ctx, "quiz_id")
	if !ok {
		return
	}
	rows, err := c.quizService.GetQuizResults(quizID)
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// AddQuestion godoc
// @Summary (Admin) Add a question to a quiz
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param question_data body dto.QuestionCreateDTO true "Question payload"
// @Success 201 {object} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/quizzes/{quiz_id}/questions [post]
func (c *AdminQuizController) AddQuestion(ctx *gin.Context) {
	quizID, ok := parseID(ctx, "quiz_id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.questionService.AddQuestion(quizID, req)
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// UpdateQuestion godoc
// @Summary (Admin) Update a question
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param question_data body dto.QuestionCreateDTO true "Question payload"
// @Success 200 {object} dto.QuestionResponseDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/questions/{question_id} [put]
func (c *AdminQuizController) UpdateQuestion(ctx *gin.Context) {
	questionID, ok := parseID(ctx, "question_id")
	if !ok {
		return
	}
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.questionService.UpdateQuestion(questionID, req)
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Tags Admin - Questions
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 204 "Deleted"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/questions/{question_id} [delete]
func (c *AdminQuizController) DeleteQuestion(ctx *gin.Context) {
	questionID, ok := parseID(ctx, "question_id")
	if !ok {
		return
	}
	if err := c.questionService.DeleteQuestion(questionID); err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// FilterQuestions godoc
// @Summary (Admin) Browse the question bank
// @Description Filter questions across quizzes by subject, chapter, difficulty or type.
// @Tags Admin - Questions
// @Produce json
// @Param subject query string false "Subject name"
// @Param chapter query string false "Chapter name"
// @Param difficulty query string false "Difficulty tag"
// @Param qtype query string false "Question type tag"
// @Success 200 {array} dto.QuestionResponseDTO
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/questions [get]
func (c *AdminQuizController) FilterQuestions(ctx *gin.Context) {
	var filter dto.QuestionFilterDTO
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid filter", Details: []string{err.Error()}})
		return
	}
	resp, err := c.questionService.FilterQuestions(filter)
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// ImportQuestions godoc
// @Summary (Admin) Bulk import parsed question rows into a quiz
// @Description Rows with a bad option letter are skipped and reported; valid rows are inserted.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param rows body dto.ImportRequestDTO true "Parsed rows"
// @Success 200 {object} dto.ImportResultDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/quizzes/{quiz_id}/questions/import [post]
func (c *AdminQuizController) ImportQuestions(ctx *gin.Context) {
	quizID, ok := parseID(ctx, "quiz_id")
	if !ok {
		return
	}
	var req dto.ImportRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.importService.ImportQuestions(quizID, req)
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

func parseID(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}
