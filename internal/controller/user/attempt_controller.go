package user

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Margay/internal/apperr"
	"github.com/lshigami/Margay/internal/dto"
	"github.com/lshigami/Margay/internal/middleware"
	"github.com/lshigami/Margay/internal/service"
	"github.com/rs/zerolog/log"
)

type AttemptController struct {
	userQuizService service.UserQuizService
	attemptService  service.AttemptService
	reviewService   service.ReviewService
}

func NewAttemptController(
	userQuizService service.UserQuizService,
	attemptService service.AttemptService,
	reviewService service.ReviewService,
) *AttemptController {
	return &AttemptController{
		userQuizService: userQuizService,
		attemptService:  attemptService,
		reviewService:   reviewService,
	}
}

// GetAllQuizzes godoc
// @Summary List quizzes
// @Description Lists every quiz with its question count and the caller's attempt count.
// @Tags Quizzes
// @Produce json
// @Success 200 {array} dto.QuizSummaryDTO
// @Security BearerAuth
// @Router /quizzes [get]
func (c *AttemptController) GetAllQuizzes(ctx *gin.Context) {
	resp, err := c.userQuizService.GetAllQuizzes(middleware.CallerID(ctx))
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// StartAttempt godoc
// @Summary Start an attempt on a quiz
// @Description Checks the caller's assignment, attempt limit, cooldown and the quiz window, then opens an attempt and returns the shuffled questions without correct answers.
// @Tags Attempts
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Success 201 {object} dto.StartAttemptDTO
// @Failure 403 {object} dto.ErrorResponse "Denied by policy"
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{quiz_id}/attempts [post]
func (c *AttemptController) StartAttempt(ctx *gin.Context) {
	quizID, ok := parseID(ctx, "quiz_id")
	if !ok {
		return
	}

	resp, err := c.attemptService.Start(middleware.CallerID(ctx), quizID, time.Now())
	if err != nil {
		log.Info().Err(err).Uint("quizID", quizID).Msg("StartAttempt rejected")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// Autosave godoc
// @Summary Save one answer in an open attempt
// @Description Upserts the answer row for one question: a non-empty selection overwrites the previous one, the flag always overwrites, the note only when non-empty.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Param answer body dto.AutosaveRequest true "Answer payload"
// @Success 204 "Saved"
// @Failure 409 {object} dto.ErrorResponse "Attempt already submitted"
// @Security BearerAuth
// @Router /attempts/{attempt_id}/answers [put]
func (c *AttemptController) Autosave(ctx *gin.Context) {
	attemptID, ok := parseID(ctx, "attempt_id")
	if !ok {
		return
	}
	var req dto.AutosaveRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	if err := c.attemptService.Autosave(middleware.CallerID(ctx), attemptID, req); err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// SubmitAttempt godoc
// @Summary Submit an attempt for scoring
// @Description Scores every question of the quiz, stores the result and closes the attempt. Submitting an already-closed attempt returns the stored score unchanged.
// @Tags Attempts
// @Accept json
// @Produce json
// @Param quiz_id path int true "Quiz ID"
// @Param attempt_id path int true "Attempt ID"
// @Param answers body dto.SubmitRequest false "Late answers for questions never autosaved"
// @Success 200 {object} dto.SubmitResultDTO
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /quizzes/{quiz_id}/attempts/{attempt_id}/submit [post]
func (c *AttemptController) SubmitAttempt(ctx *gin.Context) {
	quizID, ok := parseID(ctx, "quiz_id")
	if !ok {
		return
	}
	attemptID, ok := parseID(ctx, "attempt_id")
	if !ok {
		return
	}

	var req dto.SubmitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.attemptService.Submit(middleware.CallerID(ctx), attemptID, quizID, req.LateAnswers)
	if err != nil {
		log.Error().Err(err).Uint("attemptID", attemptID).Msg("SubmitAttempt failed")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetReview godoc
// @Summary Review a submitted attempt
// @Description Per-question breakdown with correct answers plus per-subject and per-chapter aggregates. Owner or privileged roles only; open attempts cannot be reviewed.
// @Tags Attempts
// @Produce json
// @Param attempt_id path int true "Attempt ID"
// @Success 200 {object} dto.ReviewDTO
// @Failure 403 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Attempt still open"
// @Security BearerAuth
// @Router /attempts/{attempt_id}/review [get]
func (c *AttemptController) GetReview(ctx *gin.Context) {
	attemptID, ok := parseID(ctx, "attempt_id")
	if !ok {
		return
	}

	resp, err := c.reviewService.Review(middleware.CallerID(ctx), attemptID)
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}

// GetMyAttempts godoc
// @Summary List the caller's attempts
// @Tags Attempts
// @Produce json
// @Success 200 {array} dto.AttemptSummaryDTO
// @Security BearerAuth
// @Router /attempts/mine [get]
func (c *AttemptController) GetMyAttempts(ctx *gin.Context) {
	resp, err := c.attemptService.GetMyAttempts(middleware.CallerID(ctx))
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
