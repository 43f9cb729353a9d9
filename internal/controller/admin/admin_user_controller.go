package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Margay/internal/apperr"
	"github.com/lshigami/Margay/internal/dto"
	"github.com/lshigami/Margay/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminUserController struct {
	userService       service.UserService
	assignmentService service.AssignmentService
}

func NewAdminUserController(userService service.UserService, assignmentService service.AssignmentService) *AdminUserController {
	return &AdminUserController{userService: userService, assignmentService: assignmentService}
}

// CreateUser godoc
// @Summary (Admin) Create an account
// @Description Create a user account with an optional role (defaults to "user").
// @Tags Admin - Users
// @Accept json
// @Produce json
// @Param user_data body dto.UserCreateDTO true "Account payload"
// @Success 201 {object} dto.UserResponseDTO
// @Failure 409 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/users [post]
func (c *AdminUserController) CreateUser(ctx *gin.Context) {
	var req dto.UserCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.userService.CreateUser(req)
	if err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Admin CreateUser: service error")
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}

// AssignQuiz godoc
// @Summary (Admin) Assign a quiz to a user
// @Description Upserts the assignment for the (user, quiz) pair; re-assigning overwrites the attempt limit and cooldown.
// @Tags Admin - Assignments
// @Accept json
// @Produce json
// @Param assignment_data body dto.AssignmentUpsertDTO true "Assignment payload"
// @Success 200 {object} model.Assignment
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /admin/assignments [post]
func (c *AdminUserController) AssignQuiz(ctx *gin.Context) {
	var req dto.AssignmentUpsertDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	resp, err := c.assignmentService.AssignQuiz(req)
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
