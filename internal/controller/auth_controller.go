package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Margay/config"
	"github.com/lshigami/Margay/internal/apperr"
	"github.com/lshigami/Margay/internal/dto"
	"github.com/lshigami/Margay/internal/middleware"
	"github.com/lshigami/Margay/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	userService service.UserService
	cfg         *config.Config
}

func NewAuthController(userService service.UserService, cfg *config.Config) *AuthController {
	return &AuthController{userService: userService, cfg: cfg}
}

// Login godoc
// @Summary Exchange credentials for a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Username and password"
// @Success 200 {object} dto.TokenResponse
// @Failure 403 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	user, err := c.userService.Authenticate(req.Username, req.Password)
	if err != nil {
		ctx.JSON(apperr.HTTPStatus(err), dto.ErrorResponse{Message: err.Error()})
		return
	}

	token, err := middleware.IssueToken(c.cfg.JWTSecret, user)
	if err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("Failed to sign token")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Could not issue token"})
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		Token: token,
		User: dto.UserResponseDTO{
			ID:        user.ID,
			Username:  user.Username,
			Role:      user.Role,
			Coins:     user.Coins,
			Badges:    user.Badges,
			CreatedAt: user.CreatedAt,
		},
	})
}
