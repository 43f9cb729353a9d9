package main

import (
	"context"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lshigami/Margay/config"
	"github.com/lshigami/Margay/database"
	_ "github.com/lshigami/Margay/docs" // Swagger docs - auto-generated
	"github.com/lshigami/Margay/internal/controller"
	adminctrl "github.com/lshigami/Margay/internal/controller/admin"
	userctrl "github.com/lshigami/Margay/internal/controller/user"
	"github.com/lshigami/Margay/internal/logger"
	"github.com/lshigami/Margay/internal/middleware"
	"github.com/lshigami/Margay/internal/model"
	"github.com/lshigami/Margay/internal/repository"
	"github.com/lshigami/Margay/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Quiz Platform API
// @version 1.0
// @description Multi-tenant quiz platform: assignments, timed attempts with autosave, negative-marking scoring and post-submit review.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			func() *rand.Rand {
				return rand.New(rand.NewSource(time.Now().UnixNano()))
			},
		),

		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuizRepository,
			repository.NewQuestionRepository,
			repository.NewSubjectRepository,
			repository.NewAssignmentRepository,
			repository.NewAttemptRepository,
		),

		fx.Provide(
			service.NewUserService,
			service.NewScoringService,
			service.NewAccessPolicyService,
			service.NewRewardService,
			service.NewAttemptService,
			service.NewReviewService,
			service.NewAdminQuizService,
			service.NewQuestionService,
			service.NewImportService,
			service.NewAssignmentService,
			service.NewUserQuizService,
		),

		fx.Provide(
			controller.NewAuthController,
			adminctrl.NewAdminQuizController,
			adminctrl.NewAdminUserController,
			userctrl.NewAttemptController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedAdminAccount),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()

	// Tag every request with an id so log lines of one request correlate.
	r.Use(func(ctx *gin.Context) {
		requestID := uuid.NewString()
		ctx.Set("requestId", requestID)
		ctx.Writer.Header().Set("X-Request-ID", requestID)
		ctx.Next()
	})

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	authCtrl *controller.AuthController,
	adminQuizCtrl *adminctrl.AdminQuizController,
	adminUserCtrl *adminctrl.AdminUserController,
	attemptCtrl *userctrl.AttemptController,
) {
	api := router.Group("/api/v1")
	api.POST("/auth/login", authCtrl.Login)

	authed := api.Group("")
	authed.Use(middleware.RequireAuth(cfg.JWTSecret))
	{
		authed.GET("/quizzes", attemptCtrl.GetAllQuizzes)
		authed.POST("/quizzes/:quiz_id/attempts", attemptCtrl.StartAttempt)
		authed.POST("/quizzes/:quiz_id/attempts/:attempt_id/submit", attemptCtrl.SubmitAttempt)
		authed.PUT("/attempts/:attempt_id/answers", attemptCtrl.Autosave)
		authed.GET("/attempts/:attempt_id/review", attemptCtrl.GetReview)
		authed.GET("/attempts/mine", attemptCtrl.GetMyAttempts)
	}

	admin := authed.Group("/admin")
	admin.Use(middleware.RequireRoles(model.RoleAdmin, model.RoleTeacher))
	{
		admin.POST("/quizzes", adminQuizCtrl.CreateQuiz)
		admin.GET("/quizzes/:quiz_id", adminQuizCtrl.GetQuiz)
		admin.PUT("/quizzes/:quiz_id", adminQuizCtrl.UpdateQuiz)
		admin.DELETE("/quizzes/:quiz_id", adminQuizCtrl.DeleteQuiz)
		admin.GET("/quizzes/:quiz_id/results", adminQuizCtrl.GetQuizResults)

		admin.POST("/quizzes/:quiz_id/questions", adminQuizCtrl.AddQuestion)
		admin.POST("/quizzes/:quiz_id/questions/import", adminQuizCtrl.ImportQuestions)
		admin.GET("/questions", adminQuizCtrl.FilterQuestions)
		admin.PUT("/questions/:question_id", adminQuizCtrl.UpdateQuestion)
		admin.DELETE("/questions/:question_id", adminQuizCtrl.DeleteQuestion)

		admin.POST("/users", adminUserCtrl.CreateUser)
		admin.POST("/assignments", adminUserCtrl.AssignQuiz)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Quiz platform server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Subject{},
		&model.Chapter{},
		&model.Quiz{},
		&model.Question{},
		&model.Assignment{},
		&model.Attempt{},
		&model.AttemptAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

// SeedAdminAccount makes sure a fresh database has a usable admin login.
func SeedAdminAccount(userService service.UserService) error {
	return userService.EnsureAdminAccount()
}
