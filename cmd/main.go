package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/Pangolins/config"
	"github.com/lshigami/Pangolins/database"
	_ "github.com/lshigami/Pangolins/docs" // Swagger docs - auto-generated
	adminctrl "github.com/lshigami/Pangolins/internal/controller/admin"
	studentctrl "github.com/lshigami/Pangolins/internal/controller/student"
	"github.com/lshigami/Pangolins/internal/logger"
	"github.com/lshigami/Pangolins/internal/model"
	"github.com/lshigami/Pangolins/internal/repository"
	"github.com/lshigami/Pangolins/internal/service"
	"github.com/lshigami/Pangolins/internal/session"
	"github.com/lshigami/Pangolins/internal/token"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Exam Session & Grading API
// @version 1.0
// @description Timed multiple-choice exam service: teachers author exams, students take them under a time limit, scores are computed and stored once per student per exam.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,         // Provides *gin.Engine
			NewSessionRegistry,
			NewTokenManager,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewExamRepository,
			repository.NewResultRepository,
			repository.NewUserRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewAuditLog,
			service.NewAuthService,
			service.NewExamAdminService,
			service.NewExamSessionService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminExamController,
			studentctrl.NewStudentExamController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(StartSessionSweeper),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

func NewSessionRegistry(cfg *config.Config) *session.Registry {
	return session.NewRegistry(time.Duration(cfg.Session.GraceMinutes) * time.Minute)
}

func NewTokenManager(cfg *config.Config) *token.Manager {
	return token.NewManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tokens *token.Manager,
	adminExamCtrl *adminctrl.AdminExamController,
	studentExamCtrl *studentctrl.StudentExamController,
) {
	api := router.Group("/api/v1")
	{
		api.POST("/auth/login", studentExamCtrl.Login)

		api.GET("/exams", studentExamCtrl.ListAvailableExams)
		api.POST("/exams/:exam_id/attempts", studentExamCtrl.StartAttempt)
		api.POST("/exams/:exam_id/submissions", studentExamCtrl.SubmitAttempt)
		api.GET("/exams/:exam_id/results/:student_id", studentExamCtrl.FetchResult)
	}

	adminAPI := router.Group("/api/v1/admin", tokens.RequireRole(token.RoleTeacher))
	{
		adminAPI.POST("/exams", adminExamCtrl.CreateExam)
		adminAPI.PUT("/exams/:exam_id", adminExamCtrl.UpdateExam)
		adminAPI.DELETE("/exams/:exam_id", adminExamCtrl.DeleteExam)
		adminAPI.PATCH("/exams/:exam_id/visibility", adminExamCtrl.SetResultVisibility)
		adminAPI.GET("/exams/:exam_id/results", adminExamCtrl.ListResults)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Exam service starting on port %s", cfg.Server.Port)
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

// StartSessionSweeper runs the background eviction of abandoned exam
// sessions for the lifetime of the app.
func StartSessionSweeper(lc fx.Lifecycle, cfg *config.Config, registry *session.Registry) {
	interval := time.Duration(cfg.Session.SweepIntervalMinutes) * time.Minute
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go registry.Run(ctx, interval)
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Teacher{},
		&model.Student{},
		&model.Exam{},
		&model.Question{},
		&model.QuestionOption{},
		&model.ExamResult{},
		&model.StudentAnswer{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
