package routes

import (
	"capstone-portal-backend/internal/api/handlers"
	"capstone-portal-backend/internal/api/middleware"
	"capstone-portal-backend/internal/auth"
	"capstone-portal-backend/internal/config"
	"capstone-portal-backend/internal/logger"
	"capstone-portal-backend/internal/repository"
	"capstone-portal-backend/internal/service"
	"capstone-portal-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, store storage.Store) *gin.Engine {
	router := gin.New()

	log := logger.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	titleRepo := repository.NewTitleRepository(db)
	submissionRepo := repository.NewSubmissionRepository(db)
	periodRepo := repository.NewPeriodConfigRepository(db)

	// Initialize services
	periodService := service.NewPeriodService(periodRepo)
	teamService := service.NewTeamService(teamRepo, userRepo, periodRepo, validator)
	titleService := service.NewTitleService(titleRepo, teamRepo, submissionRepo, periodRepo, store, validator)
	submissionService := service.NewSubmissionService(submissionRepo, teamRepo, titleRepo, periodRepo, store, validator)
	userService := service.NewUserService(userRepo, validator)

	authService := auth.NewService(userRepo, validator, cfg)
	googleProvider := auth.NewGoogleProvider(cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	periodHandler := handlers.NewPeriodHandler(periodService)
	teamHandler := handlers.NewTeamHandler(teamService)
	titleHandler := handlers.NewTitleHandler(titleService)
	submissionHandler := handlers.NewSubmissionHandler(submissionService)
	userHandler := handlers.NewUserHandler(userService)
	uploadHandler := handlers.NewUploadHandler(store)
	authHandler := auth.NewHandler(authService, googleProvider)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/signup", authHandler.Signup)
		authGroup.POST("/signin", authHandler.Signin)
		authGroup.GET("/google", authHandler.GoogleStart)
		authGroup.GET("/google/callback", authHandler.GoogleCallback)
	}

	// Authenticated API routes
	v1 := router.Group("/api/v1")
	v1.Use(auth.RequireAuth(authService, userRepo))
	{
		v1.GET("/period", periodHandler.GetPeriod)
		v1.POST("/uploads", uploadHandler.Upload)

		users := v1.Group("/users")
		{
			users.GET("/me", userHandler.GetMe)
			users.PATCH("/me", userHandler.UpdateMe)
			users.GET("/team", userHandler.ListTeamMembers)
			users.GET("/:id", userHandler.GetUser)
		}

		teams := v1.Group("/teams")
		{
			teams.GET("/:id", teamHandler.GetTeam)
			teams.POST("/join/:code", teamHandler.JoinTeam)
			teams.DELETE("/members/:userId", teamHandler.KickMember)
		}

		titles := v1.Group("/titles")
		{
			titles.GET("", titleHandler.ListTitles)
			titles.GET("/:id", titleHandler.GetTitle)
			titles.POST("", titleHandler.CreateTitle)
			titles.PATCH("/:id", titleHandler.UpdateTitle)
		}

		submissions := v1.Group("/submissions")
		{
			submissions.GET("", submissionHandler.ListSubmissions)
			submissions.GET("/:id", submissionHandler.GetSubmission)
			submissions.POST("", submissionHandler.CreateSubmission)
			submissions.POST("/:id/respond", submissionHandler.RespondSubmission)
		}

		admin := v1.Group("/admin")
		admin.Use(auth.RequireAdmin())
		{
			admin.GET("/users", userHandler.AdminGetAllUsers)
			admin.DELETE("/users/:id", userHandler.AdminDeleteUser)

			admin.POST("/teams", teamHandler.AdminCreateTeams)
			admin.GET("/teams", teamHandler.AdminGetAllTeams)
			admin.GET("/teams/:id", teamHandler.AdminGetTeam)
			admin.DELETE("/teams/:id", teamHandler.AdminDeleteTeam)

			admin.GET("/titles", titleHandler.AdminGetAllTitles)
			admin.GET("/titles/:id", titleHandler.AdminGetTitle)
			admin.DELETE("/titles/:id", titleHandler.AdminDeleteTitle)

			admin.GET("/submissions", submissionHandler.AdminGetAllSubmissions)
			admin.GET("/submissions/:id", submissionHandler.AdminGetSubmission)
			admin.DELETE("/submissions/:id", submissionHandler.AdminDeleteSubmission)
		}
	}

	return router
}
