package routes

import (
	"animal-rescue-backend/internal/api/handlers"
	"animal-rescue-backend/internal/api/middleware"
	"animal-rescue-backend/internal/auth"
	"animal-rescue-backend/internal/config"
	"animal-rescue-backend/internal/notifications"
	"animal-rescue-backend/internal/repository"
	"animal-rescue-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize the email provider. Brevo needs an API key; everything else
	// falls back to logging outbound mail, which keeps development quiet.
	var provider notifications.Provider
	if cfg.EmailProvider == "brevo" && cfg.EmailAPIKey != "" {
		provider = notifications.NewBrevoProvider(cfg.EmailAPIKey, cfg.EmailFromAddress, cfg.EmailFromName)
	} else {
		provider = notifications.NewLogProvider()
	}
	notifier := notifications.NewNotifier(provider)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	awgRepo := repository.NewAwgRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	breedRepo := repository.NewBreedRepository(db)
	animalRepo := repository.NewAnimalRepository(db)
	zipRepo := repository.NewZipCodeRepository(db)
	shortlistRepo := repository.NewShortListRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	fostererRepo := repository.NewFostererRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	savedSearchRepo := repository.NewSavedSearchRepository(db)

	// Initialize auth
	authService := auth.NewAuthService(cfg)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize services
	permissionsService := service.NewPermissionsService(memberRepo)
	userService := service.NewUserService(userRepo, authService, notifier, validator)
	awgService := service.NewAwgService(awgRepo, zipRepo, permissionsService, notifier, cfg, validator)
	memberService := service.NewMemberService(memberRepo, userRepo, awgRepo, permissionsService, validator)
	animalService := service.NewAnimalService(animalRepo, breedRepo, permissionsService, validator)
	browseService := service.NewBrowseService(animalRepo, zipRepo, shortlistRepo)
	shortlistService := service.NewShortListService(shortlistRepo, animalRepo)
	commentService := service.NewCommentService(commentRepo, animalRepo, userRepo, notifier, cfg, validator)
	fostererService := service.NewFostererService(fostererRepo, notifier, cfg, validator)
	applicationService := service.NewApplicationService(applicationRepo, fostererRepo, animalRepo, permissionsService, notifier, cfg, validator)
	savedSearchService := service.NewSavedSearchService(savedSearchRepo, animalRepo, zipRepo, breedRepo, notifier, cfg, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(userService)
	awgHandler := handlers.NewAwgHandler(awgService, userService)
	memberHandler := handlers.NewMemberHandler(memberService, userService)
	animalHandler := handlers.NewAnimalHandler(animalService, userService)
	browseHandler := handlers.NewBrowseHandler(browseService)
	shortlistHandler := handlers.NewShortListHandler(shortlistService, userService)
	commentHandler := handlers.NewCommentHandler(commentService, userService)
	fostererHandler := handlers.NewFostererHandler(fostererService, userService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, userService)
	savedSearchHandler := handlers.NewSavedSearchHandler(savedSearchService, userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)

		me := authGroup.Group("/me", authMiddleware.RequireAuth())
		{
			me.GET("", authHandler.Me)
			me.PUT("/profile", authHandler.UpdateProfile)
		}
	}

	// Public browse routes. OptionalAuth lets shortlist flags and filters
	// light up for logged-in visitors without walling off anonymous traffic.
	public := router.Group("", authMiddleware.OptionalAuth())
	{
		public.GET("/animals", browseHandler.Search)
		public.GET("/animals/:id", browseHandler.Get)
		public.GET("/animals/:id/comments", commentHandler.List)
		public.GET("/breeds", browseHandler.ListBreeds)
		public.GET("/awgs/:id", awgHandler.GetPublic)
	}

	// Authenticated routes
	authed := router.Group("", authMiddleware.RequireAuth())
	{
		authed.POST("/awgs", awgHandler.Apply)

		authed.POST("/animals/:id/shortlist", shortlistHandler.Toggle)
		authed.POST("/animals/:id/comments", commentHandler.Create)
		authed.POST("/animals/:id/applications", applicationHandler.Submit)

		comments := authed.Group("/comments")
		{
			comments.PUT("/:id", commentHandler.Update)
			comments.DELETE("/:id", commentHandler.Delete)
			comments.POST("/:id/replies", commentHandler.Reply)
		}
		replies := authed.Group("/replies")
		{
			replies.PUT("/:id", commentHandler.UpdateReply)
			replies.DELETE("/:id", commentHandler.DeleteReply)
		}

		me := authed.Group("/me")
		{
			me.GET("/fosterer", fostererHandler.GetState)
			me.POST("/fosterer/:stage", fostererHandler.SubmitStage)
			me.GET("/applications", applicationHandler.ListMine)

			savedSearches := me.Group("/saved-searches")
			{
				savedSearches.GET("", savedSearchHandler.List)
				savedSearches.POST("", savedSearchHandler.Create)
				savedSearches.PUT("/:id", savedSearchHandler.Update)
				savedSearches.DELETE("/:id", savedSearchHandler.Delete)
			}
		}

		applications := authed.Group("/applications")
		{
			applications.GET("/:id", applicationHandler.Get)
			applications.POST("/:id/accept", applicationHandler.Accept)
			applications.POST("/:id/reject", applicationHandler.Reject)
		}

		// Organization management routes. Per-capability checks live in the
		// services; the router only guarantees an authenticated caller.
		management := authed.Group("/management/awgs")
		{
			management.GET("", awgHandler.ListMine)
			management.GET("/:id", awgHandler.Get)
			management.PUT("/:id", awgHandler.Update)

			members := management.Group("/:id/members")
			{
				members.GET("", memberHandler.List)
				members.POST("", memberHandler.Add)
				members.PUT("/:memberId", memberHandler.Update)
				members.DELETE("/:memberId", memberHandler.Remove)
			}

			animals := management.Group("/:id/animals")
			{
				animals.GET("", animalHandler.List)
				animals.POST("", animalHandler.Create)
				animals.GET("/:animalId", animalHandler.Get)
				animals.PUT("/:animalId", animalHandler.Update)
				animals.DELETE("/:animalId", animalHandler.Delete)
				animals.PUT("/:animalId/publish", animalHandler.SetPublished)
				animals.POST("/:animalId/images", animalHandler.AddImage)
			}

			management.GET("/:id/applications", applicationHandler.ListForAwg)
		}

		// Staff-only routes
		staff := authed.Group("/staff", authMiddleware.RequireStaff())
		{
			staff.GET("/awgs", awgHandler.ListForStaff)
			staff.PUT("/awgs/:id/status", awgHandler.SetStatus)
			staff.POST("/digest/run", savedSearchHandler.RunDigest)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	return router
}
