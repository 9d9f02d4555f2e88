package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/bhojanbuddy/backend/config"
	"github.com/bhojanbuddy/backend/internal/api"
	"github.com/bhojanbuddy/backend/internal/middleware"
	"github.com/bhojanbuddy/backend/internal/service"
)

// Deps are the externally constructed collaborators the server composes.
// The classifier, catalog and image stores are built once at startup and
// treated as read-only afterwards.
type Deps struct {
	DB         *gorm.DB
	Redis      *redis.Client
	Classifier service.Classifier
	Catalog    *service.NutritionCatalog
	FoodImages service.ImageStore
	Uploads    service.ImageStore
	Feedback   *service.FeedbackLog
	Logger     zerolog.Logger
}

// Server is the HTTP server with all handlers wired.
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger zerolog.Logger
}

// New assembles services, handlers and routes.
func New(cfg *config.Config, deps Deps) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:   []string{"Content-Length"},
		MaxAge:          12 * time.Hour,
	}))

	authService := service.NewAuthService(deps.DB, cfg.JWTSecret)
	userService := service.NewUserService(deps.DB)
	bmiService := service.NewBMIService(deps.DB)
	foodService := service.NewFoodService(deps.DB, deps.FoodImages)
	predictService := service.NewPredictService(deps.Classifier, deps.Catalog, deps.Uploads)

	var loginLimiter, predictLimiter *middleware.RateLimiter
	if deps.Redis != nil {
		loginLimiter = middleware.NewLoginRateLimiter(deps.Redis)
		predictLimiter = middleware.NewPredictRateLimiter(deps.Redis)
	}

	root := router.Group("")
	api.NewAuthHandler(authService, loginLimiter).RegisterRoutes(root)
	api.NewUserHandler(userService, authService).RegisterRoutes(root)
	api.NewBMIHandler(bmiService, authService).RegisterRoutes(root)
	api.NewFoodHandler(foodService, authService).RegisterRoutes(root)
	api.NewPredictHandler(predictService, predictLimiter).RegisterRoutes(root)
	api.NewFeedbackHandler(deps.Feedback).RegisterRoutes(root)

	// Uploaded food images are addressable as static content.
	router.Static("/uploads/food_images", cfg.UploadDir)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "BhojanBuddy API is running",
			"endpoints": gin.H{
				"/auth":     "POST /register, /login",
				"/users":    "GET /me, GET /{id}, PUT /me",
				"/bmi":      "POST, GET /{user_id}",
				"/foods":    "POST /log, GET /history/{user_id}",
				"/predict":  "POST - Upload an image for food recognition",
				"/feedback": "POST - Submit feedback for predictions",
			},
		})
	})

	return &Server{
		router: router,
		http: &http.Server{
			Addr:    cfg.ServerHost + ":" + cfg.ServerPort,
			Handler: router,
		},
		logger: deps.Logger,
	}
}

// Start blocks serving requests until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.http.Addr).Msg("starting server")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Router exposes the underlying engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
