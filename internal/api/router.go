package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/reviewhub/review-system/internal/api/handler"
	"github.com/reviewhub/review-system/internal/api/middleware"
	"github.com/reviewhub/review-system/internal/api/render"
	"github.com/reviewhub/review-system/internal/core/domain"
	"github.com/reviewhub/review-system/internal/core/service"
	mongodb "github.com/reviewhub/review-system/internal/infrastructure/db/mongo"
	redisdb "github.com/reviewhub/review-system/internal/infrastructure/db/redis"
	"github.com/reviewhub/review-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	renderer, err := render.New()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("review_system"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	reviewRepo := mongodb.NewReviewRepository(db)
	flashStore := redisdb.NewFlashStore(rdb)

	authService := service.NewAuthService(userRepo)
	sessionService := service.NewSessionService(userRepo, cfg.SessionSecret, cfg.SessionTTL)
	employeeService := service.NewEmployeeService(userRepo, reviewRepo, log)
	reviewService := service.NewReviewService(userRepo, reviewRepo)

	base := handler.NewBase(flashStore, log)
	userHandler := handler.NewUserHandler(base, authService, sessionService, cfg.SessionTTL)
	employeeHandler := handler.NewEmployeeHandler(base, authService, employeeService)
	reviewHandler := handler.NewReviewHandler(base, reviewService)
	dashboardHandler := handler.NewDashboardHandler(base, employeeService)

	// --- Access gates ---
	e.Use(middleware.LoadCurrentUser(sessionService))
	requireAuth := middleware.RequireAuth(sessionService)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	// --- Session / sign-up ---
	e.GET("/", userHandler.SignInPage)
	e.GET("/sign-up", userHandler.SignUpPage)
	e.POST("/users", userHandler.CreateUser)
	e.POST("/session", userHandler.CreateSession)
	e.GET("/sign-out", userHandler.DestroySession, requireAuth)

	// --- Dashboards ---
	e.GET("/admin-dashboard", dashboardHandler.Admin, requireAuth, adminOnly)
	e.GET("/employee-dashboard/:id", dashboardHandler.Employee, requireAuth)

	// --- Employee management (admin only) ---
	employees := e.Group("/employees", requireAuth, adminOnly)
	employees.GET("/add", employeeHandler.AddEmployeePage)
	employees.GET("/edit/:id", employeeHandler.EditEmployeePage)
	employees.POST("", employeeHandler.CreateEmployee)
	employees.POST("/:id", employeeHandler.UpdateEmployee)
	employees.POST("/delete/:id", employeeHandler.DeleteEmployee)

	// --- Reviews ---
	e.POST("/reviews", reviewHandler.Create, requireAuth)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}
