package api

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"

	_ "github.com/newsportal/news-api/docs"
	"github.com/newsportal/news-api/internal/api/handler"
	"github.com/newsportal/news-api/internal/api/middleware"
	"github.com/newsportal/news-api/internal/core/domain"
	"github.com/newsportal/news-api/internal/core/ports"
)

// Dependencies is everything the router wires into handlers. Mongo and
// Redis are optional.
type Dependencies struct {
	Log        zerolog.Logger
	Auth       ports.AuthService
	Users      ports.UserService
	News       ports.NewsService
	Comments   ports.CommentService
	Categories ports.CategoryService
	Audit      ports.AuditService

	SQL   *gorm.DB
	Mongo *mongo.Database
	Redis *redis.Client

	// Registry receives the HTTP request metrics and serves /metrics.
	// Nil means the process-wide default registry.
	Registry *prometheus.Registry
}

var (
	anyRole   = []domain.Role{domain.RoleUser, domain.RoleModerator, domain.RoleAdmin}
	editorial = []domain.Role{domain.RoleAdmin, domain.RoleModerator}
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if deps.Registry != nil {
		registerer, gatherer = deps.Registry, deps.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger(deps.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "newsapi",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}))

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.SQL, deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	users := handler.NewUserHandler(deps.Users, deps.Auth)
	news := handler.NewNewsHandler(deps.News)
	comments := handler.NewCommentHandler(deps.Comments)
	categories := handler.NewCategoryHandler(deps.Categories)
	audit := handler.NewAuditHandler(deps.Audit)
	legacy := handler.NewLegacyHandler(deps.Users, deps.News, deps.Comments, deps.Categories)

	registerV2(e.Group("/api/v2"), deps, users, news, comments, categories, audit)
	registerV1(e.Group("/api/v1"), users, news, comments, categories, legacy)

	return e
}

func registerV2(
	v2 *echo.Group,
	deps Dependencies,
	users *handler.UserHandler,
	news *handler.NewsHandler,
	comments *handler.CommentHandler,
	categories *handler.CategoryHandler,
	audit *handler.AuditHandler,
) {
	auth := middleware.Authenticate(deps.Auth)
	member := middleware.RequireRoles(anyRole...)
	editor := middleware.RequireRoles(editorial...)
	admin := middleware.RequireRoles(domain.RoleAdmin)
	self := middleware.RequireSelf("user")
	ownsNews := middleware.RequireOwnership("news", deps.News.OwnerOf)
	ownsComment := middleware.RequireOwnership("comment", deps.Comments.OwnerOf)

	v2.POST("/user/sign-up", users.SignUp)
	v2.POST("/user/token", users.Token, auth, member)
	v2.GET("/user/filter", users.Filter, auth, admin)
	v2.GET("/user/:id", users.Get, auth, member, self)
	v2.PUT("/user/:id", users.Update, auth, member, self)
	v2.DELETE("/user/:id", users.Delete, auth, member, self)

	v2.GET("/news/filter", news.Filter, auth, member)
	v2.GET("/news/:id", news.Get, auth, member)
	v2.POST("/news", news.Create, auth, member)
	v2.PUT("/news/:id", news.Update, auth, member, ownsNews)
	v2.DELETE("/news/:id", news.Delete, auth, member, ownsNews)

	v2.GET("/comment/filter", comments.Filter, auth, member)
	v2.GET("/comment/:id", comments.Get, auth, member)
	v2.POST("/comment", comments.Create, auth, member)
	v2.PUT("/comment/:id", comments.Update, auth, member, ownsComment)
	v2.DELETE("/comment/:id", comments.Delete, auth, member, ownsComment)

	v2.GET("/news-category/filter", categories.Filter, auth, member)
	v2.GET("/news-category/:id", categories.Get, auth, member)
	v2.POST("/news-category", categories.Create, auth, editor)
	v2.PUT("/news-category/:id", categories.Update, auth, editor)
	v2.DELETE("/news-category/:id", categories.Delete, auth, editor)

	v2.GET("/audit", audit.List, auth, admin)
}

// registerV1 mounts the legacy surface. No authentication, no ownership.
func registerV1(
	v1 *echo.Group,
	users *handler.UserHandler,
	news *handler.NewsHandler,
	comments *handler.CommentHandler,
	categories *handler.CategoryHandler,
	legacy *handler.LegacyHandler,
) {
	v1.GET("/user/filter", users.Filter)
	v1.GET("/user/:id", users.Get)
	v1.POST("/user", legacy.CreateUser)
	v1.PUT("/user/:id", legacy.UpdateUser)
	v1.DELETE("/user/:id", users.Delete)

	v1.GET("/news/filter", news.Filter)
	v1.GET("/news/:id", news.Get)
	v1.POST("/news", legacy.CreateNews)
	v1.PUT("/news/:id", legacy.UpdateNews)
	v1.DELETE("/news/:id", news.Delete)

	v1.GET("/comment/filter", comments.Filter)
	v1.GET("/comment/:id", comments.Get)
	v1.POST("/comment", legacy.CreateComment)
	v1.PUT("/comment/:id", legacy.UpdateComment)
	v1.DELETE("/comment/:id", comments.Delete)

	// news_category is the historical spelling.
	for _, prefix := range []string{"/news-category", "/news_category"} {
		v1.GET(prefix+"/filter", categories.Filter)
		v1.GET(prefix+"/:id", categories.Get)
		v1.POST(prefix, legacy.CreateCategory)
		v1.PUT(prefix+"/:id", legacy.UpdateCategory)
		v1.DELETE(prefix+"/:id", categories.Delete)
	}
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
