package infra

import (
	"fmt"
	"net/http"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gcordner/chargeguard/internal/cache"
	"github.com/gcordner/chargeguard/internal/config"
	"github.com/gcordner/chargeguard/internal/handlers"
	"github.com/gcordner/chargeguard/internal/middleware"
	"github.com/gcordner/chargeguard/internal/model/auth"
	"github.com/gcordner/chargeguard/internal/order"
	"github.com/gcordner/chargeguard/internal/repository"
	"github.com/gcordner/chargeguard/internal/service"
	"github.com/gcordner/chargeguard/internal/validation"
	"github.com/gcordner/chargeguard/pkg/db/transactor"
)

func Router(pgPool *pgxpool.Pool, mongoClient *mongo.Client, redisClient *redis.Client, cfg config.Config) (*echo.Echo, error) {
	e := echo.New()

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		c.Logger().Error(err.Error())
		e.DefaultHTTPErrorHandler(err, c)
	}

	v, err := echoValidator()
	if err != nil {
		return nil, err
	}
	e.Validator = v

	// Configs
	jwtCfg := cfg.AuthCfg.JwtCfg

	// Extra functionality
	jwtIssuer := auth.NewJwtIssuer(jwtCfg.Issuer, jwtCfg.SigningMethod, jwtCfg.TimeToLive, jwtCfg.PrivateKey)
	jwtValidator := auth.NewJwtValidator(jwtCfg.SigningMethod, jwtCfg.PublicKey)

	// Middleware
	authorizeMw := middleware.Authorize(jwtValidator)

	// Repositories
	executor := transactor.NewPgxWithinTransactionExecutor(pgPool)
	pgEntryRps := repository.NewTransactionalEntryRepository(
		repository.NewPostgresEntryRepository(executor),
		transactor.NewPgxTransactor(pgPool),
	)
	mongoEntryRps := repository.NewMongoEntryRepository(mongoClient, cfg.MongoCfg.Database)

	// Caches
	watchlistCache := cache.NewRedisWatchlistCache(redisClient)

	// External collaborators
	orderGateway := order.NewHTTPGateway(cfg.OrdersCfg)

	// Services
	authSvc := service.NewAuthService(jwtIssuer, cfg.AuthCfg.OperatorCfg)
	watchlistSvcV1 := service.NewWatchlistService(pgEntryRps, watchlistCache)
	watchlistSvcV2 := service.NewWatchlistService(mongoEntryRps, watchlistCache)
	screeningSvc := service.NewScreeningService(watchlistSvcV1, orderGateway)

	// Handlers
	authHandler := handlers.NewAuthHTTPHandler(authSvc)
	watchlistHandlerV1 := handlers.NewWatchlistHTTPHandler(watchlistSvcV1)
	watchlistHandlerV2 := handlers.NewWatchlistHTTPHandler(watchlistSvcV2)
	orderEventHandler := handlers.NewOrderEventHTTPHandler(screeningSvc)

	// Operational routes
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// API routes
	api := e.Group("/api")

	// auth
	authAPI := api.Group("/auth")
	authAPI.POST("/login", authHandler.Login)

	// order lifecycle events
	api.POST("/v1/orders/events", orderEventHandler.Post)

	// watchlist v1 (postgres-backed)
	watchlistAPIV1 := api.Group("/v1/watchlist", authorizeMw)
	watchlistAPIV1.GET("", watchlistHandlerV1.GetAll)
	watchlistAPIV1.POST("", watchlistHandlerV1.Post)
	watchlistAPIV1.PATCH("/:id/disable", watchlistHandlerV1.PatchDisable)
	watchlistAPIV1.DELETE("", watchlistHandlerV1.Delete)

	// watchlist v2 (mongo-backed)
	watchlistAPIV2 := api.Group("/v2/watchlist", authorizeMw)
	watchlistAPIV2.GET("", watchlistHandlerV2.GetAll)
	watchlistAPIV2.POST("", watchlistHandlerV2.Post)
	watchlistAPIV2.PATCH("/:id/disable", watchlistHandlerV2.PatchDisable)
	watchlistAPIV2.DELETE("", watchlistHandlerV2.Delete)

	return e, nil
}

func echoValidator() (*validation.EchoValidator, error) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)

	translator, found := uni.GetTranslator("en")
	if !found {
		return nil, fmt.Errorf("failed to find translator for en locale")
	}

	v := validator.New()
	if err := entranslations.RegisterDefaultTranslations(v, translator); err != nil {
		return nil, fmt.Errorf("failed to register en translations - %w", err)
	}

	return validation.Echo(v, translator), nil
}
