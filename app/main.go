package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"backoffice-dashboard/internal/integrations/restapi"
	"backoffice-dashboard/internal/repositories"
	"backoffice-dashboard/internal/routes"
	"backoffice-dashboard/internal/templates"
	"backoffice-dashboard/pkg/config"
	apperrors "backoffice-dashboard/pkg/errors"
	applogger "backoffice-dashboard/pkg/logger"
	appmiddleware "backoffice-dashboard/pkg/middleware"
	"backoffice-dashboard/pkg/utils"
	"backoffice-dashboard/pkg/validation"
)

func main() {
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer logger.Sync()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Internal server error", err, nil)
				_ = utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.BodyLimit(fmt.Sprintf("%dM", cfg.Server.UploadMaxMB)))
	e.Use(middleware.Secure())
	e.Use(appmiddleware.InjectLogger(logger))
	e.Use(appmiddleware.RequestLogger(logger.Named("http")))

	renderer, err := templates.NewRenderer()
	if err != nil {
		logger.Fatal("не удалось загрузить шаблоны", zap.Error(err))
	}
	e.Renderer = renderer
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		_ = utils.ErrorResponse(c, err, logger)
	}

	v := validation.New()

	provider := restapi.New(cfg.API.Host, restapi.Endpoints{
		EmployeeList:    cfg.API.EmployeeGetURL,
		EmployeeCreate:  cfg.API.EmployeeCreateURL,
		InventoryList:   cfg.API.InventoryGetURL,
		InventoryCreate: cfg.API.InventoryCreateURL,
	}, cfg.API.Timeout, logger.Named("restapi"))

	flashRepo, closeFlashes := newFlashRepository(cfg, logger)
	defer closeFlashes()

	routes.InitRouter(e, routes.Dependencies{
		Employees: provider,
		Inventory: provider,
		Flashes:   flashRepo,
		Validator: v,
	}, &routes.Loggers{
		Main:      logger,
		Auth:      logger.Named("auth"),
		Employee:  logger.Named("employee"),
		Inventory: logger.Named("inventory"),
	}, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port), zap.String("backend", cfg.API.Host))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Остановка сервера")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка остановки сервера", zap.Error(err))
	}
}

// newFlashRepository uses Redis when REDIS_ADDRESS is set and reachable,
// otherwise keeps flashes in process memory.
func newFlashRepository(cfg *config.Config, logger *zap.Logger) (repositories.FlashRepositoryInterface, func()) {
	if cfg.Redis.Address == "" {
		logger.Info("REDIS_ADDRESS не задан, уведомления хранятся в памяти")
		return repositories.NewMemoryFlashRepository(cfg.Redis.FlashTTL), func() {}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := redisClient.Ping(pingCtx).Result(); err != nil {
		logger.Warn("не удалось подключиться к Redis, уведомления хранятся в памяти",
			zap.Error(err), zap.String("address", cfg.Redis.Address))
		_ = redisClient.Close()
		return repositories.NewMemoryFlashRepository(cfg.Redis.FlashTTL), func() {}
	}

	return repositories.NewRedisFlashRepository(redisClient, cfg.Redis.FlashTTL), func() {
		_ = redisClient.Close()
	}
}
