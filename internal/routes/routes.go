package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"backoffice-dashboard/internal/controllers"
	"backoffice-dashboard/internal/integrations"
	"backoffice-dashboard/internal/repositories"
	"backoffice-dashboard/internal/services"
	"backoffice-dashboard/pkg/config"
	"backoffice-dashboard/pkg/middleware"
	"backoffice-dashboard/pkg/validation"
)

type Loggers struct {
	Main      *zap.Logger
	Auth      *zap.Logger
	Employee  *zap.Logger
	Inventory *zap.Logger
}

// Dependencies - всё, что нужно страницам дашборда.
type Dependencies struct {
	Employees integrations.EmployeeProvider
	Inventory integrations.InventoryProvider
	Flashes   repositories.FlashRepositoryInterface
	Validator *validation.CustomValidator
}

func InitRouter(e *echo.Echo, deps Dependencies, loggers *Loggers, cfg *config.Config) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")

	authMW := middleware.NewAuthMiddleware(loggers.Auth)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, controllers.EmployeePagePath)
	})

	dashboard := e.Group("", middleware.FlashSession, authMW.ForwardToken)

	runEmployeeRouter(dashboard, deps, cfg, loggers.Employee)
	runInventoryRouter(dashboard, deps, cfg, loggers.Inventory)

	loggers.Main.Info("InitRouter: Все маршруты успешно созданы")
}

func runEmployeeRouter(group *echo.Group, deps Dependencies, cfg *config.Config, logger *zap.Logger) {
	exporter := services.NewExportService(logger)
	controller := controllers.NewEmployeePageController(deps.Employees, deps.Validator, exporter, deps.Flashes, cfg.API.Host, logger)

	group.GET(controllers.EmployeePagePath, controller.ShowPage)
	group.POST(controllers.EmployeePagePath, controller.SubmitForm)
	group.GET(controllers.EmployeePagePath+"/export", controller.DownloadExcel)
}

func runInventoryRouter(group *echo.Group, deps Dependencies, cfg *config.Config, logger *zap.Logger) {
	controller := controllers.NewInventoryPageController(deps.Inventory, deps.Validator, deps.Flashes, cfg.Inventory.HardwareTypes, logger)

	group.GET(controllers.InventoryPagePath, controller.ShowPage)
	group.POST(controllers.InventoryPagePath, controller.SubmitForm)
}
