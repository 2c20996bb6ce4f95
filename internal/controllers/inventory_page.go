package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"backoffice-dashboard/internal/dto"
	"backoffice-dashboard/internal/integrations"
	"backoffice-dashboard/internal/repositories"
	"backoffice-dashboard/internal/services"
	"backoffice-dashboard/internal/templates"
	apperrors "backoffice-dashboard/pkg/errors"
	"backoffice-dashboard/pkg/utils"
	"backoffice-dashboard/pkg/validation"
)

const (
	InventoryPagePath = "/dashboard/inventory"
	hardwareTypeField = "type"
)

type hardwareRow struct {
	ID   string
	Type string
}

type inventoryPageView struct {
	pageView
	Rows []hardwareRow
}

type InventoryPageController struct {
	provider      integrations.InventoryProvider
	validator     *validation.CustomValidator
	flashes       flashes
	hardwareTypes []string
	logger        *zap.Logger
}

func NewInventoryPageController(
	provider integrations.InventoryProvider,
	validator *validation.CustomValidator,
	flashRepo repositories.FlashRepositoryInterface,
	hardwareTypes []string,
	logger *zap.Logger,
) *InventoryPageController {
	return &InventoryPageController{
		provider:      provider,
		validator:     validator,
		flashes:       flashes{repo: flashRepo, logger: logger},
		hardwareTypes: hardwareTypes,
		logger:        logger,
	}
}

func (c *InventoryPageController) newPage(ctx echo.Context) *services.InventoryPage {
	notifier := c.flashes.notifier(ctx.Request().Context())
	return services.NewInventoryPage(c.provider, c.validator, notifier, c.logger)
}

func (c *InventoryPageController) ShowPage(ctx echo.Context) error {
	page := c.newPage(ctx)
	page.Mount(ctx.Request().Context())
	return c.render(ctx, http.StatusOK, page)
}

func (c *InventoryPageController) SubmitForm(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var input dto.HardwareCreationInput
	if err := ctx.Bind(&input); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid form submission", err, nil), c.logger)
	}

	page := c.newPage(ctx)
	if errs := page.Submit(reqCtx, input); len(errs) > 0 {
		page.Mount(reqCtx)
		return c.render(ctx, http.StatusUnprocessableEntity, page)
	}
	return ctx.Redirect(http.StatusSeeOther, InventoryPagePath)
}

func (c *InventoryPageController) render(ctx echo.Context, code int, page *services.InventoryPage) error {
	form, errs := page.Form()
	items := page.HardwareItems()

	rows := make([]hardwareRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, hardwareRow{ID: item.ID, Type: item.Type})
	}

	fields := utils.FormFields(form, errs)
	for i := range fields {
		if fields[i].Name == hardwareTypeField {
			fields[i].Options = c.hardwareTypes
		}
	}

	return ctx.Render(code, templates.InventoryPage, inventoryPageView{
		pageView: pageView{
			Title:   "Inventory",
			Active:  templates.InventoryPage,
			Flashes: c.flashes.pop(ctx.Request().Context()),
			Loading: page.Loading(),
			Fields:  fields,
		},
		Rows: rows,
	})
}
