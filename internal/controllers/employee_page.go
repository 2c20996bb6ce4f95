package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

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
	EmployeePagePath    = "/dashboard/employee"
	createdAtLayout     = "2006-01-02|15:04"
	employeeFileField   = "pdfFile"
	documentDownloadURL = "/Employee/download/"
)

type employeeRow struct {
	ID           string
	FirstName    string
	LastName     string
	Phone        string
	JoiningDate  string
	DocumentLink string
	CreatedAt    string
}

type employeePageView struct {
	pageView
	Rows []employeeRow
}

type EmployeePageController struct {
	provider  integrations.EmployeeProvider
	validator *validation.CustomValidator
	exporter  services.ExportServiceInterface
	flashes   flashes
	apiHost   string
	logger    *zap.Logger
}

func NewEmployeePageController(
	provider integrations.EmployeeProvider,
	validator *validation.CustomValidator,
	exporter services.ExportServiceInterface,
	flashRepo repositories.FlashRepositoryInterface,
	apiHost string,
	logger *zap.Logger,
) *EmployeePageController {
	return &EmployeePageController{
		provider:  provider,
		validator: validator,
		exporter:  exporter,
		flashes:   flashes{repo: flashRepo, logger: logger},
		apiHost:   apiHost,
		logger:    logger,
	}
}

func (c *EmployeePageController) newPage(ctx echo.Context) *services.EmployeePage {
	notifier := c.flashes.notifier(ctx.Request().Context())
	return services.NewEmployeePage(c.provider, c.validator, notifier, c.exporter, c.logger)
}

func (c *EmployeePageController) ShowPage(ctx echo.Context) error {
	page := c.newPage(ctx)
	page.Mount(ctx.Request().Context())
	return c.render(ctx, http.StatusOK, page)
}

func (c *EmployeePageController) SubmitForm(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var input dto.EmployeeCreationInput
	if err := ctx.Bind(&input); err != nil {
		return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid form submission", err, nil), c.logger)
	}

	var attachment *dto.Attachment
	fileHeader, err := ctx.FormFile(employeeFileField)
	switch {
	case err == nil && fileHeader.Filename != "":
		file, openErr := fileHeader.Open()
		if openErr != nil {
			return utils.ErrorResponse(ctx, apperrors.NewHttpError(http.StatusBadRequest, "Invalid form submission", openErr, nil), c.logger)
		}
		defer file.Close()
		attachment = &dto.Attachment{FileName: fileHeader.Filename, Body: file}
	case err != nil && !errors.Is(err, http.ErrMissingFile):
		c.logger.Warn("pdfFile could not be read, sending placeholder", zap.Error(err))
	}

	page := c.newPage(ctx)
	if errs := page.Submit(reqCtx, input, attachment); len(errs) > 0 {
		page.Mount(reqCtx)
		return c.render(ctx, http.StatusUnprocessableEntity, page)
	}
	// Список, перезапрошенный в Submit, здесь не нужен: GET после редиректа загрузит его снова.
	return ctx.Redirect(http.StatusSeeOther, EmployeePagePath)
}

// DownloadExcel loads the list and streams it as employees.xlsx.
func (c *EmployeePageController) DownloadExcel(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	page := c.newPage(ctx)
	page.Mount(reqCtx)

	content, err := page.Export(reqCtx)
	if err != nil {
		return ctx.Redirect(http.StatusSeeOther, EmployeePagePath)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", services.EmployeesExportFileName))
	return ctx.Blob(http.StatusOK, services.XLSXContentType, content)
}

func (c *EmployeePageController) render(ctx echo.Context, code int, page *services.EmployeePage) error {
	form, errs := page.Form()
	employees := page.Employees()

	rows := make([]employeeRow, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, employeeRow{
			ID:           e.ID.String(),
			FirstName:    e.FirstName,
			LastName:     e.LastName,
			Phone:        e.Phone,
			JoiningDate:  e.JoiningDate,
			DocumentLink: c.documentLink(e.DocumentURL),
			CreatedAt:    formatCreatedAt(e.CreatedAt),
		})
	}

	return ctx.Render(code, templates.EmployeePage, employeePageView{
		pageView: pageView{
			Title:   "Employees",
			Active:  templates.EmployeePage,
			Flashes: c.flashes.pop(ctx.Request().Context()),
			Loading: page.Loading(),
			Fields:  utils.FormFields(form, errs),
		},
		Rows: rows,
	})
}

func (c *EmployeePageController) documentLink(documentURL string) string {
	if documentURL == "" {
		return ""
	}
	return c.apiHost + documentDownloadURL + documentURL
}

// formatCreatedAt renders backend timestamps as YYYY-MM-DD|HH:mm; values that
// do not parse are shown as received.
func formatCreatedAt(raw string) string {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999", "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format(createdAtLayout)
		}
	}
	return raw
}
