package services

import (
	"context"

	"go.uber.org/zap"

	"backoffice-dashboard/internal/dto"
	"backoffice-dashboard/internal/integrations"
	"backoffice-dashboard/pkg/validation"
)

const (
	EmployeeCreatedMessage = "Employee created successfully."
	ExportFailedMessage    = "An error occurred while downloading the Excel file."
)

// EmployeePage - состояние страницы сотрудников: список, флаг загрузки и форма.
type EmployeePage struct {
	provider  integrations.EmployeeProvider
	validator *validation.CustomValidator
	notifier  NotificationServiceInterface
	exporter  ExportServiceInterface
	logger    *zap.Logger

	list listState[dto.EmployeeRecord]
	form formState[dto.EmployeeCreationInput]
}

func NewEmployeePage(
	provider integrations.EmployeeProvider,
	validator *validation.CustomValidator,
	notifier NotificationServiceInterface,
	exporter ExportServiceInterface,
	logger *zap.Logger,
) *EmployeePage {
	return &EmployeePage{
		provider:  provider,
		validator: validator,
		notifier:  notifier,
		exporter:  exporter,
		logger:    logger.Named("employee_page"),
	}
}

// Mount is called once when the page becomes active.
func (p *EmployeePage) Mount(ctx context.Context) {
	p.FetchList(ctx)
}

func (p *EmployeePage) FetchList(ctx context.Context) {
	p.list.fetch(ctx, p.provider.GetEmployees, p.notifier, p.logger)
}

func (p *EmployeePage) Employees() []dto.EmployeeRecord { return p.list.snapshot() }

func (p *EmployeePage) Loading() bool { return p.list.isLoading() }

// Form returns the current form values and per-field messages.
func (p *EmployeePage) Form() (dto.EmployeeCreationInput, map[string]string) {
	return p.form.get()
}

// Reset is the Discard action.
func (p *EmployeePage) Reset() { p.form.reset() }

// Submit validates input and, when valid, creates the employee. attachment
// may be nil; a zero-byte placeholder is sent instead. The returned map is
// non-empty when validation blocked the submission.
func (p *EmployeePage) Submit(ctx context.Context, input dto.EmployeeCreationInput, attachment *dto.Attachment) validation.FieldErrors {
	if errs := p.validator.Check(input); len(errs) > 0 {
		p.form.set(input, errs)
		return errs
	}
	p.form.set(input, nil)

	file := dto.Attachment{FileName: dto.PlaceholderFileName}
	if attachment != nil && attachment.Body != nil {
		file = *attachment
	}

	p.list.setLoading(true)
	err := p.provider.CreateEmployee(ctx, input, file)
	p.list.setLoading(false)

	if err != nil {
		p.form.reset()
		p.logger.Warn("employee creation failed", zap.String("email", input.Email), zap.Error(err))
		p.notifier.Error(ctx, failureMessage(err))
		return nil
	}

	p.logger.Info("employee created", zap.String("email", input.Email), zap.String("file", file.FileName))
	p.notifier.Success(ctx, EmployeeCreatedMessage)
	p.FetchList(ctx)
	p.form.reset()
	return nil
}

// Export serializes the list currently held by the page; it never fetches.
func (p *EmployeePage) Export(ctx context.Context) ([]byte, error) {
	content, err := p.exporter.Employees(p.list.snapshot())
	if err != nil {
		p.logger.Error("employees export failed", zap.Error(err))
		p.notifier.Error(ctx, ExportFailedMessage)
		return nil, err
	}
	return content, nil
}
