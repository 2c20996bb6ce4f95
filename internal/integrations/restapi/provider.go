package restapi

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"backoffice-dashboard/internal/dto"
)

// Endpoints are either absolute URLs or paths relative to the API host.
type Endpoints struct {
	EmployeeList    string
	EmployeeCreate  string
	InventoryList   string
	InventoryCreate string
}

// Provider - HTTP-клиент REST-бэкенда для страниц сотрудников и инвентаря.
type Provider struct {
	httpClient *http.Client
	baseURL    string
	endpoints  Endpoints
	logger     *zap.Logger
}

func New(baseURL string, endpoints Endpoints, timeout time.Duration, logger *zap.Logger) *Provider {
	return &Provider{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		endpoints:  endpoints,
		logger:     logger.Named("restapi_provider"),
	}
}

func (p *Provider) GetEmployees(ctx context.Context) ([]dto.EmployeeRecord, error) {
	return fetchList[dto.EmployeeRecord](p, ctx, p.endpoints.EmployeeList)
}

func (p *Provider) CreateEmployee(ctx context.Context, input dto.EmployeeCreationInput, attachment dto.Attachment) error {
	body, contentType, err := employeeMultipart(input, attachment)
	if err != nil {
		return err
	}
	return p.post(ctx, p.endpoints.EmployeeCreate, contentType, body)
}

func (p *Provider) GetHardwareItems(ctx context.Context) ([]dto.HardwareRecord, error) {
	return fetchList[dto.HardwareRecord](p, ctx, p.endpoints.InventoryList)
}

func (p *Provider) CreateHardwareItem(ctx context.Context, input dto.HardwareCreationInput) error {
	body, err := jsonBody(input)
	if err != nil {
		return err
	}
	return p.post(ctx, p.endpoints.InventoryCreate, "application/json", body)
}
