package integrations

import (
	"context"

	"backoffice-dashboard/internal/dto"
)

type EmployeeProvider interface {
	GetEmployees(ctx context.Context) ([]dto.EmployeeRecord, error)
	CreateEmployee(ctx context.Context, input dto.EmployeeCreationInput, attachment dto.Attachment) error
}

type InventoryProvider interface {
	GetHardwareItems(ctx context.Context) ([]dto.HardwareRecord, error)
	CreateHardwareItem(ctx context.Context, input dto.HardwareCreationInput) error
}
