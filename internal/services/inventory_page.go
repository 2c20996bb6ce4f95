package services

import (
	"context"

	"go.uber.org/zap"

	"backoffice-dashboard/internal/dto"
	"backoffice-dashboard/internal/integrations"
	"backoffice-dashboard/pkg/validation"
)

const HardwareCreatedMessage = "Hardware item created successfully."

// InventoryPage - состояние страницы инвентаря.
type InventoryPage struct {
	provider  integrations.InventoryProvider
	validator *validation.CustomValidator
	notifier  NotificationServiceInterface
	logger    *zap.Logger

	list listState[dto.HardwareRecord]
	form formState[dto.HardwareCreationInput]
}

func NewInventoryPage(
	provider integrations.InventoryProvider,
	validator *validation.CustomValidator,
	notifier NotificationServiceInterface,
	logger *zap.Logger,
) *InventoryPage {
	return &InventoryPage{
		provider:  provider,
		validator: validator,
		notifier:  notifier,
		logger:    logger.Named("inventory_page"),
	}
}

func (p *InventoryPage) Mount(ctx context.Context) {
	p.FetchList(ctx)
}

func (p *InventoryPage) FetchList(ctx context.Context) {
	p.list.fetch(ctx, p.provider.GetHardwareItems, p.notifier, p.logger)
}

func (p *InventoryPage) HardwareItems() []dto.HardwareRecord { return p.list.snapshot() }

func (p *InventoryPage) Loading() bool { return p.list.isLoading() }

func (p *InventoryPage) Form() (dto.HardwareCreationInput, map[string]string) {
	return p.form.get()
}

func (p *InventoryPage) Reset() { p.form.reset() }

func (p *InventoryPage) Submit(ctx context.Context, input dto.HardwareCreationInput) validation.FieldErrors {
	if errs := p.validator.Check(input); len(errs) > 0 {
		p.form.set(input, errs)
		return errs
	}
	p.form.set(input, nil)

	p.list.setLoading(true)
	err := p.provider.CreateHardwareItem(ctx, input)
	p.list.setLoading(false)

	if err != nil {
		p.form.reset()
		p.logger.Warn("hardware creation failed", zap.String("serial_no", input.SerialNo), zap.Error(err))
		p.notifier.Error(ctx, failureMessage(err))
		return nil
	}

	p.logger.Info("hardware item created", zap.String("serial_no", input.SerialNo), zap.String("type", input.Type))
	p.notifier.Success(ctx, HardwareCreatedMessage)
	p.FetchList(ctx)
	p.form.reset()
	return nil
}
