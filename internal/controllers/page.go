package controllers

import (
	"context"

	"go.uber.org/zap"

	"backoffice-dashboard/internal/repositories"
	"backoffice-dashboard/internal/services"
	"backoffice-dashboard/pkg/utils"
)

// pageView - общие поля всех страниц для layout.
type pageView struct {
	Title   string
	Active  string
	Flashes []repositories.Flash
	Loading bool
	Fields  []utils.FormField
}

// flashes binds the per-browser flash store to controllers.
type flashes struct {
	repo   repositories.FlashRepositoryInterface
	logger *zap.Logger
}

func (f flashes) notifier(ctx context.Context) services.NotificationServiceInterface {
	sessionID := utils.GetFlashSessionIDFromCtx(ctx)
	if sessionID == "" {
		return services.NewMockNotificationService(f.logger)
	}
	return services.NewFlashNotificationService(f.repo, sessionID, f.logger)
}

func (f flashes) pop(ctx context.Context) []repositories.Flash {
	sessionID := utils.GetFlashSessionIDFromCtx(ctx)
	if sessionID == "" {
		return nil
	}
	items, err := f.repo.Pop(ctx, sessionID)
	if err != nil {
		f.logger.Warn("не удалось получить уведомления", zap.Error(err))
		return nil
	}
	return items
}
