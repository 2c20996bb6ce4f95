package services

import (
	"context"

	"go.uber.org/zap"

	"backoffice-dashboard/internal/repositories"
)

// NotificationServiceInterface - приемник уведомлений для пользователя.
// Fire-and-forget: вызывающий код не ждет результата.
type NotificationServiceInterface interface {
	Success(ctx context.Context, message string)
	Error(ctx context.Context, message string)
}

type flashNotificationService struct {
	flashes   repositories.FlashRepositoryInterface
	sessionID string
	logger    *zap.Logger
}

// NewFlashNotificationService queues notifications for the browser session
// so they are shown on the next rendered page.
func NewFlashNotificationService(flashes repositories.FlashRepositoryInterface, sessionID string, logger *zap.Logger) NotificationServiceInterface {
	return &flashNotificationService{flashes: flashes, sessionID: sessionID, logger: logger}
}

func (s *flashNotificationService) Success(ctx context.Context, message string) {
	s.push(ctx, repositories.FlashSuccess, message)
}

func (s *flashNotificationService) Error(ctx context.Context, message string) {
	s.push(ctx, repositories.FlashError, message)
}

func (s *flashNotificationService) push(ctx context.Context, level, message string) {
	if err := s.flashes.Push(ctx, s.sessionID, repositories.Flash{Level: level, Message: message}); err != nil {
		s.logger.Warn("flash notification dropped",
			zap.String("level", level),
			zap.String("message", message),
			zap.Error(err),
		)
	}
}

// mockNotificationService пишет уведомления в лог вместо показа пользователю.
type mockNotificationService struct {
	logger *zap.Logger
}

func NewMockNotificationService(logger *zap.Logger) NotificationServiceInterface {
	return &mockNotificationService{logger: logger}
}

func (s *mockNotificationService) Success(_ context.Context, message string) {
	s.logger.Info("notification", zap.String("level", repositories.FlashSuccess), zap.String("message", message))
}

func (s *mockNotificationService) Error(_ context.Context, message string) {
	s.logger.Info("notification", zap.String("level", repositories.FlashError), zap.String("message", message))
}
