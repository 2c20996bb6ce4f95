package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	apperrors "backoffice-dashboard/pkg/errors"
)

// GenericErrorMessage is shown for every failure that is not a validation
// rejection by the backend.
const GenericErrorMessage = "An error occurred. Please contact admins"

// listState is the list a page owns plus its loading flag.
type listState[T any] struct {
	mu      sync.RWMutex
	items   []T
	loading bool
}

func (s *listState[T]) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *listState[T]) isLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *listState[T]) snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// fetch replaces the list with a fresh backend copy. On failure the current
// list is kept and the generic message is emitted.
func (s *listState[T]) fetch(
	ctx context.Context,
	load func(context.Context) ([]T, error),
	notifier NotificationServiceInterface,
	logger *zap.Logger,
) {
	s.setLoading(true)
	items, err := load(ctx)
	if err != nil {
		s.setLoading(false)
		logger.Error("list fetch failed", zap.Error(err))
		notifier.Error(ctx, GenericErrorMessage)
		return
	}

	s.mu.Lock()
	s.items = items
	s.loading = false
	s.mu.Unlock()
}

// failureMessage picks what the user sees after a failed creation.
func failureMessage(err error) string {
	if msg, ok := apperrors.IsValidationRejected(err); ok {
		return msg
	}
	return GenericErrorMessage
}

// formState holds the current input of a page form and its field errors.
type formState[F any] struct {
	mu     sync.RWMutex
	values F
	errors map[string]string
}

func (f *formState[F]) get() (F, map[string]string) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	errs := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		errs[k] = v
	}
	return f.values, errs
}

func (f *formState[F]) set(values F, errs map[string]string) {
	f.mu.Lock()
	f.values = values
	f.errors = errs
	f.mu.Unlock()
}

func (f *formState[F]) reset() {
	var zero F
	f.set(zero, nil)
}
