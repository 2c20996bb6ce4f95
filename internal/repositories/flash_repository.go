package repositories

import "context"

const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash - одно уведомление, показываемое пользователю на следующей странице.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

type FlashRepositoryInterface interface {
	Push(ctx context.Context, sessionID string, flash Flash) error
	// Pop returns the pending flashes of a session in push order and forgets them.
	Pop(ctx context.Context, sessionID string) ([]Flash, error)
}

func flashKey(sessionID string) string {
	return "flash:" + sessionID
}
