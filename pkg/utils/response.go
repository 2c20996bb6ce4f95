package utils

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "backoffice-dashboard/pkg/errors"
)

const errorTemplate = "error"

// ErrorView - данные страницы ошибки.
type ErrorView struct {
	Title   string
	Active  string
	Flashes []interface{}
	Code    int
	Message string
}

// ErrorResponse renders the error page. Only HttpError's Message reaches the
// user; everything else becomes a generic 500.
func ErrorResponse(ctx echo.Context, err error, logger *zap.Logger) error {
	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var httpErr *apperrors.HttpError
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
		message = http.StatusText(code)
	case errors.Is(err, apperrors.ErrBadRequest):
		code = http.StatusBadRequest
		message = http.StatusText(code)
	case errors.As(err, &echoErr):
		code = echoErr.Code
		message = http.StatusText(code)
	}

	fields := []zap.Field{
		zap.Int("code", code),
		zap.String("uri", ctx.Request().RequestURI),
		zap.Error(err),
	}
	if httpErr != nil && len(httpErr.Context) > 0 {
		fields = append(fields, zap.Any("context", httpErr.Context))
	}
	if code >= http.StatusInternalServerError {
		logger.Error("request failed", fields...)
	} else {
		logger.Warn("request failed", fields...)
	}

	if ctx.Response().Committed {
		return nil
	}
	return ctx.Render(code, errorTemplate, ErrorView{
		Title:   "Error",
		Code:    code,
		Message: message,
	})
}
