package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound      = fmt.Errorf("record not found")
	ErrBadRequest    = fmt.Errorf("bad request")
	ErrInvalidToken  = fmt.Errorf("invalid access token")
	ErrEmptyEndpoint = fmt.Errorf("endpoint url is not configured")
)

// HttpError is a failure of the dashboard itself: Message goes to the user,
// Err and Context only to the log.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, context map[string]interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Context: context}
}

// BackendError is a non-2xx answer from the REST backend.
type BackendError struct {
	Status int
	Data   string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend responded with status %d: %s", e.Status, e.Data)
}

// IsValidationRejected reports whether err is a 400 from the backend whose
// message may be shown to the user verbatim.
func IsValidationRejected(err error) (string, bool) {
	var backendErr *BackendError
	if errors.As(err, &backendErr) && backendErr.Status == http.StatusBadRequest {
		return backendErr.Data, true
	}
	return "", false
}
