package utils

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "backoffice-dashboard/pkg/errors"
)

type captureRenderer struct {
	name string
	data interface{}
}

func (r *captureRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	r.name = name
	r.data = data
	_, err := io.WriteString(w, name)
	return err
}

func TestErrorResponse(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"http error", apperrors.NewHttpError(http.StatusBadGateway, "backend unavailable", fmt.Errorf("dial"), nil), http.StatusBadGateway, "backend unavailable"},
		{"not found", fmt.Errorf("page: %w", apperrors.ErrNotFound), http.StatusNotFound, "Not Found"},
		{"echo error", echo.NewHTTPError(http.StatusRequestEntityTooLarge), http.StatusRequestEntityTooLarge, "Request Entity Too Large"},
		{"unknown", fmt.Errorf("secret internal detail"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			renderer := &captureRenderer{}
			e.Renderer = renderer
			rec := httptest.NewRecorder()
			ctx := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, ErrorResponse(ctx, tc.err, zap.NewNop()))

			assert.Equal(t, tc.code, rec.Code)
			assert.Equal(t, errorTemplate, renderer.name)
			view, ok := renderer.data.(ErrorView)
			require.True(t, ok)
			assert.Equal(t, tc.message, view.Message)
		})
	}
}
