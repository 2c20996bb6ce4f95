package controllers

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"backoffice-dashboard/internal/dto"
	"backoffice-dashboard/internal/repositories"
	"backoffice-dashboard/internal/services"
	"backoffice-dashboard/internal/templates"
	"backoffice-dashboard/pkg/contextkeys"
	"backoffice-dashboard/pkg/validation"
)

const testSessionID = "6f1c1c9e-4a53-4f43-9a55-2d1c7c0f2a11"

type stubBackend struct {
	mu          sync.Mutex
	employees   []dto.EmployeeRecord
	hardware    []dto.HardwareRecord
	createErr   error
	employeeIn  []dto.EmployeeCreationInput
	fileNames   []string
	fileBodies  []string
	hardwareIn  []dto.HardwareCreationInput
	listQueries int
}

func (b *stubBackend) GetEmployees(context.Context) ([]dto.EmployeeRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listQueries++
	return append([]dto.EmployeeRecord(nil), b.employees...), nil
}

func (b *stubBackend) CreateEmployee(_ context.Context, input dto.EmployeeCreationInput, attachment dto.Attachment) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.employeeIn = append(b.employeeIn, input)
	b.fileNames = append(b.fileNames, attachment.FileName)
	body := ""
	if attachment.Body != nil {
		raw, _ := io.ReadAll(attachment.Body)
		body = string(raw)
	}
	b.fileBodies = append(b.fileBodies, body)
	return b.createErr
}

func (b *stubBackend) GetHardwareItems(context.Context) ([]dto.HardwareRecord, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listQueries++
	return append([]dto.HardwareRecord(nil), b.hardware...), nil
}

func (b *stubBackend) CreateHardwareItem(_ context.Context, input dto.HardwareCreationInput) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hardwareIn = append(b.hardwareIn, input)
	return b.createErr
}

type testApp struct {
	echo    *echo.Echo
	backend *stubBackend
	flashes *repositories.MemoryFlashRepository
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	renderer, err := templates.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := context.WithValue(c.Request().Context(), contextkeys.FlashSessionIDKey, testSessionID)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	})

	backend := &stubBackend{}
	flashRepo := repositories.NewMemoryFlashRepository(time.Minute)
	v := validation.New()
	logger := zap.NewNop()

	employees := NewEmployeePageController(backend, v, services.NewExportService(logger), flashRepo, "http://backend:5000", logger)
	inventory := NewInventoryPageController(backend, v, flashRepo, []string{"Laptop", "Monitor"}, logger)

	e.GET(EmployeePagePath, employees.ShowPage)
	e.POST(EmployeePagePath, employees.SubmitForm)
	e.GET(EmployeePagePath+"/export", employees.DownloadExcel)
	e.GET(InventoryPagePath, inventory.ShowPage)
	e.POST(InventoryPagePath, inventory.SubmitForm)

	return &testApp{echo: e, backend: backend, flashes: flashRepo}
}

func (a *testApp) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) get(path string) *httptest.ResponseRecorder {
	return a.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (a *testApp) postForm(path string, values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return a.do(req)
}

func (a *testApp) postMultipart(t *testing.T, path string, values url.Values, fileName, fileBody string) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for key, vals := range values {
		for _, v := range vals {
			require.NoError(t, w.WriteField(key, v))
		}
	}
	if fileName != "" {
		part, err := w.CreateFormFile(employeeFileField, fileName)
		require.NoError(t, err)
		_, err = io.WriteString(part, fileBody)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return a.do(req)
}
