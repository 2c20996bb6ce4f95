package controllers

import (
	"bytes"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"backoffice-dashboard/internal/dto"
	"backoffice-dashboard/internal/services"
	apperrors "backoffice-dashboard/pkg/errors"
)

func employeeForm() url.Values {
	return url.Values{
		"firstName":   {"Ada"},
		"lastName":    {"Lovelace"},
		"email":       {"ada@example.com"},
		"phone":       {"+15550100"},
		"joiningDate": {"2024-03-01"},
	}
}

func TestEmployeePage_ShowRendersRows(t *testing.T) {
	app := newTestApp(t)
	app.backend.employees = []dto.EmployeeRecord{{
		ID: "7", FirstName: "Ann", LastName: "Lee", Phone: "555",
		JoiningDate: "2024-01-01", DocumentURL: "cv.pdf", CreatedAt: "2024-01-02T09:05:00Z",
	}}

	rec := app.get(EmployeePagePath)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Ann")
	assert.Contains(t, body, "http://backend:5000/Employee/download/cv.pdf")
	assert.Contains(t, body, "2024-01-02|09:05")
	assert.Contains(t, body, `name="pdfFile"`)
}

func TestEmployeePage_InvalidSubmitKeepsInput(t *testing.T) {
	app := newTestApp(t)
	form := employeeForm()
	form.Set("firstName", "")
	form.Set("email", "nope")

	rec := app.postMultipart(t, EmployeePagePath, form, "", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "First Name is required")
	assert.Contains(t, body, "Invalid email")
	assert.Contains(t, body, `value="Lovelace"`)
	assert.Empty(t, app.backend.employeeIn)
}

func TestEmployeePage_SubmitWithoutFileSendsPlaceholder(t *testing.T) {
	app := newTestApp(t)

	rec := app.postMultipart(t, EmployeePagePath, employeeForm(), "", "")

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, EmployeePagePath, rec.Header().Get("Location"))
	require.Len(t, app.backend.employeeIn, 1)
	assert.Equal(t, "ada@example.com", app.backend.employeeIn[0].Email)
	assert.Equal(t, []string{dto.PlaceholderFileName}, app.backend.fileNames)

	page := app.get(EmployeePagePath)
	assert.Contains(t, page.Body.String(), services.EmployeeCreatedMessage)
	assert.NotContains(t, app.get(EmployeePagePath).Body.String(), services.EmployeeCreatedMessage)
}

func TestEmployeePage_SubmitWithFile(t *testing.T) {
	app := newTestApp(t)

	rec := app.postMultipart(t, EmployeePagePath, employeeForm(), "contract.pdf", "%PDF-1.4")

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, []string{"contract.pdf"}, app.backend.fileNames)
	assert.Equal(t, []string{"%PDF-1.4"}, app.backend.fileBodies)
}

func TestEmployeePage_BackendRejectionIsFlashed(t *testing.T) {
	app := newTestApp(t)
	app.backend.createErr = &apperrors.BackendError{Status: http.StatusBadRequest, Data: "Email already exists"}

	rec := app.postMultipart(t, EmployeePagePath, employeeForm(), "", "")

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Contains(t, app.get(EmployeePagePath).Body.String(), "Email already exists")
}

func TestEmployeePage_DownloadExcel(t *testing.T) {
	app := newTestApp(t)
	app.backend.employees = []dto.EmployeeRecord{{ID: "1", FirstName: "Ann", DocumentURL: "secret.pdf"}}

	rec := app.get(EmployeePagePath + "/export")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, services.XLSXContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), services.EmployeesExportFileName)

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(services.EmployeesExportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.NotContains(t, rows[0], "documentUrl")
}

func TestFormatCreatedAt(t *testing.T) {
	assert.Equal(t, "2024-05-06|13:45", formatCreatedAt("2024-05-06T13:45:10.123Z"))
	assert.Equal(t, "2024-05-06|13:45", formatCreatedAt("2024-05-06T13:45:10.1234567"))
	assert.Equal(t, "2024-01-02|00:00", formatCreatedAt("2024-01-02"))
	assert.Equal(t, "yesterday", formatCreatedAt("yesterday"))
}
