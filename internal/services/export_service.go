package services

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"reflect"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"backoffice-dashboard/internal/dto"
)

const (
	EmployeesExportFileName  = "employees.xlsx"
	EmployeesExportSheetName = "Employees"
	XLSXContentType          = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// employeeExportExclude are record keys that never reach the workbook.
var employeeExportExclude = []string{"documentUrl"}

type ExportServiceInterface interface {
	Employees(records []dto.EmployeeRecord) ([]byte, error)
}

type ExportService struct {
	logger *zap.Logger
}

func NewExportService(logger *zap.Logger) *ExportService {
	return &ExportService{logger: logger}
}

// Employees builds employees.xlsx from already fetched records.
func (s *ExportService) Employees(records []dto.EmployeeRecord) ([]byte, error) {
	buf, err := BuildWorkbook(EmployeesExportSheetName, records, employeeExportExclude...)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("employees workbook built", zap.Int("rows", len(records)), zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

type exportColumn struct {
	index int
	key   string
}

// BuildWorkbook writes one sheet: a header row of the records' json keys in
// declaration order minus exclude, then one row per record.
func BuildWorkbook[T any](sheet string, records []T, exclude ...string) (*bytes.Buffer, error) {
	columns, err := exportColumns(reflect.TypeOf((*T)(nil)).Elem(), exclude)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(columns))
	for i, col := range columns {
		header[i] = col.key
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, record := range records {
		rv := reflect.ValueOf(record)
		row := make([]interface{}, len(columns))
		for j, col := range columns {
			row[j] = cellValue(rv.Field(col.index))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf, nil
}

func exportColumns(t reflect.Type, exclude []string) ([]exportColumn, error) {
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("export: %s is not a struct", t)
	}
	skip := make(map[string]bool, len(exclude))
	for _, key := range exclude {
		skip[key] = true
	}

	var columns []exportColumn
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		key := strings.SplitN(sf.Tag.Get("json"), ",", 2)[0]
		if key == "-" {
			continue
		}
		if key == "" {
			key = sf.Name
		}
		if skip[key] {
			continue
		}
		columns = append(columns, exportColumn{index: i, key: key})
	}
	return columns, nil
}

func cellValue(v reflect.Value) interface{} {
	if valuer, ok := v.Interface().(driver.Valuer); ok {
		value, err := valuer.Value()
		if err != nil || value == nil {
			return nil
		}
		return value
	}
	if stringer, ok := v.Interface().(fmt.Stringer); ok {
		return stringer.String()
	}
	return v.Interface()
}
