package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"reflect"
	"strings"

	"go.uber.org/zap"

	"backoffice-dashboard/internal/dto"
	apperrors "backoffice-dashboard/pkg/errors"
	"backoffice-dashboard/pkg/utils"
)

const maxErrorBody = 64 << 10

// fetchList - общий GET списка: запрос, проверка статуса, разбор JSON-массива.
func fetchList[T any](p *Provider, ctx context.Context, endpoint string) ([]T, error) {
	req, err := p.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, backendError(resp)
	}

	var items []T
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("GET %s: decode list: %w", endpoint, err)
	}
	p.logger.Debug("list fetched", zap.String("endpoint", endpoint), zap.Int("count", len(items)))
	return items, nil
}

func (p *Provider) post(ctx context.Context, endpoint, contentType string, body io.Reader) error {
	req, err := p.newRequest(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("POST %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return backendError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (p *Provider) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, apperrors.ErrEmptyEndpoint
	}
	req, err := http.NewRequestWithContext(ctx, method, p.resolve(endpoint), body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, endpoint, err)
	}
	if token := utils.GetAccessTokenFromCtx(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (p *Provider) resolve(endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	return strings.TrimRight(p.baseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

// backendError turns a non-2xx response into a BackendError whose Data is
// the human readable message of the body.
func backendError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &apperrors.BackendError{Status: resp.StatusCode, Data: errorMessage(raw)}
}

// errorMessage accepts a bare text body, a JSON string, or an object with a
// "message" (or "error"/"title") field.
func errorMessage(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}

	var envelope map[string]interface{}
	if err := json.Unmarshal(trimmed, &envelope); err == nil {
		for _, key := range []string{"message", "error", "title"} {
			if msg, ok := envelope[key].(string); ok && msg != "" {
				return msg
			}
		}
	}
	return string(trimmed)
}

func jsonBody(v interface{}) (io.Reader, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return bytes.NewReader(payload), nil
}

// employeeMultipart writes the form fields in declaration order followed by
// the pdfFile part, which is always present.
func employeeMultipart(input dto.EmployeeCreationInput, attachment dto.Attachment) (io.Reader, string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	rv := reflect.ValueOf(input)
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		name := rt.Field(i).Tag.Get("form")
		if name == "" {
			continue
		}
		if err := writer.WriteField(name, rv.Field(i).String()); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", name, err)
		}
	}

	fileName := attachment.FileName
	if fileName == "" {
		fileName = dto.PlaceholderFileName
	}
	part, err := writer.CreateFormFile("pdfFile", fileName)
	if err != nil {
		return nil, "", fmt.Errorf("create pdfFile part: %w", err)
	}
	if attachment.Body != nil {
		if _, err := io.Copy(part, attachment.Body); err != nil {
			return nil, "", fmt.Errorf("copy pdfFile: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize multipart: %w", err)
	}
	return &body, writer.FormDataContentType(), nil
}
