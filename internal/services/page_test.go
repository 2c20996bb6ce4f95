package services

import (
	"context"
	"sync"

	"backoffice-dashboard/internal/dto"
)

type recordedNotification struct {
	Level   string
	Message string
}

type recordingNotifier struct {
	mu    sync.Mutex
	items []recordedNotification
}

func (n *recordingNotifier) Success(_ context.Context, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, recordedNotification{Level: "success", Message: message})
}

func (n *recordingNotifier) Error(_ context.Context, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, recordedNotification{Level: "error", Message: message})
}

func (n *recordingNotifier) all() []recordedNotification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]recordedNotification(nil), n.items...)
}

type fakeEmployeeProvider struct {
	mu          sync.Mutex
	employees   []dto.EmployeeRecord
	listErr     error
	createErr   error
	listCalls   int
	created     []dto.EmployeeCreationInput
	attachments []string
}

func (p *fakeEmployeeProvider) GetEmployees(context.Context) ([]dto.EmployeeRecord, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listCalls++
	if p.listErr != nil {
		return nil, p.listErr
	}
	return append([]dto.EmployeeRecord(nil), p.employees...), nil
}

func (p *fakeEmployeeProvider) CreateEmployee(_ context.Context, input dto.EmployeeCreationInput, attachment dto.Attachment) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, input)
	p.attachments = append(p.attachments, attachment.FileName)
	if p.createErr != nil {
		return p.createErr
	}
	p.employees = append(p.employees, dto.EmployeeRecord{
		ID:        dto.OpaqueID(input.Email),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
	})
	return nil
}

type fakeInventoryProvider struct {
	mu        sync.Mutex
	items     []dto.HardwareRecord
	listErr   error
	createErr error
	listCalls int
	created   []dto.HardwareCreationInput
}

func (p *fakeInventoryProvider) GetHardwareItems(context.Context) ([]dto.HardwareRecord, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listCalls++
	if p.listErr != nil {
		return nil, p.listErr
	}
	return append([]dto.HardwareRecord(nil), p.items...), nil
}

func (p *fakeInventoryProvider) CreateHardwareItem(_ context.Context, input dto.HardwareCreationInput) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.created = append(p.created, input)
	if p.createErr != nil {
		return p.createErr
	}
	p.items = append(p.items, dto.HardwareRecord(input))
	return nil
}
