package services

import (
	"context"

	"crm-system/internal/dto"
	"crm-system/internal/entities"
	"crm-system/internal/repositories"

	"go.uber.org/zap"
)

type RecordServiceInterface interface {
	ListRecords(ctx context.Context, res repositories.Resource) (interface{}, error)
	CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*entities.Department, error)
	CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*entities.Employee, error)
	CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*entities.Client, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*entities.Request, error)
	UpdateRecord(ctx context.Context, res repositories.Resource, id uint64, fields map[string]interface{}) (map[string]interface{}, error)
}

type RecordService struct {
	recordRepository repositories.RecordRepositoryInterface
	logger           *zap.Logger
}

func NewRecordService(recordRepository repositories.RecordRepositoryInterface, logger *zap.Logger) RecordServiceInterface {
	return &RecordService{
		recordRepository: recordRepository,
		logger:           logger,
	}
}

// ListRecords — единственное место, где вид ресурса превращается в
// типизированную выборку.
func (s *RecordService) ListRecords(ctx context.Context, res repositories.Resource) (interface{}, error) {
	switch res {
	case repositories.ResourceDepartments:
		return s.recordRepository.GetDepartments(ctx)
	case repositories.ResourceEmployees:
		return s.recordRepository.GetEmployees(ctx)
	case repositories.ResourceClients:
		return s.recordRepository.GetClients(ctx)
	case repositories.ResourceRequests:
		return s.recordRepository.GetRequests(ctx)
	}
	panic("неизвестный ресурс")
}

func (s *RecordService) CreateDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*entities.Department, error) {
	department, err := s.recordRepository.CreateDepartment(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании департамента", zap.Error(err))
		return nil, err
	}
	return department, nil
}

func (s *RecordService) CreateEmployee(ctx context.Context, payload dto.CreateEmployeeDTO) (*entities.Employee, error) {
	employee, err := s.recordRepository.CreateEmployee(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании сотрудника", zap.Error(err))
		return nil, err
	}
	return employee, nil
}

func (s *RecordService) CreateClient(ctx context.Context, payload dto.CreateClientDTO) (*entities.Client, error) {
	client, err := s.recordRepository.CreateClient(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании клиента", zap.Error(err))
		return nil, err
	}
	s.logger.Info("клиент создан", zap.Uint64("id", client.ID), zap.String("company", client.CompanyName))
	return client, nil
}

func (s *RecordService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*entities.Request, error) {
	request, err := s.recordRepository.CreateRequest(ctx, payload)
	if err != nil {
		s.logger.Error("ошибка при создании заявки", zap.Error(err))
		return nil, err
	}
	s.logger.Info("заявка создана", zap.Uint64("id", request.ID), zap.Uint64("clientId", request.ClientID))
	return request, nil
}

func (s *RecordService) UpdateRecord(ctx context.Context, res repositories.Resource, id uint64, fields map[string]interface{}) (map[string]interface{}, error) {
	return s.recordRepository.UpdateRecord(ctx, res, id, fields)
}
