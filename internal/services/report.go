package services

import (
	"context"

	"crm-system/internal/dto"
	"crm-system/internal/repositories"

	"go.uber.org/zap"
)

type ReportServiceInterface interface {
	GetRequestsReport(ctx context.Context) ([]dto.RequestReportRow, error)
	GetDashboard(ctx context.Context) (*dto.DashboardDTO, error)
}

type ReportService struct {
	reportRepository repositories.ReportRepositoryInterface
	logger           *zap.Logger
}

func NewReportService(reportRepository repositories.ReportRepositoryInterface, logger *zap.Logger) ReportServiceInterface {
	return &ReportService{
		reportRepository: reportRepository,
		logger:           logger,
	}
}

func (s *ReportService) GetRequestsReport(ctx context.Context) ([]dto.RequestReportRow, error) {
	report, err := s.reportRepository.GetRequestsReport(ctx)
	if err != nil {
		s.logger.Error("ошибка формирования отчета", zap.Error(err))
		return nil, err
	}
	return report, nil
}

func (s *ReportService) GetDashboard(ctx context.Context) (*dto.DashboardDTO, error) {
	return s.reportRepository.GetDashboard(ctx)
}
