package service

import (
	"context"

	"github.com/umalmyha/erp-crm/internal/model"
	"github.com/umalmyha/erp-crm/internal/repository"
)

// ReportService reads DWH reports
type ReportService interface {
	AgingReports(ctx context.Context) ([]model.AgingReport, error)
}

type reportService struct {
	agingRps repository.AgingReportRepository
}

// NewReportService builds ReportService
func NewReportService(agingRps repository.AgingReportRepository) ReportService {
	return &reportService{agingRps: agingRps}
}

func (s *reportService) AgingReports(ctx context.Context) ([]model.AgingReport, error) {
	return s.agingRps.ListAll(ctx)
}
