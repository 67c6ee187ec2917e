package service

import (
	"context"

	"github.com/umalmyha/erp-crm/internal/model"
	"github.com/umalmyha/erp-crm/internal/repository"
)

// DocumentService reads sales document data
type DocumentService interface {
	DocumentData(ctx context.Context, documentTypeNumber string, useTestEnvironment bool) (model.Document, error)
}

type documentService struct {
	documentRps repository.DocumentRepository
}

// NewDocumentService builds DocumentService
func NewDocumentService(documentRps repository.DocumentRepository) DocumentService {
	return &documentService{documentRps: documentRps}
}

func (s *documentService) DocumentData(ctx context.Context, documentTypeNumber string, useTestEnvironment bool) (model.Document, error) {
	return s.documentRps.DocumentData(ctx, documentTypeNumber, useTestEnvironment)
}
