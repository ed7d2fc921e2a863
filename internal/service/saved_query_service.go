package service

import (
	"context"
	"strings"
	"time"

	"research-gap-be/internal/dto"
	"research-gap-be/internal/mapper"
	"research-gap-be/internal/pkg/logger"
	"research-gap-be/internal/pkg/metrics"
	"research-gap-be/internal/pkg/serverutils"
	"research-gap-be/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ISavedQueryService interface {
	List(ctx context.Context) ([]*dto.ResearchResultResponse, error)
	Show(ctx context.Context, id string) (*dto.ResearchResultResponse, error)
	Save(ctx context.Context, req *dto.SaveResearchQueryRequest) (*dto.ResearchResultResponse, error)
	Delete(ctx context.Context, id string) error
}

type savedQueryService struct {
	repo    contract.SavedQueryRepository
	mapper  *mapper.ResearchMapper
	metrics *metrics.Metrics
	logger  logger.ILogger
	now     func() time.Time
}

func NewSavedQueryService(repo contract.SavedQueryRepository, m *metrics.Metrics, log logger.ILogger) ISavedQueryService {
	return &savedQueryService{
		repo:    repo,
		mapper:  mapper.NewResearchMapper(),
		metrics: m,
		logger:  log,
		now:     time.Now,
	}
}

func (s *savedQueryService) List(ctx context.Context) ([]*dto.ResearchResultResponse, error) {
	list, err := s.repo.FindAll(ctx)
	s.metrics.RecordSavedQuery("list", err)
	if err != nil {
		return nil, err
	}
	return s.mapper.ToResponses(list), nil
}

func (s *savedQueryService) Show(ctx context.Context, id string) (*dto.ResearchResultResponse, error) {
	result, err := s.repo.FindById(ctx, id)
	s.metrics.RecordSavedQuery("show", err)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Saved query not found")
	}
	return s.mapper.ToResponse(result), nil
}

// Save adds the result, or replaces the one with the same id in place.
// A missing id gets a fresh UUID.
func (s *savedQueryService) Save(ctx context.Context, req *dto.SaveResearchQueryRequest) (*dto.ResearchResultResponse, error) {
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}

	result := s.mapper.FromSaveRequest(req)
	result.Id = strings.TrimSpace(result.Id)
	if result.Id == "" {
		s.logger.Debug("SavedQueryService", "No id provided, generating one", map[string]interface{}{
			"query": result.Query,
		})
		result.Id = uuid.NewString()
	}
	savedAt := s.now().UTC()
	result.SavedAt = &savedAt

	err := s.repo.Upsert(ctx, result)
	s.metrics.RecordSavedQuery("save", err)
	if err != nil {
		s.logger.Error("SavedQueryService", "Failed to save query", map[string]interface{}{
			"id":    result.Id,
			"error": err.Error(),
		})
		return nil, err
	}

	return s.mapper.ToResponse(result), nil
}

func (s *savedQueryService) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, id)
	s.metrics.RecordSavedQuery("delete", err)
	if err != nil {
		return err
	}
	if !deleted {
		return fiber.NewError(fiber.StatusNotFound, "Saved query not found")
	}
	return nil
}
