package service

import (
	"context"

	"research-gap-be/internal/dto"
	"research-gap-be/internal/repository/contract"
)

type IHistoryService interface {
	Recent(ctx context.Context) (*dto.HistoryResponse, error)
}

type historyService struct {
	repo contract.HistoryRepository
}

func NewHistoryService(repo contract.HistoryRepository) IHistoryService {
	return &historyService{repo: repo}
}

func (s *historyService) Recent(ctx context.Context) (*dto.HistoryResponse, error) {
	topics, err := s.repo.Recent(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.HistoryResponse{Topics: topics}, nil
}
