package contract

import (
	"context"

	"research-gap-be/internal/entity"
)

// SavedQueryRepository is an insertion-ordered set of research results keyed
// by Id.
type SavedQueryRepository interface {
	FindAll(ctx context.Context) ([]*entity.ResearchResult, error)
	FindById(ctx context.Context, id string) (*entity.ResearchResult, error) // nil, nil when absent
	Upsert(ctx context.Context, result *entity.ResearchResult) error         // replaces in place when Id exists
	Delete(ctx context.Context, id string) (bool, error)
}
