package implementation

import (
	"context"
	"errors"

	"research-gap-be/internal/entity"
	"research-gap-be/internal/mapper"
	"research-gap-be/internal/model"
	"research-gap-be/internal/repository/contract"
	"research-gap-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SavedQueryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SavedQueryMapper
}

func NewSavedQueryRepository(db *gorm.DB) contract.SavedQueryRepository {
	return &SavedQueryRepositoryImpl{
		db:     db,
		mapper: mapper.NewSavedQueryMapper(),
	}
}

func (r *SavedQueryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *SavedQueryRepositoryImpl) FindAll(ctx context.Context) ([]*entity.ResearchResult, error) {
	var rows []*model.SavedResearchQuery
	query := r.applySpecifications(r.db.WithContext(ctx), specification.OrderBy{Field: "position"})
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*entity.ResearchResult, 0, len(rows))
	for _, row := range rows {
		e, err := r.mapper.ToEntity(row)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *SavedQueryRepositoryImpl) FindById(ctx context.Context, id string) (*entity.ResearchResult, error) {
	var row model.SavedResearchQuery
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})
	if err := query.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&row)
}

// Upsert keeps the existing position when the id is already stored, so a
// replaced entry stays where it was.
func (r *SavedQueryRepositoryImpl) Upsert(ctx context.Context, result *entity.ResearchResult) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.SavedResearchQuery
		err := r.applySpecifications(tx, specification.ByID{ID: result.Id}).First(&existing).Error

		var position int64
		switch {
		case err == nil:
			position = existing.Position
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Model(&model.SavedResearchQuery{}).
				Select("COALESCE(MAX(position), 0) + 1").
				Scan(&position).Error; err != nil {
				return err
			}
		default:
			return err
		}

		row, err := r.mapper.ToModel(result, position)
		if err != nil {
			return err
		}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(row).Error
	})
}

func (r *SavedQueryRepositoryImpl) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.SavedResearchQuery{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
