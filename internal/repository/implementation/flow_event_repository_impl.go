package implementation

import (
	"context"

	"github.com/abhi-r/verdant/internal/entity"
	"github.com/abhi-r/verdant/internal/mapper"
	"github.com/abhi-r/verdant/internal/model"
	"github.com/abhi-r/verdant/internal/repository/contract"
	"github.com/abhi-r/verdant/internal/repository/specification"

	"gorm.io/gorm"
)

type FlowEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FlowEventMapper
}

func NewFlowEventRepository(db *gorm.DB) contract.FlowEventRepository {
	return &FlowEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewFlowEventMapper(),
	}
}

func (r *FlowEventRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FlowEventRepositoryImpl) Create(ctx context.Context, event *entity.FlowEvent) error {
	m := r.mapper.ToModel(event)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*event = *r.mapper.ToEntity(m)
	return nil
}

func (r *FlowEventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FlowEvent, error) {
	var models []*model.FlowEvent
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *FlowEventRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.FlowEvent{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
