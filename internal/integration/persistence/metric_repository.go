package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/integration/persistence/model"
)

// metricRepository implements the adapter.MetricRepository interface.
type metricRepository struct {
	db *gorm.DB
}

// NewMetricRepository creates a new metric repository instance.
func NewMetricRepository(db *gorm.DB) adapter.MetricRepository {
	return &metricRepository{
		db: db,
	}
}

// Create stores a new metric sample.
func (r *metricRepository) Create(ctx context.Context, entry *entity.MetricEntry) error {
	metricModel := model.MetricEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(metricModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByFilter retrieves metric samples matching the filter, oldest first.
func (r *metricRepository) FindByFilter(ctx context.Context, filter adapter.MetricFilter) ([]*entity.MetricEntry, error) {
	query := r.db.WithContext(ctx).
		Model(&model.MetricEntryModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.Type != nil {
		query = query.Where("type = ?", string(*filter.Type))
	}
	if filter.Since != nil {
		query = query.Where("date >= ?", *filter.Since)
	}

	var metricModels []model.MetricEntryModel
	result := query.Order("date ASC, created_at ASC").Find(&metricModels)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.MetricEntry, len(metricModels))
	for i, mm := range metricModels {
		entries[i] = mm.ToEntity()
	}
	return entries, nil
}
