package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/rentfolio/backend/internal/application/adapter"
	"github.com/rentfolio/backend/internal/domain/entity"
	"github.com/rentfolio/backend/internal/integration/persistence/model"
)

// snapshotRepository implements the adapter.SnapshotRepository interface.
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot repository instance.
func NewSnapshotRepository(db *gorm.DB) adapter.SnapshotRepository {
	return &snapshotRepository{
		db: db,
	}
}

// Create stores a new snapshot.
func (r *snapshotRepository) Create(ctx context.Context, snapshot *entity.PropertySnapshot) error {
	snapshotModel := model.PropertySnapshotFromEntity(snapshot)
	result := r.db.WithContext(ctx).Create(snapshotModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByProperties retrieves snapshots for the given properties captured
// at or after since, oldest first.
func (r *snapshotRepository) FindByProperties(ctx context.Context, propertyIDs []uuid.UUID, since time.Time) ([]*entity.PropertySnapshot, error) {
	if len(propertyIDs) == 0 {
		return nil, nil
	}

	var snapshotModels []model.PropertySnapshotModel
	result := r.db.WithContext(ctx).
		Where("property_id IN ?", propertyIDs).
		Where("captured_at >= ?", since).
		Order("captured_at ASC").
		Find(&snapshotModels)
	if result.Error != nil {
		return nil, result.Error
	}

	snapshots := make([]*entity.PropertySnapshot, len(snapshotModels))
	for i, sm := range snapshotModels {
		snapshots[i] = sm.ToEntity()
	}
	return snapshots, nil
}
