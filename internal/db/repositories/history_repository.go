package repositories

import (
	"context"
	"fmt"

	gormModels "infinite-experiment/routeplanner/internal/models/gorm"

	"gorm.io/gorm"
)

// HistoryRepository handles flight history operations
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Insert persists a history row and fills in its id
func (r *HistoryRepository) Insert(ctx context.Context, entry *gormModels.History) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to insert history: %w", err)
	}
	return nil
}

// GetAll returns history most recent first. Entries on the same date are
// ordered by descending id so the newest insert comes first.
func (r *HistoryRepository) GetAll(ctx context.Context) ([]gormModels.History, error) {
	var history []gormModels.History

	err := r.db.WithContext(ctx).
		Order("date DESC").
		Order("id DESC").
		Find(&history).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch history: %w", err)
	}

	return history, nil
}
