package repositories

import (
	"context"
	"fmt"

	gormModels "infinite-experiment/routeplanner/internal/models/gorm"

	"gorm.io/gorm"
)

type AircraftRepository struct {
	db *gorm.DB
}

// NewAircraftRepository creates a new GORM-based aircraft repository
func NewAircraftRepository(db *gorm.DB) *AircraftRepository {
	return &AircraftRepository{db: db}
}

// GetAll fetches the whole fleet ordered by id
func (r *AircraftRepository) GetAll(ctx context.Context) ([]gormModels.Aircraft, error) {
	var aircraft []gormModels.Aircraft

	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&aircraft).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch aircraft: %w", err)
	}

	return aircraft, nil
}

// GetByID fetches one aircraft. A missing row yields gorm.ErrRecordNotFound.
func (r *AircraftRepository) GetByID(ctx context.Context, id int32) (*gormModels.Aircraft, error) {
	var aircraft gormModels.Aircraft

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&aircraft).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch aircraft %d: %w", id, err)
	}

	return &aircraft, nil
}

// GetRandom picks one aircraft uniformly at random.
func (r *AircraftRepository) GetRandom(ctx context.Context) (*gormModels.Aircraft, error) {
	return r.random(r.db.WithContext(ctx))
}

// GetRandomNotFlown picks one aircraft with flown = 0.
func (r *AircraftRepository) GetRandomNotFlown(ctx context.Context) (*gormModels.Aircraft, error) {
	return r.random(r.db.WithContext(ctx).Where("flown = ?", 0))
}

func (r *AircraftRepository) random(q *gorm.DB) (*gormModels.Aircraft, error) {
	var aircraft gormModels.Aircraft

	// Take avoids First's implicit ORDER BY primary key.
	err := q.Order("RANDOM()").Take(&aircraft).Error
	if err != nil {
		return nil, fmt.Errorf("failed to pick random aircraft: %w", err)
	}

	return &aircraft, nil
}

// CountNotFlown returns the number of aircraft with flown = 0
func (r *AircraftRepository) CountNotFlown(ctx context.Context) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&gormModels.Aircraft{}).
		Where("flown = ?", 0).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count not flown aircraft: %w", err)
	}

	return count, nil
}

// UpdateFlown writes the flown flag and date back. Other columns are left
// untouched.
func (r *AircraftRepository) UpdateFlown(ctx context.Context, aircraft *gormModels.Aircraft) error {
	result := r.db.WithContext(ctx).
		Model(&gormModels.Aircraft{}).
		Where("id = ?", aircraft.ID).
		Updates(map[string]interface{}{
			"flown":      aircraft.Flown,
			"date_flown": aircraft.DateFlown,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update aircraft %d: %w", aircraft.ID, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update aircraft %d: %w", aircraft.ID, gorm.ErrRecordNotFound)
	}

	return nil
}

// MarkAllNotFlown resets every aircraft in one statement
func (r *AircraftRepository) MarkAllNotFlown(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.Aircraft{}).
		Where("1 = 1").
		Updates(map[string]interface{}{
			"flown":      0,
			"date_flown": nil,
		}).Error

	if err != nil {
		return fmt.Errorf("failed to mark all aircraft not flown: %w", err)
	}

	return nil
}

// Create inserts aircraft, used for seeding
func (r *AircraftRepository) Create(ctx context.Context, aircraft ...*gormModels.Aircraft) error {
	if len(aircraft) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).Create(aircraft).Error; err != nil {
		return fmt.Errorf("failed to create aircraft: %w", err)
	}

	return nil
}
