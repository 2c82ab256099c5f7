package repository

import (
	"errors"

	"train-component-manager/internal/database/models"
	apperrors "train-component-manager/internal/errors"

	"gorm.io/gorm"
)

// TrainComponentRepository handles database operations for train components.
// It owns data-level integrity only; business rules live in the service layer.
type TrainComponentRepository struct {
	db *gorm.DB
}

// NewTrainComponentRepository creates a new train component repository
func NewTrainComponentRepository(db *gorm.DB) *TrainComponentRepository {
	return &TrainComponentRepository{db: db}
}

// Create inserts a new component. A colliding unique_number is reported as
// apperrors.ErrUniqueNumberExists so callers can map it to a conflict response.
func (r *TrainComponentRepository) Create(component *models.TrainComponent) error {
	if err := r.db.Create(component).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrUniqueNumberExists
		}
		return err
	}
	return nil
}

// GetByID retrieves a component by ID
func (r *TrainComponentRepository) GetByID(id uint) (*models.TrainComponent, error) {
	var component models.TrainComponent
	err := r.db.First(&component, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &component, nil
}

// List retrieves components with pagination and an optional case-insensitive
// substring filter on name or unique_number. The returned total reflects the
// filtered set. Ordering is stable by id ascending so pages do not overlap or
// skip rows when concurrent writes land between page fetches.
func (r *TrainComponentRepository) List(searchTerm string, limit, offset int) ([]models.TrainComponent, int64, error) {
	var components []models.TrainComponent
	var total int64

	query := r.db.Model(&models.TrainComponent{})
	if searchTerm != "" {
		pattern := "%" + searchTerm + "%"
		query = query.Where("name ILIKE ? OR unique_number ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("id ASC").Limit(limit).Offset(offset).Find(&components).Error
	if err != nil {
		return nil, 0, err
	}

	return components, total, nil
}

// UpdateQuantity applies a conditional quantity write: the row is updated only
// if it still carries expectedVersion. On a stale version nothing is written
// and apperrors.ErrTrainComponentConflict is returned. A stale read must never
// clobber a racing write, so this single guarded statement is the only way
// quantity is ever persisted.
func (r *TrainComponentRepository) UpdateQuantity(id uint, quantity int, expectedVersion int64) error {
	res := r.db.Model(&models.TrainComponent{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]interface{}{
			"quantity": quantity,
			"version":  gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrTrainComponentConflict
	}
	return nil
}

// Delete removes a component by ID. A missing row is reported as
// gorm.ErrRecordNotFound; a foreign-key violation (no referencing entities are
// modeled yet, but the store must be able to report one) as
// apperrors.ErrTrainComponentInUse.
func (r *TrainComponentRepository) Delete(id uint) error {
	res := r.db.Delete(&models.TrainComponent{}, "id = ?", id)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrForeignKeyViolated) {
			return apperrors.ErrTrainComponentInUse
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Exists checks if a component exists by ID
func (r *TrainComponentRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.TrainComponent{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
