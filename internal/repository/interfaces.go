package repository

import (
	"train-component-manager/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TrainComponentRepositoryInterface defines the interface for train component repository operations
type TrainComponentRepositoryInterface interface {
	Create(component *models.TrainComponent) error
	GetByID(id uint) (*models.TrainComponent, error)
	List(searchTerm string, limit, offset int) ([]models.TrainComponent, int64, error)
	UpdateQuantity(id uint, quantity int, expectedVersion int64) error
	Delete(id uint) error
	Exists(id uint) (bool, error)
}
