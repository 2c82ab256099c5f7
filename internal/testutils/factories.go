package testutils

import (
	"fmt"
	"math/rand"

	"train-component-manager/internal/database/models"
)

// TrainComponentFactory provides methods to create test TrainComponent data
type TrainComponentFactory struct{}

// NewTrainComponentFactory creates a new TrainComponentFactory
func NewTrainComponentFactory() *TrainComponentFactory {
	return &TrainComponentFactory{}
}

// Create creates a quantity-assignable test component with a random unique number
func (f *TrainComponentFactory) Create() *models.TrainComponent {
	return &models.TrainComponent{
		Name:              "Test Component",
		UniqueNumber:      fmt.Sprintf("TST%06d", rand.Intn(1000000)),
		CanAssignQuantity: true,
	}
}

// WithName sets a custom name for the component
func (f *TrainComponentFactory) WithName(name string) *models.TrainComponent {
	component := f.Create()
	component.Name = name
	return component
}

// WithUniqueNumber sets a custom unique number for the component
func (f *TrainComponentFactory) WithUniqueNumber(uniqueNumber string) *models.TrainComponent {
	component := f.Create()
	component.UniqueNumber = uniqueNumber
	return component
}

// NonAssignable creates a component whose quantity can never be set
func (f *TrainComponentFactory) NonAssignable() *models.TrainComponent {
	component := f.Create()
	component.CanAssignQuantity = false
	return component
}

// WithQuantity creates a quantity-assignable component with a starting quantity
func (f *TrainComponentFactory) WithQuantity(quantity int) *models.TrainComponent {
	component := f.Create()
	component.Quantity = &quantity
	return component
}

// FactorySet bundles all factories for convenient use in tests
type FactorySet struct {
	TrainComponent *TrainComponentFactory
}

// NewFactorySet creates a new FactorySet
func NewFactorySet() *FactorySet {
	return &FactorySet{
		TrainComponent: NewTrainComponentFactory(),
	}
}
