package service

import (
	"errors"
	"fmt"

	"train-component-manager/internal/database/models"
	apperrors "train-component-manager/internal/errors"
	"train-component-manager/internal/logger"
	"train-component-manager/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// MaxPageSize caps the number of items a single list request can return.
const MaxPageSize = 100

// TrainComponentService handles business logic for train components
type TrainComponentService struct {
	repo      repository.TrainComponentRepositoryInterface
	validator *validator.Validate
}

// Ensure TrainComponentService implements TrainComponentServiceInterface
var _ TrainComponentServiceInterface = (*TrainComponentService)(nil)

// NewTrainComponentService creates a new train component service
func NewTrainComponentService(repo repository.TrainComponentRepositoryInterface, validator *validator.Validate) *TrainComponentService {
	return &TrainComponentService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTrainComponentRequest represents the data needed to create a train component
type CreateTrainComponentRequest struct {
	Name              string `json:"name" validate:"required,min=1,max=100"`
	UniqueNumber      string `json:"unique_number" validate:"required,min=1,max=50"`
	CanAssignQuantity bool   `json:"can_assign_quantity"`
	Quantity          *int   `json:"quantity"`
}

// TrainComponentResponse represents the response data for a train component
type TrainComponentResponse struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	UniqueNumber      string `json:"unique_number"`
	CanAssignQuantity bool   `json:"can_assign_quantity"`
	Quantity          *int   `json:"quantity"`
}

// TrainComponentListResponse represents a paginated list of train components
type TrainComponentListResponse struct {
	Items      []TrainComponentResponse `json:"items"`
	TotalCount int64                    `json:"total_count"`
	PageNumber int                      `json:"page_number"`
	PageSize   int                      `json:"page_size"`
	TotalPages int                      `json:"total_pages"`
}

// CreateComponent creates a new train component.
// Quantity is required and positive when the component is quantity-assignable;
// otherwise any supplied quantity is discarded rather than rejected.
func (s *TrainComponentService) CreateComponent(req *CreateTrainComponentRequest) (*TrainComponentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, translateValidationError(err)
	}

	if req.CanAssignQuantity {
		if req.Quantity == nil || *req.Quantity < 1 {
			return nil, apperrors.NewValidationError("quantity", "quantity must be a positive integer when can_assign_quantity is true")
		}
	} else {
		req.Quantity = nil
	}

	component := &models.TrainComponent{
		Name:              req.Name,
		UniqueNumber:      req.UniqueNumber,
		CanAssignQuantity: req.CanAssignQuantity,
		Quantity:          req.Quantity,
	}

	if err := s.repo.Create(component); err != nil {
		if apperrors.IsAlreadyExists(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create train component: %w", err)
	}

	logger.New().WithField("component_id", component.ID).Infof("Created train component %s", component.UniqueNumber)
	return s.toResponse(component), nil
}

// GetComponentByID retrieves a train component by its ID
func (s *TrainComponentService) GetComponentByID(id uint) (*TrainComponentResponse, error) {
	component, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTrainComponentNotFound
		}
		return nil, fmt.Errorf("failed to get train component: %w", err)
	}
	return s.toResponse(component), nil
}

// ListComponents retrieves train components with pagination and an optional
// search term matched against name or unique number. Non-positive paging
// parameters are rejected, not clamped upward.
func (s *TrainComponentService) ListComponents(searchTerm string, pageNumber, pageSize int) (*TrainComponentListResponse, error) {
	if pageNumber < 1 || pageSize < 1 {
		return nil, apperrors.ErrInvalidPaginationParams
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	offset := (pageNumber - 1) * pageSize
	components, total, err := s.repo.List(searchTerm, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list train components: %w", err)
	}

	items := make([]TrainComponentResponse, len(components))
	for i, c := range components {
		items[i] = *s.toResponse(&c)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))

	return &TrainComponentListResponse{
		Items:      items,
		TotalCount: total,
		PageNumber: pageNumber,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

// UpdateQuantity sets the quantity of a quantity-assignable component using a
// conditional write guarded by the version read at fetch time. A lost race is
// surfaced to the caller rather than retried internally: a blind retry would
// re-apply the assignability check against now-stale state.
func (s *TrainComponentService) UpdateQuantity(id uint, quantity int) error {
	if quantity < 1 {
		return apperrors.ErrQuantityNotPositive
	}

	component, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTrainComponentNotFound
		}
		return fmt.Errorf("failed to get train component: %w", err)
	}

	if !component.CanAssignQuantity {
		return apperrors.ErrQuantityNotAssignable
	}

	err = s.repo.UpdateQuantity(id, quantity, component.Version)
	if err != nil {
		if apperrors.IsConflict(err) {
			// Distinguish a concurrent delete from a concurrent modification:
			// gone means NotFound, still present means the caller lost the race.
			exists, existsErr := s.repo.Exists(id)
			if existsErr != nil {
				return fmt.Errorf("failed to re-check train component after conflict: %w", existsErr)
			}
			if !exists {
				return apperrors.ErrTrainComponentNotFound
			}
			logger.New().WithField("component_id", id).Warn("Quantity update lost a concurrent modification race")
			return apperrors.ErrTrainComponentConflict
		}
		return fmt.Errorf("failed to update quantity: %w", err)
	}

	return nil
}

// DeleteComponent removes a train component by its ID
func (s *TrainComponentService) DeleteComponent(id uint) error {
	err := s.repo.Delete(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTrainComponentNotFound
		}
		if apperrors.IsReference(err) {
			return err
		}
		return fmt.Errorf("failed to delete train component: %w", err)
	}
	return nil
}

// translateValidationError converts a validator failure into the application's
// validation error type so callers can map it to a client error.
func translateValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
	}
	return fmt.Errorf("validation failed: %w", err)
}

// toResponse converts a TrainComponent model to API response
func (s *TrainComponentService) toResponse(component *models.TrainComponent) *TrainComponentResponse {
	return &TrainComponentResponse{
		ID:                component.ID,
		Name:              component.Name,
		UniqueNumber:      component.UniqueNumber,
		CanAssignQuantity: component.CanAssignQuantity,
		Quantity:          component.Quantity,
	}
}
