package handlers

import (
	"net/http"
	"strconv"

	apperrors "train-component-manager/internal/errors"
	"train-component-manager/internal/service"

	"github.com/gin-gonic/gin"
)

// TrainComponentHandler handles HTTP requests for train component operations
type TrainComponentHandler struct {
	componentService service.TrainComponentServiceInterface
}

// NewTrainComponentHandler creates a new train component handler
func NewTrainComponentHandler(componentService service.TrainComponentServiceInterface) *TrainComponentHandler {
	return &TrainComponentHandler{
		componentService: componentService,
	}
}

// UpdateQuantityRequest represents the body of a quantity update
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// ListTrainComponents handles GET /train-components
// @Summary List train components
// @Description Get train components with pagination and an optional case-insensitive search over name and unique number
// @Tags train-components
// @Accept json
// @Produce json
// @Param search_term query string false "Substring matched against name or unique number"
// @Param page_number query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(10)
// @Success 200 {object} service.TrainComponentListResponse "Successfully retrieved train components"
// @Failure 400 {object} map[string]interface{} "Invalid pagination parameters"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /train-components [get]
func (h *TrainComponentHandler) ListTrainComponents(c *gin.Context) {
	searchTerm := c.Query("search_term")
	pageNumber, err := strconv.Atoi(c.DefaultQuery("page_number", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page_number"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page_size"})
		return
	}

	resp, err := h.componentService.ListComponents(searchTerm, pageNumber, pageSize)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list train components", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTrainComponent handles GET /train-components/:id
// @Summary Get a train component
// @Description Get a single train component by its ID
// @Tags train-components
// @Accept json
// @Produce json
// @Param id path int true "Train component ID"
// @Success 200 {object} service.TrainComponentResponse "Successfully retrieved train component"
// @Failure 400 {object} map[string]interface{} "Invalid component ID"
// @Failure 404 {object} map[string]interface{} "Train component not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /train-components/{id} [get]
func (h *TrainComponentHandler) GetTrainComponent(c *gin.Context) {
	id, ok := parseComponentID(c)
	if !ok {
		return
	}

	resp, err := h.componentService.GetComponentByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get train component", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateTrainComponent handles POST /train-components
// @Summary Create a train component
// @Description Create a new train component. Quantity is required and positive for quantity-assignable components, and discarded otherwise.
// @Tags train-components
// @Accept json
// @Produce json
// @Param component body service.CreateTrainComponentRequest true "Train component to create"
// @Success 201 {object} service.TrainComponentResponse "Train component created"
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 409 {object} map[string]interface{} "A component with this unique number already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /train-components [post]
func (h *TrainComponentHandler) CreateTrainComponent(c *gin.Context) {
	var req service.CreateTrainComponentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.componentService.CreateComponent(&req)
	if err != nil {
		if apperrors.IsAlreadyExists(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create train component", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UpdateTrainComponentQuantity handles PUT /train-components/:id/quantity
// @Summary Update the quantity of a train component
// @Description Set the quantity of a quantity-assignable train component. A concurrent modification of the same row yields 409 so the caller can retry.
// @Tags train-components
// @Accept json
// @Produce json
// @Param id path int true "Train component ID"
// @Param quantity body UpdateQuantityRequest true "New quantity"
// @Success 204 "Quantity updated"
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 404 {object} map[string]interface{} "Train component not found"
// @Failure 409 {object} map[string]interface{} "Train component was modified concurrently"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /train-components/{id}/quantity [put]
func (h *TrainComponentHandler) UpdateTrainComponentQuantity(c *gin.Context) {
	id, ok := parseComponentID(c)
	if !ok {
		return
	}

	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if err := h.componentService.UpdateQuantity(id, req.Quantity); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update quantity", "details": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteTrainComponent handles DELETE /train-components/:id
// @Summary Delete a train component
// @Description Delete a train component by its ID
// @Tags train-components
// @Accept json
// @Produce json
// @Param id path int true "Train component ID"
// @Success 204 "Train component deleted"
// @Failure 400 {object} map[string]interface{} "Invalid component ID"
// @Failure 404 {object} map[string]interface{} "Train component not found"
// @Failure 409 {object} map[string]interface{} "Train component is referenced by other entities"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /train-components/{id} [delete]
func (h *TrainComponentHandler) DeleteTrainComponent(c *gin.Context) {
	id, ok := parseComponentID(c)
	if !ok {
		return
	}

	if err := h.componentService.DeleteComponent(id); err != nil {
		switch {
		case apperrors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsReference(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete train component", "details": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// parseComponentID parses the :id path parameter and writes a 400 on failure.
func parseComponentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid component ID"})
		return 0, false
	}
	return uint(id), true
}
