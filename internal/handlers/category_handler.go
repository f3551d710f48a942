package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"targetrack/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
	auditService    services.AuditServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer, auditService services.AuditServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, auditService: auditService}
}

// CategoryRequest is the payload for creating or renaming a category.
type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// CreateCategory handles the creation of a new category
// @Summary     Create a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       request body CategoryRequest true "Category details"
// @Success     201 {object} models.Category
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	category, err := h.categoryService.CreateCategory(req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_CATEGORY", "category", category.ID, c.ClientIP(),
		map[string]interface{}{"name": category.Name})

	c.JSON(http.StatusCreated, category)
}

// GetCategories lists categories with their products
// @Summary     List categories
// @Tags        categories
// @Produce     json
// @Success     200 {array} models.Category
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategoryByID returns one category with its products
// @Summary     Get category
// @Tags        categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} models.Category
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategoryByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// UpdateCategory renames a category
// @Summary     Rename category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id      path string          true "Category ID"
// @Param       request body CategoryRequest true "New name"
// @Success     200 {object} models.Category
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Duplicate name"
// @Router      /categories/{id} [patch]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	category, err := h.categoryService.UpdateCategory(id, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_CATEGORY", "category", id, c.ClientIP(),
		map[string]interface{}{"name": category.Name})
	c.JSON(http.StatusOK, category)
}

// DeleteCategory deletes a category that has no products
// @Summary     Delete category
// @Tags        categories
// @Produce     json
// @Param       id path string true "Category ID"
// @Success     200 {object} map[string]string
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Category still has products"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_CATEGORY", "category", id, c.ClientIP(), nil)
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
