package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"targetrack/internal/services"
)

// ProductHandler handles product-related requests.
type ProductHandler struct {
	productService services.ProductServicer
	auditService   services.AuditServicer
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService services.ProductServicer, auditService services.AuditServicer) *ProductHandler {
	return &ProductHandler{productService: productService, auditService: auditService}
}

// CreateProductRequest represents the request payload for creating a product.
type CreateProductRequest struct {
	Name       string `json:"name" binding:"required,max=100"`
	CategoryID string `json:"category_id" binding:"required,uuid"`
}

// UpdateProductRequest represents a partial product update.
type UpdateProductRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=100"`
	CategoryID *string `json:"category_id" binding:"omitempty,uuid"`
}

// CreateProduct handles the creation of a new product
// @Summary     Create a product
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       request body CreateProductRequest true "Product details"
// @Success     201 {object} models.Product
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	product, err := h.productService.CreateProduct(req.Name, req.CategoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_PRODUCT", "product", product.ID, c.ClientIP(),
		map[string]interface{}{"name": product.Name, "category_id": product.CategoryID})

	c.JSON(http.StatusCreated, product)
}

// GetProducts lists products with their category
// @Summary     List products
// @Tags        products
// @Produce     json
// @Success     200 {array} models.Product
// @Router      /products [get]
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.productService.GetProducts()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByID returns one product
// @Summary     Get product
// @Tags        products
// @Produce     json
// @Param       id path string true "Product ID"
// @Success     200 {object} models.Product
// @Failure     404 {object} ErrorResponse "Product not found"
// @Router      /products/{id} [get]
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	product, err := h.productService.GetProductByID(id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateProduct renames a product or moves it to another category
// @Summary     Update product
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path string               true "Product ID"
// @Param       request body UpdateProductRequest true "Fields to change"
// @Success     200 {object} models.Product
// @Failure     404 {object} ErrorResponse "Product or category not found"
// @Router      /products/{id} [patch]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	product, err := h.productService.UpdateProduct(id, req.Name, req.CategoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_PRODUCT", "product", id, c.ClientIP(), nil)
	c.JSON(http.StatusOK, product)
}

// DeleteProduct deletes a product no target refers to
// @Summary     Delete product
// @Tags        products
// @Produce     json
// @Param       id path string true "Product ID"
// @Success     200 {object} map[string]string
// @Failure     404 {object} ErrorResponse "Product not found"
// @Failure     409 {object} ErrorResponse "Product is referenced by targets"
// @Router      /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.productService.DeleteProduct(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_PRODUCT", "product", id, c.ClientIP(), nil)
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
