package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rasheduzzaman2024/polashtoli/internal/model"
	"github.com/rasheduzzaman2024/polashtoli/pkg/logger"
	"github.com/rasheduzzaman2024/polashtoli/prometheus"
)

// ProductRequest defines the structure for product creation/update requests.
// Price and stock accept either JSON numbers or numeric strings, the way the
// admin form submits them, and are coerced before storage.
type ProductRequest struct {
	Name        string      `json:"name"`
	Price       json.Number `json:"price"`
	Category    string      `json:"category"`
	Image       string      `json:"image"`
	Stock       json.Number `json:"stock"`
	Description string      `json:"description"`
}

// draft validates the request and coerces the numeric fields.
func (r *ProductRequest) draft() (model.ProductDraft, bool) {
	if r.Name == "" || r.Price == "" || r.Category == "" || r.Stock == "" {
		return model.ProductDraft{}, false
	}
	price, err := r.Price.Float64()
	if err != nil {
		return model.ProductDraft{}, false
	}
	stock, err := r.Stock.Int64()
	if err != nil {
		return model.ProductDraft{}, false
	}
	return model.ProductDraft{
		Name:        r.Name,
		Price:       price,
		Category:    r.Category,
		Image:       r.Image,
		Stock:       int(stock),
		Description: r.Description,
	}, true
}

// ListProducts returns the catalog filtered by the optional q parameter.
func (h *Handler) ListProducts(c echo.Context) error {
	if _, err := sessionOr401(c); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.catalog.Search(c.QueryParam("q")))
}

// CreateProduct handles creating a new product. Admin only.
func (h *Handler) CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)

	sess, err := adminOr403(c)
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	draft, ok := req.draft()
	if !ok {
		log.Warn("Incomplete product data", zap.String("name", req.Name))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, price, category and stock are required"})
	}

	product := h.catalog.Create(draft)
	sess.EndEdit()

	prometheus.RecordProductOperation("create")
	log.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Float64("price", product.Price))

	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles updating an existing product in place. Unknown ids
// are a silent no-op. Admin only.
func (h *Handler) UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)

	sess, err := adminOr403(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid request data", zap.Int64("product_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}

	draft, ok := req.draft()
	if !ok {
		log.Warn("Incomplete product data", zap.Int64("product_id", id))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, price, category and stock are required"})
	}

	product := model.Product{
		ID:          id,
		Name:        draft.Name,
		Price:       draft.Price,
		Category:    draft.Category,
		Image:       draft.Image,
		Stock:       draft.Stock,
		Description: draft.Description,
	}
	h.catalog.Update(product)
	sess.EndEdit()

	prometheus.RecordProductOperation("update")
	log.Info("Product updated",
		zap.Int64("product_id", id),
		zap.String("name", product.Name),
		zap.Float64("price", product.Price))

	return c.JSON(http.StatusOK, product)
}

// DeleteProduct removes a product from the catalog. Unknown ids are a silent
// no-op. Admin only.
func (h *Handler) DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)

	if _, err := adminOr403(c); err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
	}

	h.catalog.Delete(id)

	prometheus.RecordProductOperation("delete")
	log.Info("Product deleted", zap.Int64("product_id", id))

	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}

// BeginEdit opens the product form: with a product_id for editing an
// existing product, without one for creating. Admin only.
func (h *Handler) BeginEdit(c echo.Context) error {
	log := logger.FromContext(c)

	sess, err := adminOr403(c)
	if err != nil {
		return err
	}

	var req struct {
		ProductID int64 `json:"product_id"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
	}

	if req.ProductID == 0 {
		sess.BeginEdit(nil)
	} else {
		product, found := h.catalog.FindByID(req.ProductID)
		if !found {
			log.Warn("Product not found for editing", zap.Int64("product_id", req.ProductID))
			return c.JSON(http.StatusOK, sess.Editing())
		}
		sess.BeginEdit(&product)
	}

	return c.JSON(http.StatusOK, sess.Editing())
}

// CancelEdit closes the product form without saving. Admin only.
func (h *Handler) CancelEdit(c echo.Context) error {
	sess, err := adminOr403(c)
	if err != nil {
		return err
	}

	sess.EndEdit()
	return c.JSON(http.StatusOK, sess.Editing())
}
