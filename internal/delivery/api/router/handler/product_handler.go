package handler

import (
	"net/http"

	"bakery/internal/delivery/api/middleware"
	"bakery/internal/delivery/api/response"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/usecase"
	"bakery/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
}

// ProductHandler serves the product catalogue.
type ProductHandler struct {
	productUC usecase.ProductUsecase
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{productUC: params.ProductUC}
}

// List returns products whose name contains ?filter.
func (h *ProductHandler) List(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	result, err := h.productUC.FindAnyMatching(c.Request().Context(), c.QueryParam("filter"), page)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.PageData[*ProductResponse]{
		Items: mapSlice(result.Items, toProductResponse),
		Total: result.Total,
		Page:  result.Page,
		Size:  result.Size,
	}, "")
}

// Get returns one product.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	product, err := h.productUC.Load(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toProductResponse(product), "")
}

// Create adds a product.
func (h *ProductHandler) Create(c echo.Context) error {
	return h.save(c, 0)
}

// Update edits a product.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	return h.save(c, id)
}

func (h *ProductHandler) save(c echo.Context, id int64) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	price, err := util.ParsePrice(req.Price)
	if err != nil {
		return domainerrors.ErrRequiredFieldsMissing.WithDetails("price")
	}

	product := h.productUC.CreateNew(c.Request().Context(), user)
	product.ID = id
	product.Version = req.Version
	product.Name = req.Name
	product.Price = price

	saved, err := h.productUC.Save(c.Request().Context(), user, product)
	if err != nil {
		return err
	}

	status, message := savedStatus(id, "Product")

	return response.Success(c, status, toProductResponse(saved), message)
}

// Delete removes a product.
func (h *ProductHandler) Delete(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.productUC.Delete(c.Request().Context(), user, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// savedStatus is 201 for a create and 200 for an update.
func savedStatus(id int64, kind string) (int, string) {
	if id == 0 {
		return http.StatusCreated, kind + " created"
	}

	return http.StatusOK, kind + " updated"
}
