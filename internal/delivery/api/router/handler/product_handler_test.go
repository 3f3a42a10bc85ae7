package handler

import (
	"context"
	"net/http"
	"testing"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	mockUsecase "bakery/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newProductTestServer(t *testing.T) (*mockUsecase.MockProductUsecase, *ProductHandler) {
	productUC := mockUsecase.NewMockProductUsecase(t)

	return productUC, NewProductHandler(ProductHandlerParams{ProductUC: productUC})
}

func TestProductHandler_Create(t *testing.T) {
	productUC, h := newProductTestServer(t)
	productUC.EXPECT().CreateNew(mock.Anything, testAdmin).Return(&entity.Product{}).Once()
	productUC.EXPECT().Save(mock.Anything, testAdmin, mock.MatchedBy(func(p *entity.Product) bool {
		return p.ID == 0 && p.Name == "Croissant" && p.Price == 250
	})).RunAndReturn(func(_ context.Context, _ *entity.User, p *entity.Product) (*entity.Product, error) {
		p.ID = 9
		p.Version = 1

		return p, nil
	}).Once()

	e := newTestEcho(testAdmin)
	e.POST("/products", h.Create)

	rec, env := doRequest(t, e, http.MethodPost, "/products", `{"name":"Croissant","price":"2.50"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Product created", env.Message)
	product := decodeData[ProductResponse](t, env)
	assert.Equal(t, int64(9), product.ID)
	assert.Equal(t, "2.50", product.Price)
	assert.Equal(t, 250, product.PriceCents)
}

func TestProductHandler_Create_InvalidPrice(t *testing.T) {
	_, h := newProductTestServer(t)
	e := newTestEcho(testAdmin)
	e.POST("/products", h.Create)

	rec, env := doRequest(t, e, http.MethodPost, "/products", `{"name":"Croissant","price":"two"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "REQUIRED_FIELDS_MISSING", env.Error.Code)
	assert.Equal(t, "price", env.Error.Details)
}

func TestProductHandler_Update_DuplicateName(t *testing.T) {
	productUC, h := newProductTestServer(t)
	productUC.EXPECT().CreateNew(mock.Anything, testAdmin).Return(&entity.Product{}).Once()
	productUC.EXPECT().Save(mock.Anything, testAdmin, mock.MatchedBy(func(p *entity.Product) bool {
		return p.ID == 4 && p.Version == 2
	})).Return(nil, domainerrors.ErrDuplicateProductName).Once()

	e := newTestEcho(testAdmin)
	e.PUT("/products/:id", h.Update)

	rec, env := doRequest(t, e, http.MethodPut, "/products/4", `{"version":2,"name":"Bagel","price":"1.99"}`)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "USER_FRIENDLY_DATA", env.Error.Code)
	assert.True(t, env.Error.Persistent)
	assert.Equal(t, domainerrors.ErrDuplicateProductName.Message(), env.Message)
}

func TestProductHandler_List(t *testing.T) {
	productUC, h := newProductTestServer(t)
	expectedPage := repository.PageRequest{Page: 1, Size: 10, Sort: []repository.SortOrder{{Field: "price", Descending: true}}}
	productUC.EXPECT().FindAnyMatching(mock.Anything, "crois", expectedPage).
		Return(repository.NewPage([]*entity.Product{{ID: 1, Name: "Croissant", Price: 250}}, 11, expectedPage), nil).Once()

	e := newTestEcho(testBarista)
	e.GET("/products", h.List)

	rec, env := doRequest(t, e, http.MethodGet, "/products?filter=crois&page=1&size=10&sort=-price", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	page := decodeData[struct {
		Items []ProductResponse `json:"items"`
		Total int64             `json:"total"`
		Page  int               `json:"page"`
	}](t, env)
	assert.Equal(t, int64(11), page.Total)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, "Croissant", page.Items[0].Name)
}

func TestProductHandler_Get_BadID(t *testing.T) {
	_, h := newProductTestServer(t)
	e := newTestEcho(testAdmin)
	e.GET("/products/:id", h.Get)

	rec, env := doRequest(t, e, http.MethodGet, "/products/abc", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "HTTP_ERROR", env.Error.Code)
}

func TestProductHandler_Delete(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		productUC, h := newProductTestServer(t)
		productUC.EXPECT().Delete(mock.Anything, testAdmin, int64(3)).Return(nil).Once()
		e := newTestEcho(testAdmin)
		e.DELETE("/products/:id", h.Delete)

		rec, _ := doRequest(t, e, http.MethodDelete, "/products/3", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("referenced by orders", func(t *testing.T) {
		productUC, h := newProductTestServer(t)
		productUC.EXPECT().Delete(mock.Anything, testAdmin, int64(3)).
			Return(domainerrors.ErrOperationPreventedByReferences.WrapMessage("delete product")).Once()
		e := newTestEcho(testAdmin)
		e.DELETE("/products/:id", h.Delete)

		rec, env := doRequest(t, e, http.MethodDelete, "/products/3", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "OPERATION_PREVENTED_BY_REFERENCES", env.Error.Code)
		assert.True(t, env.Error.Persistent)
	})

	t.Run("not signed in", func(t *testing.T) {
		_, h := newProductTestServer(t)
		e := newTestEcho(nil)
		e.DELETE("/products/:id", h.Delete)

		rec, env := doRequest(t, e, http.MethodDelete, "/products/3", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHORIZED", env.Error.Code)
	})
}
