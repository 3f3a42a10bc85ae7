package handler

import (
	"net/http"
	"testing"

	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	mockUsecase "bakery/internal/mocks/usecase"
	"bakery/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newUserTestServer(t *testing.T) (*mockUsecase.MockUserUsecase, *UserHandler) {
	userUC := mockUsecase.NewMockUserUsecase(t)

	return userUC, NewUserHandler(UserHandlerParams{UserUC: userUC})
}

func TestUserHandler_Create(t *testing.T) {
	userUC, h := newUserTestServer(t)
	userUC.EXPECT().SaveUser(mock.Anything, testAdmin, &usecase.UserInput{
		Email:     "new@example.com",
		FirstName: "Nia",
		LastName:  "New",
		Role:      entity.RoleBaker,
		Password:  "s3cret",
	}).Return(&entity.User{ID: 7, Version: 1, Email: "new@example.com", FirstName: "Nia", LastName: "New", Role: entity.RoleBaker, PasswordHash: "$2a$hash"}, nil).Once()

	e := newTestEcho(testAdmin)
	e.POST("/users", h.Create)

	rec, env := doRequest(t, e, http.MethodPost, "/users",
		`{"email":"new@example.com","firstName":"Nia","lastName":"New","role":"baker","password":"s3cret"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$hash")
	user := decodeData[UserResponse](t, env)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "baker", user.Role)
}

func TestUserHandler_Create_UnknownRole(t *testing.T) {
	_, h := newUserTestServer(t)
	e := newTestEcho(testAdmin)
	e.POST("/users", h.Create)

	rec, env := doRequest(t, e, http.MethodPost, "/users",
		`{"email":"new@example.com","firstName":"Nia","lastName":"New","role":"owner","password":"s3cret"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "REQUIRED_FIELDS_MISSING", env.Error.Code)
}

func TestUserHandler_Delete_OwnAccount(t *testing.T) {
	userUC, h := newUserTestServer(t)
	userUC.EXPECT().Delete(mock.Anything, testAdmin, testAdmin.ID).
		Return(domainerrors.ErrDeleteOwnAccount.WrapMessage("delete user")).Once()

	e := newTestEcho(testAdmin)
	e.DELETE("/users/:id", h.Delete)

	rec, env := doRequest(t, e, http.MethodDelete, "/users/1", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "You cannot delete your own account", env.Message)
	assert.True(t, env.Error.Persistent)
}

func TestUserHandler_Me(t *testing.T) {
	_, h := newUserTestServer(t)
	e := newTestEcho(testBarista)
	e.GET("/auth/me", h.Me)

	rec, env := doRequest(t, e, http.MethodGet, "/auth/me", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "barista@example.com", decodeData[UserResponse](t, env).Email)
}

func TestPickupLocationHandler_Default(t *testing.T) {
	locationUC := mockUsecase.NewMockPickupLocationUsecase(t)
	locationUC.EXPECT().GetDefault(mock.Anything).Return(&entity.PickupLocation{ID: 1, Name: "Bakery"}, nil).Once()
	h := NewPickupLocationHandler(PickupLocationHandlerParams{PickupLocationUC: locationUC})

	e := newTestEcho(testBarista)
	e.GET("/pickup-locations/default", h.Default)

	rec, env := doRequest(t, e, http.MethodGet, "/pickup-locations/default", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bakery", decodeData[PickupLocationResponse](t, env).Name)
}

func TestPickupLocationHandler_Create(t *testing.T) {
	locationUC := mockUsecase.NewMockPickupLocationUsecase(t)
	locationUC.EXPECT().CreateNew(mock.Anything, testAdmin).Return(&entity.PickupLocation{}).Once()
	locationUC.EXPECT().Save(mock.Anything, testAdmin, &entity.PickupLocation{Name: "Store"}).
		Return(&entity.PickupLocation{ID: 2, Version: 1, Name: "Store"}, nil).Once()
	h := NewPickupLocationHandler(PickupLocationHandlerParams{PickupLocationUC: locationUC})

	e := newTestEcho(testAdmin)
	e.POST("/pickup-locations", h.Create)

	rec, env := doRequest(t, e, http.MethodPost, "/pickup-locations", `{"name":"Store"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(2), decodeData[PickupLocationResponse](t, env).ID)
}
