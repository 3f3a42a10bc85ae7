package handler

import (
	"net/http"

	"bakery/internal/delivery/api/middleware"
	"bakery/internal/delivery/api/response"
	"bakery/internal/domain/entity"
	"bakery/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// UserHandler manages staff accounts.
type UserHandler struct {
	userUC usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{userUC: params.UserUC}
}

// Me returns the signed in user.
func (h *UserHandler) Me(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

// List returns users whose email, name or role contains ?filter.
func (h *UserHandler) List(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	result, err := h.userUC.FindAnyMatching(c.Request().Context(), c.QueryParam("filter"), page)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.PageData[*UserResponse]{
		Items: mapSlice(result.Items, toUserResponse),
		Total: result.Total,
		Page:  result.Page,
		Size:  result.Size,
	}, "")
}

func (h *UserHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.Load(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toUserResponse(user), "")
}

func (h *UserHandler) Create(c echo.Context) error {
	return h.save(c, 0)
}

func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	return h.save(c, id)
}

func (h *UserHandler) save(c echo.Context, id int64) error {
	currentUser, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req UserRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	saved, err := h.userUC.SaveUser(c.Request().Context(), currentUser, &usecase.UserInput{
		ID:        id,
		Version:   req.Version,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      entity.Role(req.Role),
		Password:  req.Password,
	})
	if err != nil {
		return err
	}

	status, message := savedStatus(id, "User")

	return response.Success(c, status, toUserResponse(saved), message)
}

func (h *UserHandler) Delete(c echo.Context) error {
	currentUser, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.userUC.Delete(c.Request().Context(), currentUser, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
