package handler

import (
	"net/http"

	"bakery/internal/delivery/api/middleware"
	"bakery/internal/delivery/api/response"
	"bakery/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PickupLocationHandlerParams holds dependencies for PickupLocationHandler, injected by Fx.
type PickupLocationHandlerParams struct {
	fx.In

	PickupLocationUC usecase.PickupLocationUsecase
}

// PickupLocationHandler serves pickup locations.
type PickupLocationHandler struct {
	locationUC usecase.PickupLocationUsecase
}

// NewPickupLocationHandler is the constructor for PickupLocationHandler
func NewPickupLocationHandler(params PickupLocationHandlerParams) *PickupLocationHandler {
	return &PickupLocationHandler{locationUC: params.PickupLocationUC}
}

func (h *PickupLocationHandler) List(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	result, err := h.locationUC.FindAnyMatching(c.Request().Context(), c.QueryParam("filter"), page)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.PageData[*PickupLocationResponse]{
		Items: mapSlice(result.Items, toPickupLocationResponse),
		Total: result.Total,
		Page:  result.Page,
		Size:  result.Size,
	}, "")
}

// Default returns the location preselected for new orders.
func (h *PickupLocationHandler) Default(c echo.Context) error {
	location, err := h.locationUC.GetDefault(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toPickupLocationResponse(location), "")
}

func (h *PickupLocationHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	location, err := h.locationUC.Load(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toPickupLocationResponse(location), "")
}

func (h *PickupLocationHandler) Create(c echo.Context) error {
	return h.save(c, 0)
}

func (h *PickupLocationHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	return h.save(c, id)
}

func (h *PickupLocationHandler) save(c echo.Context, id int64) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req PickupLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pickup location input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	location := h.locationUC.CreateNew(c.Request().Context(), user)
	location.ID = id
	location.Version = req.Version
	location.Name = req.Name

	saved, err := h.locationUC.Save(c.Request().Context(), user, location)
	if err != nil {
		return err
	}

	status, message := savedStatus(id, "Pickup location")

	return response.Success(c, status, toPickupLocationResponse(saved), message)
}

func (h *PickupLocationHandler) Delete(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.locationUC.Delete(c.Request().Context(), user, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
