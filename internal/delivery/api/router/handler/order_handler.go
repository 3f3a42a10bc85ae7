package handler

import (
	"net/http"
	"strconv"
	"time"

	"bakery/config"
	"bakery/internal/delivery/api/middleware"
	"bakery/internal/delivery/api/response"
	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/service"
	"bakery/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC   usecase.OrderUsecase
	QRCodeSvc service.QRCodeService
	Config    *config.Config
}

// OrderHandler serves the storefront, order editing and the dashboard.
type OrderHandler struct {
	orderUC   usecase.OrderUsecase
	qrcodeSvc service.QRCodeService
	location  *time.Location
	now       func() time.Time
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC:   params.OrderUC,
		qrcodeSvc: params.QRCodeSvc,
		location:  params.Config.Bakery.Location(),
		now:       time.Now,
	}
}

// Storefront lists orders grouped into date bands.
// Query: filter, showPrevious, page, size.
func (h *OrderHandler) Storefront(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}
	showPrevious := false
	if raw := c.QueryParam("showPrevious"); raw != "" {
		if showPrevious, err = strconv.ParseBool(raw); err != nil {
			return errInvalidParam
		}
	}

	result, err := h.orderUC.Storefront(c.Request().Context(), &usecase.StorefrontQuery{
		Filter:       c.QueryParam("filter"),
		ShowPrevious: showPrevious,
		Page:         page,
	})
	if err != nil {
		return err
	}

	items := make([]*StorefrontItemResponse, 0, len(result.Items))
	for _, item := range result.Items {
		items = append(items, &StorefrontItemResponse{
			Order:        toOrderResponse(item.Order),
			Header:       item.Header,
			FirstInGroup: item.FirstInGroup,
		})
	}

	return response.Success(c, http.StatusOK, response.PageData[*StorefrontItemResponse]{
		Items: items,
		Total: result.Total,
		Page:  result.Page,
		Size:  result.Size,
	}, "")
}

// Search lists orders whose customer name contains ?filter and that are due
// after ?after (YYYY-MM-DD) when given.
func (h *OrderHandler) Search(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	var after *time.Time
	if raw := c.QueryParam("after"); raw != "" {
		parsed, err := time.Parse(entity.DueDateLayout, raw)
		if err != nil {
			return errInvalidParam
		}
		after = &parsed
	}

	result, err := h.orderUC.FindAnyMatchingAfterDueDate(c.Request().Context(), c.QueryParam("filter"), after, page)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.PageData[*OrderResponse]{
		Items: mapSlice(result.Items, toOrderResponse),
		Total: result.Total,
		Page:  result.Page,
		Size:  result.Size,
	}, "")
}

// Upcoming lists orders due today or later.
func (h *OrderHandler) Upcoming(c echo.Context) error {
	page, err := parsePage(c)
	if err != nil {
		return err
	}

	result, err := h.orderUC.FindAnyMatchingStartingToday(c.Request().Context(), page)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, response.PageData[*OrderResponse]{
		Items: mapSlice(result.Items, toOrderResponse),
		Total: result.Total,
		Page:  result.Page,
		Size:  result.Size,
	}, "")
}

// New returns an unsaved order template with the default due date and time.
func (h *OrderHandler) New(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toOrderResponse(h.orderUC.CreateNew(c.Request().Context(), user)), "")
}

func (h *OrderHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	order, err := h.orderUC.Load(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "")
}

func (h *OrderHandler) Create(c echo.Context) error {
	return h.save(c, 0)
}

func (h *OrderHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	return h.save(c, id)
}

func (h *OrderHandler) save(c echo.Context, id int64) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}

	var req OrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	input, err := req.toInput(id)
	if err != nil {
		return domainerrors.ErrRequiredFieldsMissing.WithDetails("dueDate")
	}

	order, err := h.orderUC.Save(c.Request().Context(), user, input)
	if err != nil {
		return err
	}

	status, message := savedStatus(id, "Order")

	return response.Success(c, status, toOrderResponse(order), message)
}

func (h *OrderHandler) Delete(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.orderUC.Delete(c.Request().Context(), user, id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// AddComment appends a free text history entry.
func (h *OrderHandler) AddComment(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.orderUC.AddComment(c.Request().Context(), user, id, &usecase.CommentInput{
		Message: req.Message,
		Version: req.Version,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Comment added")
}

// ChangeState moves an order to a new state.
func (h *OrderHandler) ChangeState(c echo.Context) error {
	user, err := middleware.CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req StateChangeRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid state input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.orderUC.ChangeState(c.Request().Context(), user, id, &usecase.StateChangeInput{
		State:   entity.OrderState(req.State),
		Version: req.Version,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "State changed")
}

// QRCode renders the pickup QR code of an existing order as PNG.
func (h *OrderHandler) QRCode(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if _, err := h.orderUC.Load(c.Request().Context(), id); err != nil {
		return err
	}

	png, err := h.qrcodeSvc.GeneratePickupQR(id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Dashboard returns the statistics of ?month and ?year, defaulting to the
// current month in the bakery time zone.
func (h *OrderHandler) Dashboard(c echo.Context) error {
	now := h.now().In(h.location)

	month, err := parseOptionalInt(c, "month", int(now.Month()))
	if err != nil {
		return err
	}
	year, err := parseOptionalInt(c, "year", now.Year())
	if err != nil {
		return err
	}
	if month < 1 || month > 12 || year < 1 {
		return errInvalidParam
	}

	data, err := h.orderUC.GetDashboardData(c.Request().Context(), month, year)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, data, "")
}
