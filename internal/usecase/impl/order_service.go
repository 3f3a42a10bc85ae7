package impl

import (
	"context"
	"log/slog"
	"time"

	"bakery/config"
	deliverycontext "bakery/internal/delivery/context"
	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/repository"
	"bakery/internal/domain/service"
	"bakery/internal/domain/storefront"
	"bakery/internal/errors"
	"bakery/internal/usecase"

	"go.uber.org/fx"
)

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

type orderService struct {
	txManager      repository.TransactionManager
	orderRepo      repository.OrderRepository
	publisher      service.EventPublisher
	logger         *slog.Logger
	location       *time.Location
	defaultDueTime string
	now            func() time.Time
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	srv := &orderService{
		txManager:      params.TxManager,
		orderRepo:      params.OrderRepo,
		publisher:      params.Publisher,
		logger:         params.Logger,
		location:       time.UTC,
		defaultDueTime: "16:00",
		now:            time.Now,
	}
	if params.Config != nil && params.Config.Bakery != nil {
		srv.location = params.Config.Bakery.Location()
		if params.Config.Bakery.DefaultDueTime != "" {
			srv.defaultDueTime = params.Config.Bakery.DefaultDueTime
		}
	}

	return srv
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// today is the current bakery date as a UTC midnight value, matching how
// due dates are stored.
func (srv *orderService) today() time.Time {
	y, m, d := srv.now().In(srv.location).Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (srv *orderService) CreateNew(_ context.Context, currentUser *entity.User) *entity.Order {
	order := entity.NewOrder(currentUser)
	order.DueDate = srv.today()
	order.DueTime = srv.defaultDueTime

	return order
}

func (srv *orderService) Load(ctx context.Context, id int64) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, nil)
	}

	return order, nil
}

func (srv *orderService) Count(ctx context.Context) (int64, error) {
	count, err := srv.orderRepo.Count(ctx)
	if err != nil {
		return 0, translateRepoError(err, nil)
	}

	return count, nil
}

func (srv *orderService) Save(ctx context.Context, currentUser *entity.User, input *usecase.OrderInput) (*entity.Order, error) {
	if err := validateOrderInput(input); err != nil {
		return nil, err
	}

	var saved *entity.Order
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orders := factory.OrderRepo()

		var order *entity.Order
		if input.ID == 0 {
			order = srv.CreateNew(ctx, currentUser)
		} else {
			var err error
			if order, err = loadVersioned(ctx, orders, input.ID, &input.Version); err != nil {
				return err
			}
		}

		if err := srv.fillOrder(ctx, factory, currentUser, order, input); err != nil {
			return err
		}
		if err := orders.Save(ctx, order); err != nil {
			return err
		}
		saved = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to save order", slog.Int64("orderID", input.ID), slog.Any("error", err))

		return nil, translateRepoError(err, nil)
	}

	srv.publish(ctx, service.OrderEventSaved, currentUser, saved, "")

	return saved, nil
}

func (srv *orderService) AddComment(ctx context.Context, currentUser *entity.User, id int64, input *usecase.CommentInput) (*entity.Order, error) {
	if input == nil {
		return nil, domainerrors.ErrRequiredFieldsMissing
	}
	if err := requireText("message", input.Message, entity.MaxTextLength); err != nil {
		return nil, err
	}

	order, err := srv.update(ctx, id, input.Version, func(order *entity.Order) {
		order.AddHistoryItem(currentUser, input.Message)
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, service.OrderEventCommented, currentUser, order, input.Message)

	return order, nil
}

func (srv *orderService) ChangeState(ctx context.Context, currentUser *entity.User, id int64, input *usecase.StateChangeInput) (*entity.Order, error) {
	if input == nil || !input.State.IsValid() {
		return nil, domainerrors.ErrRequiredFieldsMissing.WithDetails("state")
	}

	order, err := srv.update(ctx, id, input.Version, func(order *entity.Order) {
		order.ChangeState(currentUser, input.State)
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, service.OrderEventStateChanged, currentUser, order, "")

	return order, nil
}

func (srv *orderService) Delete(ctx context.Context, currentUser *entity.User, id int64) error {
	var deleted *entity.Order
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orders := factory.OrderRepo()
		order, err := orders.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if err := orders.Delete(ctx, id); err != nil {
			return err
		}
		deleted = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to delete order", slog.Int64("orderID", id), slog.Any("error", err))

		return translateRepoError(err, nil)
	}

	srv.publish(ctx, service.OrderEventDeleted, currentUser, deleted, "")

	return nil
}

func (srv *orderService) FindAnyMatchingAfterDueDate(ctx context.Context, filter string, after *time.Time, page repository.PageRequest) (*repository.Page[*entity.Order], error) {
	result, err := srv.orderRepo.FindAnyMatching(ctx, repository.OrderFilter{CustomerName: filter, DueAfter: after}, page.Normalize())
	if err != nil {
		return nil, translateRepoError(err, nil)
	}

	return result, nil
}

func (srv *orderService) CountAnyMatchingAfterDueDate(ctx context.Context, filter string, after *time.Time) (int64, error) {
	count, err := srv.orderRepo.CountAnyMatching(ctx, repository.OrderFilter{CustomerName: filter, DueAfter: after})
	if err != nil {
		return 0, translateRepoError(err, nil)
	}

	return count, nil
}

func (srv *orderService) FindAnyMatchingStartingToday(ctx context.Context, page repository.PageRequest) (*repository.Page[*entity.Order], error) {
	today := srv.today()
	result, err := srv.orderRepo.FindAnyMatching(ctx, repository.OrderFilter{DueFrom: &today}, page.Normalize())
	if err != nil {
		return nil, translateRepoError(err, nil)
	}

	return result, nil
}

// Storefront lists orders sorted by due date and bands them. Without
// previous orders only orders due after yesterday are listed.
func (srv *orderService) Storefront(ctx context.Context, query *usecase.StorefrontQuery) (*usecase.StorefrontPage, error) {
	if query == nil {
		query = &usecase.StorefrontQuery{}
	}

	var after *time.Time
	if !query.ShowPrevious {
		yesterday := srv.today().AddDate(0, 0, -1)
		after = &yesterday
	}

	// Banding needs ascending due order, so the client's sort is ignored
	pageReq := query.Page
	pageReq.Sort = storefrontSort()

	page, err := srv.FindAnyMatchingAfterDueDate(ctx, query.Filter, after, pageReq)
	if err != nil {
		return nil, err
	}

	generator := storefront.NewGenerator(srv.now, srv.location)
	generator.Reset(query.ShowPrevious)
	generator.Assign(page.Items)

	items := make([]*usecase.StorefrontOrder, 0, len(page.Items))
	for _, order := range page.Items {
		items = append(items, &usecase.StorefrontOrder{
			Order:        order,
			Header:       generator.Lookup(order.ID),
			FirstInGroup: generator.IsFirstInGroup(order.ID),
		})
	}

	return &usecase.StorefrontPage{
		Items: items,
		Total: page.Total,
		Page:  page.Page,
		Size:  page.Size,
	}, nil
}

func storefrontSort() []repository.SortOrder {
	return []repository.SortOrder{{Field: "dueDate"}, {Field: "dueTime"}, {Field: "id"}}
}

// update loads the order, checks the optional version, applies mutate and
// saves, all in one transaction.
func (srv *orderService) update(ctx context.Context, id int64, version *int, mutate func(*entity.Order)) (*entity.Order, error) {
	var updated *entity.Order
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		orders := factory.OrderRepo()
		order, err := loadVersioned(ctx, orders, id, version)
		if err != nil {
			return err
		}
		mutate(order)
		if err := orders.Save(ctx, order); err != nil {
			return err
		}
		updated = order

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update order", slog.Int64("orderID", id), slog.Any("error", err))

		return nil, translateRepoError(err, nil)
	}

	return updated, nil
}

func loadVersioned(ctx context.Context, orders repository.OrderRepository, id int64, version *int) (*entity.Order, error) {
	order, err := orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if version != nil && *version != order.Version {
		return nil, errors.Wrapf(repository.ErrVersionConflict, "order %d is at version %d, got %d", id, order.Version, *version)
	}

	return order, nil
}

// fillOrder copies input onto order, resolving the referenced pickup location and products.
func (srv *orderService) fillOrder(ctx context.Context, factory repository.RepositoryFactory, currentUser *entity.User, order *entity.Order, input *usecase.OrderInput) error {
	location, err := factory.PickupLocationRepo().FindByID(ctx, input.PickupLocationID)
	if err != nil {
		return errors.Wrap(err, "pickup location")
	}

	products := factory.ProductRepo()
	resolved := make(map[int64]*entity.Product, len(input.Items))
	items := make([]*entity.OrderItem, 0, len(input.Items))
	for _, in := range input.Items {
		product, ok := resolved[in.ProductID]
		if !ok {
			if product, err = products.FindByID(ctx, in.ProductID); err != nil {
				return errors.Wrapf(err, "product %d", in.ProductID)
			}
			resolved[in.ProductID] = product
		}
		item := entity.NewOrderItem(product)
		item.Quantity = in.Quantity
		item.Comment = in.Comment
		items = append(items, item)
	}

	if order.Customer == nil {
		order.Customer = &entity.Customer{}
	}
	order.Customer.FullName = input.Customer.FullName
	order.Customer.PhoneNumber = input.Customer.PhoneNumber
	order.Customer.Details = input.Customer.Details

	order.DueDate = input.DueDate
	order.DueTime = input.DueTime
	order.PickupLocation = location
	order.Items = items
	if input.State != "" {
		order.ChangeState(currentUser, input.State)
	}

	return nil
}

func (srv *orderService) publish(ctx context.Context, eventType service.OrderEventType, actor *entity.User, order *entity.Order, message string) {
	if srv.publisher == nil || order == nil {
		return
	}

	event := &service.OrderEvent{
		RequestID:  deliverycontext.RequestIDFrom(ctx),
		Type:       eventType,
		OrderID:    order.ID,
		State:      order.State.String(),
		Message:    message,
		DueDate:    order.DueDate.Format(entity.DueDateLayout),
		OccurredAt: srv.now(),
	}
	if actor != nil {
		event.ActorID = actor.ID
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("type", string(eventType)),
			slog.Int64("orderID", order.ID),
			slog.Any("error", err),
		)
	}
}

func validateOrderInput(input *usecase.OrderInput) error {
	if input == nil {
		return domainerrors.ErrRequiredFieldsMissing
	}
	if input.DueDate.IsZero() {
		return domainerrors.ErrRequiredFieldsMissing.WithDetails("dueDate")
	}
	if _, err := time.Parse(entity.DueTimeLayout, input.DueTime); err != nil {
		return domainerrors.ErrRequiredFieldsMissing.WithDetails("dueTime")
	}
	if input.PickupLocationID <= 0 {
		return domainerrors.ErrRequiredFieldsMissing.WithDetails("pickupLocation")
	}
	if input.State != "" && !input.State.IsValid() {
		return domainerrors.ErrRequiredFieldsMissing.WithDetails("state")
	}

	customer := input.Customer
	if err := requireText("customer.fullName", customer.FullName, entity.MaxTextLength); err != nil {
		return err
	}
	if err := requireText("customer.phoneNumber", customer.PhoneNumber, entity.MaxPhoneLength); err != nil {
		return err
	}
	if !entity.ValidPhoneNumber(customer.PhoneNumber) {
		return domainerrors.ErrRequiredFieldsMissing.WithDetails("customer.phoneNumber")
	}
	if err := optionalText("customer.details", customer.Details, entity.MaxTextLength); err != nil {
		return err
	}

	if len(input.Items) == 0 {
		return domainerrors.ErrRequiredFieldsMissing.WithDetails("items")
	}
	for _, item := range input.Items {
		if item.ProductID <= 0 || item.Quantity < 1 {
			return domainerrors.ErrRequiredFieldsMissing.WithDetails("items")
		}
		if err := optionalText("items.comment", item.Comment, entity.MaxTextLength); err != nil {
			return err
		}
	}

	return nil
}
