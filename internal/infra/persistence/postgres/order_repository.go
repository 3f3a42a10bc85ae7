package postgres

import (
	"context"
	"time"

	"bakery/internal/domain/dashboard"
	"bakery/internal/domain/entity"
	"bakery/internal/domain/repository"
	"bakery/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

var orderSortColumns = map[string]string{
	"id":       "orders.id",
	"dueDate":  "orders.due_date",
	"dueTime":  "orders.due_time",
	"state":    "orders.state",
	"customer": "customers.full_name",
}

var orderDefaultSort = []string{"orders.due_date", "orders.due_time", "orders.id"}

// orderRepository implements repository.OrderRepository using GORM. An order
// row owns its customer row, its items and its history.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// reader routes read-only aggregate queries to a replica when replicas are
// configured.
func (repo *orderRepository) reader(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Clauses(dbresolver.Read)
}

func preloadOrder(db *gorm.DB) *gorm.DB {
	return db.
		Preload("PickupLocation").
		Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("order_items.id") }).
		Preload("Items.Product").
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("order_history.timestamp, order_history.id") }).
		Preload("History.CreatedBy")
}

func (repo *orderRepository) filtered(filter repository.OrderFilter) *gorm.DB {
	scope := repo.db.Model(&model.OrderModel{}).
		Joins("JOIN customers ON customers.id = orders.customer_id")
	if filter.CustomerName != "" {
		scope = scope.Where("customers.full_name ILIKE ?", likePattern(filter.CustomerName))
	}
	if filter.DueAfter != nil {
		scope = scope.Where("orders.due_date > ?", *filter.DueAfter)
	}
	if filter.DueFrom != nil {
		scope = scope.Where("orders.due_date >= ?", *filter.DueFrom)
	}

	return scope
}

func (repo *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var m model.OrderModel
	if err := preloadOrder(repo.db.WithContext(ctx)).First(&m, id).Error; err != nil {
		return nil, translateDBError(err, "failed to find order by id")
	}

	return toOrderDomain(&m), nil
}

func (repo *orderRepository) FindAnyMatching(ctx context.Context, filter repository.OrderFilter, page repository.PageRequest) (*repository.Page[*entity.Order], error) {
	total, err := repo.CountAnyMatching(ctx, filter)
	if err != nil {
		return nil, err
	}

	var models []*model.OrderModel
	query := applyPage(repo.filtered(filter).WithContext(ctx), page, orderSortColumns, orderDefaultSort...)
	if err := preloadOrder(query).Select("orders.*").Find(&models).Error; err != nil {
		return nil, translateDBError(err, "failed to list orders")
	}

	items := make([]*entity.Order, 0, len(models))
	for _, m := range models {
		items = append(items, toOrderDomain(m))
	}

	return repository.NewPage(items, total, page), nil
}

func (repo *orderRepository) CountAnyMatching(ctx context.Context, filter repository.OrderFilter) (int64, error) {
	return count(ctx, repo.filtered(filter), &model.OrderModel{}, "failed to count orders")
}

func (repo *orderRepository) Count(ctx context.Context) (int64, error) {
	return count(ctx, repo.db, &model.OrderModel{}, "failed to count orders")
}

// Save writes the order with its customer. Items are replaced and history
// entries without an id are appended. Call it inside a transaction.
func (repo *orderRepository) Save(ctx context.Context, order *entity.Order) error {
	db := repo.db.WithContext(ctx)

	if order.IsNew() {
		if err := repo.create(db, order); err != nil {
			return err
		}
	} else {
		if err := repo.update(ctx, order); err != nil {
			return err
		}
	}

	if err := repo.replaceItems(db, order); err != nil {
		return err
	}

	return repo.appendHistory(db, order)
}

func (repo *orderRepository) create(db *gorm.DB, order *entity.Order) error {
	customer := fromCustomerDomain(order.Customer)
	customer.ID = 0
	customer.Version = 1
	if err := db.Create(customer).Error; err != nil {
		return translateDBError(err, "failed to create customer")
	}

	m := &model.OrderModel{
		Version:          1,
		DueDate:          order.DueDate,
		DueTime:          order.DueTime,
		State:            order.State.String(),
		PickupLocationID: pickupLocationID(order),
		CustomerID:       customer.ID,
	}
	if err := db.Omit(clause.Associations).Create(m).Error; err != nil {
		return translateDBError(err, "failed to create order")
	}

	order.ID = m.ID
	order.Version = m.Version
	if order.Customer != nil {
		order.Customer.ID = customer.ID
		order.Customer.Version = customer.Version
	}

	return nil
}

func (repo *orderRepository) update(ctx context.Context, order *entity.Order) error {
	version, err := versionedUpdate(ctx, repo.db, model.OrderModel{}.TableName(), order.ID, order.Version, map[string]any{
		"due_date":           order.DueDate,
		"due_time":           order.DueTime,
		"state":              order.State.String(),
		"pickup_location_id": pickupLocationID(order),
	})
	if err != nil {
		return err
	}
	order.Version = version

	if order.Customer == nil {
		return nil
	}

	res := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Where("id = (SELECT customer_id FROM orders WHERE id = ?)", order.ID).
		Updates(map[string]any{
			"full_name":    order.Customer.FullName,
			"phone_number": order.Customer.PhoneNumber,
			"details":      order.Customer.Details,
			"version":      gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return translateDBError(res.Error, "failed to update customer")
	}
	if res.RowsAffected == 0 {
		return errors.Wrapf(repository.ErrNotFound, "customer of order %d", order.ID)
	}

	return nil
}

func (repo *orderRepository) replaceItems(db *gorm.DB, order *entity.Order) error {
	if err := db.Where("order_id = ?", order.ID).Delete(&model.OrderItemModel{}).Error; err != nil {
		return translateDBError(err, "failed to clear order items")
	}
	if len(order.Items) == 0 {
		return nil
	}

	models := make([]*model.OrderItemModel, 0, len(order.Items))
	for _, item := range order.Items {
		m := fromOrderItemDomain(item)
		m.ID = 0
		m.OrderID = order.ID
		models = append(models, m)
	}
	if err := db.Omit(clause.Associations).Create(&models).Error; err != nil {
		return translateDBError(err, "failed to create order items")
	}
	for i, m := range models {
		order.Items[i].ID = m.ID
	}

	return nil
}

func (repo *orderRepository) appendHistory(db *gorm.DB, order *entity.Order) error {
	pending := make([]*entity.HistoryItem, 0)
	models := make([]*model.HistoryItemModel, 0)
	for _, item := range order.History {
		if item == nil || item.ID != 0 {
			continue
		}
		m := fromHistoryItemDomain(item)
		m.OrderID = order.ID
		pending = append(pending, item)
		models = append(models, m)
	}
	if len(models) == 0 {
		return nil
	}

	if err := db.Omit(clause.Associations).Create(&models).Error; err != nil {
		return translateDBError(err, "failed to append order history")
	}
	for i, m := range models {
		pending[i].ID = m.ID
	}

	return nil
}

// Delete removes the order together with its items, history and customer.
func (repo *orderRepository) Delete(ctx context.Context, id int64) error {
	db := repo.db.WithContext(ctx)

	var m model.OrderModel
	if err := db.Select("id", "customer_id").First(&m, id).Error; err != nil {
		return translateDBError(err, "failed to find order to delete")
	}

	if err := db.Where("order_id = ?", id).Delete(&model.OrderItemModel{}).Error; err != nil {
		return translateDBError(err, "failed to delete order items")
	}
	if err := db.Where("order_id = ?", id).Delete(&model.HistoryItemModel{}).Error; err != nil {
		return translateDBError(err, "failed to delete order history")
	}
	if err := deleteByID(ctx, repo.db, &model.OrderModel{}, model.OrderModel{}.TableName(), id); err != nil {
		return err
	}

	return deleteByID(ctx, repo.db, &model.CustomerModel{}, model.CustomerModel{}.TableName(), m.CustomerID)
}

// --- Aggregates ---

func (repo *orderRepository) CountByDueDate(ctx context.Context, dueDate time.Time) (int64, error) {
	return count(ctx, repo.db.Where("due_date = ?", dueDate), &model.OrderModel{}, "failed to count orders by due date")
}

func (repo *orderRepository) CountByDueDateAndStates(ctx context.Context, dueDate time.Time, states []entity.OrderState) (int64, error) {
	if len(states) == 0 {
		return 0, nil
	}

	return count(ctx, repo.db.Where("due_date = ? AND state IN ?", dueDate, stateNames(states)), &model.OrderModel{}, "failed to count orders by due date and state")
}

func (repo *orderRepository) CountByState(ctx context.Context, state entity.OrderState) (int64, error) {
	return count(ctx, repo.db.Where("state = ?", state.String()), &model.OrderModel{}, "failed to count orders by state")
}

type pointRow struct {
	Idx   int   `gorm:"column:idx"`
	Total int64 `gorm:"column:total"`
}

func (repo *orderRepository) CountPerMonth(ctx context.Context, state entity.OrderState, year int) ([]dashboard.Point, error) {
	var rows []pointRow
	err := repo.reader(ctx).Raw(`
		SELECT EXTRACT(MONTH FROM due_date)::int AS idx, COUNT(*) AS total
		FROM orders
		WHERE state = ? AND EXTRACT(YEAR FROM due_date) = ?
		GROUP BY 1
		ORDER BY 1
	`, state.String(), year).Scan(&rows).Error
	if err != nil {
		return nil, translateDBError(err, "failed to count orders per month")
	}

	return toPoints(rows), nil
}

func (repo *orderRepository) CountPerDay(ctx context.Context, state entity.OrderState, year, month int) ([]dashboard.Point, error) {
	var rows []pointRow
	err := repo.reader(ctx).Raw(`
		SELECT EXTRACT(DAY FROM due_date)::int AS idx, COUNT(*) AS total
		FROM orders
		WHERE state = ? AND EXTRACT(YEAR FROM due_date) = ? AND EXTRACT(MONTH FROM due_date) = ?
		GROUP BY 1
		ORDER BY 1
	`, state.String(), year, month).Scan(&rows).Error
	if err != nil {
		return nil, translateDBError(err, "failed to count orders per day")
	}

	return toPoints(rows), nil
}

func (repo *orderRepository) SumPerMonth(ctx context.Context, state entity.OrderState, fromYear, toYear int) ([]dashboard.MonthlySum, error) {
	var rows []struct {
		Year  int   `gorm:"column:year"`
		Month int   `gorm:"column:month"`
		Total int64 `gorm:"column:total"`
	}
	err := repo.reader(ctx).Raw(`
		SELECT EXTRACT(YEAR FROM o.due_date)::int AS year,
		       EXTRACT(MONTH FROM o.due_date)::int AS month,
		       COALESCE(SUM(oi.quantity * p.price), 0) AS total
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN products p ON p.id = oi.product_id
		WHERE o.state = ? AND EXTRACT(YEAR FROM o.due_date) BETWEEN ? AND ?
		GROUP BY 1, 2
		ORDER BY 1, 2
	`, state.String(), fromYear, toYear).Scan(&rows).Error
	if err != nil {
		return nil, translateDBError(err, "failed to sum sales per month")
	}

	sums := make([]dashboard.MonthlySum, 0, len(rows))
	for _, r := range rows {
		sums = append(sums, dashboard.MonthlySum{Year: r.Year, Month: r.Month, Total: r.Total})
	}

	return sums, nil
}

func (repo *orderRepository) QuantityPerProduct(ctx context.Context, state entity.OrderState, year, month int) ([]*entity.ProductDelivery, error) {
	var rows []struct {
		ProductID   int64  `gorm:"column:product_id"`
		ProductName string `gorm:"column:product_name"`
		Quantity    int64  `gorm:"column:quantity"`
	}
	err := repo.reader(ctx).Raw(`
		SELECT p.id AS product_id, p.name AS product_name, SUM(oi.quantity) AS quantity
		FROM orders o
		JOIN order_items oi ON oi.order_id = o.id
		JOIN products p ON p.id = oi.product_id
		WHERE o.state = ? AND EXTRACT(YEAR FROM o.due_date) = ? AND EXTRACT(MONTH FROM o.due_date) = ?
		GROUP BY p.id, p.name
		ORDER BY p.name
	`, state.String(), year, month).Scan(&rows).Error
	if err != nil {
		return nil, translateDBError(err, "failed to sum quantities per product")
	}

	deliveries := make([]*entity.ProductDelivery, 0, len(rows))
	for _, r := range rows {
		deliveries = append(deliveries, &entity.ProductDelivery{
			ProductID:   r.ProductID,
			ProductName: r.ProductName,
			Quantity:    r.Quantity,
		})
	}

	return deliveries, nil
}

func toPoints(rows []pointRow) []dashboard.Point {
	points := make([]dashboard.Point, 0, len(rows))
	for _, r := range rows {
		points = append(points, dashboard.Point{Index: r.Idx, Value: r.Total})
	}

	return points
}

func stateNames(states []entity.OrderState) []string {
	names := make([]string, 0, len(states))
	for _, s := range states {
		names = append(names, s.String())
	}

	return names
}

func pickupLocationID(order *entity.Order) int64 {
	if order.PickupLocation == nil {
		return 0
	}

	return order.PickupLocation.ID
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:             data.ID,
		Version:        data.Version,
		DueDate:        asCalendarDate(data.DueDate),
		DueTime:        data.DueTime,
		PickupLocation: toPickupLocationDomain(data.PickupLocation),
		Customer:       toCustomerDomain(data.Customer),
		State:          entity.OrderState(data.State),
		Items:          make([]*entity.OrderItem, 0, len(data.Items)),
		History:        make([]*entity.HistoryItem, 0, len(data.History)),
	}
	for _, item := range data.Items {
		order.Items = append(order.Items, &entity.OrderItem{
			ID:       item.ID,
			Product:  toProductDomain(item.Product),
			Quantity: item.Quantity,
			Comment:  item.Comment,
		})
	}
	for _, h := range data.History {
		order.History = append(order.History, &entity.HistoryItem{
			ID:        h.ID,
			NewState:  entity.OrderState(h.NewState),
			Message:   h.Message,
			Timestamp: h.Timestamp,
			CreatedBy: toUserDomain(h.CreatedBy),
		})
	}

	return order
}

// asCalendarDate keeps the date as read and pins it to UTC midnight.
func asCalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		ID:          data.ID,
		Version:     data.Version,
		FullName:    data.FullName,
		PhoneNumber: data.PhoneNumber,
		Details:     data.Details,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return &model.CustomerModel{}
	}

	return &model.CustomerModel{
		ID:          data.ID,
		Version:     data.Version,
		FullName:    data.FullName,
		PhoneNumber: data.PhoneNumber,
		Details:     data.Details,
	}
}

func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	m := &model.OrderItemModel{
		ID:       data.ID,
		Quantity: data.Quantity,
		Comment:  data.Comment,
	}
	if data.Product != nil {
		m.ProductID = data.Product.ID
	}

	return m
}

func fromHistoryItemDomain(data *entity.HistoryItem) *model.HistoryItemModel {
	m := &model.HistoryItemModel{
		ID:        data.ID,
		NewState:  data.NewState.String(),
		Message:   data.Message,
		Timestamp: data.Timestamp,
	}
	if data.CreatedBy != nil && data.CreatedBy.ID != 0 {
		id := data.CreatedBy.ID
		m.CreatedByID = &id
	}

	return m
}
