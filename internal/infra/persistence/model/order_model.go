package model

import "time"

// CustomerModel mirrors the 'customers' table. Each row belongs to exactly one order.
type CustomerModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Version     int    `gorm:"not null;default:1"`
	FullName    string `gorm:"type:varchar(255);not null;index"`
	PhoneNumber string `gorm:"type:varchar(20);not null"`
	Details     string `gorm:"type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	Version          int       `gorm:"not null;default:1"`
	DueDate          time.Time `gorm:"type:date;not null;index:idx_orders_due"`
	DueTime          string    `gorm:"type:varchar(5);not null;index:idx_orders_due"`
	State            string    `gorm:"type:varchar(20);not null;index"`
	PickupLocationID int64     `gorm:"not null;index"`
	CustomerID       int64     `gorm:"not null;uniqueIndex"`

	PickupLocation *PickupLocationModel `gorm:"foreignKey:PickupLocationID;constraint:OnDelete:RESTRICT"`
	Customer       *CustomerModel       `gorm:"foreignKey:CustomerID;constraint:OnDelete:RESTRICT"`
	Items          []*OrderItemModel    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History        []*HistoryItemModel  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	OrderID   int64  `gorm:"not null;index"`
	ProductID int64  `gorm:"not null;index"`
	Quantity  int    `gorm:"not null"`
	Comment   string `gorm:"type:varchar(255)"`

	Product *ProductModel `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// HistoryItemModel mirrors the 'order_history' table. Rows are only ever inserted.
type HistoryItemModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     int64     `gorm:"not null;index"`
	NewState    string    `gorm:"type:varchar(20)"`
	Message     string    `gorm:"type:varchar(255);not null"`
	Timestamp   time.Time `gorm:"not null"`
	CreatedByID *int64    `gorm:"index"`

	CreatedBy *UserModel `gorm:"foreignKey:CreatedByID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (HistoryItemModel) TableName() string {
	return "order_history"
}

// All lists every model in dependency order for auto-migration.
func All() []any {
	return []any{
		&UserModel{},
		&ProductModel{},
		&PickupLocationModel{},
		&CustomerModel{},
		&OrderModel{},
		&OrderItemModel{},
		&HistoryItemModel{},
	}
}
