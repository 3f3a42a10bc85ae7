package model

// ProductModel mirrors the 'products' table. Price is stored in cents.
type ProductModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Version int    `gorm:"not null;default:1"`
	Name    string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Price   int    `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// PickupLocationModel mirrors the 'pickup_locations' table.
type PickupLocationModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	Version int    `gorm:"not null;default:1"`
	Name    string `gorm:"type:varchar(255);uniqueIndex;not null"`
}

// TableName explicitly sets the table name for GORM.
func (PickupLocationModel) TableName() string {
	return "pickup_locations"
}
