package postgres

import "gorm.io/gorm"

// CustomerDTO maps the customers table. Identifiers are store-assigned
// serials; contact fields may be empty but never NULL.
type CustomerDTO struct {
	CustomerID int64  `gorm:"column:customer_id;primaryKey;autoIncrement"`
	Name       string `gorm:"column:name;size:30;not null;index"`
	Email      string `gorm:"column:email;not null"`
	Phone      string `gorm:"column:phone;not null"`
}

// TableName overrides GORM's default naming to match the core's SQL.
func (CustomerDTO) TableName() string {
	return "customers"
}

// ShipperDTO maps the shippers table.
type ShipperDTO struct {
	ShipperID int64  `gorm:"column:shipper_id;primaryKey;autoIncrement"`
	Name      string `gorm:"column:name;size:30;not null;index"`
	Phone     string `gorm:"column:phone;not null"`
}

// TableName overrides GORM's default naming to match the core's SQL.
func (ShipperDTO) TableName() string {
	return "shippers"
}

// ShippingOrderDTO maps the shipping_orders table. Both party references are
// enforced as foreign keys; the resolver guarantees they exist before any
// insert reaches this table.
type ShippingOrderDTO struct {
	OrderID    int64   `gorm:"column:order_id;primaryKey;autoIncrement"`
	CustomerID int64   `gorm:"column:customer_id;not null;index"`
	ShipperID  int64   `gorm:"column:shipper_id;not null;index"`
	Weight     float64 `gorm:"column:weight_in_pounds;not null"`
	Distance   int     `gorm:"column:distance_in_miles;not null"`
	Cost       float64 `gorm:"column:shipping_cost;not null"`

	Customer CustomerDTO `gorm:"foreignKey:CustomerID;references:CustomerID"`
	Shipper  ShipperDTO  `gorm:"foreignKey:ShipperID;references:ShipperID"`
}

// TableName overrides GORM's default naming to match the core's SQL.
func (ShippingOrderDTO) TableName() string {
	return "shipping_orders"
}

// Migrate creates or updates the schema for all three tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&CustomerDTO{}, &ShipperDTO{}, &ShippingOrderDTO{})
}
