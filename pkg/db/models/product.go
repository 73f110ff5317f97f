package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog listing.
type Product struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"column:name;not null" json:"name"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null" json:"price"`
	CategoryID  int64           `gorm:"column:category_id;not null" json:"category_id"`
	Description string          `gorm:"column:description;not null;default:''" json:"description"`
	Color       string          `gorm:"column:color;not null;default:''" json:"color"`
	ImageURL    string          `gorm:"column:image_url;not null;default:''" json:"image_url"`
	Stock       int             `gorm:"column:stock;not null;default:0" json:"stock"`
	Featured    bool            `gorm:"column:featured;not null;default:false" json:"featured"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
