package models

import "time"

// CartLine is one persisted (user, product) pair with its quantity.
// A row only exists while quantity >= 1; decrementing past one deletes it.
type CartLine struct {
	UserID    int64     `gorm:"column:user_id;primaryKey" json:"user_id"`
	ProductID int64     `gorm:"column:product_id;primaryKey" json:"product_id"`
	Quantity  int       `gorm:"column:quantity;not null" json:"quantity"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// TableName keeps the relation name aligned with the migrations.
func (CartLine) TableName() string {
	return "cart_lines"
}
