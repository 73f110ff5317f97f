package models

import "time"

// Profile stores the contact details attached to a user account.
type Profile struct {
	UserID    int64     `gorm:"column:user_id;primaryKey" json:"user_id"`
	FirstName string    `gorm:"column:first_name;not null;default:''" json:"first_name"`
	LastName  string    `gorm:"column:last_name;not null;default:''" json:"last_name"`
	Phone     string    `gorm:"column:phone;not null;default:''" json:"phone"`
	Email     string    `gorm:"column:email;not null;default:''" json:"email"`
	Address   string    `gorm:"column:address;not null;default:''" json:"address"`
	City      string    `gorm:"column:city;not null;default:''" json:"city"`
	State     string    `gorm:"column:state;not null;default:''" json:"state"`
	Zip       string    `gorm:"column:zip;not null;default:''" json:"zip"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
