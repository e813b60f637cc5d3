package models

import "time"

// Review is a customer review of a product. A review is visible to other
// customers only once an admin sets Approved.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID string    `json:"product_id" gorm:"index;type:varchar(36)" validate:"required"`
	UserID    string    `json:"user_id" gorm:"index;type:varchar(36)"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Body      string    `json:"body" validate:"omitempty,max=4000"`
	Approved  bool      `json:"approved"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
