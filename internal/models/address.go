package models

import "time"

// Address is a shipping address in a user's address book. At most one
// address per user has IsDefault set; the repository enforces this
// inside a single transaction when a new default is chosen.
type Address struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"index;type:varchar(36)"`
	FullName  string    `json:"full_name" validate:"required,max=200"`
	Line1     string    `json:"line1" validate:"required,max=200"`
	Line2     string    `json:"line2" validate:"omitempty,max=200"`
	City      string    `json:"city" validate:"required,max=100"`
	State     string    `json:"state" validate:"omitempty,max=100"`
	PostCode  string    `json:"post_code" validate:"required,max=20"`
	Country   string    `json:"country" validate:"required,max=100"`
	Phone     string    `json:"phone" validate:"omitempty,max=30"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Snapshot copies the address fields into the form embedded in orders.
func (a *Address) Snapshot() ShippingAddress {
	return ShippingAddress{
		FullName: a.FullName,
		Line1:    a.Line1,
		Line2:    a.Line2,
		City:     a.City,
		State:    a.State,
		PostCode: a.PostCode,
		Country:  a.Country,
		Phone:    a.Phone,
	}
}
