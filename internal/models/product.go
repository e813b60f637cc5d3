package models

import "gorm.io/gorm"

// Product represents a catalog product in the store.
// A product is immutable from the storefront's perspective; only the
// admin console creates, edits or deletes rows.
type Product struct {
	ID            string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name          string   `json:"name" validate:"required,min=3,max=100"`
	Description   string   `json:"description" validate:"omitempty,max=2000"`
	Category      string   `json:"category" validate:"required,max=100"`
	Price         float64  `json:"price" validate:"required,gt=0"`
	PreviousPrice *float64 `json:"previous_price,omitempty" validate:"omitempty,gt=0"`
	ImageURL      string   `json:"image_url" validate:"omitempty,url"`
	InStock       bool     `json:"in_stock"`
	gorm.Model    // CreatedAt, UpdatedAt, DeletedAt
}

// ReviewSummary is the aggregate over a product's approved reviews.
// It is derived on read and never stored on the product row.
type ReviewSummary struct {
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}
