package models

import "time"

// Visit is a single recorded storefront visit. Device, browser and OS
// are derived server-side from the request's own User-Agent header; the
// caller never supplies them.
type Visit struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Path      string    `json:"path" gorm:"type:varchar(500)"`
	Device    string    `json:"device" gorm:"type:varchar(20)"`
	Browser   string    `json:"browser" gorm:"type:varchar(40)"`
	OS        string    `json:"os" gorm:"type:varchar(40)"`
	IP        string    `json:"-" gorm:"type:varchar(45)"`
	CreatedAt time.Time `json:"created_at"`
}
