package models

import "time"

// Apartment is a managed property record. ID is the surrogate key assigned by
// the store in creation order; UniqueID is the business key derived from the
// source listing identifier. Repeated ingestion can produce several rows with
// the same UniqueID; the dedupe sweep restores the one-row-per-UniqueID
// invariant, keeping the row with the lowest ID.
type Apartment struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UniqueID    string    `gorm:"type:varchar(191);not null;index" json:"unique_id" validate:"required"`
	Title       string    `gorm:"type:varchar(255)" json:"title"`
	Street      string    `gorm:"type:varchar(255)" json:"street"`
	City        string    `gorm:"type:varchar(150)" json:"city"`
	PostalCode  string    `gorm:"type:varchar(20)" json:"postal_code"`
	RoomCount   int       `json:"room_count"`
	Size        float64   `json:"size"`
	RentCold    int64     `json:"rent_cold"` // cents
	RentWarm    int64     `json:"rent_warm"` // cents
	IsVacant    bool      `gorm:"default:true" json:"is_vacant"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
