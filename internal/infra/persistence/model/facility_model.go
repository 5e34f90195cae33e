package model

import (
	"time"
)

// FacilityModel is the GORM-specific struct for the 'facilities' table.
// Duty-time columns keep the registry's raw encoding; they are normalized
// at evaluation time, not at rest.
type FacilityModel struct {
	ID       string   `gorm:"type:varchar(64);primary_key"`
	Name     string   `gorm:"type:varchar(255);not null"`
	Address  string   `gorm:"type:varchar(512)"`
	Phone    string   `gorm:"type:varchar(64)"`
	Category string   `gorm:"type:varchar(16);not null;index;index:idx_facilities_category_coords,priority:1"`
	Lat      *float64 `gorm:"type:double precision;index:idx_facilities_category_coords,priority:2"`
	Lon      *float64 `gorm:"type:double precision;index:idx_facilities_category_coords,priority:3"`

	MonOpen *string `gorm:"type:varchar(8)"`
	MonClose *string `gorm:"type:varchar(8)"`
	TueOpen *string `gorm:"type:varchar(8)"`
	TueClose *string `gorm:"type:varchar(8)"`
	WedOpen *string `gorm:"type:varchar(8)"`
	WedClose *string `gorm:"type:varchar(8)"`
	ThuOpen *string `gorm:"type:varchar(8)"`
	ThuClose *string `gorm:"type:varchar(8)"`
	FriOpen *string `gorm:"type:varchar(8)"`
	FriClose *string `gorm:"type:varchar(8)"`
	SatOpen *string `gorm:"type:varchar(8)"`
	SatClose *string `gorm:"type:varchar(8)"`
	SunOpen *string `gorm:"type:varchar(8)"`
	SunClose *string `gorm:"type:varchar(8)"`
	HolidayOpen *string `gorm:"type:varchar(8)"`
	HolidayClose *string `gorm:"type:varchar(8)"`

	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FacilityModel) TableName() string {
	return "facilities"
}
