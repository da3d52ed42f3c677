package models

import "gorm.io/datatypes"

type Company struct {
	BaseModel
	Name        string         `gorm:"not null" json:"name"`
	Description *string        `json:"description,omitempty"`
	Website     *string        `json:"website,omitempty"`
	LogoURL     *string        `json:"logo_url,omitempty"`
	Industry    *string        `json:"industry,omitempty"`
	Size        *string        `json:"size,omitempty"`
	Location    *string        `json:"location,omitempty"`
	Metadata    datatypes.JSON `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedBy   *string        `gorm:"type:uuid" json:"created_by,omitempty"`
}

type JobCategory struct {
	BaseModel
	Name        string  `gorm:"uniqueIndex;not null" json:"name"`
	Description *string `json:"description,omitempty"`
}
