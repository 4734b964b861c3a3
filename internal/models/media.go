package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Media struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey"`
	FileName     string     `json:"file_name" gorm:"size:255;index;not null"`
	OriginalName string     `json:"original_name" gorm:"size:255"`
	FileURL      string     `json:"file_url" gorm:"size:2048;not null"`
	FilePath     string     `json:"-" gorm:"size:2048;not null"`
	MimeType     string     `json:"mime_type" gorm:"size:100"`
	FileSize     int64      `json:"file_size"`
	Width        int        `json:"width"`
	Height       int        `json:"height"`
	CreatedBy    *uuid.UUID `json:"created_by,omitempty" gorm:"type:uuid"`
	CreatedAt    time.Time  `json:"created_at" gorm:"index"`
}

func (m *Media) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
